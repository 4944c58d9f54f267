package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"studybuddy-backend/internal/database/models"
)

var sequence atomic.Uint64

func next() uint64 {
	return sequence.Add(1)
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email. PasswordHash is a placeholder, not a bcrypt hash.
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Email:        fmt.Sprintf("student%d@test.edu", n),
		PasswordHash: "not-a-real-hash",
		FirstName:    "Student",
		LastName:     fmt.Sprintf("No%d", n),
		CollegeLevel: "Sophomore",
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// CourseFactory provides methods to create test Course data
type CourseFactory struct{}

// NewCourseFactory creates a new CourseFactory
func NewCourseFactory() *CourseFactory {
	return &CourseFactory{}
}

// Create creates a test Course with a unique code
func (f *CourseFactory) Create() *models.Course {
	n := next()
	return &models.Course{
		CourseCode: fmt.Sprintf("CS%d", 100+n),
		CourseName: fmt.Sprintf("Computer Science %d", n),
	}
}

// GroupFactory provides methods to create test StudyGroup data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a public test group with room for five members
func (f *GroupFactory) Create(courseID uint) *models.StudyGroup {
	return &models.StudyGroup{
		GroupName:  fmt.Sprintf("Study Group %d", next()),
		MaxMembers: 5,
		IsPrivate:  false,
		CourseID:   courseID,
	}
}

// WithCapacity creates a test group with a custom capacity
func (f *GroupFactory) WithCapacity(courseID uint, maxMembers int) *models.StudyGroup {
	group := f.Create(courseID)
	group.MaxMembers = maxMembers
	return group
}

// Private creates a private test group
func (f *GroupFactory) Private(courseID uint) *models.StudyGroup {
	group := f.Create(courseID)
	group.IsPrivate = true
	return group
}

// SessionFactory provides methods to create test StudySession data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test session for the group on the given day
func (f *SessionFactory) Create(groupID uint, day time.Time) *models.StudySession {
	return &models.StudySession{
		GroupID:     groupID,
		SessionDate: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:   "18:00",
		EndTime:     "20:00",
		Location:    "Library Room 2",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Course  *CourseFactory
	Group   *GroupFactory
	Session *SessionFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Course:  NewCourseFactory(),
		Group:   NewGroupFactory(),
		Session: NewSessionFactory(),
	}
}
