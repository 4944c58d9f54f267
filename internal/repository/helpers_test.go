package repository

import (
	"context"
	"time"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// repoSuite gives each test a fresh in-memory database
type repoSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	repos     *Repositories
	factories *testutils.FactorySet
}

func (s *repoSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.NewSQLiteDB(s.T())
	s.repos = NewRepositories(s.db)
	s.factories = testutils.NewFactorySet()
}

func (s *repoSuite) createUser(first, last string) *models.User {
	user := s.factories.User.WithName(first, last)
	s.Require().NoError(s.repos.Users.Create(s.ctx, user))
	return user
}

func (s *repoSuite) createCourse() *models.Course {
	course := s.factories.Course.Create()
	s.Require().NoError(s.repos.Courses.Create(s.ctx, course))
	return course
}

func (s *repoSuite) createGroup(group *models.StudyGroup) *models.StudyGroup {
	s.Require().NoError(s.repos.Groups.Create(s.ctx, group))
	return group
}

func (s *repoSuite) addMember(groupID, userID uint, role models.MemberRole, joinedAt time.Time) {
	s.Require().NoError(s.repos.Members.AddMember(s.ctx, &models.GroupMember{
		GroupID: groupID, UserID: userID, Role: role, JoinedAt: joinedAt,
	}))
}
