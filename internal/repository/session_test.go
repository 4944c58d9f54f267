package repository

import (
	"testing"
	"time"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
)

type SessionRepositoryTestSuite struct {
	repoSuite
}

func (s *SessionRepositoryTestSuite) TestListUpcomingForUser() {
	course := s.createCourse()
	mine := s.createGroup(s.factories.Group.Create(course.CourseID))
	theirs := s.createGroup(s.factories.Group.Create(course.CourseID))
	user := s.createUser("Sam", "Student")
	s.addMember(mine.GroupID, user.UserID, models.MemberRoleMember, time.Now())

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	past := s.factories.Session.Create(mine.GroupID, today.AddDate(0, 0, -1))
	later := s.factories.Session.Create(mine.GroupID, today.AddDate(0, 0, 3))
	soon := s.factories.Session.Create(mine.GroupID, today)
	other := s.factories.Session.Create(theirs.GroupID, today.AddDate(0, 0, 1))
	for _, session := range []*models.StudySession{past, later, soon, other} {
		s.Require().NoError(s.repos.Sessions.Create(s.ctx, session))
	}

	rows, err := s.repos.Sessions.ListUpcomingForUser(s.ctx, user.UserID, today, 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(soon.SessionID, rows[0].SessionID)
	s.Equal(later.SessionID, rows[1].SessionID)
	s.Equal(mine.GroupName, rows[0].GroupName)

	rows, err = s.repos.Sessions.ListUpcomingForUser(s.ctx, user.UserID, today, 1)
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func TestSessionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SessionRepositoryTestSuite))
}
