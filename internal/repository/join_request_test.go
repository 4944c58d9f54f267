package repository

import (
	"testing"
	"time"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type JoinRequestRepositoryTestSuite struct {
	repoSuite
	group     *models.StudyGroup
	owner     *models.User
	requester *models.User
}

func (s *JoinRequestRepositoryTestSuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.group = s.createGroup(s.factories.Group.Create(s.createCourse().CourseID))
	s.owner = s.createUser("Olive", "Owner")
	s.requester = s.createUser("Carol", "Tester")
}

func (s *JoinRequestRepositoryTestSuite) request(status models.JoinStatus, at time.Time) *models.JoinRequest {
	req := &models.JoinRequest{GroupID: s.group.GroupID, UserID: s.requester.UserID, JoinStatus: status, RequestDate: at}
	s.Require().NoError(s.repos.JoinRequests.Create(s.ctx, req))
	return req
}

func (s *JoinRequestRepositoryTestSuite) TestFindActive_IgnoresRejected() {
	now := time.Now().UTC()
	s.request(models.JoinStatusRejected, now)

	active, err := s.repos.JoinRequests.FindActive(s.ctx, s.group.GroupID, s.requester.UserID)
	s.Require().NoError(err)
	s.Empty(active)

	pending := s.request(models.JoinStatusPending, now)
	active, err = s.repos.JoinRequests.FindActive(s.ctx, s.group.GroupID, s.requester.UserID)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(pending.RequestID, active[0].RequestID)
}

func (s *JoinRequestRepositoryTestSuite) TestLockPending_Oldest() {
	now := time.Now().UTC()
	first := s.request(models.JoinStatusPending, now.Add(-time.Hour))
	s.request(models.JoinStatusPending, now)

	req, err := s.repos.JoinRequests.LockPending(s.ctx, s.group.GroupID, s.requester.UserID)
	s.Require().NoError(err)
	s.Equal(first.RequestID, req.RequestID)
}

func (s *JoinRequestRepositoryTestSuite) TestLockPending_None() {
	s.request(models.JoinStatusApproved, time.Now().UTC())

	_, err := s.repos.JoinRequests.LockPending(s.ctx, s.group.GroupID, s.requester.UserID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *JoinRequestRepositoryTestSuite) TestUpdateStatus() {
	req := s.request(models.JoinStatusPending, time.Now().UTC())

	s.Require().NoError(s.repos.JoinRequests.UpdateStatus(s.ctx, req.RequestID, models.JoinStatusApproved, s.owner.UserID))

	active, err := s.repos.JoinRequests.FindActive(s.ctx, s.group.GroupID, s.requester.UserID)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(models.JoinStatusApproved, active[0].JoinStatus)
	s.Require().NotNil(active[0].ApprovedBy)
	s.Equal(s.owner.UserID, *active[0].ApprovedBy)
}

func (s *JoinRequestRepositoryTestSuite) TestListPendingByGroup() {
	now := time.Now().UTC()
	s.request(models.JoinStatusRejected, now.Add(-2*time.Hour))
	pending := s.request(models.JoinStatusPending, now.Add(-time.Hour))

	rows, err := s.repos.JoinRequests.ListPendingByGroup(s.ctx, s.group.GroupID)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(pending.RequestID, rows[0].RequestID)
	s.Equal("Carol Tester", rows[0].UserName)
}

func TestJoinRequestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JoinRequestRepositoryTestSuite))
}
