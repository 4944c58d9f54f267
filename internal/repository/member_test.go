package repository

import (
	"testing"
	"time"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MemberRepositoryTestSuite struct {
	repoSuite
	group *models.StudyGroup
	owner *models.User
}

func (s *MemberRepositoryTestSuite) SetupTest() {
	s.repoSuite.SetupTest()
	s.group = s.createGroup(s.factories.Group.Create(s.createCourse().CourseID))
	s.owner = s.createUser("Olive", "Owner")
}

func (s *MemberRepositoryTestSuite) TestAddCountFindRemove() {
	now := time.Now().UTC()
	member := s.createUser("Bob", "Builder")
	s.addMember(s.group.GroupID, s.owner.UserID, models.MemberRoleOwner, now)
	s.addMember(s.group.GroupID, member.UserID, models.MemberRoleMember, now)

	count, err := s.repos.Members.CountMembers(s.ctx, s.group.GroupID)
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	found, err := s.repos.Members.FindMember(s.ctx, s.group.GroupID, member.UserID)
	s.Require().NoError(err)
	s.Equal(models.MemberRoleMember, found.Role)

	removed, err := s.repos.Members.RemoveMember(s.ctx, s.group.GroupID, member.UserID)
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	removed, err = s.repos.Members.RemoveMember(s.ctx, s.group.GroupID, member.UserID)
	s.Require().NoError(err)
	s.Zero(removed)

	_, err = s.repos.Members.FindMember(s.ctx, s.group.GroupID, member.UserID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *MemberRepositoryTestSuite) TestAddMember_DuplicateRejected() {
	now := time.Now().UTC()
	s.addMember(s.group.GroupID, s.owner.UserID, models.MemberRoleOwner, now)

	err := s.repos.Members.AddMember(s.ctx, &models.GroupMember{GroupID: s.group.GroupID, UserID: s.owner.UserID, Role: models.MemberRoleMember})
	s.Error(err)
}

func (s *MemberRepositoryTestSuite) TestListMembers_OwnerFirst() {
	early := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	first := s.createUser("Ann", "Early")
	s.addMember(s.group.GroupID, first.UserID, models.MemberRoleMember, early)
	s.addMember(s.group.GroupID, s.owner.UserID, models.MemberRoleOwner, early.Add(time.Hour))

	rows, err := s.repos.Members.ListMembers(s.ctx, s.group.GroupID)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Olive Owner", rows[0].UserName)
	s.Equal("owner", rows[0].Role)
	s.Equal("Ann Early", rows[1].UserName)
}

func (s *MemberRepositoryTestSuite) TestListUserGroups() {
	other := s.createGroup(s.factories.Group.Private(s.group.CourseID))
	s.addMember(s.group.GroupID, s.owner.UserID, models.MemberRoleOwner, time.Now())
	s.addMember(other.GroupID, s.owner.UserID, models.MemberRoleMember, time.Now())

	rows, err := s.repos.Members.ListUserGroups(s.ctx, s.owner.UserID)
	s.Require().NoError(err)
	s.Len(rows, 2)
	for _, row := range rows {
		s.NotEmpty(row.CourseCode)
		if row.GroupID == other.GroupID {
			s.True(row.IsPrivate)
			s.Equal("member", row.Role)
		}
	}
}

func (s *MemberRepositoryTestSuite) TestLockGroup() {
	group, err := s.repos.Members.LockGroup(s.ctx, s.group.GroupID)
	s.Require().NoError(err)
	s.Equal(s.group.MaxMembers, group.MaxMembers)

	_, err = s.repos.Members.LockGroup(s.ctx, 9999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
