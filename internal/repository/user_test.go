package repository

import (
	"testing"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UserRepositoryTestSuite struct {
	repoSuite
}

func (s *UserRepositoryTestSuite) TestCreate_NormalizesEmail() {
	user := &models.User{Email: "  Jane.Doe@School.EDU ", PasswordHash: "x", FirstName: "Jane", LastName: "Doe"}

	s.Require().NoError(s.repos.Users.Create(s.ctx, user))

	s.NotZero(user.UserID)
	s.Equal("jane.doe@school.edu", user.Email)
}

func (s *UserRepositoryTestSuite) TestCreate_DuplicateEmail() {
	s.Require().NoError(s.repos.Users.Create(s.ctx, &models.User{Email: "a@b.edu", PasswordHash: "x", FirstName: "A", LastName: "B"}))

	err := s.repos.Users.Create(s.ctx, &models.User{Email: "A@B.edu", PasswordHash: "y", FirstName: "C", LastName: "D"})
	s.Error(err)
}

func (s *UserRepositoryTestSuite) TestGetByEmail_CaseInsensitive() {
	created := s.createUser("Jane", "Doe")

	found, err := s.repos.Users.GetByEmail(s.ctx, "  "+created.Email)
	s.Require().NoError(err)
	s.Equal(created.UserID, found.UserID)
	s.Equal("Jane Doe", found.FullName())
}

func (s *UserRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repos.Users.GetByID(s.ctx, 999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *UserRepositoryTestSuite) TestAccount_JoinsCatalogNames() {
	college := &models.College{CollegeName: "College of Engineering"}
	s.Require().NoError(s.repos.Catalog.CreateCollege(s.ctx, college))
	user := s.createUser("Jane", "Doe")

	account, err := s.repos.Users.GetAccount(s.ctx, user.UserID)
	s.Require().NoError(err)
	s.Nil(account.CollegeName)
	s.Nil(account.MajorName)

	s.Require().NoError(s.repos.Users.UpdateAccount(s.ctx, user.UserID, map[string]interface{}{
		"college_id": college.CollegeID,
		"bio":        "Night owl",
	}))

	account, err = s.repos.Users.GetAccount(s.ctx, user.UserID)
	s.Require().NoError(err)
	s.Require().NotNil(account.CollegeName)
	s.Equal("College of Engineering", *account.CollegeName)
	s.Require().NotNil(account.Bio)
	s.Equal("Night owl", *account.Bio)
	s.Equal(user.Email, account.Email)
}

func (s *UserRepositoryTestSuite) TestAccount_UnknownUser() {
	_, err := s.repos.Users.GetAccount(s.ctx, 999)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	err = s.repos.Users.UpdateAccount(s.ctx, 999, map[string]interface{}{"first_name": "X"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
