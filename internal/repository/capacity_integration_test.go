//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// CapacityIntegrationTestSuite checks the group row lock against a real Postgres
type CapacityIntegrationTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	factories *testutils.FactorySet
}

func (s *CapacityIntegrationTestSuite) SetupSuite() {
	s.base = testutils.SetupTestSuite(s.T())
	s.factories = testutils.NewFactorySet()
}

func (s *CapacityIntegrationTestSuite) SetupTest() {
	s.base.CleanTestDB()
}

func (s *CapacityIntegrationTestSuite) TearDownSuite() {
	s.base.TeardownTestSuite()
}

func (s *CapacityIntegrationTestSuite) TestConcurrentJoinsNeverExceedCapacity() {
	ctx := context.Background()
	repos := NewRepositories(s.base.DB)

	course := s.factories.Course.Create()
	s.Require().NoError(repos.Courses.Create(ctx, course))
	group := s.factories.Group.WithCapacity(course.CourseID, 3)
	s.Require().NoError(repos.Groups.Create(ctx, group))

	const joiners = 10
	users := make([]*models.User, joiners)
	for i := range users {
		users[i] = s.factories.User.Create()
		s.Require().NoError(repos.Users.Create(ctx, users[i]))
	}

	transactor := NewTransactor(s.base.DB)
	var wg sync.WaitGroup
	errs := make(chan error, joiners)
	for _, user := range users {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			errs <- transactor.Transaction(ctx, func(tx *Repositories) error {
				locked, err := tx.Members.LockGroup(ctx, group.GroupID)
				if err != nil {
					return err
				}
				count, err := tx.Members.CountMembers(ctx, group.GroupID)
				if err != nil {
					return err
				}
				if count >= int64(locked.MaxMembers) {
					return nil
				}
				return tx.Members.AddMember(ctx, &models.GroupMember{GroupID: group.GroupID, UserID: userID, Role: models.MemberRoleMember})
			})
		}(user.UserID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	count, err := repos.Members.CountMembers(ctx, group.GroupID)
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func TestCapacityIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CapacityIntegrationTestSuite))
}
