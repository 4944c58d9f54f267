package service_test

import (
	"context"
	"testing"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	strPtr := func(s string) *string { return &s }
	uintPtr := func(u uint) *uint { return &u }

	setup := func(t *testing.T) (*fixture, *service.AccountService, *models.User) {
		fx := newFixture(t)
		return fx, service.NewAccountService(fx.repos.Users, service.NewValidator()), fx.user(t)
	}

	t.Run("updates only the given fields", func(t *testing.T) {
		fx, svc, user := setup(t)
		major := &models.Major{MajorName: "Computer Science"}
		testutils.MustCreate(t, fx.db, major)

		err := svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{
			Email:   strPtr("  New.Address@School.EDU "),
			MajorID: uintPtr(major.MajorID),
			Bio:     strPtr("Night owl"),
		})
		require.NoError(t, err)

		account, err := svc.GetAccount(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, "new.address@school.edu", account.Email)
		assert.Equal(t, user.FirstName, account.FirstName)
		require.NotNil(t, account.MajorName)
		assert.Equal(t, "Computer Science", *account.MajorName)
	})

	t.Run("zero id and blank bio clear the field", func(t *testing.T) {
		_, svc, user := setup(t)
		require.NoError(t, svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{Bio: strPtr("Hi")}))

		require.NoError(t, svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{
			Bio:       strPtr("   "),
			CollegeID: uintPtr(0),
		}))

		account, err := svc.GetAccount(ctx, user.UserID)
		require.NoError(t, err)
		assert.Nil(t, account.Bio)
		assert.Nil(t, account.CollegeID)
	})

	t.Run("email taken by someone else", func(t *testing.T) {
		fx, svc, user := setup(t)
		other := fx.user(t)

		err := svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{Email: strPtr(other.Email)})
		assert.ErrorIs(t, err, apperrors.ErrEmailRegistered)

		err = svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{Email: strPtr(user.Email)})
		assert.NoError(t, err)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, svc, user := setup(t)

		err := svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{FirstName: strPtr("  ")})
		assert.True(t, apperrors.IsValidation(err))

		err = svc.UpdateAccount(ctx, user.UserID, &service.UpdateAccountRequest{Email: strPtr("nope")})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, svc, _ := setup(t)

		_, err := svc.GetAccount(ctx, 999)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

		err = svc.UpdateAccount(ctx, 999, &service.UpdateAccountRequest{LastName: strPtr("Smith")})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
