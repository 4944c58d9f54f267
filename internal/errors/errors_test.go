package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "course"}
		assert.Equal(t, "course not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "course"}
		err2 := &NotFoundError{Entity: "course"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "course"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(NewNotFoundError("user")))
		assert.False(t, IsNotFound(ErrGroupFull))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(NewAlreadyExistsError("user", "")))
		assert.False(t, IsAlreadyExists(ErrAlreadyMember))
	})
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, "validation error: title - is required", NewValidationError("title", "is required").Error())
	assert.Equal(t, "validation error: bad input", NewValidationError("", "bad input").Error())
	assert.True(t, IsValidation(NewValidationError("title", "is required")))
}

func TestDomainErrorIs(t *testing.T) {
	t.Run("matches by code through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("approve: %w", ErrGroupFull)
		assert.True(t, errors.Is(wrapped, ErrGroupFull))
		assert.False(t, errors.Is(wrapped, ErrAlreadyMember))
	})

	t.Run("code helper", func(t *testing.T) {
		assert.Equal(t, "GROUP_FULL", Code(fmt.Errorf("x: %w", ErrGroupFull)))
		assert.Equal(t, "", Code(errors.New("db down")))
	})

	t.Run("IsDomain helper", func(t *testing.T) {
		assert.True(t, IsDomain(ErrInvalidCode))
		assert.False(t, IsDomain(NewValidationError("x", "y")))
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"group not found", ErrGroupNotFound, http.StatusNotFound},
		{"group full", ErrGroupFull, http.StatusConflict},
		{"already member", ErrAlreadyMember, http.StatusConflict},
		{"group is private", ErrGroupIsPrivate, http.StatusForbidden},
		{"request pending", ErrRequestPending, http.StatusConflict},
		{"request approved", ErrRequestApproved, http.StatusConflict},
		{"not owner", ErrNotOwner, http.StatusForbidden},
		{"no pending request", ErrNoPendingRequest, http.StatusNotFound},
		{"not private group", ErrNotPrivateGroup, http.StatusBadRequest},
		{"invalid code", ErrInvalidCode, http.StatusNotFound},
		{"code expired", ErrCodeExpired, http.StatusGone},
		{"owner cannot remove self", ErrOwnerCannotRemoveSelf, http.StatusBadRequest},
		{"not logged in", ErrNotLoggedIn, http.StatusUnauthorized},
		{"user mismatch", ErrUserMismatch, http.StatusForbidden},
		{"flashcard not found", ErrFlashcardNotFound, http.StatusNotFound},
		{"message self", ErrCannotMessageSelf, http.StatusBadRequest},
		{"not participant", ErrNotParticipant, http.StatusForbidden},
		{"dm request decided", ErrRequestDecided, http.StatusConflict},
		{"dm request not found", ErrRequestNotFound, http.StatusNotFound},
		{"wrapped domain error", fmt.Errorf("join: %w", ErrGroupFull), http.StatusConflict},
		{"validation error", NewValidationError("title", "required"), http.StatusBadRequest},
		{"generic not found", NewNotFoundError("user"), http.StatusNotFound},
		{"generic exists", NewAlreadyExistsError("user", ""), http.StatusConflict},
		{"authentication", NewAuthenticationError("bad token"), http.StatusUnauthorized},
		{"authorization", NewAuthorizationError("nope"), http.StatusForbidden},
		{"infrastructure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Group is full", PublicMessage(fmt.Errorf("approve: %w", ErrGroupFull)))
	assert.Equal(t, "max_members must be at least 1", PublicMessage(NewValidationError("max_members", "must be at least 1")))
	assert.Equal(t, "Question 2 is missing text", PublicMessage(NewValidationError("", "Question 2 is missing text")))
	assert.Equal(t, "user not found", PublicMessage(NewNotFoundError("user")))
}
