package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UpdateAccountRequest holds the profile fields a user may change. Nil fields stay as they are.
type UpdateAccountRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	CollegeLevel *string `json:"college_level,omitempty" validate:"omitempty,max=50"`
	CollegeID    *uint   `json:"college_id,omitempty"`
	MajorID      *uint   `json:"major_id,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

// AccountService reads and edits the logged in user's profile
type AccountService struct {
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(users repository.UserRepositoryInterface, validator *validator.Validate) *AccountService {
	return &AccountService{users: users, validator: validator}
}

// GetAccount returns the profile of userID
func (s *AccountService) GetAccount(ctx context.Context, userID uint) (*repository.AccountRow, error) {
	account, err := s.users.GetAccount(ctx, userID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "load account")
	}
	return account, nil
}

// UpdateAccount applies the non-nil fields of req. A college or major id of 0 clears it.
func (s *AccountService) UpdateAccount(ctx context.Context, userID uint, req *UpdateAccountRequest) error {
	if req.FirstName != nil {
		cleaned := cleanText(*req.FirstName)
		req.FirstName = &cleaned
	}
	if req.LastName != nil {
		cleaned := cleanText(*req.LastName)
		req.LastName = &cleaned
	}
	if req.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &normalized
	}
	if err := validateStruct(s.validator, req); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		existing, err := s.users.GetByEmail(ctx, *req.Email)
		switch {
		case err == nil && existing.UserID != userID:
			return apperrors.ErrEmailRegistered
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("failed to check email: %w", err)
		}
		updates["email"] = *req.Email
	}
	if req.CollegeLevel != nil {
		updates["college_level"] = cleanText(*req.CollegeLevel)
	}
	if req.CollegeID != nil {
		updates["college_id"] = nullableID(*req.CollegeID)
	}
	if req.MajorID != nil {
		updates["major_id"] = nullableID(*req.MajorID)
	}
	if req.Bio != nil {
		updates["bio"] = cleanOptional(req.Bio)
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.users.UpdateAccount(ctx, userID, updates); err != nil {
		return notFound(err, apperrors.ErrUserNotFound, "update account")
	}
	logger.WithContext(ctx).WithField("fields", len(updates)).Info("account updated")
	return nil
}

func nullableID(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
