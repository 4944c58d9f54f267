package repository

import (
	"context"
	"strings"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAccount retrieves a user's profile with college and major names. Both are optional.
func (r *UserRepository) GetAccount(ctx context.Context, id uint) (*AccountRow, error) {
	var row AccountRow
	result := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.user_id, u.first_name, u.last_name, u.email, u.college_level, "+
			"u.college_id, c.college_name, u.major_id, m.major_name, u.bio").
		Joins("LEFT JOIN colleges c ON c.college_id = u.college_id").
		Joins("LEFT JOIN majors m ON m.major_id = u.major_id").
		Where("u.user_id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// UpdateAccount applies column updates to a user
func (r *UserRepository) UpdateAccount(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("user_id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when nothing changed
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
