package repository

import (
	"context"
	"time"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
)

// SessionRepository handles database operations for study sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new study session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new study session
func (r *SessionRepository) Create(ctx context.Context, session *models.StudySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// ListUpcomingForUser lists sessions on or after from in groups the user belongs to
func (r *SessionRepository) ListUpcomingForUser(ctx context.Context, userID uint, from time.Time, limit int) ([]UpcomingSessionRow, error) {
	var rows []UpcomingSessionRow
	err := r.db.WithContext(ctx).
		Table("study_sessions AS s").
		Select("s.session_id, s.group_id, g.group_name, s.session_date, s.start_time, s.end_time, s.location").
		Joins("JOIN study_groups g ON g.group_id = s.group_id").
		Joins("JOIN group_members gm ON gm.group_id = s.group_id").
		Where("gm.user_id = ? AND s.session_date >= ?", userID, from).
		Order("s.session_date").
		Order("s.start_time").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
