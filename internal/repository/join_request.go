package repository

import (
	"context"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JoinRequestRepository handles database operations for join requests
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// Create creates a new join request
func (r *JoinRequestRepository) Create(ctx context.Context, req *models.JoinRequest) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
}

// FindActive returns the pending and approved requests of a user for a group
func (r *JoinRequestRepository) FindActive(ctx context.Context, groupID, userID uint) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ? AND join_status IN ?", groupID, userID,
			[]models.JoinStatus{models.JoinStatusPending, models.JoinStatusApproved}).
		Order("request_id").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// LockPending retrieves the oldest pending request of a user for a group and locks it
func (r *JoinRequestRepository) LockPending(ctx context.Context, groupID, userID uint) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("group_id = ? AND user_id = ? AND join_status = ?", groupID, userID, models.JoinStatusPending).
		Order("request_id").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus moves a request to its decided status and records who decided it
func (r *JoinRequestRepository) UpdateStatus(ctx context.Context, requestID uint, status models.JoinStatus, decidedBy uint) error {
	return r.db.WithContext(ctx).Model(&models.JoinRequest{}).
		Where("request_id = ?", requestID).
		Updates(map[string]interface{}{
			"join_status": status,
			"approved_by": decidedBy,
		}).Error
}

// ListPendingByGroup lists the pending requests of a group, oldest first
func (r *JoinRequestRepository) ListPendingByGroup(ctx context.Context, groupID uint) ([]PendingRequestRow, error) {
	var rows []PendingRequestRow
	err := r.db.WithContext(ctx).
		Table("join_requests AS jr").
		Select("jr.request_id, jr.user_id, CONCAT(u.first_name, ' ', u.last_name) AS user_name, jr.request_date").
		Joins("JOIN users u ON u.user_id = jr.user_id").
		Where("jr.group_id = ? AND jr.join_status = ?", groupID, models.JoinStatusPending).
		Order("jr.request_date").
		Order("jr.request_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
