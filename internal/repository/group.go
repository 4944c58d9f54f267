package repository

import (
	"context"
	"time"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const lastSessionExpr = "(SELECT MAX(s.session_date) FROM study_sessions s WHERE s.group_id = g.group_id)"

// GroupRepository handles database operations for study groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new study group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a new study group
func (r *GroupRepository) Create(ctx context.Context, group *models.StudyGroup) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(group).Error
}

// GetByID retrieves a study group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id uint) (*models.StudyGroup, error) {
	var group models.StudyGroup
	if err := r.db.WithContext(ctx).First(&group, "group_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// LockByInviteCode retrieves the group currently holding code and locks its row
func (r *GroupRepository) LockByInviteCode(ctx context.Context, code string) (*models.StudyGroup, error) {
	var group models.StudyGroup
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&group, "invite_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// SetInviteCode replaces the group's invite code and expiry
func (r *GroupRepository) SetInviteCode(ctx context.Context, id uint, code string, expiresAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.StudyGroup{}).
		Where("group_id = ?", id).
		Updates(map[string]interface{}{
			"invite_code":       code,
			"invite_expires_at": expiresAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPublicByCourse returns public groups of a course, most recently active first
func (r *GroupRepository) ListPublicByCourse(ctx context.Context, courseID uint, limit int) ([]PublicGroupRow, error) {
	var rows []PublicGroupRow
	err := r.db.WithContext(ctx).
		Table("study_groups AS g").
		Select("g.group_id, g.group_name, g.max_members, "+
			"(SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.group_id) AS members, "+
			lastSessionExpr+" AS last_session").
		Where("g.course_id = ? AND g.is_private = ?", courseID, false).
		Order(lastSessionExpr + " IS NULL").
		Order("last_session DESC").
		Order("members DESC").
		Order("g.group_id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
