package repository

import (
	"context"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository is the GORM implementation of MembershipStore
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// LockGroup reads the group with SELECT ... FOR UPDATE. Without a surrounding
// transaction the lock is released as soon as the statement ends.
func (r *MemberRepository) LockGroup(ctx context.Context, groupID uint) (*models.StudyGroup, error) {
	var group models.StudyGroup
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&group, "group_id = ?", groupID).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// FindGroup reads the group without locking
func (r *MemberRepository) FindGroup(ctx context.Context, groupID uint) (*models.StudyGroup, error) {
	var group models.StudyGroup
	if err := r.db.WithContext(ctx).First(&group, "group_id = ?", groupID).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// CountMembers counts the members of a group
func (r *MemberRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// FindMember retrieves a membership row
func (r *MemberRepository) FindMember(ctx context.Context, groupID, userID uint) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.WithContext(ctx).
		First(&member, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// AddMember inserts a membership row
func (r *MemberRepository) AddMember(ctx context.Context, member *models.GroupMember) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(member).Error
}

// RemoveMember deletes a membership row and reports how many rows were removed
func (r *MemberRepository) RemoveMember(ctx context.Context, groupID, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{})
	return result.RowsAffected, result.Error
}

// ListMembers lists members with their names, owners first
func (r *MemberRepository) ListMembers(ctx context.Context, groupID uint) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.WithContext(ctx).
		Table("group_members AS gm").
		Select("gm.user_id, CONCAT(u.first_name, ' ', u.last_name) AS user_name, gm.role, gm.joined_at").
		Joins("JOIN users u ON u.user_id = gm.user_id").
		Where("gm.group_id = ?", groupID).
		Order("CASE WHEN gm.role = 'owner' THEN 0 ELSE 1 END").
		Order("gm.joined_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUserGroups lists the groups a user belongs to
func (r *MemberRepository) ListUserGroups(ctx context.Context, userID uint) ([]UserGroupRow, error) {
	var rows []UserGroupRow
	err := r.db.WithContext(ctx).
		Table("group_members AS gm").
		Select("g.group_id, g.group_name, g.is_private, gm.role, c.course_code").
		Joins("JOIN study_groups g ON g.group_id = gm.group_id").
		Joins("JOIN courses c ON c.course_id = g.course_id").
		Where("gm.user_id = ?", userID).
		Order("g.group_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
