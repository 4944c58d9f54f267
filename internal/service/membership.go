package service

import (
	"context"
	"errors"
	"fmt"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	"gorm.io/gorm"
)

// MembershipService is the capacity-safe membership engine shared by every join path
type MembershipService struct {
	tx        repository.Transactor
	publisher events.Publisher
}

// NewMembershipService creates a new membership service
func NewMembershipService(tx repository.Transactor, publisher events.Publisher) *MembershipService {
	return &MembershipService{
		tx:        tx,
		publisher: publisher,
	}
}

// AddMember adds userID to groupID as a plain member in its own transaction
func (s *MembershipService) AddMember(ctx context.Context, groupID, userID uint) error {
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		return s.AddMemberTx(ctx, tx.Members, groupID, userID, models.MemberRoleMember)
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.MemberAdded,
		Key:     groupKey(groupID),
		ActorID: userID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": userID},
	})
	return nil
}

// AddMemberTx runs the membership checks and insert against store, which must be bound to
// the caller's transaction. The group row stays locked until that transaction ends, so
// concurrent callers for the same group are serialized and cannot overshoot max_members.
func (s *MembershipService) AddMemberTx(ctx context.Context, store repository.MembershipStore, groupID, userID uint, role models.MemberRole) error {
	group, err := store.LockGroup(ctx, groupID)
	if err != nil {
		return notFound(err, apperrors.ErrGroupNotFound, "lock group")
	}

	count, err := store.CountMembers(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count >= int64(group.MaxMembers) {
		return apperrors.ErrGroupFull
	}

	if _, err := store.FindMember(ctx, groupID, userID); err == nil {
		return apperrors.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	if err := store.AddMember(ctx, &models.GroupMember{
		GroupID: groupID,
		UserID:  userID,
		Role:    role,
	}); err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id": groupID,
		"user_id":  userID,
		"role":     role,
	}).Debug("member added")
	return nil
}

// requireOwner fails with ErrNotOwner unless userID holds the owner role in groupID
func requireOwner(ctx context.Context, store repository.MembershipStore, groupID, userID uint) error {
	member, err := store.FindMember(ctx, groupID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotOwner
	}
	if err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	if member.Role != models.MemberRoleOwner {
		return apperrors.ErrNotOwner
	}
	return nil
}
