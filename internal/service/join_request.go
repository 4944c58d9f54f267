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

// JoinRequestService drives the pending -> approved | rejected workflow of public groups
type JoinRequestService struct {
	tx         repository.Transactor
	repos      *repository.Repositories
	membership *MembershipService
	publisher  events.Publisher
}

// NewJoinRequestService creates a new join request service
func NewJoinRequestService(tx repository.Transactor, repos *repository.Repositories, membership *MembershipService, publisher events.Publisher) *JoinRequestService {
	return &JoinRequestService{
		tx:         tx,
		repos:      repos,
		membership: membership,
		publisher:  publisher,
	}
}

// Create files a pending request. The group row is locked while the checks run, so two
// concurrent requests by the same user cannot both be inserted.
func (s *JoinRequestService) Create(ctx context.Context, groupID, userID uint) error {
	if userID == 0 {
		return apperrors.NewValidationError("user_id", "is required")
	}

	var requestID uint
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		group, err := tx.Members.LockGroup(ctx, groupID)
		if err != nil {
			return notFound(err, apperrors.ErrGroupNotFound, "lock group")
		}
		if group.IsPrivate {
			return apperrors.ErrGroupIsPrivate
		}

		if _, err := tx.Members.FindMember(ctx, groupID, userID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		active, err := tx.JoinRequests.FindActive(ctx, groupID, userID)
		if err != nil {
			return fmt.Errorf("failed to check existing requests: %w", err)
		}
		for _, r := range active {
			if r.JoinStatus == models.JoinStatusPending {
				return apperrors.ErrRequestPending
			}
		}
		if len(active) > 0 {
			return apperrors.ErrRequestApproved
		}

		req := &models.JoinRequest{
			GroupID:    groupID,
			UserID:     userID,
			JoinStatus: models.JoinStatusPending,
		}
		if err := tx.JoinRequests.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to create join request: %w", err)
		}
		requestID = req.RequestID
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.JoinRequestCreated,
		Key:     groupKey(groupID),
		ActorID: userID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": userID, "request_id": requestID},
	})
	return nil
}

// Approve adds the requester through the membership engine and marks the request approved.
// Membership errors are returned unchanged and leave the request pending.
func (s *JoinRequestService) Approve(ctx context.Context, ownerID, groupID, targetUserID uint) error {
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := requireOwner(ctx, tx.Members, groupID, ownerID); err != nil {
			return err
		}

		req, err := tx.JoinRequests.LockPending(ctx, groupID, targetUserID)
		if err != nil {
			return notFound(err, apperrors.ErrNoPendingRequest, "load pending request")
		}

		if err := s.membership.AddMemberTx(ctx, tx.Members, groupID, targetUserID, models.MemberRoleMember); err != nil {
			return err
		}

		if err := tx.JoinRequests.UpdateStatus(ctx, req.RequestID, models.JoinStatusApproved, ownerID); err != nil {
			return fmt.Errorf("failed to approve request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id": groupID,
		"user_id":  targetUserID,
		"owner_id": ownerID,
	}).Info("join request approved")
	publish(ctx, s.publisher, events.Event{
		Type:    events.JoinRequestApproved,
		Key:     groupKey(groupID),
		ActorID: ownerID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": targetUserID},
	})
	return nil
}

// Reject closes the pending request without adding a member
func (s *JoinRequestService) Reject(ctx context.Context, ownerID, groupID, targetUserID uint) error {
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := requireOwner(ctx, tx.Members, groupID, ownerID); err != nil {
			return err
		}

		req, err := tx.JoinRequests.LockPending(ctx, groupID, targetUserID)
		if err != nil {
			return notFound(err, apperrors.ErrNoPendingRequest, "load pending request")
		}

		if err := tx.JoinRequests.UpdateStatus(ctx, req.RequestID, models.JoinStatusRejected, ownerID); err != nil {
			return fmt.Errorf("failed to reject request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.JoinRequestRejected,
		Key:     groupKey(groupID),
		ActorID: ownerID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": targetUserID},
	})
	return nil
}

// ListPending returns the pending requests of a group to its owner
func (s *JoinRequestService) ListPending(ctx context.Context, ownerID, groupID uint) ([]repository.PendingRequestRow, error) {
	if err := requireOwner(ctx, s.repos.Members, groupID, ownerID); err != nil {
		return nil, err
	}
	rows, err := s.repos.JoinRequests.ListPendingByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return rows, nil
}
