package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const (
	// InviteCodeAlphabet leaves out I, O, 0 and 1
	InviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	InviteCodeLength   = 8

	DefaultInviteCodeTTL = 10 * time.Minute
)

// InviteCode is a freshly generated code and the instant it stops being accepted
type InviteCode struct {
	Code      string    `json:"invite_code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InviteService issues and redeems the single invite code slot of private groups
type InviteService struct {
	tx         repository.Transactor
	membership *MembershipService
	publisher  events.Publisher
	ttl        time.Duration
	now        Clock
	generate   func() (string, error)
}

// NewInviteService creates a new invite service. A zero ttl uses DefaultInviteCodeTTL.
func NewInviteService(tx repository.Transactor, membership *MembershipService, publisher events.Publisher, ttl time.Duration, now Clock) *InviteService {
	if ttl <= 0 {
		ttl = DefaultInviteCodeTTL
	}
	if now == nil {
		now = time.Now
	}
	return &InviteService{
		tx:         tx,
		membership: membership,
		publisher:  publisher,
		ttl:        ttl,
		now:        now,
		generate: func() (string, error) {
			return gonanoid.Generate(InviteCodeAlphabet, InviteCodeLength)
		},
	}
}

// Generate replaces the group's invite code. The previous code stops working immediately.
func (s *InviteService) Generate(ctx context.Context, ownerID, groupID uint) (*InviteCode, error) {
	var invite *InviteCode
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		group, err := tx.Members.LockGroup(ctx, groupID)
		if err != nil {
			return notFound(err, apperrors.ErrGroupNotFound, "lock group")
		}
		if !group.IsPrivate {
			return apperrors.ErrNotPrivateGroup
		}
		if err := requireOwner(ctx, tx.Members, groupID, ownerID); err != nil {
			return err
		}

		code, err := s.generate()
		if err != nil {
			return fmt.Errorf("failed to generate invite code: %w", err)
		}
		expiresAt := s.now().UTC().Add(s.ttl)

		if err := tx.Groups.SetInviteCode(ctx, groupID, code, expiresAt); err != nil {
			return fmt.Errorf("failed to store invite code: %w", err)
		}
		invite = &InviteCode{Code: code, ExpiresAt: expiresAt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("group_id", groupID).Info("invite code generated")
	publish(ctx, s.publisher, events.Event{
		Type:    events.InviteCodeGenerated,
		Key:     groupKey(groupID),
		ActorID: ownerID,
		Data:    map[string]interface{}{"group_id": groupID, "expires_at": invite.ExpiresAt},
	})
	return invite, nil
}

// Redeem joins userID to the private group holding code and returns the group id.
// A code is rejected from its expiry instant on.
func (s *InviteService) Redeem(ctx context.Context, userID uint, code string) (uint, error) {
	code = NormalizeInviteCode(code)
	if userID == 0 || code == "" {
		return 0, apperrors.NewValidationError("", "user_id and invite_code are required")
	}

	var groupID uint
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		group, err := tx.Groups.LockByInviteCode(ctx, code)
		if err != nil {
			return notFound(err, apperrors.ErrInvalidCode, "look up invite code")
		}
		if !group.IsPrivate {
			return apperrors.ErrNotPrivateGroup
		}
		if group.InviteExpiresAt == nil || !s.now().Before(*group.InviteExpiresAt) {
			return apperrors.ErrCodeExpired
		}

		if _, err := tx.Members.FindMember(ctx, group.GroupID, userID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check membership: %w", err)
		}

		if err := s.membership.AddMemberTx(ctx, tx.Members, group.GroupID, userID, models.MemberRoleMember); err != nil {
			return err
		}
		groupID = group.GroupID
		return nil
	})
	if err != nil {
		return 0, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.InviteCodeRedeemed,
		Key:     groupKey(groupID),
		ActorID: userID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": userID},
	})
	return groupID, nil
}

// NormalizeInviteCode trims and upper-cases user input
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
