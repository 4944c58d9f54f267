package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inviteHarness struct {
	*fixture
	service *service.InviteService
	codes   []string
}

func newInviteHarness(t *testing.T) *inviteHarness {
	fx := newFixture(t)
	h := &inviteHarness{fixture: fx}
	h.service = service.NewInviteService(fx.tx, fx.membership, fx.publisher, 10*time.Minute, func() time.Time { return h.now })
	h.service.SetCodeGenerator(func() (string, error) {
		if len(h.codes) == 0 {
			t.Fatal("no invite code queued")
		}
		code := h.codes[0]
		h.codes = h.codes[1:]
		return code, nil
	})
	return h
}

func TestInviteGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores code with ttl", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"ABCD2345"}
		group, owner := h.privateGroup(t)

		invite, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)
		assert.Equal(t, "ABCD2345", invite.Code)
		assert.True(t, invite.ExpiresAt.Equal(h.now.Add(10*time.Minute)))

		stored, err := h.repos.Groups.GetByID(ctx, group.GroupID)
		require.NoError(t, err)
		require.NotNil(t, stored.InviteCode)
		assert.Equal(t, "ABCD2345", *stored.InviteCode)
	})

	t.Run("public group", func(t *testing.T) {
		h := newInviteHarness(t)
		group, owner := h.publicGroup(t, 5)

		_, err := h.service.Generate(ctx, owner.UserID, group.GroupID)

		assert.ErrorIs(t, err, apperrors.ErrNotPrivateGroup)
	})

	t.Run("not owner", func(t *testing.T) {
		h := newInviteHarness(t)
		group, _ := h.privateGroup(t)
		member := h.user(t)
		h.join(t, group.GroupID, member.UserID)

		_, err := h.service.Generate(ctx, member.UserID, group.GroupID)

		assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	})

	t.Run("unknown group", func(t *testing.T) {
		h := newInviteHarness(t)

		_, err := h.service.Generate(ctx, 1, 404)

		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
	})
}

func TestInviteRedeem(t *testing.T) {
	ctx := context.Background()

	t.Run("joins the private group", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"ABCD2345"}
		group, owner := h.privateGroup(t)
		_, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)
		user := h.user(t)

		groupID, err := h.service.Redeem(ctx, user.UserID, " abcd2345 ")

		require.NoError(t, err)
		assert.Equal(t, group.GroupID, groupID)
		assert.Equal(t, int64(2), h.memberCount(t, group.GroupID))
	})

	t.Run("regenerating invalidates the old code", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"OLDC2345", "NEWC2345"}
		group, owner := h.privateGroup(t)
		_, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)
		_, err = h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)

		_, err = h.service.Redeem(ctx, h.user(t).UserID, "OLDC2345")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)

		_, err = h.service.Redeem(ctx, h.user(t).UserID, "NEWC2345")
		assert.NoError(t, err)
	})

	t.Run("expires at the expiry instant", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"EXPC2345"}
		group, owner := h.privateGroup(t)
		invite, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)

		h.now = invite.ExpiresAt.Add(-time.Millisecond)
		_, err = h.service.Redeem(ctx, h.user(t).UserID, invite.Code)
		assert.NoError(t, err)

		h.now = invite.ExpiresAt
		_, err = h.service.Redeem(ctx, h.user(t).UserID, invite.Code)
		assert.ErrorIs(t, err, apperrors.ErrCodeExpired)
	})

	t.Run("already member", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"MEMB2345"}
		group, owner := h.privateGroup(t)
		_, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)

		_, err = h.service.Redeem(ctx, owner.UserID, "MEMB2345")

		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("full group", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"FULL2345"}
		course := h.course(t)
		group := h.factories.Group.Private(course.CourseID)
		group.MaxMembers = 1
		group, owner := h.ownedGroup(t, group)
		_, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)

		_, err = h.service.Redeem(ctx, h.user(t).UserID, "FULL2345")

		assert.ErrorIs(t, err, apperrors.ErrGroupFull)
	})

	t.Run("unknown code", func(t *testing.T) {
		h := newInviteHarness(t)

		_, err := h.service.Redeem(ctx, h.user(t).UserID, "NOPE2345")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
	})

	t.Run("missing input", func(t *testing.T) {
		h := newInviteHarness(t)

		_, err := h.service.Redeem(ctx, 0, "ABCD2345")
		assert.True(t, apperrors.IsValidation(err))

		_, err = h.service.Redeem(ctx, 1, "   ")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("code that went public", func(t *testing.T) {
		h := newInviteHarness(t)
		h.codes = []string{"PUBL2345"}
		group, owner := h.privateGroup(t)
		_, err := h.service.Generate(ctx, owner.UserID, group.GroupID)
		require.NoError(t, err)
		require.NoError(t, h.db.Model(&models.StudyGroup{}).Where("group_id = ?", group.GroupID).Update("is_private", false).Error)

		_, err = h.service.Redeem(ctx, h.user(t).UserID, "PUBL2345")

		assert.ErrorIs(t, err, apperrors.ErrNotPrivateGroup)
	})
}

func TestDefaultInviteCodeShape(t *testing.T) {
	fx := newFixture(t)
	svc := service.NewInviteService(fx.tx, fx.membership, fx.publisher, 0, nil)
	group, owner := fx.privateGroup(t)

	invite, err := svc.Generate(context.Background(), owner.UserID, group.GroupID)

	require.NoError(t, err)
	assert.Len(t, invite.Code, service.InviteCodeLength)
	for _, r := range invite.Code {
		assert.True(t, strings.ContainsRune(service.InviteCodeAlphabet, r), "unexpected rune %q", r)
	}
	assert.WithinDuration(t, time.Now().Add(service.DefaultInviteCodeTTL), invite.ExpiresAt, time.Minute)
}
