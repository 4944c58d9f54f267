package service_test

import (
	"context"
	"testing"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService(t *testing.T) {
	ctx := context.Background()

	t.Run("members post and read", func(t *testing.T) {
		fx := newFixture(t)
		svc := service.NewChatService(fx.repos, fx.publisher, service.NewValidator())
		group, owner := fx.publicGroup(t, 5)
		member := fx.user(t)
		fx.join(t, group.GroupID, member.UserID)

		_, err := svc.Post(ctx, group.GroupID, &service.PostChatMessageRequest{UserID: owner.UserID, Content: "Meet at 5?"})
		require.NoError(t, err)
		id, err := svc.Post(ctx, group.GroupID, &service.PostChatMessageRequest{UserID: member.UserID, Content: "<i>Sure</i>"})
		require.NoError(t, err)

		rows, err := svc.List(ctx, group.GroupID, member.UserID, 0)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, id, rows[1].MessageID)
		assert.Equal(t, "Sure", rows[1].Content)
		assert.Equal(t, []events.Type{events.ChatMessagePosted, events.ChatMessagePosted}, fx.publisher.types())
	})

	t.Run("outsiders are refused", func(t *testing.T) {
		fx := newFixture(t)
		svc := service.NewChatService(fx.repos, fx.publisher, service.NewValidator())
		group, _ := fx.publicGroup(t, 5)
		outsider := fx.user(t)

		_, err := svc.Post(ctx, group.GroupID, &service.PostChatMessageRequest{UserID: outsider.UserID, Content: "hi"})
		assert.ErrorIs(t, err, apperrors.ErrNotMember)

		_, err = svc.List(ctx, group.GroupID, outsider.UserID, 10)
		assert.ErrorIs(t, err, apperrors.ErrNotMember)
		assert.Empty(t, fx.publisher.types())
	})

	t.Run("unknown group and empty content", func(t *testing.T) {
		fx := newFixture(t)
		svc := service.NewChatService(fx.repos, fx.publisher, service.NewValidator())
		group, owner := fx.publicGroup(t, 5)

		_, err := svc.List(ctx, 999, owner.UserID, 10)
		assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)

		_, err = svc.Post(ctx, group.GroupID, &service.PostChatMessageRequest{UserID: owner.UserID, Content: "   "})
		assert.True(t, apperrors.IsValidation(err))
	})
}
