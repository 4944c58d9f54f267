package handlers

import (
	"net/http"
	"testing"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		raw    string
		want   uint
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ctx, recorder := testutils.CreateTestGinContext()
			testutils.SetJSONBody(ctx, nil)
			testutils.SetURLParam(ctx, "id", tt.raw)

			got, ok := pathID(ctx, "id")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if !ok {
				testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid id")
			}
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	t.Run("absent id yields zero", func(t *testing.T) {
		ctx, _ := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)

		id, ok := queryID(ctx, "user_id")
		assert.True(t, ok)
		assert.Zero(t, id)
	})

	t.Run("id and limit are parsed", func(t *testing.T) {
		ctx, _ := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)
		testutils.SetQueryParam(ctx, "user_id", "7")
		testutils.SetQueryParam(ctx, "limit", "-1")

		id, ok := queryID(ctx, "user_id")
		assert.True(t, ok)
		assert.Equal(t, uint(7), id)

		limit, ok := queryInt(ctx, "limit", 20)
		assert.True(t, ok)
		assert.Equal(t, -1, limit)
	})

	t.Run("bad limit is rejected", func(t *testing.T) {
		ctx, recorder := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)
		testutils.SetQueryParam(ctx, "limit", "ten")

		_, ok := queryInt(ctx, "limit", 20)
		assert.False(t, ok)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid limit")
	})
}

func TestActingUser(t *testing.T) {
	t.Run("unauthenticated caller uses the body id", func(t *testing.T) {
		ctx, _ := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)

		id, ok := actingUser(ctx, 1005, apperrors.ErrUserMismatch)
		assert.True(t, ok)
		assert.Equal(t, uint(1005), id)
	})

	t.Run("token fills a missing body id", func(t *testing.T) {
		ctx, _ := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)
		ctx.Set("user_id", uint(77))

		id, ok := actingUser(ctx, 0, apperrors.ErrUserMismatch)
		assert.True(t, ok)
		assert.Equal(t, uint(77), id)
	})

	t.Run("matching body id is accepted", func(t *testing.T) {
		ctx, _ := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)
		ctx.Set("user_id", uint(77))

		id, ok := actingUser(ctx, 77, apperrors.ErrNotOwner)
		assert.True(t, ok)
		assert.Equal(t, uint(77), id)
	})

	t.Run("body id cannot override the token", func(t *testing.T) {
		ctx, recorder := testutils.CreateTestGinContext()
		testutils.SetJSONBody(ctx, nil)
		ctx.Set("user_id", uint(77))

		_, ok := actingUser(ctx, 1001, apperrors.ErrNotOwner)
		assert.False(t, ok)

		var response ErrorResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, "NOT_OWNER", response.Code)
	})
}
