package handlers

import (
	"net/http"
	"testing"
	"time"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/mocks"
	"studybuddy-backend/internal/service"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupInviteRouter(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockInviteServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockInviteServiceInterface(ctrl)
	handler := NewInviteHandler(mockService)

	h := testutils.SetupHTTPTest()
	h.Router.POST("/groups/join-with-code", handler.JoinWithCode)
	h.Router.POST("/groups/:id/invite-code", handler.GenerateCode)
	return h, mockService
}

func TestGenerateCode(t *testing.T) {
	h, mockService := setupInviteRouter(t)
	expires := time.Date(2025, 3, 10, 12, 10, 0, 0, time.UTC)
	mockService.EXPECT().Generate(gomock.Any(), uint(1001), uint(4)).
		Return(&service.InviteCode{Code: "K7M2Q9XA", ExpiresAt: expires}, nil)

	recorder := h.MakeRequest(http.MethodPost, "/groups/4/invite-code", OwnerRequest{OwnerID: 1001})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"invite_code":"K7M2Q9XA","expires_at":"2025-03-10T12:10:00Z"}`, recorder.Body.String())
}

func TestGenerateCode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"public group", apperrors.ErrNotPrivateGroup, http.StatusBadRequest},
		{"not owner", apperrors.ErrNotOwner, http.StatusForbidden},
		{"missing group", apperrors.ErrGroupNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockService := setupInviteRouter(t)
			mockService.EXPECT().Generate(gomock.Any(), uint(1001), uint(4)).Return(nil, tt.err)

			recorder := h.MakeRequest(http.MethodPost, "/groups/4/invite-code", OwnerRequest{OwnerID: 1001})
			testutils.AssertErrorResponse(t, recorder, tt.status, tt.err.Error())
		})
	}
}

func TestJoinWithCode(t *testing.T) {
	h, mockService := setupInviteRouter(t)
	mockService.EXPECT().Redeem(gomock.Any(), uint(1005), "k7m2q9xa").Return(uint(4), nil)

	recorder := h.MakeRequest(http.MethodPost, "/groups/join-with-code", JoinWithCodeRequest{UserID: 1005, InviteCode: "k7m2q9xa"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"joined","group_id":4}`, recorder.Body.String())
}

func TestJoinWithCode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing input", apperrors.NewValidationError("", "user_id and invite_code are required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown code", apperrors.ErrInvalidCode, http.StatusNotFound, "INVALID_CODE"},
		{"full", apperrors.ErrGroupFull, http.StatusConflict, "GROUP_FULL"},
		{"member", apperrors.ErrAlreadyMember, http.StatusConflict, "ALREADY_MEMBER"},
		{"expired", apperrors.ErrCodeExpired, http.StatusGone, "CODE_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockService := setupInviteRouter(t)
			mockService.EXPECT().Redeem(gomock.Any(), gomock.Any(), gomock.Any()).Return(uint(0), tt.err)

			recorder := h.MakeRequest(http.MethodPost, "/groups/join-with-code", JoinWithCodeRequest{UserID: 1005, InviteCode: "ABCD2345"})

			var response ErrorResponse
			testutils.AssertJSONResponse(t, recorder, tt.status, &response)
			assert.Equal(t, tt.code, response.Code)
		})
	}
}

func TestJoinWithCode_InvalidBody(t *testing.T) {
	h, _ := setupInviteRouter(t)

	recorder := h.MakeRequest(http.MethodPost, "/groups/join-with-code", []int{1})
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid request body")
}
