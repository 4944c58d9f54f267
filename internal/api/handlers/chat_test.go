package handlers

import (
	"context"
	"net/http"
	"testing"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/mocks"
	"studybuddy-backend/internal/repository"
	"studybuddy-backend/internal/service"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChatHandlerTestSuite struct {
	suite.Suite
	http        *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockChatServiceInterface
}

func (suite *ChatHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockChatServiceInterface(suite.ctrl)
	handler := NewChatHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/groups/:id/chat", handler.ListChat)
	suite.http.Router.POST("/groups/:id/chat", handler.PostChat)
	me := suite.http.Router.Group("/me", testutils.AuthenticateAs(77))
	me.GET("/groups/:id/chat", handler.ListChat)
	me.POST("/groups/:id/chat", handler.PostChat)
}

func (suite *ChatHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ChatHandlerTestSuite) TestListChat() {
	suite.mockService.EXPECT().List(gomock.Any(), uint(5), uint(1005), 50).
		Return([]repository.ChatMessageRow{{MessageID: 1, UserID: 1005, Content: "hi"}}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/5/chat?user_id=1005", nil)

	var rows []repository.ChatMessageRow
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &rows)
	suite.Len(rows, 1)
}

func (suite *ChatHandlerTestSuite) TestListChat_Errors() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/5/chat", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "user_id is required")

	recorder = suite.http.MakeRequest(http.MethodGet, "/me/groups/5/chat?user_id=1005", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, apperrors.ErrUserMismatch.Message)

	suite.mockService.EXPECT().List(gomock.Any(), uint(5), uint(77), 10).Return(nil, apperrors.ErrNotMember)
	recorder = suite.http.MakeRequest(http.MethodGet, "/me/groups/5/chat?limit=10", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Only group members can do this")
}

func (suite *ChatHandlerTestSuite) TestPostChat_UsesToken() {
	suite.mockService.EXPECT().Post(gomock.Any(), uint(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint, req *service.PostChatMessageRequest) (uint, error) {
			suite.Equal(uint(77), req.UserID)
			suite.Equal("hello", req.Content)
			return 12, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/me/groups/5/chat", map[string]string{"content": "hello"})

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{"message_id":12}`, recorder.Body.String())
}

func TestChatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}
