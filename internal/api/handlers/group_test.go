package handlers

import (
	"context"
	"errors"
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

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	http        *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	groups := suite.http.Router.Group("/groups")
	{
		groups.POST("", suite.handler.CreateGroup)
		groups.GET("/public", suite.handler.ListPublic)
		groups.GET("/mine", suite.handler.ListMine)
		groups.GET("/:id/members", suite.handler.ListMembers)
		groups.DELETE("/:id/members/:uid", suite.handler.Kick)
		groups.POST("/:id/members/:uid/kick", suite.handler.Kick)
		groups.POST("/:id/leave", suite.handler.Leave)
		groups.POST("/:id/sessions", suite.handler.CreateSession)
	}
	// routes behind a fake login
	authed := suite.http.Router.Group("/me", testutils.AuthenticateAs(77))
	authed.POST("/groups", suite.handler.CreateGroup)
	authed.GET("/sessions", suite.handler.UpcomingSessions)
	authed.DELETE("/groups/:id/members/:uid", suite.handler.Kick)
	authed.POST("/groups/:id/leave", suite.handler.Leave)
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	request := service.CreateGroupRequest{GroupName: "Algo crew", MaxMembers: 5, CourseID: 3, CreatorUserID: 1001}
	suite.mockService.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateGroupRequest) (uint, error) {
			suite.Equal(request, *req)
			return 42, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups", request)

	var response CreateGroupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(uint(42), response.GroupID)
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_FallsBackToLoggedInUser() {
	suite.mockService.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateGroupRequest) (uint, error) {
			suite.Equal(uint(77), req.CreatorUserID)
			return 1, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/me/groups", map[string]interface{}{
		"group_name": "Solo", "max_members": 2, "course_id": 3,
	})
	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_InvalidBody() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/groups", "not an object")
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_ValidationError() {
	suite.mockService.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(uint(0), apperrors.NewValidationError("max_members", "must be at least 1"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups", service.CreateGroupRequest{GroupName: "x"})

	var response ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	suite.Equal(ErrorResponse{Error: "max_members must be at least 1", Code: "VALIDATION_ERROR"}, response)
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_InternalErrorIsHidden() {
	suite.mockService.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(uint(0), errors.New("pq: connection refused"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups", service.CreateGroupRequest{GroupName: "x"})

	suite.Equal(http.StatusInternalServerError, recorder.Code)
	suite.JSONEq(`{"error":"Internal server error","code":"INTERNAL"}`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestListPublic() {
	rows := []repository.PublicGroupRow{{GroupID: 1, GroupName: "A", MaxMembers: 4, Members: 2}}
	suite.mockService.EXPECT().ListPublic(gomock.Any(), uint(3), 10).Return(rows, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/public?course_id=3&limit=10", nil)

	var response []repository.PublicGroupRow
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(rows, response)
}

func (suite *GroupHandlerTestSuite) TestListPublic_BadCourseID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/public?course_id=abc", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid course_id")
}

func (suite *GroupHandlerTestSuite) TestListMine() {
	suite.mockService.EXPECT().ListForUser(gomock.Any(), uint(5)).Return([]repository.UserGroupRow{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/mine?user_id=5", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestListMembers_GroupNotFound() {
	suite.mockService.EXPECT().ListMembers(gomock.Any(), uint(9)).Return(nil, apperrors.ErrGroupNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/9/members", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error":"Group not found","code":"GROUP_NOT_FOUND"}`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestListMembers_InvalidID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/groups/zero/members", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid id")
}

func (suite *GroupHandlerTestSuite) TestKick() {
	suite.mockService.EXPECT().Kick(gomock.Any(), uint(4), uint(1001), uint(1005)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/groups/4/members/1005", OwnerRequest{OwnerID: 1001})
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"status":"removed"}`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestKick_RequiresOwner() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/groups/4/members/1005", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "owner_id is required")
}

func (suite *GroupHandlerTestSuite) TestKick_OwnerCannotRemoveSelf() {
	suite.mockService.EXPECT().Kick(gomock.Any(), uint(4), uint(1001), uint(1001)).Return(apperrors.ErrOwnerCannotRemoveSelf)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/groups/4/members/1001", OwnerRequest{OwnerID: 1001})

	var response ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &response)
	suite.Equal("OWNER_CANNOT_REMOVE_SELF", response.Code)
}

func (suite *GroupHandlerTestSuite) TestKick_PostAlias() {
	suite.mockService.EXPECT().Kick(gomock.Any(), uint(4), uint(1001), uint(1005)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups/4/members/1005/kick", OwnerRequest{OwnerID: 1001})
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"status":"removed"}`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestKick_TokenWinsOverBody() {
	suite.mockService.EXPECT().Kick(gomock.Any(), uint(4), uint(77), uint(1005)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/me/groups/4/members/1005", OwnerRequest{OwnerID: 77})
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *GroupHandlerTestSuite) TestKick_BodyNamesAnotherOwner() {
	// no service call is expected
	recorder := suite.http.MakeRequest(http.MethodDelete, "/me/groups/4/members/1005", OwnerRequest{OwnerID: 1001})

	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.JSONEq(`{"error":"Only the group owner can perform this action","code":"NOT_OWNER"}`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestCreateGroup_BodyNamesAnotherCreator() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/me/groups", service.CreateGroupRequest{
		GroupName: "Hijack", MaxMembers: 2, CourseID: 3, CreatorUserID: 1001,
	})

	var response ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusForbidden, &response)
	suite.Equal("USER_MISMATCH", response.Code)
}

func (suite *GroupHandlerTestSuite) TestLeave_LoggedInUser() {
	suite.mockService.EXPECT().Leave(gomock.Any(), uint(4), uint(77)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/me/groups/4/leave", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *GroupHandlerTestSuite) TestLeave() {
	suite.mockService.EXPECT().Leave(gomock.Any(), uint(4), uint(1005)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups/4/leave", UserRequest{UserID: 1005})
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"status":"left"}`, recorder.Body.String())
}

func (suite *GroupHandlerTestSuite) TestCreateSession() {
	request := service.CreateSessionRequest{SessionDate: "2025-03-20", StartTime: "10:00", EndTime: "12:00", Location: "Library"}
	suite.mockService.EXPECT().CreateSession(gomock.Any(), uint(4), &request).Return(uint(8), nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups/4/sessions", request)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("Session created", response["message"])
	suite.Equal(float64(8), response["session_id"])
}

func (suite *GroupHandlerTestSuite) TestCreateSession_PastDate() {
	suite.mockService.EXPECT().
		CreateSession(gomock.Any(), uint(4), gomock.Any()).
		Return(uint(0), apperrors.NewValidationError("", "Session date cannot be in the past"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/groups/4/sessions", service.CreateSessionRequest{SessionDate: "2020-01-01"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Session date cannot be in the past")
}

func (suite *GroupHandlerTestSuite) TestUpcomingSessions_UsesLoggedInUser() {
	suite.mockService.EXPECT().UpcomingSessions(gomock.Any(), uint(77), 5).Return([]repository.UpcomingSessionRow{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/me/sessions?limit=5", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
