package handlers

import (
	"context"
	"net/http"
	"testing"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/mocks"
	"studybuddy-backend/internal/service"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlashcardHandlerTestSuite struct {
	suite.Suite
	http        *testutils.HTTPTestSuite
	ctrl        *gomock.Controller
	mockService *mocks.MockFlashcardServiceInterface
}

func (suite *FlashcardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockFlashcardServiceInterface(suite.ctrl)
	handler := NewFlashcardHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	sets := suite.http.Router.Group("/flashcards", testutils.AuthenticateAs(1005))
	sets.GET("", handler.ListSets)
	sets.POST("/create", handler.CreateSet)
	sets.GET("/:id", handler.GetSet)
	sets.PUT("/:id", handler.UpdateSet)
	sets.DELETE("/:id", handler.DeleteSet)
	sets.PUT("/cards/:id", handler.UpdateCard)
	sets.DELETE("/cards/:id", handler.DeleteCard)

	suite.http.Router.POST("/anon/flashcards/create", handler.CreateSet)
}

func (suite *FlashcardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FlashcardHandlerTestSuite) TestCreateSet() {
	suite.mockService.EXPECT().
		CreateSet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateFlashcardSetRequest) (uint, error) {
			suite.Equal(uint(1005), req.CreatorID)
			suite.Equal([]service.CardInput{{Front: "O(1)", Back: "constant"}}, req.Cards)
			return 3, nil
		})

	recorder := suite.http.MakeRequest(http.MethodPost, "/flashcards/create", map[string]interface{}{
		"title": "Big-O",
		"cards": []map[string]string{{"front": "O(1)", "back": "constant"}, {"front": "half"}},
	})

	suite.Equal(http.StatusCreated, recorder.Code)
	suite.JSONEq(`{"message":"Flashcard set created","set_id":3}`, recorder.Body.String())
}

func (suite *FlashcardHandlerTestSuite) TestCreateSet_NotLoggedIn() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/anon/flashcards/create", map[string]interface{}{"title": "x"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Not logged in")
}

func (suite *FlashcardHandlerTestSuite) TestListSets() {
	suite.mockService.EXPECT().ListSets(gomock.Any(), 0).Return([]models.FlashcardSet{{SetID: 1, Title: "A"}}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/flashcards", nil)

	var response []models.FlashcardSet
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *FlashcardHandlerTestSuite) TestGetSet_NotFound() {
	suite.mockService.EXPECT().GetSet(gomock.Any(), uint(9)).Return(nil, apperrors.ErrFlashcardSetNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/flashcards/9", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"error":"Set not found","code":"FLASHCARD_SET_NOT_FOUND"}`, recorder.Body.String())
}

func (suite *FlashcardHandlerTestSuite) TestUpdateSet() {
	title := "Renamed"
	suite.mockService.EXPECT().
		UpdateSet(gomock.Any(), uint(1005), uint(3), &service.UpdateFlashcardSetRequest{Title: &title}).
		Return(&models.FlashcardSet{SetID: 3, Title: title}, nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/flashcards/3", map[string]string{"title": title})

	var response models.FlashcardSet
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Renamed", response.Title)
}

func (suite *FlashcardHandlerTestSuite) TestUpdateSet_NotCreator() {
	suite.mockService.EXPECT().UpdateSet(gomock.Any(), uint(1005), uint(3), gomock.Any()).Return(nil, apperrors.ErrNotSetCreator)

	recorder := suite.http.MakeRequest(http.MethodPut, "/flashcards/3", map[string]string{"title": "x"})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "Only the creator")
}

func (suite *FlashcardHandlerTestSuite) TestDeleteSet() {
	suite.mockService.EXPECT().DeleteSet(gomock.Any(), uint(1005), uint(3)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/flashcards/3", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *FlashcardHandlerTestSuite) TestListSets_PassesLimit() {
	suite.mockService.EXPECT().ListSets(gomock.Any(), 5).Return([]models.FlashcardSet{}, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/flashcards?limit=5", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *FlashcardHandlerTestSuite) TestUpdateCard_AcceptsShortKeys() {
	suite.mockService.EXPECT().
		UpdateCard(gomock.Any(), uint(1005), uint(12), &service.UpdateCardRequest{Front: "Queue", Back: "FIFO"}).
		Return(&models.Flashcard{CardID: 12, FrontText: "Queue", BackText: "FIFO"}, nil)

	recorder := suite.http.MakeRequest(http.MethodPut, "/flashcards/cards/12", map[string]string{"front": "Queue", "back_text": "FIFO"})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"message":"Flashcard updated","card_id":12}`, recorder.Body.String())
}

func (suite *FlashcardHandlerTestSuite) TestUpdateCard_Errors() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"missing card", apperrors.ErrFlashcardNotFound, http.StatusNotFound, "FLASHCARD_NOT_FOUND"},
		{"other creator", apperrors.ErrNotSetCreator, http.StatusForbidden, "NOT_SET_CREATOR"},
		{"blank side", apperrors.NewValidationError("back_text", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().UpdateCard(gomock.Any(), uint(1005), uint(12), gomock.Any()).Return(nil, tt.err)

			recorder := suite.http.MakeRequest(http.MethodPut, "/flashcards/cards/12", map[string]string{"front": "Queue"})

			var response ErrorResponse
			testutils.AssertJSONResponse(suite.T(), recorder, tt.wantStatus, &response)
			suite.Equal(tt.wantCode, response.Code)
		})
	}
}

func (suite *FlashcardHandlerTestSuite) TestDeleteCard() {
	suite.mockService.EXPECT().DeleteCard(gomock.Any(), uint(1005), uint(12)).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/flashcards/cards/12", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"message":"Flashcard deleted","card_id":12}`, recorder.Body.String())
}

func TestFlashcardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FlashcardHandlerTestSuite))
}
