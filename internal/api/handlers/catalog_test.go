package handlers

import (
	"errors"
	"net/http"
	"testing"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/mocks"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCatalogServiceInterface(ctrl)
	handler := NewCatalogHandler(mockService)
	h := testutils.SetupHTTPTest()
	h.Router.GET("/auth/colleges", handler.ListColleges)
	h.Router.GET("/auth/majors", handler.ListMajors)

	t.Run("colleges", func(t *testing.T) {
		mockService.EXPECT().ListColleges(gomock.Any()).
			Return([]models.College{{CollegeID: 1, CollegeName: "College of Sciences"}}, nil)

		recorder := h.MakeRequest(http.MethodGet, "/auth/colleges", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[{"college_id":1,"college_name":"College of Sciences"}]`, recorder.Body.String())
	})

	t.Run("majors failure", func(t *testing.T) {
		mockService.EXPECT().ListMajors(gomock.Any()).Return(nil, errors.New("db down"))

		recorder := h.MakeRequest(http.MethodGet, "/auth/majors", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
	})
}
