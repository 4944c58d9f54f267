package handlers

import (
	"net/http"

	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CourseHandler handles the course catalog
type CourseHandler struct {
	service service.CourseServiceInterface
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service service.CourseServiceInterface) *CourseHandler {
	return &CourseHandler{service: service}
}

// ListCourses returns every course
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// SearchCourses finds courses by code or name
// @Summary Search courses
// @Description Queries shorter than two characters return an empty list
// @Tags courses
// @Produce json
// @Param q query string true "Code or name fragment, e.g. cos 420"
// @Param limit query int false "Maximum hits (default 8)"
// @Success 200 {array} repository.CourseSearchRow
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /courses/search [get]
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 8)
	if !ok {
		return
	}

	rows, err := h.service.SearchCourses(c, c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
