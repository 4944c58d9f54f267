package handlers

import (
	"net/http"

	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the college and major pick lists
type CatalogHandler struct {
	service service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListColleges returns every college
// @Summary List colleges
// @Tags authentication
// @Produce json
// @Success 200 {array} models.College
// @Router /auth/colleges [get]
func (h *CatalogHandler) ListColleges(c *gin.Context) {
	colleges, err := h.service.ListColleges(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, colleges)
}

// ListMajors returns every major
// @Summary List majors
// @Tags authentication
// @Produce json
// @Success 200 {array} models.Major
// @Router /auth/majors [get]
func (h *CatalogHandler) ListMajors(c *gin.Context) {
	majors, err := h.service.ListMajors(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, majors)
}
