package handlers

import (
	"net/http"

	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler handles the shared resource board
type ResourceHandler struct {
	service service.ResourceServiceInterface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(service service.ResourceServiceInterface) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// ListResources lists shared resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Param limit query int false "Newest N resources; omitted or 0 lists all"
// @Success 200 {array} models.Resource
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /resources [get]
func (h *ResourceHandler) ListResources(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	resources, err := h.service.List(c, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// CreateResource shares a link
// @Summary Share a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateResourceRequest true "Resource"
// @Success 201 {object} models.Resource
// @Failure 400 {object} ErrorResponse "Missing title, url or filetype"
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Router /resources [post]
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resource, err := h.service.Create(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resource)
}
