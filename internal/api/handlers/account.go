package handlers

import (
	"net/http"

	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles the logged in user's profile
type AccountHandler struct {
	service service.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// SuccessResponse acknowledges a write with no other payload
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// GetAccount returns the profile of the logged in user
// @Summary Get my account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repository.AccountRow
// @Failure 401 {object} ErrorResponse "Not logged in"
// @Router /user/account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	account, err := h.service.GetAccount(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateAccount edits the profile of the logged in user
// @Summary Update my account
// @Description Omitted fields are left unchanged; a college_id or major_id of 0 clears it
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateAccountRequest true "Profile fields"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid field"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /user/account [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req service.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateAccount(c, userID, &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
