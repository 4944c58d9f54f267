package handlers

import (
	"net/http"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler handles invite codes of private groups
type InviteHandler struct {
	service service.InviteServiceInterface
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(service service.InviteServiceInterface) *InviteHandler {
	return &InviteHandler{service: service}
}

// JoinWithCodeRequest represents the request to redeem an invite code
type JoinWithCodeRequest struct {
	UserID     uint   `json:"user_id" example:"1005"`
	InviteCode string `json:"invite_code" example:"K7M2Q9XA"`
}

// JoinWithCodeResponse represents a successful redemption
type JoinWithCodeResponse struct {
	Status  string `json:"status" example:"joined"`
	GroupID uint   `json:"group_id" example:"42"`
}

// GenerateCode issues a new invite code and revokes the previous one
// @Summary Generate an invite code
// @Description Private groups only. The code expires after ten minutes.
// @Tags invites
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body OwnerRequest true "Acting owner"
// @Success 200 {object} service.InviteCode "New code"
// @Failure 400 {object} ErrorResponse "Not a private group"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/invite-code [post]
func (h *InviteHandler) GenerateCode(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req OwnerRequest
	_ = c.ShouldBindJSON(&req)
	ownerID, ok := actingUser(c, req.OwnerID, apperrors.ErrNotOwner)
	if !ok {
		return
	}
	if ownerID == 0 {
		badRequest(c, "owner_id is required")
		return
	}

	invite, err := h.service.Generate(c, ownerID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invite)
}

// JoinWithCode redeems an invite code
// @Summary Join a private group with an invite code
// @Tags invites
// @Accept json
// @Produce json
// @Param request body JoinWithCodeRequest true "User and code"
// @Success 200 {object} JoinWithCodeResponse "Joined"
// @Failure 400 {object} ErrorResponse "Missing fields or not a private group"
// @Failure 404 {object} ErrorResponse "Invalid code"
// @Failure 409 {object} ErrorResponse "Group full or already a member"
// @Failure 410 {object} ErrorResponse "Code expired"
// @Router /groups/join-with-code [post]
func (h *InviteHandler) JoinWithCode(c *gin.Context) {
	var req JoinWithCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	userID, ok := actingUser(c, req.UserID, apperrors.ErrUserMismatch)
	if !ok {
		return
	}

	groupID, err := h.service.Redeem(c, userID, req.InviteCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, JoinWithCodeResponse{Status: "joined", GroupID: groupID})
}
