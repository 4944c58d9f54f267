package handlers

import (
	"context"
	"errors"
	"net/http"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// JoinRequestHandler handles the join request workflow of public groups
type JoinRequestHandler struct {
	service service.JoinRequestServiceInterface
}

// NewJoinRequestHandler creates a new join request handler
func NewJoinRequestHandler(service service.JoinRequestServiceInterface) *JoinRequestHandler {
	return &JoinRequestHandler{service: service}
}

// StatusResponse reports the state a workflow route left the request in
type StatusResponse struct {
	Status  string `json:"status" example:"request_created"`
	Message string `json:"message,omitempty" example:"Join request sent"`
}

// RequestJoin files a pending join request
// @Summary Request to join a group
// @Description Public groups only; private groups are joined with an invite code
// @Tags join-requests
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body UserRequest true "Requesting user"
// @Success 201 {object} StatusResponse "Request created"
// @Failure 403 {object} ErrorResponse "Group is private"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} map[string]interface{} "Pending, approved or already a member"
// @Router /groups/{id}/join [post]
func (h *JoinRequestHandler) RequestJoin(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UserRequest
	_ = c.ShouldBindJSON(&req)
	userID, ok := actingUser(c, req.UserID, apperrors.ErrUserMismatch)
	if !ok {
		return
	}
	if userID == 0 {
		badRequest(c, "user_id is required")
		return
	}

	err := h.service.Create(c, groupID, userID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, StatusResponse{Status: "request_created", Message: "Join request sent"})
	case errors.Is(err, apperrors.ErrRequestPending):
		respondConflict(c, err, "request_pending")
	case errors.Is(err, apperrors.ErrRequestApproved):
		respondConflict(c, err, "already_approved")
	default:
		respondError(c, err)
	}
}

// respondConflict adds the request status to a 409 so clients can tell the cases apart
func respondConflict(c *gin.Context, err error, status string) {
	c.JSON(http.StatusConflict, gin.H{
		"error":  apperrors.PublicMessage(err),
		"code":   apperrors.Code(err),
		"status": status,
	})
}

// Approve approves a pending request and adds the requester as a member
// @Summary Approve a join request
// @Tags join-requests
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param uid path int true "Requesting user ID"
// @Param request body OwnerRequest true "Acting owner"
// @Success 200 {object} StatusResponse "Approved"
// @Failure 400 {object} ErrorResponse "Missing owner_id"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "No pending request"
// @Failure 409 {object} ErrorResponse "Group full or already a member"
// @Router /groups/{id}/requests/{uid}/approve [post]
func (h *JoinRequestHandler) Approve(c *gin.Context) {
	h.decide(c, h.service.Approve, "approved")
}

// Reject rejects a pending request
// @Summary Reject a join request
// @Tags join-requests
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param uid path int true "Requesting user ID"
// @Param request body OwnerRequest true "Acting owner"
// @Success 200 {object} StatusResponse "Rejected"
// @Failure 400 {object} ErrorResponse "Missing owner_id"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "No pending request"
// @Router /groups/{id}/requests/{uid}/reject [post]
func (h *JoinRequestHandler) Reject(c *gin.Context) {
	h.decide(c, h.service.Reject, "rejected")
}

func (h *JoinRequestHandler) decide(c *gin.Context, decision func(ctx context.Context, ownerID, groupID, targetUserID uint) error, status string) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	targetID, ok := pathID(c, "uid")
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

	if err := decision(c, ownerID, groupID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: status})
}

// ListPending lists the pending requests of a group
// @Summary List pending join requests
// @Description Owner only
// @Tags join-requests
// @Produce json
// @Param id path int true "Group ID"
// @Param owner_id query int false "Owner ID, defaults to the authenticated user"
// @Success 200 {array} repository.PendingRequestRow
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Router /groups/{id}/requests [get]
func (h *JoinRequestHandler) ListPending(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ownerID, ok := queryID(c, "owner_id")
	if !ok {
		return
	}

	if ownerID, ok = actingUser(c, ownerID, apperrors.ErrNotOwner); !ok {
		return
	}

	rows, err := h.service.ListPending(c, ownerID, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
