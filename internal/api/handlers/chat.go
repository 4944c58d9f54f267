package handlers

import (
	"net/http"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles group chat
type ChatHandler struct {
	service service.ChatServiceInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service service.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// MessageIDResponse carries the id of a stored message
type MessageIDResponse struct {
	Status    string `json:"status,omitempty" example:"ok"`
	MessageID uint   `json:"message_id" example:"42"`
}

// ListChat returns the latest messages of a group
// @Summary Read group chat
// @Description Members only
// @Tags chat
// @Produce json
// @Param id path int true "Group ID"
// @Param user_id query int false "Reader, defaults to the authenticated user"
// @Param limit query int false "Latest N messages (default 50)"
// @Success 200 {array} repository.ChatMessageRow
// @Failure 403 {object} ErrorResponse "Not a member"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/chat [get]
func (h *ChatHandler) ListChat(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := requestingUser(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}

	rows, err := h.service.List(c, groupID, userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PostChat posts a message to a group
// @Summary Post to group chat
// @Description Members only
// @Tags chat
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body service.PostChatMessageRequest true "Message"
// @Success 201 {object} MessageIDResponse
// @Failure 400 {object} ErrorResponse "Missing user_id or content"
// @Failure 403 {object} ErrorResponse "Not a member"
// @Router /groups/{id}/chat [post]
func (h *ChatHandler) PostChat(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.PostChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.UserID, ok = actingUser(c, req.UserID, apperrors.ErrUserMismatch); !ok {
		return
	}

	messageID, err := h.service.Post(c, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageIDResponse{MessageID: messageID})
}

// requestingUser resolves the user_id query parameter against the token
func requestingUser(c *gin.Context) (uint, bool) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return 0, false
	}
	if userID, ok = actingUser(c, userID, apperrors.ErrUserMismatch); !ok {
		return 0, false
	}
	if userID == 0 {
		badRequest(c, "user_id is required")
		return 0, false
	}
	return userID, true
}
