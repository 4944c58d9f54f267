package handlers

import (
	"net/http"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectMessageHandler handles one to one conversations and message requests
type DirectMessageHandler struct {
	service service.DirectMessageServiceInterface
}

// NewDirectMessageHandler creates a new direct message handler
func NewDirectMessageHandler(service service.DirectMessageServiceInterface) *DirectMessageHandler {
	return &DirectMessageHandler{service: service}
}

// ConversationResponse carries the id of a conversation
type ConversationResponse struct {
	ConversationID uint `json:"conversation_id" example:"3"`
}

// RequestStatusResponse reports the answer recorded for a message request
type RequestStatusResponse struct {
	Status        string               `json:"status" example:"ok"`
	RequestStatus models.RequestStatus `json:"request_status" example:"accepted"`
}

// Start finds or opens a conversation
// @Summary Start a conversation
// @Description The first contact creates a message request the target must answer
// @Tags direct-messages
// @Accept json
// @Produce json
// @Param request body service.StartConversationRequest true "Requester and target"
// @Success 200 {object} ConversationResponse
// @Failure 400 {object} ErrorResponse "Missing user or messaging yourself"
// @Failure 404 {object} ErrorResponse "Target not found"
// @Router /dm/start [post]
func (h *DirectMessageHandler) Start(c *gin.Context) {
	var req service.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	var ok bool
	if req.RequesterID, ok = actingUser(c, req.RequesterID, apperrors.ErrUserMismatch); !ok {
		return
	}

	conversationID, err := h.service.Start(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ConversationResponse{ConversationID: conversationID})
}

// ListMessages returns the latest messages of a conversation
// @Summary Read a conversation
// @Tags direct-messages
// @Produce json
// @Param id path int true "Conversation ID"
// @Param user_id query int false "Reader, defaults to the authenticated user"
// @Param limit query int false "Latest N messages (default 50)"
// @Success 200 {array} models.DirectMessage
// @Failure 403 {object} ErrorResponse "Not a participant"
// @Failure 404 {object} ErrorResponse "Conversation not found"
// @Router /dm/{id}/messages [get]
func (h *DirectMessageHandler) ListMessages(c *gin.Context) {
	conversationID, ok := pathID(c, "id")
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

	messages, err := h.service.Messages(c, conversationID, userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Send posts a message into a conversation
// @Summary Send a direct message
// @Tags direct-messages
// @Accept json
// @Produce json
// @Param id path int true "Conversation ID"
// @Param request body service.SendMessageRequest true "Message"
// @Success 201 {object} MessageIDResponse
// @Failure 400 {object} ErrorResponse "Empty message"
// @Failure 403 {object} ErrorResponse "Not a participant or request rejected"
// @Router /dm/{id}/messages [post]
func (h *DirectMessageHandler) Send(c *gin.Context) {
	conversationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.SenderID, ok = actingUser(c, req.SenderID, apperrors.ErrUserMismatch); !ok {
		return
	}

	messageID, err := h.service.Send(c, conversationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MessageIDResponse{Status: "ok", MessageID: messageID})
}

// Inbox lists a user's conversations
// @Summary DM inbox
// @Tags direct-messages
// @Produce json
// @Param user_id query int false "User ID, defaults to the authenticated user"
// @Param limit query int false "Maximum conversations (default 50)"
// @Success 200 {array} repository.InboxRow
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Router /dm/inbox [get]
func (h *DirectMessageHandler) Inbox(c *gin.Context) {
	userID, ok := requestingUser(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}

	rows, err := h.service.Inbox(c, userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Requests lists pending message requests addressed to a user
// @Summary Pending message requests
// @Tags direct-messages
// @Produce json
// @Param user_id query int false "User ID, defaults to the authenticated user"
// @Param limit query int false "Maximum requests (default 50)"
// @Success 200 {array} repository.MessageRequestRow
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Router /dm/requests [get]
func (h *DirectMessageHandler) Requests(c *gin.Context) {
	userID, ok := requestingUser(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}

	rows, err := h.service.Requests(c, userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Respond accepts or rejects a message request
// @Summary Answer a message request
// @Tags direct-messages
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param action path string true "accept or reject"
// @Param request body UserRequest true "Target user"
// @Success 200 {object} RequestStatusResponse
// @Failure 400 {object} ErrorResponse "Invalid action or missing user_id"
// @Failure 403 {object} ErrorResponse "Not your request"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Already answered"
// @Router /dm/requests/{id}/{action} [post]
func (h *DirectMessageHandler) Respond(c *gin.Context) {
	requestID, ok := pathID(c, "id")
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

	status, err := h.service.Respond(c, requestID, c.Param("action"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RequestStatusResponse{Status: "ok", RequestStatus: status})
}
