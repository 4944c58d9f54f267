package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const defaultMessageLimit = 50

// StartConversationRequest opens a direct conversation with another user
type StartConversationRequest struct {
	RequesterID uint `json:"requester_user_id" validate:"required"`
	TargetID    uint `json:"target_user_id" validate:"required"`
}

// SendMessageRequest is a direct message sent into a conversation
type SendMessageRequest struct {
	SenderID uint   `json:"sender_user_id" validate:"required"`
	Content  string `json:"content" validate:"required,max=2000"`
}

// DirectMessageService handles one to one conversations. The first contact between two users
// creates a pending message request that the target accepts or rejects. A rejected request
// blocks further messages in that conversation.
type DirectMessageService struct {
	tx        repository.Transactor
	repos     *repository.Repositories
	publisher events.Publisher
	validator *validator.Validate
	now       Clock
}

// NewDirectMessageService creates a new direct message service
func NewDirectMessageService(tx repository.Transactor, repos *repository.Repositories, publisher events.Publisher, validator *validator.Validate, now Clock) *DirectMessageService {
	if now == nil {
		now = time.Now
	}
	return &DirectMessageService{
		tx:        tx,
		repos:     repos,
		publisher: publisher,
		validator: validator,
		now:       now,
	}
}

// Start finds or creates the conversation between requester and target
func (s *DirectMessageService) Start(ctx context.Context, req *StartConversationRequest) (uint, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}
	if req.RequesterID == req.TargetID {
		return 0, apperrors.ErrCannotMessageSelf
	}
	if _, err := s.repos.Users.GetByID(ctx, req.TargetID); err != nil {
		return 0, notFound(err, apperrors.ErrUserNotFound, "load target user")
	}

	userA, userB := req.RequesterID, req.TargetID
	if userA > userB {
		userA, userB = userB, userA
	}

	var conversationID uint
	created := false
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		conv, err := tx.Messages.FindConversation(ctx, userA, userB)
		if err == nil {
			conversationID = conv.ConversationID
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to find conversation: %w", err)
		}

		conv = &models.Conversation{UserAID: userA, UserBID: userB}
		if err := tx.Messages.CreateConversation(ctx, conv); err != nil {
			return fmt.Errorf("failed to create conversation: %w", err)
		}
		request := &models.MessageRequest{
			ConversationID: conv.ConversationID,
			RequesterID:    req.RequesterID,
			TargetID:       req.TargetID,
			RequestStatus:  models.RequestStatusPending,
		}
		if err := tx.Messages.CreateRequest(ctx, request); err != nil {
			return fmt.Errorf("failed to create message request: %w", err)
		}
		conversationID = conv.ConversationID
		created = true
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created {
		publish(ctx, s.publisher, events.Event{
			Type:    events.MessageRequested,
			Key:     conversationKey(conversationID),
			ActorID: req.RequesterID,
			Data:    map[string]interface{}{"conversation_id": conversationID, "target_user_id": req.TargetID},
		})
	}
	return conversationID, nil
}

// Send stores a message from a participant and returns its id
func (s *DirectMessageService) Send(ctx context.Context, conversationID uint, req *SendMessageRequest) (uint, error) {
	req.Content = cleanText(req.Content)
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}

	if _, err := s.participant(ctx, conversationID, req.SenderID); err != nil {
		return 0, err
	}
	request, err := s.repos.Messages.FindRequestByConversation(ctx, conversationID)
	switch {
	case err == nil && request.RequestStatus == models.RequestStatusRejected:
		return 0, apperrors.ErrMessageBlocked
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, fmt.Errorf("failed to load message request: %w", err)
	}

	msg := &models.DirectMessage{ConversationID: conversationID, SenderID: req.SenderID, Content: req.Content}
	if err := s.repos.Messages.CreateMessage(ctx, msg); err != nil {
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.DirectMessageSent,
		Key:     conversationKey(conversationID),
		ActorID: req.SenderID,
		Data:    map[string]interface{}{"conversation_id": conversationID, "message_id": msg.MessageID},
	})
	return msg.MessageID, nil
}

// Messages returns the latest messages of a conversation, oldest first
func (s *DirectMessageService) Messages(ctx context.Context, conversationID, userID uint, limit int) ([]models.DirectMessage, error) {
	if _, err := s.participant(ctx, conversationID, userID); err != nil {
		return nil, err
	}
	messages, err := s.repos.Messages.ListMessages(ctx, conversationID, clampLimit(limit, defaultMessageLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Inbox lists the conversations of userID with their latest message
func (s *DirectMessageService) Inbox(ctx context.Context, userID uint, limit int) ([]repository.InboxRow, error) {
	rows, err := s.repos.Messages.Inbox(ctx, userID, clampLimit(limit, defaultMessageLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}
	return rows, nil
}

// Requests lists the pending message requests addressed to userID
func (s *DirectMessageService) Requests(ctx context.Context, userID uint, limit int) ([]repository.MessageRequestRow, error) {
	rows, err := s.repos.Messages.ListPendingRequests(ctx, userID, clampLimit(limit, defaultMessageLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list message requests: %w", err)
	}
	return rows, nil
}

// Respond accepts or rejects a pending request. Only its target may answer, and only once.
func (s *DirectMessageService) Respond(ctx context.Context, requestID uint, action string, userID uint) (models.RequestStatus, error) {
	var status models.RequestStatus
	switch action {
	case "accept":
		status = models.RequestStatusAccepted
	case "reject":
		status = models.RequestStatusRejected
	default:
		return "", apperrors.ErrInvalidAction
	}

	var conversationID uint
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		request, err := tx.Messages.LockRequest(ctx, requestID)
		if err != nil {
			return notFound(err, apperrors.ErrRequestNotFound, "load message request")
		}
		if request.TargetID != userID {
			return apperrors.ErrNotYourRequest
		}
		if request.RequestStatus != models.RequestStatusPending {
			return apperrors.ErrRequestDecided
		}
		if err := tx.Messages.SetRequestStatus(ctx, requestID, status, s.now().UTC()); err != nil {
			return fmt.Errorf("failed to update message request: %w", err)
		}
		conversationID = request.ConversationID
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"request_id": requestID,
		"status":     status,
	}).Info("message request answered")
	publish(ctx, s.publisher, events.Event{
		Type:    events.MessageRequestDone,
		Key:     conversationKey(conversationID),
		ActorID: userID,
		Data:    map[string]interface{}{"request_id": requestID, "request_status": string(status)},
	})
	return status, nil
}

func (s *DirectMessageService) participant(ctx context.Context, conversationID, userID uint) (*models.Conversation, error) {
	conv, err := s.repos.Messages.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrConversationNotFound, "load conversation")
	}
	if !conv.Has(userID) {
		return nil, apperrors.ErrNotParticipant
	}
	return conv, nil
}

func conversationKey(conversationID uint) string {
	return fmt.Sprintf("conversation:%d", conversationID)
}
