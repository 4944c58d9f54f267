package service

import (
	"context"
	"errors"
	"fmt"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const defaultChatLimit = 50

// PostChatMessageRequest is a message posted to a group's chat
type PostChatMessageRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required,max=2000"`
}

// ChatService handles group chat. Only members may read or post.
type ChatService struct {
	repos     *repository.Repositories
	publisher events.Publisher
	validator *validator.Validate
}

// NewChatService creates a new chat service
func NewChatService(repos *repository.Repositories, publisher events.Publisher, validator *validator.Validate) *ChatService {
	return &ChatService{repos: repos, publisher: publisher, validator: validator}
}

// List returns the latest messages of a group, oldest first
func (s *ChatService) List(ctx context.Context, groupID, userID uint, limit int) ([]repository.ChatMessageRow, error) {
	if err := s.requireMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	rows, err := s.repos.Chat.ListForGroup(ctx, groupID, clampLimit(limit, defaultChatLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return rows, nil
}

// Post stores a chat message and returns its id
func (s *ChatService) Post(ctx context.Context, groupID uint, req *PostChatMessageRequest) (uint, error) {
	req.Content = cleanText(req.Content)
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}
	if err := s.requireMember(ctx, groupID, req.UserID); err != nil {
		return 0, err
	}

	msg := &models.ChatMessage{GroupID: groupID, UserID: req.UserID, Content: req.Content}
	if err := s.repos.Chat.Create(ctx, msg); err != nil {
		return 0, fmt.Errorf("failed to post chat message: %w", err)
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.ChatMessagePosted,
		Key:     groupKey(groupID),
		ActorID: req.UserID,
		Data:    map[string]interface{}{"group_id": groupID, "message_id": msg.MessageID},
	})
	return msg.MessageID, nil
}

func (s *ChatService) requireMember(ctx context.Context, groupID, userID uint) error {
	if _, err := s.repos.Members.FindGroup(ctx, groupID); err != nil {
		return notFound(err, apperrors.ErrGroupNotFound, "load group")
	}
	_, err := s.repos.Members.FindMember(ctx, groupID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotMember
	}
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	return nil
}
