package repository

import (
	"context"
	"time"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageRepository handles database operations for direct conversations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// FindConversation retrieves the conversation of an ordered user pair
func (r *MessageRepository) FindConversation(ctx context.Context, userA, userB uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", userA, userB).
		First(&conv).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetConversation retrieves a conversation by id
func (r *MessageRepository) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.WithContext(ctx).First(&conv, id).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

// CreateConversation inserts a conversation
func (r *MessageRepository) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

// CreateRequest inserts a message request
func (r *MessageRepository) CreateRequest(ctx context.Context, req *models.MessageRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// FindRequestByConversation retrieves the request that gates a conversation
func (r *MessageRepository) FindRequestByConversation(ctx context.Context, conversationID uint) (*models.MessageRequest, error) {
	var req models.MessageRequest
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// LockRequest retrieves a message request and locks it
func (r *MessageRepository) LockRequest(ctx context.Context, requestID uint) (*models.MessageRequest, error) {
	var req models.MessageRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, requestID).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// SetRequestStatus records the target's answer to a message request
func (r *MessageRepository) SetRequestStatus(ctx context.Context, requestID uint, status models.RequestStatus, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.MessageRequest{}).
		Where("request_id = ?", requestID).
		Updates(map[string]interface{}{
			"request_status": status,
			"responded_at":   at,
		}).Error
}

// CreateMessage inserts a direct message
func (r *MessageRepository) CreateMessage(ctx context.Context, msg *models.DirectMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListMessages returns the latest limit messages of a conversation, oldest first
func (r *MessageRepository) ListMessages(ctx context.Context, conversationID uint, limit int) ([]models.DirectMessage, error) {
	var messages []models.DirectMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("message_id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Inbox lists a user's conversations with their latest message, most recent activity first
func (r *MessageRepository) Inbox(ctx context.Context, userID uint, limit int) ([]InboxRow, error) {
	latest := r.db.Table("direct_messages").
		Select("conversation_id, MAX(message_id) AS message_id").
		Group("conversation_id")

	var rows []InboxRow
	err := r.db.WithContext(ctx).
		Table("conversations AS c").
		Select("c.conversation_id, u.user_id AS other_user_id, "+
			"CONCAT(u.first_name, ' ', u.last_name) AS other_user_name, "+
			"dm.content AS last_message, dm.sent_at AS last_sent_at, "+
			"mr.request_status, mr.requester_id").
		Joins("JOIN users u ON u.user_id = CASE WHEN c.user_a_id = ? THEN c.user_b_id ELSE c.user_a_id END", userID).
		Joins("LEFT JOIN (?) lm ON lm.conversation_id = c.conversation_id", latest).
		Joins("LEFT JOIN direct_messages dm ON dm.message_id = lm.message_id").
		Joins("LEFT JOIN message_requests mr ON mr.conversation_id = c.conversation_id").
		Where("c.user_a_id = ? OR c.user_b_id = ?", userID, userID).
		Order("CASE WHEN lm.message_id IS NULL THEN 1 ELSE 0 END").
		Order("lm.message_id DESC").
		Order("c.conversation_id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPendingRequests returns the pending requests addressed to a user, oldest first
func (r *MessageRepository) ListPendingRequests(ctx context.Context, userID uint, limit int) ([]MessageRequestRow, error) {
	var rows []MessageRequestRow
	err := r.db.WithContext(ctx).
		Table("message_requests AS mr").
		Select("mr.request_id, mr.conversation_id, mr.requester_id, "+
			"CONCAT(u.first_name, ' ', u.last_name) AS requester_name, mr.created_at").
		Joins("JOIN users u ON u.user_id = mr.requester_id").
		Where("mr.target_id = ? AND mr.request_status = ?", userID, models.RequestStatusPending).
		Order("mr.request_id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
