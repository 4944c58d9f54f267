package repository

import (
	"context"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
)

// ChatRepository handles database operations for group chat
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Create inserts a chat message
func (r *ChatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// ListForGroup returns the latest limit messages of a group, oldest first
func (r *ChatRepository) ListForGroup(ctx context.Context, groupID uint, limit int) ([]ChatMessageRow, error) {
	var rows []ChatMessageRow
	err := r.db.WithContext(ctx).
		Table("chat_messages AS cm").
		Select("cm.message_id, cm.user_id, CONCAT(u.first_name, ' ', u.last_name) AS user_name, "+
			"cm.content, cm.sent_at AS sent_time").
		Joins("JOIN users u ON u.user_id = cm.user_id").
		Where("cm.group_id = ?", groupID).
		Order("cm.message_id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
