package models

import "time"

// Conversation is the single thread between two users. UserAID is always the smaller id,
// so a pair maps to exactly one row.
type Conversation struct {
	ConversationID uint      `json:"conversation_id" gorm:"primaryKey"`
	UserAID        uint      `json:"user_a_id" gorm:"not null;uniqueIndex:idx_conversations_pair"`
	UserBID        uint      `json:"user_b_id" gorm:"not null;uniqueIndex:idx_conversations_pair;index"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the table name for Conversation
func (Conversation) TableName() string {
	return "conversations"
}

// Has reports whether userID takes part in the conversation
func (c Conversation) Has(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// DirectMessage is one message inside a conversation
type DirectMessage struct {
	MessageID      uint      `json:"message_id" gorm:"primaryKey"`
	ConversationID uint      `json:"conversation_id" gorm:"not null;index"`
	SenderID       uint      `json:"sender_user_id" gorm:"not null"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	SentAt         time.Time `json:"sent_time" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for DirectMessage
func (DirectMessage) TableName() string {
	return "direct_messages"
}

// MessageRequest gates a new conversation until the target accepts or rejects it
type MessageRequest struct {
	RequestID      uint          `json:"request_id" gorm:"primaryKey"`
	ConversationID uint          `json:"conversation_id" gorm:"not null;uniqueIndex"`
	RequesterID    uint          `json:"requester_user_id" gorm:"not null"`
	TargetID       uint          `json:"target_user_id" gorm:"not null;index"`
	RequestStatus  RequestStatus `json:"request_status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time     `json:"created_at"`
	RespondedAt    *time.Time    `json:"responded_at,omitempty"`
}

// TableName returns the table name for MessageRequest
func (MessageRequest) TableName() string {
	return "message_requests"
}

// ChatMessage is a message posted to a study group's chat
type ChatMessage struct {
	MessageID uint      `json:"message_id" gorm:"primaryKey"`
	GroupID   uint      `json:"group_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	SentAt    time.Time `json:"sent_time" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}
