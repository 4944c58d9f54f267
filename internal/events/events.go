package events

import (
	"context"
	"time"
)

// Type names a domain event
type Type string

const (
	GroupCreated        Type = "group.created"
	MemberAdded         Type = "group.member_added"
	MemberRemoved       Type = "group.member_removed"
	JoinRequestCreated  Type = "join_request.created"
	JoinRequestApproved Type = "join_request.approved"
	JoinRequestRejected Type = "join_request.rejected"
	InviteCodeGenerated Type = "invite_code.generated"
	InviteCodeRedeemed  Type = "invite_code.redeemed"
	SessionScheduled    Type = "group.session_scheduled"
	QuizCreated         Type = "quiz.created"
	QuizAttempted       Type = "quiz.attempted"
	FlashcardSetCreated Type = "flashcard_set.created"
	FlashcardSetDeleted Type = "flashcard_set.deleted"
	ResourceShared      Type = "resource.shared"
	ChatMessagePosted   Type = "group.chat_message_posted"
	MessageRequested    Type = "dm.request_created"
	MessageRequestDone  Type = "dm.request_answered"
	DirectMessageSent   Type = "dm.message_sent"
)

// Event is published after the transaction that produced it has committed.
// Key selects the partition, so events of one aggregate stay ordered.
type Event struct {
	Type       Type                   `json:"type"`
	Key        string                 `json:"key"`
	ActorID    uint                   `json:"actor_id,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Publisher delivers domain events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close implements Publisher
func (NopPublisher) Close() error { return nil }
