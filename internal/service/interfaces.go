package service

import (
	"context"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for study group service
type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, req *CreateGroupRequest) (uint, error)
	ListPublic(ctx context.Context, courseID uint, limit int) ([]repository.PublicGroupRow, error)
	ListForUser(ctx context.Context, userID uint) ([]repository.UserGroupRow, error)
	ListMembers(ctx context.Context, groupID uint) ([]repository.MemberRow, error)
	Kick(ctx context.Context, groupID, ownerID, targetUserID uint) error
	Leave(ctx context.Context, groupID, userID uint) error
	CreateSession(ctx context.Context, groupID uint, req *CreateSessionRequest) (uint, error)
	UpcomingSessions(ctx context.Context, userID uint, limit int) ([]repository.UpcomingSessionRow, error)
}

// JoinRequestServiceInterface defines the interface for join request service
type JoinRequestServiceInterface interface {
	Create(ctx context.Context, groupID, userID uint) error
	Approve(ctx context.Context, ownerID, groupID, targetUserID uint) error
	Reject(ctx context.Context, ownerID, groupID, targetUserID uint) error
	ListPending(ctx context.Context, ownerID, groupID uint) ([]repository.PendingRequestRow, error)
}

// InviteServiceInterface defines the interface for invite code service
type InviteServiceInterface interface {
	Generate(ctx context.Context, ownerID, groupID uint) (*InviteCode, error)
	Redeem(ctx context.Context, userID uint, code string) (uint, error)
}

// QuizServiceInterface defines the interface for quiz service
type QuizServiceInterface interface {
	CreateQuiz(ctx context.Context, req *CreateQuizRequest) (uint, error)
	Submit(ctx context.Context, req *SubmitQuizRequest) (*QuizResult, error)
	GetQuiz(ctx context.Context, quizID uint) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, page, limit int) (*QuizListResponse, error)
	ListAttempts(ctx context.Context, userID, quizID uint) ([]models.UserQuizAttempt, error)
}

// FlashcardServiceInterface defines the interface for flashcard service
type FlashcardServiceInterface interface {
	CreateSet(ctx context.Context, req *CreateFlashcardSetRequest) (uint, error)
	GetSet(ctx context.Context, setID uint) (*models.FlashcardSet, error)
	ListSets(ctx context.Context, limit int) ([]models.FlashcardSet, error)
	UpdateSet(ctx context.Context, userID, setID uint, req *UpdateFlashcardSetRequest) (*models.FlashcardSet, error)
	DeleteSet(ctx context.Context, userID, setID uint) error
	UpdateCard(ctx context.Context, userID, cardID uint, req *UpdateCardRequest) (*models.Flashcard, error)
	DeleteCard(ctx context.Context, userID, cardID uint) error
}

// CourseServiceInterface defines the interface for course service
type CourseServiceInterface interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	SearchCourses(ctx context.Context, q string, limit int) ([]repository.CourseSearchRow, error)
}

// CatalogServiceInterface defines the interface for the college and major catalog
type CatalogServiceInterface interface {
	ListColleges(ctx context.Context) ([]models.College, error)
	ListMajors(ctx context.Context) ([]models.Major, error)
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	GetAccount(ctx context.Context, userID uint) (*repository.AccountRow, error)
	UpdateAccount(ctx context.Context, userID uint, req *UpdateAccountRequest) error
}

// ResourceServiceInterface defines the interface for resource service
type ResourceServiceInterface interface {
	List(ctx context.Context, limit int) ([]models.Resource, error)
	Create(ctx context.Context, userID uint, req *CreateResourceRequest) (*models.Resource, error)
}

// ChatServiceInterface defines the interface for group chat service
type ChatServiceInterface interface {
	List(ctx context.Context, groupID, userID uint, limit int) ([]repository.ChatMessageRow, error)
	Post(ctx context.Context, groupID uint, req *PostChatMessageRequest) (uint, error)
}

// DirectMessageServiceInterface defines the interface for direct message service
type DirectMessageServiceInterface interface {
	Start(ctx context.Context, req *StartConversationRequest) (uint, error)
	Send(ctx context.Context, conversationID uint, req *SendMessageRequest) (uint, error)
	Messages(ctx context.Context, conversationID, userID uint, limit int) ([]models.DirectMessage, error)
	Inbox(ctx context.Context, userID uint, limit int) ([]repository.InboxRow, error)
	Requests(ctx context.Context, userID uint, limit int) ([]repository.MessageRequestRow, error)
	Respond(ctx context.Context, requestID uint, action string, userID uint) (models.RequestStatus, error)
}
