package repository

import (
	"context"
	"time"

	"studybuddy-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAccount(ctx context.Context, id uint) (*AccountRow, error)
	UpdateAccount(ctx context.Context, id uint, updates map[string]interface{}) error
}

// CourseRepositoryInterface defines the interface for course repository operations
type CourseRepositoryInterface interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Course, int64, error)
	Search(ctx context.Context, q string, limit int) ([]CourseSearchRow, error)
}

// GroupRepositoryInterface defines the interface for study group repository operations
type GroupRepositoryInterface interface {
	Create(ctx context.Context, group *models.StudyGroup) error
	GetByID(ctx context.Context, id uint) (*models.StudyGroup, error)
	LockByInviteCode(ctx context.Context, code string) (*models.StudyGroup, error)
	SetInviteCode(ctx context.Context, id uint, code string, expiresAt time.Time) error
	ListPublicByCourse(ctx context.Context, courseID uint, limit int) ([]PublicGroupRow, error)
}

// MembershipStore is the storage contract of the membership engine. LockGroup must take an
// exclusive row lock on the group that is held until the surrounding transaction ends.
type MembershipStore interface {
	LockGroup(ctx context.Context, groupID uint) (*models.StudyGroup, error)
	FindGroup(ctx context.Context, groupID uint) (*models.StudyGroup, error)
	CountMembers(ctx context.Context, groupID uint) (int64, error)
	FindMember(ctx context.Context, groupID, userID uint) (*models.GroupMember, error)
	AddMember(ctx context.Context, member *models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, userID uint) (int64, error)
	ListMembers(ctx context.Context, groupID uint) ([]MemberRow, error)
	ListUserGroups(ctx context.Context, userID uint) ([]UserGroupRow, error)
}

// JoinRequestRepositoryInterface defines the interface for join request repository operations
type JoinRequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.JoinRequest) error
	FindActive(ctx context.Context, groupID, userID uint) ([]models.JoinRequest, error)
	LockPending(ctx context.Context, groupID, userID uint) (*models.JoinRequest, error)
	UpdateStatus(ctx context.Context, requestID uint, status models.JoinStatus, decidedBy uint) error
	ListPendingByGroup(ctx context.Context, groupID uint) ([]PendingRequestRow, error)
}

// SessionRepositoryInterface defines the interface for study session repository operations
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.StudySession) error
	ListUpcomingForUser(ctx context.Context, userID uint, from time.Time, limit int) ([]UpcomingSessionRow, error)
}

// QuizRepositoryInterface defines the interface for quiz repository operations
type QuizRepositoryInterface interface {
	CreateQuiz(ctx context.Context, quiz *models.Quiz) error
	CreateQuestion(ctx context.Context, question *models.Question) error
	CreateAnswer(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id uint) (*models.Quiz, error)
	GetWithQuestions(ctx context.Context, id uint) (*models.Quiz, error)
	List(ctx context.Context, limit, offset int) ([]models.Quiz, error)
	GetQuestionPoints(ctx context.Context, quizID, questionID uint) (int, bool, error)
	IsCorrectAnswer(ctx context.Context, questionID, answerID uint) (bool, error)
	CreateAttempt(ctx context.Context, attempt *models.UserQuizAttempt) error
	ListAttempts(ctx context.Context, userID, quizID uint) ([]models.UserQuizAttempt, error)
}

// FlashcardRepositoryInterface defines the interface for flashcard repository operations
type FlashcardRepositoryInterface interface {
	CreateSet(ctx context.Context, set *models.FlashcardSet) error
	CreateCard(ctx context.Context, card *models.Flashcard) error
	GetByID(ctx context.Context, id uint) (*models.FlashcardSet, error)
	GetWithCards(ctx context.Context, id uint) (*models.FlashcardSet, error)
	List(ctx context.Context, limit int) ([]models.FlashcardSet, error)
	UpdateSet(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteSet(ctx context.Context, id uint) error
	GetCard(ctx context.Context, cardID uint) (*models.Flashcard, error)
	UpdateCard(ctx context.Context, cardID uint, front, back string) error
	DeleteCard(ctx context.Context, cardID uint) error
}

// Transactor runs fn inside one database transaction. fn receives repositories bound to
// the transaction; returning an error rolls back every write made through them.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *Repositories) error) error
}

// CatalogRepositoryInterface defines the interface for college and major lookups
type CatalogRepositoryInterface interface {
	CreateCollege(ctx context.Context, college *models.College) error
	CreateMajor(ctx context.Context, major *models.Major) error
	ListColleges(ctx context.Context) ([]models.College, error)
	ListMajors(ctx context.Context) ([]models.Major, error)
}

// ResourceRepositoryInterface defines the interface for resource repository operations
type ResourceRepositoryInterface interface {
	Create(ctx context.Context, resource *models.Resource) error
	List(ctx context.Context, limit int) ([]models.Resource, error)
}

// MessageRepositoryInterface defines the interface for direct message repository operations
type MessageRepositoryInterface interface {
	FindConversation(ctx context.Context, userA, userB uint) (*models.Conversation, error)
	GetConversation(ctx context.Context, id uint) (*models.Conversation, error)
	CreateConversation(ctx context.Context, conv *models.Conversation) error
	CreateRequest(ctx context.Context, req *models.MessageRequest) error
	FindRequestByConversation(ctx context.Context, conversationID uint) (*models.MessageRequest, error)
	LockRequest(ctx context.Context, requestID uint) (*models.MessageRequest, error)
	SetRequestStatus(ctx context.Context, requestID uint, status models.RequestStatus, at time.Time) error
	CreateMessage(ctx context.Context, msg *models.DirectMessage) error
	ListMessages(ctx context.Context, conversationID uint, limit int) ([]models.DirectMessage, error)
	Inbox(ctx context.Context, userID uint, limit int) ([]InboxRow, error)
	ListPendingRequests(ctx context.Context, userID uint, limit int) ([]MessageRequestRow, error)
}

// ChatRepositoryInterface defines the interface for group chat repository operations
type ChatRepositoryInterface interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListForGroup(ctx context.Context, groupID uint, limit int) ([]ChatMessageRow, error)
}
