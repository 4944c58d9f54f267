package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository bound to the same connection or transaction
type Repositories struct {
	Users        UserRepositoryInterface
	Courses      CourseRepositoryInterface
	Groups       GroupRepositoryInterface
	Members      MembershipStore
	JoinRequests JoinRequestRepositoryInterface
	Sessions     SessionRepositoryInterface
	Quizzes      QuizRepositoryInterface
	Flashcards   FlashcardRepositoryInterface
	Catalog      CatalogRepositoryInterface
	Resources    ResourceRepositoryInterface
	Messages     MessageRepositoryInterface
	Chat         ChatRepositoryInterface
}

// NewRepositories creates the repository set on top of db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Courses:      NewCourseRepository(db),
		Groups:       NewGroupRepository(db),
		Members:      NewMemberRepository(db),
		JoinRequests: NewJoinRequestRepository(db),
		Sessions:     NewSessionRepository(db),
		Quizzes:      NewQuizRepository(db),
		Flashcards:   NewFlashcardRepository(db),
		Catalog:      NewCatalogRepository(db),
		Resources:    NewResourceRepository(db),
		Messages:     NewMessageRepository(db),
		Chat:         NewChatRepository(db),
	}
}

// GormTransactor runs units of work in GORM transactions
type GormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a new GormTransactor
func NewTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise
func (t *GormTransactor) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
