package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/repository"
	"studybuddy-backend/internal/service"
	"studybuddy-backend/internal/testutils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture wires the services on top of a private in-memory database
type fixture struct {
	db         *gorm.DB
	repos      *repository.Repositories
	tx         repository.Transactor
	factories  *testutils.FactorySet
	publisher  *recordingPublisher
	membership *service.MembershipService
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutils.NewSQLiteDB(t)
	tx := repository.NewTransactor(db)
	publisher := &recordingPublisher{}
	return &fixture{
		db:         db,
		repos:      repository.NewRepositories(db),
		tx:         tx,
		factories:  testutils.NewFactorySet(),
		publisher:  publisher,
		membership: service.NewMembershipService(tx, publisher),
		now:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (fx *fixture) clock() time.Time {
	return fx.now
}

func (fx *fixture) user(t *testing.T) *models.User {
	t.Helper()
	user := fx.factories.User.Create()
	testutils.MustCreate(t, fx.db, user)
	return user
}

func (fx *fixture) course(t *testing.T) *models.Course {
	t.Helper()
	course := fx.factories.Course.Create()
	testutils.MustCreate(t, fx.db, course)
	return course
}

// ownedGroup persists group together with a fresh owner
func (fx *fixture) ownedGroup(t *testing.T, group *models.StudyGroup) (*models.StudyGroup, *models.User) {
	t.Helper()
	owner := fx.user(t)
	testutils.MustCreate(t, fx.db, group)
	testutils.MustCreate(t, fx.db, &models.GroupMember{GroupID: group.GroupID, UserID: owner.UserID, Role: models.MemberRoleOwner})
	return group, owner
}

func (fx *fixture) publicGroup(t *testing.T, maxMembers int) (*models.StudyGroup, *models.User) {
	t.Helper()
	return fx.ownedGroup(t, fx.factories.Group.WithCapacity(fx.course(t).CourseID, maxMembers))
}

func (fx *fixture) privateGroup(t *testing.T) (*models.StudyGroup, *models.User) {
	t.Helper()
	return fx.ownedGroup(t, fx.factories.Group.Private(fx.course(t).CourseID))
}

func (fx *fixture) join(t *testing.T, groupID uint, userID uint) {
	t.Helper()
	testutils.MustCreate(t, fx.db, &models.GroupMember{GroupID: groupID, UserID: userID, Role: models.MemberRoleMember})
}

func (fx *fixture) memberCount(t *testing.T, groupID uint) int64 {
	t.Helper()
	count, err := fx.repos.Members.CountMembers(context.Background(), groupID)
	require.NoError(t, err)
	return count
}

// recordingPublisher keeps every published event in memory
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}
