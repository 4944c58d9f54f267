package service

import (
	"context"
	"fmt"
	"time"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPublicGroupsLimit = 20
	defaultUpcomingLimit     = 50
	maxListLimit             = 100
)

// GroupService handles business logic for study groups, their members and sessions
type GroupService struct {
	tx        repository.Transactor
	repos     *repository.Repositories
	publisher events.Publisher
	validator *validator.Validate
	now       Clock
}

// NewGroupService creates a new group service
func NewGroupService(tx repository.Transactor, repos *repository.Repositories, publisher events.Publisher, validator *validator.Validate, now Clock) *GroupService {
	if now == nil {
		now = time.Now
	}
	return &GroupService{
		tx:        tx,
		repos:     repos,
		publisher: publisher,
		validator: validator,
		now:       now,
	}
}

// CreateGroupRequest represents the request to create a study group
type CreateGroupRequest struct {
	GroupName     string `json:"group_name" validate:"required,max=100"`
	MaxMembers    int    `json:"max_members" validate:"required,min=1,max=500"`
	CourseID      uint   `json:"course_id" validate:"required"`
	CreatorUserID uint   `json:"creator_user_id" validate:"required"`
	IsPrivate     bool   `json:"is_private"`
}

// CreateSessionRequest represents the request to schedule a study session
type CreateSessionRequest struct {
	SessionDate string `json:"session_date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Notes       string `json:"notes"`
}

// CreateGroup creates the group and inserts the creator as its owner in one transaction
func (s *GroupService) CreateGroup(ctx context.Context, req *CreateGroupRequest) (uint, error) {
	req.GroupName = cleanText(req.GroupName)
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}

	group := &models.StudyGroup{
		GroupName:  req.GroupName,
		MaxMembers: req.MaxMembers,
		IsPrivate:  req.IsPrivate,
		CourseID:   req.CourseID,
	}

	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Courses.GetByID(ctx, req.CourseID); err != nil {
			return notFound(err, apperrors.ErrCourseNotFound, "load course")
		}
		if err := tx.Groups.Create(ctx, group); err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		if err := tx.Members.AddMember(ctx, &models.GroupMember{
			GroupID: group.GroupID,
			UserID:  req.CreatorUserID,
			Role:    models.MemberRoleOwner,
		}); err != nil {
			return fmt.Errorf("failed to add owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"group_id": group.GroupID,
		"owner_id": req.CreatorUserID,
	}).Info("study group created")
	publish(ctx, s.publisher, events.Event{
		Type:    events.GroupCreated,
		Key:     groupKey(group.GroupID),
		ActorID: req.CreatorUserID,
		Data: map[string]interface{}{
			"group_id":    group.GroupID,
			"course_id":   group.CourseID,
			"is_private":  group.IsPrivate,
			"max_members": group.MaxMembers,
		},
	})
	return group.GroupID, nil
}

// ListPublic returns the public groups of a course
func (s *GroupService) ListPublic(ctx context.Context, courseID uint, limit int) ([]repository.PublicGroupRow, error) {
	if courseID == 0 {
		return nil, apperrors.NewValidationError("course_id", "is required")
	}
	rows, err := s.repos.Groups.ListPublicByCourse(ctx, courseID, clampLimit(limit, defaultPublicGroupsLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list public groups: %w", err)
	}
	return rows, nil
}

// ListForUser returns the groups a user belongs to
func (s *GroupService) ListForUser(ctx context.Context, userID uint) ([]repository.UserGroupRow, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user_id", "is required")
	}
	rows, err := s.repos.Members.ListUserGroups(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user groups: %w", err)
	}
	return rows, nil
}

// ListMembers returns the members of a group
func (s *GroupService) ListMembers(ctx context.Context, groupID uint) ([]repository.MemberRow, error) {
	if _, err := s.repos.Members.FindGroup(ctx, groupID); err != nil {
		return nil, notFound(err, apperrors.ErrGroupNotFound, "load group")
	}
	rows, err := s.repos.Members.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return rows, nil
}

// Kick removes targetUserID from the group. Only the owner may kick, and never themselves.
func (s *GroupService) Kick(ctx context.Context, groupID, ownerID, targetUserID uint) error {
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := requireOwner(ctx, tx.Members, groupID, ownerID); err != nil {
			return err
		}
		if ownerID == targetUserID {
			return apperrors.ErrOwnerCannotRemoveSelf
		}
		removed, err := tx.Members.RemoveMember(ctx, groupID, targetUserID)
		if err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		if removed == 0 {
			return apperrors.ErrMemberNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.MemberRemoved,
		Key:     groupKey(groupID),
		ActorID: ownerID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": targetUserID, "reason": "kicked"},
	})
	return nil
}

// Leave removes userID from the group. The owner cannot leave their own group.
func (s *GroupService) Leave(ctx context.Context, groupID, userID uint) error {
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		member, err := tx.Members.FindMember(ctx, groupID, userID)
		if err != nil {
			return notFound(err, apperrors.ErrMemberNotFound, "load member")
		}
		if member.Role == models.MemberRoleOwner {
			return apperrors.ErrOwnerCannotRemoveSelf
		}
		if _, err := tx.Members.RemoveMember(ctx, groupID, userID); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.MemberRemoved,
		Key:     groupKey(groupID),
		ActorID: userID,
		Data:    map[string]interface{}{"group_id": groupID, "user_id": userID, "reason": "left"},
	})
	return nil
}

// CreateSession schedules a study session for a group
func (s *GroupService) CreateSession(ctx context.Context, groupID uint, req *CreateSessionRequest) (uint, error) {
	req.Location = cleanText(req.Location)
	req.Notes = cleanText(req.Notes)
	if err := validateStruct(s.validator, req); err != nil {
		return 0, err
	}

	day, err := time.Parse("2006-01-02", req.SessionDate)
	if err != nil {
		return 0, apperrors.NewValidationError("", "Invalid date or time format")
	}
	start, errStart := time.Parse("15:04", req.StartTime)
	end, errEnd := time.Parse("15:04", req.EndTime)
	if errStart != nil || errEnd != nil {
		return 0, apperrors.NewValidationError("", "Invalid date or time format")
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return 0, apperrors.NewValidationError("", "Session date cannot be in the past")
	}
	if !end.After(start) {
		return 0, apperrors.NewValidationError("", "End time must be after start time")
	}

	session := &models.StudySession{
		GroupID:     groupID,
		SessionDate: day,
		StartTime:   start.Format("15:04"),
		EndTime:     end.Format("15:04"),
		Location:    req.Location,
		Notes:       req.Notes,
	}

	err = s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Members.FindGroup(ctx, groupID); err != nil {
			return notFound(err, apperrors.ErrGroupNotFound, "load group")
		}
		if err := tx.Sessions.Create(ctx, session); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	publish(ctx, s.publisher, events.Event{
		Type: events.SessionScheduled,
		Key:  groupKey(groupID),
		Data: map[string]interface{}{
			"group_id":     groupID,
			"session_id":   session.SessionID,
			"session_date": req.SessionDate,
		},
	})
	return session.SessionID, nil
}

// UpcomingSessions lists today's and future sessions of the user's groups
func (s *GroupService) UpcomingSessions(ctx context.Context, userID uint, limit int) ([]repository.UpcomingSessionRow, error) {
	if userID == 0 {
		return nil, apperrors.NewValidationError("user_id", "is required")
	}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rows, err := s.repos.Sessions.ListUpcomingForUser(ctx, userID, today, clampLimit(limit, defaultUpcomingLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming sessions: %w", err)
	}
	return rows, nil
}

// clampLimit applies def when limit is unset and caps it at maxListLimit
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
