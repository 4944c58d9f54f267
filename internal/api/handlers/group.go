package handlers

import (
	"net/http"

	"studybuddy-backend/internal/auth"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GroupHandler handles HTTP requests for study groups, members and sessions
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// UserRequest names the acting user of a group route
type UserRequest struct {
	UserID uint `json:"user_id" example:"1005"`
}

// OwnerRequest names the owner performing a group administration route
type OwnerRequest struct {
	OwnerID uint `json:"owner_id" example:"1001"`
}

// CreateGroupResponse represents the response of a created group
type CreateGroupResponse struct {
	GroupID uint `json:"group_id" example:"42"`
}

// actingUser resolves who performs the request. A bearer token always wins and an id sent
// alongside it must name the same user, otherwise mismatch is written as the response.
// Unauthenticated callers are taken at their word.
func actingUser(c *gin.Context, bodyID uint, mismatch error) (uint, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return bodyID, true
	}
	if bodyID != 0 && bodyID != userID {
		respondError(c, mismatch)
		return 0, false
	}
	return userID, true
}

// CreateGroup creates a new study group owned by its creator
// @Summary Create a study group
// @Description Create a study group; the creator becomes its owner
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} CreateGroupResponse "Created group"
// @Failure 400 {object} ErrorResponse "Missing or invalid fields"
// @Failure 404 {object} ErrorResponse "Course not found"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	var ok bool
	if req.CreatorUserID, ok = actingUser(c, req.CreatorUserID, apperrors.ErrUserMismatch); !ok {
		return
	}

	groupID, err := h.service.CreateGroup(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateGroupResponse{GroupID: groupID})
}

// ListPublic lists the public groups of a course
// @Summary List public groups
// @Description Public groups of a course with member counts, most recently active first
// @Tags groups
// @Produce json
// @Param course_id query int true "Course ID"
// @Param limit query int false "Maximum number of groups" default(20)
// @Success 200 {array} repository.PublicGroupRow
// @Failure 400 {object} ErrorResponse "Missing course_id"
// @Router /groups/public [get]
func (h *GroupHandler) ListPublic(c *gin.Context) {
	courseID, ok := queryID(c, "course_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	rows, err := h.service.ListPublic(c, courseID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListMine lists the groups of a user
// @Summary List my groups
// @Tags groups
// @Produce json
// @Param user_id query int false "User ID, defaults to the authenticated user"
// @Success 200 {array} repository.UserGroupRow
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Router /groups/mine [get]
func (h *GroupHandler) ListMine(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	if userID, ok = actingUser(c, userID, apperrors.ErrUserMismatch); !ok {
		return
	}

	rows, err := h.service.ListForUser(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListMembers lists the members of a group
// @Summary List group members
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} repository.MemberRow
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/members [get]
func (h *GroupHandler) ListMembers(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	rows, err := h.service.ListMembers(c, groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Kick removes a member from the group
// @Summary Kick a member
// @Description Only the owner may kick, and never themselves
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param uid path int true "User ID to remove"
// @Param request body OwnerRequest true "Acting owner"
// @Success 200 {object} map[string]string "Member removed"
// @Failure 400 {object} ErrorResponse "Owner cannot remove themselves"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Router /groups/{id}/members/{uid} [delete]
func (h *GroupHandler) Kick(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	targetID, ok := pathID(c, "uid")
	if !ok {
		return
	}
	var req OwnerRequest
	_ = c.ShouldBindJSON(&req)
	ownerID, ok := actingUser(c, req.OwnerID, apperrors.ErrNotOwner)
	if !ok {
		return
	}
	if ownerID == 0 {
		badRequest(c, "owner_id is required")
		return
	}

	if err := h.service.Kick(c, groupID, ownerID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// Leave removes the acting user from the group
// @Summary Leave a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body UserRequest true "Leaving user"
// @Success 200 {object} map[string]string "Left group"
// @Failure 400 {object} ErrorResponse "Owner cannot leave"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Router /groups/{id}/leave [post]
func (h *GroupHandler) Leave(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UserRequest
	_ = c.ShouldBindJSON(&req)
	userID, ok := actingUser(c, req.UserID, apperrors.ErrUserMismatch)
	if !ok {
		return
	}
	if userID == 0 {
		badRequest(c, "user_id is required")
		return
	}

	if err := h.service.Leave(c, groupID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "left"})
}

// CreateSession schedules a study session
// @Summary Schedule a study session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param session body service.CreateSessionRequest true "Session data"
// @Success 201 {object} map[string]interface{} "Created session"
// @Failure 400 {object} ErrorResponse "Invalid date or time"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/sessions [post]
func (h *GroupHandler) CreateSession(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	sessionID, err := h.service.CreateSession(c, groupID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Session created", "session_id": sessionID})
}

// UpcomingSessions lists the upcoming sessions of the user's groups
// @Summary List upcoming sessions
// @Tags sessions
// @Produce json
// @Param user_id query int false "User ID, defaults to the authenticated user"
// @Param limit query int false "Maximum number of sessions" default(50)
// @Success 200 {array} repository.UpcomingSessionRow
// @Failure 400 {object} ErrorResponse "Missing user_id"
// @Router /groups/sessions/upcoming [get]
func (h *GroupHandler) UpcomingSessions(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 0)
	if !ok {
		return
	}

	if userID, ok = actingUser(c, userID, apperrors.ErrUserMismatch); !ok {
		return
	}

	rows, err := h.service.UpcomingSessions(c, userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
