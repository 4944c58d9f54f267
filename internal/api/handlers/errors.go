package handlers

import (
	"net/http"
	"strconv"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"Group is full"`
	Code  string `json:"code,omitempty" example:"GROUP_FULL"`
}

var statusCodes = map[int]string{
	http.StatusBadRequest:   "VALIDATION_ERROR",
	http.StatusUnauthorized: "UNAUTHORIZED",
	http.StatusForbidden:    "FORBIDDEN",
	http.StatusNotFound:     "NOT_FOUND",
	http.StatusConflict:     "CONFLICT",
	http.StatusGone:         "GONE",
}

// respondError writes err with the status of its kind. Infrastructure errors are logged
// and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("request failed")
		c.JSON(status, ErrorResponse{Error: "Internal server error", Code: "INTERNAL"})
		return
	}

	code := apperrors.Code(err)
	if code == "" {
		code = statusCodes[status]
	}
	c.JSON(status, ErrorResponse{Error: apperrors.PublicMessage(err), Code: code})
}

func badRequest(c *gin.Context, message string) {
	respondError(c, apperrors.NewValidationError("", message))
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryID parses an optional numeric query parameter; absent yields 0
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// queryInt parses an optional integer query parameter; absent yields def
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "Invalid "+name)
		return 0, false
	}
	return n, true
}
