package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Kind classifies a DomainError for transport mapping
type Kind string

const (
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindGone           Kind = "gone"
)

// DomainError is a tagged business-rule failure. Code is the stable machine readable
// identifier returned to clients, Message the human readable text.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison by code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Membership errors
var (
	ErrGroupNotFound  = &DomainError{Kind: KindNotFound, Code: "GROUP_NOT_FOUND", Message: "Group not found"}
	ErrGroupFull      = &DomainError{Kind: KindConflict, Code: "GROUP_FULL", Message: "Group is full"}
	ErrAlreadyMember  = &DomainError{Kind: KindConflict, Code: "ALREADY_MEMBER", Message: "User already a member"}
	ErrMemberNotFound = &DomainError{Kind: KindNotFound, Code: "MEMBER_NOT_FOUND", Message: "Member not found in this group"}
	ErrNotOwner       = &DomainError{Kind: KindAuthorization, Code: "NOT_OWNER", Message: "Only the group owner can perform this action"}
	ErrNotMember      = &DomainError{Kind: KindAuthorization, Code: "NOT_MEMBER", Message: "Only group members can do this"}

	ErrOwnerCannotRemoveSelf = &DomainError{Kind: KindValidation, Code: "OWNER_CANNOT_REMOVE_SELF", Message: "Owner cannot remove themselves"}
)

// Join request errors
var (
	ErrGroupIsPrivate   = &DomainError{Kind: KindAuthorization, Code: "GROUP_IS_PRIVATE", Message: "This is a private group. Use an invite code to join."}
	ErrRequestPending   = &DomainError{Kind: KindConflict, Code: "REQUEST_PENDING", Message: "You already have a pending join request for this group."}
	ErrRequestApproved  = &DomainError{Kind: KindConflict, Code: "REQUEST_APPROVED", Message: "You have already been approved for this group."}
	ErrNoPendingRequest = &DomainError{Kind: KindNotFound, Code: "NO_PENDING_REQUEST", Message: "No pending request for this user."}
)

// Invite code errors
var (
	ErrNotPrivateGroup = &DomainError{Kind: KindValidation, Code: "NOT_PRIVATE_GROUP", Message: "Invite codes are only for private groups."}
	ErrInvalidCode     = &DomainError{Kind: KindNotFound, Code: "INVALID_CODE", Message: "Invalid invite code"}
	ErrCodeExpired     = &DomainError{Kind: KindGone, Code: "CODE_EXPIRED", Message: "Invite code has expired"}
)

// Authoring and study material errors
var (
	ErrQuizNotFound         = &DomainError{Kind: KindNotFound, Code: "QUIZ_NOT_FOUND", Message: "Quiz not found"}
	ErrFlashcardSetNotFound = &DomainError{Kind: KindNotFound, Code: "FLASHCARD_SET_NOT_FOUND", Message: "Set not found"}
	ErrFlashcardNotFound    = &DomainError{Kind: KindNotFound, Code: "FLASHCARD_NOT_FOUND", Message: "Flashcard not found"}
	ErrNotSetCreator        = &DomainError{Kind: KindAuthorization, Code: "NOT_SET_CREATOR", Message: "Only the creator can modify this set"}
	ErrCourseNotFound       = &DomainError{Kind: KindNotFound, Code: "COURSE_NOT_FOUND", Message: "Course not found"}
)

// Direct message errors
var (
	ErrCannotMessageSelf    = &DomainError{Kind: KindValidation, Code: "CANNOT_MESSAGE_SELF", Message: "You cannot message yourself"}
	ErrConversationNotFound = &DomainError{Kind: KindNotFound, Code: "CONVERSATION_NOT_FOUND", Message: "Conversation not found"}
	ErrNotParticipant       = &DomainError{Kind: KindAuthorization, Code: "NOT_PARTICIPANT", Message: "Not part of this conversation"}
	ErrMessageBlocked       = &DomainError{Kind: KindAuthorization, Code: "MESSAGE_REQUEST_REJECTED", Message: "This user declined your message request"}
	ErrInvalidAction        = &DomainError{Kind: KindValidation, Code: "INVALID_ACTION", Message: "Action must be accept or reject"}
	ErrRequestNotFound      = &DomainError{Kind: KindNotFound, Code: "REQUEST_NOT_FOUND", Message: "Message request not found"}
	ErrNotYourRequest       = &DomainError{Kind: KindAuthorization, Code: "NOT_YOUR_REQUEST", Message: "This request is not addressed to you"}
	ErrRequestDecided       = &DomainError{Kind: KindConflict, Code: "REQUEST_ALREADY_DECIDED", Message: "Message request was already answered"}
)

// Authentication errors
var (
	ErrNotLoggedIn        = &DomainError{Kind: KindAuthentication, Code: "NOT_LOGGED_IN", Message: "Not logged in"}
	ErrInvalidCredentials = &DomainError{Kind: KindAuthentication, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	ErrEmailRegistered    = &DomainError{Kind: KindConflict, Code: "EMAIL_REGISTERED", Message: "Email already registered"}
	ErrUserMismatch       = &DomainError{Kind: KindAuthorization, Code: "USER_MISMATCH", Message: "Request names a different user than the one logged in"}
	ErrUserNotFound       = &DomainError{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "User not found"}
)

var kindStatus = map[Kind]int{
	KindValidation:     http.StatusBadRequest,
	KindConflict:       http.StatusConflict,
	KindAuthentication: http.StatusUnauthorized,
	KindAuthorization:  http.StatusForbidden,
	KindNotFound:       http.StatusNotFound,
	KindGone:           http.StatusGone,
}

// HTTPStatus maps any error to its transport status. Unknown errors are internal.
func HTTPStatus(err error) int {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		if status, ok := kindStatus[domainErr.Kind]; ok {
			return status
		}
	}

	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// Code returns the machine readable code of a DomainError, or "" for other errors
func Code(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// PublicMessage returns the client facing text of err. Validation errors read as
// "<field> <message>", or just the message when no field applies.
func PublicMessage(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Field == "" {
			return validationErr.Message
		}
		return validationErr.Field + " " + validationErr.Message
	}
	return err.Error()
}

// IsDomain checks if an error is a DomainError
func IsDomain(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
