package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"
	"time"

	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// Clock returns the current time. Services take one so tests can pin time.
type Clock func() time.Time

var textPolicy = bluemonday.StrictPolicy()

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and turns the first failure into a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(field, "is required")
	case "min", "gte":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at least %s", fe.Param()))
	case "max", "lte":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be at most %s", fe.Param()))
	case "email":
		return apperrors.NewValidationError(field, "must be a valid email")
	case "url":
		return apperrors.NewValidationError(field, "must be a valid URL")
	case "oneof":
		return apperrors.NewValidationError(field, fmt.Sprintf("must be one of: %s", fe.Param()))
	}
	return apperrors.NewValidationError(field, fmt.Sprintf("failed on %s", fe.Tag()))
}

// cleanText strips markup and surrounding whitespace from user supplied text.
// Entities escaped by the policy are decoded so plain text like "a < b" is kept as is.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func cleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := cleanText(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// notFound maps gorm.ErrRecordNotFound to domainErr and wraps everything else
func notFound(err error, domainErr error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// publish delivers an event once its transaction has committed. Failures are only logged.
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("event", event.Type).Warn("failed to publish event")
	}
}

func groupKey(groupID uint) string {
	return fmt.Sprintf("group:%d", groupID)
}
