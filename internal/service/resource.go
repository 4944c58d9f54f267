package service

import (
	"context"
	"fmt"
	"strings"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CreateResourceRequest shares a link to material hosted elsewhere
type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url,max=500"`
	Filetype    string `json:"filetype" validate:"required,max=20"`
}

// ResourceService handles the shared resource board
type ResourceService struct {
	repo      repository.ResourceRepositoryInterface
	publisher events.Publisher
	validator *validator.Validate
}

// NewResourceService creates a new resource service
func NewResourceService(repo repository.ResourceRepositoryInterface, publisher events.Publisher, validator *validator.Validate) *ResourceService {
	return &ResourceService{repo: repo, publisher: publisher, validator: validator}
}

// List returns the newest limit resources, or all of them when limit <= 0
func (s *ResourceService) List(ctx context.Context, limit int) ([]models.Resource, error) {
	resources, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// Create stores a resource shared by userID. The filetype is upper-cased.
func (s *ResourceService) Create(ctx context.Context, userID uint, req *CreateResourceRequest) (*models.Resource, error) {
	req.Title = cleanText(req.Title)
	req.Description = cleanText(req.Description)
	req.URL = strings.TrimSpace(req.URL)
	req.Filetype = strings.ToUpper(cleanText(req.Filetype))
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	resource := &models.Resource{
		UploaderID:  userID,
		Title:       req.Title,
		Description: req.Description,
		Filetype:    req.Filetype,
		Source:      req.URL,
	}
	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	publish(ctx, s.publisher, events.Event{
		Type:    events.ResourceShared,
		Key:     fmt.Sprintf("resource:%d", resource.ResourceID),
		ActorID: userID,
		Data:    map[string]interface{}{"resource_id": resource.ResourceID, "filetype": resource.Filetype},
	})
	return resource, nil
}
