package service

import (
	"context"
	"fmt"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/repository"
)

// CatalogService serves the college and major pick lists shown at sign up
type CatalogService struct {
	repo repository.CatalogRepositoryInterface
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepositoryInterface) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListColleges(ctx context.Context) ([]models.College, error) {
	colleges, err := s.repo.ListColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list colleges: %w", err)
	}
	return colleges, nil
}

func (s *CatalogService) ListMajors(ctx context.Context) ([]models.Major, error) {
	majors, err := s.repo.ListMajors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list majors: %w", err)
	}
	return majors, nil
}
