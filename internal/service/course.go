package service

import (
	"context"
	"fmt"
	"strings"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/repository"
)

const (
	maxCourses         = 500
	defaultSearchLimit = 8
	minSearchLength    = 2
)

// CourseService handles read access to the course catalogue
type CourseService struct {
	repo repository.CourseRepositoryInterface
}

// NewCourseService creates a new course service
func NewCourseService(repo repository.CourseRepositoryInterface) *CourseService {
	return &CourseService{repo: repo}
}

// ListCourses returns the catalogue ordered by course code
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, _, err := s.repo.GetAll(ctx, maxCourses, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// SearchCourses matches q against course codes and names. Queries shorter than two
// characters return no rows.
func (s *CourseService) SearchCourses(ctx context.Context, q string, limit int) ([]repository.CourseSearchRow, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < minSearchLength {
		return []repository.CourseSearchRow{}, nil
	}
	rows, err := s.repo.Search(ctx, q, clampLimit(limit, defaultSearchLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}
	return rows, nil
}
