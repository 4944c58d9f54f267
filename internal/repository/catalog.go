package repository

import (
	"context"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
)

// CatalogRepository handles the college and major lookup tables
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateCollege inserts a college
func (r *CatalogRepository) CreateCollege(ctx context.Context, college *models.College) error {
	return r.db.WithContext(ctx).Create(college).Error
}

// CreateMajor inserts a major
func (r *CatalogRepository) CreateMajor(ctx context.Context, major *models.Major) error {
	return r.db.WithContext(ctx).Create(major).Error
}

// ListColleges returns every college by id
func (r *CatalogRepository) ListColleges(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	if err := r.db.WithContext(ctx).Order("college_id").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

// ListMajors returns every major by id
func (r *CatalogRepository) ListMajors(ctx context.Context) ([]models.Major, error) {
	var majors []models.Major
	if err := r.db.WithContext(ctx).Order("major_id").Find(&majors).Error; err != nil {
		return nil, err
	}
	return majors, nil
}
