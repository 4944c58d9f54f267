package repository

import (
	"context"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
)

// ResourceRepository handles database operations for shared resources
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// List returns the newest limit resources, or every resource in insertion order when limit <= 0
func (r *ResourceRepository) List(ctx context.Context, limit int) ([]models.Resource, error) {
	var resources []models.Resource
	query := r.db.WithContext(ctx)
	if limit > 0 {
		query = query.Order("upload_date DESC").Order("resource_id DESC").Limit(limit)
	} else {
		query = query.Order("resource_id")
	}
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}
