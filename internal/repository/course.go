package repository

import (
	"context"
	"strings"

	"studybuddy-backend/internal/database/models"

	"gorm.io/gorm"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, "course_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// GetByCode retrieves a course by its catalogue code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, "course_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// GetAll retrieves courses ordered by code with pagination
func (r *CourseRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Course, int64, error) {
	var courses []models.Course
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("course_code").Limit(limit).Offset(offset).Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Search matches q against course codes, with or without their spaces, and course names.
// Codes starting with q come first.
func (r *CourseRepository) Search(ctx context.Context, q string, limit int) ([]CourseSearchRow, error) {
	needle := strings.ToLower(q)
	compact := strings.ReplaceAll(needle, " ", "")
	like := "%" + needle + "%"

	var rows []CourseSearchRow
	err := r.db.WithContext(ctx).
		Table("courses AS co").
		Select("co.course_id, co.course_code, co.course_name, cl.college_name").
		Joins("LEFT JOIN colleges cl ON cl.college_id = co.college_id").
		Where("LOWER(co.course_code) LIKE ? OR REPLACE(LOWER(co.course_code), ' ', '') LIKE ? OR LOWER(co.course_name) LIKE ?",
			like, "%"+compact+"%", like).
		Order(gorm.Expr("CASE WHEN REPLACE(LOWER(co.course_code), ' ', '') LIKE ? THEN 0 ELSE 1 END", compact+"%")).
		Order("co.course_code").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
