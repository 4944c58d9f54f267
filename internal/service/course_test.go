package service_test

import (
	"context"
	"errors"
	"testing"

	"studybuddy-backend/internal/database/models"
	"studybuddy-backend/internal/mocks"
	"studybuddy-backend/internal/repository"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListCourses(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepositoryInterface(ctrl)
	svc := service.NewCourseService(repo)

	courses := []models.Course{{CourseID: 1, CourseCode: "CS101", CourseName: "Intro to Programming"}}
	repo.EXPECT().GetAll(gomock.Any(), 500, 0).Return(courses, int64(1), nil)

	got, err := svc.ListCourses(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, courses, got)

	repo.EXPECT().GetAll(gomock.Any(), 500, 0).Return(nil, int64(0), errors.New("db down"))
	_, err = svc.ListCourses(context.Background())
	assert.ErrorContains(t, err, "failed to list courses")
}

func TestSearchCourses(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCourseRepositoryInterface(ctrl)
	svc := service.NewCourseService(repo)
	ctx := context.Background()

	t.Run("short query skips the database", func(t *testing.T) {
		rows, err := svc.SearchCourses(ctx, "  c ", 8)
		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("trimmed query with default limit", func(t *testing.T) {
		hits := []repository.CourseSearchRow{{CourseID: 3, CourseCode: "COS 420", CourseName: "Database Systems"}}
		repo.EXPECT().Search(gomock.Any(), "cos 420", 8).Return(hits, nil)

		rows, err := svc.SearchCourses(ctx, " cos 420 ", 0)
		assert.NoError(t, err)
		assert.Equal(t, hits, rows)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo.EXPECT().Search(gomock.Any(), "math", 3).Return(nil, errors.New("db down"))

		_, err := svc.SearchCourses(ctx, "math", 3)
		assert.ErrorContains(t, err, "failed to search courses")
	})
}

func TestCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCatalogRepositoryInterface(ctrl)
	svc := service.NewCatalogService(repo)
	ctx := context.Background()

	colleges := []models.College{{CollegeID: 1, CollegeName: "College of Sciences"}}
	repo.EXPECT().ListColleges(gomock.Any()).Return(colleges, nil)
	got, err := svc.ListColleges(ctx)
	assert.NoError(t, err)
	assert.Equal(t, colleges, got)

	repo.EXPECT().ListMajors(gomock.Any()).Return(nil, errors.New("db down"))
	_, err = svc.ListMajors(ctx)
	assert.ErrorContains(t, err, "failed to list majors")
}
