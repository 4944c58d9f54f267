package service_test

import (
	"context"
	"testing"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/mocks"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResourceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the cleaned resource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockResourceRepositoryInterface(ctrl)
		publisher := &recordingPublisher{}
		svc := service.NewResourceService(repo, publisher, service.NewValidator())

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *models.Resource) error {
			assert.Equal(t, uint(7), r.UploaderID)
			assert.Equal(t, "Graph notes", r.Title)
			assert.Equal(t, "PDF", r.Filetype)
			assert.Equal(t, "https://example.edu/graphs.pdf", r.Source)
			r.ResourceID = 11
			return nil
		})

		resource, err := svc.Create(ctx, 7, &service.CreateResourceRequest{
			Title:    " <b>Graph notes</b> ",
			URL:      " https://example.edu/graphs.pdf ",
			Filetype: "pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(11), resource.ResourceID)
		assert.Equal(t, []events.Type{events.ResourceShared}, publisher.types())
	})

	t.Run("required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewResourceService(mocks.NewMockResourceRepositoryInterface(ctrl), nil, service.NewValidator())

		for name, req := range map[string]*service.CreateResourceRequest{
			"title":    {URL: "https://example.edu/a", Filetype: "pdf"},
			"url":      {Title: "Notes", Filetype: "pdf"},
			"filetype": {Title: "Notes", URL: "https://example.edu/a"},
			"bad url":  {Title: "Notes", URL: "not a link", Filetype: "pdf"},
		} {
			_, err := svc.Create(ctx, 7, req)
			assert.True(t, apperrors.IsValidation(err), name)
		}
	})
}

func TestResourceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockResourceRepositoryInterface(ctrl)
	svc := service.NewResourceService(repo, nil, service.NewValidator())

	repo.EXPECT().List(gomock.Any(), 0).Return([]models.Resource{{ResourceID: 1}}, nil)

	resources, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, resources, 1)
}
