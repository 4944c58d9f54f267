package repository

import (
	"testing"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
)

type ResourceRepositoryTestSuite struct {
	repoSuite
}

func (s *ResourceRepositoryTestSuite) TestList() {
	user := s.createUser("Ada", "Lovelace")
	var ids []uint
	for _, title := range []string{"Notes", "Slides", "Cheatsheet"} {
		res := &models.Resource{UploaderID: user.UserID, Title: title, Filetype: "PDF", Source: "https://example.edu/" + title}
		s.Require().NoError(s.repos.Resources.Create(s.ctx, res))
		ids = append(ids, res.ResourceID)
	}

	latest, err := s.repos.Resources.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(latest, 2)
	s.Equal(ids[2], latest[0].ResourceID)
	s.Equal(ids[1], latest[1].ResourceID)

	all, err := s.repos.Resources.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(ids[0], all[0].ResourceID)
	s.False(all[0].UploadDate.IsZero())
}

func TestResourceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceRepositoryTestSuite))
}
