package repository

import (
	"testing"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
)

type CatalogRepositoryTestSuite struct {
	repoSuite
}

func (s *CatalogRepositoryTestSuite) TestListColleges() {
	for _, name := range []string{"College of Sciences", "College of Business"} {
		s.Require().NoError(s.repos.Catalog.CreateCollege(s.ctx, &models.College{CollegeName: name}))
	}

	colleges, err := s.repos.Catalog.ListColleges(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(colleges, 2)
	s.Equal("College of Sciences", colleges[0].CollegeName)
}

func (s *CatalogRepositoryTestSuite) TestListMajors() {
	majors, err := s.repos.Catalog.ListMajors(s.ctx)
	s.Require().NoError(err)
	s.Empty(majors)

	s.Require().NoError(s.repos.Catalog.CreateMajor(s.ctx, &models.Major{MajorName: "Computer Science"}))
	s.Error(s.repos.Catalog.CreateMajor(s.ctx, &models.Major{MajorName: "Computer Science"}))

	majors, err = s.repos.Catalog.ListMajors(s.ctx)
	s.Require().NoError(err)
	s.Len(majors, 1)
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
