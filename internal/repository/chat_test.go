package repository

import (
	"testing"

	"studybuddy-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
)

type ChatRepositoryTestSuite struct {
	repoSuite
}

func (s *ChatRepositoryTestSuite) TestListForGroup() {
	user := s.createUser("Ada", "Lovelace")
	course := s.createCourse()
	group := s.createGroup(s.factories.Group.Create(course.CourseID))
	other := s.createGroup(s.factories.Group.Create(course.CourseID))

	for _, body := range []string{"first", "second", "third"} {
		s.Require().NoError(s.repos.Chat.Create(s.ctx, &models.ChatMessage{GroupID: group.GroupID, UserID: user.UserID, Content: body}))
	}
	s.Require().NoError(s.repos.Chat.Create(s.ctx, &models.ChatMessage{GroupID: other.GroupID, UserID: user.UserID, Content: "elsewhere"}))

	rows, err := s.repos.Chat.ListForGroup(s.ctx, group.GroupID, 2)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("second", rows[0].Content)
	s.Equal("third", rows[1].Content)
	s.Equal("Ada Lovelace", rows[1].UserName)
	s.False(rows[1].SentTime.IsZero())
}

func TestChatRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ChatRepositoryTestSuite))
}
