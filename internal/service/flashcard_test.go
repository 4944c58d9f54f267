package service_test

import (
	"context"
	"testing"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FlashcardServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service *service.FlashcardService
	ctx     context.Context
	creator *models.User
	setID   uint
}

func (suite *FlashcardServiceTestSuite) SetupTest() {
	suite.fx = newFixture(suite.T())
	suite.service = service.NewFlashcardService(suite.fx.tx, suite.fx.repos, suite.fx.publisher, service.NewValidator())
	suite.ctx = context.Background()
	suite.creator = suite.fx.user(suite.T())

	description := "Week 3"
	setID, err := suite.service.CreateSet(suite.ctx, &service.CreateFlashcardSetRequest{
		Title:       "Graph terms",
		Description: &description,
		CreatorID:   suite.creator.UserID,
		Cards: []service.CardInput{
			{Front: "Vertex", Back: "A node"},
			{Front: "Edge", Back: "A link between two vertices"},
		},
	})
	suite.Require().NoError(err)
	suite.setID = setID
}

func (suite *FlashcardServiceTestSuite) TestGetSet_CardsInOrder() {
	set, err := suite.service.GetSet(suite.ctx, suite.setID)

	suite.Require().NoError(err)
	suite.Require().Len(set.Cards, 2)
	assert.Equal(suite.T(), "Vertex", set.Cards[0].FrontText)
	assert.Equal(suite.T(), 2, set.Cards[1].Position)
}

func (suite *FlashcardServiceTestSuite) TestGetSet_NotFound() {
	_, err := suite.service.GetSet(suite.ctx, 404)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFlashcardSetNotFound)
}

func (suite *FlashcardServiceTestSuite) TestListSets() {
	sets, err := suite.service.ListSets(suite.ctx, 0)

	suite.Require().NoError(err)
	suite.Require().Len(sets, 1)
	assert.Equal(suite.T(), "Graph terms", sets[0].Title)
}

func (suite *FlashcardServiceTestSuite) TestUpdateSet_ByCreator() {
	title := "Graph vocabulary"
	empty := "  "

	set, err := suite.service.UpdateSet(suite.ctx, suite.creator.UserID, suite.setID, &service.UpdateFlashcardSetRequest{
		Title:       &title,
		Description: &empty,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Graph vocabulary", set.Title)
	assert.Nil(suite.T(), set.Description)
}

func (suite *FlashcardServiceTestSuite) TestUpdateSet_ByOtherUser() {
	title := "Hijacked"

	_, err := suite.service.UpdateSet(suite.ctx, suite.fx.user(suite.T()).UserID, suite.setID, &service.UpdateFlashcardSetRequest{Title: &title})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotSetCreator)
	set, err := suite.service.GetSet(suite.ctx, suite.setID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Graph terms", set.Title)
}

func (suite *FlashcardServiceTestSuite) TestDeleteSet_ByOtherUser() {
	err := suite.service.DeleteSet(suite.ctx, suite.fx.user(suite.T()).UserID, suite.setID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotSetCreator)
}

func (suite *FlashcardServiceTestSuite) TestDeleteSet_RemovesCards() {
	suite.Require().NoError(suite.service.DeleteSet(suite.ctx, suite.creator.UserID, suite.setID))

	_, err := suite.service.GetSet(suite.ctx, suite.setID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFlashcardSetNotFound)

	var cards int64
	suite.Require().NoError(suite.fx.db.Model(&models.Flashcard{}).Count(&cards).Error)
	assert.Zero(suite.T(), cards)
	assert.Equal(suite.T(), []events.Type{events.FlashcardSetCreated, events.FlashcardSetDeleted}, suite.fx.publisher.types())
}

func (suite *FlashcardServiceTestSuite) TestListSets_LimitZeroListsAll() {
	for _, title := range []string{"Trees", "Heaps"} {
		_, err := suite.service.CreateSet(suite.ctx, &service.CreateFlashcardSetRequest{Title: title, CreatorID: suite.creator.UserID})
		suite.Require().NoError(err)
	}

	all, err := suite.service.ListSets(suite.ctx, 0)
	suite.Require().NoError(err)
	assert.Len(suite.T(), all, 3)

	limited, err := suite.service.ListSets(suite.ctx, 2)
	suite.Require().NoError(err)
	assert.Len(suite.T(), limited, 2)
}

func (suite *FlashcardServiceTestSuite) firstCardID() uint {
	set, err := suite.service.GetSet(suite.ctx, suite.setID)
	suite.Require().NoError(err)
	return set.Cards[0].CardID
}

func (suite *FlashcardServiceTestSuite) TestUpdateCard_ByCreator() {
	card, err := suite.service.UpdateCard(suite.ctx, suite.creator.UserID, suite.firstCardID(), &service.UpdateCardRequest{
		Front: " Node ",
		Back:  "<b>A vertex</b>",
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Node", card.FrontText)
	assert.Equal(suite.T(), "A vertex", card.BackText)
	assert.Equal(suite.T(), 1, card.Position)
}

func (suite *FlashcardServiceTestSuite) TestUpdateCard_Rejections() {
	cardID := suite.firstCardID()

	_, err := suite.service.UpdateCard(suite.ctx, suite.fx.user(suite.T()).UserID, cardID, &service.UpdateCardRequest{Front: "x", Back: "y"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotSetCreator)

	_, err = suite.service.UpdateCard(suite.ctx, suite.creator.UserID, 9999, &service.UpdateCardRequest{Front: "x", Back: "y"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrFlashcardNotFound)

	_, err = suite.service.UpdateCard(suite.ctx, suite.creator.UserID, cardID, &service.UpdateCardRequest{Front: "x"})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FlashcardServiceTestSuite) TestDeleteCard() {
	cardID := suite.firstCardID()

	err := suite.service.DeleteCard(suite.ctx, suite.fx.user(suite.T()).UserID, cardID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotSetCreator)

	suite.Require().NoError(suite.service.DeleteCard(suite.ctx, suite.creator.UserID, cardID))
	set, err := suite.service.GetSet(suite.ctx, suite.setID)
	suite.Require().NoError(err)
	suite.Require().Len(set.Cards, 1)
	assert.Equal(suite.T(), "Edge", set.Cards[0].FrontText)

	err = suite.service.DeleteCard(suite.ctx, suite.creator.UserID, cardID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFlashcardNotFound)
}

func TestFlashcardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FlashcardServiceTestSuite))
}

func TestCreateSet_RequiresCardText(t *testing.T) {
	fx := newFixture(t)
	svc := service.NewFlashcardService(fx.tx, fx.repos, fx.publisher, service.NewValidator())

	_, err := svc.CreateSet(context.Background(), &service.CreateFlashcardSetRequest{
		Title:     "Broken",
		CreatorID: fx.user(t).UserID,
		Cards:     []service.CardInput{{Front: "<i></i>", Back: "answer"}},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
