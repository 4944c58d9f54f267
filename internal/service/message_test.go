package service_test

import (
	"context"
	"testing"

	"studybuddy-backend/internal/database/models"
	apperrors "studybuddy-backend/internal/errors"
	"studybuddy-backend/internal/events"
	"studybuddy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DirectMessageServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service *service.DirectMessageService
	ctx     context.Context
	alice   *models.User
	bob     *models.User
}

func (suite *DirectMessageServiceTestSuite) SetupTest() {
	suite.fx = newFixture(suite.T())
	suite.service = service.NewDirectMessageService(suite.fx.tx, suite.fx.repos, suite.fx.publisher, service.NewValidator(), suite.fx.clock)
	suite.ctx = context.Background()
	suite.alice = suite.fx.user(suite.T())
	suite.bob = suite.fx.user(suite.T())
}

func (suite *DirectMessageServiceTestSuite) start() uint {
	id, err := suite.service.Start(suite.ctx, &service.StartConversationRequest{
		RequesterID: suite.bob.UserID,
		TargetID:    suite.alice.UserID,
	})
	suite.Require().NoError(err)
	return id
}

func (suite *DirectMessageServiceTestSuite) pendingRequest() uint {
	requests, err := suite.service.Requests(suite.ctx, suite.alice.UserID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(requests, 1)
	return requests[0].RequestID
}

func (suite *DirectMessageServiceTestSuite) TestStart_FindsExistingConversation() {
	first := suite.start()

	again, err := suite.service.Start(suite.ctx, &service.StartConversationRequest{
		RequesterID: suite.alice.UserID,
		TargetID:    suite.bob.UserID,
	})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), first, again)
	assert.Equal(suite.T(), []events.Type{events.MessageRequested}, suite.fx.publisher.types())

	requests, err := suite.service.Requests(suite.ctx, suite.alice.UserID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(requests, 1)
	assert.Equal(suite.T(), suite.bob.UserID, requests[0].RequesterID)
	assert.Equal(suite.T(), suite.bob.FullName(), requests[0].RequesterName)
}

func (suite *DirectMessageServiceTestSuite) TestStart_Rejections() {
	_, err := suite.service.Start(suite.ctx, &service.StartConversationRequest{RequesterID: suite.alice.UserID, TargetID: suite.alice.UserID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrCannotMessageSelf)

	_, err = suite.service.Start(suite.ctx, &service.StartConversationRequest{RequesterID: suite.alice.UserID})
	assert.True(suite.T(), apperrors.IsValidation(err))

	_, err = suite.service.Start(suite.ctx, &service.StartConversationRequest{RequesterID: suite.alice.UserID, TargetID: 999})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *DirectMessageServiceTestSuite) TestSendAndRead() {
	conv := suite.start()

	_, err := suite.service.Send(suite.ctx, conv, &service.SendMessageRequest{SenderID: suite.bob.UserID, Content: "Hey, are you in CS201?"})
	suite.Require().NoError(err)
	id, err := suite.service.Send(suite.ctx, conv, &service.SendMessageRequest{SenderID: suite.alice.UserID, Content: "Yes"})
	suite.Require().NoError(err)

	messages, err := suite.service.Messages(suite.ctx, conv, suite.alice.UserID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)
	assert.Equal(suite.T(), id, messages[1].MessageID)
	assert.Equal(suite.T(), suite.bob.UserID, messages[0].SenderID)

	inbox, err := suite.service.Inbox(suite.ctx, suite.bob.UserID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(inbox, 1)
	suite.Require().NotNil(inbox[0].LastMessage)
	assert.Equal(suite.T(), "Yes", *inbox[0].LastMessage)
}

func (suite *DirectMessageServiceTestSuite) TestSend_Rejections() {
	conv := suite.start()
	outsider := suite.fx.user(suite.T())

	_, err := suite.service.Send(suite.ctx, conv, &service.SendMessageRequest{SenderID: outsider.UserID, Content: "hi"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotParticipant)

	_, err = suite.service.Send(suite.ctx, conv, &service.SendMessageRequest{SenderID: suite.bob.UserID, Content: "  "})
	assert.True(suite.T(), apperrors.IsValidation(err))

	_, err = suite.service.Send(suite.ctx, 999, &service.SendMessageRequest{SenderID: suite.bob.UserID, Content: "hi"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrConversationNotFound)

	_, err = suite.service.Messages(suite.ctx, conv, outsider.UserID, 10)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotParticipant)
}

func (suite *DirectMessageServiceTestSuite) TestRespond_Accept() {
	suite.start()
	requestID := suite.pendingRequest()

	status, err := suite.service.Respond(suite.ctx, requestID, "accept", suite.alice.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.RequestStatusAccepted, status)
	requests, err := suite.service.Requests(suite.ctx, suite.alice.UserID, 0)
	suite.Require().NoError(err)
	assert.Empty(suite.T(), requests)
	assert.Equal(suite.T(), []events.Type{events.MessageRequested, events.MessageRequestDone}, suite.fx.publisher.types())

	_, err = suite.service.Respond(suite.ctx, requestID, "reject", suite.alice.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestDecided)
}

func (suite *DirectMessageServiceTestSuite) TestRespond_RejectBlocksMessages() {
	conv := suite.start()
	requestID := suite.pendingRequest()

	status, err := suite.service.Respond(suite.ctx, requestID, "reject", suite.alice.UserID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.RequestStatusRejected, status)

	_, err = suite.service.Send(suite.ctx, conv, &service.SendMessageRequest{SenderID: suite.bob.UserID, Content: "please?"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrMessageBlocked)
}

func (suite *DirectMessageServiceTestSuite) TestRespond_Rejections() {
	suite.start()
	requestID := suite.pendingRequest()

	_, err := suite.service.Respond(suite.ctx, requestID, "ignore", suite.alice.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidAction)

	_, err = suite.service.Respond(suite.ctx, requestID, "accept", suite.bob.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotYourRequest)

	_, err = suite.service.Respond(suite.ctx, 999, "accept", suite.alice.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestNotFound)
}

func TestDirectMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectMessageServiceTestSuite))
}
