package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisherPublish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	publisher := NewKafkaPublisherWithProducer(producer, "studybuddy.events")
	publisher.now = func() time.Time { return fixed }

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "studybuddy.events" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "group:7" {
			return errors.New("unexpected key " + string(key))
		}
		value, _ := msg.Value.Encode()
		var decoded Event
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if decoded.Type != MemberAdded || !decoded.OccurredAt.Equal(fixed) {
			return errors.New("unexpected payload")
		}
		return nil
	})

	err := publisher.Publish(context.Background(), Event{
		Type:    MemberAdded,
		Key:     "group:7",
		ActorID: 3,
		Data:    map[string]interface{}{"group_id": 7, "user_id": 3},
	})
	require.NoError(t, err)
}

func TestKafkaPublisherPublishError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewKafkaPublisherWithProducer(producer, "studybuddy.events")
	err := publisher.Publish(context.Background(), Event{Type: QuizAttempted, Key: "quiz:1"})

	assert.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), "quiz.attempted")
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{Type: GroupCreated}))
	assert.NoError(t, p.Close())
}
