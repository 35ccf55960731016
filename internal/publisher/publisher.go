package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
	"github.com/thesaddamsyed/fitness-microservices/internal/events"
)

// ErrPublishFailed wraps broker delivery failures. The producer service
// reports these to the original caller as creation failures.
var ErrPublishFailed = errors.New("event publish failed")

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

var _ messageWriter = (*KafkaProducer)(nil)

// EventPublisher serializes activity envelopes and delivers them to the
// configured topic. It must only be invoked after the activity write has
// committed.
type EventPublisher struct {
	producer messageWriter
	topic    string
}

// NewEventPublisher constructs an EventPublisher.
func NewEventPublisher(producer messageWriter, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

// PublishActivityCreated emits one activity-created envelope. The partition
// key is the user id so a keyed broker can serialize per-user delivery.
func (p *EventPublisher) PublishActivityCreated(ctx context.Context, activity domain.Activity) error {
	payload, err := json.Marshal(events.FromActivity(activity))
	if err != nil {
		return fmt.Errorf("%w: encode envelope: %v", ErrPublishFailed, err)
	}

	msg := kafka.Message{
		Key:   []byte(activity.UserID),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.TypeActivityCreated)},
		},
	}

	if err := p.producer.WriteMessages(ctx, p.topic, msg); err != nil {
		failedCounter.Inc()
		return fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	publishedCounter.Inc()
	return nil
}
