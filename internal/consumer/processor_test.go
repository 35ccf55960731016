package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/thesaddamsyed/fitness-microservices/internal/events"
)

func envelopeMessage(t *testing.T, envelope events.ActivityCreated) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(envelope)
	require.NoError(t, err)

	return kafka.Message{
		Topic:     "activity_events",
		Partition: 0,
		Offset:    10,
		Time:      time.Now().UTC(),
		Key:       []byte(envelope.UserID),
		Value:     payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(events.TypeActivityCreated)},
		},
	}
}

func TestProcessorCommitsOnSuccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := envelopeMessage(t, events.ActivityCreated{
		ActivityID:   "abc",
		UserID:       "user-1",
		ActivityType: "RUNNING",
		DurationMin:  30,
	})

	reader := &stubReader{messages: []kafka.Message{msg}, after: contextCanceled}
	handler := &stubMessageHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 1, reader.commitCalls)
	require.Equal(t, "activity.created", handler.last.EventType)
	require.Equal(t, "abc", handler.last.Envelope.ActivityID)
	require.Equal(t, "user-1", handler.last.Envelope.UserID)
}

func TestProcessorSkipsCommitOnHandlerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := envelopeMessage(t, events.ActivityCreated{ActivityID: "def", UserID: "user-2"})

	reader := &stubReader{messages: []kafka.Message{msg}, after: contextCanceled}
	handler := &stubMessageHandler{err: errors.New("boom")}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 1, handler.calls)
	require.Equal(t, 0, reader.commitCalls, "uncommitted offsets trigger broker redelivery")
}

func TestProcessorCommitsMalformedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	malformed := kafka.Message{
		Topic: "activity_events",
		Value: []byte("{not json"),
	}
	missingIDs := kafka.Message{
		Topic: "activity_events",
		Value: []byte(`{"activity_type":"RUNNING"}`),
	}

	reader := &stubReader{messages: []kafka.Message{malformed, missingIDs}, after: contextCanceled}
	handler := &stubMessageHandler{}

	processor := NewProcessor(reader, handler, WithLogger(log.New(testWriter{t}, "", 0)))

	err := processor.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, 0, handler.calls, "malformed messages never reach the handler")
	require.Equal(t, 2, reader.commitCalls, "malformed messages are committed to avoid poison-pill loops")
}

type stubReader struct {
	messages    []kafka.Message
	index       int
	commitCalls int
	after       func() error
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.index >= len(r.messages) {
		if r.after != nil {
			return kafka.Message{}, r.after()
		}
		return kafka.Message{}, context.Canceled
	}
	msg := r.messages[r.index]
	r.index++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCalls++
	return nil
}

func (r *stubReader) Close() error { return nil }

func contextCanceled() error { return context.Canceled }

type stubMessageHandler struct {
	calls int
	err   error
	last  Message
}

func (h *stubMessageHandler) Handle(_ context.Context, msg Message) error {
	h.calls++
	h.last = msg
	return h.err
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
