package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.DomainEvent {
	user := &entity.User{Email: "ada@bakery.test", Name: "Ada"}
	event := entity.NewDomainEvent(entity.EventOrderPlaced, uuid.New(), user, map[string]any{"total": "27000"})
	event.RequestID = "req-1"

	return event
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config is noop", cfg: nil},
		{name: "noop provider", cfg: &config.PubSubConfig{Provider: "noop"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: "kafka", Topic: "events"}, wantErr: "at least one broker"},
		{name: "kafka without topic", cfg: &config.PubSubConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}}, wantErr: "topic is required"},
		{name: "kafka", cfg: &config.PubSubConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}, Topic: "events"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(ctx, tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher_Publish(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := sampleEvent()

	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, string(entity.EventOrderPlaced), received.Message.Attributes[AttrEventType])

	decoded, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "ada@bakery.test", decoded.Recipient)
	assert.Equal(t, "27000", decoded.Data["total"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).Publish(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status: 500")
}

func TestPushMessage_DecodeEventRejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%not-base64"
	_, err := msg.DecodeEvent()
	assert.Error(t, err)

	msg.Message.Data = "e30=" // {}
	_, err = msg.DecodeEvent()
	assert.Error(t, err)
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByAggregate(t *testing.T) {
	writer := &fakeWriter{}
	publisher := newKafkaPublisher(writer, "storefront.events", discardLogger())
	event := sampleEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.AggregateID.String(), string(msg.Key))

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, string(entity.EventOrderPlaced), headers[AttrEventType])
	assert.Equal(t, "req-1", headers[AttrRequestID])

	var decoded entity.DomainEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	publisher := newKafkaPublisher(writer, "storefront.events", discardLogger())

	err := publisher.Publish(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storefront.events")
}
