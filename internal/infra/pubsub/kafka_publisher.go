package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic.
// Messages are keyed by aggregate id so one order's events land on one partition.
type kafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher backed by a synchronous kafka.Writer.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}

	return newKafkaPublisher(writer, topic, logger)
}

func newKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{writer: writer, topic: topic, logger: logger}
}

// Publish writes one message and waits for the broker acknowledgement.
func (p *kafkaPublisher) Publish(ctx context.Context, event *entity.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kafka.Header, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Key:     []byte(event.AggregateID.String()),
		Value:   data,
		Headers: headers,
		Time:    event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to write event to topic %s", p.topic)
	}

	p.logger.Info("[Kafka] Event published",
		slog.String("topic", p.topic),
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

// Close flushes pending writes and closes broker connections.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
