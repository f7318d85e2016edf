package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"alpineair/internal/bookings"
	"alpineair/internal/shared/config"
	"alpineair/pkg/logger"
)

// KafkaBookingProducer publishes booking lifecycle events to Kafka so
// downstream consumers (confirmation emails, ops dashboards) can react.
type KafkaBookingProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewKafkaBookingProducer creates a sync producer against the configured
// brokers. Idempotent writes with all-replica acks, so a retried send can
// never duplicate an event.
func NewKafkaBookingProducer(cfg config.KafkaConfig, log *logger.Logger) (*KafkaBookingProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("Kafka booking producer created", "brokers", cfg.Brokers, "topic", cfg.BookingsTopic)
	return &KafkaBookingProducer{
		producer: producer,
		topic:    cfg.BookingsTopic,
		logger:   log,
	}, nil
}

// PublishBookingEvent sends one booking event, keyed by flight ID so all
// events for a flight land on the same partition in order.
func (p *KafkaBookingProducer) PublishBookingEvent(ctx context.Context, event bookings.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.FlightID.String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("booking_id"), Value: []byte(event.BookingID.String())},
			{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event: %w", err)
	}

	p.logger.Info("booking event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"type", event.Type,
		"booking_id", event.BookingID.String(),
	)
	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaBookingProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}
