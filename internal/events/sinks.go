package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rigledger/internal/domain"
	"github.com/GlebRadaev/rigledger/pkg/clients"
)

type NotificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

// NotificationSink stores events that carry a message as user notifications.
type NotificationSink struct {
	repo NotificationRepo
}

func NewNotificationSink(repo NotificationRepo) *NotificationSink {
	return &NotificationSink{repo: repo}
}

func (s *NotificationSink) Name() string { return "notifications" }

func (s *NotificationSink) Deliver(ctx context.Context, event Event) error {
	if event.Message == "" || event.User == "" {
		return nil
	}
	kind := event.Kind
	if kind == "" {
		kind = domain.NotificationInfo
	}
	return s.repo.Create(ctx, &domain.Notification{
		User:      event.User,
		Message:   event.Message,
		Kind:      kind,
		CreatedAt: event.OccurredAt,
	})
}

type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaSink(producer sarama.SyncProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic}
}

// NewKafkaProducer builds a sync producer that waits for all in-sync replicas.
func NewKafkaProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return producer, nil
}

func (s *KafkaSink) Name() string { return "kafka" }

func (s *KafkaSink) Deliver(_ context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic:     s.topic,
		Key:       sarama.StringEncoder(event.User),
		Value:     sarama.ByteEncoder(value),
		Timestamp: event.OccurredAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(event.Type)},
		},
	}
	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return err
	}
	zap.L().Debug("Event sent to kafka",
		zap.String("id", event.ID),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (s *KafkaSink) Close() error {
	return s.producer.Close()
}

type WebhookSink struct {
	client clients.HTTPClientI
	url    string
}

func NewWebhookSink(client clients.HTTPClientI, url string) *WebhookSink {
	return &WebhookSink{client: client, url: url}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Deliver(_ context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Event-Type", string(event.Type))
	headers.Set("X-Event-Time", event.OccurredAt.Format(time.RFC3339))
	status, _, err := s.client.Post(s.url, headers, body)
	if err != nil {
		return err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook responded with status %d", status)
	}
	return nil
}
