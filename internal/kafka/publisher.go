package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/example/market-mock-api/internal/events"
)

// messageWriter is the slice of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	W      messageWriter
	Logger *zap.Logger
}

// NewPublisher returns an async writer-backed publisher. Write errors surface
// through the completion callback and are only logged.
func NewPublisher(brokers, topic string, logger *zap.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(splitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           200 * time.Millisecond,
		Async:                  true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				logger.Warn("kafka write failed", zap.Int("messages", len(msgs)), zap.Error(err))
			}
		},
	}
	return &Publisher{W: w, Logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, e events.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	// Keyed by entity so every event for one entity lands on one partition.
	msg := kafka.Message{Key: []byte(e.EntityID.String()), Value: b, Time: e.TS}
	if err := p.W.WriteMessages(ctx, msg); err != nil {
		p.Logger.Warn("publish event", zap.String("type", string(e.Type)), zap.Error(err))
		return err
	}
	p.Logger.Debug("event published", zap.String("type", string(e.Type)), zap.String("entity_id", e.EntityID.String()))
	return nil
}

func (p *Publisher) Close() error { return p.W.Close() }

func splitBrokers(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
