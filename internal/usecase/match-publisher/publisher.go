package matchpublisher

import (
	"context"

	matchpublisherv1 "github.com/joker6198/stock-project/internal/domain/match-publisher/v1"
	"github.com/joker6198/stock-project/pkg/config"
	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher represents a Kafka Publisher for publishing trade events.
type Publisher struct {
	kafkaWriter messageWriter
	logger      *logger.Logger
}

var _ matchpublisherv1.MatchPublisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for publishing trade events.
// Messages are keyed by symbol so the trades of one instrument stay ordered within a partition.
func NewPublisher(config config.MatchPublisherConfig, logger *logger.Logger) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  config.Brokers,
		Topic:    config.Topic,
		Balancer: &kafka.Hash{},
	})

	return newPublisher(kafkaWriter, logger)
}

func newPublisher(w messageWriter, logger *logger.Logger) *Publisher {
	return &Publisher{
		kafkaWriter: w,
		logger:      logger,
	}
}

// PublishTrade publishes a trade event to the Kafka topic.
func (p *Publisher) PublishTrade(ctx context.Context, event *matchpublisherv1.TradeEvent) error {
	value, err := matchpublisherv1.ToBytes(event)
	if err != nil {
		return errors.NewTracer("failed to encode trade event").
			Wrap(errors.NewErrorDetails(err.Error(), string(errors.EventEncodeError), "trade"))
	}

	msg := kafka.Message{
		Key:   []byte(event.Symbol),
		Value: value,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "error", Value: err.Error()},
			logger.Field{Key: "tradeID", Value: event.TradeID},
		)
		return errors.NewTracer("failed to publish trade event").
			Wrap(errors.NewErrorDetails(err.Error(), string(errors.KafkaPublishError), "trade"))
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
