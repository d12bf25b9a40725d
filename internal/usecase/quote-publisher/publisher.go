package quotepublisher

import (
	"context"

	quotepublisherv1 "github.com/joker6198/stock-project/internal/domain/quote-publisher/v1"
	"github.com/joker6198/stock-project/pkg/config"
	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/logger"
	"github.com/joker6198/stock-project/pkg/redis"
)

// Publisher keeps the latest quote of each symbol in a Redis hash and
// broadcasts it on a pub/sub channel.
type Publisher struct {
	client    redis.Client
	channel   string
	keyPrefix string
	logger    *logger.Logger
}

var _ quotepublisherv1.QuotePublisher = (*Publisher)(nil)

// NewPublisher creates a quote publisher on top of a connected Redis client.
func NewPublisher(config config.QuotePublisherConfig, client redis.Client, logger *logger.Logger) *Publisher {
	return &Publisher{
		client:    client,
		channel:   config.Channel,
		keyPrefix: config.KeyPrefix,
		logger:    logger,
	}
}

// PublishQuote stores the quote under "{prefix}{symbol}" and publishes it as JSON.
func (p *Publisher) PublishQuote(ctx context.Context, event *quotepublisherv1.QuoteEvent) error {
	if _, err := p.client.HSet(ctx, p.key(event.Symbol), quotepublisherv1.ToHash(event)); err != nil {
		return err
	}

	payload, err := quotepublisherv1.ToBytes(event)
	if err != nil {
		return errors.NewTracer("failed to encode quote event").
			Wrap(errors.NewErrorDetails(err.Error(), string(errors.EventEncodeError), "quote"))
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload)
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "quote published",
		logger.Field{Key: "symbol", Value: event.Symbol},
		logger.Field{Key: "receivers", Value: receivers},
	)
	return nil
}

// Close disconnects the Redis client.
func (p *Publisher) Close() error {
	return p.client.Disconnect(context.Background())
}

func (p *Publisher) key(symbol string) string {
	return p.keyPrefix + symbol
}
