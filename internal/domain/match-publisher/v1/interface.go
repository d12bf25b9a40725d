package matchpublisherv1

import (
	"context"
)

// MatchPublisher defines the interface for publishing trade events.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=matchpublisherv1_mock
type MatchPublisher interface {
	// PublishTrade publishes one trade event.
	PublishTrade(ctx context.Context, event *TradeEvent) error
	// Close flushes and releases the underlying transport.
	Close() error
}
