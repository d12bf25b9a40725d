package quotepublisherv1

import (
	"context"
)

// QuotePublisher defines the interface for publishing quote snapshots.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=quotepublisherv1_mock
type QuotePublisher interface {
	// PublishQuote stores and broadcasts the latest quote of one instrument.
	PublishQuote(ctx context.Context, event *QuoteEvent) error
	// Close releases the underlying transport.
	Close() error
}
