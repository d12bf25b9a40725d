package redis

import (
	"context"
)

// Client defines the interface for a Redis client.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=redis_mock
type Client interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error

	HSet(ctx context.Context, key string, values map[string]any) (int64, error)
	Publish(ctx context.Context, channel string, message any) (int64, error)
}
