package util

import (
	"context"
)

type key string

const (
	sessionIDKey = key("session-id")
	commandKey   = key("command")
)

// WithSessionID returns a context carrying the console session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// WithCommand returns a context carrying the verb of the command being processed.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// WithRequestID returns a context with request id
// will generate a new one when id is empty
func WithRequestID(ctx context.Context, id string) context.Context {
	return ContextWithRequestID(ctx, id)
}

// GetSessionID returns the session id from context
// will return empty string if not present
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// GetCommand returns the command verb from context
// will return empty string if not present
func GetCommand(ctx context.Context) string {
	cmd, _ := ctx.Value(commandKey).(string)
	return cmd
}

// GetRequestID returns request id from context
func GetRequestID(ctx context.Context) string {
	return FromContext(ctx)
}
