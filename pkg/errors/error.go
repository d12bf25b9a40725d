package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"

	// UnknownCommand represents a command verb the console does not understand.
	UnknownCommand ErrorCode = "unknown_command"
	// MalformedCommand represents a known command with the wrong shape.
	MalformedCommand ErrorCode = "malformed_command"

	// MissingPrice represents a limit order submitted without a price.
	MissingPrice ErrorCode = "missing_price"
	// UnexpectedPrice represents a market order submitted with a price.
	UnexpectedPrice ErrorCode = "unexpected_price"
	// InvalidPrice represents a limit price that is not strictly positive or not a number.
	InvalidPrice ErrorCode = "invalid_price"
	// InvalidQuantity represents a quantity that is not a strictly positive integer.
	InvalidQuantity ErrorCode = "invalid_quantity"
	// InvalidSide represents a side other than BUY or SELL.
	InvalidSide ErrorCode = "invalid_side"
	// InvalidOrderKind represents an order kind other than LMT or MKT.
	InvalidOrderKind ErrorCode = "invalid_order_kind"
	// InvalidSymbol represents an empty instrument symbol.
	InvalidSymbol ErrorCode = "invalid_symbol"

	// InvariantViolation represents a broken order book invariant. It signals a defect, never user error.
	InvariantViolation ErrorCode = "invariant_violation"

	// KafkaPublishError represents an error when writing a message to Kafka.
	KafkaPublishError ErrorCode = "kafka_publish_error"
	// EventEncodeError represents an error when serializing an outbound event.
	EventEncodeError ErrorCode = "event_encode_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisHSetError represents an error when setting fields in a hash in Redis.
	RedisHSetError ErrorCode = "redis_hset_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"
)
