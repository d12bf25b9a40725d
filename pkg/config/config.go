package config

import (
	stderrors "errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/joker6198/stock-project/pkg/redis"
)

// Load loads the configuration from environment variables and an optional .env file.
func Load[T any](cfg T, files ...string) error {
	if err := godotenv.Load(files...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return nil
}

// Config holds the configuration for the exchange console.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Prompt      string `env:"PROMPT" envDefault:""`
	EventBuffer int    `env:"EVENT_BUFFER" envDefault:"1024"`

	MatchPublisherConfig `envPrefix:"MATCH_PUBLISHER_"` // Kafka trade publisher
	QuotePublisherConfig `envPrefix:"QUOTE_PUBLISHER_"` // Redis quote publisher
	Redis                redis.Config                   `envPrefix:"REDIS_"`
}

// MatchPublisherConfig holds the configuration for publishing trades to Kafka.
type MatchPublisherConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"exchange.trades"`
}

// QuotePublisherConfig holds the configuration for publishing quotes to Redis.
type QuotePublisherConfig struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Channel   string `env:"CHANNEL" envDefault:"exchange.quotes"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"quote:"`
}
