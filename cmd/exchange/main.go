package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/joker6198/stock-project/internal/app/engine"
	"github.com/joker6198/stock-project/internal/app/console"
	matchpublisherv1 "github.com/joker6198/stock-project/internal/domain/match-publisher/v1"
	quotepublisherv1 "github.com/joker6198/stock-project/internal/domain/quote-publisher/v1"
	"github.com/joker6198/stock-project/internal/usecase/exchange"
	matchpublisher "github.com/joker6198/stock-project/internal/usecase/match-publisher"
	quotepublisher "github.com/joker6198/stock-project/internal/usecase/quote-publisher"
	"github.com/joker6198/stock-project/pkg/config"
	"github.com/joker6198/stock-project/pkg/logger"
	"github.com/joker6198/stock-project/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg = &config.Config{}
	err = config.Load(cfg)
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewLogger(logger.WithLoggingLevel(logger.ParseLevel(cfg.LogLevel)))
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	defer log.Sync() //nolint:errcheck

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var matchPublisher matchpublisherv1.MatchPublisher
	if cfg.MatchPublisherConfig.Enabled {
		matchPublisher = matchpublisher.NewPublisher(cfg.MatchPublisherConfig, log)
	}

	var quotePublisher quotepublisherv1.QuotePublisher
	if cfg.QuotePublisherConfig.Enabled {
		rclient := redis.NewClient(log, &cfg.Redis)
		if err := rclient.Connect(ctx); err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "connect_redis",
			})
			return
		}
		quotePublisher = quotepublisher.NewPublisher(cfg.QuotePublisherConfig, rclient, log)
	}

	engine := app.NewEngineWithOptions(matchPublisher, quotePublisher, log, &app.Options{
		BufferSize: cfg.EventBuffer,
	})

	// Start the engine
	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	ex := exchange.NewExchange(exchange.WithEventSink(engine), exchange.WithLogger(log))
	session := console.NewConsole(ex, os.Stdin, os.Stdout, log, console.WithPrompt(cfg.Prompt))

	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	// Wait for the session to end or a shutdown signal
	select {
	case err := <-done:
		if err != nil {
			log.Error(err, logger.Field{
				Key:   "action",
				Value: "run_console",
			})
		}
	case sig := <-sigChan:
		log.Info("Received shutdown signal", logger.Field{
			Key:   "signal",
			Value: sig.String(),
		})
	}

	// Cancel the main context to signal shutdown
	cancel()

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Stop the engine gracefully, flushing queued events
	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	log.Info("Exchange shutdown complete")
}
