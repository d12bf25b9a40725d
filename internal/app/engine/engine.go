package engine

import (
	"context"
	"sync"
	"time"

	exchangev1 "github.com/joker6198/stock-project/internal/domain/exchange/v1"
	matchpublisherv1 "github.com/joker6198/stock-project/internal/domain/match-publisher/v1"
	quotepublisherv1 "github.com/joker6198/stock-project/internal/domain/quote-publisher/v1"
	"github.com/joker6198/stock-project/pkg/logger"
)

// event is a placement queued together with the values of the request context.
type event struct {
	ctx       context.Context
	placement *exchangev1.Placement
}

// Engine pumps placement outcomes to the trade and quote publishers off the
// placement path. Either publisher may be nil.
type Engine struct {
	// Core components
	matchPublisher matchpublisherv1.MatchPublisher
	quotePublisher quotepublisherv1.QuotePublisher
	logger         *logger.Logger
	now            func() time.Time

	events   chan event
	stopped  chan struct{}
	stopOnce sync.Once

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Trade statistics
	statsMu         sync.RWMutex
	totalTrades     int64
	publishFailures int64
}

var _ exchangev1.EventSink = (*Engine)(nil)

// NewEngine creates a new instance of Engine with the provided publishers.
func NewEngine(
	matchPublisher matchpublisherv1.MatchPublisher,
	quotePublisher quotepublisherv1.QuotePublisher,
	logger *logger.Logger,
) *Engine {
	return NewEngineWithOptions(matchPublisher, quotePublisher, logger, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options
func NewEngineWithOptions(
	matchPublisher matchpublisherv1.MatchPublisher,
	quotePublisher quotepublisherv1.QuotePublisher,
	logger *logger.Logger,
	options *Options,
) *Engine {
	bufferSize := options.BufferSize
	if bufferSize < 0 {
		bufferSize = 0
	}

	return &Engine{
		matchPublisher: matchPublisher,
		quotePublisher: quotePublisher,
		logger:         logger,
		now:            time.Now,
		events:         make(chan event, bufferSize),
		stopped:        make(chan struct{}),
	}
}

// Start launches the publishing routine.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runPublisher()

	e.logger.Info("Engine started",
		logger.Field{Key: "matchPublisher", Value: e.matchPublisher != nil},
		logger.Field{Key: "quotePublisher", Value: e.quotePublisher != nil},
	)

	return nil
}

// Stop flushes queued placements, waits for the publishing routine and closes the publishers.
func (e *Engine) Stop(ctx context.Context) error {
	e.stopOnce.Do(func() { close(e.stopped) })
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}

	e.closePublishers()
	e.logger.Info("Engine stopped gracefully",
		logger.Field{Key: "totalTrades", Value: e.GetTotalTrades()},
		logger.Field{Key: "publishFailures", Value: e.GetPublishFailures()},
	)
	return nil
}

// OnPlacement queues a placement for publishing. It blocks while the queue is
// full and drops the placement once the engine is stopping.
func (e *Engine) OnPlacement(ctx context.Context, placement *exchangev1.Placement) {
	ev := event{ctx: context.WithoutCancel(ctx), placement: placement}

	select {
	case <-e.stopped:
		e.logger.WarnContext(ctx, "Engine stopped, placement not published",
			logger.Field{Key: "orderID", Value: placement.Order.ID},
		)
		return
	default:
	}

	select {
	case e.events <- ev:
	case <-e.stopped:
		e.logger.WarnContext(ctx, "Engine stopped, placement not published",
			logger.Field{Key: "orderID", Value: placement.Order.ID},
		)
	}
}

// runPublisher drains the event queue until the engine is stopped, then flushes what is left.
func (e *Engine) runPublisher() {
	defer e.wg.Done()

	e.logger.Info("Starting publisher")

	for {
		select {
		case <-e.ctx.Done():
			e.flush()
			e.logger.Info("Publisher shutting down")
			return
		case ev := <-e.events:
			e.process(ev)
		}
	}
}

func (e *Engine) flush() {
	for {
		select {
		case ev := <-e.events:
			e.process(ev)
		default:
			return
		}
	}
}

// process logs and publishes a single placement.
func (e *Engine) process(ev event) {
	p := ev.placement

	if p.HasTrades() {
		e.logTrades(ev.ctx, p)
	}

	if e.matchPublisher != nil {
		for _, trade := range p.Trades {
			tradeEvent := matchpublisherv1.CreateFromTrade(trade, p.Order.Side)
			if err := e.matchPublisher.PublishTrade(ev.ctx, tradeEvent); err != nil {
				e.recordFailure(ev.ctx, err, "publish_trade")
			}
		}
	}

	if e.quotePublisher != nil {
		quoteEvent := quotepublisherv1.CreateFromQuote(p.Quote, e.now())
		if err := e.quotePublisher.PublishQuote(ev.ctx, quoteEvent); err != nil {
			e.recordFailure(ev.ctx, err, "publish_quote")
		}
	}
}

// logTrades logs the trades and updates statistics
func (e *Engine) logTrades(ctx context.Context, p *exchangev1.Placement) {
	e.statsMu.Lock()
	e.totalTrades += int64(len(p.Trades))
	currentTotal := e.totalTrades
	e.statsMu.Unlock()

	e.logger.InfoContext(ctx, "Trades executed",
		logger.Field{Key: "orderID", Value: p.Order.ID},
		logger.Field{Key: "tradeCount", Value: len(p.Trades)},
		logger.Field{Key: "totalTrades", Value: currentTotal},
	)

	for i, trade := range p.Trades {
		e.logger.DebugContext(ctx, "Trade executed",
			logger.Field{Key: "tradeIndex", Value: i + 1},
			logger.Field{Key: "tradeID", Value: trade.ID},
			logger.Field{Key: "symbol", Value: trade.Symbol},
			logger.Field{Key: "price", Value: trade.Price.String()},
			logger.Field{Key: "size", Value: trade.Qty},
			logger.Field{Key: "buyOrderID", Value: trade.BuyOrderID},
			logger.Field{Key: "sellOrderID", Value: trade.SellOrderID},
			logger.Field{Key: "bidIsFilled", Value: trade.BidFilled},
			logger.Field{Key: "askIsFilled", Value: trade.AskFilled},
		)
	}
}

func (e *Engine) recordFailure(ctx context.Context, err error, action string) {
	e.statsMu.Lock()
	e.publishFailures++
	e.statsMu.Unlock()

	e.logger.ErrorContext(ctx, err, logger.Field{Key: "action", Value: action})
}

func (e *Engine) closePublishers() {
	if e.matchPublisher != nil {
		if err := e.matchPublisher.Close(); err != nil {
			e.logger.Error(err, logger.Field{Key: "action", Value: "close_match_publisher"})
		}
	}
	if e.quotePublisher != nil {
		if err := e.quotePublisher.Close(); err != nil {
			e.logger.Error(err, logger.Field{Key: "action", Value: "close_quote_publisher"})
		}
	}
}

// GetTotalTrades returns the total number of trades processed
func (e *Engine) GetTotalTrades() int64 {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()
	return e.totalTrades
}

// GetPublishFailures returns the number of failed publish attempts
func (e *Engine) GetPublishFailures() int64 {
	e.statsMu.RLock()
	defer e.statsMu.RUnlock()
	return e.publishFailures
}
