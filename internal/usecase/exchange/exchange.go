package exchange

import (
	"context"
	"sync"

	exchangev1 "github.com/joker6198/stock-project/internal/domain/exchange/v1"
	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
	"github.com/joker6198/stock-project/internal/usecase/orderbook"
	"github.com/joker6198/stock-project/pkg/logger"
)

// Exchange routes orders to one orderbook per symbol and keeps the ledger of
// every order ever placed.
type Exchange struct {
	mu     sync.RWMutex
	nextID int64
	ledger []*orderv1.Order
	books  map[string]*orderbook.Orderbook

	sink   exchangev1.EventSink
	logger *logger.Logger
}

var _ exchangev1.Exchange = (*Exchange)(nil)

// Option configures an Exchange.
type Option func(*Exchange)

// WithEventSink sets the receiver of placement outcomes.
func WithEventSink(sink exchangev1.EventSink) Option {
	return func(e *Exchange) {
		e.sink = sink
	}
}

// WithLogger sets the logger used for placement logs.
func WithLogger(l *logger.Logger) Option {
	return func(e *Exchange) {
		e.logger = l
	}
}

// NewExchange creates an exchange with no books and an empty ledger.
func NewExchange(opts ...Option) *Exchange {
	e := &Exchange{
		nextID: 1,
		books:  make(map[string]*orderbook.Orderbook),
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlaceOrder records a new order, ranks it into its book and runs a matching pass.
// A market order that is not completely filled is withdrawn from the book before
// returning; its ledger entry keeps whatever it managed to fill.
func (e *Exchange) PlaceOrder(ctx context.Context, req orderv1.PlaceRequest) (orderv1.OrderSnapshot, error) {
	if err := req.Validate(); err != nil {
		e.logger.WarnContext(ctx, "order rejected",
			logger.NewField("error", err.Error()),
			logger.NewField("symbol", req.Symbol),
		)
		return orderv1.OrderSnapshot{}, err
	}

	e.mu.Lock()

	o := orderv1.NewOrder(e.nextID, req)
	e.nextID++
	e.ledger = append(e.ledger, o)

	book := e.bookFor(o.Symbol())
	book.Add(o)
	trades := book.Match()

	var evicted int64
	if o.IsMarket() && !o.IsFilled() {
		book.Remove(o)
		evicted = o.Remaining()
	}

	placement := &exchangev1.Placement{
		Order:   o.Snapshot(),
		Trades:  trades,
		Quote:   book.Quote(),
		Evicted: evicted,
	}

	// the sink may block; readers must not wait on it
	e.mu.Unlock()

	snapshot := placement.Order
	if evicted > 0 {
		e.logger.InfoContext(ctx, "market order remainder cancelled",
			logger.NewField("order_id", snapshot.ID),
			logger.NewField("symbol", snapshot.Symbol),
			logger.NewField("filled", snapshot.Filled),
			logger.NewField("cancelled", evicted),
		)
	}
	e.logger.DebugContext(ctx, "order placed",
		logger.NewField("order_id", snapshot.ID),
		logger.NewField("symbol", snapshot.Symbol),
		logger.NewField("status", snapshot.Status),
		logger.NewField("trades", len(trades)),
	)

	if e.sink != nil {
		e.sink.OnPlacement(ctx, placement)
	}

	return snapshot, nil
}

// Quote returns the best bid, best ask and last trade price of symbol.
// It never creates a book.
func (e *Exchange) Quote(symbol string) orderbookv1.Quote {
	e.mu.RLock()
	defer e.mu.RUnlock()

	book, ok := e.books[symbol]
	if !ok {
		return orderbookv1.EmptyQuote(symbol)
	}
	return book.Quote()
}

// ViewOrders lists the ledger in placement order.
func (e *Exchange) ViewOrders() []orderv1.OrderSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshots := make([]orderv1.OrderSnapshot, 0, len(e.ledger))
	for _, o := range e.ledger {
		snapshots = append(snapshots, o.Snapshot())
	}
	return snapshots
}

// Book returns the orderbook of symbol if one has been created.
func (e *Exchange) Book(symbol string) (orderbookv1.Orderbook, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	book, ok := e.books[symbol]
	if !ok {
		return nil, false
	}
	return book, true
}

func (e *Exchange) bookFor(symbol string) *orderbook.Orderbook {
	book, ok := e.books[symbol]
	if !ok {
		book = orderbook.NewOrderbook(symbol)
		e.books[symbol] = book
	}
	return book
}
