package exchangev1

import (
	"context"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
)

// Exchange is the entry point for order placement and market data queries.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=exchangev1_mock
type Exchange interface {
	// PlaceOrder validates, ranks and matches a new order. On a validation
	// error nothing is recorded.
	PlaceOrder(ctx context.Context, req orderv1.PlaceRequest) (orderv1.OrderSnapshot, error)
	// Quote returns the top of book of symbol. Unknown symbols yield an empty quote.
	Quote(symbol string) orderbookv1.Quote
	// ViewOrders returns every order ever placed, in placement order.
	ViewOrders() []orderv1.OrderSnapshot
}

// EventSink receives the outcome of each placement once the book has settled.
// Implementations must not block the caller for long.
type EventSink interface {
	OnPlacement(ctx context.Context, placement *Placement)
}
