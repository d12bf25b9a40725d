package exchangev1

import (
	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
)

// Placement is the settled result of one PlaceOrder call.
type Placement struct {
	Order  orderv1.OrderSnapshot
	Trades []orderbookv1.Trade
	Quote  orderbookv1.Quote
	// Evicted is the unfilled market quantity withdrawn from the book.
	Evicted int64
}

// HasTrades reports whether the placement executed anything.
func (p *Placement) HasTrades() bool {
	return len(p.Trades) > 0
}
