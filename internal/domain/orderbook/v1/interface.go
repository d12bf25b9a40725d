package orderbookv1

import (
	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	"github.com/joker6198/stock-project/pkg/money"
)

// Orderbook defines the interface for the order book of a single instrument.
type Orderbook interface {
	Symbol() string
	Add(o *orderv1.Order)
	Match() []Trade
	Remove(o *orderv1.Order) bool
	Contains(o *orderv1.Order) bool

	BestBid() (money.Money, bool)
	BestAsk() (money.Money, bool)
	LastTradePrice() (money.Money, bool)
	Quote() Quote

	Bids() []*orderv1.Order
	Asks() []*orderv1.Order
	BidVolume() int64
	AskVolume() int64
}
