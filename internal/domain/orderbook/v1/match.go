package orderbookv1

import (
	"time"

	"github.com/joker6198/stock-project/pkg/money"
)

// Trade represents one execution between the best bid and the best ask.
type Trade struct {
	ID          string      `json:"id"`
	Symbol      string      `json:"symbol"`
	BuyOrderID  int64       `json:"buyOrderID"`
	SellOrderID int64       `json:"sellOrderID"`
	Price       money.Money `json:"price"`
	Qty         int64       `json:"qty"`
	BidFilled   bool        `json:"bidFilled"`
	AskFilled   bool        `json:"askFilled"`
	ExecutedAt  time.Time   `json:"executedAt"`
}

// Quote is the top of book and last trade of an instrument. Nil means unavailable.
type Quote struct {
	Symbol string       `json:"symbol"`
	Bid    *money.Money `json:"bid,omitempty"`
	Ask    *money.Money `json:"ask,omitempty"`
	Last   *money.Money `json:"last,omitempty"`
}

// EmptyQuote is the quote of an instrument that has never seen an order.
func EmptyQuote(symbol string) Quote {
	return Quote{Symbol: symbol}
}
