package orderbook

import (
	"sync"
	"time"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
	"github.com/joker6198/stock-project/pkg/money"
	"github.com/oklog/ulid/v2"
)

// Orderbook holds the resting orders of one instrument and executes crossing orders.
type Orderbook struct {
	mu             sync.RWMutex
	symbol         string
	bids           *orderbookv1.Queue
	asks           *orderbookv1.Queue
	lastTradePrice *money.Money
	now            func() time.Time
}

var _ orderbookv1.Orderbook = (*Orderbook)(nil)

// NewOrderbook creates an empty orderbook for symbol.
func NewOrderbook(symbol string) *Orderbook {
	return &Orderbook{
		symbol: symbol,
		bids:   orderbookv1.NewBidQueue(),
		asks:   orderbookv1.NewAskQueue(),
		now:    time.Now,
	}
}

// Symbol returns the instrument this book belongs to.
func (ob *Orderbook) Symbol() string {
	return ob.symbol
}

// Add ranks o into the bid or ask queue. It does not match.
func (ob *Orderbook) Add(o *orderv1.Order) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.queueFor(o).Push(o)
}

// Match executes trades while the best bid and best ask cross and returns them in execution order.
//
// Each step pairs the two front orders, fills min(remaining) on both and drops
// whichever became fully filled; a partially filled front stays in place for
// the next step. The pass ends when a side is empty or the fronts no longer cross.
func (ob *Orderbook) Match() []orderbookv1.Trade {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	var trades []orderbookv1.Trade

	for ob.bids.Len() > 0 && ob.asks.Len() > 0 {
		bestBuy := ob.bids.Front()
		bestSell := ob.asks.Front()

		price, ok := crossingPrice(bestBuy, bestSell)
		if !ok {
			break
		}

		qty := min(bestBuy.Remaining(), bestSell.Remaining())
		if qty <= 0 {
			break
		}

		bestBuy.Fill(qty)
		bestSell.Fill(qty)
		ob.lastTradePrice = &price

		trades = append(trades, orderbookv1.Trade{
			ID:          ulid.Make().String(),
			Symbol:      ob.symbol,
			BuyOrderID:  bestBuy.ID(),
			SellOrderID: bestSell.ID(),
			Price:       price,
			Qty:         qty,
			BidFilled:   bestBuy.IsFilled(),
			AskFilled:   bestSell.IsFilled(),
			ExecutedAt:  ob.now(),
		})

		if bestBuy.IsFilled() {
			ob.bids.PopFront()
		}
		if bestSell.IsFilled() {
			ob.asks.PopFront()
		}
	}

	return trades
}

// crossingPrice reports whether buy and sell can trade and at which price.
// The seller's price is used whenever the seller is priced, the buyer's otherwise.
// A market order crosses any priced order; two unpriced orders cannot establish a price.
func crossingPrice(buy, sell *orderv1.Order) (money.Money, bool) {
	buyPrice, buyPriced := buy.Price()
	sellPrice, sellPriced := sell.Price()

	switch {
	case buyPriced && sellPriced:
		if buyPrice.LessThan(sellPrice) {
			return money.Money{}, false
		}
		return sellPrice, true
	case sellPriced:
		return sellPrice, true
	case buyPriced:
		return buyPrice, true
	default:
		return money.Money{}, false
	}
}

// Remove takes o out of the book. It reports whether o was resting.
func (ob *Orderbook) Remove(o *orderv1.Order) bool {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.queueFor(o).Remove(o)
}

// Contains reports whether o is resting in the book.
func (ob *Orderbook) Contains(o *orderv1.Order) bool {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.queueFor(o).Contains(o)
}

// BestBid returns the price of the best priced bid.
func (ob *Orderbook) BestBid() (money.Money, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.bids.FirstPrice()
}

// BestAsk returns the price of the best priced ask.
func (ob *Orderbook) BestAsk() (money.Money, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.asks.FirstPrice()
}

// LastTradePrice returns the price of the most recent trade, if any.
func (ob *Orderbook) LastTradePrice() (money.Money, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	if ob.lastTradePrice == nil {
		return money.Money{}, false
	}
	return *ob.lastTradePrice, true
}

// Quote returns best bid, best ask and last trade in one consistent read.
func (ob *Orderbook) Quote() orderbookv1.Quote {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	q := orderbookv1.EmptyQuote(ob.symbol)
	if bid, ok := ob.bids.FirstPrice(); ok {
		q.Bid = &bid
	}
	if ask, ok := ob.asks.FirstPrice(); ok {
		q.Ask = &ask
	}
	if ob.lastTradePrice != nil {
		last := *ob.lastTradePrice
		q.Last = &last
	}
	return q
}

// Bids returns the bid queue, best first.
func (ob *Orderbook) Bids() []*orderv1.Order {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.bids.Orders()
}

// Asks returns the ask queue, best first.
func (ob *Orderbook) Asks() []*orderv1.Order {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.asks.Orders()
}

// BidVolume returns the remaining quantity resting on the bid side.
func (ob *Orderbook) BidVolume() int64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.bids.Volume()
}

// AskVolume returns the remaining quantity resting on the ask side.
func (ob *Orderbook) AskVolume() int64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.asks.Volume()
}

func (ob *Orderbook) queueFor(o *orderv1.Order) *orderbookv1.Queue {
	if o.IsBid() {
		return ob.bids
	}
	return ob.asks
}
