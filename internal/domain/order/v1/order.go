package orderv1

import (
	"fmt"

	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/money"
)

// Side represents the direction of an order.
type Side string

const (
	// SideBuy represents a bid.
	SideBuy Side = "BUY"
	// SideSell represents an ask.
	SideSell Side = "SELL"
)

// Kind represents the type of order.
type Kind string

const (
	// KindLimit represents a limit order. It always carries a price.
	KindLimit Kind = "LMT"
	// KindMarket represents a market order. It never carries a price and never rests.
	KindMarket Kind = "MKT"
)

// Status is derived from the fill progress of an order and never stored.
type Status string

const (
	// StatusPending means nothing has been filled yet.
	StatusPending Status = "PENDING"
	// StatusPartial means some but not all of the quantity has been filled.
	StatusPartial Status = "PARTIAL"
	// StatusFilled means the whole quantity has been filled.
	StatusFilled Status = "FILLED"
)

// Order represents a single order. Identity fields are fixed at construction;
// the filled quantity only grows, through Fill.
//
// The same *Order is referenced by the exchange ledger and by the order book
// queue it rests in, so both observe the same fill progress.
type Order struct {
	id     int64
	symbol string
	side   Side
	kind   Kind
	price  *money.Money
	qty    int64
	filled int64
}

// NewOrder creates a new order with the given id from a validated request.
func NewOrder(id int64, req PlaceRequest) *Order {
	o := &Order{
		id:     id,
		symbol: req.Symbol,
		side:   req.Side,
		kind:   req.Kind,
		qty:    req.Qty,
	}
	if req.Kind == KindLimit && req.Price != nil {
		p := *req.Price
		o.price = &p
	}
	return o
}

// ID returns the exchange assigned id. Ids increase with arrival order.
func (o *Order) ID() int64 { return o.id }

// Symbol returns the instrument identifier.
func (o *Order) Symbol() string { return o.symbol }

// Side returns BUY or SELL.
func (o *Order) Side() Side { return o.side }

// Kind returns LMT or MKT.
func (o *Order) Kind() Kind { return o.kind }

// Qty returns the requested quantity.
func (o *Order) Qty() int64 { return o.qty }

// Filled returns the quantity executed so far.
func (o *Order) Filled() int64 { return o.filled }

// Remaining returns the quantity still open.
func (o *Order) Remaining() int64 { return o.qty - o.filled }

// Price returns the limit price and whether one is present. Market orders have none.
func (o *Order) Price() (money.Money, bool) {
	if o.price == nil {
		return money.Money{}, false
	}
	return *o.price, true
}

// IsBid checks if the order is a bid (buy) order.
func (o *Order) IsBid() bool {
	return o.side == SideBuy
}

// IsAsk checks if the order is an ask (sell) order.
func (o *Order) IsAsk() bool {
	return o.side == SideSell
}

// IsMarket checks if the order is a market order.
func (o *Order) IsMarket() bool {
	return o.kind == KindMarket
}

// IsFilled checks if the whole quantity has been executed.
func (o *Order) IsFilled() bool {
	return o.filled == o.qty
}

// Fill records an execution of qty units. Overfilling is a defect and panics.
func (o *Order) Fill(qty int64) {
	if qty <= 0 || o.filled+qty > o.qty {
		panic(errors.NewInvariantViolation(
			fmt.Sprintf("order %d: fill of %d with %d/%d already filled", o.id, qty, o.filled, o.qty), "filled"))
	}
	o.filled += qty
}

// Status derives the order status from its fill progress.
func (o *Order) Status() Status {
	switch {
	case o.filled < 0 || o.filled > o.qty:
		panic(errors.NewInvariantViolation(
			fmt.Sprintf("order %d: filled %d outside [0, %d]", o.id, o.filled, o.qty), "filled"))
	case o.filled == 0:
		return StatusPending
	case o.filled < o.qty:
		return StatusPartial
	default:
		return StatusFilled
	}
}

// Snapshot copies the order into a value that later fills cannot change.
func (o *Order) Snapshot() OrderSnapshot {
	s := OrderSnapshot{
		ID:     o.id,
		Symbol: o.symbol,
		Side:   o.side,
		Kind:   o.kind,
		Qty:    o.qty,
		Filled: o.filled,
		Status: o.Status(),
	}
	if o.price != nil {
		p := *o.price
		s.Price = &p
	}
	return s
}

// OrderSnapshot is a read-only copy of an order as listed by VIEW ORDERS.
type OrderSnapshot struct {
	ID     int64        `json:"id"`
	Symbol string       `json:"symbol"`
	Side   Side         `json:"side"`
	Kind   Kind         `json:"kind"`
	Price  *money.Money `json:"price,omitempty"`
	Qty    int64        `json:"qty"`
	Filled int64        `json:"filled"`
	Status Status       `json:"status"`
}
