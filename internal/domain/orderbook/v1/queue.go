package orderbookv1

import (
	"slices"
	"sort"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	"github.com/joker6198/stock-project/pkg/money"
)

// Queue keeps the resting orders of one side ranked best first.
//
// Ranking key is (price, id): market orders rank ahead of every priced order
// (an infinite bid, a zero ask), better prices come next, and equal prices
// keep arrival order because ids increase with arrival.
type Queue struct {
	side   orderv1.Side
	orders []*orderv1.Order
}

// NewBidQueue creates a queue ranked by descending price.
func NewBidQueue() *Queue {
	return &Queue{side: orderv1.SideBuy}
}

// NewAskQueue creates a queue ranked by ascending price.
func NewAskQueue() *Queue {
	return &Queue{side: orderv1.SideSell}
}

// Side returns the side this queue ranks for.
func (q *Queue) Side() orderv1.Side {
	return q.side
}

// Len returns the number of resting orders.
func (q *Queue) Len() int {
	return len(q.orders)
}

// Push inserts o at its ranked position without resorting the queue.
func (q *Queue) Push(o *orderv1.Order) {
	idx := sort.Search(len(q.orders), func(i int) bool {
		return q.ranksBefore(o, q.orders[i])
	})
	q.orders = slices.Insert(q.orders, idx, o)
}

// Front returns the best ranked order or nil when empty.
func (q *Queue) Front() *orderv1.Order {
	if len(q.orders) == 0 {
		return nil
	}
	return q.orders[0]
}

// PopFront removes and returns the best ranked order.
func (q *Queue) PopFront() *orderv1.Order {
	if len(q.orders) == 0 {
		return nil
	}
	o := q.orders[0]
	q.orders[0] = nil
	q.orders = q.orders[1:]
	return o
}

// Remove deletes o from the queue. It reports whether o was present.
func (q *Queue) Remove(o *orderv1.Order) bool {
	idx := slices.Index(q.orders, o)
	if idx < 0 {
		return false
	}
	if idx == 0 {
		q.PopFront()
		return true
	}
	q.orders = slices.Delete(q.orders, idx, idx+1)
	return true
}

// Contains reports whether o rests in the queue.
func (q *Queue) Contains(o *orderv1.Order) bool {
	return slices.Contains(q.orders, o)
}

// Orders returns a copy of the queue in rank order.
func (q *Queue) Orders() []*orderv1.Order {
	return slices.Clone(q.orders)
}

// Volume returns the total remaining quantity resting in the queue.
func (q *Queue) Volume() int64 {
	var total int64
	for _, o := range q.orders {
		total += o.Remaining()
	}
	return total
}

// FirstPrice returns the price of the best ranked priced order, skipping market orders.
func (q *Queue) FirstPrice() (money.Money, bool) {
	for _, o := range q.orders {
		if price, ok := o.Price(); ok {
			return price, true
		}
	}
	return money.Money{}, false
}

// ranksBefore reports whether a ranks strictly ahead of b on this side.
func (q *Queue) ranksBefore(a, b *orderv1.Order) bool {
	if c := q.comparePrice(a, b); c != 0 {
		return c < 0
	}
	return a.ID() < b.ID()
}

// comparePrice returns -1 when a has the better price for this side, +1 when b has, 0 on a tie.
func (q *Queue) comparePrice(a, b *orderv1.Order) int {
	pa, aPriced := a.Price()
	pb, bPriced := b.Price()

	switch {
	case !aPriced && !bPriced:
		return 0
	case !aPriced:
		return -1
	case !bPriced:
		return 1
	case q.side == orderv1.SideBuy:
		return pb.Cmp(pa)
	default:
		return pa.Cmp(pb)
	}
}
