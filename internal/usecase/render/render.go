package render

import (
	"fmt"
	"io"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
	"github.com/joker6198/stock-project/pkg/money"
)

// NotAvailable is printed in place of a missing price.
const NotAvailable = "N/A"

// Price formats m as "$X.XX", or N/A when m is nil.
func Price(m *money.Money) string {
	if m == nil {
		return NotAvailable
	}
	return m.String()
}

// Quote formats a quote as "{symbol} BID: {bid} ASK: {ask} LAST: {last}".
func Quote(q orderbookv1.Quote) string {
	return fmt.Sprintf("%s BID: %s ASK: %s LAST: %s", q.Symbol, Price(q.Bid), Price(q.Ask), Price(q.Last))
}

// Order formats one ledger line as "{id}. {symbol} {kind} {side} {price} {filled}/{qty} {status}".
func Order(o orderv1.OrderSnapshot) string {
	return fmt.Sprintf("%d. %s %s %s %s %d/%d %s",
		o.ID, o.Symbol, o.Kind, o.Side, Price(o.Price), o.Filled, o.Qty, o.Status)
}

// Orders writes one line per order.
func Orders(w io.Writer, orders []orderv1.OrderSnapshot) error {
	for _, o := range orders {
		if _, err := fmt.Fprintln(w, Order(o)); err != nil {
			return err
		}
	}
	return nil
}

// Error formats a user facing error line.
func Error(err error) string {
	return "ERROR: " + err.Error()
}
