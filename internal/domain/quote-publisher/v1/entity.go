package quotepublisherv1

import (
	"encoding/json"
	"time"

	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
	"github.com/joker6198/stock-project/pkg/money"
)

// QuoteEvent is the snapshot published after every placement on an instrument.
type QuoteEvent struct {
	Symbol    string       `json:"symbol"`
	Bid       *money.Money `json:"bid"`
	Ask       *money.Money `json:"ask"`
	Last      *money.Money `json:"last"`
	Timestamp time.Time    `json:"timestamp"`
}

// CreateFromQuote creates a quote event from a quote taken at the given time.
func CreateFromQuote(quote orderbookv1.Quote, at time.Time) *QuoteEvent {
	return &QuoteEvent{
		Symbol:    quote.Symbol,
		Bid:       quote.Bid,
		Ask:       quote.Ask,
		Last:      quote.Last,
		Timestamp: at,
	}
}

// ToBytes converts the quote event to a byte array.
func ToBytes(event *QuoteEvent) ([]byte, error) {
	return json.Marshal(event)
}

// FromBytes converts a byte array to a quote event.
func FromBytes(data []byte) (*QuoteEvent, error) {
	var event QuoteEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ToHash flattens the event into hash fields. Unavailable prices are stored as empty strings.
func ToHash(event *QuoteEvent) map[string]any {
	return map[string]any{
		"symbol":    event.Symbol,
		"bid":       plainOrEmpty(event.Bid),
		"ask":       plainOrEmpty(event.Ask),
		"last":      plainOrEmpty(event.Last),
		"timestamp": event.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func plainOrEmpty(m *money.Money) string {
	if m == nil {
		return ""
	}
	return m.Plain()
}
