package matchpublisherv1

import (
	"encoding/json"
	"time"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
	"github.com/joker6198/stock-project/pkg/money"
)

// TradeEvent is the payload published for every executed trade.
type TradeEvent struct {
	TradeID     string       `json:"tradeID"`
	Symbol      string       `json:"symbol"`
	BuyOrderID  int64        `json:"buyOrderID"`
	SellOrderID int64        `json:"sellOrderID"`
	TakerSide   orderv1.Side `json:"takerSide"`
	Price       money.Money  `json:"price"`
	Volume      int64        `json:"volume"`
	Timestamp   time.Time    `json:"timestamp"`
}

// CreateFromTrade creates a trade event from a trade and the incoming order that caused it.
func CreateFromTrade(trade orderbookv1.Trade, takerSide orderv1.Side) *TradeEvent {
	return &TradeEvent{
		TradeID:     trade.ID,
		Symbol:      trade.Symbol,
		BuyOrderID:  trade.BuyOrderID,
		SellOrderID: trade.SellOrderID,
		TakerSide:   takerSide,
		Price:       trade.Price,
		Volume:      trade.Qty,
		Timestamp:   trade.ExecutedAt,
	}
}

// ToBytes converts the trade event to a byte array.
func ToBytes(event *TradeEvent) ([]byte, error) {
	return json.Marshal(event)
}

// FromBytes converts a byte array to a trade event.
func FromBytes(data []byte) (*TradeEvent, error) {
	var event TradeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
