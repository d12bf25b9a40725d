package orderv1

import (
	"fmt"
	"strings"

	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/money"
)

// PlaceRequest represents a request to place an order on the exchange.
type PlaceRequest struct {
	Side   Side         `json:"side"`
	Symbol string       `json:"symbol"`
	Kind   Kind         `json:"kind"`
	Price  *money.Money `json:"price,omitempty"`
	Qty    int64        `json:"qty"`
}

// NewLimitRequest builds a limit order request.
func NewLimitRequest(side Side, symbol string, price money.Money, qty int64) PlaceRequest {
	return PlaceRequest{Side: side, Symbol: symbol, Kind: KindLimit, Price: &price, Qty: qty}
}

// NewMarketRequest builds a market order request.
func NewMarketRequest(side Side, symbol string, qty int64) PlaceRequest {
	return PlaceRequest{Side: side, Symbol: symbol, Kind: KindMarket, Qty: qty}
}

// Validate checks the request contract: qty > 0, a limit order carries a
// positive price and a market order carries none.
func (r PlaceRequest) Validate() error {
	if r.Side != SideBuy && r.Side != SideSell {
		return errors.NewErrorDetailsWithObject(fmt.Sprintf("unknown side %q", r.Side), string(errors.InvalidSide), "side", r)
	}
	if strings.TrimSpace(r.Symbol) == "" {
		return errors.NewErrorDetailsWithObject("symbol must not be empty", string(errors.InvalidSymbol), "symbol", r)
	}

	switch r.Kind {
	case KindLimit:
		if r.Price == nil {
			return errors.NewErrorDetailsWithObject("limit order requires a price", string(errors.MissingPrice), "price", r)
		}
		if !r.Price.IsPositive() {
			return errors.NewErrorDetailsWithObject(
				fmt.Sprintf("limit price must be positive, got %s", r.Price), string(errors.InvalidPrice), "price", r)
		}
	case KindMarket:
		if r.Price != nil {
			return errors.NewErrorDetailsWithObject("market order must not carry a price", string(errors.UnexpectedPrice), "price", r)
		}
	default:
		return errors.NewErrorDetailsWithObject(fmt.Sprintf("unknown order type %q", r.Kind), string(errors.InvalidOrderKind), "kind", r)
	}

	if r.Qty <= 0 {
		return errors.NewErrorDetailsWithObject(
			fmt.Sprintf("quantity must be a positive integer, got %d", r.Qty), string(errors.InvalidQuantity), "qty", r)
	}
	return nil
}
