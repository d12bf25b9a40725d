// Package command turns console lines into exchange requests.
//
// Grammar:
//
//	BUY|SELL <SYMBOL> LMT <PRICE> <QTY>
//	BUY|SELL <SYMBOL> MKT <QTY>
//	QUOTE <SYMBOL>
//	VIEW ORDERS
//	QUIT
//
// Keywords are case sensitive. Symbols are taken verbatim.
package command

import (
	"fmt"
	"strconv"
	"strings"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/money"
)

// Type identifies a parsed command.
type Type string

const (
	TypePlace      Type = "PLACE"
	TypeQuote      Type = "QUOTE"
	TypeViewOrders Type = "VIEW_ORDERS"
	TypeQuit       Type = "QUIT"
)

const (
	verbQuote = "QUOTE"
	verbView  = "VIEW"
	verbQuit  = "QUIT"
	argOrders = "ORDERS"
)

// Command is one parsed console line.
type Command struct {
	Type Type
	// Place is set for TypePlace.
	Place orderv1.PlaceRequest
	// Symbol is set for TypeQuote.
	Symbol string
}

// Parse parses a single line. A blank line yields a nil command and no error.
func Parse(line string) (*Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, nil
	}

	switch verb := parts[0]; verb {
	case string(orderv1.SideBuy), string(orderv1.SideSell):
		return parsePlace(orderv1.Side(verb), parts[1:])
	case verbQuote:
		if len(parts) != 2 {
			return nil, malformed("usage: QUOTE <SYMBOL>")
		}
		return &Command{Type: TypeQuote, Symbol: parts[1]}, nil
	case verbView:
		if len(parts) != 2 || parts[1] != argOrders {
			return nil, malformed("usage: VIEW ORDERS")
		}
		return &Command{Type: TypeViewOrders}, nil
	case verbQuit:
		if len(parts) != 1 {
			return nil, malformed("usage: QUIT")
		}
		return &Command{Type: TypeQuit}, nil
	default:
		return nil, errors.NewErrorDetails(fmt.Sprintf("unknown command %q", verb), string(errors.UnknownCommand), "command")
	}
}

// parsePlace parses "<SYMBOL> <TYPE> ..." following a side keyword.
func parsePlace(side orderv1.Side, args []string) (*Command, error) {
	if len(args) < 2 {
		return nil, malformed(fmt.Sprintf("usage: %s <SYMBOL> LMT <PRICE> <QTY> | %s <SYMBOL> MKT <QTY>", side, side))
	}

	symbol, kind, rest := args[0], orderv1.Kind(args[1]), args[2:]

	var req orderv1.PlaceRequest
	switch kind {
	case orderv1.KindLimit:
		if len(rest) < 2 {
			return nil, errors.NewErrorDetails("limit order requires a price and a quantity", string(errors.MissingPrice), "price")
		}
		if len(rest) > 2 {
			return nil, malformed(fmt.Sprintf("usage: %s <SYMBOL> LMT <PRICE> <QTY>", side))
		}
		price, err := parsePrice(rest[0])
		if err != nil {
			return nil, err
		}
		qty, err := parseQty(rest[1])
		if err != nil {
			return nil, err
		}
		req = orderv1.NewLimitRequest(side, symbol, price, qty)
	case orderv1.KindMarket:
		switch len(rest) {
		case 0:
			return nil, malformed("market order requires a quantity")
		case 1:
		case 2:
			return nil, errors.NewErrorDetails("market order must not carry a price", string(errors.UnexpectedPrice), "price")
		default:
			return nil, malformed(fmt.Sprintf("usage: %s <SYMBOL> MKT <QTY>", side))
		}
		qty, err := parseQty(rest[0])
		if err != nil {
			return nil, err
		}
		req = orderv1.NewMarketRequest(side, symbol, qty)
	default:
		return nil, errors.NewErrorDetails(fmt.Sprintf("unknown order type %q, expected LMT or MKT", kind), string(errors.InvalidOrderKind), "kind")
	}

	return &Command{Type: TypePlace, Place: req}, nil
}

func parsePrice(token string) (money.Money, error) {
	price, err := money.Parse(token)
	if err != nil {
		return money.Money{}, errors.NewErrorDetails(fmt.Sprintf("invalid price %q", token), string(errors.InvalidPrice), "price")
	}
	if !price.IsPositive() {
		return money.Money{}, errors.NewErrorDetails(fmt.Sprintf("price must be positive, got %s", price), string(errors.InvalidPrice), "price")
	}
	return price, nil
}

func parseQty(token string) (int64, error) {
	qty, err := strconv.ParseInt(token, 10, 64)
	if err != nil || qty <= 0 {
		return 0, errors.NewErrorDetails(fmt.Sprintf("quantity must be a positive integer, got %q", token), string(errors.InvalidQuantity), "qty")
	}
	return qty, nil
}

func malformed(message string) error {
	return errors.NewErrorDetails(message, string(errors.MalformedCommand), "command")
}
