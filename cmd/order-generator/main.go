package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	"github.com/joker6198/stock-project/internal/usecase/command"
	"github.com/joker6198/stock-project/pkg/logger"
	"github.com/joker6198/stock-project/pkg/money"
)

// generatorOptions controls the shape of the generated order flow.
type generatorOptions struct {
	Count       int
	Symbols     []string
	BasePrice   float64
	PriceSpread float64
	MarketRatio float64
	MaxQty      int64
}

// minBasePrice is the smallest base price whose fallback still renders as a positive limit price.
const minBasePrice = 0.01

func (o generatorOptions) validate() error {
	switch {
	case o.Count < 0:
		return fmt.Errorf("count must not be negative, got %d", o.Count)
	case len(o.Symbols) == 0:
		return fmt.Errorf("at least one symbol is required")
	case o.MaxQty <= 0:
		return fmt.Errorf("max-qty must be positive, got %d", o.MaxQty)
	case o.BasePrice < minBasePrice:
		return fmt.Errorf("base-price must be at least %.2f, got %g", minBasePrice, o.BasePrice)
	}
	return nil
}

// generateOrders creates a specified number of realistic orders
func generateOrders(r *rand.Rand, opts generatorOptions) []orderv1.PlaceRequest {
	orders := make([]orderv1.PlaceRequest, 0, opts.Count)

	for i := 0; i < opts.Count; i++ {
		symbol := opts.Symbols[r.Intn(len(opts.Symbols))]

		// Order side: 50/50 buy/sell
		side := orderv1.SideSell
		if r.Float64() < 0.5 {
			side = orderv1.SideBuy
		}

		qty := 1 + r.Int63n(opts.MaxQty)

		if r.Float64() < opts.MarketRatio {
			orders = append(orders, orderv1.NewMarketRequest(side, symbol, qty))
			continue
		}

		// Buy orders typically below the base price, sell orders above
		var price float64
		if side == orderv1.SideBuy {
			price = opts.BasePrice - r.Float64()*opts.PriceSpread*0.8
		} else {
			price = opts.BasePrice + r.Float64()*opts.PriceSpread*0.8
		}

		p := money.MustParse(fmt.Sprintf("%.2f", price))
		if !p.IsPositive() {
			p = money.MustParse(fmt.Sprintf("%.2f", opts.BasePrice))
		}

		orders = append(orders, orderv1.NewLimitRequest(side, symbol, p, qty))
	}

	return orders
}

func main() {
	var (
		count       = flag.Int("count", 1000, "Number of orders to generate")
		symbols     = flag.String("symbols", "AAPL,MSFT,FB", "Instrument symbols (comma-separated)")
		basePrice   = flag.Float64("base-price", 100, "Base price for orders")
		priceSpread = flag.Float64("price-spread", 10, "Price spread range")
		marketRatio = flag.Float64("market-ratio", 0.3, "Share of market orders")
		maxQty      = flag.Int64("max-qty", 100, "Maximum quantity per order")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		view        = flag.Bool("view", true, "Append VIEW ORDERS and a QUOTE per symbol")
	)
	flag.Parse()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	opts := generatorOptions{
		Count:       *count,
		Symbols:     splitSymbols(*symbols),
		BasePrice:   *basePrice,
		PriceSpread: *priceSpread,
		MarketRatio: *marketRatio,
		MaxQty:      *maxQty,
	}
	if err := opts.validate(); err != nil {
		log.Warn("Invalid generator options",
			logger.Field{Key: "error", Value: err.Error()},
			logger.Field{Key: "symbols", Value: *symbols},
			logger.Field{Key: "maxQty", Value: *maxQty},
			logger.Field{Key: "basePrice", Value: *basePrice},
		)
		os.Exit(2)
	}

	orders := generateOrders(rand.New(rand.NewSource(*seed)), opts)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, order := range orders {
		fmt.Fprintln(w, command.Format(order))
	}
	if *view {
		for _, symbol := range opts.Symbols {
			fmt.Fprintf(w, "QUOTE %s\n", symbol)
		}
		fmt.Fprintln(w, "VIEW ORDERS")
	}

	log.Info("Generated orders",
		logger.Field{Key: "count", Value: len(orders)},
		logger.Field{Key: "seed", Value: *seed},
	)
}

func splitSymbols(s string) []string {
	var out []string
	for _, symbol := range strings.Split(s, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			out = append(out, symbol)
		}
	}
	return out
}
