package exchange

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	exchangev1 "github.com/joker6198/stock-project/internal/domain/exchange/v1"
	exchangev1_mock "github.com/joker6198/stock-project/internal/domain/exchange/v1/mock"
	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limit(side orderv1.Side, symbol, price string, qty int64) orderv1.PlaceRequest {
	return orderv1.NewLimitRequest(side, symbol, money.MustParse(price), qty)
}

func market(side orderv1.Side, symbol string, qty int64) orderv1.PlaceRequest {
	return orderv1.NewMarketRequest(side, symbol, qty)
}

func mustPlace(t *testing.T, e *Exchange, req orderv1.PlaceRequest) orderv1.OrderSnapshot {
	t.Helper()
	o, err := e.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	return o
}

func bookIDs(t *testing.T, e *Exchange, symbol string) (bids, asks []int64) {
	t.Helper()
	book, ok := e.Book(symbol)
	require.True(t, ok)
	for _, o := range book.Bids() {
		bids = append(bids, o.ID())
	}
	for _, o := range book.Asks() {
		asks = append(asks, o.ID())
	}
	return bids, asks
}

func TestExchange_LimitPartialFill(t *testing.T) {
	e := NewExchange()

	sell := mustPlace(t, e, limit(orderv1.SideSell, "AAPL", "100.00", 10))
	buy := mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "100.00", 5))

	assert.Equal(t, int64(1), sell.ID)
	assert.Equal(t, int64(2), buy.ID)
	assert.Equal(t, int64(5), buy.Filled)
	assert.Equal(t, orderv1.StatusFilled, buy.Status)

	orders := e.ViewOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, int64(5), orders[0].Filled)
	assert.Equal(t, int64(10), orders[0].Qty)
	assert.Equal(t, orderv1.StatusPartial, orders[0].Status)

	bids, asks := bookIDs(t, e, "AAPL")
	assert.Empty(t, bids)
	assert.Equal(t, []int64{1}, asks)
}

func TestExchange_MarketBuyFilled(t *testing.T) {
	e := NewExchange()

	mustPlace(t, e, limit(orderv1.SideSell, "FB", "50.00", 10))
	buy := mustPlace(t, e, market(orderv1.SideBuy, "FB", 10))

	assert.Equal(t, int64(10), buy.Filled)
	assert.Equal(t, orderv1.StatusFilled, buy.Status)
	assert.Nil(t, buy.Price)

	q := e.Quote("FB")
	require.NotNil(t, q.Last)
	assert.Equal(t, "$50.00", q.Last.String())
	assert.Nil(t, q.Bid)
	assert.Nil(t, q.Ask)

	bids, asks := bookIDs(t, e, "FB")
	assert.Empty(t, bids)
	assert.Empty(t, asks)
}

func TestExchange_MarketRemainderCancelled(t *testing.T) {
	e := NewExchange()

	mustPlace(t, e, limit(orderv1.SideSell, "AAPL", "5.00", 5))
	buy := mustPlace(t, e, market(orderv1.SideBuy, "AAPL", 20))

	assert.Equal(t, int64(5), buy.Filled)
	assert.Equal(t, orderv1.StatusPartial, buy.Status)

	bids, asks := bookIDs(t, e, "AAPL")
	assert.Empty(t, bids)
	assert.Empty(t, asks)

	// the cancelled remainder does not trade with later liquidity
	mustPlace(t, e, limit(orderv1.SideSell, "AAPL", "5.00", 5))
	orders := e.ViewOrders()
	assert.Equal(t, int64(5), orders[1].Filled)
	assert.Equal(t, orderv1.StatusPending, orders[2].Status)
}

func TestExchange_MarketWithoutLiquidity(t *testing.T) {
	e := NewExchange()

	sell := mustPlace(t, e, market(orderv1.SideSell, "TSLA", 7))

	assert.Equal(t, int64(0), sell.Filled)
	assert.Equal(t, orderv1.StatusPending, sell.Status)

	bids, asks := bookIDs(t, e, "TSLA")
	assert.Empty(t, bids)
	assert.Empty(t, asks)
	assert.Len(t, e.ViewOrders(), 1)
}

func TestExchange_QuoteUnknownSymbol(t *testing.T) {
	e := NewExchange()

	q := e.Quote("UNKNOWN")

	assert.Equal(t, "UNKNOWN", q.Symbol)
	assert.Nil(t, q.Bid)
	assert.Nil(t, q.Ask)
	assert.Nil(t, q.Last)

	_, ok := e.Book("UNKNOWN")
	assert.False(t, ok)
}

func TestExchange_BidRanking(t *testing.T) {
	e := NewExchange()

	mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "100", 1))
	mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "102", 1))
	mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "101", 1))

	bids, _ := bookIDs(t, e, "AAPL")
	assert.Equal(t, []int64{2, 3, 1}, bids)

	q := e.Quote("AAPL")
	require.NotNil(t, q.Bid)
	assert.Equal(t, "$102.00", q.Bid.String())
}

func TestExchange_Validation(t *testing.T) {
	price := money.MustParse("10")
	zero := money.MustParse("0")

	testCases := []struct {
		name string
		req  orderv1.PlaceRequest
		code errors.ErrorCode
	}{
		{
			name: "limit without price",
			req:  orderv1.PlaceRequest{Side: orderv1.SideBuy, Symbol: "AAPL", Kind: orderv1.KindLimit, Qty: 1},
			code: errors.MissingPrice,
		},
		{
			name: "market with price",
			req:  orderv1.PlaceRequest{Side: orderv1.SideBuy, Symbol: "AAPL", Kind: orderv1.KindMarket, Price: &price, Qty: 1},
			code: errors.UnexpectedPrice,
		},
		{
			name: "zero price",
			req:  orderv1.PlaceRequest{Side: orderv1.SideSell, Symbol: "AAPL", Kind: orderv1.KindLimit, Price: &zero, Qty: 1},
			code: errors.InvalidPrice,
		},
		{
			name: "zero quantity",
			req:  limit(orderv1.SideSell, "AAPL", "10", 0),
			code: errors.InvalidQuantity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewExchange()

			_, err := e.PlaceOrder(context.Background(), tc.req)

			require.Error(t, err)
			assert.True(t, errors.ErrorCodeEquals(err, tc.code))
			assert.Empty(t, e.ViewOrders())
			_, ok := e.Book("AAPL")
			assert.False(t, ok)

			// the rejected request does not consume an id
			o := mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "1", 1))
			assert.Equal(t, int64(1), o.ID)
		})
	}
}

func TestExchange_SymbolsAreIsolated(t *testing.T) {
	e := NewExchange()

	mustPlace(t, e, limit(orderv1.SideSell, "AAPL", "10", 5))
	buy := mustPlace(t, e, limit(orderv1.SideBuy, "MSFT", "20", 5))

	assert.Equal(t, int64(0), buy.Filled)
	assert.Nil(t, e.Quote("AAPL").Bid)
	assert.Nil(t, e.Quote("MSFT").Ask)

	orders := e.ViewOrders()
	require.Len(t, orders, 2)
	assert.Equal(t, "AAPL", orders[0].Symbol)
	assert.Equal(t, "MSFT", orders[1].Symbol)
}

func TestExchange_QueriesDoNotMutate(t *testing.T) {
	e := NewExchange()

	mustPlace(t, e, limit(orderv1.SideSell, "AAPL", "10", 5))
	mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "9", 5))

	firstQuote := e.Quote("AAPL")
	firstOrders := e.ViewOrders()
	for range 3 {
		assert.Equal(t, firstQuote, e.Quote("AAPL"))
		assert.Equal(t, firstOrders, e.ViewOrders())
	}
}

func TestExchange_ViewOrdersIsSnapshot(t *testing.T) {
	e := NewExchange()

	mustPlace(t, e, limit(orderv1.SideSell, "AAPL", "10", 5))
	before := e.ViewOrders()
	mustPlace(t, e, limit(orderv1.SideBuy, "AAPL", "10", 5))

	assert.Equal(t, int64(0), before[0].Filled)
	assert.Equal(t, int64(5), e.ViewOrders()[0].Filled)
}

func TestExchange_EventSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := exchangev1_mock.NewMockEventSink(ctrl)
	e := NewExchange(WithEventSink(sink))

	var placements []*exchangev1.Placement
	sink.EXPECT().
		OnPlacement(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, p *exchangev1.Placement) {
			placements = append(placements, p)
		}).
		Times(2)

	mustPlace(t, e, limit(orderv1.SideSell, "FB", "50", 4))
	mustPlace(t, e, market(orderv1.SideBuy, "FB", 6))

	// rejected orders are not reported
	_, err := e.PlaceOrder(context.Background(), market(orderv1.SideBuy, "FB", 0))
	require.Error(t, err)

	require.Len(t, placements, 2)

	assert.False(t, placements[0].HasTrades())
	require.NotNil(t, placements[0].Quote.Ask)
	assert.Equal(t, "$50.00", placements[0].Quote.Ask.String())

	second := placements[1]
	require.True(t, second.HasTrades())
	require.Len(t, second.Trades, 1)
	assert.Equal(t, int64(2), second.Trades[0].BuyOrderID)
	assert.Equal(t, int64(1), second.Trades[0].SellOrderID)
	assert.Equal(t, int64(4), second.Trades[0].Qty)
	assert.Equal(t, int64(2), second.Evicted)
	assert.Equal(t, orderv1.StatusPartial, second.Order.Status)
	require.NotNil(t, second.Quote.Last)
	assert.Equal(t, "$50.00", second.Quote.Last.String())
}

func TestExchange_SinkRunsWithoutLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := exchangev1_mock.NewMockEventSink(ctrl)
	e := NewExchange(WithEventSink(sink))

	sink.EXPECT().
		OnPlacement(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *exchangev1.Placement) {
			done := make(chan struct{})
			go func() {
				defer close(done)
				e.Quote("FB")
				e.ViewOrders()
				e.Book("FB")
			}()

			select {
			case <-done:
			case <-time.After(time.Second):
				t.Error("readers blocked while the sink was running")
			}
		})

	mustPlace(t, e, limit(orderv1.SideSell, "FB", "50", 4))
}

// recordingSink collects every placement it receives.
type recordingSink struct {
	placements []*exchangev1.Placement
}

func (s *recordingSink) OnPlacement(_ context.Context, p *exchangev1.Placement) {
	s.placements = append(s.placements, p)
}

func TestExchange_RandomFlowInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	sink := &recordingSink{}
	e := NewExchange(WithEventSink(sink))
	symbols := []string{"AAPL", "FB"}
	prices := []string{"98", "99", "100", "101", "102"}

	var lastFilled int64
	for i := 0; i < 2000; i++ {
		side := orderv1.SideBuy
		if r.Intn(2) == 0 {
			side = orderv1.SideSell
		}
		symbol := symbols[r.Intn(len(symbols))]
		qty := int64(1 + r.Intn(20))

		req := limit(side, symbol, prices[r.Intn(len(prices))], qty)
		if r.Intn(3) == 0 {
			req = market(side, symbol, qty)
		}
		placed := mustPlace(t, e, req)

		// fills added by this call are exactly twice the traded volume
		var traded, buyFilled, sellFilled int64
		placement := sink.placements[len(sink.placements)-1]
		for _, trade := range placement.Trades {
			traded += trade.Qty
		}
		for _, o := range e.ViewOrders() {
			require.True(t, o.Filled >= 0 && o.Filled <= o.Qty, "order %d filled %d/%d", o.ID, o.Filled, o.Qty)
			if o.Side == orderv1.SideBuy {
				buyFilled += o.Filled
			} else {
				sellFilled += o.Filled
			}
		}
		require.Equal(t, buyFilled, sellFilled, "step %d", i)
		require.Equal(t, lastFilled+2*traded, buyFilled+sellFilled, "step %d", i)
		lastFilled = buyFilled + sellFilled

		if placed.Kind == orderv1.KindMarket {
			require.Equal(t, placed.Qty-placed.Filled, placement.Evicted, "step %d", i)
		}

		for _, symbol := range symbols {
			book, ok := e.Book(symbol)
			if !ok {
				continue
			}
			for _, o := range append(book.Bids(), book.Asks()...) {
				require.False(t, o.IsMarket(), "step %d: market order %d is resting", i, o.ID())
				require.False(t, o.IsFilled(), "step %d: filled order %d is resting", i, o.ID())
			}

			bid, hasBid := book.BestBid()
			ask, hasAsk := book.BestAsk()
			if hasBid && hasAsk {
				require.True(t, bid.LessThan(ask), "step %d: crossed %s book %s/%s", i, symbol, bid, ask)
			}
		}
	}
}
