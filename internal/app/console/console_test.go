package console

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	exchangev1_mock "github.com/joker6198/stock-project/internal/domain/exchange/v1/mock"
	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	orderbookv1 "github.com/joker6198/stock-project/internal/domain/orderbook/v1"
	"github.com/joker6198/stock-project/internal/usecase/exchange"
	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/logger"
	"github.com/joker6198/stock-project/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer
	c := NewConsole(exchange.NewExchange(), strings.NewReader(input), &out, logger.NewNop())
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsole_Session(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "limit orders partially fill",
			input: "SELL AAPL LMT $100.00 10\n" +
				"BUY AAPL LMT $100.00 5\n" +
				"VIEW ORDERS\n" +
				"QUOTE AAPL\n",
			expected: "1. AAPL LMT SELL $100.00 5/10 PARTIAL\n" +
				"2. AAPL LMT BUY $100.00 5/5 FILLED\n" +
				"AAPL BID: N/A ASK: $100.00 LAST: $100.00\n",
		},
		{
			name: "market order takes the resting price",
			input: "SELL FB LMT 50 10\n" +
				"BUY FB MKT 10\n" +
				"QUOTE FB\n" +
				"VIEW ORDERS\n",
			expected: "FB BID: N/A ASK: N/A LAST: $50.00\n" +
				"1. FB LMT SELL $50.00 10/10 FILLED\n" +
				"2. FB MKT BUY N/A 10/10 FILLED\n",
		},
		{
			name: "market remainder does not rest",
			input: "SELL AAPL LMT 5 5\n" +
				"BUY AAPL MKT 20\n" +
				"QUOTE AAPL\n" +
				"VIEW ORDERS\n",
			expected: "AAPL BID: N/A ASK: N/A LAST: $5.00\n" +
				"1. AAPL LMT SELL $5.00 5/5 FILLED\n" +
				"2. AAPL MKT BUY N/A 5/20 PARTIAL\n",
		},
		{
			name:     "unknown symbol",
			input:    "QUOTE UNKNOWN\n",
			expected: "UNKNOWN BID: N/A ASK: N/A LAST: N/A\n",
		},
		{
			name: "errors do not end the session",
			input: "HELLO\n" +
				"\n" +
				"BUY AAPL LMT 10\n" +
				"BUY AAPL MKT 10 5\n" +
				"BUY AAPL LMT 0 5\n" +
				"BUY AAPL LMT 10 -1\n" +
				"VIEW ORDERS\n",
			expected: "ERROR: unknown command \"HELLO\"\n" +
				"ERROR: limit order requires a price and a quantity\n" +
				"ERROR: market order must not carry a price\n" +
				"ERROR: price must be positive, got $0.00\n" +
				"ERROR: quantity must be a positive integer, got \"-1\"\n",
		},
		{
			name: "quit stops reading",
			input: "BUY AAPL LMT 100 1\n" +
				"QUIT\n" +
				"VIEW ORDERS\n",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, runSession(t, tc.input))
		})
	}
}

func TestConsole_Prompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(exchange.NewExchange(), strings.NewReader("QUOTE X\nQUIT\n"), &out, logger.NewNop(), WithPrompt("> "))

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, "> X BID: N/A ASK: N/A LAST: N/A\n> ", out.String())
}

func TestConsole_Routing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ex := exchangev1_mock.NewMockExchange(ctrl)
	var sessionID string
	gomock.InOrder(
		ex.EXPECT().
			PlaceOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req orderv1.PlaceRequest) (orderv1.OrderSnapshot, error) {
				assert.Equal(t, orderv1.SideBuy, req.Side)
				assert.Equal(t, "TSLA", req.Symbol)
				assert.Equal(t, orderv1.KindMarket, req.Kind)
				assert.Equal(t, int64(3), req.Qty)

				sessionID = util.GetSessionID(ctx)
				assert.NotEmpty(t, sessionID)
				assert.NotEmpty(t, util.GetRequestID(ctx))
				assert.Equal(t, "PLACE", util.GetCommand(ctx))
				return orderv1.OrderSnapshot{}, errors.NewErrorDetails("rejected", string(errors.InvalidSymbol), "symbol")
			}),
		ex.EXPECT().Quote("TSLA").Return(orderbookv1.EmptyQuote("TSLA")),
		ex.EXPECT().ViewOrders().Return(nil),
	)

	var out bytes.Buffer
	c := NewConsole(ex, strings.NewReader("BUY TSLA MKT 3\nQUOTE TSLA\nVIEW ORDERS\n"), &out, logger.NewNop())

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, "ERROR: rejected\nTSLA BID: N/A ASK: N/A LAST: N/A\n", out.String())
	assert.Equal(t, c.sessionID, sessionID)
}

func TestConsole_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := NewConsole(exchange.NewExchange(), strings.NewReader("QUOTE X\n"), &out, logger.NewNop())

	err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("closed pipe")
}

func TestConsole_WriteError(t *testing.T) {
	c := NewConsole(exchange.NewExchange(), strings.NewReader("QUOTE X\nQUOTE Y\n"), failingWriter{}, logger.NewNop())

	err := c.Run(context.Background())
	assert.EqualError(t, err, "closed pipe")
}
