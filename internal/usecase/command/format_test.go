package command

import (
	"testing"

	orderv1 "github.com/joker6198/stock-project/internal/domain/order/v1"
	"github.com/joker6198/stock-project/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		req      orderv1.PlaceRequest
		expected string
	}{
		{
			name:     "limit",
			req:      orderv1.NewLimitRequest(orderv1.SideSell, "AAPL", money.MustParse("100.5"), 10),
			expected: "SELL AAPL LMT $100.50 10",
		},
		{
			name:     "market",
			req:      orderv1.NewMarketRequest(orderv1.SideBuy, "FB", 3),
			expected: "BUY FB MKT 3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := Format(tc.req)
			assert.Equal(t, tc.expected, line)

			cmd, err := Parse(line)
			require.NoError(t, err)
			assert.Equal(t, TypePlace, cmd.Type)
			assert.Equal(t, tc.req.Side, cmd.Place.Side)
			assert.Equal(t, tc.req.Kind, cmd.Place.Kind)
			assert.Equal(t, tc.req.Qty, cmd.Place.Qty)
		})
	}
}
