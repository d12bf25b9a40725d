package orderv1

import (
	"testing"

	"github.com/joker6198/stock-project/pkg/errors"
	"github.com/joker6198/stock-project/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverCode(t *testing.T, fn func()) (code errors.ErrorCode) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error")
		code = errors.CodeOf(err)
	}()
	fn()
	return ""
}

func TestNewOrder(t *testing.T) {
	t.Run("limit order keeps its price", func(t *testing.T) {
		o := NewOrder(1, NewLimitRequest(SideBuy, "SNAP", money.MustParse("10"), 100))

		price, ok := o.Price()
		require.True(t, ok)
		assert.Equal(t, "$10.00", price.String())
		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, "SNAP", o.Symbol())
		assert.Equal(t, KindLimit, o.Kind())
		assert.True(t, o.IsBid())
		assert.False(t, o.IsMarket())
		assert.Equal(t, int64(100), o.Remaining())
	})

	t.Run("market order has no price", func(t *testing.T) {
		o := NewOrder(2, NewMarketRequest(SideSell, "SNAP", 5))

		_, ok := o.Price()
		assert.False(t, ok)
		assert.True(t, o.IsAsk())
		assert.True(t, o.IsMarket())
	})

	t.Run("request price is copied", func(t *testing.T) {
		req := NewLimitRequest(SideBuy, "SNAP", money.MustParse("10"), 1)
		o := NewOrder(3, req)
		*req.Price = money.MustParse("99")

		price, _ := o.Price()
		assert.Equal(t, "$10.00", price.String())
	})
}

func TestOrder_Status(t *testing.T) {
	o := NewOrder(1, NewLimitRequest(SideBuy, "SNAP", money.MustParse("10"), 100))
	assert.Equal(t, StatusPending, o.Status())

	o.Fill(50)
	assert.Equal(t, StatusPartial, o.Status())
	assert.Equal(t, int64(50), o.Filled())
	assert.False(t, o.IsFilled())

	o.Fill(50)
	assert.Equal(t, StatusFilled, o.Status())
	assert.True(t, o.IsFilled())
	assert.Equal(t, int64(0), o.Remaining())
}

func TestOrder_FillInvariant(t *testing.T) {
	testCases := []struct {
		name string
		fill int64
	}{
		{name: "overfill", fill: 101},
		{name: "zero fill", fill: 0},
		{name: "negative fill", fill: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOrder(1, NewLimitRequest(SideBuy, "SNAP", money.MustParse("10"), 100))
			code := recoverCode(t, func() { o.Fill(tc.fill) })

			assert.Equal(t, errors.InvariantViolation, code)
			assert.Equal(t, int64(0), o.Filled())
		})
	}
}

func TestOrder_StatusInvariant(t *testing.T) {
	o := NewOrder(1, NewLimitRequest(SideBuy, "SNAP", money.MustParse("10"), 100))
	o.filled = 150

	code := recoverCode(t, func() { _ = o.Status() })
	assert.Equal(t, errors.InvariantViolation, code)
}

func TestOrder_Snapshot(t *testing.T) {
	o := NewOrder(7, NewLimitRequest(SideSell, "AAPL", money.MustParse("100"), 10))
	o.Fill(4)

	snap := o.Snapshot()
	o.Fill(6)

	assert.Equal(t, int64(7), snap.ID)
	assert.Equal(t, int64(4), snap.Filled)
	assert.Equal(t, StatusPartial, snap.Status)
	require.NotNil(t, snap.Price)
	assert.Equal(t, "$100.00", snap.Price.String())

	market := NewOrder(8, NewMarketRequest(SideBuy, "AAPL", 3)).Snapshot()
	assert.Nil(t, market.Price)
	assert.Equal(t, StatusPending, market.Status)
}
