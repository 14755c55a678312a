package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), USD)
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyUSD(t *testing.T) {
	m := NewMoneyUSD(decimal.NewFromFloat(50.00))
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestNewMoneyUSDFromFloat(t *testing.T) {
	m := NewMoneyUSDFromFloat(75.50)
	assert.Equal(t, USD, m.Currency())
	assert.Equal(t, 75.5, m.Float64())
}

func TestNewMoneyUSDFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyUSDFromString("199.99")
		require.NoError(t, err)
		assert.Equal(t, USD, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(199.99)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyUSDFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestZero(t *testing.T) {
	m := Zero(CAD)
	assert.True(t, m.IsZero())
	assert.Equal(t, CAD, m.Currency())
}

func TestZeroUSD(t *testing.T) {
	m := ZeroUSD()
	assert.True(t, m.IsZero())
	assert.Equal(t, USD, m.Currency())
}

func TestMoneyIsPositiveNegativeZero(t *testing.T) {
	positive := NewMoneyUSDFromFloat(100)
	negative := NewMoneyUSDFromFloat(-100)
	zero := ZeroUSD()

	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())
	assert.False(t, positive.IsZero())

	assert.False(t, negative.IsPositive())
	assert.True(t, negative.IsNegative())
	assert.False(t, negative.IsZero())

	assert.False(t, zero.IsPositive())
	assert.False(t, zero.IsNegative())
	assert.True(t, zero.IsZero())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("same currency", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(100.25)
		b := NewMoneyUSDFromFloat(50.75)

		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromFloat(151.00)))
	})

	t.Run("mismatched currencies", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(100)
		b := Zero(EUR)

		_, err := a.Add(b)
		assert.Error(t, err)
	})

	t.Run("MustAdd panics on mismatch", func(t *testing.T) {
		a := NewMoneyUSDFromFloat(100)
		b := Zero(CAD)

		assert.Panics(t, func() {
			a.MustAdd(b)
		})
	})
}

func TestMoneySubtract(t *testing.T) {
	a := NewMoneyUSDFromFloat(100)
	b := NewMoneyUSDFromFloat(30)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.NewFromFloat(70)))

	_, err = a.Subtract(Zero(EUR))
	assert.Error(t, err)
}

func TestMoneyMultiplyDivide(t *testing.T) {
	m := NewMoneyUSDFromFloat(10)

	product := m.Multiply(decimal.NewFromFloat(1.5))
	assert.True(t, product.Amount().Equal(decimal.NewFromFloat(15)))

	quotient, err := m.Divide(decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, quotient.Amount().Equal(decimal.NewFromFloat(2.5)))

	_, err = m.Divide(decimal.Zero)
	assert.Error(t, err)
}

func TestMoneyRoundCents(t *testing.T) {
	m := NewMoneyUSDFromFloat(10.999)
	assert.Equal(t, "11.00", m.RoundCents().StringFixed(2))

	m = NewMoneyUSDFromFloat(10.994)
	assert.Equal(t, "10.99", m.RoundCents().StringFixed(2))
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoneyUSDFromFloat(10)
	b := NewMoneyUSDFromFloat(20)

	assert.True(t, a.Equals(NewMoneyUSDFromFloat(10)))
	assert.False(t, a.Equals(b))

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	_, err = a.LessThan(Zero(EUR))
	assert.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyUSDFromFloat(1234.5)
	assert.Equal(t, "1234.50 USD", m.String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyUSDFromFloat(99.95)

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.95","currency":"USD"}`, string(raw))

	var decoded Money
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyUnmarshalDefaultsCurrency(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.34"}`), &m))
	assert.Equal(t, DefaultCurrency, m.Currency())
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.50"))
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(42.50)))
		assert.Equal(t, DefaultCurrency, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(42))
	})
}
