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
		m, err := NewMoney(decimal.NewFromFloat(100.50), INR)
		require.NoError(t, err)
		assert.Equal(t, INR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45", INR)
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number", INR)
		assert.Error(t, err)
	})
}

func TestNewMoneyINR(t *testing.T) {
	m := NewMoneyINR(decimal.NewFromFloat(50.00))
	assert.Equal(t, INR, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(50.00)))
}

func TestZeroINR(t *testing.T) {
	m := ZeroINR()
	assert.True(t, m.IsZero())
	assert.Equal(t, INR, m.Currency())
}

func TestMoneyIsPositiveNegativeZero(t *testing.T) {
	positive := NewMoneyINRFromFloat(100)
	negative := NewMoneyINRFromFloat(-100)
	zero := ZeroINR()

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
	t.Run("adds same currency", func(t *testing.T) {
		m1 := NewMoneyINRFromFloat(100.50)
		m2 := NewMoneyINRFromFloat(50.25)
		result, err := m1.Add(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromFloat(150.75)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromFloat(100, INR)
		m2, _ := NewMoneyFromFloat(50, USD)
		_, err := m1.Add(m2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "different currencies")
	})
}

func TestMoneySubtract(t *testing.T) {
	t.Run("subtracts same currency", func(t *testing.T) {
		m1 := NewMoneyINRFromFloat(100)
		m2 := NewMoneyINRFromFloat(30)
		result, err := m1.Subtract(m2)
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(70)))
	})

	t.Run("fails for different currencies", func(t *testing.T) {
		m1, _ := NewMoneyFromFloat(100, INR)
		m2, _ := NewMoneyFromFloat(50, USD)
		_, err := m1.Subtract(m2)
		assert.Error(t, err)
	})
}

func TestMoneyMultiply(t *testing.T) {
	m := NewMoneyINRFromFloat(10.50)
	result := m.MultiplyByInt(3)
	assert.True(t, result.Amount().Equal(decimal.NewFromFloat(31.50)))
}

func TestMoneyDivide(t *testing.T) {
	t.Run("divides by non-zero", func(t *testing.T) {
		m := NewMoneyINRFromFloat(100)
		result, err := m.Divide(decimal.NewFromInt(4))
		require.NoError(t, err)
		assert.True(t, result.Amount().Equal(decimal.NewFromInt(25)))
	})

	t.Run("fails on division by zero", func(t *testing.T) {
		m := NewMoneyINRFromFloat(100)
		_, err := m.Divide(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMoneyRound(t *testing.T) {
	t.Run("rounds half away from zero", func(t *testing.T) {
		m, err := NewMoneyINRFromString("1.00005")
		require.NoError(t, err)
		rounded := m.RoundMoney()
		assert.Equal(t, "1.0001", rounded.StringFixed(4))
	})

	t.Run("rounds down below half", func(t *testing.T) {
		m, err := NewMoneyINRFromString("1.00004")
		require.NoError(t, err)
		rounded := m.RoundMoney()
		assert.Equal(t, "1.0000", rounded.StringFixed(4))
	})
}

func TestMoneyComparisons(t *testing.T) {
	m1 := NewMoneyINRFromFloat(100)
	m2 := NewMoneyINRFromFloat(200)

	less, err := m1.LessThan(m2)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := m2.GreaterThan(m1)
	require.NoError(t, err)
	assert.True(t, greater)

	gte, err := m1.GreaterThanOrEqual(m1)
	require.NoError(t, err)
	assert.True(t, gte)

	t.Run("fails for different currencies", func(t *testing.T) {
		other, _ := NewMoneyFromFloat(100, USD)
		_, err := m1.LessThan(other)
		assert.Error(t, err)
	})
}

func TestMoneyEquals(t *testing.T) {
	m1 := NewMoneyINRFromFloat(100)
	m2 := NewMoneyINRFromFloat(100)
	m3, _ := NewMoneyFromFloat(100, USD)

	assert.True(t, m1.Equals(m2))
	assert.False(t, m1.Equals(m3))
}

func TestMoneyJSON(t *testing.T) {
	t.Run("marshal and unmarshal", func(t *testing.T) {
		m := NewMoneyINRFromFloat(123.45)
		data, err := json.Marshal(m)
		require.NoError(t, err)

		var decoded Money
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, m.Equals(decoded))
	})

	t.Run("empty currency defaults to INR", func(t *testing.T) {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(`{"amount":"10.00"}`), &m))
		assert.Equal(t, INR, m.Currency())
	})
}

func TestMoneyScan(t *testing.T) {
	t.Run("scans string value", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan("42.1234"))
		assert.Equal(t, "42.1234", m.StringFixed(4))
		assert.Equal(t, INR, m.Currency())
	})

	t.Run("scans nil as zero", func(t *testing.T) {
		var m Money
		require.NoError(t, m.Scan(nil))
		assert.True(t, m.IsZero())
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		var m Money
		assert.Error(t, m.Scan(3.14))
	})
}

func TestMoneyCalculatePercentage(t *testing.T) {
	m := NewMoneyINRFromFloat(200)
	result := m.CalculatePercentage(decimal.NewFromInt(18))
	assert.True(t, result.Amount().Equal(decimal.NewFromInt(36)))
}

func TestMoneyApplyDiscount(t *testing.T) {
	m := NewMoneyINRFromFloat(100)
	result := m.ApplyDiscount(decimal.NewFromInt(10))
	assert.True(t, result.Amount().Equal(decimal.NewFromInt(90)))
}
