package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates active product with defaults", func(t *testing.T) {
		p, err := NewProduct("prd00001", "Basmati Rice 5kg", decimal.NewFromFloat(450.00), 20)
		require.NoError(t, err)
		assert.Equal(t, "PRD00001", p.Code)
		assert.Equal(t, DefaultUnit, p.Unit)
		assert.True(t, p.IsActive)
		assert.True(t, p.TaxRate.Equal(decimal.NewFromInt(18)))
		assert.Equal(t, 20, p.QuantityInStock)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("PRD00001", "  ", decimal.NewFromInt(10), 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("PRD00001", "Rice", decimal.NewFromInt(-1), 0)
		assert.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct("PRD00001", "Rice", decimal.NewFromInt(10), -5)
		assert.Error(t, err)
	})
}

func TestGenerateProductCode(t *testing.T) {
	assert.Equal(t, "PRD00001", GenerateProductCode(1))
	assert.Equal(t, "PRD00042", GenerateProductCode(42))
	assert.Equal(t, "PRD123456", GenerateProductCode(123456))
}

func TestProductAdjustStock(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 10)

	require.NoError(t, p.AdjustStock(-4))
	assert.Equal(t, 6, p.QuantityInStock)

	require.NoError(t, p.AdjustStock(14))
	assert.Equal(t, 20, p.QuantityInStock)

	err := p.AdjustStock(-21)
	assert.Error(t, err)
	assert.Equal(t, 20, p.QuantityInStock, "failed adjustment must not change stock")
}

func TestProductHasSufficientStock(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 5)

	assert.True(t, p.HasSufficientStock(5))
	assert.False(t, p.HasSufficientStock(6))
	assert.False(t, p.HasSufficientStock(0))
	assert.False(t, p.HasSufficientStock(-1))
}

func TestProductLowStockAndReorder(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 10)

	assert.True(t, p.IsLowStock(10))
	assert.False(t, p.IsLowStock(9))

	require.NoError(t, p.UpdateStockLevels(2, 100, 10))
	assert.True(t, p.NeedsReorder())

	require.NoError(t, p.UpdateStockLevels(2, 100, 0))
	assert.False(t, p.NeedsReorder(), "zero reorder level disables the check")
}

func TestProductExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no expiry date", func(t *testing.T) {
		p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 1)
		assert.False(t, p.IsExpired(now))
		assert.False(t, p.ExpiresWithin(now, 7))
	})

	t.Run("expires inside window", func(t *testing.T) {
		p, _ := NewProduct("PRD00001", "Milk", decimal.NewFromInt(60), 1)
		d := now.AddDate(0, 0, 5)
		p.ExpiryDate = &d
		assert.False(t, p.IsExpired(now))
		assert.True(t, p.ExpiresWithin(now, 7))
	})

	t.Run("expires outside window", func(t *testing.T) {
		p, _ := NewProduct("PRD00001", "Milk", decimal.NewFromInt(60), 1)
		d := now.AddDate(0, 0, 30)
		p.ExpiryDate = &d
		assert.False(t, p.ExpiresWithin(now, 7))
	})

	t.Run("already expired", func(t *testing.T) {
		p, _ := NewProduct("PRD00001", "Milk", decimal.NewFromInt(60), 1)
		d := now.AddDate(0, 0, -1)
		p.ExpiryDate = &d
		assert.True(t, p.IsExpired(now))
		assert.False(t, p.ExpiresWithin(now, 7), "expired stock is not upcoming")
	})
}

func TestProductUpdatePricing(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 1)

	err := p.UpdatePricing(
		decimal.NewFromFloat(120.50),
		decimal.NewFromFloat(90.00),
		decimal.NewFromFloat(150.00),
		decimal.NewFromInt(10),
		decimal.NewFromInt(18),
	)
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromFloat(120.50)))

	t.Run("rejects discount above 100", func(t *testing.T) {
		err := p.UpdatePricing(decimal.NewFromInt(100), decimal.Zero, decimal.Zero, decimal.NewFromInt(101), decimal.Zero)
		assert.Error(t, err)
	})
}

func TestProductDiscountedUnitPrice(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromFloat(100), 1)
	p.DiscountPercentage = decimal.NewFromInt(15)

	assert.True(t, p.DiscountedUnitPrice().Equal(decimal.NewFromInt(85)))
}

func TestProductStockValue(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 8)
	p.CostPrice = decimal.NewFromFloat(72.25)

	assert.True(t, p.StockValue().Equal(decimal.NewFromFloat(578.00)))
}

func TestProductDeactivateActivate(t *testing.T) {
	p, _ := NewProduct("PRD00001", "Rice", decimal.NewFromInt(100), 1)

	p.Deactivate()
	assert.False(t, p.IsActive)

	p.Activate()
	assert.True(t, p.IsActive)
}

func TestNewCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewCategory("Groceries", "Daily essentials")
		require.NoError(t, err)
		assert.Equal(t, "Groceries", c.Name)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewCategory("   ", "")
		assert.Error(t, err)
	})
}
