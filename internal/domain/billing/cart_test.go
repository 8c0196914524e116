package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stdPolicy() PricingPolicy {
	return PricingPolicy{
		TaxRate:           decimal.NewFromInt(18),
		DiscountThreshold: decimal.NewFromInt(1000),
		DiscountRate:      decimal.NewFromFloat(0.10),
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCartValidate(t *testing.T) {
	pid := uuid.New()

	t.Run("empty cart", func(t *testing.T) {
		err := Cart{}.Validate()
		assert.Error(t, err)
	})

	t.Run("zero quantity", func(t *testing.T) {
		c := Cart{Lines: []CartLine{{ProductID: pid, Quantity: 0, UnitPrice: dec("10")}}}
		assert.Error(t, c.Validate())
	})

	t.Run("zero price", func(t *testing.T) {
		c := Cart{Lines: []CartLine{{ProductID: pid, Quantity: 1, UnitPrice: decimal.Zero}}}
		assert.Error(t, c.Validate())
	})

	t.Run("missing product", func(t *testing.T) {
		c := Cart{Lines: []CartLine{{Quantity: 1, UnitPrice: dec("10")}}}
		assert.Error(t, c.Validate())
	})

	t.Run("discount rate above 100", func(t *testing.T) {
		c := Cart{Lines: []CartLine{{ProductID: pid, Quantity: 1, UnitPrice: dec("10"), DiscountRate: dec("101")}}}
		assert.Error(t, c.Validate())
	})

	t.Run("valid cart", func(t *testing.T) {
		c := Cart{Lines: []CartLine{{ProductID: pid, Quantity: 2, UnitPrice: dec("10"), DiscountRate: dec("5")}}}
		assert.NoError(t, c.Validate())
	})
}

func TestPriceLine(t *testing.T) {
	pid := uuid.New()
	taxRate := decimal.NewFromInt(18)

	t.Run("no discount", func(t *testing.T) {
		pl := PriceLine(CartLine{ProductID: pid, Quantity: 3, UnitPrice: dec("65.00")}, taxRate)
		assert.True(t, pl.DiscountAmount.IsZero())
		assert.Equal(t, "65.0000", pl.UnitPrice.StringFixed(4))
		assert.Equal(t, "35.1000", pl.TaxAmount.StringFixed(4))
		assert.Equal(t, "230.1000", pl.LineTotal.StringFixed(4))
	})

	t.Run("with line discount", func(t *testing.T) {
		pl := PriceLine(CartLine{ProductID: pid, Quantity: 1, UnitPrice: dec("450.00"), DiscountRate: dec("10")}, taxRate)
		assert.Equal(t, "45.0000", pl.DiscountAmount.StringFixed(4))
		assert.Equal(t, "405.0000", pl.UnitPrice.StringFixed(4))
		assert.Equal(t, "72.9000", pl.TaxAmount.StringFixed(4))
		assert.Equal(t, "477.9000", pl.LineTotal.StringFixed(4))
	})

	t.Run("rounds half up at the fourth place", func(t *testing.T) {
		// taxable 0.1225, tax 0.02205 -> 0.0221 half-up
		pl := PriceLine(CartLine{ProductID: pid, Quantity: 1, UnitPrice: dec("0.1225")}, taxRate)
		assert.Equal(t, "0.0221", pl.TaxAmount.StringFixed(4))
	})

	t.Run("line total identity", func(t *testing.T) {
		pl := PriceLine(CartLine{ProductID: pid, Quantity: 7, UnitPrice: dec("19.99"), DiscountRate: dec("12.5")}, taxRate)
		taxable := pl.UnitPrice.Mul(decimal.NewFromInt(7))
		assert.True(t, pl.LineTotal.Equal(taxable.Add(pl.TaxAmount).Round(4)))
	})
}

func TestCartPrice(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()

	t.Run("worked example below threshold", func(t *testing.T) {
		cart := Cart{Lines: []CartLine{
			{ProductID: p1, Quantity: 3, UnitPrice: dec("65.00")},
			{ProductID: p2, Quantity: 1, UnitPrice: dec("450.00"), DiscountRate: dec("10")},
		}}
		priced, err := cart.Price(stdPolicy())
		require.NoError(t, err)

		assert.Equal(t, "645.0000", priced.Subtotal.StringFixed(4))
		assert.Equal(t, "45.0000", priced.ItemDiscounts.StringFixed(4))
		assert.True(t, priced.OrderDiscount.IsZero(), "600 net is below the 1000 threshold")
		assert.Equal(t, "108.0000", priced.TotalTax.StringFixed(4))
		assert.Equal(t, "708.0000", priced.TotalAmount.StringFixed(4))
		assert.Equal(t, "230.1000", priced.Lines[0].LineTotal.StringFixed(4))
		assert.Equal(t, "477.9000", priced.Lines[1].LineTotal.StringFixed(4))
	})

	t.Run("order discount at threshold", func(t *testing.T) {
		cart := Cart{Lines: []CartLine{
			{ProductID: p1, Quantity: 20, UnitPrice: dec("65.00")},
		}}
		priced, err := cart.Price(stdPolicy())
		require.NoError(t, err)

		assert.Equal(t, "1300.0000", priced.Subtotal.StringFixed(4))
		assert.Equal(t, "130.0000", priced.OrderDiscount.StringFixed(4))
		assert.Equal(t, "130.0000", priced.TotalDiscount.StringFixed(4))
		assert.Equal(t, "234.0000", priced.TotalTax.StringFixed(4))
		// 1300 - 130 + 234
		assert.Equal(t, "1404.0000", priced.TotalAmount.StringFixed(4))
	})

	t.Run("order discount applies to net of line discounts", func(t *testing.T) {
		// subtotal 2000, line discounts 1100, net 900 stays under threshold
		cart := Cart{Lines: []CartLine{
			{ProductID: p1, Quantity: 2, UnitPrice: dec("1000.00"), DiscountRate: dec("55")},
		}}
		priced, err := cart.Price(stdPolicy())
		require.NoError(t, err)
		assert.True(t, priced.OrderDiscount.IsZero())
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		cart := Cart{Lines: []CartLine{
			{ProductID: p1, Quantity: 1, UnitPrice: dec("1000.00")},
		}}
		priced, err := cart.Price(stdPolicy())
		require.NoError(t, err)
		assert.Equal(t, "100.0000", priced.OrderDiscount.StringFixed(4))
	})

	t.Run("header equals sum of lines", func(t *testing.T) {
		cart := Cart{Lines: []CartLine{
			{ProductID: p1, Quantity: 3, UnitPrice: dec("19.99"), DiscountRate: dec("5")},
			{ProductID: p2, Quantity: 2, UnitPrice: dec("7.45"), DiscountRate: dec("0")},
			{ProductID: uuid.New(), Quantity: 11, UnitPrice: dec("123.456"), DiscountRate: dec("33.33")},
		}}
		priced, err := cart.Price(stdPolicy())
		require.NoError(t, err)

		sumDiscount := decimal.Zero
		sumTax := decimal.Zero
		for _, l := range priced.Lines {
			sumDiscount = sumDiscount.Add(l.DiscountAmount)
			sumTax = sumTax.Add(l.TaxAmount)
		}
		assert.True(t, priced.ItemDiscounts.Equal(sumDiscount))
		assert.True(t, priced.TotalTax.Equal(sumTax))
		assert.True(t, priced.TotalAmount.Equal(
			priced.Subtotal.Sub(priced.TotalDiscount).Add(priced.TotalTax).Round(4)))
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := Cart{}.Price(stdPolicy())
		assert.Error(t, err)
	})

	t.Run("vanishing line is flagged but still totaled", func(t *testing.T) {
		cart := Cart{Lines: []CartLine{
			{ProductID: p1, Quantity: 1, UnitPrice: dec("0.00001")},
			{ProductID: p2, Quantity: 1, UnitPrice: dec("100.00")},
		}}
		priced, err := cart.Price(stdPolicy())
		require.NoError(t, err)

		assert.True(t, priced.Lines[0].Zero())
		assert.False(t, priced.Lines[1].Zero())
	})
}

func TestNewTransaction(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()
	custID := uuid.New()
	empID := uuid.New()

	cart := Cart{Lines: []CartLine{
		{ProductID: p1, Quantity: 1, UnitPrice: dec("0.00001")},
		{ProductID: p2, Quantity: 3, UnitPrice: dec("65.00")},
	}}
	priced, err := cart.Price(stdPolicy())
	require.NoError(t, err)

	txn, err := NewTransaction(priced, &custID, &empID, PaymentCash, "walk-in")
	require.NoError(t, err)

	assert.Regexp(t, `^TXN-\d{14}-[0-9A-F]{8}$`, txn.Number)
	assert.Equal(t, PaymentCompleted, txn.PaymentStatus)
	require.Len(t, txn.Items, 1, "zero-total line is dropped")
	assert.Equal(t, p2, txn.Items[0].ProductID)
	assert.Equal(t, txn.ID, txn.Items[0].TransactionID)

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewTransaction(priced, nil, nil, PaymentMethod("cheque"), "")
		assert.Error(t, err)
	})
}

func TestTransactionRefund(t *testing.T) {
	cart := Cart{Lines: []CartLine{{ProductID: uuid.New(), Quantity: 1, UnitPrice: dec("50")}}}
	priced, err := cart.Price(stdPolicy())
	require.NoError(t, err)
	txn, err := NewTransaction(priced, nil, nil, PaymentCard, "")
	require.NoError(t, err)

	require.NoError(t, txn.Refund())
	assert.Equal(t, PaymentRefunded, txn.PaymentStatus)
	assert.Error(t, txn.Refund(), "cannot refund twice")
}
