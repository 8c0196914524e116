package billing

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// moneyScale matches the DECIMAL(15,4) columns of the billing tables
const moneyScale = 4

// CartLine is one product/quantity/price entry submitted for checkout
type CartLine struct {
	ProductID    uuid.UUID
	Quantity     int
	UnitPrice    decimal.Decimal
	DiscountRate decimal.Decimal
}

// Cart is the full set of lines for one sale
type Cart struct {
	Lines []CartLine
}

// Validate rejects the whole cart if it is empty or any line has a
// non-positive quantity or unit price
func (c Cart) Validate() error {
	if len(c.Lines) == 0 {
		return shared.ErrEmptyCart
	}
	for _, line := range c.Lines {
		if line.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_CART_LINE", "Cart line is missing a product")
		}
		if line.Quantity <= 0 {
			return shared.NewDomainError("INVALID_CART_LINE", "Cart line quantity must be positive")
		}
		if !line.UnitPrice.IsPositive() {
			return shared.NewDomainError("INVALID_CART_LINE", "Cart line unit price must be positive")
		}
		if line.DiscountRate.IsNegative() || line.DiscountRate.GreaterThan(hundred) {
			return shared.NewDomainError("INVALID_CART_LINE", "Cart line discount rate must be between 0 and 100")
		}
	}
	return nil
}

// PricedLine is a cart line with all per-line amounts computed.
// UnitPrice is the discounted per-unit price; OriginalPrice the price
// before the line discount. Amounts are rounded half-up to 4 places.
type PricedLine struct {
	ProductID      uuid.UUID
	Quantity       int
	UnitPrice      decimal.Decimal
	OriginalPrice  decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxRate        decimal.Decimal
	TaxAmount      decimal.Decimal
	LineTotal      decimal.Decimal
}

// Zero reports whether the line rounded away to nothing. Such lines
// are not persisted but still contribute to cart totals.
func (l PricedLine) Zero() bool {
	return !l.LineTotal.IsPositive()
}

// PricedCart carries the per-line results and the header aggregates.
// By construction the header equals the sum of the line amounts.
type PricedCart struct {
	Lines         []PricedLine
	Subtotal      decimal.Decimal
	ItemDiscounts decimal.Decimal
	OrderDiscount decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	TotalAmount   decimal.Decimal
}

// PricingPolicy holds the configured constants the checkout flow
// prices against
type PricingPolicy struct {
	TaxRate           decimal.Decimal
	DiscountThreshold decimal.Decimal
	DiscountRate      decimal.Decimal
}

// PriceLine computes the per-line amounts: the line discount comes off
// the unit price first, tax applies to the discounted amount.
func PriceLine(line CartLine, taxRate decimal.Decimal) PricedLine {
	discountPerUnit := line.UnitPrice.Mul(line.DiscountRate).Div(hundred)
	qty := decimal.NewFromInt(int64(line.Quantity))

	discountAmount := discountPerUnit.Mul(qty).Round(moneyScale)
	discountedUnit := line.UnitPrice.Sub(discountPerUnit).Round(moneyScale)
	taxable := discountedUnit.Mul(qty)
	taxAmount := taxable.Mul(taxRate).Div(hundred).Round(moneyScale)
	lineTotal := taxable.Add(taxAmount).Round(moneyScale)

	return PricedLine{
		ProductID:      line.ProductID,
		Quantity:       line.Quantity,
		UnitPrice:      discountedUnit,
		OriginalPrice:  line.UnitPrice.Round(moneyScale),
		DiscountRate:   line.DiscountRate.Round(2),
		DiscountAmount: discountAmount,
		TaxRate:        taxRate,
		TaxAmount:      taxAmount,
		LineTotal:      lineTotal,
	}
}

// Price validates the cart and computes every line plus the header
// aggregates. The order-level discount applies only when the subtotal
// net of line discounts reaches the configured threshold.
func (c Cart) Price(policy PricingPolicy) (*PricedCart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	priced := &PricedCart{
		Subtotal:      decimal.Zero,
		ItemDiscounts: decimal.Zero,
		TotalTax:      decimal.Zero,
	}
	for _, line := range c.Lines {
		pl := PriceLine(line, policy.TaxRate)
		priced.Lines = append(priced.Lines, pl)
		priced.Subtotal = priced.Subtotal.Add(pl.OriginalPrice.Mul(decimal.NewFromInt(int64(pl.Quantity))))
		priced.ItemDiscounts = priced.ItemDiscounts.Add(pl.DiscountAmount)
		priced.TotalTax = priced.TotalTax.Add(pl.TaxAmount)
	}
	priced.Subtotal = priced.Subtotal.Round(moneyScale)

	priced.OrderDiscount = decimal.Zero
	effectiveSubtotal := priced.Subtotal.Sub(priced.ItemDiscounts)
	if effectiveSubtotal.GreaterThanOrEqual(policy.DiscountThreshold) {
		priced.OrderDiscount = effectiveSubtotal.Mul(policy.DiscountRate).Round(moneyScale)
	}

	priced.TotalDiscount = priced.ItemDiscounts.Add(priced.OrderDiscount)
	priced.TotalAmount = priced.Subtotal.Sub(priced.TotalDiscount).Add(priced.TotalTax).Round(moneyScale)

	if priced.TotalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Computed total cannot be negative")
	}
	return priced, nil
}
