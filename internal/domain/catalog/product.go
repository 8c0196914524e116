package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultUnit is the stock-keeping unit used when none is specified
const DefaultUnit = "piece"

// Product is the aggregate root of the catalog context. Price and
// rate fields are kept as exact decimals; stock levels are integers.
type Product struct {
	shared.BaseEntity
	Code               string
	Barcode            string
	Name               string
	Description        string
	CategoryID         *uuid.UUID
	SupplierID         *uuid.UUID
	Brand              string
	Unit               string
	UnitPrice          decimal.Decimal
	CostPrice          decimal.Decimal
	MRP                decimal.Decimal
	DiscountPercentage decimal.Decimal
	TaxRate            decimal.Decimal
	QuantityInStock    int
	MinStockLevel      int
	MaxStockLevel      int
	ReorderLevel       int
	ExpiryDate         *time.Time
	ManufacturingDate  *time.Time
	BatchNumber        string
	RackLocation       string
	IsActive           bool
}

// NewProduct creates an active product with defaults applied
func NewProduct(code, name string, unitPrice decimal.Decimal, quantityInStock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_CODE", "Product code cannot be empty")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if quantityInStock < 0 {
		return nil, shared.ErrInsufficientStock
	}

	return &Product{
		BaseEntity:         shared.NewBaseEntity(),
		Code:               strings.ToUpper(code),
		Name:               name,
		Unit:               DefaultUnit,
		UnitPrice:          unitPrice,
		CostPrice:          decimal.Zero,
		MRP:                decimal.Zero,
		DiscountPercentage: decimal.Zero,
		TaxRate:            decimal.NewFromInt(18),
		QuantityInStock:    quantityInStock,
		MaxStockLevel:      1000,
		IsActive:           true,
	}, nil
}

// GenerateProductCode formats a sequential product code, e.g. PRD00001
func GenerateProductCode(seq int64) string {
	return fmt.Sprintf("PRD%05d", seq)
}

// Update changes the product's descriptive fields
func (p *Product) Update(name, description, brand, unit string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if unit == "" {
		unit = DefaultUnit
	}

	p.Name = name
	p.Description = description
	p.Brand = brand
	p.Unit = unit
	p.Touch()
	return nil
}

// UpdatePricing changes price and rate fields
func (p *Product) UpdatePricing(unitPrice, costPrice, mrp, discountPercentage, taxRate decimal.Decimal) error {
	if unitPrice.IsNegative() || costPrice.IsNegative() || mrp.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount percentage must be between 0 and 100")
	}
	if taxRate.IsNegative() {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}

	p.UnitPrice = unitPrice
	p.CostPrice = costPrice
	p.MRP = mrp
	p.DiscountPercentage = discountPercentage
	p.TaxRate = taxRate
	p.Touch()
	return nil
}

// UpdateStockLevels changes min/max/reorder thresholds
func (p *Product) UpdateStockLevels(minLevel, maxLevel, reorderLevel int) error {
	if minLevel < 0 || maxLevel < 0 || reorderLevel < 0 {
		return shared.NewDomainError("INVALID_STOCK_LEVEL", "Stock levels cannot be negative")
	}
	if maxLevel > 0 && minLevel > maxLevel {
		return shared.NewDomainError("INVALID_STOCK_LEVEL", "Minimum stock level cannot exceed maximum")
	}

	p.MinStockLevel = minLevel
	p.MaxStockLevel = maxLevel
	p.ReorderLevel = reorderLevel
	p.Touch()
	return nil
}

// AdjustStock applies a signed stock delta. The quantity on hand
// must not go negative.
func (p *Product) AdjustStock(delta int) error {
	next := p.QuantityInStock + delta
	if next < 0 {
		return shared.ErrInsufficientStock
	}
	p.QuantityInStock = next
	p.Touch()
	return nil
}

// SetStock replaces the quantity on hand
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.ErrInsufficientStock
	}
	p.QuantityInStock = quantity
	p.Touch()
	return nil
}

// Deactivate soft-deletes the product
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}

// Activate restores a soft-deleted product
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// HasSufficientStock reports whether the requested quantity can be sold
func (p *Product) HasSufficientStock(quantity int) bool {
	return quantity > 0 && p.QuantityInStock >= quantity
}

// IsLowStock reports whether the quantity on hand is at or below the
// given threshold
func (p *Product) IsLowStock(threshold int) bool {
	return p.QuantityInStock <= threshold
}

// NeedsReorder reports whether stock has fallen to the reorder level
func (p *Product) NeedsReorder() bool {
	return p.ReorderLevel > 0 && p.QuantityInStock <= p.ReorderLevel
}

// IsExpired reports whether the product is past its expiry date
func (p *Product) IsExpired(now time.Time) bool {
	return p.ExpiryDate != nil && p.ExpiryDate.Before(now)
}

// ExpiresWithin reports whether the product expires within the given
// number of days from now. Products without an expiry date never match.
func (p *Product) ExpiresWithin(now time.Time, days int) bool {
	if p.ExpiryDate == nil {
		return false
	}
	cutoff := now.AddDate(0, 0, days)
	return !p.ExpiryDate.Before(now) && !p.ExpiryDate.After(cutoff)
}

// DiscountedUnitPrice returns the unit price after the product's own
// percentage discount, without rounding
func (p *Product) DiscountedUnitPrice() decimal.Decimal {
	discount := p.UnitPrice.Mul(p.DiscountPercentage).Div(decimal.NewFromInt(100))
	return p.UnitPrice.Sub(discount)
}

// StockValue returns quantity on hand times cost price
func (p *Product) StockValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.QuantityInStock)))
}
