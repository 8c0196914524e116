package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesSummary aggregates the completed sales of one day
type SalesSummary struct {
	Date             string          `json:"date"`
	TransactionCount int             `json:"transaction_count"`
	RefundedCount    int             `json:"refunded_count"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TaxAmount        decimal.Decimal `json:"tax_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// TopProduct is one row of the top-selling products report
type TopProduct struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductCode  string          `json:"product_code"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// ValuationRow is one product's contribution to the stock valuation
type ValuationRow struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostValue   decimal.Decimal `json:"cost_value"`
	RetailValue decimal.Decimal `json:"retail_value"`
}

// StockValuation is the on-hand stock valued at cost and at retail
type StockValuation struct {
	Rows             []ValuationRow  `json:"rows"`
	TotalCostValue   decimal.Decimal `json:"total_cost_value"`
	TotalRetailValue decimal.Decimal `json:"total_retail_value"`
}

// StockAlertRow is one row of the low-stock or expiring report
type StockAlertRow struct {
	ProductID   uuid.UUID  `json:"product_id"`
	ProductCode string     `json:"product_code"`
	ProductName string     `json:"product_name"`
	Quantity    int        `json:"quantity"`
	MinStock    int        `json:"min_stock"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}
