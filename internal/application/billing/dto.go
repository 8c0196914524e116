package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/billing"
)

// CheckoutItemRequest is one line of a sale. When DiscountRate is
// omitted the product's own discount percentage applies.
type CheckoutItemRequest struct {
	ProductID    uuid.UUID        `json:"product_id" binding:"required"`
	Quantity     int              `json:"quantity" binding:"required,gt=0"`
	DiscountRate *decimal.Decimal `json:"discount_rate"`
}

// CheckoutRequest represents a full sale submitted from the till
type CheckoutRequest struct {
	CustomerID    *uuid.UUID            `json:"customer_id"`
	EmployeeID    *uuid.UUID            `json:"employee_id"`
	PaymentMethod string                `json:"payment_method" binding:"required,oneof=cash card upi"`
	Notes         string                `json:"notes"`
	Items         []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

// TransactionListFilter represents filtering options for listing transactions
type TransactionListFilter struct {
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	From          *time.Time `form:"from"`
	To            *time.Time `form:"to"`
	CustomerID    *uuid.UUID `form:"customer_id"`
	EmployeeID    *uuid.UUID `form:"employee_id"`
	PaymentMethod string     `form:"payment_method"`
	PaymentStatus string     `form:"payment_status"`
	Search        string     `form:"search"`
}

// StockShortfall reports a sold line whose stock decrement was skipped
// because the product did not have enough on hand.
type StockShortfall struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	Requested   int       `json:"requested"`
	InStock     int       `json:"in_stock"`
}

// TransactionItemResponse represents one line of a receipt
type TransactionItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	DiscountRate   decimal.Decimal `json:"discount_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	LineTotal      decimal.Decimal `json:"line_total"`
}

// TransactionResponse represents a receipt in API responses
type TransactionResponse struct {
	ID              uuid.UUID                 `json:"id"`
	Number          string                    `json:"number"`
	CustomerID      *uuid.UUID                `json:"customer_id"`
	EmployeeID      *uuid.UUID                `json:"employee_id"`
	TransactionDate time.Time                 `json:"transaction_date"`
	Subtotal        decimal.Decimal           `json:"subtotal"`
	DiscountAmount  decimal.Decimal           `json:"discount_amount"`
	TaxAmount       decimal.Decimal           `json:"tax_amount"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	PaymentMethod   string                    `json:"payment_method"`
	PaymentStatus   string                    `json:"payment_status"`
	Notes           string                    `json:"notes"`
	Items           []TransactionItemResponse `json:"items"`
	StockShortfalls []StockShortfall          `json:"stock_shortfalls,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse
func ToTransactionResponse(t *billing.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = TransactionItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			OriginalPrice:  it.OriginalPrice,
			DiscountRate:   it.DiscountRate,
			DiscountAmount: it.DiscountAmount,
			TaxRate:        it.TaxRate,
			TaxAmount:      it.TaxAmount,
			LineTotal:      it.LineTotal,
		}
	}
	return TransactionResponse{
		ID:              t.ID,
		Number:          t.Number,
		CustomerID:      t.CustomerID,
		EmployeeID:      t.EmployeeID,
		TransactionDate: t.TransactionDate,
		Subtotal:        t.Subtotal,
		DiscountAmount:  t.DiscountAmount,
		TaxAmount:       t.TaxAmount,
		TotalAmount:     t.TotalAmount,
		PaymentMethod:   string(t.PaymentMethod),
		PaymentStatus:   string(t.PaymentStatus),
		Notes:           t.Notes,
		Items:           items,
		CreatedAt:       t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain Transactions
func ToTransactionResponses(transactions []billing.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}
