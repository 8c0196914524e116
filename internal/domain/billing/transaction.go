package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the customer paid
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

// ValidPaymentMethod reports whether the method is accepted at the till
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

// PaymentStatus is the settlement state of the sale
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentRefunded  PaymentStatus = "refunded"
)

// TransactionItem is one persisted sale line. UnitPrice is the
// discounted per-unit price; OriginalPrice the price before discount.
type TransactionItem struct {
	ID             uuid.UUID
	TransactionID  uuid.UUID
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

// Transaction is a persisted sale header. The aggregates equal the
// sum of the item amounts by construction.
type Transaction struct {
	shared.BaseEntity
	Number          string
	CustomerID      *uuid.UUID
	EmployeeID      *uuid.UUID
	TransactionDate time.Time
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Notes           string
	Items           []TransactionItem
}

// NewTransaction builds a completed sale from a priced cart. Lines
// that rounded to a zero total are dropped here; the header keeps the
// full-cart aggregates.
func NewTransaction(priced *PricedCart, customerID, employeeID *uuid.UUID, method PaymentMethod, notes string) (*Transaction, error) {
	if !ValidPaymentMethod(method) {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be cash, card or upi")
	}

	base := shared.NewBaseEntity()
	txn := &Transaction{
		BaseEntity:      base,
		Number:          GenerateTransactionNumber(base.CreatedAt),
		CustomerID:      customerID,
		EmployeeID:      employeeID,
		TransactionDate: base.CreatedAt,
		Subtotal:        priced.Subtotal,
		DiscountAmount:  priced.TotalDiscount,
		TaxAmount:       priced.TotalTax,
		TotalAmount:     priced.TotalAmount,
		PaymentMethod:   method,
		PaymentStatus:   PaymentCompleted,
		Notes:           notes,
	}

	for _, line := range priced.Lines {
		if line.Zero() {
			continue
		}
		txn.Items = append(txn.Items, TransactionItem{
			ID:             uuid.New(),
			TransactionID:  base.ID,
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			OriginalPrice:  line.OriginalPrice,
			DiscountRate:   line.DiscountRate,
			DiscountAmount: line.DiscountAmount,
			TaxRate:        line.TaxRate,
			TaxAmount:      line.TaxAmount,
			LineTotal:      line.LineTotal,
		})
	}

	return txn, nil
}

// GenerateTransactionNumber builds a unique receipt number from the
// sale timestamp plus a random suffix, e.g. TXN-20260301120000-1A2B3C4D
func GenerateTransactionNumber(at time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("TXN-%s-%s", at.Format("20060102150405"), suffix)
}

// Refund marks the sale refunded. Only completed sales can be refunded.
func (t *Transaction) Refund() error {
	if t.PaymentStatus != PaymentCompleted {
		return shared.ErrInvalidState
	}
	t.PaymentStatus = PaymentRefunded
	t.Touch()
	return nil
}
