package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/billing"
)

// TransactionModel is the persistence model for the Transaction aggregate.
type TransactionModel struct {
	BaseModel
	Number          string                 `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID      *uuid.UUID             `gorm:"type:uuid;index"`
	EmployeeID      *uuid.UUID             `gorm:"type:uuid;index"`
	TransactionDate time.Time              `gorm:"not null;index"`
	Subtotal        decimal.Decimal        `gorm:"type:decimal(15,4);not null;default:0"`
	DiscountAmount  decimal.Decimal        `gorm:"type:decimal(15,4);not null;default:0"`
	TaxAmount       decimal.Decimal        `gorm:"type:decimal(15,4);not null;default:0"`
	TotalAmount     decimal.Decimal        `gorm:"type:decimal(15,4);not null;default:0"`
	PaymentMethod   billing.PaymentMethod  `gorm:"type:varchar(20);not null;default:'cash'"`
	PaymentStatus   billing.PaymentStatus  `gorm:"type:varchar(20);not null;default:'completed'"`
	Notes           string                 `gorm:"type:text"`
	Items           []TransactionItemModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction aggregate.
func (m *TransactionModel) ToDomain() *billing.Transaction {
	items := make([]billing.TransactionItem, len(m.Items))
	for i := range m.Items {
		items[i] = m.Items[i].ToDomain()
	}
	return &billing.Transaction{
		BaseEntity:      m.BaseModel.ToDomain(),
		Number:          m.Number,
		CustomerID:      m.CustomerID,
		EmployeeID:      m.EmployeeID,
		TransactionDate: m.TransactionDate,
		Subtotal:        m.Subtotal,
		DiscountAmount:  m.DiscountAmount,
		TaxAmount:       m.TaxAmount,
		TotalAmount:     m.TotalAmount,
		PaymentMethod:   m.PaymentMethod,
		PaymentStatus:   m.PaymentStatus,
		Notes:           m.Notes,
		Items:           items,
	}
}

// FromDomain populates the persistence model from a domain Transaction aggregate.
func (m *TransactionModel) FromDomain(t *billing.Transaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.Number = t.Number
	m.CustomerID = t.CustomerID
	m.EmployeeID = t.EmployeeID
	m.TransactionDate = t.TransactionDate
	m.Subtotal = t.Subtotal
	m.DiscountAmount = t.DiscountAmount
	m.TaxAmount = t.TaxAmount
	m.TotalAmount = t.TotalAmount
	m.PaymentMethod = t.PaymentMethod
	m.PaymentStatus = t.PaymentStatus
	m.Notes = t.Notes
	m.Items = make([]TransactionItemModel, len(t.Items))
	for i := range t.Items {
		m.Items[i].FromDomain(&t.Items[i])
	}
}

// TransactionItemModel is the persistence model for a transaction line.
type TransactionItemModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	TransactionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       int             `gorm:"not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	OriginalPrice  decimal.Decimal `gorm:"type:decimal(12,4);not null"`
	DiscountRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	LineTotal      decimal.Decimal `gorm:"type:decimal(12,4);not null"`
}

// TableName returns the table name for GORM
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}

// ToDomain converts the persistence model to a domain TransactionItem.
func (m *TransactionItemModel) ToDomain() billing.TransactionItem {
	return billing.TransactionItem{
		ID:             m.ID,
		TransactionID:  m.TransactionID,
		ProductID:      m.ProductID,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		OriginalPrice:  m.OriginalPrice,
		DiscountRate:   m.DiscountRate,
		DiscountAmount: m.DiscountAmount,
		TaxRate:        m.TaxRate,
		TaxAmount:      m.TaxAmount,
		LineTotal:      m.LineTotal,
	}
}

// FromDomain populates the persistence model from a domain TransactionItem.
func (m *TransactionItemModel) FromDomain(it *billing.TransactionItem) {
	m.ID = it.ID
	m.TransactionID = it.TransactionID
	m.ProductID = it.ProductID
	m.Quantity = it.Quantity
	m.UnitPrice = it.UnitPrice
	m.OriginalPrice = it.OriginalPrice
	m.DiscountRate = it.DiscountRate
	m.DiscountAmount = it.DiscountAmount
	m.TaxRate = it.TaxRate
	m.TaxAmount = it.TaxAmount
	m.LineTotal = it.LineTotal
}
