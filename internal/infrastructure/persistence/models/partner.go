package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Phone          string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Email          string          `gorm:"type:varchar(200)"`
	Address        string          `gorm:"type:text"`
	DateOfBirth    *time.Time      `gorm:"type:date"`
	LoyaltyPoints  int             `gorm:"not null;default:0"`
	TotalPurchases decimal.Decimal `gorm:"type:decimal(15,4);not null;default:0"`
	MemberSince    time.Time       `gorm:"not null"`
	IsActive       bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		Address:        m.Address,
		DateOfBirth:    m.DateOfBirth,
		LoyaltyPoints:  m.LoyaltyPoints,
		TotalPurchases: m.TotalPurchases,
		MemberSince:    m.MemberSince,
		IsActive:       m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.DateOfBirth = c.DateOfBirth
	m.LoyaltyPoints = c.LoyaltyPoints
	m.TotalPurchases = c.TotalPurchases
	m.MemberSince = c.MemberSince
	m.IsActive = c.IsActive
}

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	BaseModel
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string `gorm:"type:varchar(200);not null;index"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Phone         string `gorm:"type:varchar(20)"`
	Email         string `gorm:"type:varchar(200)"`
	Address       string `gorm:"type:text"`
	City          string `gorm:"type:varchar(100)"`
	State         string `gorm:"type:varchar(100)"`
	Pincode       string `gorm:"type:varchar(10)"`
	GSTNumber     string `gorm:"type:varchar(20)"`
	TaxID         string `gorm:"type:varchar(50)"`
	PaymentTerms  string `gorm:"type:varchar(100)"`
	// Money scans the bare amount; currency is fixed at INR on load.
	CreditLimit       valueobject.Money `gorm:"type:decimal(12,4);not null;default:0"`
	OutstandingAmount valueobject.Money `gorm:"type:decimal(12,4);not null;default:0"`
	IsActive          bool              `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseEntity:        m.BaseModel.ToDomain(),
		Code:              m.Code,
		Name:              m.Name,
		ContactPerson:     m.ContactPerson,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		City:              m.City,
		State:             m.State,
		Pincode:           m.Pincode,
		GSTNumber:         m.GSTNumber,
		TaxID:             m.TaxID,
		PaymentTerms:      m.PaymentTerms,
		CreditLimit:       m.CreditLimit,
		OutstandingAmount: m.OutstandingAmount,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Code = s.Code
	m.Name = s.Name
	m.ContactPerson = s.ContactPerson
	m.Phone = s.Phone
	m.Email = s.Email
	m.Address = s.Address
	m.City = s.City
	m.State = s.State
	m.Pincode = s.Pincode
	m.GSTNumber = s.GSTNumber
	m.TaxID = s.TaxID
	m.PaymentTerms = s.PaymentTerms
	m.CreditLimit = s.CreditLimit
	m.OutstandingAmount = s.OutstandingAmount
	m.IsActive = s.IsActive
}
