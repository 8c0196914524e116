package partner

import (
	"fmt"
	"strings"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// Supplier is a vendor that products are purchased from. Credit
// amounts are Money so purchases and payments cannot mix currencies.
type Supplier struct {
	shared.BaseEntity
	Code              string
	Name              string
	ContactPerson     string
	Phone             string
	Email             string
	Address           string
	City              string
	State             string
	Pincode           string
	GSTNumber         string
	TaxID             string
	PaymentTerms      string
	CreditLimit       valueobject.Money
	OutstandingAmount valueobject.Money
	IsActive          bool
}

// NewSupplier creates an active supplier
func NewSupplier(code, name, contactPerson, phone string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_CODE", "Supplier code cannot be empty")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	return &Supplier{
		BaseEntity:        shared.NewBaseEntity(),
		Code:              strings.ToUpper(code),
		Name:              name,
		ContactPerson:     contactPerson,
		Phone:             phone,
		CreditLimit:       valueobject.ZeroINR(),
		OutstandingAmount: valueobject.ZeroINR(),
		IsActive:          true,
	}, nil
}

// GenerateSupplierCode formats a sequential supplier code, e.g. SUP00001
func GenerateSupplierCode(seq int64) string {
	return fmt.Sprintf("SUP%05d", seq)
}

// Update changes the supplier's contact and address details
func (s *Supplier) Update(name, contactPerson, phone, email, address, city, state, pincode string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.City = city
	s.State = state
	s.Pincode = pincode
	s.Touch()
	return nil
}

// UpdateTerms changes tax identifiers, payment terms and credit limit
func (s *Supplier) UpdateTerms(gstNumber, taxID, paymentTerms string, creditLimit valueobject.Money) error {
	if creditLimit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}
	s.GSTNumber = gstNumber
	s.TaxID = taxID
	s.PaymentTerms = paymentTerms
	s.CreditLimit = creditLimit
	s.Touch()
	return nil
}

// RecordPurchase adds a credit purchase to the outstanding balance.
// A positive credit limit is enforced; a zero limit means unlimited.
func (s *Supplier) RecordPurchase(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Purchase amount must be positive")
	}
	updated, err := s.OutstandingAmount.Add(amount)
	if err != nil {
		return shared.NewDomainError("CURRENCY_MISMATCH", err.Error())
	}
	if s.CreditLimit.IsPositive() {
		over, err := updated.GreaterThan(s.CreditLimit)
		if err != nil {
			return shared.NewDomainError("CURRENCY_MISMATCH", err.Error())
		}
		if over {
			return shared.NewDomainError("CREDIT_LIMIT_EXCEEDED", "Purchase would exceed the supplier credit limit")
		}
	}
	s.OutstandingAmount = updated
	s.Touch()
	return nil
}

// RecordPayment settles part of the outstanding balance
func (s *Supplier) RecordPayment(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	over, err := amount.GreaterThan(s.OutstandingAmount)
	if err != nil {
		return shared.NewDomainError("CURRENCY_MISMATCH", err.Error())
	}
	if over {
		return shared.NewDomainError("OVERPAYMENT", "Payment exceeds the outstanding amount")
	}
	updated, err := s.OutstandingAmount.Subtract(amount)
	if err != nil {
		return shared.NewDomainError("CURRENCY_MISMATCH", err.Error())
	}
	s.OutstandingAmount = updated
	s.Touch()
	return nil
}

// Deactivate soft-deletes the supplier
func (s *Supplier) Deactivate() {
	s.IsActive = false
	s.Touch()
}

// Activate restores a soft-deleted supplier
func (s *Supplier) Activate() {
	s.IsActive = true
	s.Touch()
}
