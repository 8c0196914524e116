package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/partner"
)

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Phone       string     `json:"phone" binding:"required,min=7,max=20"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	Address     string     `json:"address" binding:"max=500"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Phone       *string    `json:"phone" binding:"omitempty,min=7,max=20"`
	Email       *string    `json:"email" binding:"omitempty,email,max=200"`
	Address     *string    `json:"address" binding:"omitempty,max=500"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// RedeemPointsRequest represents a loyalty point redemption
type RedeemPointsRequest struct {
	Points int `json:"points" binding:"required,gt=0"`
}

// CustomerListFilter represents filtering options for listing customers
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Tier     string `form:"tier"`
	// Soft-deleted rows are hidden unless explicitly requested.
	IncludeInactive bool `form:"include_inactive"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	DateOfBirth    *time.Time      `json:"date_of_birth"`
	LoyaltyPoints  int             `json:"loyalty_points"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	MembershipTier string          `json:"membership_tier"`
	MemberSince    time.Time       `json:"member_since"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToCustomerResponse converts a domain Customer to a CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		DateOfBirth:    c.DateOfBirth,
		LoyaltyPoints:  c.LoyaltyPoints,
		TotalPurchases: c.TotalPurchases,
		MembershipTier: string(c.Tier()),
		MemberSince:    c.MemberSince,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain Customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// CreateSupplierRequest represents a request to register a supplier
type CreateSupplierRequest struct {
	Code          string `json:"code" binding:"max=50"`
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone         string `json:"phone" binding:"max=20"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
	City          string `json:"city" binding:"max=100"`
	State         string `json:"state" binding:"max=100"`
	Pincode       string `json:"pincode" binding:"max=10"`
	GSTNumber     string `json:"gst_number" binding:"max=20"`
	TaxID         string `json:"tax_id" binding:"max=50"`
	PaymentTerms  string `json:"payment_terms" binding:"max=100"`
}

// UpdateSupplierRequest represents a request to update a supplier
type UpdateSupplierRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactPerson *string          `json:"contact_person" binding:"omitempty,max=100"`
	Phone         *string          `json:"phone" binding:"omitempty,max=20"`
	Email         *string          `json:"email" binding:"omitempty,email,max=200"`
	Address       *string          `json:"address" binding:"omitempty,max=500"`
	City          *string          `json:"city" binding:"omitempty,max=100"`
	State         *string          `json:"state" binding:"omitempty,max=100"`
	Pincode       *string          `json:"pincode" binding:"omitempty,max=10"`
	GSTNumber     *string          `json:"gst_number" binding:"omitempty,max=20"`
	TaxID         *string          `json:"tax_id" binding:"omitempty,max=50"`
	PaymentTerms  *string          `json:"payment_terms" binding:"omitempty,max=100"`
	CreditLimit   *decimal.Decimal `json:"credit_limit"`
}

// SupplierListFilter represents filtering options for listing suppliers
type SupplierListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	City     string `form:"city"`
	State    string `form:"state"`
	// Soft-deleted rows are hidden unless explicitly requested.
	IncludeInactive bool `form:"include_inactive"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID                uuid.UUID       `json:"id"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	ContactPerson     string          `json:"contact_person"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	Pincode           string          `json:"pincode"`
	GSTNumber         string          `json:"gst_number"`
	TaxID             string          `json:"tax_id"`
	PaymentTerms      string          `json:"payment_terms"`
	CreditLimit       decimal.Decimal `json:"credit_limit"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToSupplierResponse converts a domain Supplier to a SupplierResponse
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                s.ID,
		Code:              s.Code,
		Name:              s.Name,
		ContactPerson:     s.ContactPerson,
		Phone:             s.Phone,
		Email:             s.Email,
		Address:           s.Address,
		City:              s.City,
		State:             s.State,
		Pincode:           s.Pincode,
		GSTNumber:         s.GSTNumber,
		TaxID:             s.TaxID,
		PaymentTerms:      s.PaymentTerms,
		CreditLimit:       s.CreditLimit.Amount(),
		OutstandingAmount: s.OutstandingAmount.Amount(),
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain Suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
