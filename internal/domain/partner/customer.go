package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MembershipTier is the customer's loyalty grade, derived from the
// cumulative purchase total
type MembershipTier string

const (
	TierRegular  MembershipTier = "regular"
	TierSilver   MembershipTier = "silver"
	TierGold     MembershipTier = "gold"
	TierPlatinum MembershipTier = "platinum"
)

var (
	TierSilverFloor   = decimal.NewFromInt(10000)
	TierGoldFloor     = decimal.NewFromInt(50000)
	TierPlatinumFloor = decimal.NewFromInt(100000)
)

// LoyaltyRatio is the amount of spend that earns one loyalty point
var LoyaltyRatio = decimal.NewFromInt(10)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)

// Customer is the aggregate root of the partner context. Phone is the
// natural identity used by the billing flow.
type Customer struct {
	shared.BaseEntity
	Name           string
	Phone          string
	Email          string
	Address        string
	DateOfBirth    *time.Time
	LoyaltyPoints  int
	TotalPurchases decimal.Decimal
	MemberSince    time.Time
	IsActive       bool
}

// NewCustomer creates an active customer with zero loyalty history
func NewCustomer(name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if err := validatePhone(phone); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Customer{
		BaseEntity:     shared.NewBaseEntity(),
		Name:           name,
		Phone:          phone,
		TotalPurchases: decimal.Zero,
		MemberSince:    now,
		IsActive:       true,
	}, nil
}

// Update changes contact details
func (c *Customer) Update(name, phone, email, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if err := validatePhone(phone); err != nil {
		return err
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.Touch()
	return nil
}

// RecordPurchase adds a completed sale to the customer's history:
// the total is accumulated and loyalty points accrue at one point per
// LoyaltyRatio of spend, floored.
func (c *Customer) RecordPurchase(total decimal.Decimal) error {
	if total.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Purchase total cannot be negative")
	}
	c.TotalPurchases = c.TotalPurchases.Add(total)
	c.LoyaltyPoints += int(total.Div(LoyaltyRatio).Floor().IntPart())
	c.Touch()
	return nil
}

// RedeemPoints deducts loyalty points
func (c *Customer) RedeemPoints(points int) error {
	if points <= 0 {
		return shared.NewDomainError("INVALID_POINTS", "Points to redeem must be positive")
	}
	if points > c.LoyaltyPoints {
		return shared.NewDomainError("INSUFFICIENT_POINTS", "Not enough loyalty points")
	}
	c.LoyaltyPoints -= points
	c.Touch()
	return nil
}

// Tier returns the membership tier for the current purchase total
func (c *Customer) Tier() MembershipTier {
	switch {
	case c.TotalPurchases.GreaterThanOrEqual(TierPlatinumFloor):
		return TierPlatinum
	case c.TotalPurchases.GreaterThanOrEqual(TierGoldFloor):
		return TierGold
	case c.TotalPurchases.GreaterThanOrEqual(TierSilverFloor):
		return TierSilver
	default:
		return TierRegular
	}
}

// Deactivate soft-deletes the customer
func (c *Customer) Deactivate() {
	c.IsActive = false
	c.Touch()
}

// Activate restores a soft-deleted customer
func (c *Customer) Activate() {
	c.IsActive = true
	c.Touch()
}

func validatePhone(phone string) error {
	if phone == "" {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	if !phonePattern.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone number format is invalid")
	}
	return nil
}
