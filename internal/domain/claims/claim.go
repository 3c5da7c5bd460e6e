// Package claims holds insurance claims and the monthly claims report.
package claims

import (
	"context"
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Common claim statuses. Status is free text.
const (
	ClaimStatusOpen     = "open"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
	ClaimStatusSettled  = "settled"
)

// Claim is a request for payment under a policy.
// Amount is stored in LRD and may be unknown when the claim is filed.
type Claim struct {
	shared.BaseEntity
	PolicyID    *uint
	ClaimNumber string
	Amount      decimal.NullDecimal
	Status      string
	FiledDate   *valueobject.Date
	SettledDate *valueobject.Date
}

// NewClaim creates a new claim
func NewClaim(claimNumber string) (*Claim, error) {
	c := &Claim{
		ClaimNumber: strings.TrimSpace(claimNumber),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks required fields
func (c *Claim) Validate() error {
	if c.ClaimNumber == "" {
		return shared.InvalidInput("Claim number cannot be empty")
	}
	return nil
}

// SetClaimNumber replaces the claim number. Surrounding whitespace is dropped.
func (c *Claim) SetClaimNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.InvalidInput("Claim number cannot be empty")
	}
	c.ClaimNumber = number
	return nil
}

// SetAmount sets a known amount
func (c *Claim) SetAmount(amount decimal.Decimal) {
	c.Amount = decimal.NewNullDecimal(amount)
}

// ClearAmount marks the amount as unknown
func (c *Claim) ClearAmount() {
	c.Amount = decimal.NullDecimal{}
}

// AmountOrZero returns the amount, treating an unknown amount as zero
func (c *Claim) AmountOrZero() decimal.Decimal {
	if !c.Amount.Valid {
		return decimal.Zero
	}
	return c.Amount.Decimal
}

// IsFiled reports whether the claim carries a filed date
func (c *Claim) IsFiled() bool {
	return c.FiledDate != nil && !c.FiledDate.IsZero()
}

// ClaimRepository defines the interface for claim persistence
type ClaimRepository interface {
	shared.Repository[Claim]

	// ExistsByClaimNumber checks whether another claim (id != excludeID) uses the number
	ExistsByClaimNumber(ctx context.Context, claimNumber string, excludeID uint) (bool, error)

	// FindFiled returns every claim with a filed date
	FindFiled(ctx context.Context) ([]Claim, error)
}
