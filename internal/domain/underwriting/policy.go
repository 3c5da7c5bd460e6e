package underwriting

import (
	"context"
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
)

// Common policy statuses. Status is free text; these are the values the
// back office uses.
const (
	PolicyStatusActive    = "active"
	PolicyStatusPending   = "pending"
	PolicyStatusExpired   = "expired"
	PolicyStatusCancelled = "cancelled"
)

// Policy is an insurance contract between a client and the company.
// ClientID and ProductID are not checked for existence.
type Policy struct {
	shared.BaseEntity
	PolicyNumber string
	ClientID     *uint
	ProductID    *uint
	StartDate    *valueobject.Date
	EndDate      *valueobject.Date
	Status       string
}

// NewPolicy creates a new policy
func NewPolicy(policyNumber string) (*Policy, error) {
	p := &Policy{
		PolicyNumber: strings.TrimSpace(policyNumber),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks required fields
func (p *Policy) Validate() error {
	if p.PolicyNumber == "" {
		return shared.InvalidInput("Policy number cannot be empty")
	}
	return nil
}

// SetPolicyNumber replaces the policy number. Surrounding whitespace is dropped.
func (p *Policy) SetPolicyNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return shared.InvalidInput("Policy number cannot be empty")
	}
	p.PolicyNumber = number
	return nil
}

// IsActiveOn reports whether the policy covers the given date
func (p *Policy) IsActiveOn(d valueobject.Date) bool {
	if p.StartDate != nil && d.Before(p.StartDate.Time) {
		return false
	}
	if p.EndDate != nil && d.After(p.EndDate.Time) {
		return false
	}
	return true
}

// PolicyRepository defines the interface for policy persistence
type PolicyRepository interface {
	shared.Repository[Policy]

	// ExistsByPolicyNumber checks whether another policy (id != excludeID) uses the number
	ExistsByPolicyNumber(ctx context.Context, policyNumber string, excludeID uint) (bool, error)

	// FindByClient returns the policies held by a client
	FindByClient(ctx context.Context, clientID uint) ([]Policy, error)
}
