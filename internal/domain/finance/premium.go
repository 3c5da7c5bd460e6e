// Package finance holds the money movements of the back office:
// premiums due on policies, agent commissions and general ledger entries.
package finance

import (
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Premium is an instalment due on a policy
type Premium struct {
	shared.BaseEntity
	PolicyID *uint
	Amount   decimal.Decimal
	DueDate  *valueobject.Date
	PaidDate *valueobject.Date
}

// NewPremium creates a new unpaid premium
func NewPremium(amount decimal.Decimal) *Premium {
	return &Premium{Amount: amount}
}

// IsPaid reports whether the premium has a paid date
func (p *Premium) IsPaid() bool {
	return p.PaidDate != nil
}

// IsOverdue reports whether the premium is unpaid past its due date
func (p *Premium) IsOverdue(today valueobject.Date) bool {
	return !p.IsPaid() && p.DueDate != nil && p.DueDate.Before(today.Time)
}

// MarkPaid records the payment date
func (p *Premium) MarkPaid(on valueobject.Date) {
	p.PaidDate = &on
}

// PremiumRepository defines the interface for premium persistence
type PremiumRepository interface {
	shared.Repository[Premium]
}
