package finance

import (
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Commission is an amount earned by an agent
type Commission struct {
	shared.BaseEntity
	AgentID *uint
	Amount  decimal.Decimal
	Date    *valueobject.Date
}

// NewCommission creates a new commission
func NewCommission(amount decimal.Decimal) *Commission {
	return &Commission{Amount: amount}
}

// CommissionRepository defines the interface for commission persistence
type CommissionRepository interface {
	shared.Repository[Commission]
}
