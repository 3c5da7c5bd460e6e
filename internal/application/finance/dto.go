package finance

import (
	"time"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/finance"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Premium DTOs
// =============================================================================

// CreatePremiumRequest represents a request to create a premium
type CreatePremiumRequest struct {
	PolicyID *uint             `json:"policy_id"`
	Amount   *decimal.Decimal  `json:"amount" binding:"required"`
	DueDate  *valueobject.Date `json:"due_date"`
	PaidDate *valueobject.Date `json:"paid_date"`
}

// UpdatePremiumRequest carries a partial premium update
type UpdatePremiumRequest struct {
	PolicyID shared.Optional[uint]             `json:"policy_id"`
	Amount   shared.Optional[decimal.Decimal]  `json:"amount"`
	DueDate  shared.Optional[valueobject.Date] `json:"due_date"`
	PaidDate shared.Optional[valueobject.Date] `json:"paid_date"`
}

// PremiumListFilter narrows a premium list
type PremiumListFilter struct {
	listing.Query
	PolicyID *uint `form:"policy_id"`
}

// PremiumResponse represents a premium in API responses
type PremiumResponse struct {
	ID        uint              `json:"id"`
	PolicyID  *uint             `json:"policy_id"`
	Amount    decimal.Decimal   `json:"amount"`
	DueDate   *valueobject.Date `json:"due_date"`
	PaidDate  *valueobject.Date `json:"paid_date"`
	IsPaid    bool              `json:"is_paid"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ToPremiumResponse converts a domain premium to a response
func ToPremiumResponse(p *finance.Premium) PremiumResponse {
	return PremiumResponse{
		ID:        p.ID,
		PolicyID:  p.PolicyID,
		Amount:    p.Amount,
		DueDate:   p.DueDate,
		PaidDate:  p.PaidDate,
		IsPaid:    p.IsPaid(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// =============================================================================
// Commission DTOs
// =============================================================================

// CreateCommissionRequest represents a request to create a commission
type CreateCommissionRequest struct {
	AgentID *uint             `json:"agent_id"`
	Amount  *decimal.Decimal  `json:"amount" binding:"required"`
	Date    *valueobject.Date `json:"date"`
}

// UpdateCommissionRequest carries a partial commission update
type UpdateCommissionRequest struct {
	AgentID shared.Optional[uint]             `json:"agent_id"`
	Amount  shared.Optional[decimal.Decimal]  `json:"amount"`
	Date    shared.Optional[valueobject.Date] `json:"date"`
}

// CommissionListFilter narrows a commission list
type CommissionListFilter struct {
	listing.Query
	AgentID *uint `form:"agent_id"`
}

// CommissionResponse represents a commission in API responses
type CommissionResponse struct {
	ID        uint              `json:"id"`
	AgentID   *uint             `json:"agent_id"`
	Amount    decimal.Decimal   `json:"amount"`
	Date      *valueobject.Date `json:"date"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ToCommissionResponse converts a domain commission to a response
func ToCommissionResponse(c *finance.Commission) CommissionResponse {
	return CommissionResponse{
		ID:        c.ID,
		AgentID:   c.AgentID,
		Amount:    c.Amount,
		Date:      c.Date,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// =============================================================================
// Ledger DTOs
// =============================================================================

// CreateLedgerEntryRequest represents a request to post a ledger entry
type CreateLedgerEntryRequest struct {
	EntryDate   *valueobject.Date `json:"entry_date"`
	Description string            `json:"description"`
	Amount      *decimal.Decimal  `json:"amount"`
	EntryType   string            `json:"entry_type" binding:"omitempty,entry_type"`
}

// UpdateLedgerEntryRequest carries a partial ledger entry update
type UpdateLedgerEntryRequest struct {
	EntryDate   shared.Optional[valueobject.Date] `json:"entry_date"`
	Description shared.Optional[string]           `json:"description"`
	Amount      shared.Optional[decimal.Decimal]  `json:"amount"`
	EntryType   shared.Optional[string]           `json:"entry_type"`
}

// LedgerListFilter narrows a ledger list
type LedgerListFilter struct {
	listing.Query
	EntryType *string `form:"entry_type" binding:"omitempty,entry_type"`
}

// LedgerEntryResponse represents a ledger entry in API responses
type LedgerEntryResponse struct {
	ID          uint              `json:"id"`
	EntryDate   *valueobject.Date `json:"entry_date"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	EntryType   string            `json:"entry_type"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ToLedgerEntryResponse converts a domain ledger entry to a response
func ToLedgerEntryResponse(e *finance.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Amount:      e.Amount,
		EntryType:   string(e.EntryType),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
