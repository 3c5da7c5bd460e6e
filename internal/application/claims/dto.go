package claims

import (
	"time"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CreateClaimRequest represents a request to file a claim
type CreateClaimRequest struct {
	PolicyID    *uint             `json:"policy_id"`
	ClaimNumber string            `json:"claim_number" binding:"required,max=100"`
	Amount      *decimal.Decimal  `json:"amount"`
	Status      string            `json:"status" binding:"max=50"`
	FiledDate   *valueobject.Date `json:"filed_date"`
	SettledDate *valueobject.Date `json:"settled_date"`
}

// UpdateClaimRequest carries a partial claim update.
// A null amount marks the amount as unknown.
type UpdateClaimRequest struct {
	PolicyID    shared.Optional[uint]             `json:"policy_id"`
	ClaimNumber shared.Optional[string]           `json:"claim_number"`
	Amount      shared.Optional[decimal.Decimal]  `json:"amount"`
	Status      shared.Optional[string]           `json:"status"`
	FiledDate   shared.Optional[valueobject.Date] `json:"filed_date"`
	SettledDate shared.Optional[valueobject.Date] `json:"settled_date"`
}

// ClaimListFilter narrows a claim list
type ClaimListFilter struct {
	listing.Query
	Status   *string `form:"status"`
	PolicyID *uint   `form:"policy_id"`
}

// ClaimResponse represents a claim in API responses
type ClaimResponse struct {
	ID          uint                `json:"id"`
	PolicyID    *uint               `json:"policy_id"`
	ClaimNumber string              `json:"claim_number"`
	Amount      decimal.NullDecimal `json:"amount"`
	Status      string              `json:"status"`
	FiledDate   *valueobject.Date   `json:"filed_date"`
	SettledDate *valueobject.Date   `json:"settled_date"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ToClaimResponse converts a domain claim to a response
func ToClaimResponse(c *claims.Claim) ClaimResponse {
	return ClaimResponse{
		ID:          c.ID,
		PolicyID:    c.PolicyID,
		ClaimNumber: c.ClaimNumber,
		Amount:      c.Amount,
		Status:      c.Status,
		FiledDate:   c.FiledDate,
		SettledDate: c.SettledDate,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
