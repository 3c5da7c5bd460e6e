package underwriting

import (
	"time"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/insurance/backend/internal/domain/underwriting"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Email string `json:"email" binding:"required,max=200"`
	Phone string `json:"phone" binding:"max=50"`
}

// UpdateClientRequest carries a partial client update
type UpdateClientRequest struct {
	Name  shared.Optional[string] `json:"name"`
	Email shared.Optional[string] `json:"email"`
	Phone shared.Optional[string] `json:"phone"`
}

// ClientListFilter narrows a client list
type ClientListFilter struct {
	listing.Query
	Email *string `form:"email"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain client to a response
func ToClientResponse(c *underwriting.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// =============================================================================
// Product DTOs
// =============================================================================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description"`
}

// UpdateProductRequest carries a partial product update
type UpdateProductRequest struct {
	Name        shared.Optional[string] `json:"name"`
	Description shared.Optional[string] `json:"description"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response
func ToProductResponse(p *underwriting.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// =============================================================================
// Policy DTOs
// =============================================================================

// CreatePolicyRequest represents a request to create a policy
type CreatePolicyRequest struct {
	PolicyNumber string            `json:"policy_number" binding:"required,max=100"`
	ClientID     *uint             `json:"client_id"`
	ProductID    *uint             `json:"product_id"`
	StartDate    *valueobject.Date `json:"start_date"`
	EndDate      *valueobject.Date `json:"end_date"`
	Status       string            `json:"status" binding:"max=50"`
}

// UpdatePolicyRequest carries a partial policy update
type UpdatePolicyRequest struct {
	PolicyNumber shared.Optional[string]           `json:"policy_number"`
	ClientID     shared.Optional[uint]             `json:"client_id"`
	ProductID    shared.Optional[uint]             `json:"product_id"`
	StartDate    shared.Optional[valueobject.Date] `json:"start_date"`
	EndDate      shared.Optional[valueobject.Date] `json:"end_date"`
	Status       shared.Optional[string]           `json:"status"`
}

// PolicyListFilter narrows a policy list
type PolicyListFilter struct {
	listing.Query
	Status    *string `form:"status"`
	ClientID  *uint   `form:"client_id"`
	ProductID *uint   `form:"product_id"`
}

// PolicyResponse represents a policy in API responses
type PolicyResponse struct {
	ID           uint              `json:"id"`
	PolicyNumber string            `json:"policy_number"`
	ClientID     *uint             `json:"client_id"`
	ProductID    *uint             `json:"product_id"`
	StartDate    *valueobject.Date `json:"start_date"`
	EndDate      *valueobject.Date `json:"end_date"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToPolicyResponse converts a domain policy to a response
func ToPolicyResponse(p *underwriting.Policy) PolicyResponse {
	return PolicyResponse{
		ID:           p.ID,
		PolicyNumber: p.PolicyNumber,
		ClientID:     p.ClientID,
		ProductID:    p.ProductID,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// =============================================================================
// Reinsurance DTOs
// =============================================================================

// CreateReinsuranceRequest represents a request to create a reinsurance contract
type CreateReinsuranceRequest struct {
	PolicyID       *uint             `json:"policy_id"`
	Reinsurer      string            `json:"reinsurer" binding:"required,max=200"`
	CoverageAmount *decimal.Decimal  `json:"coverage_amount"`
	StartDate      *valueobject.Date `json:"start_date"`
	EndDate        *valueobject.Date `json:"end_date"`
}

// UpdateReinsuranceRequest carries a partial reinsurance update
type UpdateReinsuranceRequest struct {
	PolicyID       shared.Optional[uint]             `json:"policy_id"`
	Reinsurer      shared.Optional[string]           `json:"reinsurer"`
	CoverageAmount shared.Optional[decimal.Decimal]  `json:"coverage_amount"`
	StartDate      shared.Optional[valueobject.Date] `json:"start_date"`
	EndDate        shared.Optional[valueobject.Date] `json:"end_date"`
}

// ReinsuranceListFilter narrows a reinsurance list
type ReinsuranceListFilter struct {
	listing.Query
	PolicyID *uint `form:"policy_id"`
}

// ReinsuranceResponse represents a reinsurance contract in API responses
type ReinsuranceResponse struct {
	ID             uint              `json:"id"`
	PolicyID       *uint             `json:"policy_id"`
	Reinsurer      string            `json:"reinsurer"`
	CoverageAmount decimal.Decimal   `json:"coverage_amount"`
	StartDate      *valueobject.Date `json:"start_date"`
	EndDate        *valueobject.Date `json:"end_date"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ToReinsuranceResponse converts a domain reinsurance contract to a response
func ToReinsuranceResponse(r *underwriting.Reinsurance) ReinsuranceResponse {
	return ReinsuranceResponse{
		ID:             r.ID,
		PolicyID:       r.PolicyID,
		Reinsurer:      r.Reinsurer,
		CoverageAmount: r.CoverageAmount,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
