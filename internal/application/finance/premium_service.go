// Package finance implements the premium, commission and ledger use cases.
package finance

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/finance"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
)

// PremiumService handles premium-related business operations
type PremiumService struct {
	premiumRepo finance.PremiumRepository
	audit       records.AuditRecorder
}

// NewPremiumService creates a new PremiumService
func NewPremiumService(premiumRepo finance.PremiumRepository, audit records.AuditRecorder) *PremiumService {
	return &PremiumService{
		premiumRepo: premiumRepo,
		audit:       records.RecorderOrNop(audit),
	}
}

// Create creates a new premium
func (s *PremiumService) Create(ctx context.Context, req CreatePremiumRequest) (*PremiumResponse, error) {
	if req.Amount == nil {
		return nil, shared.InvalidInput("amount is required")
	}
	premium := finance.NewPremium(*req.Amount)
	premium.PolicyID = req.PolicyID
	premium.DueDate = req.DueDate
	premium.PaidDate = req.PaidDate

	if err := s.premiumRepo.Save(ctx, premium); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "premium.create", fmt.Sprintf("id=%d", premium.ID))

	response := ToPremiumResponse(premium)
	return &response, nil
}

// GetByID retrieves a premium by ID
func (s *PremiumService) GetByID(ctx context.Context, id uint) (*PremiumResponse, error) {
	premium, err := s.premiumRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPremiumResponse(premium)
	return &response, nil
}

// List retrieves a page of premiums and the total count
func (s *PremiumService) List(ctx context.Context, filter PremiumListFilter) ([]PremiumResponse, int64, error) {
	domainFilter := listing.Where(filter.Filter(), "policy_id", filter.PolicyID)
	premiums, total, err := listing.List[finance.Premium](ctx, s.premiumRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(premiums, ToPremiumResponse), total, nil
}

// Update applies a partial update to a premium
func (s *PremiumService) Update(ctx context.Context, id uint, req UpdatePremiumRequest) (*PremiumResponse, error) {
	premium, err := s.premiumRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.PolicyID.ApplyNullable(&premium.PolicyID)
	if err := req.Amount.Apply(&premium.Amount, "amount"); err != nil {
		return nil, err
	}
	req.DueDate.ApplyNullable(&premium.DueDate)
	req.PaidDate.ApplyNullable(&premium.PaidDate)

	if err := s.premiumRepo.Save(ctx, premium); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "premium.update", fmt.Sprintf("id=%d", premium.ID))

	response := ToPremiumResponse(premium)
	return &response, nil
}

// Delete removes a premium
func (s *PremiumService) Delete(ctx context.Context, id uint) error {
	if err := s.premiumRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "premium.delete", fmt.Sprintf("id=%d", id))
	return nil
}
