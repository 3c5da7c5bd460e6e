package underwriting

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/underwriting"
	"github.com/shopspring/decimal"
)

// ReinsuranceService handles reinsurance contract operations
type ReinsuranceService struct {
	reinsuranceRepo underwriting.ReinsuranceRepository
	audit           records.AuditRecorder
}

// NewReinsuranceService creates a new ReinsuranceService
func NewReinsuranceService(reinsuranceRepo underwriting.ReinsuranceRepository, audit records.AuditRecorder) *ReinsuranceService {
	return &ReinsuranceService{
		reinsuranceRepo: reinsuranceRepo,
		audit:           records.RecorderOrNop(audit),
	}
}

// Create creates a new reinsurance contract
func (s *ReinsuranceService) Create(ctx context.Context, req CreateReinsuranceRequest) (*ReinsuranceResponse, error) {
	coverage := decimal.Zero
	if req.CoverageAmount != nil {
		coverage = *req.CoverageAmount
	}
	contract, err := underwriting.NewReinsurance(req.Reinsurer, coverage)
	if err != nil {
		return nil, err
	}
	contract.PolicyID = req.PolicyID
	contract.StartDate = req.StartDate
	contract.EndDate = req.EndDate

	if err := s.reinsuranceRepo.Save(ctx, contract); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "reinsurance.create", fmt.Sprintf("id=%d", contract.ID))

	response := ToReinsuranceResponse(contract)
	return &response, nil
}

// GetByID retrieves a reinsurance contract by ID
func (s *ReinsuranceService) GetByID(ctx context.Context, id uint) (*ReinsuranceResponse, error) {
	contract, err := s.reinsuranceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToReinsuranceResponse(contract)
	return &response, nil
}

// List retrieves a page of reinsurance contracts and the total count
func (s *ReinsuranceService) List(ctx context.Context, filter ReinsuranceListFilter) ([]ReinsuranceResponse, int64, error) {
	domainFilter := listing.Where(filter.Filter(), "policy_id", filter.PolicyID)
	contracts, total, err := listing.List[underwriting.Reinsurance](ctx, s.reinsuranceRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(contracts, ToReinsuranceResponse), total, nil
}

// Update applies a partial update to a reinsurance contract
func (s *ReinsuranceService) Update(ctx context.Context, id uint, req UpdateReinsuranceRequest) (*ReinsuranceResponse, error) {
	contract, err := s.reinsuranceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.PolicyID.ApplyNullable(&contract.PolicyID)
	if err := req.Reinsurer.ApplyFunc("reinsurer", contract.SetReinsurer); err != nil {
		return nil, err
	}
	req.CoverageAmount.ApplyOrZero(&contract.CoverageAmount)
	req.StartDate.ApplyNullable(&contract.StartDate)
	req.EndDate.ApplyNullable(&contract.EndDate)
	if err := contract.Validate(); err != nil {
		return nil, err
	}

	if err := s.reinsuranceRepo.Save(ctx, contract); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "reinsurance.update", fmt.Sprintf("id=%d", contract.ID))

	response := ToReinsuranceResponse(contract)
	return &response, nil
}

// Delete removes a reinsurance contract
func (s *ReinsuranceService) Delete(ctx context.Context, id uint) error {
	if err := s.reinsuranceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "reinsurance.delete", fmt.Sprintf("id=%d", id))
	return nil
}
