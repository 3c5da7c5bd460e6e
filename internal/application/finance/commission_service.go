package finance

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/finance"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
)

// CommissionService handles agent commission operations
type CommissionService struct {
	commissionRepo finance.CommissionRepository
	audit          records.AuditRecorder
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(commissionRepo finance.CommissionRepository, audit records.AuditRecorder) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		audit:          records.RecorderOrNop(audit),
	}
}

// Create creates a new commission
func (s *CommissionService) Create(ctx context.Context, req CreateCommissionRequest) (*CommissionResponse, error) {
	if req.Amount == nil {
		return nil, shared.InvalidInput("amount is required")
	}
	commission := finance.NewCommission(*req.Amount)
	commission.AgentID = req.AgentID
	commission.Date = req.Date

	if err := s.commissionRepo.Save(ctx, commission); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "commission.create", fmt.Sprintf("id=%d", commission.ID))

	response := ToCommissionResponse(commission)
	return &response, nil
}

// GetByID retrieves a commission by ID
func (s *CommissionService) GetByID(ctx context.Context, id uint) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCommissionResponse(commission)
	return &response, nil
}

// List retrieves a page of commissions and the total count
func (s *CommissionService) List(ctx context.Context, filter CommissionListFilter) ([]CommissionResponse, int64, error) {
	domainFilter := listing.Where(filter.Filter(), "agent_id", filter.AgentID)
	commissions, total, err := listing.List[finance.Commission](ctx, s.commissionRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(commissions, ToCommissionResponse), total, nil
}

// Update applies a partial update to a commission
func (s *CommissionService) Update(ctx context.Context, id uint, req UpdateCommissionRequest) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.AgentID.ApplyNullable(&commission.AgentID)
	if err := req.Amount.Apply(&commission.Amount, "amount"); err != nil {
		return nil, err
	}
	req.Date.ApplyNullable(&commission.Date)

	if err := s.commissionRepo.Save(ctx, commission); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "commission.update", fmt.Sprintf("id=%d", commission.ID))

	response := ToCommissionResponse(commission)
	return &response, nil
}

// Delete removes a commission
func (s *CommissionService) Delete(ctx context.Context, id uint) error {
	if err := s.commissionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "commission.delete", fmt.Sprintf("id=%d", id))
	return nil
}
