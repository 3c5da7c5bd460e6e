// Package claims implements the claim use cases.
package claims

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
)

// ReportInvalidator drops cached reports derived from claims
type ReportInvalidator interface {
	Invalidate(ctx context.Context)
}

// ClaimService handles claim-related business operations
type ClaimService struct {
	claimRepo claims.ClaimRepository
	reports   ReportInvalidator
	audit     records.AuditRecorder
}

// NewClaimService creates a new ClaimService. reports may be nil.
func NewClaimService(claimRepo claims.ClaimRepository, reports ReportInvalidator, audit records.AuditRecorder) *ClaimService {
	return &ClaimService{
		claimRepo: claimRepo,
		reports:   reports,
		audit:     records.RecorderOrNop(audit),
	}
}

// Create files a new claim
func (s *ClaimService) Create(ctx context.Context, req CreateClaimRequest) (*ClaimResponse, error) {
	claim, err := claims.NewClaim(req.ClaimNumber)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueNumber(ctx, claim.ClaimNumber, 0); err != nil {
		return nil, err
	}

	claim.PolicyID = req.PolicyID
	if req.Amount != nil {
		claim.SetAmount(*req.Amount)
	}
	claim.Status = req.Status
	claim.FiledDate = req.FiledDate
	claim.SettledDate = req.SettledDate

	if err := s.claimRepo.Save(ctx, claim); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, "claim.create", claim.ID)

	response := ToClaimResponse(claim)
	return &response, nil
}

// GetByID retrieves a claim by ID
func (s *ClaimService) GetByID(ctx context.Context, id uint) (*ClaimResponse, error) {
	claim, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClaimResponse(claim)
	return &response, nil
}

// List retrieves a page of claims and the total count
func (s *ClaimService) List(ctx context.Context, filter ClaimListFilter) ([]ClaimResponse, int64, error) {
	domainFilter := listing.Where(filter.Filter(), "status", filter.Status)
	domainFilter = listing.Where(domainFilter, "policy_id", filter.PolicyID)

	found, total, err := listing.List[claims.Claim](ctx, s.claimRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(found, ToClaimResponse), total, nil
}

// Update applies a partial update to a claim
func (s *ClaimService) Update(ctx context.Context, id uint, req UpdateClaimRequest) (*ClaimResponse, error) {
	claim, err := s.claimRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.PolicyID.ApplyNullable(&claim.PolicyID)
	if err := req.ClaimNumber.ApplyFunc("claim_number", claim.SetClaimNumber); err != nil {
		return nil, err
	}
	if req.Amount.Set {
		if req.Amount.Null {
			claim.ClearAmount()
		} else {
			claim.SetAmount(req.Amount.Value)
		}
	}
	req.Status.ApplyOrZero(&claim.Status)
	req.FiledDate.ApplyNullable(&claim.FiledDate)
	req.SettledDate.ApplyNullable(&claim.SettledDate)
	if err := claim.Validate(); err != nil {
		return nil, err
	}
	if req.ClaimNumber.HasValue() {
		if err := s.ensureUniqueNumber(ctx, claim.ClaimNumber, claim.ID); err != nil {
			return nil, err
		}
	}

	if err := s.claimRepo.Save(ctx, claim); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, "claim.update", claim.ID)

	response := ToClaimResponse(claim)
	return &response, nil
}

// Delete removes a claim
func (s *ClaimService) Delete(ctx context.Context, id uint) error {
	if err := s.claimRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.afterWrite(ctx, "claim.delete", id)
	return nil
}

func (s *ClaimService) afterWrite(ctx context.Context, action string, id uint) {
	if s.reports != nil {
		s.reports.Invalidate(ctx)
	}
	s.audit.Record(ctx, action, fmt.Sprintf("id=%d", id))
}

func (s *ClaimService) ensureUniqueNumber(ctx context.Context, number string, excludeID uint) error {
	exists, err := s.claimRepo.ExistsByClaimNumber(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.AlreadyExists("Claim", "claim number")
	}
	return nil
}
