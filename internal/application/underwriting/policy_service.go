package underwriting

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/underwriting"
)

// PolicyService handles policy-related business operations
type PolicyService struct {
	policyRepo underwriting.PolicyRepository
	audit      records.AuditRecorder
}

// NewPolicyService creates a new PolicyService
func NewPolicyService(policyRepo underwriting.PolicyRepository, audit records.AuditRecorder) *PolicyService {
	return &PolicyService{
		policyRepo: policyRepo,
		audit:      records.RecorderOrNop(audit),
	}
}

// Create creates a new policy. Client and product references are stored as given.
func (s *PolicyService) Create(ctx context.Context, req CreatePolicyRequest) (*PolicyResponse, error) {
	policy, err := underwriting.NewPolicy(req.PolicyNumber)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueNumber(ctx, policy.PolicyNumber, 0); err != nil {
		return nil, err
	}

	policy.ClientID = req.ClientID
	policy.ProductID = req.ProductID
	policy.StartDate = req.StartDate
	policy.EndDate = req.EndDate
	policy.Status = req.Status

	if err := s.policyRepo.Save(ctx, policy); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "policy.create", fmt.Sprintf("id=%d number=%s", policy.ID, policy.PolicyNumber))

	response := ToPolicyResponse(policy)
	return &response, nil
}

// GetByID retrieves a policy by ID
func (s *PolicyService) GetByID(ctx context.Context, id uint) (*PolicyResponse, error) {
	policy, err := s.policyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToPolicyResponse(policy)
	return &response, nil
}

// List retrieves a page of policies and the total count
func (s *PolicyService) List(ctx context.Context, filter PolicyListFilter) ([]PolicyResponse, int64, error) {
	domainFilter := filter.Filter()
	domainFilter = listing.Where(domainFilter, "status", filter.Status)
	domainFilter = listing.Where(domainFilter, "client_id", filter.ClientID)
	domainFilter = listing.Where(domainFilter, "product_id", filter.ProductID)

	policies, total, err := listing.List[underwriting.Policy](ctx, s.policyRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(policies, ToPolicyResponse), total, nil
}

// ListByClient returns every policy held by a client
func (s *PolicyService) ListByClient(ctx context.Context, clientID uint) ([]PolicyResponse, error) {
	policies, err := s.policyRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return listing.Map(policies, ToPolicyResponse), nil
}

// Update applies a partial update to a policy
func (s *PolicyService) Update(ctx context.Context, id uint, req UpdatePolicyRequest) (*PolicyResponse, error) {
	policy, err := s.policyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.PolicyNumber.ApplyFunc("policy_number", policy.SetPolicyNumber); err != nil {
		return nil, err
	}
	req.ClientID.ApplyNullable(&policy.ClientID)
	req.ProductID.ApplyNullable(&policy.ProductID)
	req.StartDate.ApplyNullable(&policy.StartDate)
	req.EndDate.ApplyNullable(&policy.EndDate)
	req.Status.ApplyOrZero(&policy.Status)
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if req.PolicyNumber.HasValue() {
		if err := s.ensureUniqueNumber(ctx, policy.PolicyNumber, policy.ID); err != nil {
			return nil, err
		}
	}

	if err := s.policyRepo.Save(ctx, policy); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "policy.update", fmt.Sprintf("id=%d", policy.ID))

	response := ToPolicyResponse(policy)
	return &response, nil
}

// Delete removes a policy
func (s *PolicyService) Delete(ctx context.Context, id uint) error {
	if err := s.policyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "policy.delete", fmt.Sprintf("id=%d", id))
	return nil
}

func (s *PolicyService) ensureUniqueNumber(ctx context.Context, number string, excludeID uint) error {
	exists, err := s.policyRepo.ExistsByPolicyNumber(ctx, number, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.AlreadyExists("Policy", "policy number")
	}
	return nil
}
