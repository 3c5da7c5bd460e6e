package records

import (
	"context"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// systemUser is recorded when an action has no authenticated user
const systemUser = "system"

// AuditService manages the audit trail and records actions for other services
type AuditService struct {
	auditRepo records.AuditLogRepository
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo records.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

var _ records.AuditRecorder = (*AuditService)(nil)

// Record appends an entry for the user carried by ctx
func (s *AuditService) Record(ctx context.Context, action, details string) {
	user := logger.User(ctx)
	if user == "" {
		user = systemUser
	}
	entry, err := records.NewAuditLog(action, user, details)
	if err == nil {
		err = s.auditRepo.Save(ctx, entry)
	}
	if err != nil {
		logger.L(ctx).Warn("Failed to record audit entry",
			zap.String("action", action),
			zap.String("details", details),
			zap.Error(err))
	}
}

// Create adds an audit entry by hand
func (s *AuditService) Create(ctx context.Context, req CreateAuditLogRequest) (*AuditLogResponse, error) {
	entry, err := records.NewAuditLog(req.Action, req.User, req.Details)
	if err != nil {
		return nil, err
	}
	if req.Timestamp != nil {
		entry.Timestamp = req.Timestamp
	}
	if err := s.auditRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	response := ToAuditLogResponse(entry)
	return &response, nil
}

// GetByID retrieves an audit entry by ID
func (s *AuditService) GetByID(ctx context.Context, id uint) (*AuditLogResponse, error) {
	entry, err := s.auditRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAuditLogResponse(entry)
	return &response, nil
}

// List retrieves a page of audit entries and the total count
func (s *AuditService) List(ctx context.Context, filter AuditLogListFilter) ([]AuditLogResponse, int64, error) {
	domainFilter := listing.Where(filter.Filter(), "action", filter.Action)
	domainFilter = listing.Where(domainFilter, "user_name", filter.User)

	entries, total, err := listing.List[records.AuditLog](ctx, s.auditRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(entries, ToAuditLogResponse), total, nil
}

// Update applies a partial update to an audit entry
func (s *AuditService) Update(ctx context.Context, id uint, req UpdateAuditLogRequest) (*AuditLogResponse, error) {
	entry, err := s.auditRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Action.ApplyFunc("action", entry.SetAction); err != nil {
		return nil, err
	}
	req.User.ApplyOrZero(&entry.User)
	req.Timestamp.ApplyNullable(&entry.Timestamp)
	req.Details.ApplyOrZero(&entry.Details)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.auditRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	response := ToAuditLogResponse(entry)
	return &response, nil
}

// Delete removes an audit entry
func (s *AuditService) Delete(ctx context.Context, id uint) error {
	return s.auditRepo.Delete(ctx, id)
}
