package records

import (
	"context"
	"strings"
	"time"

	"github.com/insurance/backend/internal/domain/shared"
)

// AuditLog is one entry of the audit trail
type AuditLog struct {
	shared.BaseEntity
	Action    string
	User      string
	Timestamp *time.Time
	Details   string
}

// NewAuditLog creates a new audit entry stamped with the current time
func NewAuditLog(action, user, details string) (*AuditLog, error) {
	now := time.Now()
	a := &AuditLog{
		Action:    strings.TrimSpace(action),
		User:      user,
		Timestamp: &now,
		Details:   details,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks required fields
func (a *AuditLog) Validate() error {
	if a.Action == "" {
		return shared.InvalidInput("Audit action cannot be empty")
	}
	return nil
}

// SetAction replaces the recorded action
func (a *AuditLog) SetAction(action string) error {
	action = strings.TrimSpace(action)
	if action == "" {
		return shared.InvalidInput("Audit action cannot be empty")
	}
	a.Action = action
	return nil
}

// AuditLogRepository defines the interface for audit persistence
type AuditLogRepository interface {
	shared.Repository[AuditLog]
}

// AuditRecorder appends entries to the audit trail on behalf of the
// user carried by ctx. Recording is best effort: implementations log
// failures instead of returning them.
type AuditRecorder interface {
	Record(ctx context.Context, action, details string)
}

// NopAuditRecorder discards every entry
type NopAuditRecorder struct{}

// Record implements AuditRecorder
func (NopAuditRecorder) Record(context.Context, string, string) {}

// RecorderOrNop returns r, or a NopAuditRecorder when r is nil
func RecorderOrNop(r AuditRecorder) AuditRecorder {
	if r == nil {
		return NopAuditRecorder{}
	}
	return r
}
