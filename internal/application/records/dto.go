package records

import (
	"time"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
)

// =============================================================================
// Document DTOs
// =============================================================================

// CreateDocumentRequest represents a request to register a document
type CreateDocumentRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	FilePath string `json:"file_path" binding:"max=500"`
}

// UpdateDocumentRequest carries a partial document update
type UpdateDocumentRequest struct {
	Title    shared.Optional[string] `json:"title"`
	FilePath shared.Optional[string] `json:"file_path"`
}

// DocumentResponse represents a document in API responses
type DocumentResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	FilePath     string     `json:"file_path"`
	UploadedDate *time.Time `json:"uploaded_date"`
	ContentType  string     `json:"content_type"`
	Size         int64      `json:"size"`
	HasFile      bool       `json:"has_file"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ToDocumentResponse converts a domain document to a response
func ToDocumentResponse(d *records.Document) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		Title:        d.Title,
		FilePath:     d.FilePath,
		UploadedDate: d.UploadedDate,
		ContentType:  d.ContentType,
		Size:         d.Size,
		HasFile:      d.HasFile(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UploadFileInput describes uploaded document content
type UploadFileInput struct {
	FileName    string
	ContentType string
	Size        int64
}

// =============================================================================
// Audit DTOs
// =============================================================================

// CreateAuditLogRequest represents a manually entered audit entry
type CreateAuditLogRequest struct {
	Action    string     `json:"action" binding:"required,max=100"`
	User      string     `json:"user" binding:"max=100"`
	Timestamp *time.Time `json:"timestamp"`
	Details   string     `json:"details"`
}

// UpdateAuditLogRequest carries a partial audit entry update
type UpdateAuditLogRequest struct {
	Action    shared.Optional[string]    `json:"action"`
	User      shared.Optional[string]    `json:"user"`
	Timestamp shared.Optional[time.Time] `json:"timestamp"`
	Details   shared.Optional[string]    `json:"details"`
}

// AuditLogListFilter narrows an audit list
type AuditLogListFilter struct {
	listing.Query
	Action *string `form:"action"`
	User   *string `form:"user"`
}

// AuditLogResponse represents an audit entry in API responses
type AuditLogResponse struct {
	ID        uint       `json:"id"`
	Action    string     `json:"action"`
	User      string     `json:"user"`
	Timestamp *time.Time `json:"timestamp"`
	Details   string     `json:"details"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToAuditLogResponse converts a domain audit entry to a response
func ToAuditLogResponse(a *records.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        a.ID,
		Action:    a.Action,
		User:      a.User,
		Timestamp: a.Timestamp,
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
