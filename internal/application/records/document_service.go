// Package records implements the document and audit trail use cases.
package records

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// FileStore persists document content under a key
type FileStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteObject(ctx context.Context, key string) error
}

// DocumentService handles document records and their stored content
type DocumentService struct {
	documentRepo records.DocumentRepository
	files        FileStore
	audit        records.AuditRecorder
}

// NewDocumentService creates a new DocumentService. files may be nil, in
// which case uploads and downloads are rejected.
func NewDocumentService(documentRepo records.DocumentRepository, files FileStore, audit records.AuditRecorder) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		files:        files,
		audit:        records.RecorderOrNop(audit),
	}
}

// Create registers a new document
func (s *DocumentService) Create(ctx context.Context, req CreateDocumentRequest) (*DocumentResponse, error) {
	doc, err := records.NewDocument(req.Title, req.FilePath)
	if err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "document.create", fmt.Sprintf("id=%d", doc.ID))

	response := ToDocumentResponse(doc)
	return &response, nil
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(ctx context.Context, id uint) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDocumentResponse(doc)
	return &response, nil
}

// List retrieves a page of documents and the total count
func (s *DocumentService) List(ctx context.Context, query listing.Query) ([]DocumentResponse, int64, error) {
	docs, total, err := listing.List[records.Document](ctx, s.documentRepo, query.Filter())
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(docs, ToDocumentResponse), total, nil
}

// Update applies a partial update to a document
func (s *DocumentService) Update(ctx context.Context, id uint, req UpdateDocumentRequest) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Title.ApplyFunc("title", doc.SetTitle); err != nil {
		return nil, err
	}
	req.FilePath.ApplyOrZero(&doc.FilePath)
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "document.update", fmt.Sprintf("id=%d", doc.ID))

	response := ToDocumentResponse(doc)
	return &response, nil
}

// Delete removes a document and, when present, its stored content.
// Failing to remove the content does not fail the delete.
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if doc.HasFile() && s.files != nil {
		if err := s.files.DeleteObject(ctx, doc.FilePath); err != nil {
			logger.L(ctx).Warn("Failed to delete document content",
				zap.Uint("document_id", id),
				zap.String("key", doc.FilePath),
				zap.Error(err))
		}
	}
	s.audit.Record(ctx, "document.delete", fmt.Sprintf("id=%d", id))
	return nil
}

// AttachFile stores uploaded content for a document and records its location
func (s *DocumentService) AttachFile(ctx context.Context, id uint, in UploadFileInput, body io.Reader) (*DocumentResponse, error) {
	if s.files == nil {
		return nil, shared.NewDomainError("STORAGE_UNAVAILABLE", "Document storage is not configured")
	}
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Size <= 0 {
		return nil, shared.InvalidInput("Uploaded file is empty")
	}
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := doc.StorageKey(in.FileName)
	if err := s.files.Upload(ctx, key, body, in.Size, contentType); err != nil {
		return nil, fmt.Errorf("store document %d: %w", id, err)
	}
	doc.AttachFile(key, contentType, in.Size, time.Now())

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "document.upload", fmt.Sprintf("id=%d key=%s size=%d", doc.ID, key, in.Size))

	response := ToDocumentResponse(doc)
	return &response, nil
}

// OpenFile returns the stored content of a document. The caller closes it.
func (s *DocumentService) OpenFile(ctx context.Context, id uint) (io.ReadCloser, *DocumentResponse, error) {
	if s.files == nil {
		return nil, nil, shared.NewDomainError("STORAGE_UNAVAILABLE", "Document storage is not configured")
	}
	doc, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !doc.HasFile() {
		return nil, nil, shared.NotFound("Document file")
	}
	rc, err := s.files.Open(ctx, doc.FilePath)
	if err != nil {
		return nil, nil, err
	}
	response := ToDocumentResponse(doc)
	return rc, &response, nil
}
