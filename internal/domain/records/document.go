// Package records holds documents and the audit trail.
package records

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/insurance/backend/internal/domain/shared"
)

// Document is a stored file with a title
type Document struct {
	shared.BaseEntity
	Title        string
	FilePath     string
	UploadedDate *time.Time
	ContentType  string
	Size         int64
}

// NewDocument creates a new document record
func NewDocument(title, filePath string) (*Document, error) {
	d := &Document{
		Title:    strings.TrimSpace(title),
		FilePath: filePath,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks required fields
func (d *Document) Validate() error {
	if d.Title == "" {
		return shared.InvalidInput("Document title cannot be empty")
	}
	return nil
}

// SetTitle replaces the document title
func (d *Document) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.InvalidInput("Document title cannot be empty")
	}
	d.Title = title
	return nil
}

// HasFile reports whether file content has been attached
func (d *Document) HasFile() bool {
	return d.FilePath != "" && d.Size > 0
}

// AttachFile records the stored location of uploaded content
func (d *Document) AttachFile(storageKey, contentType string, size int64, at time.Time) {
	d.FilePath = storageKey
	d.ContentType = contentType
	d.Size = size
	d.UploadedDate = &at
}

// StorageKey builds the object key for an upload of this document
func (d *Document) StorageKey(fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return fmt.Sprintf("documents/%d/%s", d.ID, name)
}

// DocumentRepository defines the interface for document persistence
type DocumentRepository interface {
	shared.Repository[Document]
}
