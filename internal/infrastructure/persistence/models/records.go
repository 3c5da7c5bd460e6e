package models

import (
	"time"

	"github.com/insurance/backend/internal/domain/records"
)

// DocumentModel is the persistence model for the Document domain entity.
type DocumentModel struct {
	BaseModel
	Title        string     `gorm:"type:varchar(200);not null"`
	FilePath     string     `gorm:"type:varchar(500)"`
	UploadedDate *time.Time `gorm:"index"`
	ContentType  string     `gorm:"type:varchar(100)"`
	Size         int64      `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the persistence model to a domain Document entity.
func (m *DocumentModel) ToDomain() *records.Document {
	return &records.Document{
		BaseEntity:   m.BaseModel.ToDomain(),
		Title:        m.Title,
		FilePath:     m.FilePath,
		UploadedDate: m.UploadedDate,
		ContentType:  m.ContentType,
		Size:         m.Size,
	}
}

// FromDomain populates the persistence model from a domain Document entity.
func (m *DocumentModel) FromDomain(d *records.Document) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.Title = d.Title
	m.FilePath = d.FilePath
	m.UploadedDate = d.UploadedDate
	m.ContentType = d.ContentType
	m.Size = d.Size
}

// AuditLogModel is the persistence model for the AuditLog domain entity.
type AuditLogModel struct {
	BaseModel
	Action    string     `gorm:"type:varchar(100);not null"`
	User      string     `gorm:"column:user_name;type:varchar(100)"`
	Timestamp *time.Time `gorm:"index"`
	Details   string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit"
}

// ToDomain converts the persistence model to a domain AuditLog entity.
func (m *AuditLogModel) ToDomain() *records.AuditLog {
	return &records.AuditLog{
		BaseEntity: m.BaseModel.ToDomain(),
		Action:     m.Action,
		User:       m.User,
		Timestamp:  m.Timestamp,
		Details:    m.Details,
	}
}

// FromDomain populates the persistence model from a domain AuditLog entity.
func (m *AuditLogModel) FromDomain(a *records.AuditLog) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Action = a.Action
	m.User = a.User
	m.Timestamp = a.Timestamp
	m.Details = a.Details
}
