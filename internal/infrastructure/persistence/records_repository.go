package persistence

import (
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDocumentRepository implements records.DocumentRepository using GORM
type GormDocumentRepository struct {
	*gormRepository[records.Document, models.DocumentModel, *models.DocumentModel]
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{newGormRepository[records.Document, models.DocumentModel](db, tableSpec{
		entity:        "Document",
		sortFields:    DocumentSortFields,
		searchColumns: []string{"title", "file_path"},
	})}
}

// GormAuditLogRepository implements records.AuditLogRepository using GORM
type GormAuditLogRepository struct {
	*gormRepository[records.AuditLog, models.AuditLogModel, *models.AuditLogModel]
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{newGormRepository[records.AuditLog, models.AuditLogModel](db, tableSpec{
		entity:        "Audit entry",
		sortFields:    AuditSortFields,
		filterColumns: columns("action", "user_name"),
		searchColumns: []string{"action", "user_name", "details"},
	})}
}

var (
	_ records.DocumentRepository = (*GormDocumentRepository)(nil)
	_ records.AuditLogRepository = (*GormAuditLogRepository)(nil)
)
