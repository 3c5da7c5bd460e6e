package models

import (
	"time"

	"github.com/insurance/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for business tables.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// All returns a zero value of every model, in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&UserModel{},
		&ClientModel{},
		&ProductModel{},
		&PolicyModel{},
		&PremiumModel{},
		&AgentModel{},
		&CommissionModel{},
		&ClaimModel{},
		&CustomerModel{},
		&DocumentModel{},
		&AuditLogModel{},
		&LedgerEntryModel{},
		&ReinsuranceModel{},
	}
}
