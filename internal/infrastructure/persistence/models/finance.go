package models

import (
	"github.com/insurance/backend/internal/domain/finance"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PremiumModel is the persistence model for the Premium domain entity.
type PremiumModel struct {
	BaseModel
	PolicyID *uint             `gorm:"index"`
	Amount   decimal.Decimal   `gorm:"type:decimal(18,2);not null;default:0"`
	DueDate  *valueobject.Date `gorm:"type:date"`
	PaidDate *valueobject.Date `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (PremiumModel) TableName() string {
	return "premiums"
}

// ToDomain converts the persistence model to a domain Premium entity.
func (m *PremiumModel) ToDomain() *finance.Premium {
	return &finance.Premium{
		BaseEntity: m.BaseModel.ToDomain(),
		PolicyID:   m.PolicyID,
		Amount:     m.Amount,
		DueDate:    m.DueDate,
		PaidDate:   m.PaidDate,
	}
}

// FromDomain populates the persistence model from a domain Premium entity.
func (m *PremiumModel) FromDomain(p *finance.Premium) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.PolicyID = p.PolicyID
	m.Amount = p.Amount
	m.DueDate = p.DueDate
	m.PaidDate = p.PaidDate
}

// CommissionModel is the persistence model for the Commission domain entity.
type CommissionModel struct {
	BaseModel
	AgentID *uint             `gorm:"index"`
	Amount  decimal.Decimal   `gorm:"type:decimal(18,2);not null;default:0"`
	Date    *valueobject.Date `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (CommissionModel) TableName() string {
	return "commissions"
}

// ToDomain converts the persistence model to a domain Commission entity.
func (m *CommissionModel) ToDomain() *finance.Commission {
	return &finance.Commission{
		BaseEntity: m.BaseModel.ToDomain(),
		AgentID:    m.AgentID,
		Amount:     m.Amount,
		Date:       m.Date,
	}
}

// FromDomain populates the persistence model from a domain Commission entity.
func (m *CommissionModel) FromDomain(c *finance.Commission) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.AgentID = c.AgentID
	m.Amount = c.Amount
	m.Date = c.Date
}

// LedgerEntryModel is the persistence model for the LedgerEntry domain entity.
type LedgerEntryModel struct {
	BaseModel
	EntryDate   *valueobject.Date `gorm:"type:date;index"`
	Description string            `gorm:"type:text"`
	Amount      decimal.Decimal   `gorm:"type:decimal(18,2);not null;default:0"`
	EntryType   finance.EntryType `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "ledger"
}

// ToDomain converts the persistence model to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToDomain() *finance.LedgerEntry {
	return &finance.LedgerEntry{
		BaseEntity:  m.BaseModel.ToDomain(),
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Amount:      m.Amount,
		EntryType:   m.EntryType,
	}
}

// FromDomain populates the persistence model from a domain LedgerEntry entity.
func (m *LedgerEntryModel) FromDomain(e *finance.LedgerEntry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.EntryDate = e.EntryDate
	m.Description = e.Description
	m.Amount = e.Amount
	m.EntryType = e.EntryType
}
