package models

import (
	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ClaimModel is the persistence model for the Claim domain entity.
type ClaimModel struct {
	BaseModel
	PolicyID    *uint               `gorm:"index"`
	ClaimNumber string              `gorm:"type:varchar(100);not null;uniqueIndex"`
	Amount      decimal.NullDecimal `gorm:"type:decimal(18,2)"`
	Status      string              `gorm:"type:varchar(50)"`
	FiledDate   *valueobject.Date   `gorm:"type:date;index"`
	SettledDate *valueobject.Date   `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (ClaimModel) TableName() string {
	return "claims"
}

// ToDomain converts the persistence model to a domain Claim entity.
func (m *ClaimModel) ToDomain() *claims.Claim {
	return &claims.Claim{
		BaseEntity:  m.BaseModel.ToDomain(),
		PolicyID:    m.PolicyID,
		ClaimNumber: m.ClaimNumber,
		Amount:      m.Amount,
		Status:      m.Status,
		FiledDate:   m.FiledDate,
		SettledDate: m.SettledDate,
	}
}

// FromDomain populates the persistence model from a domain Claim entity.
func (m *ClaimModel) FromDomain(c *claims.Claim) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.PolicyID = c.PolicyID
	m.ClaimNumber = c.ClaimNumber
	m.Amount = c.Amount
	m.Status = c.Status
	m.FiledDate = c.FiledDate
	m.SettledDate = c.SettledDate
}
