package models

import (
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/insurance/backend/internal/domain/underwriting"
	"github.com/shopspring/decimal"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(200);not null"`
	Email string `gorm:"type:varchar(200);not null"`
	Phone string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *underwriting.Client {
	return &underwriting.Client{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *underwriting.Client) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *underwriting.Product {
	return &underwriting.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *underwriting.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
}

// PolicyModel is the persistence model for the Policy domain entity.
// Client and product references are plain columns; their existence is not enforced.
type PolicyModel struct {
	BaseModel
	PolicyNumber string            `gorm:"type:varchar(100);not null;uniqueIndex"`
	ClientID     *uint             `gorm:"index"`
	ProductID    *uint             `gorm:"index"`
	StartDate    *valueobject.Date `gorm:"type:date"`
	EndDate      *valueobject.Date `gorm:"type:date"`
	Status       string            `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (PolicyModel) TableName() string {
	return "policies"
}

// ToDomain converts the persistence model to a domain Policy entity.
func (m *PolicyModel) ToDomain() *underwriting.Policy {
	return &underwriting.Policy{
		BaseEntity:   m.BaseModel.ToDomain(),
		PolicyNumber: m.PolicyNumber,
		ClientID:     m.ClientID,
		ProductID:    m.ProductID,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       m.Status,
	}
}

// FromDomain populates the persistence model from a domain Policy entity.
func (m *PolicyModel) FromDomain(p *underwriting.Policy) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.PolicyNumber = p.PolicyNumber
	m.ClientID = p.ClientID
	m.ProductID = p.ProductID
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
	m.Status = p.Status
}

// ReinsuranceModel is the persistence model for the Reinsurance domain entity.
type ReinsuranceModel struct {
	BaseModel
	PolicyID       *uint             `gorm:"index"`
	Reinsurer      string            `gorm:"type:varchar(200)"`
	CoverageAmount decimal.Decimal   `gorm:"type:decimal(18,2);not null;default:0"`
	StartDate      *valueobject.Date `gorm:"type:date"`
	EndDate        *valueobject.Date `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (ReinsuranceModel) TableName() string {
	return "reinsurance"
}

// ToDomain converts the persistence model to a domain Reinsurance entity.
func (m *ReinsuranceModel) ToDomain() *underwriting.Reinsurance {
	return &underwriting.Reinsurance{
		BaseEntity:     m.BaseModel.ToDomain(),
		PolicyID:       m.PolicyID,
		Reinsurer:      m.Reinsurer,
		CoverageAmount: m.CoverageAmount,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
	}
}

// FromDomain populates the persistence model from a domain Reinsurance entity.
func (m *ReinsuranceModel) FromDomain(r *underwriting.Reinsurance) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.PolicyID = r.PolicyID
	m.Reinsurer = r.Reinsurer
	m.CoverageAmount = r.CoverageAmount
	m.StartDate = r.StartDate
	m.EndDate = r.EndDate
}
