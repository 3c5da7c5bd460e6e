package persistence

import (
	"github.com/insurance/backend/internal/domain/partner"
	"github.com/insurance/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	*gormRepository[partner.Customer, models.CustomerModel, *models.CustomerModel]
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{newGormRepository[partner.Customer, models.CustomerModel](db, tableSpec{
		entity:        "Customer",
		sortFields:    CustomerSortFields,
		searchColumns: []string{"name", "email", "phone"},
	})}
}

// GormAgentRepository implements partner.AgentRepository using GORM
type GormAgentRepository struct {
	*gormRepository[partner.Agent, models.AgentModel, *models.AgentModel]
}

// NewGormAgentRepository creates a new GormAgentRepository
func NewGormAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{newGormRepository[partner.Agent, models.AgentModel](db, tableSpec{
		entity:        "Agent",
		sortFields:    AgentSortFields,
		searchColumns: []string{"name", "email", "phone"},
	})}
}

var (
	_ partner.CustomerRepository = (*GormCustomerRepository)(nil)
	_ partner.AgentRepository    = (*GormAgentRepository)(nil)
)
