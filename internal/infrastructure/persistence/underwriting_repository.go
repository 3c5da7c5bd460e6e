package persistence

import (
	"context"

	"github.com/insurance/backend/internal/domain/underwriting"
	"github.com/insurance/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClientRepository implements underwriting.ClientRepository using GORM
type GormClientRepository struct {
	*gormRepository[underwriting.Client, models.ClientModel, *models.ClientModel]
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{newGormRepository[underwriting.Client, models.ClientModel](db, tableSpec{
		entity:        "Client",
		sortFields:    ClientSortFields,
		filterColumns: columns("email"),
		searchColumns: []string{"name", "email", "phone"},
	})}
}

// GormProductRepository implements underwriting.ProductRepository using GORM
type GormProductRepository struct {
	*gormRepository[underwriting.Product, models.ProductModel, *models.ProductModel]
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{newGormRepository[underwriting.Product, models.ProductModel](db, tableSpec{
		entity:        "Product",
		sortFields:    ProductSortFields,
		searchColumns: []string{"name", "description"},
	})}
}

// GormPolicyRepository implements underwriting.PolicyRepository using GORM
type GormPolicyRepository struct {
	*gormRepository[underwriting.Policy, models.PolicyModel, *models.PolicyModel]
}

// NewGormPolicyRepository creates a new GormPolicyRepository
func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{newGormRepository[underwriting.Policy, models.PolicyModel](db, tableSpec{
		entity:        "Policy",
		uniqueField:   "policy number",
		sortFields:    PolicySortFields,
		filterColumns: columns("status", "client_id", "product_id"),
		searchColumns: []string{"policy_number", "status"},
	})}
}

// ExistsByPolicyNumber checks whether a policy other than excludeID uses the number
func (r *GormPolicyRepository) ExistsByPolicyNumber(ctx context.Context, policyNumber string, excludeID uint) (bool, error) {
	return r.existsOther(ctx, "policy_number", policyNumber, excludeID)
}

// FindByClient returns every policy held by a client
func (r *GormPolicyRepository) FindByClient(ctx context.Context, clientID uint) ([]underwriting.Policy, error) {
	return r.findWhere(ctx, "client_id = ?", clientID)
}

// GormReinsuranceRepository implements underwriting.ReinsuranceRepository using GORM
type GormReinsuranceRepository struct {
	*gormRepository[underwriting.Reinsurance, models.ReinsuranceModel, *models.ReinsuranceModel]
}

// NewGormReinsuranceRepository creates a new GormReinsuranceRepository
func NewGormReinsuranceRepository(db *gorm.DB) *GormReinsuranceRepository {
	return &GormReinsuranceRepository{newGormRepository[underwriting.Reinsurance, models.ReinsuranceModel](db, tableSpec{
		entity:        "Reinsurance",
		sortFields:    ReinsuranceSortFields,
		filterColumns: columns("policy_id"),
		searchColumns: []string{"reinsurer"},
	})}
}

// Compile-time interface checks
var (
	_ underwriting.ClientRepository      = (*GormClientRepository)(nil)
	_ underwriting.ProductRepository     = (*GormProductRepository)(nil)
	_ underwriting.PolicyRepository      = (*GormPolicyRepository)(nil)
	_ underwriting.ReinsuranceRepository = (*GormReinsuranceRepository)(nil)
)
