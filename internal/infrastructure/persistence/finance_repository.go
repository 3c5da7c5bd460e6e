package persistence

import (
	"context"

	"github.com/insurance/backend/internal/domain/finance"
	"github.com/insurance/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPremiumRepository implements finance.PremiumRepository using GORM
type GormPremiumRepository struct {
	*gormRepository[finance.Premium, models.PremiumModel, *models.PremiumModel]
}

// NewGormPremiumRepository creates a new GormPremiumRepository
func NewGormPremiumRepository(db *gorm.DB) *GormPremiumRepository {
	return &GormPremiumRepository{newGormRepository[finance.Premium, models.PremiumModel](db, tableSpec{
		entity:        "Premium",
		sortFields:    PremiumSortFields,
		filterColumns: columns("policy_id"),
	})}
}

// GormCommissionRepository implements finance.CommissionRepository using GORM
type GormCommissionRepository struct {
	*gormRepository[finance.Commission, models.CommissionModel, *models.CommissionModel]
}

// NewGormCommissionRepository creates a new GormCommissionRepository
func NewGormCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{newGormRepository[finance.Commission, models.CommissionModel](db, tableSpec{
		entity:        "Commission",
		sortFields:    CommissionSortFields,
		filterColumns: columns("agent_id"),
	})}
}

// GormLedgerRepository implements finance.LedgerRepository using GORM
type GormLedgerRepository struct {
	*gormRepository[finance.LedgerEntry, models.LedgerEntryModel, *models.LedgerEntryModel]
}

// NewGormLedgerRepository creates a new GormLedgerRepository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{newGormRepository[finance.LedgerEntry, models.LedgerEntryModel](db, tableSpec{
		entity:        "Ledger entry",
		sortFields:    LedgerSortFields,
		filterColumns: columns("entry_type"),
		searchColumns: []string{"description"},
	})}
}

// FindAllEntries returns the whole ledger ordered by id
func (r *GormLedgerRepository) FindAllEntries(ctx context.Context) ([]finance.LedgerEntry, error) {
	return r.findWhere(ctx, "1 = 1")
}

var (
	_ finance.PremiumRepository    = (*GormPremiumRepository)(nil)
	_ finance.CommissionRepository = (*GormCommissionRepository)(nil)
	_ finance.LedgerRepository     = (*GormLedgerRepository)(nil)
)
