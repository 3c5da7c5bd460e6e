package persistence

import (
	"context"

	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormClaimRepository implements claims.ClaimRepository using GORM
type GormClaimRepository struct {
	*gormRepository[claims.Claim, models.ClaimModel, *models.ClaimModel]
}

// NewGormClaimRepository creates a new GormClaimRepository
func NewGormClaimRepository(db *gorm.DB) *GormClaimRepository {
	return &GormClaimRepository{newGormRepository[claims.Claim, models.ClaimModel](db, tableSpec{
		entity:        "Claim",
		uniqueField:   "claim number",
		sortFields:    ClaimSortFields,
		filterColumns: columns("status", "policy_id"),
		searchColumns: []string{"claim_number", "status"},
	})}
}

// ExistsByClaimNumber checks whether a claim other than excludeID uses the number
func (r *GormClaimRepository) ExistsByClaimNumber(ctx context.Context, claimNumber string, excludeID uint) (bool, error) {
	return r.existsOther(ctx, "claim_number", claimNumber, excludeID)
}

// FindFiled returns every claim that has a filed date
func (r *GormClaimRepository) FindFiled(ctx context.Context) ([]claims.Claim, error) {
	return r.findWhere(ctx, "filed_date IS NOT NULL")
}

var _ claims.ClaimRepository = (*GormClaimRepository)(nil)
