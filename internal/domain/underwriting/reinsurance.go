package underwriting

import (
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Reinsurance is a contract ceding part of a policy's risk to a reinsurer
type Reinsurance struct {
	shared.BaseEntity
	PolicyID       *uint
	Reinsurer      string
	CoverageAmount decimal.Decimal
	StartDate      *valueobject.Date
	EndDate        *valueobject.Date
}

// NewReinsurance creates a new reinsurance contract
func NewReinsurance(reinsurer string, coverage decimal.Decimal) (*Reinsurance, error) {
	r := &Reinsurance{
		Reinsurer:      strings.TrimSpace(reinsurer),
		CoverageAmount: coverage,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks required fields
func (r *Reinsurance) Validate() error {
	if r.Reinsurer == "" {
		return shared.InvalidInput("Reinsurer cannot be empty")
	}
	return nil
}

func (r *Reinsurance) SetReinsurer(reinsurer string) error {
	reinsurer = strings.TrimSpace(reinsurer)
	if reinsurer == "" {
		return shared.InvalidInput("Reinsurer cannot be empty")
	}
	r.Reinsurer = reinsurer
	return nil
}

// ReinsuranceRepository defines the interface for reinsurance persistence
type ReinsuranceRepository interface {
	shared.Repository[Reinsurance]
}
