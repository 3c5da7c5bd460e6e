package underwriting

import (
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
)

// Product is an insurance product that policies are written against
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewProduct creates a new product
func NewProduct(name, description string) (*Product, error) {
	p := &Product{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks required fields
func (p *Product) Validate() error {
	if p.Name == "" {
		return shared.InvalidInput("Product name cannot be empty")
	}
	return nil
}

// SetName replaces the product name
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.InvalidInput("Product name cannot be empty")
	}
	p.Name = name
	return nil
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	shared.Repository[Product]
}
