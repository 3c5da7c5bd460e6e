// Package partner holds the people the company deals with outside of
// policies: prospective customers and the agents who sell on its behalf.
package partner

import (
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
)

// Customer is a prospective or retail customer
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
}

// NewCustomer creates a new customer
func NewCustomer(name, email, phone string) (*Customer, error) {
	c := &Customer{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks required fields
func (c *Customer) Validate() error {
	if c.Name == "" {
		return shared.InvalidInput("Customer name cannot be empty")
	}
	return nil
}

// SetName replaces the customer name
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.InvalidInput("Customer name cannot be empty")
	}
	c.Name = name
	return nil
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	shared.Repository[Customer]
}
