// Package underwriting holds the records that describe who is insured
// and under which terms: clients, products, policies and reinsurance.
package underwriting

import (
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
)

// Client is a policy holder
type Client struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
}

// NewClient creates a new client
func NewClient(name, email, phone string) (*Client, error) {
	c := &Client{
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
func (c *Client) Validate() error {
	if c.Name == "" {
		return shared.InvalidInput("Client name cannot be empty")
	}
	if c.Email == "" {
		return shared.InvalidInput("Client email cannot be empty")
	}
	return nil
}

// SetName replaces the client name
func (c *Client) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.InvalidInput("Client name cannot be empty")
	}
	c.Name = name
	return nil
}

// SetEmail replaces the client email
func (c *Client) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.InvalidInput("Client email cannot be empty")
	}
	c.Email = email
	return nil
}

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	shared.Repository[Client]
}
