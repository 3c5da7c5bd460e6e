package partner

import (
	"strings"

	"github.com/insurance/backend/internal/domain/shared"
)

// Agent sells policies and earns commissions
type Agent struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
}

// NewAgent creates a new agent
func NewAgent(name, email, phone string) (*Agent, error) {
	a := &Agent{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks required fields
func (a *Agent) Validate() error {
	if a.Name == "" {
		return shared.InvalidInput("Agent name cannot be empty")
	}
	return nil
}

// SetName replaces the agent name
func (a *Agent) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.InvalidInput("Agent name cannot be empty")
	}
	a.Name = name
	return nil
}

// AgentRepository defines the interface for agent persistence
type AgentRepository interface {
	shared.Repository[Agent]
}
