package partner

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/partner"
	"github.com/insurance/backend/internal/domain/records"
)

// AgentService handles agent-related business operations
type AgentService struct {
	agentRepo partner.AgentRepository
	audit     records.AuditRecorder
}

// NewAgentService creates a new AgentService
func NewAgentService(agentRepo partner.AgentRepository, audit records.AuditRecorder) *AgentService {
	return &AgentService{
		agentRepo: agentRepo,
		audit:     records.RecorderOrNop(audit),
	}
}

// Create creates a new agent
func (s *AgentService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	agent, err := partner.NewAgent(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.agentRepo.Save(ctx, agent); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "agent.create", fmt.Sprintf("id=%d", agent.ID))

	response := ToAgentResponse(agent)
	return &response, nil
}

// GetByID retrieves a agent by ID
func (s *AgentService) GetByID(ctx context.Context, id uint) (*ContactResponse, error) {
	agent, err := s.agentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAgentResponse(agent)
	return &response, nil
}

// List retrieves a page of agents and the total count
func (s *AgentService) List(ctx context.Context, query listing.Query) ([]ContactResponse, int64, error) {
	agents, total, err := listing.List[partner.Agent](ctx, s.agentRepo, query.Filter())
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(agents, ToAgentResponse), total, nil
}

// Update applies a partial update to a agent
func (s *AgentService) Update(ctx context.Context, id uint, req UpdateContactRequest) (*ContactResponse, error) {
	agent, err := s.agentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyContact(req, agent.SetName, &agent.Email, &agent.Phone); err != nil {
		return nil, err
	}
	if err := agent.Validate(); err != nil {
		return nil, err
	}

	if err := s.agentRepo.Save(ctx, agent); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "agent.update", fmt.Sprintf("id=%d", agent.ID))

	response := ToAgentResponse(agent)
	return &response, nil
}

// Delete removes a agent
func (s *AgentService) Delete(ctx context.Context, id uint) error {
	if err := s.agentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "agent.delete", fmt.Sprintf("id=%d", id))
	return nil
}
