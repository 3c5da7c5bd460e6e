// Package underwriting implements the client, product, policy and
// reinsurance use cases.
package underwriting

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/records"
	"github.com/insurance/backend/internal/domain/underwriting"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo underwriting.ClientRepository
	audit      records.AuditRecorder
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo underwriting.ClientRepository, audit records.AuditRecorder) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		audit:      records.RecorderOrNop(audit),
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := underwriting.NewClient(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "client.create", fmt.Sprintf("id=%d", client.ID))

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uint) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves a page of clients and the total count
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
	domainFilter := listing.Where(filter.Filter(), "email", filter.Email)
	clients, total, err := listing.List[underwriting.Client](ctx, s.clientRepo, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(clients, ToClientResponse), total, nil
}

// Update applies a partial update to a client
func (s *ClientService) Update(ctx context.Context, id uint, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.Name.ApplyFunc("name", client.SetName); err != nil {
		return nil, err
	}
	if err := req.Email.ApplyFunc("email", client.SetEmail); err != nil {
		return nil, err
	}
	req.Phone.ApplyOrZero(&client.Phone)
	if err := client.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "client.update", fmt.Sprintf("id=%d", client.ID))

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "client.delete", fmt.Sprintf("id=%d", id))
	return nil
}
