// Package partner implements the customer and agent use cases.
package partner

import (
	"context"
	"fmt"

	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/domain/partner"
	"github.com/insurance/backend/internal/domain/records"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	audit        records.AuditRecorder
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, audit records.AuditRecorder) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		audit:        records.RecorderOrNop(audit),
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "customer.create", fmt.Sprintf("id=%d", customer.ID))

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*ContactResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves a page of customers and the total count
func (s *CustomerService) List(ctx context.Context, query listing.Query) ([]ContactResponse, int64, error) {
	customers, total, err := listing.List[partner.Customer](ctx, s.customerRepo, query.Filter())
	if err != nil {
		return nil, 0, err
	}
	return listing.Map(customers, ToCustomerResponse), total, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id uint, req UpdateContactRequest) (*ContactResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyContact(req, customer.SetName, &customer.Email, &customer.Phone); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, "customer.update", fmt.Sprintf("id=%d", customer.ID))

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "customer.delete", fmt.Sprintf("id=%d", id))
	return nil
}
