package partner

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/insurance/backend/internal/domain/partner"
	"github.com/insurance/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, nil)

	repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

	resp, err := svc.Create(ctx, CreateContactRequest{Name: "Jane Doe", Phone: "0770"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Empty(t, resp.Email)

	_, err = svc.Create(ctx, CreateContactRequest{Name: "   "})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, nil)

	existing := &partner.Customer{Name: "Jane", Email: "jane@example.test", Phone: "0770"}
	existing.ID = 4
	repo.On("FindByID", ctx, uint(4)).Return(existing, nil)
	repo.On("Save", ctx, existing).Return(nil)

	var req UpdateContactRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":null,"name":"Jane Roe"}`), &req))

	resp, err := svc.Update(ctx, 4, req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", resp.Name)
	assert.Empty(t, resp.Email)
	assert.Equal(t, "0770", resp.Phone)
}

func TestCustomerService_UpdateRejectsNullName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, nil)

	existing := &partner.Customer{Name: "Jane"}
	repo.On("FindByID", ctx, uint(4)).Return(existing, nil)

	_, err := svc.Update(ctx, 4, UpdateContactRequest{Name: shared.Null[string]()})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Equal(t, "Jane", existing.Name)
}

func TestCustomerService_UpdateTrimsName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo, nil)

	existing := &partner.Customer{Name: "Jane"}
	existing.ID = 4
	repo.On("FindByID", ctx, uint(4)).Return(existing, nil)
	repo.On("Save", ctx, existing).Return(nil)

	_, err := svc.Update(ctx, 4, UpdateContactRequest{Name: shared.Some("   ")})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
	assert.Equal(t, "Jane", existing.Name)

	resp, err := svc.Update(ctx, 4, UpdateContactRequest{Name: shared.Some(" Jane Roe ")})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", resp.Name)
}
