package underwriting

import (
	"context"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/underwriting"
	"github.com/stretchr/testify/mock"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uint) (*underwriting.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*underwriting.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]underwriting.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]underwriting.Client), args.Error(1)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *underwriting.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPolicyRepository is a mock implementation of PolicyRepository
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) FindByID(ctx context.Context, id uint) (*underwriting.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*underwriting.Policy), args.Error(1)
}

func (m *MockPolicyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]underwriting.Policy, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]underwriting.Policy), args.Error(1)
}

func (m *MockPolicyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPolicyRepository) Save(ctx context.Context, policy *underwriting.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPolicyRepository) ExistsByPolicyNumber(ctx context.Context, policyNumber string, excludeID uint) (bool, error) {
	args := m.Called(ctx, policyNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPolicyRepository) FindByClient(ctx context.Context, clientID uint) ([]underwriting.Policy, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]underwriting.Policy), args.Error(1)
}

// MockAuditRecorder captures audit actions
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, action, details string) {
	m.Called(ctx, action, details)
}
