package underwriting

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/insurance/backend/internal/domain/underwriting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPolicyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores references without checking them", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)

		clientID := uint(404)
		start := valueobject.MustParseDate("2024-01-01")
		repo.On("ExistsByPolicyNumber", ctx, "POL-1", uint(0)).Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*underwriting.Policy")).Return(nil)

		resp, err := svc.Create(ctx, CreatePolicyRequest{
			PolicyNumber: "POL-1",
			ClientID:     &clientID,
			StartDate:    &start,
			Status:       underwriting.PolicyStatusActive,
		})
		require.NoError(t, err)
		assert.Equal(t, "POL-1", resp.PolicyNumber)
		require.NotNil(t, resp.ClientID)
		assert.Equal(t, uint(404), *resp.ClientID)
		assert.Equal(t, "2024-01-01", resp.StartDate.String())
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)
		repo.On("ExistsByPolicyNumber", ctx, "POL-1", uint(0)).Return(true, nil)

		_, err := svc.Create(ctx, CreatePolicyRequest{PolicyNumber: "POL-1"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPolicyService_Update(t *testing.T) {
	ctx := context.Background()
	existing := func() *underwriting.Policy {
		start := valueobject.MustParseDate("2024-01-01")
		end := valueobject.MustParseDate("2024-12-31")
		clientID := uint(1)
		p := &underwriting.Policy{
			PolicyNumber: "POL-1",
			ClientID:     &clientID,
			StartDate:    &start,
			EndDate:      &end,
			Status:       "active",
		}
		p.ID = 7
		return p
	}

	t.Run("null clears end date and leaves the rest", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)
		repo.On("FindByID", ctx, uint(7)).Return(existing(), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		var req UpdatePolicyRequest
		require.NoError(t, json.Unmarshal([]byte(`{"end_date":null,"status":"expired"}`), &req))

		resp, err := svc.Update(ctx, 7, req)
		require.NoError(t, err)
		assert.Nil(t, resp.EndDate)
		assert.Equal(t, "expired", resp.Status)
		assert.Equal(t, "2024-01-01", resp.StartDate.String())
		require.NotNil(t, resp.ClientID)
		assert.Equal(t, uint(1), *resp.ClientID)
		repo.AssertNotCalled(t, "ExistsByPolicyNumber", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("renumbering checks uniqueness against other rows", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)
		repo.On("FindByID", ctx, uint(7)).Return(existing(), nil)
		repo.On("ExistsByPolicyNumber", ctx, "POL-2", uint(7)).Return(true, nil)

		_, err := svc.Update(ctx, 7, UpdatePolicyRequest{PolicyNumber: shared.Some("POL-2")})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("policy number cannot be nulled", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)
		repo.On("FindByID", ctx, uint(7)).Return(existing(), nil)

		_, err := svc.Update(ctx, 7, UpdatePolicyRequest{PolicyNumber: shared.Null[string]()})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("blank policy number is rejected", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)
		repo.On("FindByID", ctx, uint(7)).Return(existing(), nil)

		_, err := svc.Update(ctx, 7, UpdatePolicyRequest{PolicyNumber: shared.Some("   ")})
		require.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Contains(t, err.Error(), "Policy number cannot be empty")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("padded number is trimmed before the uniqueness check", func(t *testing.T) {
		repo := new(MockPolicyRepository)
		svc := NewPolicyService(repo, nil)
		repo.On("FindByID", ctx, uint(7)).Return(existing(), nil)
		repo.On("ExistsByPolicyNumber", ctx, "POL-2", uint(7)).Return(true, nil)

		_, err := svc.Update(ctx, 7, UpdatePolicyRequest{PolicyNumber: shared.Some(" POL-2 ")})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPolicyService_ListByClient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPolicyRepository)
	svc := NewPolicyService(repo, nil)
	repo.On("FindByClient", ctx, uint(1)).Return([]underwriting.Policy{{PolicyNumber: "A"}, {PolicyNumber: "B"}}, nil)

	items, err := svc.ListByClient(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
