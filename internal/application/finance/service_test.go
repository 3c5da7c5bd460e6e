package finance

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/insurance/backend/internal/domain/shared"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/insurance/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{URL: "sqlite://:memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db.DB
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPremiumService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewPremiumService(persistence.NewGormPremiumRepository(openTestDB(t)), nil)

	due := valueobject.MustParseDate("2024-05-01")
	paid := valueobject.MustParseDate("2024-04-28")
	created, err := svc.Create(ctx, CreatePremiumRequest{Amount: decimalPtr("250.00"), DueDate: &due, PaidDate: &paid})
	require.NoError(t, err)
	assert.True(t, created.IsPaid)

	var req UpdatePremiumRequest
	require.NoError(t, json.Unmarshal([]byte(`{"paid_date":null}`), &req))
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.False(t, updated.IsPaid)
	assert.Nil(t, updated.PaidDate)
	assert.True(t, decimal.RequireFromString("250").Equal(updated.Amount))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PaidDate)
	assert.Equal(t, "2024-05-01", got.DueDate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount":null}`), &req))
	_, err = svc.Update(ctx, created.ID, req)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPremiumService_CreateRequiresAmount(t *testing.T) {
	svc := NewPremiumService(persistence.NewGormPremiumRepository(openTestDB(t)), nil)
	_, err := svc.Create(context.Background(), CreatePremiumRequest{})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestCommissionService_ListByAgent(t *testing.T) {
	ctx := context.Background()
	svc := NewCommissionService(persistence.NewGormCommissionRepository(openTestDB(t)), nil)

	agentA, agentB := uint(1), uint(2)
	for _, agent := range []*uint{&agentA, &agentA, &agentB} {
		_, err := svc.Create(ctx, CreateCommissionRequest{AgentID: agent, Amount: decimalPtr("10")})
		require.NoError(t, err)
	}

	filter := CommissionListFilter{AgentID: &agentA}
	items, total, err := svc.List(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), total)
}

func TestLedgerService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(persistence.NewGormLedgerRepository(openTestDB(t)), nil)

	_, err := svc.Create(ctx, CreateLedgerEntryRequest{Amount: decimalPtr("100"), EntryType: "debit", Description: "premium received"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateLedgerEntryRequest{Amount: decimalPtr("40"), EntryType: "Credit", Description: "claim paid"})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.EntryCount)
	assert.True(t, decimal.NewFromInt(100).Equal(summary.TotalDebits))
	assert.True(t, decimal.NewFromInt(40).Equal(summary.TotalCredits))
	assert.True(t, decimal.NewFromInt(60).Equal(summary.NetBalance))
}

func TestLedgerService_RejectsUnknownEntryType(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(persistence.NewGormLedgerRepository(openTestDB(t)), nil)

	_, err := svc.Create(ctx, CreateLedgerEntryRequest{EntryType: "sideways"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	created, err := svc.Create(ctx, CreateLedgerEntryRequest{Description: "opening"})
	require.NoError(t, err)
	assert.Empty(t, created.EntryType)

	_, err = svc.Update(ctx, created.ID, UpdateLedgerEntryRequest{EntryType: shared.Some("sideways")})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	updated, err := svc.Update(ctx, created.ID, UpdateLedgerEntryRequest{EntryType: shared.Some("credit")})
	require.NoError(t, err)
	assert.Equal(t, "credit", updated.EntryType)
	assert.Equal(t, "opening", updated.Description)
}
