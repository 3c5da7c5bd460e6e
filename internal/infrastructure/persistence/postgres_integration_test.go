//go:build integration

package persistence_test

import (
	"context"
	"testing"
	"time"

	claimsapp "github.com/insurance/backend/internal/application/claims"
	identityapp "github.com/insurance/backend/internal/application/identity"
	"github.com/insurance/backend/internal/application/listing"
	"github.com/insurance/backend/internal/application/reporting"
	underwritingapp "github.com/insurance/backend/internal/application/underwriting"
	"github.com/insurance/backend/internal/domain/identity"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/insurance/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func startPostgres(t *testing.T) *persistence.Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("insurance_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := persistence.NewDatabase(&config.DatabaseConfig{URL: dsn, MaxOpenConns: 5, MaxIdleConns: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.Equal(t, config.DriverPostgres, db.Driver)
	require.NoError(t, db.AutoMigrate())
	return db
}

func TestPostgres_SchemaAndSeed(t *testing.T) {
	db := startPostgres(t)

	tables, err := db.Tables()
	require.NoError(t, err)
	for name, exists := range tables {
		assert.True(t, exists, name)
	}

	users := identityapp.NewUserService(persistence.NewGormUserRepository(db.DB), nil, zap.NewNop())
	created, err := users.EnsureUser(context.Background(), "admin", "admin123", identity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = users.EnsureUser(context.Background(), "admin", "other", identity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, created)

	auth := identityapp.NewAuthService(persistence.NewGormUserRepository(db.DB), zap.NewNop())
	principal, err := auth.Login(context.Background(), identityapp.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, identity.RoleAdmin, principal.Role)
}

func TestPostgres_ClientSearchAndPaging(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	clients := underwritingapp.NewClientService(persistence.NewGormClientRepository(db.DB), nil)

	for _, name := range []string{"Ada Lovelace", "Grace Hopper", "Alan Turing"} {
		_, err := clients.Create(ctx, underwritingapp.CreateClientRequest{Name: name, Email: "x@example.com"})
		require.NoError(t, err)
	}

	rows, total, err := clients.List(ctx, underwritingapp.ClientListFilter{Query: listing.Query{Search: "hopper"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grace Hopper", rows[0].Name)

	rows, total, err = clients.List(ctx, underwritingapp.ClientListFilter{Query: listing.Query{Page: 2, PageSize: 2, OrderBy: "name", OrderDir: "asc"}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grace Hopper", rows[0].Name)
}

func TestPostgres_ClaimsByMonth(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	claimRepo := persistence.NewGormClaimRepository(db.DB)
	reports := reporting.NewService(claimRepo)
	claims := claimsapp.NewClaimService(claimRepo, reports, nil)

	for i, filed := range []string{"2024-01-05", "2024-01-20", "2024-03-02"} {
		amount := decimal.NewFromInt(1000)
		date := valueobject.MustParseDate(filed)
		_, err := claims.Create(ctx, claimsapp.CreateClaimRequest{
			ClaimNumber: []string{"C-1", "C-2", "C-3"}[i],
			Amount:      &amount,
			FiledDate:   &date,
		})
		require.NoError(t, err)
	}
	_, err := claims.Create(ctx, claimsapp.CreateClaimRequest{ClaimNumber: "C-unfiled"})
	require.NoError(t, err)

	rows, err := reports.ClaimsByMonth(ctx, valueobject.LRD)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, 2, rows[0].Count)
	assert.True(t, rows[0].TotalValue.Equal(decimal.NewFromInt(2000)))

	rows, err = reports.ClaimsByMonth(ctx, valueobject.USD)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[1].TotalValue.Equal(decimal.NewFromInt(5)))
}
