package persistence

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/insurance/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockPostgres creates a GORM handle on a mocked postgres connection
func newMockPostgres(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gormDB, mock
}

func TestNewDatabase_SQLiteMemory(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{URL: ":memory:", MaxOpenConns: 10, MaxIdleConns: 2})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, config.DriverSQLite, db.Driver)
	require.NoError(t, db.AutoMigrate())
	for _, table := range []string{"users", "clients", "policies", "claims", "ledger", "audit", "reinsurance"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, db.Ping())
}

func TestDatabase_TablesAndDropAll(t *testing.T) {
	db, err := NewDatabase(&config.DatabaseConfig{URL: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	tables, err := db.Tables()
	require.NoError(t, err)
	assert.Len(t, tables, 13)
	assert.False(t, tables["clients"])

	require.NoError(t, db.AutoMigrate())
	tables, err = db.Tables()
	require.NoError(t, err)
	for name, exists := range tables {
		assert.True(t, exists, name)
	}

	require.NoError(t, db.DropAll())
	assert.False(t, db.DB.Migrator().HasTable("clients"))
}

func TestNewDatabase_InvalidURL(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{URL: "mysql://nope"})
	assert.Error(t, err)
}

func TestDatabase_Transaction(t *testing.T) {
	gdb := newTestDB(t)
	db := &Database{DB: gdb, Driver: config.DriverSQLite}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec("INSERT INTO products (name, description, created_at, updated_at) VALUES ('Life', '', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)").Error
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, gdb.Table("products").Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestGormClaimRepository_FindFiled_SQL(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewGormClaimRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "claims" WHERE filed_date IS NOT NULL ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "claim_number", "amount", "filed_date"}).
			AddRow(1, "CLM-1", "100.00", "2024-01-15").
			AddRow(2, "CLM-2", nil, "2024-02-01"))

	rows, err := repo.FindFiled(t.Context())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CLM-1", rows[0].ClaimNumber)
	assert.True(t, rows[0].Amount.Valid)
	assert.False(t, rows[1].Amount.Valid)
	assert.Equal(t, "2024-02", rows[1].FiledDate.MonthKey())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPolicyRepository_ExistsByPolicyNumber_SQL(t *testing.T) {
	db, mock := newMockPostgres(t)
	repo := NewGormPolicyRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "policies" WHERE policy_number = \$1 AND id <> \$2`).
		WithArgs("POL-1", 7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByPolicyNumber(t.Context(), "POL-1", 7)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
