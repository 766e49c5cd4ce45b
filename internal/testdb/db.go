//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/slotocki/flashcards/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var migrateOnce sync.Once

// IsIntegrationTestEnvironment returns true if a test database URL is set.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDatabaseURL returns DATABASE_URL, or FLASHCARDS_TEST_DB_URL when
// DATABASE_URL is empty.
func GetTestDatabaseURL() string {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL
	}
	return os.Getenv("FLASHCARDS_TEST_DB_URL")
}

// GetTestDBWithT opens the test database, applies migrations once per test
// binary and registers cleanup. The test is skipped when no database URL is
// configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if !IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", GetTestDatabaseURL())
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Failed to ping database")

	SetupTestDatabaseSchema(t, db)
	return db
}

// SetupTestDatabaseSchema applies the embedded migrations. It runs at most
// once per test binary.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	var err error
	migrateOnce.Do(func() {
		err = postgres.RunMigrations(context.Background(), db, "up", nil)
	})
	require.NoError(t, err, "Failed to run migrations")
}

// WithTx executes a test function within a transaction, automatically rolling back
// after the test completes. This ensures test isolation and prevents side effects.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}
