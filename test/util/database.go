// Package util provides shared database helpers for integration tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/pkg/database"
)

var (
	// Shared connection string for all tests in local dev.
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// SetupTestDatabase creates an isolated test database and returns an Ent
// client bound to it. Both CI and local dev use per-test schemas:
// - CI: connects to the external PostgreSQL service (CI_DATABASE_URL)
// - Local: uses a shared testcontainer, started once per package
// Schema objects are created via Ent auto-migration plus the GIN indexes
// that live outside the Ent schema. Cleanup drops the schema.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	ctx := context.Background()

	connStr := getOrCreateSharedDatabase(t)
	schemaName := GenerateSchemaName(t)

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = db.Close()

	// Reconnect with search_path set for all pooled connections.
	db, err = stdsql.Open("pgx", AddSearchPathToConnString(connStr, schemaName))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	require.NoError(t, client.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	t.Cleanup(func() {
		_, err := db.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
		if err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schemaName, err)
		}
		_ = client.Close()
		_ = db.Close()
	})

	return client, db
}

// getOrCreateSharedDatabase returns a connection string to the shared
// database: CI_DATABASE_URL in CI, a package-shared testcontainer locally.
func getOrCreateSharedDatabase(t *testing.T) string {
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		return ciDatabaseURL
	}

	containerOnce.Do(func() {
		ctx := context.Background()

		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}

		connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("failed to get connection string: %w", err)
			return
		}
		sharedConnStr = connStr
	})

	require.NoError(t, containerErr, "Failed to setup shared test container")
	return sharedConnStr
}

// GenerateSchemaName creates a unique, PostgreSQL-safe schema name:
// test_<sanitized_test_name>_<random_hex>.
func GenerateSchemaName(t *testing.T) string {
	testName := strings.ToLower(t.Name())
	testName = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, testName)
	if len(testName) > 40 {
		testName = testName[:40]
	}

	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("test_%s_%s", testName, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path option to a pgx URL or
// keyword/value connection string.
func AddSearchPathToConnString(connStr, schemaName string) string {
	if strings.Contains(connStr, "://") {
		sep := "?"
		if strings.Contains(connStr, "?") {
			sep = "&"
		}
		return connStr + sep + "search_path=" + schemaName
	}
	return connStr + " search_path=" + schemaName
}
