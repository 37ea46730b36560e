package services

import (
	"testing"

	"github.com/consilium-ai/consilium/ent"
	"github.com/consilium-ai/consilium/test/util"
)

// newTestClient creates an Ent client against a real PostgreSQL with an
// isolated per-test schema. See test/util for the CI/local split.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return client
}
