package repository

import (
	"testing"
)

// Repository tests need a live Postgres instance; the query shapes are
// exercised indirectly through the service tests. Run these with a
// DATABASE_URL once integration infrastructure is in place.
func TestRepositoryIntegration(t *testing.T) {
	t.Skip("Integration tests require database setup")
}
