//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/alvaras/pkg/postgres"
)

func TestUpMigrations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	require.Equal(t, int64(20250101120100), schemaVersion)

	version, err := postgres.UpMigrations(ctx, testDSN)
	require.NoError(t, err)
	require.Equal(t, schemaVersion, version)

	var applied int
	err = testPool.QueryRow(ctx,
		"SELECT COUNT(*) FROM "+postgres.MigrationsTable+" WHERE is_applied AND version_id > 0",
	).Scan(&applied)
	require.NoError(t, err)
	require.Equal(t, 2, applied)
}
