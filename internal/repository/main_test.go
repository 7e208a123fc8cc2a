//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/samandr77/microservices/alvaras/pkg/postgres"
)

var (
	testPool      *pgxpool.Pool
	testDSN       string
	schemaVersion int64
)

func TestMain(m *testing.M) {
	code, err := run(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(code)
}

// run uses TEST_POSTGRES_DSN when set, otherwise starts a disposable postgres container.
func run(m *testing.M) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
			tcpostgres.WithDatabase("alvaras"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			return 0, fmt.Errorf("start postgres container: %w", err)
		}

		defer func() {
			_ = testcontainers.TerminateContainer(container)
		}()

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			return 0, fmt.Errorf("connection string: %w", err)
		}
	}

	testDSN = dsn

	var err error

	schemaVersion, err = postgres.UpMigrations(ctx, dsn)
	if err != nil {
		return 0, fmt.Errorf("up migrations: %w", err)
	}

	testPool, err = postgres.Connect(context.Background(), dsn, 10)
	if err != nil {
		return 0, fmt.Errorf("connect: %w", err)
	}
	defer testPool.Close()

	return m.Run(), nil
}
