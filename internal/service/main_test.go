package service_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/mocks"
	"github.com/samandr77/microservices/alvaras/internal/service"
	"github.com/samandr77/microservices/alvaras/pkg/config"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type TestService struct {
	repo     *mocks.MockRepository
	registry *mocks.MockRegistry
	cities   *mocks.MockCities
	storage  *mocks.MockStorage
	cache    *mocks.MockCache
	events   *mocks.MockEvents
	s        *service.Service
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &TestService{
		repo:     mocks.NewMockRepository(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		cities:   mocks.NewMockCities(ctrl),
		storage:  mocks.NewMockStorage(ctrl),
		cache:    mocks.NewMockCache(ctrl),
		events:   mocks.NewMockEvents(ctrl),
	}

	cfg := config.Config{
		CacheTTL: time.Hour,
		JWT:      config.JWT{Secret: "test-secret", TTL: time.Hour},
		Login:    config.Login{MaxAttempts: 3, Window: 15 * time.Minute},
		Storage:  config.Storage{MaxSizeMB: 1},
	}

	ts.s = service.New(ts.repo, ts.registry, ts.cities, ts.storage, ts.cache, ts.events, cfg).
		WithClock(func() time.Time { return testNow })

	return ts
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
