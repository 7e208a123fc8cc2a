package service

import (
	"context"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	CreateCompany(ctx context.Context, c entity.Company) error
	UpdateCompany(ctx context.Context, c entity.Company) error
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	CompanyByID(ctx context.Context, id uuid.UUID) (entity.Company, error)
	CompanyByCNPJ(ctx context.Context, cnpj string) (entity.Company, error)
	Companies(ctx context.Context) ([]entity.Company, error)

	CreatePermit(ctx context.Context, p entity.Permit) error
	UpdatePermit(ctx context.Context, p entity.Permit) error
	DeletePermit(ctx context.Context, id uuid.UUID) error
	PermitByID(ctx context.Context, id uuid.UUID) (entity.Permit, error)
	Permits(ctx context.Context, filter entity.PermitsFilter) ([]entity.Permit, error)

	CreateActivity(ctx context.Context, a entity.Activity) error
	CreateActivities(ctx context.Context, activities ...entity.Activity) error
	ActivitiesByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	CreateDocument(ctx context.Context, d entity.Document) error
	DocumentByID(ctx context.Context, id uuid.UUID) (entity.Document, error)
	DocumentsByCompany(ctx context.Context, companyID uuid.UUID) ([]entity.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	CreateUser(ctx context.Context, u entity.User) error
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	CountUsers(ctx context.Context) (int, error)
	Users(ctx context.Context) ([]entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SaveAttempt(ctx context.Context, a entity.Attempt) error
	FailedAttempts(ctx context.Context, email string, attemptType entity.AttemptType, since time.Time) ([]entity.Attempt, error)
	ClearFailedAttempts(ctx context.Context, email string, attemptType entity.AttemptType) error
	DeleteAttemptsBefore(ctx context.Context, before time.Time) (int64, error)
}

type Registry interface {
	Lookup(ctx context.Context, cnpj string) (entity.RegistryCompany, error)
}

type Cities interface {
	Cities(ctx context.Context, uf string) ([]entity.City, error)
}

type Storage interface {
	Type() entity.StorageType
	Save(ctx context.Context, key string, r io.Reader, size int64, mime string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type Events interface {
	PermitChanged(ctx context.Context, event entity.PermitEvent)
	PermitExpiring(ctx context.Context, event entity.PermitEvent)
	CompanyCreated(ctx context.Context, event entity.CompanyCreatedEvent)
}

type Service struct {
	repo     Repository
	registry Registry
	cities   Cities
	storage  Storage
	cache    Cache
	events   Events

	jwt           config.JWT
	login         config.Login
	cacheTTL      time.Duration
	maxUploadSize int64
	now           func() time.Time
}

func New(
	repo Repository,
	registry Registry,
	cities Cities,
	storage Storage,
	cache Cache,
	events Events,
	cfg config.Config,
) *Service {
	return &Service{
		repo:          repo,
		registry:      registry,
		cities:        cities,
		storage:       storage,
		cache:         cache,
		events:        events,
		jwt:           cfg.JWT,
		login:         cfg.Login,
		cacheTTL:      cfg.CacheTTL,
		maxUploadSize: cfg.Storage.MaxSizeMB << 20,
		now:           time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func ptr[T any](v T) *T {
	return &v
}
