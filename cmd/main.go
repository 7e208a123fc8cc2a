package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/alvaras/internal/api"
	"github.com/samandr77/microservices/alvaras/internal/api/events"
	"github.com/samandr77/microservices/alvaras/internal/cache"
	"github.com/samandr77/microservices/alvaras/internal/entity"
	"github.com/samandr77/microservices/alvaras/internal/httpclients/ibge"
	"github.com/samandr77/microservices/alvaras/internal/httpclients/receitaws"
	"github.com/samandr77/microservices/alvaras/internal/httpclients/s3"
	"github.com/samandr77/microservices/alvaras/internal/repository"
	"github.com/samandr77/microservices/alvaras/internal/service"
	"github.com/samandr77/microservices/alvaras/internal/storage/local"
	"github.com/samandr77/microservices/alvaras/pkg/broker"
	"github.com/samandr77/microservices/alvaras/pkg/config"
	"github.com/samandr77/microservices/alvaras/pkg/job"
	"github.com/samandr77/microservices/alvaras/pkg/logger"
	"github.com/samandr77/microservices/alvaras/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 60 * time.Second
)

//	@title		Alvarás API
//	@version	1.0
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	version, err := postgres.UpMigrations(ctx, cfg.PostgresDSN)
	panicOnErr("up migrations", err)
	slog.InfoContext(ctx, "schema migrated", "version", version, "table", postgres.MigrationsTable)

	repo := repository.New(pool)

	var c service.Cache = cache.Nop{}

	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisURL)
		panicOnErr("connect to redis", err)
		defer rdb.Close()

		c = cache.New(rdb)
	}

	var storage service.Storage

	switch cfg.Storage.Type {
	case string(entity.StorageTypeCloud):
		storage = s3.NewClient(cfg.Storage.S3BaseURL, cfg.Storage.S3Token)
	default:
		storage, err = local.New(cfg.Storage.LocalDir)
		panicOnErr("init local storage", err)
	}

	var ev service.Events = broker.Nop{}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, broker.Topics{
			PermitChanged:  cfg.Kafka.PermitChangedTopic,
			PermitExpiring: cfg.Kafka.PermitExpiringTopic,
			CompanyCreated: cfg.Kafka.CompanyCreatedTopic,
		})
		defer producer.Close()

		ev = producer
	}

	s := service.New(
		repo,
		receitaws.NewClient(cfg.Registry),
		ibge.NewClient(cfg.IBGE),
		storage,
		c,
		ev,
		cfg,
	)

	// Kafka consumers
	if len(cfg.Kafka.Brokers) > 0 {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.CompanyCreatedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.CompanyCreatedTopic, eventHandler.OnCompanyCreated)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s, cfg.Storage.MaxSizeMB<<20)
	mw := api.NewMiddleware(cfg, s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort, "storage", storage.Type())

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	jobs := job.NewScheduler().
		Register("notify_expiring_permits", cfg.JobExpiringScan, s.NotifyExpiringPermits).
		Register("prune_login_attempts", cfg.JobPruneAttempts, s.PruneLoginAttempts)

	jobs.Start(ctx)

	waitSignal(cancel, server)

	wg.Wait()
	jobs.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
