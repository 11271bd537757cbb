package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/demonlist/internal/config"
	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	snapshotcache "github.com/riskibarqy/demonlist/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/demonlist/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/demonlist/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/demonlist/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/demonlist/internal/platform/cache"
	idgen "github.com/riskibarqy/demonlist/internal/platform/id"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
	"github.com/riskibarqy/demonlist/internal/platform/resilience"
	"github.com/riskibarqy/demonlist/internal/usecase"
)

// App is the wired API process: the HTTP server plus the resources it owns.
type App struct {
	Server *http.Server

	logger    *logging.Logger
	snapshots *basecache.Store[[]history.Placement]
	cacheTTL  time.Duration
	closers   []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger, cacheTTL: cfg.CacheTTL}

	thresholds := demon.Thresholds{ListSize: cfg.ListSize, ExtendedListSize: cfg.ExtendedListSize}
	store, err := a.openStore(ctx, cfg, thresholds)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := usecase.NewMetrics(registry)

	var placements usecase.PlacementCache
	if cfg.CacheEnabled {
		a.snapshots = basecache.NewStore[[]history.Placement](cfg.CacheTTL)
		placements = snapshotcache.NewSnapshotCache(a.snapshots)
	}

	machine := usecase.NewTimeMachine(store, placements, usecase.TimeMachineConfig{
		EarliestDate: cfg.EarliestDate,
		Workers:      cfg.SnapshotWorkers,
	}, metrics, logger)

	handler := httpapi.NewHandler(httpapi.Services{
		Overview:   usecase.NewOverviewService(store, machine),
		Machine:    machine,
		Positions:  usecase.NewPositionService(store, thresholds, metrics, logger),
		Demons:     usecase.NewDemonService(store, logger),
		Records:    usecase.NewRecordService(store, thresholds, metrics, logger),
		Players:    usecase.NewPlayerService(store, logger),
		Submitters: usecase.NewSubmitterService(store, logger),
	}, logger)

	clientIP, err := httpapi.NewClientIPResolver(cfg.TrustedProxyHeader, cfg.TrustedProxies)
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "client ip resolver")
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	}

	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:             logger,
		IDs:                idgen.NewRandomGenerator(),
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		ClientIP:           clientIP,
		Metrics:            metricsHandler,
	})

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) openStore(ctx context.Context, cfg config.Config, thresholds demon.Thresholds) (txn.Manager, error) {
	seed := memory.Seed{Thresholds: thresholds, SeededAt: cfg.EarliestDate}
	if cfg.SeedEnabled {
		seed = memory.DefaultSeed(thresholds, cfg.EarliestDate)
	}

	if cfg.StorageDriver != config.StoragePostgres {
		a.logger.Info("storage ready", "driver", config.StorageMemory, "seeded", cfg.SeedEnabled)
		return memory.NewStore(seed), nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	db, err := otelsqlx.Open("postgres", dbURL, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	a.closers = append(a.closers, db.Close)

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	otelsql.ReportDBStatsMetrics(db.DB, opts...)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, errors.Wrap(err, "ping postgres")
	}

	store := postgres.NewStore(db, a.logger)
	if cfg.DBCircuitEnabled {
		breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		})
		breaker.OnStateChange(func(from, to resilience.CircuitState) {
			a.logger.Warn("postgres circuit breaker state changed", "from", string(from), "to", string(to))
		})
		store.WithCircuitBreaker(breaker)
	}

	if cfg.SeedEnabled {
		seeded, err := postgres.BootstrapSeed(ctx, store, seed)
		if err != nil {
			return nil, errors.Wrap(err, "bootstrap seed")
		}
		a.logger.Info("seed checked", "seeded", seeded)
	}

	a.logger.Info("storage ready",
		"driver", config.StoragePostgres,
		"db_name", dbNameFromURL(dbURL),
		"circuit_breaker", cfg.DBCircuitEnabled,
	)
	return store, nil
}

// RunCacheJanitor evicts expired snapshot placements until ctx is done. It
// returns immediately when caching is disabled.
func (a *App) RunCacheJanitor(ctx context.Context) {
	if a.snapshots == nil {
		return
	}

	interval := a.cacheTTL
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := a.snapshots.Purge(); removed > 0 {
				a.logger.Debug("snapshot cache purged", "removed", removed, "remaining", a.snapshots.Len())
			}
		}
	}
}

// Close releases the storage resources. The HTTP server is shut down by the
// caller.
func (a *App) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = errors.CombineErrors(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
