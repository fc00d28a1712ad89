package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/codescribler/playerprofile-sub000/internal/config"
	"github.com/codescribler/playerprofile-sub000/internal/domain/player"
	"github.com/codescribler/playerprofile-sub000/internal/domain/search"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/account"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/geocode"
	repocache "github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/cache"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/memory"
	"github.com/codescribler/playerprofile-sub000/internal/infrastructure/repository/postgres"
	"github.com/codescribler/playerprofile-sub000/internal/interfaces/httpapi"
	"github.com/codescribler/playerprofile-sub000/internal/platform/cache"
	idgen "github.com/codescribler/playerprofile-sub000/internal/platform/id"
	"github.com/codescribler/playerprofile-sub000/internal/platform/logging"
	"github.com/codescribler/playerprofile-sub000/internal/platform/resilience"
	"github.com/codescribler/playerprofile-sub000/internal/usecase"
)

// NewHTTPServer wires repositories, external clients and use cases into a
// ready-to-listen HTTP server. The returned cleanup releases whatever the
// chosen storage driver opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	finder, playerRepo, savedRepo, cleanup, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	geocoder := geocode.NewClient(geocode.ClientConfig{
		BaseURL:  cfg.GeocoderBaseURL,
		Timeout:  cfg.GeocoderTimeout,
		CacheTTL: cfg.GeocoderCacheTTL,
		Logger:   logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GeocoderCircuitEnabled,
			FailureThreshold: cfg.GeocoderCircuitFailureCount,
			OpenTimeout:      cfg.GeocoderCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GeocoderCircuitHalfOpenMaxReq,
		},
	})

	accountClient := account.NewClient(
		&http.Client{Timeout: cfg.AccountTimeout},
		cfg.AccountBaseURL,
		cfg.AccountIntrospectPath,
		cfg.AccountServiceKey,
		cfg.AccountPrincipalCacheTTL,
		logger,
	)

	searchSvc := usecase.NewSearchService(finder, playerRepo, geocoder)
	savedSearchSvc := usecase.NewSavedSearchService(savedRepo, searchSvc, idgen.NewRandomGenerator())

	handler := httpapi.NewHandler(searchSvc, savedSearchSvc, logger)
	router := httpapi.NewRouter(handler, accountClient, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (search.PlayerFinder, player.Repository, search.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "database", dbNameFromURL(cfg.DBURL))

		pgRepo := postgres.NewPlayerRepository(db)
		var playerRepo player.Repository = pgRepo
		if cfg.CacheEnabled {
			playerRepo = repocache.NewPlayerRepository(pgRepo, cache.NewStore(cfg.CacheTTL))
		}
		return pgRepo, playerRepo, postgres.NewSavedSearchRepository(db), db.Close, nil

	default:
		playerRepo := memory.NewPlayerRepository(
			memory.SeedPlayers(),
			memory.SeedPositions(),
			memory.SeedTeams(),
			memory.SeedAbilities(),
		)
		logger.Info("storage ready", "driver", config.StorageMemory)
		return playerRepo, playerRepo, memory.NewSavedSearchRepository(), func() error { return nil }, nil
	}
}
