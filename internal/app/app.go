package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/config"
	"github.com/riskibarqy/football-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/usecase"
)

// App is the assembled API process: HTTP server plus the resources it owns.
type App struct {
	Server    *http.Server
	Recompute *usecase.StatsRecomputeService

	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		repos repositories
		db    *sqlx.DB
		err   error
	)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = newMemoryRepositories()
	case config.StoragePostgres:
		db, err = openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repos, err = newPostgresRepositories(ctx, cfg, db, logger)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
	logger.Info("storage ready", "driver", cfg.StorageDriver)

	ids := idgen.NewUUIDGenerator()
	recompute := usecase.NewStatsRecomputeService(
		repos.seasons,
		repos.matches,
		repos.events,
		repos.players,
		repos.standings,
		repos.stats,
		repos.writer,
		usecase.StatsRecomputeConfig{
			Timeout:  cfg.RecomputeTimeout,
			Workers:  cfg.RecomputeWorkers,
			DedupTTL: cfg.MatchDedupTTL,
		},
		logger,
	)

	services := httpapi.Services{
		Seasons: usecase.NewSeasonService(
			repos.seasons, repos.clubs, repos.matches, repos.players, repos.standings, repos.stats, repos.coaches,
			recompute, ids, logger,
		),
		Clubs: usecase.NewClubService(
			repos.clubs, repos.matches, repos.players, repos.standings, repos.coaches,
			recompute, ids, logger,
		),
		Players: usecase.NewPlayerService(
			repos.players, repos.clubs, repos.seasons, repos.events, repos.transfers, repos.stats,
			recompute, ids, logger,
		),
		Standings: usecase.NewStandingService(repos.seasons, repos.standings),
		Matches: usecase.NewMatchService(
			repos.matches, repos.events, repos.seasons, repos.clubs, repos.referees, repos.stadiums, repos.standings,
			recompute, ids,
			usecase.MatchServiceConfig{ZeroScoreClearsEvents: cfg.ZeroScoreClearsEvents},
			logger,
		),
		Events: usecase.NewMatchEventService(
			repos.matches, repos.events, repos.players,
			recompute, ids, logger,
		),
		Transfers: usecase.NewTransferService(
			repos.transfers, repos.players, repos.clubs, repos.seasons,
			recompute, ids, logger,
		),
		Referees:     usecase.NewRefereeService(repos.referees, ids),
		Managers:     usecase.NewManagerService(repos.managers, ids),
		Partners:     usecase.NewPartnerService(repos.partners, ids),
		Stadiums:     usecase.NewStadiumService(repos.stadiums, repos.matches, ids),
		Coaches:      usecase.NewCoachService(repos.coaches, repos.clubs, repos.seasons, ids),
		Applications: usecase.NewApplicationService(
			repos.apps, repos.clubs, repos.seasons, repos.standings,
			recompute, ids, logger,
		),
		Recompute: recompute,
	}

	if repos.needsWarmup {
		result, err := recompute.RecomputeAllSeasons(ctx)
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("initial recompute: %w", err)
		}
		logger.Info("initial recompute finished", "succeeded", result.Succeeded, "failed", result.Failed)
	}

	router := httpapi.NewRouter(httpapi.NewHandler(services, logger), logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminToken:         cfg.AdminToken,
		InternalJobToken:   cfg.InternalJobToken,
		SwaggerEnabled:     cfg.SwaggerEnabled,
	})

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Recompute: recompute,
		db:        db,
		logger:    logger,
	}, nil
}

// Shutdown stops accepting requests, waits for in-flight ones and then closes
// the database pool.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

func closeDB(db *sqlx.DB) {
	if db != nil {
		_ = db.Close()
	}
}
