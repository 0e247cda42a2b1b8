package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/config"
	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/management"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/partner"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/referee"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/stadium"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/transfer"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/football-league/internal/platform/cache"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type repositories struct {
	seasons   season.Repository
	clubs     club.Repository
	players   player.Repository
	matches   match.Repository
	events    match.EventRepository
	standings standing.Repository
	stats     playerstat.Repository
	transfers transfer.Repository
	referees  referee.Repository
	managers  management.Repository
	partners  partner.Repository
	stadiums  stadium.Repository
	apps      application.Repository
	coaches   club.CoachRepository
	writer    usecase.SeasonAggregateWriter

	// needsWarmup is set when aggregates must be rebuilt before serving.
	needsWarmup bool
}

func newMemoryRepositories() repositories {
	matches := memory.NewMatchRepository(nil)
	standings := memory.NewStandingRepository(memory.SeedMemberships())
	stats := memory.NewPlayerStatRepository()

	return repositories{
		seasons:     memory.NewSeasonRepository(memory.SeedSeasons()),
		clubs:       memory.NewClubRepository(memory.SeedClubs()),
		players:     memory.NewPlayerRepository(memory.SeedPlayers()),
		matches:     matches,
		events:      matches,
		standings:   standings,
		stats:       stats,
		transfers:   memory.NewTransferRepository(),
		referees:    memory.NewRefereeRepository(),
		managers:    memory.NewManagerRepository(),
		partners:    memory.NewPartnerRepository(),
		stadiums:    memory.NewStadiumRepository(),
		apps:        memory.NewApplicationRepository(),
		coaches:     memory.NewCoachRepository(),
		writer:      memory.NewSeasonAggregateWriter(standings, stats),
		needsWarmup: true,
	}
}

func newPostgresRepositories(ctx context.Context, cfg config.Config, db *sqlx.DB, logger *logging.Logger) (repositories, error) {
	if cfg.DBBootstrapSeed {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("database seed applied")
	}

	matches := postgres.NewMatchRepository(db)
	repos := repositories{
		seasons:     postgres.NewSeasonRepository(db),
		clubs:       postgres.NewClubRepository(db),
		players:     postgres.NewPlayerRepository(db),
		matches:     matches,
		events:      matches,
		standings:   postgres.NewStandingRepository(db),
		stats:       postgres.NewPlayerStatRepository(db),
		transfers:   postgres.NewTransferRepository(db),
		referees:    postgres.NewRefereeRepository(db),
		managers:    postgres.NewManagerRepository(db),
		partners:    postgres.NewPartnerRepository(db),
		stadiums:    postgres.NewStadiumRepository(db),
		apps:        postgres.NewApplicationRepository(db),
		coaches:     postgres.NewCoachRepository(db),
		writer:      postgres.NewSeasonAggregateWriter(db),
		needsWarmup: cfg.DBBootstrapSeed,
	}

	if cfg.CacheEnabled {
		repos.withReadCache(basecache.NewStore(cfg.CacheTTL))
		logger.Info("read cache enabled", "ttl", cfg.CacheTTL.String())
	}
	return repos, nil
}

// withReadCache fronts the hot read paths (tables, top scorers, season and
// club lookups) with store. Every writer of those entities goes through the
// decorators, so cached entries are dropped on change.
func (r *repositories) withReadCache(store *basecache.Store) {
	r.seasons = cache.NewSeasonRepository(r.seasons, store)
	r.clubs = cache.NewClubRepository(r.clubs, store)
	r.standings = cache.NewStandingRepository(r.standings, store)
	r.stats = cache.NewPlayerStatRepository(r.stats, store)
	r.writer = cache.NewAggregateWriter(r.writer, store)
}
