package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

const (
	clubPersija   = "club-persija"
	clubPersib    = "club-persib"
	clubPersebaya = "club-persebaya"
	clubBali      = "club-baliutd"
)

// testEnv wires every service to the seeded in-memory store with the real
// recompute service as trigger.
type testEnv struct {
	seasons   *memory.SeasonRepository
	clubs     *memory.ClubRepository
	players   *memory.PlayerRepository
	matches   *memory.MatchRepository
	standings *memory.StandingRepository
	stats     *memory.PlayerStatRepository
	transfers *memory.TransferRepository
	referees  *memory.RefereeRepository
	stadiums  *memory.StadiumRepository
	apps      *memory.ApplicationRepository
	coaches   *memory.CoachRepository

	recompute   *StatsRecomputeService
	seasonSvc   *SeasonService
	clubSvc     *ClubService
	playerSvc   *PlayerService
	matchSvc    *MatchService
	eventSvc    *MatchEventService
	transferSvc *TransferService
	standingSvc *StandingService
	stadiumSvc  *StadiumService
	appSvc      *ApplicationService
	coachSvc    *CoachService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logging.NewNop()
	ids := idgen.NewSequence("id")
	env := &testEnv{
		seasons:   memory.NewSeasonRepository(memory.SeedSeasons()),
		clubs:     memory.NewClubRepository(memory.SeedClubs()),
		players:   memory.NewPlayerRepository(memory.SeedPlayers()),
		matches:   memory.NewMatchRepository(nil),
		standings: memory.NewStandingRepository(memory.SeedMemberships()),
		stats:     memory.NewPlayerStatRepository(),
		transfers: memory.NewTransferRepository(),
		referees:  memory.NewRefereeRepository(),
		stadiums:  memory.NewStadiumRepository(),
		apps:      memory.NewApplicationRepository(),
		coaches:   memory.NewCoachRepository(),
	}

	env.recompute = NewStatsRecomputeService(
		env.seasons, env.matches, env.matches, env.players, env.standings, env.stats,
		memory.NewSeasonAggregateWriter(env.standings, env.stats),
		StatsRecomputeConfig{Workers: 2},
		logger,
	)
	env.seasonSvc = NewSeasonService(env.seasons, env.clubs, env.matches, env.players, env.standings, env.stats, env.coaches, env.recompute, ids, logger)
	env.clubSvc = NewClubService(env.clubs, env.matches, env.players, env.standings, env.coaches, env.recompute, ids, logger)
	env.playerSvc = NewPlayerService(env.players, env.clubs, env.seasons, env.matches, env.transfers, env.stats, env.recompute, ids, logger)
	env.matchSvc = NewMatchService(
		env.matches, env.matches, env.seasons, env.clubs, env.referees, env.stadiums, env.standings,
		env.recompute, ids, MatchServiceConfig{ZeroScoreClearsEvents: true}, logger,
	)
	env.eventSvc = NewMatchEventService(env.matches, env.matches, env.players, env.recompute, ids, logger)
	env.transferSvc = NewTransferService(env.transfers, env.players, env.clubs, env.seasons, env.recompute, ids, logger)
	env.standingSvc = NewStandingService(env.seasons, env.standings)
	env.stadiumSvc = NewStadiumService(env.stadiums, env.matches, ids)
	env.appSvc = NewApplicationService(env.apps, env.clubs, env.seasons, env.standings, env.recompute, ids, logger)
	env.coachSvc = NewCoachService(env.coaches, env.clubs, env.seasons, ids)
	return env
}

func intPtr(v int) *int { return &v }

func kickoff(day int) time.Time {
	return time.Date(2025, time.September, day, 19, 0, 0, 0, time.UTC)
}

// finishedMatch creates a finished match of the seeded season.
func (e *testEnv) finishedMatch(t *testing.T, home, away string, homeScore, awayScore int) match.Match {
	t.Helper()
	m, err := e.matchSvc.Create(context.Background(), MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: home,
		AwayClubID: away,
		KickoffAt:  kickoff(1),
		Status:     string(match.StatusFinished),
		HomeScore:  intPtr(homeScore),
		AwayScore:  intPtr(awayScore),
	})
	require.NoError(t, err)
	return m
}

func (e *testEnv) standingOf(t *testing.T, clubID string) (points, games, position int) {
	t.Helper()
	rec, ok, err := e.standings.Get(context.Background(), memory.SeasonIDCurrent, clubID)
	require.NoError(t, err)
	require.True(t, ok, "club %s has no record", clubID)
	return rec.Points, rec.Games, rec.Position
}
