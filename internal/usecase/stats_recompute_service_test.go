package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRecompute_FinishedMatchUpdatesTable(t *testing.T) {
	env := newTestEnv(t)
	env.finishedMatch(t, clubPersija, clubPersib, 2, 1)

	points, games, position := env.standingOf(t, clubPersija)
	assert.Equal(t, 3, points)
	assert.Equal(t, 1, games)
	assert.Equal(t, 1, position)

	points, games, position = env.standingOf(t, clubPersib)
	assert.Equal(t, 0, points)
	assert.Equal(t, 1, games)
	assert.Equal(t, 4, position)

	rec, ok, err := env.standings.Get(context.Background(), memory.SeasonIDCurrent, clubPersib)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, rec.Losses)
	assert.Equal(t, 1, rec.GoalsFor)
	assert.Equal(t, 2, rec.GoalsAgainst)
	assert.Equal(t, -1, rec.GoalDifference)
}

func TestStatsRecompute_DeletingMatchResetsTable(t *testing.T) {
	env := newTestEnv(t)
	m := env.finishedMatch(t, clubPersija, clubPersib, 2, 1)

	require.NoError(t, env.matchSvc.Delete(context.Background(), m.ID))

	for _, clubID := range []string{clubPersija, clubPersib} {
		points, games, _ := env.standingOf(t, clubID)
		assert.Zero(t, points, clubID)
		assert.Zero(t, games, clubID)
	}
}

func TestStatsRecompute_ScheduledMatchDoesNotCount(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.matchSvc.Create(context.Background(), MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersebaya,
		AwayClubID: clubBali,
		KickoffAt:  kickoff(20),
		Status:     string(match.StatusScheduled),
	})
	require.NoError(t, err)

	_, games, _ := env.standingOf(t, clubPersebaya)
	assert.Zero(t, games)
}

func TestStatsRecompute_AssistsFromGoalsAndRecords(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 0)

	_, err := env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{
		ClubID:   clubPersija,
		ScorerID: "player-almeida",
		AssistID: "player-gajos",
		Minute:   33,
	})
	require.NoError(t, err)
	_, err = env.eventSvc.SaveAssist(ctx, m.ID, "", AssistInput{
		ClubID:   clubPersija,
		PlayerID: "player-gajos",
		Minute:   70,
	})
	require.NoError(t, err)

	rec, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, "player-gajos")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, rec.Assists)

	scorer, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, "player-almeida")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, scorer.Goals)
}

func TestStatsRecompute_RecomputeMatchSkipsUnchangedMatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 0)

	_, err := env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubPersija, ScorerID: "player-almeida", Minute: 10})
	require.NoError(t, err)

	processed, err := env.recompute.RecomputeMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, processed, "match already processed by the trigger")

	_, err = env.eventSvc.SaveCard(ctx, m.ID, "", CardInput{ClubID: clubPersib, PlayerID: "player-klok", Type: "yellow", Minute: 50})
	require.NoError(t, err)

	rec, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, "player-klok")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, rec.YellowCards)
}

func TestStatsRecompute_UnknownTargets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.recompute.RecomputeSeason(ctx, "season-missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = env.recompute.RecomputeMatch(ctx, "match-missing")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.NotPanics(t, func() {
		env.recompute.MatchEventsChanged(ctx, "match-missing")
		env.recompute.SeasonsChanged(ctx, "", "season-missing")
	})
}

func TestStatsRecompute_RecomputeAllSeasons(t *testing.T) {
	env := newTestEnv(t)
	env.finishedMatch(t, clubPersebaya, clubBali, 0, 3)

	result, err := env.recompute.RecomputeAllSeasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Zero(t, result.Failed)
	require.Len(t, result.Seasons, 1)
	assert.Equal(t, 4, result.Seasons[0].Clubs)
	assert.Equal(t, 1, result.Seasons[0].Matches)

	points, _, position := env.standingOf(t, clubBali)
	assert.Equal(t, 3, points)
	assert.Equal(t, 1, position)
}

func TestStatsRecompute_IgnoresClubPlayersOfOtherSeasons(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	next, err := env.seasonSvc.Create(ctx, SeasonInput{Name: "Liga 1 2026/27", Format: "single"})
	require.NoError(t, err)
	signing, err := env.playerSvc.Create(ctx, PlayerInput{
		ClubID:    clubPersija,
		SeasonID:  next.ID,
		FirstName: "Rizky",
		LastName:  "Ridho",
		Position:  "DF",
		Number:    5,
		Status:    "active",
	})
	require.NoError(t, err)

	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 0)
	_, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, signing.ID)
	require.NoError(t, err)
	assert.False(t, ok, "season recompute credited a player of another season")

	_, err = env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubPersija, ScorerID: "player-almeida", Minute: 12})
	require.NoError(t, err)
	_, ok, err = env.stats.Get(ctx, memory.SeasonIDCurrent, signing.ID)
	require.NoError(t, err)
	assert.False(t, ok, "match recompute credited a player of another season")

	keeper, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, "player-andritany")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, keeper.MatchesPlayed)
}

func TestStatsRecompute_DeletedEventOfDepartedPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 0)

	goal, err := env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubPersija, ScorerID: "player-almeida", Minute: 40})
	require.NoError(t, err)

	_, err = env.transferSvc.Create(ctx, TransferInput{
		PlayerID: "player-almeida",
		ToClubID: clubPersebaya,
		SeasonID: memory.SeasonIDCurrent,
		Status:   "confirmed",
	})
	require.NoError(t, err)
	rec, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, "player-almeida")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, rec.Goals)

	require.NoError(t, env.eventSvc.Delete(ctx, m.ID, match.KindGoal, goal.ID))

	rec, ok, err = env.stats.Get(ctx, memory.SeasonIDCurrent, "player-almeida")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, rec.Goals)
}

// recordingWriter logs the order in which the recompute service locks,
// reads and writes a season.
type recordingWriter struct {
	*memory.SeasonAggregateWriter
	calls *[]string
}

func (w recordingWriter) WithSeasonLock(ctx context.Context, seasonID string, fn func(ctx context.Context) error) error {
	*w.calls = append(*w.calls, "lock")
	defer func() { *w.calls = append(*w.calls, "unlock") }()
	return fn(ctx)
}

func (w recordingWriter) ReplaceSeasonAggregates(ctx context.Context, seasonID string, clubs []standing.Record, players []playerstat.SeasonRecord) error {
	*w.calls = append(*w.calls, "replace")
	return w.SeasonAggregateWriter.ReplaceSeasonAggregates(ctx, seasonID, clubs, players)
}

type recordingMatches struct {
	*memory.MatchRepository
	calls *[]string
}

func (r recordingMatches) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	*r.calls = append(*r.calls, "list matches")
	return r.MatchRepository.List(ctx, filter)
}

func TestStatsRecompute_ReadsInsideSeasonLock(t *testing.T) {
	env := newTestEnv(t)
	var calls []string
	svc := NewStatsRecomputeService(
		env.seasons, recordingMatches{env.matches, &calls}, env.matches, env.players, env.standings, env.stats,
		recordingWriter{memory.NewSeasonAggregateWriter(env.standings, env.stats), &calls},
		StatsRecomputeConfig{Workers: 1},
		logging.NewNop(),
	)

	_, err := svc.RecomputeSeason(context.Background(), memory.SeasonIDCurrent)
	require.NoError(t, err)
	assert.Equal(t, []string{"lock", "list matches", "replace", "unlock"}, calls)
}
