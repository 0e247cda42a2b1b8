package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/football-league/internal/mocks/usecase"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatchService_GoallessDrawClearsScoringEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 0)

	_, err := env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubPersija, ScorerID: "player-almeida", Minute: 12})
	require.NoError(t, err)
	_, err = env.eventSvc.SaveCard(ctx, m.ID, "", CardInput{ClubID: clubPersib, PlayerID: "player-kuipers", Type: "red", Minute: 40})
	require.NoError(t, err)
	_, err = env.eventSvc.SaveSubstitution(ctx, m.ID, "", SubstitutionInput{
		ClubID:      clubPersija,
		PlayerOutID: "player-almeida",
		PlayerInID:  "player-hansamu",
		Minute:      80,
	})
	require.NoError(t, err)

	_, err = env.matchSvc.Update(ctx, m.ID, MatchInput{
		SeasonID:   m.SeasonID,
		HomeClubID: m.HomeClubID,
		AwayClubID: m.AwayClubID,
		KickoffAt:  m.KickoffAt,
		Status:     string(match.StatusFinished),
		HomeScore:  intPtr(0),
		AwayScore:  intPtr(0),
	})
	require.NoError(t, err)

	events, err := env.eventSvc.List(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, events.Goals)
	assert.Empty(t, events.Cards)
	assert.Len(t, events.Substitutions, 1)

	scorer, ok, err := env.stats.Get(ctx, memory.SeasonIDCurrent, "player-almeida")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, scorer.Goals)

	points, _, _ := env.standingOf(t, clubPersija)
	assert.Equal(t, 1, points)
}

func TestMatchService_RejectsInvalidTransition(t *testing.T) {
	env := newTestEnv(t)
	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 1)

	_, err := env.matchSvc.Update(context.Background(), m.ID, MatchInput{
		SeasonID:   m.SeasonID,
		HomeClubID: m.HomeClubID,
		AwayClubID: m.AwayClubID,
		KickoffAt:  m.KickoffAt,
		Status:     string(match.StatusScheduled),
	})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestMatchService_CreateValidatesReferences(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.matchSvc.Create(ctx, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: "club-missing",
		KickoffAt:  kickoff(3),
	})
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	_, err = env.matchSvc.Create(ctx, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersija,
		KickoffAt:  kickoff(3),
	})
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestMatchEventService_RejectsOutsiders(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	m := env.finishedMatch(t, clubPersija, clubPersib, 1, 0)

	_, err := env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubBali, ScorerID: "player-bessa", Minute: 5})
	assert.True(t, errors.Is(err, ErrInvalidInput), "club not in match: %v", err)

	_, err = env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubPersija, ScorerID: "player-bessa", Minute: 5})
	assert.True(t, errors.Is(err, ErrInvalidInput), "player not on either team: %v", err)

	_, err = env.eventSvc.SaveGoal(ctx, m.ID, "", GoalInput{ClubID: clubPersija, ScorerID: "player-ghost", Minute: 5})
	assert.True(t, errors.Is(err, ErrNotFound), "unknown player: %v", err)

	_, err = env.eventSvc.SaveCard(ctx, m.ID, "", CardInput{ClubID: clubPersija, PlayerID: "player-gajos", Type: "green", Minute: 5})
	assert.True(t, errors.Is(err, ErrInvalidInput), "unknown card type: %v", err)

	_, err = env.eventSvc.SaveGoal(ctx, m.ID, "goal-missing", GoalInput{ClubID: clubPersija, ScorerID: "player-almeida", Minute: 5})
	assert.True(t, errors.Is(err, ErrNotFound), "unknown event id: %v", err)

	err = env.eventSvc.Delete(ctx, m.ID, match.KindGoal, "goal-missing")
	assert.True(t, errors.Is(err, ErrNotFound), "delete unknown event: %v", err)
}

func TestMatchEventService_FiresTriggerOnWrite(t *testing.T) {
	trigger := usecasemock.NewStatsTrigger(t)
	matches := memory.NewMatchRepository([]match.Match{{
		ID:         "match-1",
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersib,
		KickoffAt:  kickoff(1),
		Status:     match.StatusLive,
		HomeScore:  intPtr(0),
		AwayScore:  intPtr(0),
	}})
	svc := NewMatchEventService(
		matches, matches, memory.NewPlayerRepository(memory.SeedPlayers()),
		trigger, idgen.NewSequence("ev"), logging.NewNop(),
	)

	trigger.On("MatchEventsChanged", mock.Anything, "match-1").Return().Once()

	goal, err := svc.SaveGoal(context.Background(), "match-1", "", GoalInput{ClubID: clubPersib, ScorerID: "player-dasilva", Minute: 61})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", goal.ID)
	assert.Equal(t, match.GoalTypeRegular, goal.Type)

	// The deleted goal's scorer is passed along with the match.
	trigger.On("MatchEventsChanged", mock.Anything, "match-1", "player-dasilva").Return().Once()
	require.NoError(t, svc.Delete(context.Background(), "match-1", match.KindGoal, goal.ID))
}

func TestMatchService_UpdateTriggersBothSeasons(t *testing.T) {
	trigger := usecasemock.NewStatsTrigger(t)
	env := newTestEnv(t)
	svc := NewMatchService(
		env.matches, env.matches, env.seasons, env.clubs, env.referees, env.stadiums, env.standings,
		trigger, idgen.NewSequence("m"), MatchServiceConfig{}, logging.NewNop(),
	)
	ctx := context.Background()

	trigger.On("SeasonsChanged", mock.Anything, memory.SeasonIDCurrent).Return().Once()
	m, err := svc.Create(ctx, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersib,
		KickoffAt:  kickoff(2),
	})
	require.NoError(t, err)
	assert.Equal(t, match.StatusScheduled, m.Status)

	trigger.On("SeasonsChanged", mock.Anything, memory.SeasonIDCurrent, memory.SeasonIDCurrent).Return().Once()
	_, err = svc.Update(ctx, m.ID, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersib,
		KickoffAt:  kickoff(2),
		Status:     string(match.StatusLive),
		HomeScore:  intPtr(0),
		AwayScore:  intPtr(0),
	})
	require.NoError(t, err)
}

type failingClearEvents struct {
	*memory.MatchRepository
}

func (failingClearEvents) ClearScoringEvents(context.Context, string) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestMatchService_GoallessDrawRebuildsSeasonWhenClearFails(t *testing.T) {
	trigger := usecasemock.NewStatsTrigger(t)
	env := newTestEnv(t)
	svc := NewMatchService(
		env.matches, failingClearEvents{env.matches}, env.seasons, env.clubs, env.referees, env.stadiums, env.standings,
		trigger, idgen.NewSequence("m"), MatchServiceConfig{ZeroScoreClearsEvents: true}, logging.NewNop(),
	)
	ctx := context.Background()

	trigger.On("SeasonsChanged", mock.Anything, memory.SeasonIDCurrent).Return().Once()
	m, err := svc.Create(ctx, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersib,
		KickoffAt:  kickoff(3),
		Status:     string(match.StatusLive),
		HomeScore:  intPtr(1),
		AwayScore:  intPtr(0),
	})
	require.NoError(t, err)

	trigger.On("SeasonsChanged", mock.Anything, memory.SeasonIDCurrent, memory.SeasonIDCurrent).Return().Once()
	updated, err := svc.Update(ctx, m.ID, MatchInput{
		SeasonID:   memory.SeasonIDCurrent,
		HomeClubID: clubPersija,
		AwayClubID: clubPersib,
		KickoffAt:  kickoff(3),
		Status:     string(match.StatusFinished),
		HomeScore:  intPtr(0),
		AwayScore:  intPtr(0),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsGoallessDraw())
}
