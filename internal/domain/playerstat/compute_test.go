package playerstat

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finished(id, home, away string, hs, as int) match.Match {
	return match.Match{
		ID:         id,
		SeasonID:   "s1",
		HomeClubID: home,
		AwayClubID: away,
		KickoffAt:  time.Date(2024, 4, 1, 15, 0, 0, 0, time.UTC),
		Status:     match.StatusFinished,
		HomeScore:  &hs,
		AwayScore:  &as,
	}
}

func roster() []player.Player {
	return []player.Player{
		{ID: "striker", ClubID: "A", SeasonID: "s1", Position: player.PositionForward},
		{ID: "winger", ClubID: "A", SeasonID: "s1", Position: player.PositionMidfielder},
		{ID: "keeperA", ClubID: "A", SeasonID: "s1", Position: player.PositionGoalkeeper},
		{ID: "keeperB", ClubID: "B", SeasonID: "s1", Position: player.PositionGoalkeeper},
	}
}

func index(records []SeasonRecord) map[string]SeasonRecord {
	out := make(map[string]SeasonRecord, len(records))
	for _, r := range records {
		out[r.PlayerID] = r
	}
	return out
}

func TestCompute_AssistCountedFromBothSources(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finished("m1", "A", "B", 1, 0)}
	events := match.Events{
		Goals:   []match.Goal{{ID: "g1", MatchID: "m1", ClubID: "A", ScorerID: "striker", AssistID: "winger", Type: match.GoalTypeHeader}},
		Assists: []match.Assist{{ID: "a1", MatchID: "m1", ClubID: "A", PlayerID: "winger"}},
	}

	got := index(Compute("s1", nil, roster(), matches, events))

	winger := got["winger"]
	assert.Equal(t, 2, winger.Assists)
	assert.Equal(t, 1, winger.AssistsFromGoals)
	assert.Equal(t, 1, winger.AssistsRecorded)
	assert.Equal(t, 1, got["striker"].Goals)
}

func TestCompute_GoalTypesCountAlikeAndCards(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finished("m1", "A", "B", 4, 0)}
	events := match.Events{
		Goals: []match.Goal{
			{ID: "g1", MatchID: "m1", ScorerID: "striker", Type: match.GoalTypePenalty},
			{ID: "g2", MatchID: "m1", ScorerID: "striker", Type: match.GoalTypeOwnGoal},
			{ID: "g3", MatchID: "m1", ScorerID: "striker", Type: match.GoalTypeFreeKick},
			{ID: "g4", MatchID: "m1", ScorerID: "striker", Type: match.GoalTypeRegular},
		},
		Cards: []match.Card{
			{ID: "k1", MatchID: "m1", PlayerID: "winger", Type: match.CardYellow},
			{ID: "k2", MatchID: "m1", PlayerID: "winger", Type: match.CardSecondYellow},
			{ID: "k3", MatchID: "m1", PlayerID: "keeperB", Type: match.CardRed},
		},
	}

	got := index(Compute("s1", nil, roster(), matches, events))

	assert.Equal(t, 4, got["striker"].Goals)
	assert.Equal(t, 1, got["winger"].YellowCards)
	assert.Equal(t, 1, got["winger"].RedCards)
	assert.Equal(t, 1, got["keeperB"].RedCards)
}

func TestCompute_ClubLevelAppearancesAndCleanSheets(t *testing.T) {
	t.Parallel()

	scheduled := finished("m3", "A", "B", 0, 0)
	scheduled.Status = match.StatusScheduled
	scheduled.HomeScore, scheduled.AwayScore = nil, nil

	matches := []match.Match{
		finished("m1", "A", "B", 2, 0),
		finished("m2", "B", "A", 1, 1),
		scheduled,
	}
	got := index(Compute("s1", nil, roster(), matches, match.Events{}))

	striker := got["striker"]
	assert.Equal(t, 2, striker.MatchesPlayed)
	assert.Equal(t, 2, striker.MatchesStarted)
	assert.Equal(t, 180, striker.MinutesPlayed)
	assert.Zero(t, striker.CleanSheets, "clean sheets are for goalkeepers only")
	assert.Equal(t, 1, got["keeperA"].CleanSheets)
	assert.Zero(t, got["keeperB"].CleanSheets)
}

func TestCompute_IgnoresEventsOfNonCountingMatches(t *testing.T) {
	t.Parallel()

	live := finished("m1", "A", "B", 0, 0)
	live.Status = match.StatusLive
	live.HomeScore, live.AwayScore = nil, nil
	foreign := finished("m2", "A", "B", 1, 0)
	foreign.SeasonID = "s0"

	events := match.Events{
		Goals: []match.Goal{
			{ID: "g1", MatchID: "m1", ScorerID: "striker"},
			{ID: "g2", MatchID: "m2", ScorerID: "striker"},
		},
	}
	got := index(Compute("s1", nil, roster(), []match.Match{live, foreign}, events))

	assert.Zero(t, got["striker"].Goals)
	assert.Zero(t, got["striker"].MatchesPlayed)
}

func TestCompute_ResetsExistingAndAddsEventPlayers(t *testing.T) {
	t.Parallel()

	existing := []SeasonRecord{{SeasonID: "s1", PlayerID: "retired", Goals: 7, MatchesPlayed: 10}}
	events := match.Events{Goals: []match.Goal{{ID: "g1", MatchID: "m1", ScorerID: "guest"}}}

	records := Compute("s1", existing, roster(), []match.Match{finished("m1", "A", "B", 1, 0)}, events)
	got := index(records)

	require.Equal(t, "retired", records[0].PlayerID, "existing records keep their order")
	assert.Equal(t, SeasonRecord{SeasonID: "s1", PlayerID: "retired"}, got["retired"])
	assert.Equal(t, 1, got["guest"].Goals)
	assert.Zero(t, got["guest"].MatchesPlayed, "players without a known club get no appearances")
	assert.Len(t, records, 6)
}

func TestCompute_CreditsAppearancesOnlyToSeasonPlayers(t *testing.T) {
	t.Parallel()

	nextSeason := player.Player{ID: "signing", ClubID: "A", SeasonID: "s2", Position: player.PositionGoalkeeper}
	scorer := player.Player{ID: "veteran", ClubID: "A", SeasonID: "s2", Position: player.PositionForward}
	events := match.Events{Goals: []match.Goal{{ID: "g1", MatchID: "m1", ScorerID: "veteran"}}}
	players := append(roster(), nextSeason, scorer)

	got := index(Compute("s1", nil, players, []match.Match{finished("m1", "A", "B", 1, 0)}, events))

	_, ok := got["signing"]
	assert.False(t, ok, "players of another season get no record")
	require.Contains(t, got, "veteran")
	assert.Equal(t, 1, got["veteran"].Goals)
	assert.Zero(t, got["veteran"].MatchesPlayed)
	assert.Zero(t, got["veteran"].MinutesPlayed)
	assert.Equal(t, 1, got["keeperA"].MatchesPlayed)
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	matches := []match.Match{finished("m1", "A", "B", 1, 0), finished("m2", "B", "A", 2, 2)}
	events := match.Events{
		Goals:   []match.Goal{{ID: "g1", MatchID: "m1", ScorerID: "striker", AssistID: "winger"}},
		Assists: []match.Assist{{ID: "a1", MatchID: "m2", PlayerID: "striker"}},
	}

	first := Compute("s1", nil, roster(), matches, events)
	second := Compute("s1", first, roster(), matches, events)
	assert.Equal(t, first, second)
}

func TestImplicatedAndOnly(t *testing.T) {
	t.Parallel()

	m := finished("m1", "B", "C", 1, 0)
	players := append(roster(), player.Player{ID: "cPlayer", ClubID: "C"})
	events := match.Events{Goals: []match.Goal{{ID: "g1", MatchID: "m1", ScorerID: "loanee"}, {ID: "g2", MatchID: "m9", ScorerID: "other"}}}

	ids := Implicated(m, players, events)
	assert.Equal(t, []string{"keeperB", "cPlayer", "loanee"}, ids)

	records := []SeasonRecord{{PlayerID: "keeperB"}, {PlayerID: "striker"}, {PlayerID: "loanee"}}
	assert.Len(t, Only(records, ids), 2)
}

func TestTopScorers(t *testing.T) {
	t.Parallel()

	records := []SeasonRecord{
		{PlayerID: "a", Goals: 3, Assists: 0},
		{PlayerID: "b", Goals: 5, Assists: 1},
		{PlayerID: "c", Goals: 3, Assists: 4},
		{PlayerID: "d", Goals: 0, Assists: 9},
		{PlayerID: "e", Goals: 3, Assists: 0},
	}

	got := TopScorers(records, 3)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].PlayerID, got[1].PlayerID, got[2].PlayerID})
	assert.Len(t, TopScorers(records, 0), 4)
}
