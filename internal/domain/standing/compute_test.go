package standing

import (
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func played(id, home, away string, homeScore, awayScore int) match.Match {
	h, a := homeScore, awayScore
	return match.Match{
		ID:         id,
		SeasonID:   "s1",
		HomeClubID: home,
		AwayClubID: away,
		KickoffAt:  time.Date(2024, 4, 1, 15, 0, 0, 0, time.UTC),
		Status:     match.StatusFinished,
		HomeScore:  &h,
		AwayScore:  &a,
	}
}

func byClub(records []Record) map[string]Record {
	out := make(map[string]Record, len(records))
	for _, r := range records {
		out[r.ClubID] = r
	}
	return out
}

func TestCompute_HomeWin(t *testing.T) {
	t.Parallel()

	got := byClub(Compute("s1", nil, []match.Match{played("m1", "A", "B", 2, 1)}))

	require.Len(t, got, 2)
	assert.Equal(t, Record{SeasonID: "s1", ClubID: "A", Position: 1, Games: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3}, got["A"])
	assert.Equal(t, Record{SeasonID: "s1", ClubID: "B", Position: 2, Games: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Points: 0}, got["B"])
}

func TestCompute_DrawKeepsStableOrder(t *testing.T) {
	t.Parallel()

	memberships := []Record{{SeasonID: "s1", ClubID: "B"}, {SeasonID: "s1", ClubID: "A"}}
	got := Compute("s1", memberships, []match.Match{played("m1", "A", "B", 1, 1)})

	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, 1, r.Points)
		assert.Equal(t, 1, r.Draws)
		assert.Equal(t, 0, r.GoalDifference)
	}
	assert.Equal(t, "B", got[0].ClubID, "tie must keep membership order")
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, 2, got[1].Position)
}

func TestCompute_TieBrokenByGoalsFor(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		played("m1", "A", "C", 1, 0),
		played("m2", "B", "C", 3, 2),
	}
	got := Compute("s1", nil, matches)

	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].ClubID)
	assert.Equal(t, "A", got[1].ClubID)
	assert.Equal(t, "C", got[2].ClubID)
}

func TestCompute_MembershipWithoutMatchesAndReset(t *testing.T) {
	t.Parallel()

	stale := Record{SeasonID: "s1", ClubID: "A", Games: 9, Wins: 9, Points: 27, GoalsFor: 20, GoalDifference: 20, Position: 1}
	got := Compute("s1", []Record{stale, {SeasonID: "s1", ClubID: "B"}}, nil)

	require.Len(t, got, 2)
	for _, r := range got {
		assert.Zero(t, r.Points)
		assert.Zero(t, r.Games)
		assert.Zero(t, r.GoalsFor)
	}
	assert.Equal(t, []int{1, 2}, []int{got[0].Position, got[1].Position})
}

func TestCompute_SkipsNonCountingAndForeignMatches(t *testing.T) {
	t.Parallel()

	scheduled := played("m2", "A", "B", 0, 0)
	scheduled.Status = match.StatusScheduled
	scheduled.HomeScore, scheduled.AwayScore = nil, nil
	postponed := played("m3", "A", "B", 4, 0)
	postponed.Status = match.StatusPostponed
	other := played("m4", "A", "B", 5, 0)
	other.SeasonID = "s2"
	live := played("m5", "B", "A", 1, 0)
	live.Status = match.StatusLive

	got := byClub(Compute("s1", nil, []match.Match{scheduled, postponed, other, live}))

	require.Len(t, got, 2)
	assert.Equal(t, 3, got["B"].Points)
	assert.Equal(t, 1, got["A"].Games)
}

func TestCompute_EmptySeason(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Compute("s1", nil, nil))
}

func TestCompute_RanksPerGroup(t *testing.T) {
	t.Parallel()

	memberships := []Record{
		{SeasonID: "s1", ClubID: "A1", GroupID: "gA"},
		{SeasonID: "s1", ClubID: "A2", GroupID: "gA"},
		{SeasonID: "s1", ClubID: "B1", GroupID: "gB"},
		{SeasonID: "s1", ClubID: "B2", GroupID: "gB"},
	}
	matches := []match.Match{
		played("m1", "A1", "A2", 0, 2),
		played("m2", "B1", "B2", 3, 0),
	}
	got := Compute("s1", memberships, matches)
	tables := Tables(got)

	require.Len(t, tables, 2)
	assert.Equal(t, "gA", tables[0].GroupID)
	assert.Equal(t, "A2", tables[0].Rows[0].ClubID)
	assert.Equal(t, 1, tables[0].Rows[0].Position)
	assert.Equal(t, "B1", tables[1].Rows[0].ClubID)
	assert.Equal(t, 1, tables[1].Rows[0].Position)
	assert.Equal(t, 2, tables[1].Rows[1].Position)
}

func leagueFixture() ([]Record, []match.Match) {
	clubs := []string{"A", "B", "C", "D", "E"}
	memberships := make([]Record, 0, len(clubs))
	for _, c := range clubs {
		memberships = append(memberships, Record{SeasonID: "s1", ClubID: c})
	}

	var matches []match.Match
	n := 0
	for i, home := range clubs {
		for j, away := range clubs {
			if i == j {
				continue
			}
			n++
			matches = append(matches, played(fmt.Sprintf("m%d", n), home, away, (i*7+j*3)%4, (i*2+j*5)%3))
		}
	}
	return memberships, matches
}

func TestCompute_Properties(t *testing.T) {
	t.Parallel()

	memberships, matches := leagueFixture()
	first := Compute("s1", memberships, matches)
	second := Compute("s1", first, matches)

	require.Equal(t, first, second, "recompute must be idempotent")

	totalGoals := 0
	for _, m := range matches {
		totalGoals += *m.HomeScore + *m.AwayScore
	}

	sumFor, sumAgainst := 0, 0
	for i, r := range first {
		sumFor += r.GoalsFor
		sumAgainst += r.GoalsAgainst
		assert.Equal(t, 3*r.Wins+r.Draws, r.Points, "points law for %s", r.ClubID)
		assert.Equal(t, r.GoalsFor-r.GoalsAgainst, r.GoalDifference, "goal difference law for %s", r.ClubID)
		assert.Equal(t, r.Wins+r.Draws+r.Losses, r.Games)
		assert.Equal(t, i+1, r.Position, "positions must be 1..N without gaps")
		if i > 0 {
			assert.False(t, ranksAbove(r, first[i-1]), "%s ranked below a weaker club", r.ClubID)
		}
	}
	assert.Equal(t, sumFor, sumAgainst)
	assert.Equal(t, totalGoals, sumFor)
}

func TestSortByPosition(t *testing.T) {
	t.Parallel()

	stored := []Record{
		{ClubID: "A2", GroupID: "gA", Position: 2},
		{ClubID: "B1", GroupID: "gB", Position: 1},
		{ClubID: "A1", GroupID: "gA", Position: 1},
	}
	got := SortByPosition(stored)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"A1", "A2", "B1"}, []string{got[0].ClubID, got[1].ClubID, got[2].ClubID})
}
