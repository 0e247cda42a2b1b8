package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/football-league/internal/platform/cache"
	"github.com/stretchr/testify/require"
)

func TestStandingRepository_EnsureInvalidatesSeasonList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	repo := NewStandingRepository(memory.NewStandingRepository(nil), store)

	require.NoError(t, repo.Ensure(ctx, []standing.Record{{SeasonID: "s1", ClubID: "a"}}))
	rows, err := repo.ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, repo.Ensure(ctx, []standing.Record{{SeasonID: "s1", ClubID: "b"}}))
	rows, err = repo.ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "a", rows[0].ClubID)
	require.Equal(t, "b", rows[1].ClubID)
}

func TestAggregateWriter_DropsCachedAggregates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	standings := memory.NewStandingRepository([]standing.Record{{SeasonID: "s1", ClubID: "a"}})
	stats := memory.NewPlayerStatRepository()

	cachedStandings := NewStandingRepository(standings, store)
	cachedStats := NewPlayerStatRepository(stats, store)
	writer := NewAggregateWriter(memory.NewSeasonAggregateWriter(standings, stats), store)

	before, err := cachedStandings.ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Zero(t, before[0].Points)
	players, err := cachedStats.ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, players)

	err = writer.ReplaceSeasonAggregates(ctx, "s1",
		[]standing.Record{{SeasonID: "s1", ClubID: "a", Games: 1, Wins: 1, Points: 3, Position: 1}},
		[]playerstat.SeasonRecord{{SeasonID: "s1", PlayerID: "p1", Goals: 2}},
	)
	require.NoError(t, err)

	after, err := cachedStandings.ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 3, after[0].Points)
	players, err = cachedStats.ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, 2, players[0].Goals)
}

func TestLoadSlice_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	load := func(context.Context) ([]string, error) { return []string{"a"}, nil }

	first, err := loadSlice(ctx, store, "k", load)
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := loadSlice(ctx, store, "k", load)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, second)
}
