package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/standing"
)

// SeasonAggregateWriter writes recomputed season aggregates into the memory
// standing and player statistics repositories.
type SeasonAggregateWriter struct {
	mu        sync.Mutex
	standings *StandingRepository
	stats     *PlayerStatRepository
}

func NewSeasonAggregateWriter(standings *StandingRepository, stats *PlayerStatRepository) *SeasonAggregateWriter {
	return &SeasonAggregateWriter{standings: standings, stats: stats}
}

// WithSeasonLock only runs fn: a memory store lives in one process, where
// the recompute service already serializes seasons.
func (w *SeasonAggregateWriter) WithSeasonLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (w *SeasonAggregateWriter) ReplaceSeasonAggregates(ctx context.Context, seasonID string, clubs []standing.Record, players []playerstat.SeasonRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.standings.upsert(clubs)
	return w.stats.Upsert(ctx, players)
}
