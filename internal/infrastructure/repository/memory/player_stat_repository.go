package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/playerstat"
)

type playerSeasonKey struct {
	seasonID string
	playerID string
}

type PlayerStatRepository struct {
	mu      sync.RWMutex
	records map[playerSeasonKey]playerstat.SeasonRecord
	order   []playerSeasonKey
}

func NewPlayerStatRepository() *PlayerStatRepository {
	return &PlayerStatRepository{records: make(map[playerSeasonKey]playerstat.SeasonRecord)}
}

func (r *PlayerStatRepository) ListBySeason(_ context.Context, seasonID string) ([]playerstat.SeasonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstat.SeasonRecord, 0)
	for _, key := range r.order {
		if key.seasonID == seasonID {
			out = append(out, r.records[key])
		}
	}
	return out, nil
}

func (r *PlayerStatRepository) ListByPlayer(_ context.Context, playerID string) ([]playerstat.SeasonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstat.SeasonRecord, 0)
	for _, key := range r.order {
		if key.playerID == playerID {
			out = append(out, r.records[key])
		}
	}
	slices.SortStableFunc(out, func(a, b playerstat.SeasonRecord) int {
		return cmp.Compare(a.SeasonID, b.SeasonID)
	})
	return out, nil
}

func (r *PlayerStatRepository) Get(_ context.Context, seasonID, playerID string) (playerstat.SeasonRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[playerSeasonKey{seasonID: seasonID, playerID: playerID}]
	return rec, ok, nil
}

func (r *PlayerStatRepository) Upsert(_ context.Context, records []playerstat.SeasonRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		key := playerSeasonKey{seasonID: rec.SeasonID, playerID: rec.PlayerID}
		if _, exists := r.records[key]; !exists {
			r.order = append(r.order, key)
		}
		r.records[key] = rec
	}
	return nil
}

func (r *PlayerStatRepository) DeleteByPlayer(_ context.Context, playerID string) error {
	return r.deleteWhere(func(key playerSeasonKey) bool { return key.playerID == playerID })
}

func (r *PlayerStatRepository) DeleteBySeason(_ context.Context, seasonID string) error {
	return r.deleteWhere(func(key playerSeasonKey) bool { return key.seasonID == seasonID })
}

func (r *PlayerStatRepository) deleteWhere(match func(playerSeasonKey) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = slices.DeleteFunc(r.order, func(key playerSeasonKey) bool {
		if match(key) {
			delete(r.records, key)
			return true
		}
		return false
	})
	return nil
}
