package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/standing"
)

// StandingRepository keeps club-season records per season in membership
// order.
type StandingRepository struct {
	mu       sync.RWMutex
	bySeason map[string][]standing.Record
}

func NewStandingRepository(seed []standing.Record) *StandingRepository {
	r := &StandingRepository{bySeason: make(map[string][]standing.Record)}
	r.upsertAll(seed)
	return r
}

func (r *StandingRepository) ListBySeason(_ context.Context, seasonID string) ([]standing.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.bySeason[seasonID]), nil
}

func (r *StandingRepository) ListByClub(_ context.Context, clubID string) ([]standing.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Record, 0)
	for _, records := range r.bySeason {
		for _, rec := range records {
			if rec.ClubID == clubID {
				out = append(out, rec)
			}
		}
	}
	slices.SortFunc(out, func(a, b standing.Record) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

func (r *StandingRepository) Get(_ context.Context, seasonID, clubID string) (standing.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.bySeason[seasonID] {
		if rec.ClubID == clubID {
			return rec, true, nil
		}
	}
	return standing.Record{}, false, nil
}

func (r *StandingRepository) Ensure(_ context.Context, records []standing.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		rows := r.bySeason[rec.SeasonID]
		i := slices.IndexFunc(rows, func(x standing.Record) bool { return x.ClubID == rec.ClubID })
		if i < 0 {
			r.bySeason[rec.SeasonID] = append(rows, standing.Record{
				SeasonID: rec.SeasonID,
				ClubID:   rec.ClubID,
				GroupID:  rec.GroupID,
			})
			continue
		}
		if rec.GroupID != "" {
			rows[i].GroupID = rec.GroupID
		}
	}
	return nil
}

func (r *StandingRepository) Delete(_ context.Context, seasonID, clubID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySeason[seasonID] = slices.DeleteFunc(r.bySeason[seasonID], func(x standing.Record) bool {
		return x.ClubID == clubID
	})
	return nil
}

func (r *StandingRepository) DeleteByClub(_ context.Context, clubID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for seasonID, rows := range r.bySeason {
		r.bySeason[seasonID] = slices.DeleteFunc(rows, func(x standing.Record) bool {
			return x.ClubID == clubID
		})
	}
	return nil
}

func (r *StandingRepository) DeleteBySeason(_ context.Context, seasonID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bySeason, seasonID)
	return nil
}

// upsert writes records in place, appending clubs not seen before.
func (r *StandingRepository) upsert(records []standing.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.upsertAll(records)
}

func (r *StandingRepository) upsertAll(records []standing.Record) {
	for _, rec := range records {
		rows := r.bySeason[rec.SeasonID]
		i := slices.IndexFunc(rows, func(x standing.Record) bool { return x.ClubID == rec.ClubID })
		if i < 0 {
			r.bySeason[rec.SeasonID] = append(rows, rec)
			continue
		}
		rows[i] = rec
	}
}
