package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

type SeasonRepository struct {
	mu      sync.RWMutex
	seasons map[string]season.Season
	groups  map[string][]season.Group
}

func NewSeasonRepository(seed []season.Season) *SeasonRepository {
	r := &SeasonRepository{
		seasons: make(map[string]season.Season, len(seed)),
		groups:  make(map[string][]season.Group),
	}
	for _, item := range seed {
		r.seasons[item.ID] = item
	}
	return r
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.seasons))
	for _, item := range r.seasons {
		out = append(out, item)
	}
	slices.SortFunc(out, compareSeasons)
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.seasons[id]
	return item, ok, nil
}

func (r *SeasonRepository) GetActive(_ context.Context) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.seasons {
		if item.IsActive {
			return item, true, nil
		}
	}
	return season.Season{}, false, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seasons[item.ID]; exists {
		return fmt.Errorf("season %s: %w", item.ID, storeerr.ErrDuplicate)
	}
	r.save(item)
	return nil
}

func (r *SeasonRepository) Update(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seasons[item.ID]; !exists {
		return fmt.Errorf("season %s does not exist", item.ID)
	}
	r.save(item)
	return nil
}

func (r *SeasonRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.seasons, id)
	delete(r.groups, id)
	return nil
}

func (r *SeasonRepository) SetActive(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if _, exists := r.seasons[id]; !exists {
			return fmt.Errorf("season %s does not exist", id)
		}
	}
	for key, item := range r.seasons {
		item.IsActive = key == id
		r.seasons[key] = item
	}
	return nil
}

func (r *SeasonRepository) ListGroups(_ context.Context, seasonID string) ([]season.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := slices.Clone(r.groups[seasonID])
	slices.SortStableFunc(out, func(a, b season.Group) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out, nil
}

func (r *SeasonRepository) CreateGroups(_ context.Context, groups []season.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range groups {
		for _, existing := range r.groups[g.SeasonID] {
			if existing.ID == g.ID || existing.Name == g.Name {
				return fmt.Errorf("group %q in season %s: %w", g.Name, g.SeasonID, storeerr.ErrDuplicate)
			}
		}
		r.groups[g.SeasonID] = append(r.groups[g.SeasonID], g)
	}
	return nil
}

func (r *SeasonRepository) UpdateGroup(_ context.Context, g season.Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	groups := r.groups[g.SeasonID]
	idx := -1
	for i, existing := range groups {
		switch {
		case existing.ID == g.ID:
			idx = i
		case existing.Name == g.Name:
			return fmt.Errorf("group %q in season %s: %w", g.Name, g.SeasonID, storeerr.ErrDuplicate)
		}
	}
	if idx < 0 {
		return fmt.Errorf("group %s does not exist in season %s", g.ID, g.SeasonID)
	}
	groups[idx] = g
	return nil
}

func (r *SeasonRepository) DeleteGroup(_ context.Context, seasonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.groups[seasonID] = slices.DeleteFunc(r.groups[seasonID], func(g season.Group) bool {
		return g.ID == id
	})
	return nil
}

// save stores item; the caller holds the write lock.
func (r *SeasonRepository) save(item season.Season) {
	if item.IsActive {
		for key, other := range r.seasons {
			if other.IsActive && key != item.ID {
				other.IsActive = false
				r.seasons[key] = other
			}
		}
	}
	r.seasons[item.ID] = item
}

// compareSeasons orders the newest start date first, undated seasons last.
func compareSeasons(a, b season.Season) int {
	switch {
	case a.StartDate == nil && b.StartDate != nil:
		return 1
	case a.StartDate != nil && b.StartDate == nil:
		return -1
	case a.StartDate != nil && b.StartDate != nil && !a.StartDate.Equal(*b.StartDate):
		return b.StartDate.Compare(*a.StartDate)
	}
	return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
}
