package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

type ClubRepository struct {
	mu    sync.RWMutex
	clubs map[string]club.Club
}

func NewClubRepository(seed []club.Club) *ClubRepository {
	clubs := make(map[string]club.Club, len(seed))
	for _, item := range seed {
		clubs[item.ID] = item
	}
	return &ClubRepository{clubs: clubs}
}

func (r *ClubRepository) List(_ context.Context, filter club.Filter) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.clubs))
	for _, item := range r.clubs {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if len(filter.IDs) > 0 && !slices.Contains(filter.IDs, item.ID) {
			continue
		}
		if !item.Matches(filter.Query) {
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b club.Club) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, id string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.clubs[id]
	return item, ok, nil
}

func (r *ClubRepository) Create(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clubs[item.ID]; exists {
		return fmt.Errorf("club %s: %w", item.ID, storeerr.ErrDuplicate)
	}
	r.clubs[item.ID] = item
	return nil
}

func (r *ClubRepository) Update(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clubs[item.ID]; !exists {
		return fmt.Errorf("club %s does not exist", item.ID)
	}
	r.clubs[item.ID] = item
	return nil
}

func (r *ClubRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clubs, id)
	return nil
}
