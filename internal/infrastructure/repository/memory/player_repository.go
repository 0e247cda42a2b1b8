package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	players := make(map[string]player.Player, len(seed))
	for _, item := range seed {
		players[item.ID] = item
	}
	return &PlayerRepository{players: players}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, item := range r.players {
		switch {
		case filter.ClubID != "" && item.ClubID != filter.ClubID:
			continue
		case len(filter.ClubIDs) > 0 && !slices.Contains(filter.ClubIDs, item.ClubID):
			continue
		case filter.SeasonID != "" && item.SeasonID != filter.SeasonID:
			continue
		case filter.Position != "" && item.Position != filter.Position:
			continue
		case len(filter.IDs) > 0 && !slices.Contains(filter.IDs, item.ID):
			continue
		case !item.Matches(filter.Query):
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, comparePlayers)
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[id]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[item.ID]; exists {
		return fmt.Errorf("player %s: %w", item.ID, storeerr.ErrDuplicate)
	}
	r.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[item.ID]; !exists {
		return fmt.Errorf("player %s does not exist", item.ID)
	}
	r.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.players, id)
	return nil
}

func comparePlayers(a, b player.Player) int {
	return cmp.Or(
		cmp.Compare(a.LastName, b.LastName),
		cmp.Compare(a.FirstName, b.FirstName),
		cmp.Compare(a.ID, b.ID),
	)
}
