package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/transfer"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

type TransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]transfer.Transfer
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{transfers: make(map[string]transfer.Transfer)}
}

func (r *TransferRepository) List(_ context.Context, filter transfer.Filter) ([]transfer.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]transfer.Transfer, 0)
	for _, item := range r.transfers {
		switch {
		case filter.PlayerID != "" && item.PlayerID != filter.PlayerID:
			continue
		case filter.ClubID != "" && item.FromClubID != filter.ClubID && item.ToClubID != filter.ClubID:
			continue
		case filter.SeasonID != "" && item.SeasonID != filter.SeasonID:
			continue
		case filter.Status != "" && item.Status != filter.Status:
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b transfer.Transfer) int {
		return cmp.Or(b.TransferDate.Compare(a.TransferDate), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *TransferRepository) GetByID(_ context.Context, id string) (transfer.Transfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.transfers[id]
	return item, ok, nil
}

func (r *TransferRepository) Create(_ context.Context, item transfer.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transfers[item.ID]; exists {
		return fmt.Errorf("transfer %s: %w", item.ID, storeerr.ErrDuplicate)
	}
	r.transfers[item.ID] = item
	return nil
}

func (r *TransferRepository) Update(_ context.Context, item transfer.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.transfers[item.ID]; !exists {
		return fmt.Errorf("transfer %s does not exist", item.ID)
	}
	r.transfers[item.ID] = item
	return nil
}

func (r *TransferRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.transfers, id)
	return nil
}
