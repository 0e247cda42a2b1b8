package transfer

import "context"

// Repository persists player transfers.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Transfer, error)
	GetByID(ctx context.Context, id string) (Transfer, bool, error)
	Create(ctx context.Context, t Transfer) error
	Update(ctx context.Context, t Transfer) error
	Delete(ctx context.Context, id string) error
}
