package club

import "context"

// Repository persists clubs.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Club, error)
	GetByID(ctx context.Context, id string) (Club, bool, error)
	Create(ctx context.Context, c Club) error
	Update(ctx context.Context, c Club) error
	Delete(ctx context.Context, id string) error
}
