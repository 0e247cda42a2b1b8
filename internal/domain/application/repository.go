package application

import "context"

// Repository persists club applications, newest first.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Application, error)
	GetByID(ctx context.Context, id string) (Application, bool, error)
	Create(ctx context.Context, a Application) error
	Update(ctx context.Context, a Application) error
	Delete(ctx context.Context, id string) error
}
