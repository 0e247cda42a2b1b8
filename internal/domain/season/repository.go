package season

import "context"

// Repository persists seasons and their groups. Create and Update keep the
// single-active-season invariant: saving a season with IsActive=true clears
// the flag on every other season in the same write.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id string) (Season, bool, error)
	GetActive(ctx context.Context) (Season, bool, error)
	Create(ctx context.Context, s Season) error
	Update(ctx context.Context, s Season) error
	Delete(ctx context.Context, id string) error
	// SetActive makes id the only active season. An empty id deactivates all.
	SetActive(ctx context.Context, id string) error

	ListGroups(ctx context.Context, seasonID string) ([]Group, error)
	CreateGroups(ctx context.Context, groups []Group) error
	UpdateGroup(ctx context.Context, g Group) error
	DeleteGroup(ctx context.Context, seasonID, id string) error
}
