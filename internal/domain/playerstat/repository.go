package playerstat

import "context"

// Repository persists player season statistics.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]SeasonRecord, error)
	ListByPlayer(ctx context.Context, playerID string) ([]SeasonRecord, error)
	Get(ctx context.Context, seasonID, playerID string) (SeasonRecord, bool, error)
	// Upsert writes the given records, leaving other rows of the season alone.
	Upsert(ctx context.Context, records []SeasonRecord) error
	DeleteByPlayer(ctx context.Context, playerID string) error
	DeleteBySeason(ctx context.Context, seasonID string) error
}
