package standing

import "context"

// Repository persists club-season records. Replacing the aggregates of a whole
// season is done through the season aggregate writer so that standings and
// player statistics change in one write.
type Repository interface {
	// ListBySeason returns records in membership order (first joined first).
	ListBySeason(ctx context.Context, seasonID string) ([]Record, error)
	ListByClub(ctx context.Context, clubID string) ([]Record, error)
	Get(ctx context.Context, seasonID, clubID string) (Record, bool, error)
	// Ensure creates zeroed records for clubs that have none in the season.
	// Existing records keep their aggregates; a non-empty GroupID on the input
	// updates the group of an existing record.
	Ensure(ctx context.Context, records []Record) error
	Delete(ctx context.Context, seasonID, clubID string) error
	DeleteByClub(ctx context.Context, clubID string) error
	DeleteBySeason(ctx context.Context, seasonID string) error
}
