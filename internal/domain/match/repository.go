package match

import "context"

// Repository persists matches. Delete removes the match sub-events too.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id string) error
	CountByClub(ctx context.Context, clubID string) (int, error)
	CountBySeason(ctx context.Context, seasonID string) (int, error)
}

// EventRepository persists match sub-events. Save* inserts or replaces by ID.
type EventRepository interface {
	ListByMatch(ctx context.Context, matchID string) (Events, error)
	ListBySeason(ctx context.Context, seasonID string) (Events, error)

	SaveGoal(ctx context.Context, g Goal) error
	SaveCard(ctx context.Context, c Card) error
	SaveSubstitution(ctx context.Context, s Substitution) error
	SaveAssist(ctx context.Context, a Assist) error

	// DeleteEvent removes one event and reports whether it existed.
	DeleteEvent(ctx context.Context, kind EventKind, matchID, eventID string) (bool, error)
	// ClearScoringEvents removes the goals, cards and assists of a match,
	// keeping substitutions, and returns how many rows were removed.
	ClearScoringEvents(ctx context.Context, matchID string) (int, error)
	CountByPlayer(ctx context.Context, playerID string) (int, error)
}
