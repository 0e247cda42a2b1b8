package usecase

import "context"

// StatsTrigger is the single entry point write services call after a write
// that can change standings or player statistics. Implementations must not
// fail the caller: errors are handled internally.
type StatsTrigger interface {
	// SeasonsChanged rebuilds standings and player statistics of each season.
	SeasonsChanged(ctx context.Context, seasonIDs ...string)
	// MatchEventsChanged refreshes the statistics of the players implicated
	// in one match after its sub-events changed. playerIDs names players an
	// event no longer refers to, such as the scorer of a deleted goal.
	MatchEventsChanged(ctx context.Context, matchID string, playerIDs ...string)
}

type noopStatsTrigger struct{}

func (noopStatsTrigger) SeasonsChanged(context.Context, ...string)             {}
func (noopStatsTrigger) MatchEventsChanged(context.Context, string, ...string) {}

func triggerOrNoop(t StatsTrigger) StatsTrigger {
	if t == nil {
		return noopStatsTrigger{}
	}
	return t
}

// uniqueNonEmpty keeps the first occurrence of every non-empty id.
func uniqueNonEmpty(ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
