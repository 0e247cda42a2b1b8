package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

// MatchRepository stores matches and their sub-events. It implements both
// match.Repository and match.EventRepository so that deleting a match removes
// its events in the same write.
type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	events  map[string]*match.Events
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	r := &MatchRepository{
		matches: make(map[string]match.Match, len(seed)),
		events:  make(map[string]*match.Events),
	}
	for _, item := range seed {
		r.matches[item.ID] = item
	}
	return r
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		switch {
		case filter.SeasonID != "" && item.SeasonID != filter.SeasonID:
			continue
		case filter.ClubID != "" && !item.Involves(filter.ClubID):
			continue
		case filter.StadiumID != "" && item.StadiumID != filter.StadiumID:
			continue
		case filter.Status != "" && item.Status != filter.Status:
			continue
		case filter.From != nil && item.KickoffAt.Before(*filter.From):
			continue
		case filter.To != nil && !item.KickoffAt.Before(*filter.To):
			continue
		}
		out = append(out, item)
	}

	slices.SortFunc(out, func(a, b match.Match) int {
		c := cmp.Or(a.KickoffAt.Compare(b.KickoffAt), cmp.Compare(a.ID, b.ID))
		if filter.NewestFirst {
			return -c
		}
		return c
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; exists {
		return fmt.Errorf("match %s: %w", item.ID, storeerr.ErrDuplicate)
	}
	r.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; !exists {
		return fmt.Errorf("match %s does not exist", item.ID)
	}
	r.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.matches, id)
	delete(r.events, id)
	return nil
}

func (r *MatchRepository) CountByClub(_ context.Context, clubID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, item := range r.matches {
		if item.Involves(clubID) {
			n++
		}
	}
	return n, nil
}

func (r *MatchRepository) CountBySeason(_ context.Context, seasonID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, item := range r.matches {
		if item.SeasonID == seasonID {
			n++
		}
	}
	return n, nil
}

func (r *MatchRepository) ListByMatch(_ context.Context, matchID string) (match.Events, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneEvents(r.events[matchID]), nil
}

// ListBySeason returns the events of every match of the season, grouped by
// match in kickoff order.
func (r *MatchRepository) ListBySeason(_ context.Context, seasonID string) (match.Events, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]match.Match, 0)
	for _, item := range r.matches {
		if item.SeasonID == seasonID {
			matches = append(matches, item)
		}
	}
	slices.SortFunc(matches, func(a, b match.Match) int {
		return cmp.Or(a.KickoffAt.Compare(b.KickoffAt), cmp.Compare(a.ID, b.ID))
	})

	var out match.Events
	for _, item := range matches {
		e := cloneEvents(r.events[item.ID])
		out.Goals = append(out.Goals, e.Goals...)
		out.Cards = append(out.Cards, e.Cards...)
		out.Substitutions = append(out.Substitutions, e.Substitutions...)
		out.Assists = append(out.Assists, e.Assists...)
	}
	return out, nil
}

func (r *MatchRepository) SaveGoal(_ context.Context, g match.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.eventsOf(g.MatchID)
	if err != nil {
		return err
	}
	e.Goals = upsertEvent(e.Goals, g, func(x match.Goal) string { return x.ID })
	return nil
}

func (r *MatchRepository) SaveCard(_ context.Context, c match.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.eventsOf(c.MatchID)
	if err != nil {
		return err
	}
	e.Cards = upsertEvent(e.Cards, c, func(x match.Card) string { return x.ID })
	return nil
}

func (r *MatchRepository) SaveSubstitution(_ context.Context, s match.Substitution) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.eventsOf(s.MatchID)
	if err != nil {
		return err
	}
	e.Substitutions = upsertEvent(e.Substitutions, s, func(x match.Substitution) string { return x.ID })
	return nil
}

func (r *MatchRepository) SaveAssist(_ context.Context, a match.Assist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.eventsOf(a.MatchID)
	if err != nil {
		return err
	}
	e.Assists = upsertEvent(e.Assists, a, func(x match.Assist) string { return x.ID })
	return nil
}

func (r *MatchRepository) DeleteEvent(_ context.Context, kind match.EventKind, matchID, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[matchID]
	if !ok {
		return false, nil
	}

	var removed bool
	switch kind {
	case match.KindGoal:
		e.Goals, removed = removeEvent(e.Goals, eventID, func(x match.Goal) string { return x.ID })
	case match.KindCard:
		e.Cards, removed = removeEvent(e.Cards, eventID, func(x match.Card) string { return x.ID })
	case match.KindSubstitution:
		e.Substitutions, removed = removeEvent(e.Substitutions, eventID, func(x match.Substitution) string { return x.ID })
	case match.KindAssist:
		e.Assists, removed = removeEvent(e.Assists, eventID, func(x match.Assist) string { return x.ID })
	default:
		return false, fmt.Errorf("unknown event kind %q", kind)
	}
	return removed, nil
}

func (r *MatchRepository) ClearScoringEvents(_ context.Context, matchID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[matchID]
	if !ok {
		return 0, nil
	}
	n := len(e.Goals) + len(e.Cards) + len(e.Assists)
	e.Goals, e.Cards, e.Assists = nil, nil, nil
	return n, nil
}

func (r *MatchRepository) CountByPlayer(_ context.Context, playerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, e := range r.events {
		for _, g := range e.Goals {
			if g.ScorerID == playerID || g.AssistID == playerID {
				n++
			}
		}
		for _, c := range e.Cards {
			if c.PlayerID == playerID {
				n++
			}
		}
		for _, s := range e.Substitutions {
			if s.PlayerOutID == playerID || s.PlayerInID == playerID {
				n++
			}
		}
		for _, a := range e.Assists {
			if a.PlayerID == playerID {
				n++
			}
		}
	}
	return n, nil
}

// eventsOf returns the mutable event set of an existing match; the caller
// holds the write lock.
func (r *MatchRepository) eventsOf(matchID string) (*match.Events, error) {
	if _, exists := r.matches[matchID]; !exists {
		return nil, fmt.Errorf("match %s: %w", matchID, storeerr.ErrReferenced)
	}
	e, ok := r.events[matchID]
	if !ok {
		e = &match.Events{}
		r.events[matchID] = e
	}
	return e, nil
}

func cloneEvents(e *match.Events) match.Events {
	if e == nil {
		return match.Events{}
	}
	return match.Events{
		Goals:         slices.Clone(e.Goals),
		Cards:         slices.Clone(e.Cards),
		Substitutions: slices.Clone(e.Substitutions),
		Assists:       slices.Clone(e.Assists),
	}
}

func upsertEvent[T any](items []T, item T, id func(T) string) []T {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func removeEvent[T any](items []T, eventID string, id func(T) string) ([]T, bool) {
	for i := range items {
		if id(items[i]) == eventID {
			return slices.Delete(items, i, i+1), true
		}
	}
	return items, false
}
