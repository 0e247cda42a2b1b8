package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type GoalInput struct {
	ClubID      string
	ScorerID    string
	AssistID    string
	Minute      int
	Type        string
	Description string
}

type CardInput struct {
	ClubID   string
	PlayerID string
	Type     string
	Minute   int
	Reason   string
}

type SubstitutionInput struct {
	ClubID      string
	PlayerOutID string
	PlayerInID  string
	Minute      int
}

type AssistInput struct {
	ClubID   string
	PlayerID string
	Minute   int
}

// MatchEventService writes goals, cards, substitutions and assists. Every
// successful write refreshes the statistics of the players in the match.
//
// The Save methods create an event when eventID is empty and replace the
// event otherwise.
type MatchEventService struct {
	matchRepo  match.Repository
	eventRepo  match.EventRepository
	playerRepo player.Repository
	trigger    StatsTrigger
	idGen      idgen.Generator
	logger     *logging.Logger
}

func NewMatchEventService(
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	playerRepo player.Repository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchEventService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchEventService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
		trigger:    triggerOrNoop(trigger),
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *MatchEventService) List(ctx context.Context, matchID string) (match.Events, error) {
	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Events{}, err
	}
	events, err := s.eventRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return match.Events{}, fmt.Errorf("list match events: %w", err)
	}
	return events, nil
}

func (s *MatchEventService) SaveGoal(ctx context.Context, matchID, eventID string, input GoalInput) (match.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchEventService.SaveGoal", attribute.String("match_id", matchID))
	defer span.End()

	goalType, err := match.ParseGoalType(input.Type)
	if err != nil {
		return match.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m, id, previous, err := s.prepare(ctx, matchID, match.KindGoal, eventID)
	if err != nil {
		return match.Goal{}, err
	}

	goal := match.Goal{
		ID:          id,
		MatchID:     m.ID,
		ClubID:      strings.TrimSpace(input.ClubID),
		ScorerID:    strings.TrimSpace(input.ScorerID),
		AssistID:    strings.TrimSpace(input.AssistID),
		Minute:      input.Minute,
		Type:        goalType,
		Description: strings.TrimSpace(input.Description),
	}
	if err := goal.Validate(); err != nil {
		return match.Goal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkParticipants(ctx, m, goal.ClubID, goal.ScorerID, goal.AssistID); err != nil {
		return match.Goal{}, err
	}
	if err := s.eventRepo.SaveGoal(ctx, goal); err != nil {
		return match.Goal{}, storeError("save goal", err)
	}

	s.trigger.MatchEventsChanged(ctx, m.ID, previous...)
	return goal, nil
}

func (s *MatchEventService) SaveCard(ctx context.Context, matchID, eventID string, input CardInput) (match.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchEventService.SaveCard", attribute.String("match_id", matchID))
	defer span.End()

	cardType, err := match.ParseCardType(input.Type)
	if err != nil {
		return match.Card{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m, id, previous, err := s.prepare(ctx, matchID, match.KindCard, eventID)
	if err != nil {
		return match.Card{}, err
	}

	card := match.Card{
		ID:       id,
		MatchID:  m.ID,
		ClubID:   strings.TrimSpace(input.ClubID),
		PlayerID: strings.TrimSpace(input.PlayerID),
		Type:     cardType,
		Minute:   input.Minute,
		Reason:   strings.TrimSpace(input.Reason),
	}
	if err := card.Validate(); err != nil {
		return match.Card{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkParticipants(ctx, m, card.ClubID, card.PlayerID); err != nil {
		return match.Card{}, err
	}
	if err := s.eventRepo.SaveCard(ctx, card); err != nil {
		return match.Card{}, storeError("save card", err)
	}

	s.trigger.MatchEventsChanged(ctx, m.ID, previous...)
	return card, nil
}

func (s *MatchEventService) SaveSubstitution(ctx context.Context, matchID, eventID string, input SubstitutionInput) (match.Substitution, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchEventService.SaveSubstitution", attribute.String("match_id", matchID))
	defer span.End()

	m, id, previous, err := s.prepare(ctx, matchID, match.KindSubstitution, eventID)
	if err != nil {
		return match.Substitution{}, err
	}

	sub := match.Substitution{
		ID:          id,
		MatchID:     m.ID,
		ClubID:      strings.TrimSpace(input.ClubID),
		PlayerOutID: strings.TrimSpace(input.PlayerOutID),
		PlayerInID:  strings.TrimSpace(input.PlayerInID),
		Minute:      input.Minute,
	}
	if err := sub.Validate(); err != nil {
		return match.Substitution{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkParticipants(ctx, m, sub.ClubID, sub.PlayerOutID, sub.PlayerInID); err != nil {
		return match.Substitution{}, err
	}
	if err := s.eventRepo.SaveSubstitution(ctx, sub); err != nil {
		return match.Substitution{}, storeError("save substitution", err)
	}

	s.trigger.MatchEventsChanged(ctx, m.ID, previous...)
	return sub, nil
}

func (s *MatchEventService) SaveAssist(ctx context.Context, matchID, eventID string, input AssistInput) (match.Assist, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchEventService.SaveAssist", attribute.String("match_id", matchID))
	defer span.End()

	m, id, previous, err := s.prepare(ctx, matchID, match.KindAssist, eventID)
	if err != nil {
		return match.Assist{}, err
	}

	assist := match.Assist{
		ID:       id,
		MatchID:  m.ID,
		ClubID:   strings.TrimSpace(input.ClubID),
		PlayerID: strings.TrimSpace(input.PlayerID),
		Minute:   input.Minute,
	}
	if err := assist.Validate(); err != nil {
		return match.Assist{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkParticipants(ctx, m, assist.ClubID, assist.PlayerID); err != nil {
		return match.Assist{}, err
	}
	if err := s.eventRepo.SaveAssist(ctx, assist); err != nil {
		return match.Assist{}, storeError("save assist", err)
	}

	s.trigger.MatchEventsChanged(ctx, m.ID, previous...)
	return assist, nil
}

func (s *MatchEventService) Delete(ctx context.Context, matchID string, kind match.EventKind, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchEventService.Delete", attribute.String("match_id", matchID))
	defer span.End()

	if _, err := match.ParseEventKind(string(kind)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return err
	}
	eventID = strings.TrimSpace(eventID)
	previous, err := s.existingEventPlayers(ctx, m, kind, eventID)
	if err != nil {
		return err
	}

	deleted, err := s.eventRepo.DeleteEvent(ctx, kind, m.ID, eventID)
	if err != nil {
		return fmt.Errorf("delete match event: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s=%s in match=%s", ErrNotFound, kind, eventID, m.ID)
	}

	s.trigger.MatchEventsChanged(ctx, m.ID, previous...)
	return nil
}

// prepare loads the match and resolves the event id: a new id for creation,
// or the given id after checking it belongs to the match. For a replacement
// it also returns the players named by the event before the write.
func (s *MatchEventService) prepare(ctx context.Context, matchID string, kind match.EventKind, eventID string) (match.Match, string, []string, error) {
	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, "", nil, err
	}

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		id, err := s.idGen.NewID()
		if err != nil {
			return match.Match{}, "", nil, fmt.Errorf("generate event id: %w", err)
		}
		return m, id, nil, nil
	}

	previous, err := s.existingEventPlayers(ctx, m, kind, eventID)
	if err != nil {
		return match.Match{}, "", nil, err
	}
	return m, eventID, previous, nil
}

// existingEventPlayers returns the players named by a stored event of m.
// They may have left both clubs since, so the trigger is told about them.
func (s *MatchEventService) existingEventPlayers(ctx context.Context, m match.Match, kind match.EventKind, eventID string) ([]string, error) {
	events, err := s.eventRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	players, ok := eventPlayers(events, kind, eventID)
	if !ok {
		return nil, fmt.Errorf("%w: %s=%s in match=%s", ErrNotFound, kind, eventID, m.ID)
	}
	return players, nil
}

// checkParticipants requires clubID to be the home or away club and every
// player to belong to one of them.
func (s *MatchEventService) checkParticipants(ctx context.Context, m match.Match, clubID string, playerIDs ...string) error {
	if !m.Involves(clubID) {
		return fmt.Errorf("%w: club %s does not play in match %s", ErrInvalidInput, clubID, m.ID)
	}

	ids := uniqueNonEmpty(playerIDs...)
	if len(ids) == 0 {
		return nil
	}
	players, err := s.playerRepo.List(ctx, player.Filter{IDs: ids})
	if err != nil {
		return fmt.Errorf("list event players: %w", err)
	}
	found := make(map[string]player.Player, len(players))
	for _, p := range players {
		found[p.ID] = p
	}
	for _, id := range ids {
		p, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: player=%s", ErrNotFound, id)
		}
		if !m.Involves(p.ClubID) {
			return fmt.Errorf("%w: player %s is not on either team", ErrInvalidInput, id)
		}
	}
	return nil
}

func (s *MatchEventService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

// eventPlayers finds the event of the given kind and returns the players it
// names.
func eventPlayers(events match.Events, kind match.EventKind, id string) ([]string, bool) {
	var found match.Events
	switch kind {
	case match.KindGoal:
		i := slices.IndexFunc(events.Goals, func(g match.Goal) bool { return g.ID == id })
		if i < 0 {
			return nil, false
		}
		found.Goals = events.Goals[i : i+1]
	case match.KindCard:
		i := slices.IndexFunc(events.Cards, func(c match.Card) bool { return c.ID == id })
		if i < 0 {
			return nil, false
		}
		found.Cards = events.Cards[i : i+1]
	case match.KindSubstitution:
		i := slices.IndexFunc(events.Substitutions, func(s match.Substitution) bool { return s.ID == id })
		if i < 0 {
			return nil, false
		}
		found.Substitutions = events.Substitutions[i : i+1]
	case match.KindAssist:
		i := slices.IndexFunc(events.Assists, func(a match.Assist) bool { return a.ID == id })
		if i < 0 {
			return nil, false
		}
		found.Assists = events.Assists[i : i+1]
	default:
		return nil, false
	}
	return found.PlayerIDs(), true
}
