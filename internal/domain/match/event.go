package match

import (
	"fmt"
	"strings"
)

type EventKind string

const (
	KindGoal         EventKind = "goals"
	KindCard         EventKind = "cards"
	KindSubstitution EventKind = "substitutions"
	KindAssist       EventKind = "assists"
)

type GoalType string

const (
	GoalTypeRegular  GoalType = "goal"
	GoalTypePenalty  GoalType = "penalty"
	GoalTypeOwnGoal  GoalType = "own_goal"
	GoalTypeFreeKick GoalType = "free_kick"
	GoalTypeHeader   GoalType = "header"
)

type CardType string

const (
	CardYellow       CardType = "yellow"
	CardRed          CardType = "red"
	CardSecondYellow CardType = "second_yellow"
)

// MaxMinute bounds event minutes, extra time and stoppage included.
const MaxMinute = 130

type Goal struct {
	ID          string
	MatchID     string
	ClubID      string
	ScorerID    string
	AssistID    string
	Minute      int
	Type        GoalType
	Description string
}

type Card struct {
	ID       string
	MatchID  string
	ClubID   string
	PlayerID string
	Type     CardType
	Minute   int
	Reason   string
}

type Substitution struct {
	ID          string
	MatchID     string
	ClubID      string
	PlayerOutID string
	PlayerInID  string
	Minute      int
}

// Assist is recorded separately from Goal.AssistID; both feed the player's
// assist total.
type Assist struct {
	ID       string
	MatchID  string
	ClubID   string
	PlayerID string
	Minute   int
}

// Events groups the sub-events of one or more matches.
type Events struct {
	Goals         []Goal
	Cards         []Card
	Substitutions []Substitution
	Assists       []Assist
}

func ParseEventKind(v string) (EventKind, error) {
	kind := EventKind(strings.ToLower(strings.TrimSpace(v)))
	switch kind {
	case KindGoal, KindCard, KindSubstitution, KindAssist:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid event kind %q", v)
	}
}

func ParseGoalType(v string) (GoalType, error) {
	t := GoalType(strings.ToLower(strings.TrimSpace(v)))
	switch t {
	case "":
		return GoalTypeRegular, nil
	case GoalTypeRegular, GoalTypePenalty, GoalTypeOwnGoal, GoalTypeFreeKick, GoalTypeHeader:
		return t, nil
	default:
		return "", fmt.Errorf("invalid goal type %q", v)
	}
}

func ParseCardType(v string) (CardType, error) {
	t := CardType(strings.ToLower(strings.TrimSpace(v)))
	switch t {
	case CardYellow, CardRed, CardSecondYellow:
		return t, nil
	default:
		return "", fmt.Errorf("invalid card type %q", v)
	}
}

// IsRed reports whether the card counts as a red card.
func (t CardType) IsRed() bool {
	return t == CardRed || t == CardSecondYellow
}

// ForMatch returns the events that belong to matchID.
func (e Events) ForMatch(matchID string) Events {
	var out Events
	for _, g := range e.Goals {
		if g.MatchID == matchID {
			out.Goals = append(out.Goals, g)
		}
	}
	for _, c := range e.Cards {
		if c.MatchID == matchID {
			out.Cards = append(out.Cards, c)
		}
	}
	for _, s := range e.Substitutions {
		if s.MatchID == matchID {
			out.Substitutions = append(out.Substitutions, s)
		}
	}
	for _, a := range e.Assists {
		if a.MatchID == matchID {
			out.Assists = append(out.Assists, a)
		}
	}
	return out
}

// PlayerIDs lists every player referenced by the events, without duplicates,
// in first-seen order.
func (e Events) PlayerIDs() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, g := range e.Goals {
		add(g.ScorerID)
		add(g.AssistID)
	}
	for _, c := range e.Cards {
		add(c.PlayerID)
	}
	for _, s := range e.Substitutions {
		add(s.PlayerOutID)
		add(s.PlayerInID)
	}
	for _, a := range e.Assists {
		add(a.PlayerID)
	}
	return out
}

func (e Events) Len() int {
	return len(e.Goals) + len(e.Cards) + len(e.Substitutions) + len(e.Assists)
}

func validateMinute(minute int) error {
	if minute < 0 || minute > MaxMinute {
		return fmt.Errorf("event minute must be between 0 and %d", MaxMinute)
	}
	return nil
}

func requireIDs(kind string, ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%s id, match id, club id and player are required", kind)
		}
	}
	return nil
}

func (g Goal) Validate() error {
	if err := requireIDs("goal", g.ID, g.MatchID, g.ClubID, g.ScorerID); err != nil {
		return err
	}
	if g.AssistID != "" && g.AssistID == g.ScorerID {
		return fmt.Errorf("goal scorer cannot assist their own goal")
	}
	if _, err := ParseGoalType(string(g.Type)); err != nil {
		return err
	}
	return validateMinute(g.Minute)
}

func (c Card) Validate() error {
	if err := requireIDs("card", c.ID, c.MatchID, c.ClubID, c.PlayerID); err != nil {
		return err
	}
	if _, err := ParseCardType(string(c.Type)); err != nil {
		return err
	}
	return validateMinute(c.Minute)
}

func (s Substitution) Validate() error {
	if err := requireIDs("substitution", s.ID, s.MatchID, s.ClubID, s.PlayerOutID, s.PlayerInID); err != nil {
		return err
	}
	if s.PlayerOutID == s.PlayerInID {
		return fmt.Errorf("substitution needs two different players")
	}
	return validateMinute(s.Minute)
}

func (a Assist) Validate() error {
	if err := requireIDs("assist", a.ID, a.MatchID, a.ClubID, a.PlayerID); err != nil {
		return err
	}
	return validateMinute(a.Minute)
}
