package match

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func validMatch() Match {
	return Match{
		ID:         "m1",
		SeasonID:   "s1",
		HomeClubID: "c1",
		AwayClubID: "c2",
		KickoffAt:  time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
		Status:     StatusScheduled,
	}
}

func TestMatch_Validate(t *testing.T) {
	t.Parallel()

	if err := validMatch().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(m *Match){
		"same clubs":             func(m *Match) { m.AwayClubID = m.HomeClubID },
		"finished without score": func(m *Match) { m.Status = StatusFinished },
		"scheduled with score": func(m *Match) {
			m.HomeScore, m.AwayScore = intPtr(1), intPtr(0)
		},
		"negative score": func(m *Match) {
			m.Status = StatusFinished
			m.HomeScore, m.AwayScore = intPtr(-1), intPtr(0)
		},
		"one sided score": func(m *Match) {
			m.Status = StatusLive
			m.HomeScore = intPtr(1)
		},
		"half time above full time": func(m *Match) {
			m.Status = StatusFinished
			m.HomeScore, m.AwayScore = intPtr(1), intPtr(0)
			m.HomeScoreHT, m.AwayScoreHT = intPtr(2), intPtr(0)
		},
		"unknown status": func(m *Match) { m.Status = "abandoned" },
	}
	for name, mutate := range cases {
		m := validMatch()
		mutate(&m)
		if err := m.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestMatch_Counts(t *testing.T) {
	t.Parallel()

	m := validMatch()
	if m.Counts() {
		t.Fatalf("scheduled match must not count")
	}
	m.Status = StatusLive
	if m.Counts() {
		t.Fatalf("live match without score must not count")
	}
	m.HomeScore, m.AwayScore = intPtr(0), intPtr(0)
	if !m.Counts() || !m.IsGoallessDraw() {
		t.Fatalf("live 0-0 should count and be goalless")
	}
	m.Status = StatusPostponed
	if m.Counts() {
		t.Fatalf("postponed match must not count")
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := [][2]Status{
		{StatusScheduled, StatusLive},
		{StatusScheduled, StatusPostponed},
		{StatusLive, StatusFinished},
		{StatusLive, StatusPostponed},
		{StatusPostponed, StatusScheduled},
		{StatusFinished, StatusFinished},
		{StatusFinished, StatusLive},
	}
	for _, tc := range allowed {
		if !CanTransition(tc[0], tc[1]) {
			t.Fatalf("expected %s -> %s to be allowed", tc[0], tc[1])
		}
	}

	denied := [][2]Status{
		{StatusFinished, StatusScheduled},
		{StatusFinished, StatusPostponed},
		{StatusLive, StatusScheduled},
	}
	for _, tc := range denied {
		if CanTransition(tc[0], tc[1]) {
			t.Fatalf("expected %s -> %s to be rejected", tc[0], tc[1])
		}
	}
}

func TestMatch_Conceded(t *testing.T) {
	t.Parallel()

	m := validMatch()
	m.Status = StatusFinished
	m.HomeScore, m.AwayScore = intPtr(2), intPtr(1)
	if m.Conceded("c1") != 1 || m.Conceded("c2") != 2 || m.Conceded("c3") != -1 {
		t.Fatalf("unexpected conceded values")
	}
}

func TestEvents_PlayerIDsAndForMatch(t *testing.T) {
	t.Parallel()

	events := Events{
		Goals:   []Goal{{MatchID: "m1", ScorerID: "p1", AssistID: "p2"}, {MatchID: "m2", ScorerID: "p3"}},
		Cards:   []Card{{MatchID: "m1", PlayerID: "p1"}},
		Assists: []Assist{{MatchID: "m1", PlayerID: "p2"}},
		Substitutions: []Substitution{
			{MatchID: "m1", PlayerOutID: "p4", PlayerInID: "p5"},
		},
	}

	m1 := events.ForMatch("m1")
	if m1.Len() != 4 {
		t.Fatalf("expected 4 events for m1, got %d", m1.Len())
	}
	got := m1.PlayerIDs()
	want := []string{"p1", "p2", "p4", "p5"}
	if len(got) != len(want) {
		t.Fatalf("PlayerIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PlayerIDs = %v, want %v", got, want)
		}
	}
}

func TestEventValidation(t *testing.T) {
	t.Parallel()

	goal := Goal{ID: "g1", MatchID: "m1", ClubID: "c1", ScorerID: "p1", Minute: 12}
	if err := goal.Validate(); err != nil {
		t.Fatalf("unexpected goal error: %v", err)
	}
	goal.AssistID = "p1"
	if err := goal.Validate(); err == nil {
		t.Fatalf("expected self-assist to be rejected")
	}

	card := Card{ID: "k1", MatchID: "m1", ClubID: "c1", PlayerID: "p1", Type: CardSecondYellow, Minute: 131}
	if err := card.Validate(); err == nil {
		t.Fatalf("expected minute bound to be enforced")
	}
	if !CardSecondYellow.IsRed() || CardYellow.IsRed() {
		t.Fatalf("unexpected red card classification")
	}

	sub := Substitution{ID: "s1", MatchID: "m1", ClubID: "c1", PlayerOutID: "p1", PlayerInID: "p1"}
	if err := sub.Validate(); err == nil {
		t.Fatalf("expected same-player substitution to be rejected")
	}
}
