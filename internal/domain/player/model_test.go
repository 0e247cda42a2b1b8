package player

import "testing"

func TestPlayer_Validate(t *testing.T) {
	t.Parallel()

	base := Player{ID: "p1", ClubID: "c1", FirstName: "Budi", Position: PositionForward, Number: 9, Status: StatusActive}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(p *Player){
		"missing club":   func(p *Player) { p.ClubID = "" },
		"number zero":    func(p *Player) { p.Number = 0 },
		"number 100":     func(p *Player) { p.Number = 100 },
		"bad position":   func(p *Player) { p.Position = "ST" },
		"missing names":  func(p *Player) { p.FirstName = "" },
		"unknown status": func(p *Player) { p.Status = "retired" },
	}
	for name, mutate := range cases {
		p := base
		mutate(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	got, err := ParsePosition(" gk ")
	if err != nil || got != PositionGoalkeeper {
		t.Fatalf("ParsePosition = %q, %v", got, err)
	}
}

func TestPlayer_Matches(t *testing.T) {
	t.Parallel()

	p := Player{FirstName: "Evan", LastName: "Dimas"}
	if !p.Matches("van dim") || p.Matches("zz") {
		t.Fatalf("unexpected match result for %q", p.FullName())
	}
}
