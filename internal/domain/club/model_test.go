package club

import "testing"

func TestClub_Matches(t *testing.T) {
	t.Parallel()

	c := Club{Name: "Persatuan Sepakbola", ShortName: "PSB", City: "Bandung"}
	for _, q := range []string{"", "sepak", "psb", "BAND"} {
		if !c.Matches(q) {
			t.Fatalf("expected %q to match", q)
		}
	}
	if c.Matches("jakarta") {
		t.Fatalf("unexpected match")
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	got, err := ParseStatus(" Active ")
	if err != nil || got != StatusActive {
		t.Fatalf("ParseStatus = %q, %v", got, err)
	}
	if got, _ := ParseStatus(""); got != StatusApplied {
		t.Fatalf("empty status should default to applied, got %q", got)
	}
	if _, err := ParseStatus("relegated"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestClub_Validate(t *testing.T) {
	t.Parallel()

	if err := (Club{ID: "c1", Name: "A", Status: StatusActive}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Club{ID: "c1", Status: StatusActive}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestCoach_Validate(t *testing.T) {
	t.Parallel()

	valid := Coach{ID: "k1", ClubID: "c1", SeasonID: "s1", LastName: "Tavares"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid.FullName() != "Tavares" {
		t.Fatalf("FullName = %q", valid.FullName())
	}

	bad := valid
	bad.LastName = " "
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	bad = valid
	bad.SeasonID = ""
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for missing season")
	}
}
