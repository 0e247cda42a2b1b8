package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, _ := g.NewID()
	if a == b {
		t.Fatalf("expected unique ids, got %s twice", a)
	}
	parsed, err := uuid.Parse(a)
	if err != nil || parsed.Version() != 4 {
		t.Fatalf("expected v4 uuid, got %s (%v)", a, err)
	}
}

func TestSequence_NewID(t *testing.T) {
	t.Parallel()

	s := NewSequence("club")
	first, _ := s.NewID()
	second, _ := s.NewID()
	if first != "club-1" || second != "club-2" {
		t.Fatalf("unexpected sequence: %s, %s", first, second)
	}
}
