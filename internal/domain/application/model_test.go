package application

import (
	"errors"
	"testing"
	"time"
)

func TestApplication_ReviewOnlyFromPending(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	pending := Application{ID: "a1", SeasonID: "s1", ClubName: "PSM Makassar", City: "Makassar", ContactPerson: "Andi", CoachName: "Bernardo", Status: StatusPending, Notes: "late papers"}

	approved, err := pending.Approve("club-psm", now)
	if err != nil || approved.Status != StatusApproved || approved.ClubID != "club-psm" {
		t.Fatalf("Approve = %+v, %v", approved, err)
	}
	if approved.ReviewedAt == nil || !approved.ReviewedAt.Equal(now) {
		t.Fatalf("Approve did not stamp the review time: %v", approved.ReviewedAt)
	}
	if _, err := approved.Reject("too late", now); !errors.Is(err, ErrNotPending) {
		t.Fatalf("reject after approve should fail with ErrNotPending, got %v", err)
	}
	if _, err := approved.Withdraw(now); !errors.Is(err, ErrNotPending) {
		t.Fatalf("withdraw after approve should fail with ErrNotPending, got %v", err)
	}

	rejected, err := pending.Reject("", now)
	if err != nil || rejected.Status != StatusRejected {
		t.Fatalf("Reject = %+v, %v", rejected, err)
	}
	if rejected.Notes != "late papers" {
		t.Fatalf("empty reason must keep notes, got %q", rejected.Notes)
	}
	rejected, _ = pending.Reject("stadium not licensed", now)
	if rejected.Notes != "stadium not licensed" {
		t.Fatalf("reason not stored, got %q", rejected.Notes)
	}

	withdrawn, err := pending.Withdraw(now)
	if err != nil || withdrawn.Status != StatusWithdrawn || withdrawn.ReviewedAt != nil {
		t.Fatalf("Withdraw = %+v, %v", withdrawn, err)
	}
	if _, err := withdrawn.Approve("club-psm", now); !errors.Is(err, ErrNotPending) {
		t.Fatalf("approve after withdraw should fail with ErrNotPending, got %v", err)
	}
}

func TestApplication_Validate(t *testing.T) {
	t.Parallel()

	base := Application{ID: "a1", SeasonID: "s1", ClubName: "PSM Makassar", City: "Makassar", ContactPerson: "Andi", CoachName: "Bernardo", Status: StatusPending}
	if err := base.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noCoach := base
	noCoach.CoachName = " "
	if err := noCoach.Validate(); err == nil {
		t.Fatalf("expected error for missing coach")
	}

	noSeason := base
	noSeason.SeasonID = ""
	if err := noSeason.Validate(); err == nil {
		t.Fatalf("expected error for missing season")
	}

	if _, err := ParseStatus("archived"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
