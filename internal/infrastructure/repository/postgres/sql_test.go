package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/platform/storeerr"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	t.Run("foreign key violation is referenced", func(t *testing.T) {
		err := writeError(&pq.Error{Code: "23503", Constraint: "matches_home_club_id_fkey"}, "delete club %s", "c1")
		if !errors.Is(err, storeerr.ErrReferenced) {
			t.Fatalf("expected ErrReferenced, got %v", err)
		}
	})

	t.Run("unique violation is duplicate", func(t *testing.T) {
		err := writeError(&pq.Error{Code: "23505", Constraint: "players_club_season_number_idx"}, "create player")
		if !errors.Is(err, storeerr.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("other errors keep their cause", func(t *testing.T) {
		cause := fmt.Errorf("connection reset")
		err := writeError(cause, "update season")
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
		if errors.Is(err, storeerr.ErrReferenced) || errors.Is(err, storeerr.ErrDuplicate) {
			t.Fatalf("unexpected sentinel in %v", err)
		}
	})
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(fmt.Errorf("get season: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestNullableConversions(t *testing.T) {
	t.Parallel()

	if v := nullString("  "); v.Valid {
		t.Fatalf("blank string should be NULL")
	}
	if got := intPtr(nullInt(nil)); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
	three := 3
	if got := intPtr(nullInt(&three)); got == nil || *got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	fee := int64(1500)
	if got := int64Ptr(nullInt64(&fee)); got == nil || *got != 1500 {
		t.Fatalf("expected 1500, got %v", got)
	}
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := timePtr(nullTime(&now)); got == nil || !got.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got)
	}
}

func TestApplicationModelLeavesUnreviewedFieldsNull(t *testing.T) {
	t.Parallel()

	row := applicationFromDomain(application.Application{ID: "a1", SeasonID: "s1", Status: application.StatusPending})
	if row.ClubID.Valid || row.ReviewedAt.Valid {
		t.Fatalf("pending application must store NULL club and review time: %+v", row)
	}

	reviewed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	row.ClubID = nullString("club-psm")
	row.ReviewedAt = nullTime(&reviewed)
	got := applicationToDomain(row)
	if got.ClubID != "club-psm" || got.ReviewedAt == nil || !got.ReviewedAt.Equal(reviewed) {
		t.Fatalf("unexpected application %+v", got)
	}
}
