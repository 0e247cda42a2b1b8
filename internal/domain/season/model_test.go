package season

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) *time.Time {
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}

func TestSeason_Covers(t *testing.T) {
	t.Parallel()

	s := Season{StartDate: date(2024, 3, 1), EndDate: date(2024, 10, 31)}
	cases := []struct {
		day  time.Time
		want bool
	}{
		{time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC), true},
		{time.Date(2024, 10, 31, 8, 0, 0, 0, time.UTC), true},
		{time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), false},
		{time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		if got := s.Covers(tc.day); got != tc.want {
			t.Fatalf("Covers(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}

	if (Season{StartDate: date(2024, 1, 1)}).Covers(time.Now()) {
		t.Fatalf("open-ended season should never cover a day")
	}
}

func TestSeason_Validate(t *testing.T) {
	t.Parallel()

	valid := Season{ID: "s1", Name: "2024", Format: FormatSingle}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := valid
	bad.StartDate, bad.EndDate = date(2024, 5, 1), date(2024, 4, 1)
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for inverted date range")
	}

	bad = valid
	bad.Format = "knockout"
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestNormalizeFormat(t *testing.T) {
	t.Parallel()

	if NormalizeFormat(" Groups ") != FormatGroups {
		t.Fatalf("expected groups")
	}
	if NormalizeFormat("") != FormatSingle {
		t.Fatalf("expected single by default")
	}
}
