package season

import (
	"fmt"
	"strings"
	"time"
)

type Format string

const (
	FormatSingle Format = "single"
	FormatGroups Format = "groups"
)

// DefaultGroupNames are created when a season switches to the groups format
// without any group defined yet.
var DefaultGroupNames = []string{"Group A", "Group B", "Group C"}

// Season is one league competition period. At most one season is active.
type Season struct {
	ID          string
	Name        string
	Format      Format
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Group partitions a grouped season; standings are ranked per group.
type Group struct {
	ID       string
	SeasonID string
	Name     string
	Order    int
}

func NormalizeFormat(v string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case FormatGroups:
		return FormatGroups
	default:
		return FormatSingle
	}
}

func (s Season) HasGroups() bool {
	return s.Format == FormatGroups
}

// Covers reports whether day falls inside [StartDate, EndDate]. Both bounds
// must be set.
func (s Season) Covers(day time.Time) bool {
	if s.StartDate == nil || s.EndDate == nil {
		return false
	}
	d := truncateDay(day)
	return !d.Before(truncateDay(*s.StartDate)) && !d.After(truncateDay(*s.EndDate))
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("season id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("season name is required")
	}
	if s.Format != FormatSingle && s.Format != FormatGroups {
		return fmt.Errorf("invalid season format %q", s.Format)
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return fmt.Errorf("season end date must not be before start date")
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
