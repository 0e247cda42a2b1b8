package club

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusApplied      Status = "applied"
	StatusActive       Status = "active"
	StatusDisqualified Status = "disqualified"
	StatusWithdrawn    Status = "withdrawn"
)

// Club is a football club registered with the league.
type Club struct {
	ID           string
	Name         string
	ShortName    string
	City         string
	FoundedYear  int
	CoachName    string
	Stadium      string
	Status       Status
	ContactEmail string
	ContactPhone string
	Website      string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter narrows List. Query matches name, city or short name.
type Filter struct {
	Query  string
	Status Status
	IDs    []string
}

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(v)))
	switch status {
	case "":
		return StatusApplied, nil
	case StatusApplied, StatusActive, StatusDisqualified, StatusWithdrawn:
		return status, nil
	default:
		return "", fmt.Errorf("invalid club status %q", v)
	}
}

func (c Club) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("club id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("club name is required")
	}
	if _, err := ParseStatus(string(c.Status)); err != nil {
		return err
	}
	if c.FoundedYear < 0 {
		return fmt.Errorf("club founded year must be positive")
	}
	return nil
}

// Matches reports whether query is a case-insensitive substring of the name,
// city or short name.
func (c Club) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{c.Name, c.City, c.ShortName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
