package player

import (
	"fmt"
	"strings"
	"time"
)

type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DF"
	PositionMidfielder Position = "MF"
	PositionForward    Position = "FW"
)

type Status string

const (
	StatusApplied      Status = "applied"
	StatusActive       Status = "active"
	StatusInjured      Status = "injured"
	StatusDisqualified Status = "disqualified"
	StatusLoan         Status = "loan"
	StatusWithdrawn    Status = "withdrawn"
)

const (
	MinShirtNumber = 1
	MaxShirtNumber = 99
)

// Player is a registered squad member. ClubID is the current club and moves
// when a transfer is confirmed.
type Player struct {
	ID          string
	ClubID      string
	SeasonID    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Position    Position
	Number      int
	Nationality string
	HeightCM    int
	WeightKG    int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter narrows List; empty fields are ignored. ClubIDs and IDs match any of
// their values.
type Filter struct {
	Query    string
	ClubID   string
	ClubIDs  []string
	SeasonID string
	Position Position
	IDs      []string
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func ParsePosition(v string) (Position, error) {
	pos := Position(strings.ToUpper(strings.TrimSpace(v)))
	switch pos {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return pos, nil
	default:
		return "", fmt.Errorf("invalid player position %q", v)
	}
}

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(v)))
	switch status {
	case "":
		return StatusApplied, nil
	case StatusApplied, StatusActive, StatusInjured, StatusDisqualified, StatusLoan, StatusWithdrawn:
		return status, nil
	default:
		return "", fmt.Errorf("invalid player status %q", v)
	}
}

func (p Player) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("player id is required")
	case strings.TrimSpace(p.ClubID) == "":
		return fmt.Errorf("player club id is required")
	case strings.TrimSpace(p.FirstName) == "" && strings.TrimSpace(p.LastName) == "":
		return fmt.Errorf("player name is required")
	case p.Number < MinShirtNumber || p.Number > MaxShirtNumber:
		return fmt.Errorf("player number must be between %d and %d", MinShirtNumber, MaxShirtNumber)
	}
	if _, err := ParsePosition(string(p.Position)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(p.Status)); err != nil {
		return err
	}
	return nil
}

func (p Player) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.FullName()), q)
}
