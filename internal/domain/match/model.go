package match

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusPostponed Status = "postponed"
)

// Match is one fixture between two clubs inside a season.
type Match struct {
	ID          string
	SeasonID    string
	GroupID     string
	HomeClubID  string
	AwayClubID  string
	KickoffAt   time.Time
	Status      Status
	HomeScore   *int
	AwayScore   *int
	HomeScoreHT *int
	AwayScoreHT *int
	Round       int
	StadiumID   string
	Stadium     string
	RefereeID   string
	Attendance  *int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Filter struct {
	SeasonID  string
	ClubID    string
	StadiumID string
	Status    Status

	// From and To bound KickoffAt as [From, To).
	From        *time.Time
	To          *time.Time
	NewestFirst bool
	Limit       int
}

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(v)))
	switch status {
	case "":
		return StatusScheduled, nil
	case StatusScheduled, StatusLive, StatusFinished, StatusPostponed:
		return status, nil
	default:
		return "", fmt.Errorf("invalid match status %q", v)
	}
}

// CanTransition reports whether a match may move from one status to another.
// Staying in the same status is always allowed so scores can be corrected.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusScheduled:
		return to == StatusLive || to == StatusFinished || to == StatusPostponed
	case StatusLive:
		return to == StatusFinished || to == StatusPostponed
	case StatusPostponed:
		return to == StatusScheduled || to == StatusLive || to == StatusFinished
	case StatusFinished:
		return to == StatusLive
	default:
		return false
	}
}

// HasScore reports whether both full-time scores are present.
func (m Match) HasScore() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// Counts reports whether the match contributes to standings and player
// statistics: finished or live with both scores present.
func (m Match) Counts() bool {
	return (m.Status == StatusFinished || m.Status == StatusLive) && m.HasScore()
}

func (m Match) IsGoallessDraw() bool {
	return m.HasScore() && *m.HomeScore == 0 && *m.AwayScore == 0
}

// Involves reports whether clubID is the home or away club.
func (m Match) Involves(clubID string) bool {
	return clubID != "" && (m.HomeClubID == clubID || m.AwayClubID == clubID)
}

// Conceded returns the goals clubID conceded, or -1 when the club did not
// play or the score is missing.
func (m Match) Conceded(clubID string) int {
	if !m.HasScore() {
		return -1
	}
	switch clubID {
	case m.HomeClubID:
		return *m.AwayScore
	case m.AwayClubID:
		return *m.HomeScore
	default:
		return -1
	}
}

func (m Match) Validate() error {
	switch {
	case strings.TrimSpace(m.ID) == "":
		return fmt.Errorf("match id is required")
	case strings.TrimSpace(m.SeasonID) == "":
		return fmt.Errorf("match season id is required")
	case strings.TrimSpace(m.HomeClubID) == "" || strings.TrimSpace(m.AwayClubID) == "":
		return fmt.Errorf("match home and away clubs are required")
	case m.HomeClubID == m.AwayClubID:
		return fmt.Errorf("home and away club must differ")
	case m.KickoffAt.IsZero():
		return fmt.Errorf("match kickoff time is required")
	}
	if _, err := ParseStatus(string(m.Status)); err != nil {
		return err
	}

	if (m.HomeScore == nil) != (m.AwayScore == nil) {
		return fmt.Errorf("home and away score must be set together")
	}
	if (m.HomeScoreHT == nil) != (m.AwayScoreHT == nil) {
		return fmt.Errorf("half-time scores must be set together")
	}
	for _, v := range []*int{m.HomeScore, m.AwayScore, m.HomeScoreHT, m.AwayScoreHT, m.Attendance} {
		if v != nil && *v < 0 {
			return fmt.Errorf("scores and attendance must not be negative")
		}
	}
	if m.HasScore() && m.HomeScoreHT != nil {
		if *m.HomeScoreHT > *m.HomeScore || *m.AwayScoreHT > *m.AwayScore {
			return fmt.Errorf("half-time score cannot exceed full-time score")
		}
	}
	if m.Round < 0 {
		return fmt.Errorf("match round must not be negative")
	}

	switch m.Status {
	case StatusFinished:
		if !m.HasScore() {
			return fmt.Errorf("finished match requires both scores")
		}
	case StatusScheduled:
		if m.HomeScore != nil || m.HomeScoreHT != nil {
			return fmt.Errorf("scheduled match must not have scores")
		}
	}
	return nil
}
