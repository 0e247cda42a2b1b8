package application

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// ErrNotPending is returned when reviewing or withdrawing a settled
// application.
var ErrNotPending = errors.New("application is not pending")

// Application is a club's request to play in a season. ClubID is set once
// the application is approved and the club exists.
type Application struct {
	ID             string
	SeasonID       string
	ClubName       string
	ShortName      string
	City           string
	FoundedYear    int
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CoachName      string
	AssistantCoach string
	Description    string
	Notes          string
	Status         Status
	ClubID         string
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Filter struct {
	SeasonID string
	Status   Status
}

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(v)))
	switch status {
	case "":
		return StatusPending, nil
	case StatusPending, StatusApproved, StatusRejected, StatusWithdrawn:
		return status, nil
	default:
		return "", fmt.Errorf("invalid application status %q", v)
	}
}

func (a Application) Validate() error {
	switch {
	case strings.TrimSpace(a.ID) == "":
		return fmt.Errorf("application id is required")
	case strings.TrimSpace(a.SeasonID) == "":
		return fmt.Errorf("application season is required")
	case strings.TrimSpace(a.ClubName) == "":
		return fmt.Errorf("application club name is required")
	case strings.TrimSpace(a.City) == "":
		return fmt.Errorf("application city is required")
	case strings.TrimSpace(a.ContactPerson) == "":
		return fmt.Errorf("application contact person is required")
	case strings.TrimSpace(a.CoachName) == "":
		return fmt.Errorf("application coach name is required")
	case a.FoundedYear < 0:
		return fmt.Errorf("application founded year must be positive")
	}
	_, err := ParseStatus(string(a.Status))
	return err
}

// Approve marks a pending application approved for the club created from it.
func (a Application) Approve(clubID string, now time.Time) (Application, error) {
	if a.Status != StatusPending {
		return a, fmt.Errorf("%w: status is %s", ErrNotPending, a.Status)
	}
	a.Status = StatusApproved
	a.ClubID = clubID
	a.ReviewedAt = &now
	a.UpdatedAt = now
	return a, nil
}

// Reject turns down a pending application. A non-empty reason replaces the
// notes.
func (a Application) Reject(reason string, now time.Time) (Application, error) {
	if a.Status != StatusPending {
		return a, fmt.Errorf("%w: status is %s", ErrNotPending, a.Status)
	}
	a.Status = StatusRejected
	if reason = strings.TrimSpace(reason); reason != "" {
		a.Notes = reason
	}
	a.ReviewedAt = &now
	a.UpdatedAt = now
	return a, nil
}

// Withdraw is the applicant taking back a pending application.
func (a Application) Withdraw(now time.Time) (Application, error) {
	if a.Status != StatusPending {
		return a, fmt.Errorf("%w: status is %s", ErrNotPending, a.Status)
	}
	a.Status = StatusWithdrawn
	a.UpdatedAt = now
	return a, nil
}
