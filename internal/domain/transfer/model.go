package transfer

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ErrNotPending is returned when confirming or cancelling a settled transfer.
var ErrNotPending = errors.New("transfer is not pending")

// Transfer moves a player between clubs. FromClubID is empty for a player
// joining from outside the league.
type Transfer struct {
	ID           string
	PlayerID     string
	FromClubID   string
	ToClubID     string
	SeasonID     string
	TransferDate time.Time
	Status       Status
	FeeCents     *int64
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Filter struct {
	PlayerID string
	ClubID   string
	SeasonID string
	Status   Status
}

func ParseStatus(v string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(v)))
	switch status {
	case "":
		return StatusPending, nil
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("invalid transfer status %q", v)
	}
}

func (t Transfer) Validate() error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return fmt.Errorf("transfer id is required")
	case strings.TrimSpace(t.PlayerID) == "":
		return fmt.Errorf("transfer player id is required")
	case strings.TrimSpace(t.ToClubID) == "":
		return fmt.Errorf("transfer destination club is required")
	case t.FromClubID == t.ToClubID:
		return fmt.Errorf("transfer source and destination club must differ")
	case t.TransferDate.IsZero():
		return fmt.Errorf("transfer date is required")
	case t.FeeCents != nil && *t.FeeCents < 0:
		return fmt.Errorf("transfer fee must not be negative")
	}
	_, err := ParseStatus(string(t.Status))
	return err
}

// Confirm settles a pending transfer.
func (t Transfer) Confirm(now time.Time) (Transfer, error) {
	if t.Status != StatusPending {
		return t, fmt.Errorf("%w: status is %s", ErrNotPending, t.Status)
	}
	t.Status = StatusConfirmed
	t.UpdatedAt = now
	return t, nil
}

// Cancel withdraws a pending transfer.
func (t Transfer) Cancel(now time.Time) (Transfer, error) {
	if t.Status != StatusPending {
		return t, fmt.Errorf("%w: status is %s", ErrNotPending, t.Status)
	}
	t.Status = StatusCancelled
	t.UpdatedAt = now
	return t, nil
}
