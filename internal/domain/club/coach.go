package club

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Coach is the head coach of a club for one season. A club has at most one
// coach per season.
type Coach struct {
	ID          string
	ClubID      string
	SeasonID    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Nationality string
	Bio         string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CoachFilter struct {
	ClubID     string
	SeasonID   string
	ActiveOnly bool
}

func (c Coach) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c Coach) Validate() error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return fmt.Errorf("coach id is required")
	case strings.TrimSpace(c.ClubID) == "":
		return fmt.Errorf("coach club is required")
	case strings.TrimSpace(c.SeasonID) == "":
		return fmt.Errorf("coach season is required")
	case c.FullName() == "":
		return fmt.Errorf("coach name is required")
	}
	return nil
}

// CoachRepository persists coaches ordered by last then first name.
type CoachRepository interface {
	List(ctx context.Context, filter CoachFilter) ([]Coach, error)
	GetByID(ctx context.Context, id string) (Coach, bool, error)
	Create(ctx context.Context, c Coach) error
	Update(ctx context.Context, c Coach) error
	Delete(ctx context.Context, id string) error
}
