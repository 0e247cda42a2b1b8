package management

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Position string

const (
	PositionPresident        Position = "president"
	PositionVicePresident    Position = "vice_president"
	PositionGeneralSecretary Position = "general_secretary"
	PositionDirector         Position = "director"
	PositionManager          Position = "manager"
)

// Manager is a member of the league administration.
type Manager struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Phone     string
	Email     string
	Bio       string
	Order     int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ParsePosition(v string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(v)))
	switch p {
	case PositionPresident, PositionVicePresident, PositionGeneralSecretary, PositionDirector, PositionManager:
		return p, nil
	default:
		return "", fmt.Errorf("invalid manager position %q", v)
	}
}

func (m Manager) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("manager id is required")
	}
	if strings.TrimSpace(m.FirstName) == "" && strings.TrimSpace(m.LastName) == "" {
		return fmt.Errorf("manager name is required")
	}
	_, err := ParsePosition(string(m.Position))
	return err
}

// Repository persists league managers, listed by Order then last name.
type Repository interface {
	List(ctx context.Context) ([]Manager, error)
	GetByID(ctx context.Context, id string) (Manager, bool, error)
	Create(ctx context.Context, m Manager) error
	Update(ctx context.Context, m Manager) error
	Delete(ctx context.Context, id string) error
}
