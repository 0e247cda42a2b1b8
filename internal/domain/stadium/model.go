package stadium

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Stadium is a venue matches can be played at.
type Stadium struct {
	ID        string
	Name      string
	City      string
	Capacity  *int
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Stadium) Validate() error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return fmt.Errorf("stadium id is required")
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("stadium name is required")
	case s.Capacity != nil && *s.Capacity < 0:
		return fmt.Errorf("stadium capacity must not be negative")
	}
	return nil
}

// Repository persists stadiums. List filters by city when city is not empty.
type Repository interface {
	List(ctx context.Context, city string) ([]Stadium, error)
	GetByID(ctx context.Context, id string) (Stadium, bool, error)
	Create(ctx context.Context, s Stadium) error
	Update(ctx context.Context, s Stadium) error
	Delete(ctx context.Context, id string) error
}
