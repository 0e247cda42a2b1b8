package referee

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryChief     Category = "chief"
	CategoryAssistant Category = "assistant"
	CategoryVAR       Category = "var"
	CategoryInspector Category = "inspector"
)

// Referee is a match official.
type Referee struct {
	ID          string
	FirstName   string
	LastName    string
	Category    Category
	DateOfBirth *time.Time
	Phone       string
	Email       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ParseCategory(v string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(v)))
	switch c {
	case "":
		return CategoryChief, nil
	case CategoryChief, CategoryAssistant, CategoryVAR, CategoryInspector:
		return c, nil
	default:
		return "", fmt.Errorf("invalid referee category %q", v)
	}
}

func (r Referee) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("referee id is required")
	}
	if strings.TrimSpace(r.FirstName) == "" && strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("referee name is required")
	}
	_, err := ParseCategory(string(r.Category))
	return err
}

// Repository persists referees.
type Repository interface {
	List(ctx context.Context, category Category) ([]Referee, error)
	GetByID(ctx context.Context, id string) (Referee, bool, error)
	Create(ctx context.Context, r Referee) error
	Update(ctx context.Context, r Referee) error
	Delete(ctx context.Context, id string) error
}
