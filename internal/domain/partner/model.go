package partner

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryMain      Category = "main"
	CategoryOfficial  Category = "official"
	CategoryTechnical Category = "technical"
)

// Partner is a sponsor shown by the league.
type Partner struct {
	ID          string
	Name        string
	Category    Category
	Website     string
	Description string
	Order       int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ParseCategory(v string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(v)))
	switch c {
	case "":
		return CategoryOfficial, nil
	case CategoryMain, CategoryOfficial, CategoryTechnical:
		return c, nil
	default:
		return "", fmt.Errorf("invalid partner category %q", v)
	}
}

func (p Partner) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("partner id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("partner name is required")
	}
	_, err := ParseCategory(string(p.Category))
	return err
}

// Repository persists partners, listed by Order then name.
type Repository interface {
	List(ctx context.Context, activeOnly bool) ([]Partner, error)
	GetByID(ctx context.Context, id string) (Partner, bool, error)
	Create(ctx context.Context, p Partner) error
	Update(ctx context.Context, p Partner) error
	Delete(ctx context.Context, id string) error
}
