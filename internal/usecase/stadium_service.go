package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/stadium"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
)

type StadiumInput struct {
	Name     string
	City     string
	Capacity *int
	Address  string
}

type StadiumService struct {
	stadiumRepo stadium.Repository
	matchRepo   match.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewStadiumService(stadiumRepo stadium.Repository, matchRepo match.Repository, idGen idgen.Generator) *StadiumService {
	return &StadiumService{
		stadiumRepo: stadiumRepo,
		matchRepo:   matchRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *StadiumService) List(ctx context.Context, city string) ([]stadium.Stadium, error) {
	items, err := s.stadiumRepo.List(ctx, strings.TrimSpace(city))
	if err != nil {
		return nil, fmt.Errorf("list stadiums: %w", err)
	}
	return items, nil
}

func (s *StadiumService) Get(ctx context.Context, id string) (stadium.Stadium, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return stadium.Stadium{}, fmt.Errorf("%w: stadium id is required", ErrInvalidInput)
	}
	item, exists, err := s.stadiumRepo.GetByID(ctx, id)
	if err != nil {
		return stadium.Stadium{}, fmt.Errorf("get stadium: %w", err)
	}
	if !exists {
		return stadium.Stadium{}, fmt.Errorf("%w: stadium=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *StadiumService) Create(ctx context.Context, input StadiumInput) (stadium.Stadium, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return stadium.Stadium{}, fmt.Errorf("generate stadium id: %w", err)
	}
	now := s.now().UTC()
	item, err := applyStadiumInput(stadium.Stadium{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return stadium.Stadium{}, err
	}
	if err := s.stadiumRepo.Create(ctx, item); err != nil {
		return stadium.Stadium{}, storeError("create stadium", err)
	}
	return item, nil
}

func (s *StadiumService) Update(ctx context.Context, id string, input StadiumInput) (stadium.Stadium, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return stadium.Stadium{}, err
	}
	item, err := applyStadiumInput(current, input, s.now().UTC())
	if err != nil {
		return stadium.Stadium{}, err
	}
	if err := s.stadiumRepo.Update(ctx, item); err != nil {
		return stadium.Stadium{}, storeError("update stadium", err)
	}
	return item, nil
}

// Delete removes a stadium no match is played at.
func (s *StadiumService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	hosted, err := s.matchRepo.List(ctx, match.Filter{StadiumID: item.ID, Limit: 1})
	if err != nil {
		return fmt.Errorf("list stadium matches: %w", err)
	}
	if len(hosted) > 0 {
		return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
	}
	return storeError("delete stadium", s.stadiumRepo.Delete(ctx, item.ID))
}

func applyStadiumInput(item stadium.Stadium, input StadiumInput, now time.Time) (stadium.Stadium, error) {
	item.Name = strings.TrimSpace(input.Name)
	item.City = strings.TrimSpace(input.City)
	item.Capacity = input.Capacity
	item.Address = strings.TrimSpace(input.Address)
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return stadium.Stadium{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
