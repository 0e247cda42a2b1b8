package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/referee"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
)

type RefereeInput struct {
	FirstName   string
	LastName    string
	Category    string
	DateOfBirth *time.Time
	Phone       string
	Email       string
	IsActive    bool
}

type RefereeService struct {
	refereeRepo referee.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewRefereeService(refereeRepo referee.Repository, idGen idgen.Generator) *RefereeService {
	return &RefereeService{
		refereeRepo: refereeRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *RefereeService) List(ctx context.Context, category string) ([]referee.Referee, error) {
	var filter referee.Category
	if strings.TrimSpace(category) != "" {
		c, err := referee.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter = c
	}

	items, err := s.refereeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list referees: %w", err)
	}
	return items, nil
}

func (s *RefereeService) Get(ctx context.Context, id string) (referee.Referee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	item, exists, err := s.refereeRepo.GetByID(ctx, id)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("get referee: %w", err)
	}
	if !exists {
		return referee.Referee{}, fmt.Errorf("%w: referee=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *RefereeService) Create(ctx context.Context, input RefereeInput) (referee.Referee, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return referee.Referee{}, fmt.Errorf("generate referee id: %w", err)
	}
	now := s.now().UTC()
	item, err := applyRefereeInput(referee.Referee{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return referee.Referee{}, err
	}
	if err := s.refereeRepo.Create(ctx, item); err != nil {
		return referee.Referee{}, storeError("create referee", err)
	}
	return item, nil
}

func (s *RefereeService) Update(ctx context.Context, id string, input RefereeInput) (referee.Referee, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return referee.Referee{}, err
	}
	item, err := applyRefereeInput(current, input, s.now().UTC())
	if err != nil {
		return referee.Referee{}, err
	}
	if err := s.refereeRepo.Update(ctx, item); err != nil {
		return referee.Referee{}, storeError("update referee", err)
	}
	return item, nil
}

func (s *RefereeService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return storeError("delete referee", s.refereeRepo.Delete(ctx, item.ID))
}

func applyRefereeInput(item referee.Referee, input RefereeInput, now time.Time) (referee.Referee, error) {
	category, err := referee.ParseCategory(input.Category)
	if err != nil {
		return referee.Referee{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item.FirstName = strings.TrimSpace(input.FirstName)
	item.LastName = strings.TrimSpace(input.LastName)
	item.Category = category
	item.DateOfBirth = input.DateOfBirth
	item.Phone = strings.TrimSpace(input.Phone)
	item.Email = strings.TrimSpace(input.Email)
	item.IsActive = input.IsActive
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return referee.Referee{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
