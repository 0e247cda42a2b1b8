package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/management"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
)

type ManagerInput struct {
	FirstName string
	LastName  string
	Position  string
	Phone     string
	Email     string
	Bio       string
	Order     int
	IsActive  bool
}

type ManagerService struct {
	managerRepo management.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewManagerService(managerRepo management.Repository, idGen idgen.Generator) *ManagerService {
	return &ManagerService{
		managerRepo: managerRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *ManagerService) List(ctx context.Context) ([]management.Manager, error) {
	items, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return items, nil
}

func (s *ManagerService) Get(ctx context.Context, id string) (management.Manager, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return management.Manager{}, fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}
	item, exists, err := s.managerRepo.GetByID(ctx, id)
	if err != nil {
		return management.Manager{}, fmt.Errorf("get manager: %w", err)
	}
	if !exists {
		return management.Manager{}, fmt.Errorf("%w: manager=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *ManagerService) Create(ctx context.Context, input ManagerInput) (management.Manager, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return management.Manager{}, fmt.Errorf("generate manager id: %w", err)
	}
	now := s.now().UTC()
	item, err := applyManagerInput(management.Manager{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return management.Manager{}, err
	}
	if err := s.managerRepo.Create(ctx, item); err != nil {
		return management.Manager{}, storeError("create manager", err)
	}
	return item, nil
}

func (s *ManagerService) Update(ctx context.Context, id string, input ManagerInput) (management.Manager, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return management.Manager{}, err
	}
	item, err := applyManagerInput(current, input, s.now().UTC())
	if err != nil {
		return management.Manager{}, err
	}
	if err := s.managerRepo.Update(ctx, item); err != nil {
		return management.Manager{}, storeError("update manager", err)
	}
	return item, nil
}

func (s *ManagerService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return storeError("delete manager", s.managerRepo.Delete(ctx, item.ID))
}

func applyManagerInput(item management.Manager, input ManagerInput, now time.Time) (management.Manager, error) {
	position, err := management.ParsePosition(input.Position)
	if err != nil {
		return management.Manager{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item.FirstName = strings.TrimSpace(input.FirstName)
	item.LastName = strings.TrimSpace(input.LastName)
	item.Position = position
	item.Phone = strings.TrimSpace(input.Phone)
	item.Email = strings.TrimSpace(input.Email)
	item.Bio = strings.TrimSpace(input.Bio)
	item.Order = input.Order
	item.IsActive = input.IsActive
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return management.Manager{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
