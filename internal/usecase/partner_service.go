package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/partner"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
)

type PartnerInput struct {
	Name        string
	Category    string
	Website     string
	Description string
	Order       int
	IsActive    bool
}

type PartnerService struct {
	partnerRepo partner.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewPartnerService(partnerRepo partner.Repository, idGen idgen.Generator) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		idGen:       idGen,
		now:         time.Now,
	}
}

func (s *PartnerService) List(ctx context.Context, activeOnly bool) ([]partner.Partner, error) {
	items, err := s.partnerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return items, nil
}

func (s *PartnerService) Get(ctx context.Context, id string) (partner.Partner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return partner.Partner{}, fmt.Errorf("%w: partner id is required", ErrInvalidInput)
	}
	item, exists, err := s.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return partner.Partner{}, fmt.Errorf("get partner: %w", err)
	}
	if !exists {
		return partner.Partner{}, fmt.Errorf("%w: partner=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *PartnerService) Create(ctx context.Context, input PartnerInput) (partner.Partner, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return partner.Partner{}, fmt.Errorf("generate partner id: %w", err)
	}
	now := s.now().UTC()
	item, err := applyPartnerInput(partner.Partner{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return partner.Partner{}, err
	}
	if err := s.partnerRepo.Create(ctx, item); err != nil {
		return partner.Partner{}, storeError("create partner", err)
	}
	return item, nil
}

func (s *PartnerService) Update(ctx context.Context, id string, input PartnerInput) (partner.Partner, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return partner.Partner{}, err
	}
	item, err := applyPartnerInput(current, input, s.now().UTC())
	if err != nil {
		return partner.Partner{}, err
	}
	if err := s.partnerRepo.Update(ctx, item); err != nil {
		return partner.Partner{}, storeError("update partner", err)
	}
	return item, nil
}

func (s *PartnerService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return storeError("delete partner", s.partnerRepo.Delete(ctx, item.ID))
}

func applyPartnerInput(item partner.Partner, input PartnerInput, now time.Time) (partner.Partner, error) {
	category, err := partner.ParseCategory(input.Category)
	if err != nil {
		return partner.Partner{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item.Name = strings.TrimSpace(input.Name)
	item.Category = category
	item.Website = strings.TrimSpace(input.Website)
	item.Description = strings.TrimSpace(input.Description)
	item.Order = input.Order
	item.IsActive = input.IsActive
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return partner.Partner{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
