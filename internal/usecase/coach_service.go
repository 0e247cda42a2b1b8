package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/season"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
)

type CoachInput struct {
	ClubID      string
	SeasonID    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Nationality string
	Bio         string
	IsActive    bool
}

type CoachService struct {
	coachRepo  club.CoachRepository
	clubRepo   club.Repository
	seasonRepo season.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewCoachService(coachRepo club.CoachRepository, clubRepo club.Repository, seasonRepo season.Repository, idGen idgen.Generator) *CoachService {
	return &CoachService{
		coachRepo:  coachRepo,
		clubRepo:   clubRepo,
		seasonRepo: seasonRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

// List returns coaches by club and season. Only active coaches are listed
// unless includeInactive is set.
func (s *CoachService) List(ctx context.Context, clubID, seasonID string, includeInactive bool) ([]club.Coach, error) {
	items, err := s.coachRepo.List(ctx, club.CoachFilter{
		ClubID:     strings.TrimSpace(clubID),
		SeasonID:   strings.TrimSpace(seasonID),
		ActiveOnly: !includeInactive,
	})
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return items, nil
}

func (s *CoachService) Get(ctx context.Context, id string) (club.Coach, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return club.Coach{}, fmt.Errorf("%w: coach id is required", ErrInvalidInput)
	}
	item, exists, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		return club.Coach{}, fmt.Errorf("get coach: %w", err)
	}
	if !exists {
		return club.Coach{}, fmt.Errorf("%w: coach=%s", ErrNotFound, id)
	}
	return item, nil
}

// Create registers the coach of a club for a season. A second coach for the
// same club and season conflicts.
func (s *CoachService) Create(ctx context.Context, input CoachInput) (club.Coach, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return club.Coach{}, fmt.Errorf("generate coach id: %w", err)
	}
	now := s.now().UTC()
	item, err := s.applyInput(ctx, club.Coach{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return club.Coach{}, err
	}
	if err := s.coachRepo.Create(ctx, item); err != nil {
		return club.Coach{}, storeError("create coach", err)
	}
	return item, nil
}

func (s *CoachService) Update(ctx context.Context, id string, input CoachInput) (club.Coach, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return club.Coach{}, err
	}
	item, err := s.applyInput(ctx, current, input, s.now().UTC())
	if err != nil {
		return club.Coach{}, err
	}
	if err := s.coachRepo.Update(ctx, item); err != nil {
		return club.Coach{}, storeError("update coach", err)
	}
	return item, nil
}

func (s *CoachService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return storeError("delete coach", s.coachRepo.Delete(ctx, item.ID))
}

func (s *CoachService) applyInput(ctx context.Context, item club.Coach, input CoachInput, now time.Time) (club.Coach, error) {
	item.ClubID = strings.TrimSpace(input.ClubID)
	item.SeasonID = strings.TrimSpace(input.SeasonID)
	item.FirstName = strings.TrimSpace(input.FirstName)
	item.LastName = strings.TrimSpace(input.LastName)
	item.DateOfBirth = input.DateOfBirth
	item.Nationality = strings.TrimSpace(input.Nationality)
	item.Bio = strings.TrimSpace(input.Bio)
	item.IsActive = input.IsActive
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return club.Coach{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.clubRepo.GetByID(ctx, item.ClubID); err != nil {
		return club.Coach{}, fmt.Errorf("get club: %w", err)
	} else if !exists {
		return club.Coach{}, fmt.Errorf("%w: club=%s", ErrNotFound, item.ClubID)
	}
	if _, exists, err := s.seasonRepo.GetByID(ctx, item.SeasonID); err != nil {
		return club.Coach{}, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return club.Coach{}, fmt.Errorf("%w: season=%s", ErrNotFound, item.SeasonID)
	}
	return item, nil
}

// deleteCoaches removes every coach matching filter, inactive ones included.
func deleteCoaches(ctx context.Context, repo club.CoachRepository, filter club.CoachFilter) error {
	filter.ActiveOnly = false
	coaches, err := repo.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("list coaches: %w", err)
	}
	for _, c := range coaches {
		if err := repo.Delete(ctx, c.ID); err != nil {
			return fmt.Errorf("delete coach %s: %w", c.ID, err)
		}
	}
	return nil
}
