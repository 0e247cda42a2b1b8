package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

type ClubInput struct {
	Name         string
	ShortName    string
	City         string
	FoundedYear  int
	CoachName    string
	Stadium      string
	Status       string
	ContactEmail string
	ContactPhone string
	Website      string
	Description  string
}

type ClubService struct {
	clubRepo     club.Repository
	matchRepo    match.Repository
	playerRepo   player.Repository
	standingRepo standing.Repository
	coachRepo    club.CoachRepository
	trigger      StatsTrigger
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewClubService(
	clubRepo club.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	standingRepo standing.Repository,
	coachRepo club.CoachRepository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ClubService{
		clubRepo:     clubRepo,
		matchRepo:    matchRepo,
		playerRepo:   playerRepo,
		standingRepo: standingRepo,
		coachRepo:    coachRepo,
		trigger:      triggerOrNoop(trigger),
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ClubService) List(ctx context.Context, filter club.Filter) ([]club.Club, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	items, err := s.clubRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return items, nil
}

func (s *ClubService) Get(ctx context.Context, id string) (club.Club, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	item, exists, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *ClubService) Create(ctx context.Context, input ClubInput) (club.Club, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club id: %w", err)
	}

	now := s.now().UTC()
	item, err := applyClubInput(club.Club{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return club.Club{}, err
	}
	if err := s.clubRepo.Create(ctx, item); err != nil {
		return club.Club{}, storeError("create club", err)
	}
	return item, nil
}

// Update replaces the editable fields of a club and rebuilds the seasons it
// belongs to.
func (s *ClubService) Update(ctx context.Context, id string, input ClubInput) (club.Club, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return club.Club{}, err
	}

	item, err := applyClubInput(current, input, s.now().UTC())
	if err != nil {
		return club.Club{}, err
	}
	if err := s.clubRepo.Update(ctx, item); err != nil {
		return club.Club{}, storeError("update club", err)
	}

	seasonIDs, err := s.seasonsOf(ctx, item.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "list club seasons for recompute failed", "club_id", item.ID, "error", err)
		return item, nil
	}
	s.trigger.SeasonsChanged(ctx, seasonIDs...)
	return item, nil
}

// Delete removes a club nobody references. Its season memberships and
// coaches are removed with it.
func (s *ClubService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	matches, err := s.matchRepo.CountByClub(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("count club matches: %w", err)
	}
	players, err := s.playerRepo.List(ctx, player.Filter{ClubID: item.ID})
	if err != nil {
		return fmt.Errorf("list club players: %w", err)
	}
	if matches > 0 || len(players) > 0 {
		return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
	}

	seasonIDs, err := s.seasonsOf(ctx, item.ID)
	if err != nil {
		return err
	}
	if err := deleteCoaches(ctx, s.coachRepo, club.CoachFilter{ClubID: item.ID}); err != nil {
		return err
	}
	if err := s.standingRepo.DeleteByClub(ctx, item.ID); err != nil {
		return fmt.Errorf("delete club season records: %w", err)
	}
	if err := s.clubRepo.Delete(ctx, item.ID); err != nil {
		return storeError("delete club", err)
	}

	s.trigger.SeasonsChanged(ctx, seasonIDs...)
	return nil
}

// Seasons returns the club's record in every season it belongs to.
func (s *ClubService) Seasons(ctx context.Context, id string) ([]standing.Record, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	records, err := s.standingRepo.ListByClub(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list club season records: %w", err)
	}
	return records, nil
}

func (s *ClubService) seasonsOf(ctx context.Context, clubID string) ([]string, error) {
	records, err := s.standingRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list club season records: %w", err)
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.SeasonID)
	}
	return ids, nil
}

func applyClubInput(item club.Club, input ClubInput, now time.Time) (club.Club, error) {
	status, err := club.ParseStatus(input.Status)
	if err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.ShortName = strings.TrimSpace(input.ShortName)
	item.City = strings.TrimSpace(input.City)
	item.FoundedYear = input.FoundedYear
	item.CoachName = strings.TrimSpace(input.CoachName)
	item.Stadium = strings.TrimSpace(input.Stadium)
	item.Status = status
	item.ContactEmail = strings.TrimSpace(input.ContactEmail)
	item.ContactPhone = strings.TrimSpace(input.ContactPhone)
	item.Website = strings.TrimSpace(input.Website)
	item.Description = strings.TrimSpace(input.Description)
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return item, nil
}
