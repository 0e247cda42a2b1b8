package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/referee"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/stadium"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultMatchListLimit = 10
	maxMatchListLimit     = 100
)

type MatchInput struct {
	SeasonID    string
	GroupID     string
	HomeClubID  string
	AwayClubID  string
	KickoffAt   time.Time
	Status      string
	HomeScore   *int
	AwayScore   *int
	HomeScoreHT *int
	AwayScoreHT *int
	Round       int
	StadiumID   string
	Stadium     string
	RefereeID   string
	Attendance  *int
	Description string
}

type MatchServiceConfig struct {
	// ZeroScoreClearsEvents clears goals, cards and assists whenever a match
	// is saved with a 0-0 score.
	ZeroScoreClearsEvents bool
}

type MatchService struct {
	matchRepo    match.Repository
	eventRepo    match.EventRepository
	seasonRepo   season.Repository
	clubRepo     club.Repository
	refereeRepo  referee.Repository
	stadiumRepo  stadium.Repository
	standingRepo standing.Repository
	trigger      StatsTrigger
	idGen        idgen.Generator
	cfg          MatchServiceConfig
	logger       *logging.Logger
	now          func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	seasonRepo season.Repository,
	clubRepo club.Repository,
	refereeRepo referee.Repository,
	stadiumRepo stadium.Repository,
	standingRepo standing.Repository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	cfg MatchServiceConfig,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:    matchRepo,
		eventRepo:    eventRepo,
		seasonRepo:   seasonRepo,
		clubRepo:     clubRepo,
		refereeRepo:  refereeRepo,
		stadiumRepo:  stadiumRepo,
		standingRepo: standingRepo,
		trigger:      triggerOrNoop(trigger),
		idGen:        idGen,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *MatchService) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	if filter.Status != "" {
		status, err := match.ParseStatus(string(filter.Status))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = status
	}
	if filter.Limit < 0 || filter.Limit > maxMatchListLimit {
		filter.Limit = maxMatchListLimit
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// Latest returns finished matches, newest first.
func (s *MatchService) Latest(ctx context.Context, seasonID string, limit int) ([]match.Match, error) {
	return s.List(ctx, match.Filter{
		SeasonID:    strings.TrimSpace(seasonID),
		Status:      match.StatusFinished,
		NewestFirst: true,
		Limit:       listLimit(limit),
	})
}

// Upcoming returns scheduled matches that have not kicked off yet.
func (s *MatchService) Upcoming(ctx context.Context, seasonID string, limit int) ([]match.Match, error) {
	from := s.now().UTC()
	return s.List(ctx, match.Filter{
		SeasonID: strings.TrimSpace(seasonID),
		Status:   match.StatusScheduled,
		From:     &from,
		Limit:    listLimit(limit),
	})
}

func (s *MatchService) Live(ctx context.Context) ([]match.Match, error) {
	return s.List(ctx, match.Filter{Status: match.StatusLive})
}

// OnDate returns the matches kicking off on the UTC calendar day of day.
func (s *MatchService) OnDate(ctx context.Context, day time.Time) ([]match.Match, error) {
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	return s.List(ctx, match.Filter{From: &from, To: &to})
}

func (s *MatchService) Get(ctx context.Context, id string) (match.Match, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *MatchService) Create(ctx context.Context, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item, err := s.buildMatch(ctx, match.Match{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.ensureMemberships(ctx, item); err != nil {
		return match.Match{}, err
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, storeError("create match", err)
	}

	s.trigger.SeasonsChanged(ctx, item.SeasonID)
	return item, nil
}

// Update saves a match and rebuilds its season, and the previous season when
// the match moved.
func (s *MatchService) Update(ctx context.Context, id string, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update", attribute.String("match_id", id))
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return match.Match{}, err
	}

	item, err := s.buildMatch(ctx, current, input, s.now().UTC())
	if err != nil {
		return match.Match{}, err
	}
	if !match.CanTransition(current.Status, item.Status) {
		return match.Match{}, fmt.Errorf("%w: match cannot move from %s to %s", ErrInvalidInput, current.Status, item.Status)
	}
	if err := s.ensureMemberships(ctx, item); err != nil {
		return match.Match{}, err
	}
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, storeError("update match", err)
	}

	// The match is already saved, so its seasons are rebuilt even when the
	// stale events could not be cleared.
	if s.cfg.ZeroScoreClearsEvents && item.IsGoallessDraw() {
		if _, err := s.clearEvents(ctx, item.ID); err != nil {
			s.logger.ErrorContext(ctx, "clear events of goalless match", "match_id", item.ID, "error", err)
		}
	}

	s.trigger.SeasonsChanged(ctx, current.SeasonID, item.SeasonID)
	return item, nil
}

// Delete removes a match with its events and rebuilds its season.
func (s *MatchService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete", attribute.String("match_id", id))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, item.ID); err != nil {
		return storeError("delete match", err)
	}

	s.trigger.SeasonsChanged(ctx, item.SeasonID)
	return nil
}

// ClearEvents deletes the goals, cards and assists of a match. Substitutions
// are kept. It returns the number of deleted events.
func (s *MatchService) ClearEvents(ctx context.Context, id string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ClearEvents", attribute.String("match_id", id))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	removed, err := s.clearEvents(ctx, item.ID)
	if err != nil {
		return 0, err
	}

	s.trigger.MatchEventsChanged(ctx, item.ID)
	return removed, nil
}

func (s *MatchService) clearEvents(ctx context.Context, matchID string) (int, error) {
	removed, err := s.eventRepo.ClearScoringEvents(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("clear match events: %w", err)
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "match events cleared", "match_id", matchID, "removed", removed)
	}
	return removed, nil
}

func (s *MatchService) ensureMemberships(ctx context.Context, item match.Match) error {
	records := []standing.Record{
		{SeasonID: item.SeasonID, ClubID: item.HomeClubID, GroupID: item.GroupID},
		{SeasonID: item.SeasonID, ClubID: item.AwayClubID, GroupID: item.GroupID},
	}
	if err := s.standingRepo.Ensure(ctx, records); err != nil {
		return fmt.Errorf("ensure club season records: %w", err)
	}
	return nil
}

func (s *MatchService) buildMatch(ctx context.Context, item match.Match, input MatchInput, now time.Time) (match.Match, error) {
	status, err := match.ParseStatus(input.Status)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item.SeasonID = strings.TrimSpace(input.SeasonID)
	item.GroupID = strings.TrimSpace(input.GroupID)
	item.HomeClubID = strings.TrimSpace(input.HomeClubID)
	item.AwayClubID = strings.TrimSpace(input.AwayClubID)
	item.KickoffAt = input.KickoffAt.UTC()
	item.Status = status
	item.HomeScore = input.HomeScore
	item.AwayScore = input.AwayScore
	item.HomeScoreHT = input.HomeScoreHT
	item.AwayScoreHT = input.AwayScoreHT
	item.Round = input.Round
	item.StadiumID = strings.TrimSpace(input.StadiumID)
	item.Stadium = strings.TrimSpace(input.Stadium)
	item.RefereeID = strings.TrimSpace(input.RefereeID)
	item.Attendance = input.Attendance
	item.Description = strings.TrimSpace(input.Description)
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.seasonRepo.GetByID(ctx, item.SeasonID); err != nil {
		return match.Match{}, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return match.Match{}, fmt.Errorf("%w: season=%s", ErrNotFound, item.SeasonID)
	}
	for _, clubID := range []string{item.HomeClubID, item.AwayClubID} {
		if _, exists, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
			return match.Match{}, fmt.Errorf("get club: %w", err)
		} else if !exists {
			return match.Match{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
		}
	}
	if item.RefereeID != "" {
		if _, exists, err := s.refereeRepo.GetByID(ctx, item.RefereeID); err != nil {
			return match.Match{}, fmt.Errorf("get referee: %w", err)
		} else if !exists {
			return match.Match{}, fmt.Errorf("%w: referee=%s", ErrNotFound, item.RefereeID)
		}
	}
	if item.StadiumID != "" {
		venue, exists, err := s.stadiumRepo.GetByID(ctx, item.StadiumID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get stadium: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: stadium=%s", ErrNotFound, item.StadiumID)
		}
		if item.Stadium == "" {
			item.Stadium = venue.Name
		}
	}
	if _, err := checkSeasonGroup(ctx, s.seasonRepo, item.SeasonID, item.GroupID); err != nil {
		return match.Match{}, err
	}
	return item, nil
}

func listLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultMatchListLimit
	case limit > maxMatchListLimit:
		return maxMatchListLimit
	default:
		return limit
	}
}
