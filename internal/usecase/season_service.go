package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type SeasonInput struct {
	Name        string
	Format      string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    bool
	Description string
}

type JoinClubInput struct {
	SeasonID string
	ClubID   string
	GroupID  string
}

type GroupInput struct {
	Name  string
	Order int
}

type SeasonSyncResult struct {
	ActiveSeasonID string
	Changed        bool
}

type SeasonService struct {
	seasonRepo   season.Repository
	clubRepo     club.Repository
	matchRepo    match.Repository
	playerRepo   player.Repository
	standingRepo standing.Repository
	statRepo     playerstat.Repository
	coachRepo    club.CoachRepository
	trigger      StatsTrigger
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewSeasonService(
	seasonRepo season.Repository,
	clubRepo club.Repository,
	matchRepo match.Repository,
	playerRepo player.Repository,
	standingRepo standing.Repository,
	statRepo playerstat.Repository,
	coachRepo club.CoachRepository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SeasonService{
		seasonRepo:   seasonRepo,
		clubRepo:     clubRepo,
		matchRepo:    matchRepo,
		playerRepo:   playerRepo,
		standingRepo: standingRepo,
		statRepo:     statRepo,
		coachRepo:    coachRepo,
		trigger:      triggerOrNoop(trigger),
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, id string) (season.Season, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, id)
	}
	return item, nil
}

// GetActive returns the active season or ErrNotFound when none is active.
func (s *SeasonService) GetActive(ctx context.Context) (season.Season, error) {
	return resolveSeason(ctx, s.seasonRepo, "")
}

// Resolve returns the season with the given id, or the active season when id
// is empty.
func (s *SeasonService) Resolve(ctx context.Context, id string) (season.Season, error) {
	return resolveSeason(ctx, s.seasonRepo, id)
}

func (s *SeasonService) Create(ctx context.Context, input SeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := s.now().UTC()
	item := applySeasonInput(season.Season{ID: id, CreatedAt: now}, input, now)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, storeError("create season", err)
	}
	if err := s.ensureDefaultGroups(ctx, item); err != nil {
		return season.Season{}, err
	}

	return item, nil
}

// Update replaces the editable fields of a season and rebuilds its
// aggregates.
func (s *SeasonService) Update(ctx context.Context, id string, input SeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update", attribute.String("season_id", id))
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return season.Season{}, err
	}

	item := applySeasonInput(current, input, s.now().UTC())
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.Season{}, storeError("update season", err)
	}
	if err := s.ensureDefaultGroups(ctx, item); err != nil {
		return season.Season{}, err
	}

	s.trigger.SeasonsChanged(ctx, item.ID)
	return item, nil
}

// Delete removes a season with no matches or players. Its club memberships
// and player statistics go with it, and so do its coaches.
func (s *SeasonService) Delete(ctx context.Context, id string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete", attribute.String("season_id", id))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	matches, err := s.matchRepo.CountBySeason(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("count season matches: %w", err)
	}
	players, err := s.playerRepo.List(ctx, player.Filter{SeasonID: item.ID})
	if err != nil {
		return fmt.Errorf("list season players: %w", err)
	}
	if matches > 0 || len(players) > 0 {
		return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
	}

	if err := deleteCoaches(ctx, s.coachRepo, club.CoachFilter{SeasonID: item.ID}); err != nil {
		return err
	}
	if err := s.standingRepo.DeleteBySeason(ctx, item.ID); err != nil {
		return fmt.Errorf("delete season standings: %w", err)
	}
	if err := s.statRepo.DeleteBySeason(ctx, item.ID); err != nil {
		return fmt.Errorf("delete season player stats: %w", err)
	}
	if err := s.seasonRepo.Delete(ctx, item.ID); err != nil {
		return storeError("delete season", err)
	}
	return nil
}

// Activate makes the season the only active one.
func (s *SeasonService) Activate(ctx context.Context, id string) (season.Season, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return season.Season{}, err
	}
	if err := s.seasonRepo.SetActive(ctx, item.ID); err != nil {
		return season.Season{}, fmt.Errorf("activate season: %w", err)
	}
	item.IsActive = true
	return item, nil
}

func (s *SeasonService) ListGroups(ctx context.Context, seasonID string) ([]season.Group, error) {
	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	groups, err := s.seasonRepo.ListGroups(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list season groups: %w", err)
	}
	return groups, nil
}

// CreateGroup adds a group to the season. Group names are unique per season.
func (s *SeasonService) CreateGroup(ctx context.Context, seasonID string, input GroupInput) (season.Group, error) {
	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return season.Group{}, err
	}
	id, err := s.idGen.NewID()
	if err != nil {
		return season.Group{}, fmt.Errorf("generate group id: %w", err)
	}
	group, err := buildGroup(item.ID, id, input)
	if err != nil {
		return season.Group{}, err
	}
	if err := s.seasonRepo.CreateGroups(ctx, []season.Group{group}); err != nil {
		return season.Group{}, storeError("create season group", err)
	}
	return group, nil
}

func (s *SeasonService) UpdateGroup(ctx context.Context, seasonID, groupID string, input GroupInput) (season.Group, error) {
	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return season.Group{}, err
	}
	if _, err := s.findGroup(ctx, item.ID, groupID); err != nil {
		return season.Group{}, err
	}
	group, err := buildGroup(item.ID, strings.TrimSpace(groupID), input)
	if err != nil {
		return season.Group{}, err
	}
	if err := s.seasonRepo.UpdateGroup(ctx, group); err != nil {
		return season.Group{}, storeError("update season group", err)
	}
	return group, nil
}

// DeleteGroup removes a group that no club membership or match uses.
func (s *SeasonService) DeleteGroup(ctx context.Context, seasonID, groupID string) error {
	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return err
	}
	group, err := s.findGroup(ctx, item.ID, groupID)
	if err != nil {
		return err
	}

	records, err := s.standingRepo.ListBySeason(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("list season clubs: %w", err)
	}
	for _, r := range records {
		if r.GroupID == group.ID {
			return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
		}
	}
	matches, err := s.matchRepo.List(ctx, match.Filter{SeasonID: item.ID})
	if err != nil {
		return fmt.Errorf("list season matches: %w", err)
	}
	for _, m := range matches {
		if m.GroupID == group.ID {
			return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
		}
	}

	if err := s.seasonRepo.DeleteGroup(ctx, item.ID, group.ID); err != nil {
		return storeError("delete season group", err)
	}
	return nil
}

func (s *SeasonService) findGroup(ctx context.Context, seasonID, groupID string) (season.Group, error) {
	groups, err := s.seasonRepo.ListGroups(ctx, seasonID)
	if err != nil {
		return season.Group{}, fmt.Errorf("list season groups: %w", err)
	}
	groupID = strings.TrimSpace(groupID)
	for _, g := range groups {
		if g.ID == groupID {
			return g, nil
		}
	}
	return season.Group{}, fmt.Errorf("%w: group=%s season=%s", ErrNotFound, groupID, seasonID)
}

func buildGroup(seasonID, id string, input GroupInput) (season.Group, error) {
	group := season.Group{
		ID:       id,
		SeasonID: seasonID,
		Name:     strings.TrimSpace(input.Name),
		Order:    input.Order,
	}
	if group.Name == "" {
		return season.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}
	if group.Order < 0 {
		return season.Group{}, fmt.Errorf("%w: group order must not be negative", ErrInvalidInput)
	}
	return group, nil
}

// ListClubs returns the club memberships of a season in table order.
func (s *SeasonService) ListClubs(ctx context.Context, seasonID string) ([]standing.Record, error) {
	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	records, err := s.standingRepo.ListBySeason(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list season clubs: %w", err)
	}
	return standing.SortByPosition(records), nil
}

// JoinClub associates a club with a season, creating its zeroed record when
// absent. Joining again only moves the club to the given group.
func (s *SeasonService) JoinClub(ctx context.Context, input JoinClubInput) (standing.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.JoinClub", attribute.String("season_id", input.SeasonID))
	defer span.End()

	item, err := s.Get(ctx, input.SeasonID)
	if err != nil {
		return standing.Record{}, err
	}
	clubID := strings.TrimSpace(input.ClubID)
	if clubID == "" {
		return standing.Record{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	if _, exists, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
		return standing.Record{}, fmt.Errorf("get club: %w", err)
	} else if !exists {
		return standing.Record{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}
	groupID, err := s.checkGroup(ctx, item.ID, input.GroupID)
	if err != nil {
		return standing.Record{}, err
	}

	record := standing.Record{SeasonID: item.ID, ClubID: clubID, GroupID: groupID}
	if err := s.standingRepo.Ensure(ctx, []standing.Record{record}); err != nil {
		return standing.Record{}, fmt.Errorf("ensure club season record: %w", err)
	}

	s.trigger.SeasonsChanged(ctx, item.ID)

	stored, exists, err := s.standingRepo.Get(ctx, item.ID, clubID)
	if err != nil {
		return standing.Record{}, fmt.Errorf("get club season record: %w", err)
	}
	if !exists {
		return record, nil
	}
	return stored, nil
}

// RemoveClub drops a club from a season it has not played in.
func (s *SeasonService) RemoveClub(ctx context.Context, seasonID, clubID string) error {
	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return err
	}
	clubID = strings.TrimSpace(clubID)
	if _, exists, err := s.standingRepo.Get(ctx, item.ID, clubID); err != nil {
		return fmt.Errorf("get club season record: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: club=%s is not in season=%s", ErrNotFound, clubID, item.ID)
	}

	played, err := s.matchRepo.List(ctx, match.Filter{SeasonID: item.ID, ClubID: clubID, Limit: 1})
	if err != nil {
		return fmt.Errorf("list club matches: %w", err)
	}
	if len(played) > 0 {
		return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
	}

	if err := s.standingRepo.Delete(ctx, item.ID, clubID); err != nil {
		return fmt.Errorf("delete club season record: %w", err)
	}
	s.trigger.SeasonsChanged(ctx, item.ID)
	return nil
}

// SyncByDate activates the season whose date range covers today and
// deactivates the others. Nothing changes when no season covers today.
// Among overlapping seasons the one that started last wins.
func (s *SeasonService) SyncByDate(ctx context.Context, today time.Time) (SeasonSyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.SyncByDate")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return SeasonSyncResult{}, fmt.Errorf("list seasons: %w", err)
	}

	var (
		current *season.Season
		active  int
	)
	for i := range items {
		if items[i].IsActive {
			active++
		}
		if !items[i].Covers(today) {
			continue
		}
		if current == nil || items[i].StartDate.After(*current.StartDate) {
			current = &items[i]
		}
	}
	if current == nil {
		s.logger.InfoContext(ctx, "no season covers date", "date", today.Format(time.DateOnly))
		return SeasonSyncResult{}, nil
	}
	if current.IsActive && active == 1 {
		return SeasonSyncResult{ActiveSeasonID: current.ID}, nil
	}

	if err := s.seasonRepo.SetActive(ctx, current.ID); err != nil {
		return SeasonSyncResult{}, fmt.Errorf("activate season: %w", err)
	}
	s.logger.InfoContext(ctx, "season activated by date", "season_id", current.ID, "date", today.Format(time.DateOnly))
	return SeasonSyncResult{ActiveSeasonID: current.ID, Changed: true}, nil
}

func (s *SeasonService) ensureDefaultGroups(ctx context.Context, item season.Season) error {
	if !item.HasGroups() {
		return nil
	}
	existing, err := s.seasonRepo.ListGroups(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("list season groups: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	groups := make([]season.Group, 0, len(season.DefaultGroupNames))
	for i, name := range season.DefaultGroupNames {
		id, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate group id: %w", err)
		}
		groups = append(groups, season.Group{ID: id, SeasonID: item.ID, Name: name, Order: i + 1})
	}
	if err := s.seasonRepo.CreateGroups(ctx, groups); err != nil {
		return storeError("create season groups", err)
	}
	return nil
}

// checkGroup verifies groupID belongs to the season. An empty id is allowed.
func (s *SeasonService) checkGroup(ctx context.Context, seasonID, groupID string) (string, error) {
	return checkSeasonGroup(ctx, s.seasonRepo, seasonID, groupID)
}

func checkSeasonGroup(ctx context.Context, repo season.Repository, seasonID, groupID string) (string, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return "", nil
	}
	groups, err := repo.ListGroups(ctx, seasonID)
	if err != nil {
		return "", fmt.Errorf("list season groups: %w", err)
	}
	for _, g := range groups {
		if g.ID == groupID {
			return groupID, nil
		}
	}
	return "", fmt.Errorf("%w: group %s does not belong to season %s", ErrInvalidInput, groupID, seasonID)
}

func applySeasonInput(item season.Season, input SeasonInput, now time.Time) season.Season {
	item.Name = strings.TrimSpace(input.Name)
	item.Format = season.NormalizeFormat(input.Format)
	item.StartDate = input.StartDate
	item.EndDate = input.EndDate
	item.IsActive = input.IsActive
	item.Description = strings.TrimSpace(input.Description)
	item.UpdatedAt = now
	return item
}
