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
	"github.com/riskibarqy/football-league/internal/domain/transfer"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

const (
	defaultTopScorersLimit = 10
	maxTopScorersLimit     = 100
)

type PlayerInput struct {
	ClubID      string
	SeasonID    string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Position    string
	Number      int
	Nationality string
	HeightCM    int
	WeightKG    int
	Status      string
}

type TopScorer struct {
	Player player.Player
	Stats  playerstat.SeasonRecord
}

type PlayerService struct {
	playerRepo   player.Repository
	clubRepo     club.Repository
	seasonRepo   season.Repository
	eventRepo    match.EventRepository
	transferRepo transfer.Repository
	statRepo     playerstat.Repository
	trigger      StatsTrigger
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewPlayerService(
	playerRepo player.Repository,
	clubRepo club.Repository,
	seasonRepo season.Repository,
	eventRepo match.EventRepository,
	transferRepo transfer.Repository,
	statRepo playerstat.Repository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo:   playerRepo,
		clubRepo:     clubRepo,
		seasonRepo:   seasonRepo,
		eventRepo:    eventRepo,
		transferRepo: transferRepo,
		statRepo:     statRepo,
		trigger:      triggerOrNoop(trigger),
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.Position != "" {
		pos, err := player.ParsePosition(string(filter.Position))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Position = pos
	}

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (player.Player, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (player.Player, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item, err := s.buildPlayer(ctx, player.Player{ID: id, CreatedAt: now}, input, now)
	if err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, storeError("create player", err)
	}

	s.trigger.SeasonsChanged(ctx, item.SeasonID)
	return item, nil
}

// Update replaces the editable fields of a player. A change of club or season
// moves club-level appearances, so both old and new seasons are rebuilt.
func (s *PlayerService) Update(ctx context.Context, id string, input PlayerInput) (player.Player, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	item, err := s.buildPlayer(ctx, current, input, s.now().UTC())
	if err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, storeError("update player", err)
	}

	if current.ClubID != item.ClubID || current.SeasonID != item.SeasonID || current.Position != item.Position {
		seasonIDs := []string{current.SeasonID, item.SeasonID}
		if records, err := s.statRepo.ListByPlayer(ctx, item.ID); err == nil {
			for _, r := range records {
				seasonIDs = append(seasonIDs, r.SeasonID)
			}
		} else {
			s.logger.WarnContext(ctx, "list player stats for recompute failed", "player_id", item.ID, "error", err)
		}
		s.trigger.SeasonsChanged(ctx, seasonIDs...)
	}
	return item, nil
}

// Delete removes a player that no match event or transfer references.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	events, err := s.eventRepo.CountByPlayer(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("count player events: %w", err)
	}
	transfers, err := s.transferRepo.List(ctx, transfer.Filter{PlayerID: item.ID})
	if err != nil {
		return fmt.Errorf("list player transfers: %w", err)
	}
	if events > 0 || len(transfers) > 0 {
		return fmt.Errorf("%w: cannot delete: related records exist", ErrConflict)
	}

	if err := s.statRepo.DeleteByPlayer(ctx, item.ID); err != nil {
		return fmt.Errorf("delete player stats: %w", err)
	}
	if err := s.playerRepo.Delete(ctx, item.ID); err != nil {
		return storeError("delete player", err)
	}
	return nil
}

// Stats returns the player's statistics in every season it has a record for.
func (s *PlayerService) Stats(ctx context.Context, id string) ([]playerstat.SeasonRecord, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	records, err := s.statRepo.ListByPlayer(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}
	return records, nil
}

// TopScorers ranks the players of a season by goals then assists. An empty
// seasonID means the active season.
func (s *PlayerService) TopScorers(ctx context.Context, seasonID string, limit int) (season.Season, []TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopScorers")
	defer span.End()

	seasonItem, err := resolveSeason(ctx, s.seasonRepo, seasonID)
	if err != nil {
		return season.Season{}, nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultTopScorersLimit
	case limit > maxTopScorersLimit:
		limit = maxTopScorersLimit
	}

	records, err := s.statRepo.ListBySeason(ctx, seasonItem.ID)
	if err != nil {
		return season.Season{}, nil, fmt.Errorf("list season player stats: %w", err)
	}
	top := playerstat.TopScorers(records, limit)
	if len(top) == 0 {
		return seasonItem, []TopScorer{}, nil
	}

	ids := make([]string, 0, len(top))
	for _, r := range top {
		ids = append(ids, r.PlayerID)
	}
	players, err := s.playerRepo.List(ctx, player.Filter{IDs: ids})
	if err != nil {
		return season.Season{}, nil, fmt.Errorf("list top scorer players: %w", err)
	}
	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := make([]TopScorer, 0, len(top))
	for _, r := range top {
		p, ok := byID[r.PlayerID]
		if !ok {
			continue
		}
		out = append(out, TopScorer{Player: p, Stats: r})
	}
	return seasonItem, out, nil
}

func (s *PlayerService) buildPlayer(ctx context.Context, item player.Player, input PlayerInput, now time.Time) (player.Player, error) {
	position, err := player.ParsePosition(input.Position)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	status, err := player.ParseStatus(input.Status)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item.ClubID = strings.TrimSpace(input.ClubID)
	item.SeasonID = strings.TrimSpace(input.SeasonID)
	item.FirstName = strings.TrimSpace(input.FirstName)
	item.LastName = strings.TrimSpace(input.LastName)
	item.DateOfBirth = input.DateOfBirth
	item.Position = position
	item.Number = input.Number
	item.Nationality = strings.TrimSpace(input.Nationality)
	item.HeightCM = input.HeightCM
	item.WeightKG = input.WeightKG
	item.Status = status
	item.UpdatedAt = now
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.clubRepo.GetByID(ctx, item.ClubID); err != nil {
		return player.Player{}, fmt.Errorf("get club: %w", err)
	} else if !exists {
		return player.Player{}, fmt.Errorf("%w: club=%s", ErrNotFound, item.ClubID)
	}
	if item.SeasonID != "" {
		if _, exists, err := s.seasonRepo.GetByID(ctx, item.SeasonID); err != nil {
			return player.Player{}, fmt.Errorf("get season: %w", err)
		} else if !exists {
			return player.Player{}, fmt.Errorf("%w: season=%s", ErrNotFound, item.SeasonID)
		}
	}

	squad, err := s.playerRepo.List(ctx, player.Filter{ClubID: item.ClubID, SeasonID: item.SeasonID})
	if err != nil {
		return player.Player{}, fmt.Errorf("list club squad: %w", err)
	}
	for _, other := range squad {
		if other.ID != item.ID && other.SeasonID == item.SeasonID && other.Number == item.Number {
			return player.Player{}, fmt.Errorf("%w: shirt number %d is taken by player %s", ErrConflict, item.Number, other.ID)
		}
	}
	return item, nil
}

func resolveSeason(ctx context.Context, repo season.Repository, seasonID string) (season.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		item, exists, err := repo.GetActive(ctx)
		if err != nil {
			return season.Season{}, fmt.Errorf("get active season: %w", err)
		}
		if !exists {
			return season.Season{}, fmt.Errorf("%w: no active season", ErrNotFound)
		}
		return item, nil
	}

	item, exists, err := repo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}
