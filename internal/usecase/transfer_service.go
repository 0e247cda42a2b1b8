package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/transfer"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type TransferInput struct {
	PlayerID     string
	FromClubID   string
	ToClubID     string
	SeasonID     string
	TransferDate time.Time
	Status       string
	FeeCents     *int64
	Notes        string
}

type TransferService struct {
	transferRepo transfer.Repository
	playerRepo   player.Repository
	clubRepo     club.Repository
	seasonRepo   season.Repository
	trigger      StatsTrigger
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewTransferService(
	transferRepo transfer.Repository,
	playerRepo player.Repository,
	clubRepo club.Repository,
	seasonRepo season.Repository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TransferService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		transferRepo: transferRepo,
		playerRepo:   playerRepo,
		clubRepo:     clubRepo,
		seasonRepo:   seasonRepo,
		trigger:      triggerOrNoop(trigger),
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *TransferService) List(ctx context.Context, filter transfer.Filter) ([]transfer.Transfer, error) {
	if filter.Status != "" {
		status, err := transfer.ParseStatus(string(filter.Status))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = status
	}

	items, err := s.transferRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return items, nil
}

func (s *TransferService) Get(ctx context.Context, id string) (transfer.Transfer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer id is required", ErrInvalidInput)
	}

	item, exists, err := s.transferRepo.GetByID(ctx, id)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	if !exists {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer=%s", ErrNotFound, id)
	}
	return item, nil
}

// Create records a transfer. The source club defaults to the player's current
// club. A transfer created as confirmed moves the player right away.
func (s *TransferService) Create(ctx context.Context, input TransferInput) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Create")
	defer span.End()

	status, err := transfer.ParseStatus(input.Status)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if status == transfer.StatusCancelled {
		return transfer.Transfer{}, fmt.Errorf("%w: a transfer cannot be created as cancelled", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, strings.TrimSpace(input.PlayerID))
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return transfer.Transfer{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("generate transfer id: %w", err)
	}
	now := s.now().UTC()
	item := transfer.Transfer{
		ID:           id,
		PlayerID:     p.ID,
		FromClubID:   strings.TrimSpace(input.FromClubID),
		ToClubID:     strings.TrimSpace(input.ToClubID),
		SeasonID:     strings.TrimSpace(input.SeasonID),
		TransferDate: input.TransferDate,
		Status:       transfer.StatusPending,
		FeeCents:     input.FeeCents,
		Notes:        strings.TrimSpace(input.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if item.FromClubID == "" {
		item.FromClubID = p.ClubID
	}
	if item.TransferDate.IsZero() {
		item.TransferDate = now
	}
	if err := item.Validate(); err != nil {
		return transfer.Transfer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkReferences(ctx, item); err != nil {
		return transfer.Transfer{}, err
	}

	if err := s.transferRepo.Create(ctx, item); err != nil {
		return transfer.Transfer{}, storeError("create transfer", err)
	}
	if status == transfer.StatusConfirmed {
		return s.Confirm(ctx, item.ID)
	}
	return item, nil
}

// Confirm settles a pending transfer and moves the player to the destination
// club.
func (s *TransferService) Confirm(ctx context.Context, id string) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Confirm", attribute.String("transfer_id", id))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return transfer.Transfer{}, err
	}
	confirmed, err := item.Confirm(s.now().UTC())
	if err != nil {
		return transfer.Transfer{}, settleError(err)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, item.PlayerID)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return transfer.Transfer{}, fmt.Errorf("%w: player=%s", ErrNotFound, item.PlayerID)
	}

	// The player moves first. A transfer that cannot be saved as confirmed
	// puts the player back, so a confirmed transfer always has a moved player.
	moved := p
	moved.ClubID = confirmed.ToClubID
	moved.UpdatedAt = confirmed.UpdatedAt
	if err := s.playerRepo.Update(ctx, moved); err != nil {
		return transfer.Transfer{}, storeError("move transferred player", err)
	}
	if err := s.transferRepo.Update(ctx, confirmed); err != nil {
		if restoreErr := s.playerRepo.Update(ctx, p); restoreErr != nil {
			s.logger.ErrorContext(ctx, "restore player of unconfirmed transfer",
				"transfer_id", confirmed.ID,
				"player_id", p.ID,
				"club_id", p.ClubID,
				"error", restoreErr,
			)
			s.trigger.SeasonsChanged(ctx, p.SeasonID)
		}
		return transfer.Transfer{}, storeError("confirm transfer", err)
	}
	s.logger.InfoContext(ctx, "transfer confirmed",
		"transfer_id", confirmed.ID,
		"player_id", p.ID,
		"from_club_id", p.ClubID,
		"to_club_id", moved.ClubID,
	)

	s.trigger.SeasonsChanged(ctx, p.SeasonID, confirmed.SeasonID)
	return confirmed, nil
}

func (s *TransferService) Cancel(ctx context.Context, id string) (transfer.Transfer, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return transfer.Transfer{}, err
	}
	cancelled, err := item.Cancel(s.now().UTC())
	if err != nil {
		return transfer.Transfer{}, settleError(err)
	}
	if err := s.transferRepo.Update(ctx, cancelled); err != nil {
		return transfer.Transfer{}, storeError("cancel transfer", err)
	}
	return cancelled, nil
}

// Delete removes a transfer that was never confirmed.
func (s *TransferService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.Status == transfer.StatusConfirmed {
		return fmt.Errorf("%w: a confirmed transfer cannot be deleted", ErrConflict)
	}
	if err := s.transferRepo.Delete(ctx, item.ID); err != nil {
		return storeError("delete transfer", err)
	}
	return nil
}

func (s *TransferService) checkReferences(ctx context.Context, item transfer.Transfer) error {
	for _, clubID := range []string{item.FromClubID, item.ToClubID} {
		if clubID == "" {
			continue
		}
		if _, exists, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
			return fmt.Errorf("get club: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
		}
	}
	if item.SeasonID != "" {
		if _, exists, err := s.seasonRepo.GetByID(ctx, item.SeasonID); err != nil {
			return fmt.Errorf("get season: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: season=%s", ErrNotFound, item.SeasonID)
		}
	}
	return nil
}

func settleError(err error) error {
	if errors.Is(err, transfer.ErrNotPending) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
