package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type ApplicationInput struct {
	SeasonID       string
	ClubName       string
	ShortName      string
	City           string
	FoundedYear    int
	ContactPerson  string
	ContactPhone   string
	ContactEmail   string
	CoachName      string
	AssistantCoach string
	Description    string
}

// ApplicationService handles club applications to a season. Approving one
// registers the club and enters it into the season table.
type ApplicationService struct {
	applicationRepo application.Repository
	clubRepo        club.Repository
	seasonRepo      season.Repository
	standingRepo    standing.Repository
	trigger         StatsTrigger
	idGen           idgen.Generator
	logger          *logging.Logger
	now             func() time.Time
}

func NewApplicationService(
	applicationRepo application.Repository,
	clubRepo club.Repository,
	seasonRepo season.Repository,
	standingRepo standing.Repository,
	trigger StatsTrigger,
	idGen idgen.Generator,
	logger *logging.Logger,
) *ApplicationService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ApplicationService{
		applicationRepo: applicationRepo,
		clubRepo:        clubRepo,
		seasonRepo:      seasonRepo,
		standingRepo:    standingRepo,
		trigger:         triggerOrNoop(trigger),
		idGen:           idGen,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *ApplicationService) List(ctx context.Context, filter application.Filter) ([]application.Application, error) {
	filter.SeasonID = strings.TrimSpace(filter.SeasonID)
	if filter.Status != "" {
		status, err := application.ParseStatus(string(filter.Status))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = status
	}

	items, err := s.applicationRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list club applications: %w", err)
	}
	return items, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (application.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return application.Application{}, fmt.Errorf("%w: application id is required", ErrInvalidInput)
	}
	item, exists, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return application.Application{}, fmt.Errorf("get club application: %w", err)
	}
	if !exists {
		return application.Application{}, fmt.Errorf("%w: application=%s", ErrNotFound, id)
	}
	return item, nil
}

// Create files a pending application for a season.
func (s *ApplicationService) Create(ctx context.Context, input ApplicationInput) (application.Application, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return application.Application{}, fmt.Errorf("generate application id: %w", err)
	}
	now := s.now().UTC()
	item := application.Application{
		ID:             id,
		SeasonID:       strings.TrimSpace(input.SeasonID),
		ClubName:       strings.TrimSpace(input.ClubName),
		ShortName:      strings.TrimSpace(input.ShortName),
		City:           strings.TrimSpace(input.City),
		FoundedYear:    input.FoundedYear,
		ContactPerson:  strings.TrimSpace(input.ContactPerson),
		ContactPhone:   strings.TrimSpace(input.ContactPhone),
		ContactEmail:   strings.TrimSpace(input.ContactEmail),
		CoachName:      strings.TrimSpace(input.CoachName),
		AssistantCoach: strings.TrimSpace(input.AssistantCoach),
		Description:    strings.TrimSpace(input.Description),
		Status:         application.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := item.Validate(); err != nil {
		return application.Application{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, exists, err := s.seasonRepo.GetByID(ctx, item.SeasonID); err != nil {
		return application.Application{}, fmt.Errorf("get season: %w", err)
	} else if !exists {
		return application.Application{}, fmt.Errorf("%w: season=%s", ErrNotFound, item.SeasonID)
	}

	if err := s.applicationRepo.Create(ctx, item); err != nil {
		return application.Application{}, storeError("create club application", err)
	}
	return item, nil
}

// Approve registers an active club from a pending application and enters it
// into the application's season, in groupID when given. If the application
// cannot be saved as approved, the club and its season record are removed
// again.
func (s *ApplicationService) Approve(ctx context.Context, id, groupID string) (application.Application, club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ApplicationService.Approve", attribute.String("application_id", id))
	defer span.End()

	item, err := s.Get(ctx, id)
	if err != nil {
		return application.Application{}, club.Club{}, err
	}
	if item.Status != application.StatusPending {
		return application.Application{}, club.Club{}, reviewError(fmt.Errorf("%w: status is %s", application.ErrNotPending, item.Status))
	}
	groupID, err = checkSeasonGroup(ctx, s.seasonRepo, item.SeasonID, groupID)
	if err != nil {
		return application.Application{}, club.Club{}, err
	}

	clubID, err := s.idGen.NewID()
	if err != nil {
		return application.Application{}, club.Club{}, fmt.Errorf("generate club id: %w", err)
	}
	now := s.now().UTC()
	approved, err := item.Approve(clubID, now)
	if err != nil {
		return application.Application{}, club.Club{}, reviewError(err)
	}
	registered := club.Club{
		ID:           clubID,
		Name:         item.ClubName,
		ShortName:    item.ShortName,
		City:         item.City,
		FoundedYear:  item.FoundedYear,
		CoachName:    item.CoachName,
		Status:       club.StatusActive,
		ContactEmail: item.ContactEmail,
		ContactPhone: item.ContactPhone,
		Description:  item.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := registered.Validate(); err != nil {
		return application.Application{}, club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.clubRepo.Create(ctx, registered); err != nil {
		return application.Application{}, club.Club{}, storeError("create approved club", err)
	}
	record := standing.Record{SeasonID: item.SeasonID, ClubID: clubID, GroupID: groupID}
	if err := s.standingRepo.Ensure(ctx, []standing.Record{record}); err != nil {
		s.undoApproval(ctx, item, clubID, false)
		return application.Application{}, club.Club{}, fmt.Errorf("ensure club season record: %w", err)
	}
	if err := s.applicationRepo.Update(ctx, approved); err != nil {
		s.undoApproval(ctx, item, clubID, true)
		return application.Application{}, club.Club{}, storeError("approve club application", err)
	}

	s.logger.InfoContext(ctx, "club application approved",
		"application_id", approved.ID,
		"season_id", approved.SeasonID,
		"club_id", clubID,
	)
	s.trigger.SeasonsChanged(ctx, approved.SeasonID)
	return approved, registered, nil
}

// Reject turns down a pending application, keeping reason as its notes.
func (s *ApplicationService) Reject(ctx context.Context, id, reason string) (application.Application, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return application.Application{}, err
	}
	rejected, err := item.Reject(reason, s.now().UTC())
	if err != nil {
		return application.Application{}, reviewError(err)
	}
	if err := s.applicationRepo.Update(ctx, rejected); err != nil {
		return application.Application{}, storeError("reject club application", err)
	}
	return rejected, nil
}

func (s *ApplicationService) Withdraw(ctx context.Context, id string) (application.Application, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return application.Application{}, err
	}
	withdrawn, err := item.Withdraw(s.now().UTC())
	if err != nil {
		return application.Application{}, reviewError(err)
	}
	if err := s.applicationRepo.Update(ctx, withdrawn); err != nil {
		return application.Application{}, storeError("withdraw club application", err)
	}
	return withdrawn, nil
}

// Delete removes an application. The club of an approved one stays.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return storeError("delete club application", s.applicationRepo.Delete(ctx, item.ID))
}

func (s *ApplicationService) undoApproval(ctx context.Context, item application.Application, clubID string, joined bool) {
	if joined {
		if err := s.standingRepo.Delete(ctx, item.SeasonID, clubID); err != nil {
			s.logger.ErrorContext(ctx, "remove season record of unapproved club",
				"application_id", item.ID, "club_id", clubID, "error", err)
		}
	}
	if err := s.clubRepo.Delete(ctx, clubID); err != nil {
		s.logger.ErrorContext(ctx, "remove club of unapproved application",
			"application_id", item.ID, "club_id", clubID, "error", err)
	}
}

func reviewError(err error) error {
	if errors.Is(err, application.ErrNotPending) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
