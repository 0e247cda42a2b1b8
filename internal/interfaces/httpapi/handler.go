package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/usecase"
)

const (
	dateLayout     = "2006-01-02"
	maxRequestBody = 1 << 20
)

var errEmptyBody = fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)

// Services bundles the use cases the HTTP surface delegates to.
type Services struct {
	Seasons      *usecase.SeasonService
	Clubs        *usecase.ClubService
	Players      *usecase.PlayerService
	Standings    *usecase.StandingService
	Matches      *usecase.MatchService
	Events       *usecase.MatchEventService
	Transfers    *usecase.TransferService
	Referees     *usecase.RefereeService
	Managers     *usecase.ManagerService
	Partners     *usecase.PartnerService
	Stadiums     *usecase.StadiumService
	Coaches      *usecase.CoachService
	Applications *usecase.ApplicationService
	Recompute    *usecase.StatsRecomputeService
}

type Handler struct {
	seasons      *usecase.SeasonService
	clubs        *usecase.ClubService
	players      *usecase.PlayerService
	standings    *usecase.StandingService
	matches      *usecase.MatchService
	events       *usecase.MatchEventService
	transfers    *usecase.TransferService
	referees     *usecase.RefereeService
	managers     *usecase.ManagerService
	partners     *usecase.PartnerService
	stadiums     *usecase.StadiumService
	coaches      *usecase.CoachService
	applications *usecase.ApplicationService
	recompute    *usecase.StatsRecomputeService
	logger       *logging.Logger
	validator    *validator.Validate
	now          func() time.Time
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasons:      services.Seasons,
		clubs:        services.Clubs,
		players:      services.Players,
		standings:    services.Standings,
		matches:      services.Matches,
		events:       services.Events,
		transfers:    services.Transfers,
		referees:     services.Referees,
		managers:     services.Managers,
		partners:     services.Partners,
		stadiums:     services.Stadiums,
		coaches:      services.Coaches,
		applications: services.Applications,
		recompute:    services.Recompute,
		logger:       logger,
		validator:    validator.New(),
		now:          time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate reads a JSON body strictly (unknown fields rejected) and
// runs the validator tags of dst.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// decodeOptional is decodeAndValidate for actions whose body may be empty.
func (h *Handler) decodeOptional(ctx context.Context, r *http.Request, dst any) error {
	if err := h.decodeAndValidate(ctx, r, dst); !errors.Is(err, errEmptyBody) {
		return err
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// fail logs and writes err. Client errors log at warn, everything else at error.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func queryBool(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", usecase.ErrInvalidInput, field)
	}
	return &v, nil
}

func formatDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format(dateLayout)
}
