package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
)

// coachRequest treats an omitted is_active as true.
type coachRequest struct {
	ClubID      string `json:"club_id" validate:"required"`
	SeasonID    string `json:"season_id" validate:"required"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality" validate:"max=100"`
	Bio         string `json:"bio" validate:"max=4000"`
	IsActive    *bool  `json:"is_active"`
}

func (req coachRequest) toInput() (usecase.CoachInput, error) {
	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return usecase.CoachInput{}, err
	}
	return usecase.CoachInput{
		ClubID:      req.ClubID,
		SeasonID:    req.SeasonID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Nationality: req.Nationality,
		Bio:         req.Bio,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}, nil
}

// ListCoaches filters by club_id and season_id; inactive coaches are shown
// only with all=true.
func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	all, err := queryBool(r, "all")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := r.URL.Query()
	clubID, seasonID := query.Get("club_id"), query.Get("season_id")

	items, err := h.coaches.List(ctx, clubID, seasonID, all)
	if err != nil {
		h.fail(ctx, w, "list coaches failed", err, "club_id", clubID, "season_id", seasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, coachToDTO)))
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoach")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.coaches.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get coach failed", err, "coach_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToDTO(item))
}

func (h *Handler) SaveCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveCoach")
	defer span.End()

	id := r.PathValue("id")
	var req coachRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if id == "" {
		item, err := h.coaches.Create(ctx, input)
		if err != nil {
			h.fail(ctx, w, "create coach failed", err, "club_id", req.ClubID, "season_id", req.SeasonID)
			return
		}
		writeSuccess(ctx, w, http.StatusCreated, coachToDTO(item))
		return
	}

	item, err := h.coaches.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update coach failed", err, "coach_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, coachToDTO(item))
}

func (h *Handler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCoach")
	defer span.End()

	id := r.PathValue("id")
	if err := h.coaches.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete coach failed", err, "coach_id", id)
		return
	}

	writeNoContent(w)
}
