package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type clubRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	ShortName    string `json:"short_name" validate:"max=20"`
	City         string `json:"city" validate:"max=120"`
	FoundedYear  int    `json:"founded_year" validate:"omitempty,gte=1800,lte=2100"`
	CoachName    string `json:"coach_name" validate:"max=120"`
	Stadium      string `json:"stadium" validate:"max=120"`
	Status       string `json:"status"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"max=40"`
	Website      string `json:"website" validate:"omitempty,url"`
	Description  string `json:"description" validate:"max=2000"`
}

func (req clubRequest) toInput() usecase.ClubInput {
	return usecase.ClubInput{
		Name:         req.Name,
		ShortName:    req.ShortName,
		City:         req.City,
		FoundedYear:  req.FoundedYear,
		CoachName:    req.CoachName,
		Stadium:      req.Stadium,
		Status:       req.Status,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
		Description:  req.Description,
	}
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	query := r.URL.Query()
	filter := club.Filter{
		Query:  query.Get("q"),
		Status: club.Status(strings.TrimSpace(query.Get("status"))),
	}

	items, err := h.clubs.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list clubs failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, clubToDTO)))
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.clubs.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get club failed", err, "club_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

func (h *Handler) ListClubSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubSeasons")
	defer span.End()

	id := r.PathValue("id")
	records, err := h.clubs.Seasons(ctx, id)
	if err != nil {
		h.fail(ctx, w, "list club seasons failed", err, "club_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(records, standingToDTO)))
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req clubRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubs.Create(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create club failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(item))
}

func (h *Handler) UpdateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateClub")
	defer span.End()

	id := r.PathValue("id")
	var req clubRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubs.Update(ctx, id, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update club failed", err, "club_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

func (h *Handler) DeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteClub")
	defer span.End()

	id := r.PathValue("id")
	if err := h.clubs.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete club failed", err, "club_id", id)
		return
	}

	writeNoContent(w)
}
