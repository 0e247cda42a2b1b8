package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
)

type seasonRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Format      string `json:"format" validate:"omitempty,oneof=single groups"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsActive    bool   `json:"is_active"`
	Description string `json:"description" validate:"max=2000"`
}

type groupRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Order int    `json:"order" validate:"min=0"`
}

type joinClubRequest struct {
	ClubID  string `json:"club_id" validate:"required"`
	GroupID string `json:"group_id"`
}

func (req seasonRequest) toInput() (usecase.SeasonInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return usecase.SeasonInput{}, err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return usecase.SeasonInput{}, err
	}

	return usecase.SeasonInput{
		Name:        req.Name,
		Format:      req.Format,
		StartDate:   start,
		EndDate:     end,
		IsActive:    req.IsActive,
		Description: req.Description,
	}, nil
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.seasons.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list seasons failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, seasonToDTO)))
}

func (h *Handler) GetActiveSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveSeason")
	defer span.End()

	item, err := h.seasons.GetActive(ctx)
	if err != nil {
		h.fail(ctx, w, "get active season failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.seasons.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get season failed", err, "season_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req seasonRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasons.Create(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create season failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	id := r.PathValue("id")
	var req seasonRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasons.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update season failed", err, "season_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	id := r.PathValue("id")
	if err := h.seasons.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete season failed", err, "season_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ActivateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivateSeason")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.seasons.Activate(ctx, id)
	if err != nil {
		h.fail(ctx, w, "activate season failed", err, "season_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) ListSeasonGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonGroups")
	defer span.End()

	id := r.PathValue("id")
	groups, err := h.seasons.ListGroups(ctx, id)
	if err != nil {
		h.fail(ctx, w, "list season groups failed", err, "season_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(groups, seasonGroupToDTO)))
}

func (h *Handler) CreateSeasonGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeasonGroup")
	defer span.End()

	seasonID := r.PathValue("id")
	var req groupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	group, err := h.seasons.CreateGroup(ctx, seasonID, usecase.GroupInput{Name: req.Name, Order: req.Order})
	if err != nil {
		h.fail(ctx, w, "create season group failed", err, "season_id", seasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonGroupToDTO(group))
}

func (h *Handler) UpdateSeasonGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeasonGroup")
	defer span.End()

	seasonID, groupID := r.PathValue("id"), r.PathValue("groupID")
	var req groupRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	group, err := h.seasons.UpdateGroup(ctx, seasonID, groupID, usecase.GroupInput{Name: req.Name, Order: req.Order})
	if err != nil {
		h.fail(ctx, w, "update season group failed", err, "season_id", seasonID, "group_id", groupID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonGroupToDTO(group))
}

func (h *Handler) DeleteSeasonGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeasonGroup")
	defer span.End()

	seasonID, groupID := r.PathValue("id"), r.PathValue("groupID")
	if err := h.seasons.DeleteGroup(ctx, seasonID, groupID); err != nil {
		h.fail(ctx, w, "delete season group failed", err, "season_id", seasonID, "group_id", groupID)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ListSeasonClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonClubs")
	defer span.End()

	id := r.PathValue("id")
	records, err := h.seasons.ListClubs(ctx, id)
	if err != nil {
		h.fail(ctx, w, "list season clubs failed", err, "season_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(records, standingToDTO)))
}

func (h *Handler) JoinSeasonClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinSeasonClub")
	defer span.End()

	seasonID := r.PathValue("id")
	var req joinClubRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.seasons.JoinClub(ctx, usecase.JoinClubInput{
		SeasonID: seasonID,
		ClubID:   req.ClubID,
		GroupID:  req.GroupID,
	})
	if err != nil {
		h.fail(ctx, w, "join season club failed", err, "season_id", seasonID, "club_id", req.ClubID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingToDTO(record))
}

func (h *Handler) RemoveSeasonClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveSeasonClub")
	defer span.End()

	seasonID := r.PathValue("id")
	clubID := r.PathValue("clubID")
	if err := h.seasons.RemoveClub(ctx, seasonID, clubID); err != nil {
		h.fail(ctx, w, "remove season club failed", err, "season_id", seasonID, "club_id", clubID)
		return
	}

	writeNoContent(w)
}

func (h *Handler) RecomputeSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeSeason")
	defer span.End()

	id := r.PathValue("id")
	result, err := h.recompute.RecomputeSeason(ctx, id)
	if err != nil {
		h.fail(ctx, w, "recompute season failed", err, "season_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recomputeResultToDTO(result))
}

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTable")
	defer span.End()

	grouped, err := queryBool(r, "grouped")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID := r.URL.Query().Get("season_id")

	table, err := h.standings.Table(ctx, seasonID, grouped)
	if err != nil {
		h.fail(ctx, w, "get table failed", err, "season_id", seasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tableToDTO(table, grouped))
}
