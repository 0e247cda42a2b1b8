package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/usecase"
)

type stadiumRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	City     string `json:"city" validate:"max=100"`
	Capacity *int   `json:"capacity" validate:"omitempty,gte=0"`
	Address  string `json:"address" validate:"max=300"`
}

func (req stadiumRequest) toInput() usecase.StadiumInput {
	return usecase.StadiumInput{
		Name:     req.Name,
		City:     req.City,
		Capacity: req.Capacity,
		Address:  req.Address,
	}
}

func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStadiums")
	defer span.End()

	city := r.URL.Query().Get("city")
	items, err := h.stadiums.List(ctx, city)
	if err != nil {
		h.fail(ctx, w, "list stadiums failed", err, "city", city)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, stadiumToDTO)))
}

func (h *Handler) GetStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStadium")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.stadiums.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get stadium failed", err, "stadium_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(item))
}

func (h *Handler) SaveStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveStadium")
	defer span.End()

	id := r.PathValue("id")
	var req stadiumRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if id == "" {
		item, err := h.stadiums.Create(ctx, req.toInput())
		if err != nil {
			h.fail(ctx, w, "create stadium failed", err)
			return
		}
		writeSuccess(ctx, w, http.StatusCreated, stadiumToDTO(item))
		return
	}

	item, err := h.stadiums.Update(ctx, id, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update stadium failed", err, "stadium_id", id)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, stadiumToDTO(item))
}

func (h *Handler) DeleteStadium(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStadium")
	defer span.End()

	id := r.PathValue("id")
	if err := h.stadiums.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete stadium failed", err, "stadium_id", id)
		return
	}

	writeNoContent(w)
}
