package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/transfer"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type transferRequest struct {
	PlayerID     string `json:"player_id" validate:"required"`
	FromClubID   string `json:"from_club_id"`
	ToClubID     string `json:"to_club_id" validate:"required"`
	SeasonID     string `json:"season_id"`
	TransferDate string `json:"transfer_date"`
	Status       string `json:"status" validate:"omitempty,oneof=pending confirmed"`
	FeeCents     *int64 `json:"fee_cents" validate:"omitempty,gte=0"`
	Notes        string `json:"notes" validate:"max=2000"`
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	query := r.URL.Query()
	filter := transfer.Filter{
		PlayerID: strings.TrimSpace(query.Get("player_id")),
		ClubID:   strings.TrimSpace(query.Get("club_id")),
		SeasonID: strings.TrimSpace(query.Get("season_id")),
		Status:   transfer.Status(strings.TrimSpace(query.Get("status"))),
	}

	items, err := h.transfers.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list transfers failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, transferToDTO)))
}

func (h *Handler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTransfer")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.transfers.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get transfer failed", err, "transfer_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTransfer")
	defer span.End()

	var req transferRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate("transfer_date", req.TransferDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var transferDate time.Time
	if date != nil {
		transferDate = *date
	}

	item, err := h.transfers.Create(ctx, usecase.TransferInput{
		PlayerID:     req.PlayerID,
		FromClubID:   req.FromClubID,
		ToClubID:     req.ToClubID,
		SeasonID:     req.SeasonID,
		TransferDate: transferDate,
		Status:       req.Status,
		FeeCents:     req.FeeCents,
		Notes:        req.Notes,
	})
	if err != nil {
		h.fail(ctx, w, "create transfer failed", err, "player_id", req.PlayerID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, transferToDTO(item))
}

func (h *Handler) ConfirmTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmTransfer")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.transfers.Confirm(ctx, id)
	if err != nil {
		h.fail(ctx, w, "confirm transfer failed", err, "transfer_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelTransfer")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.transfers.Cancel(ctx, id)
	if err != nil {
		h.fail(ctx, w, "cancel transfer failed", err, "transfer_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferToDTO(item))
}

func (h *Handler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTransfer")
	defer span.End()

	id := r.PathValue("id")
	if err := h.transfers.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete transfer failed", err, "transfer_id", id)
		return
	}

	writeNoContent(w)
}
