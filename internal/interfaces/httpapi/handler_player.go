package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type playerRequest struct {
	ClubID      string `json:"club_id" validate:"required"`
	SeasonID    string `json:"season_id"`
	FirstName   string `json:"first_name" validate:"required,max=80"`
	LastName    string `json:"last_name" validate:"max=80"`
	DateOfBirth string `json:"date_of_birth"`
	Position    string `json:"position" validate:"required"`
	Number      int    `json:"number" validate:"gte=1,lte=99"`
	Nationality string `json:"nationality" validate:"max=80"`
	HeightCM    int    `json:"height_cm" validate:"gte=0,lte=250"`
	WeightKG    int    `json:"weight_kg" validate:"gte=0,lte=200"`
	Status      string `json:"status"`
}

func (req playerRequest) toInput() (usecase.PlayerInput, error) {
	dob, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return usecase.PlayerInput{}, err
	}

	return usecase.PlayerInput{
		ClubID:      req.ClubID,
		SeasonID:    req.SeasonID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Position:    req.Position,
		Number:      req.Number,
		Nationality: req.Nationality,
		HeightCM:    req.HeightCM,
		WeightKG:    req.WeightKG,
		Status:      req.Status,
	}, nil
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := r.URL.Query()
	filter := player.Filter{
		Query:    query.Get("q"),
		ClubID:   query.Get("club_id"),
		SeasonID: query.Get("season_id"),
		Position: player.Position(query.Get("position")),
	}

	items, err := h.players.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list players failed", err, "club_id", filter.ClubID, "season_id", filter.SeasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, playerToDTO)))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.players.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	id := r.PathValue("id")
	records, err := h.players.Stats(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get player stats failed", err, "player_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(records, playerStatToDTO)))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID := r.URL.Query().Get("season_id")

	item, scorers, err := h.players.TopScorers(ctx, seasonID, limit)
	if err != nil {
		h.fail(ctx, w, "list top scorers failed", err, "season_id", seasonID)
		return
	}

	out := topScorersDTO{
		Season:  seasonToDTO(item),
		Scorers: make([]topScorerDTO, 0, len(scorers)),
	}
	for i, s := range scorers {
		out.Scorers = append(out.Scorers, topScorerDTO{
			Rank:   i + 1,
			Player: playerToDTO(s.Player),
			Stats:  playerStatToDTO(s.Stats),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.players.Create(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create player failed", err, "club_id", req.ClubID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id := r.PathValue("id")
	var req playerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.players.Update(ctx, id, input)
	if err != nil {
		h.fail(ctx, w, "update player failed", err, "player_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id := r.PathValue("id")
	if err := h.players.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete player failed", err, "player_id", id)
		return
	}

	writeNoContent(w)
}
