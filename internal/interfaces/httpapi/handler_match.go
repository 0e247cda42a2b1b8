package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type matchRequest struct {
	SeasonID    string    `json:"season_id" validate:"required"`
	GroupID     string    `json:"group_id"`
	HomeClubID  string    `json:"home_club_id" validate:"required"`
	AwayClubID  string    `json:"away_club_id" validate:"required,nefield=HomeClubID"`
	KickoffAt   time.Time `json:"kickoff_at" validate:"required"`
	Status      string    `json:"status"`
	HomeScore   *int      `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore   *int      `json:"away_score" validate:"omitempty,gte=0"`
	HomeScoreHT *int      `json:"home_score_ht" validate:"omitempty,gte=0"`
	AwayScoreHT *int      `json:"away_score_ht" validate:"omitempty,gte=0"`
	Round       int       `json:"round" validate:"gte=0"`
	StadiumID   string    `json:"stadium_id"`
	Stadium     string    `json:"stadium" validate:"max=120"`
	RefereeID   string    `json:"referee_id"`
	Attendance  *int      `json:"attendance" validate:"omitempty,gte=0"`
	Description string    `json:"description" validate:"max=2000"`
}

type clearEventsDTO struct {
	MatchID string `json:"match_id"`
	Removed int    `json:"removed"`
}

func (req matchRequest) toInput() usecase.MatchInput {
	return usecase.MatchInput{
		SeasonID:    req.SeasonID,
		GroupID:     req.GroupID,
		HomeClubID:  req.HomeClubID,
		AwayClubID:  req.AwayClubID,
		KickoffAt:   req.KickoffAt,
		Status:      req.Status,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		HomeScoreHT: req.HomeScoreHT,
		AwayScoreHT: req.AwayScoreHT,
		Round:       req.Round,
		StadiumID:   req.StadiumID,
		Stadium:     req.Stadium,
		RefereeID:   req.RefereeID,
		Attendance:  req.Attendance,
		Description: req.Description,
	}
}

// ListMatches filters by season_id, club_id, stadium_id, status and date. A date narrows
// the result to that UTC day.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	day, err := parseDate("date", query.Get("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.Filter{
		SeasonID:  strings.TrimSpace(query.Get("season_id")),
		ClubID:    strings.TrimSpace(query.Get("club_id")),
		StadiumID: strings.TrimSpace(query.Get("stadium_id")),
		Status:    match.Status(strings.TrimSpace(query.Get("status"))),
		Limit:     limit,
	}
	if day != nil {
		to := day.AddDate(0, 0, 1)
		filter.From = day
		filter.To = &to
	}

	items, err := h.matches.List(ctx, filter)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "season_id", filter.SeasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, matchToDTO)))
}

func (h *Handler) ListLatestMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLatestMatches")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID := r.URL.Query().Get("season_id")

	items, err := h.matches.Latest(ctx, seasonID, limit)
	if err != nil {
		h.fail(ctx, w, "list latest matches failed", err, "season_id", seasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, matchToDTO)))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	seasonID := r.URL.Query().Get("season_id")

	items, err := h.matches.Upcoming(ctx, seasonID, limit)
	if err != nil {
		h.fail(ctx, w, "list upcoming matches failed", err, "season_id", seasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, matchToDTO)))
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	items, err := h.matches.Live(ctx)
	if err != nil {
		h.fail(ctx, w, "list live matches failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newListData(mapSlice(items, matchToDTO)))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id := r.PathValue("id")
	item, err := h.matches.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matches.Create(ctx, req.toInput())
	if err != nil {
		h.fail(ctx, w, "create match failed", err, "season_id", req.SeasonID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id := r.PathValue("id")
	var req matchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matches.Update(ctx, id, req.toInput())
	if err != nil {
		h.fail(ctx, w, "update match failed", err, "match_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id := r.PathValue("id")
	if err := h.matches.Delete(ctx, id); err != nil {
		h.fail(ctx, w, "delete match failed", err, "match_id", id)
		return
	}

	writeNoContent(w)
}

func (h *Handler) ClearMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearMatchEvents")
	defer span.End()

	id := r.PathValue("id")
	removed, err := h.matches.ClearEvents(ctx, id)
	if err != nil {
		h.fail(ctx, w, "clear match events failed", err, "match_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clearEventsDTO{MatchID: id, Removed: removed})
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	id := r.PathValue("id")
	events, err := h.events.List(ctx, id)
	if err != nil {
		h.fail(ctx, w, "list match events failed", err, "match_id", id)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchEventsToDTO(id, events))
}

type goalRequest struct {
	ClubID      string `json:"club_id" validate:"required"`
	ScorerID    string `json:"scorer_id" validate:"required"`
	AssistID    string `json:"assist_id"`
	Minute      int    `json:"minute" validate:"gte=0,lte=130"`
	Type        string `json:"type"`
	Description string `json:"description" validate:"max=500"`
}

type cardRequest struct {
	ClubID   string `json:"club_id" validate:"required"`
	PlayerID string `json:"player_id" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Minute   int    `json:"minute" validate:"gte=0,lte=130"`
	Reason   string `json:"reason" validate:"max=500"`
}

type substitutionRequest struct {
	ClubID      string `json:"club_id" validate:"required"`
	PlayerOutID string `json:"player_out_id" validate:"required"`
	PlayerInID  string `json:"player_in_id" validate:"required,nefield=PlayerOutID"`
	Minute      int    `json:"minute" validate:"gte=0,lte=130"`
}

type assistRequest struct {
	ClubID   string `json:"club_id" validate:"required"`
	PlayerID string `json:"player_id" validate:"required"`
	Minute   int    `json:"minute" validate:"gte=0,lte=130"`
}

// SaveMatchEvent creates (POST) or replaces (PUT with eventID) one sub-event
// of the kind named in the path.
func (h *Handler) SaveMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchEvent")
	defer span.End()

	matchID := r.PathValue("id")
	eventID := r.PathValue("eventID")
	kind, err := match.ParseEventKind(r.PathValue("kind"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	status := http.StatusOK
	if eventID == "" {
		status = http.StatusCreated
	}

	var out any
	switch kind {
	case match.KindGoal:
		var req goalRequest
		if err = h.decodeAndValidate(ctx, r, &req); err != nil {
			break
		}
		var item match.Goal
		item, err = h.events.SaveGoal(ctx, matchID, eventID, usecase.GoalInput(req))
		out = goalToDTO(item)
	case match.KindCard:
		var req cardRequest
		if err = h.decodeAndValidate(ctx, r, &req); err != nil {
			break
		}
		var item match.Card
		item, err = h.events.SaveCard(ctx, matchID, eventID, usecase.CardInput(req))
		out = cardToDTO(item)
	case match.KindSubstitution:
		var req substitutionRequest
		if err = h.decodeAndValidate(ctx, r, &req); err != nil {
			break
		}
		var item match.Substitution
		item, err = h.events.SaveSubstitution(ctx, matchID, eventID, usecase.SubstitutionInput(req))
		out = substitutionToDTO(item)
	case match.KindAssist:
		var req assistRequest
		if err = h.decodeAndValidate(ctx, r, &req); err != nil {
			break
		}
		var item match.Assist
		item, err = h.events.SaveAssist(ctx, matchID, eventID, usecase.AssistInput(req))
		out = assistToDTO(item)
	}
	if err != nil {
		h.fail(ctx, w, "save match event failed", err, "match_id", matchID, "kind", string(kind), "event_id", eventID)
		return
	}

	writeSuccess(ctx, w, status, out)
}

func (h *Handler) DeleteMatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchEvent")
	defer span.End()

	matchID := r.PathValue("id")
	eventID := r.PathValue("eventID")
	kind, err := match.ParseEventKind(r.PathValue("kind"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.events.Delete(ctx, matchID, kind, eventID); err != nil {
		h.fail(ctx, w, "delete match event failed", err, "match_id", matchID, "kind", string(kind), "event_id", eventID)
		return
	}

	writeNoContent(w)
}
