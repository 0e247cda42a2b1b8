package httpapi

import (
	"net/http"
	"time"
)

type seasonSyncDTO struct {
	Date           string `json:"date"`
	ActiveSeasonID string `json:"active_season_id,omitempty"`
	Changed        bool   `json:"changed"`
}

// RunSeasonSyncJob activates the season covering the given date (today when
// the date query parameter is absent).
func (h *Handler) RunSeasonSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSeasonSyncJob")
	defer span.End()

	day, err := parseDate("date", r.URL.Query().Get("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	today := h.now().UTC()
	if day != nil {
		today = *day
	}

	result, err := h.seasons.SyncByDate(ctx, today)
	if err != nil {
		h.fail(ctx, w, "run season sync job failed", err, "date", today.Format(dateLayout))
		return
	}
	h.logger.InfoContext(ctx, "season sync job completed",
		"date", today.Format(dateLayout),
		"active_season_id", result.ActiveSeasonID,
		"changed", result.Changed,
	)

	writeSuccess(ctx, w, http.StatusOK, seasonSyncDTO{
		Date:           today.Format(dateLayout),
		ActiveSeasonID: result.ActiveSeasonID,
		Changed:        result.Changed,
	})
}

func (h *Handler) RunRecomputeAllJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecomputeAllJob")
	defer span.End()

	started := time.Now()
	result, err := h.recompute.RecomputeAllSeasons(ctx)
	if err != nil {
		h.fail(ctx, w, "run recompute job failed", err)
		return
	}
	h.logger.InfoContext(ctx, "recompute job completed",
		"seasons", len(result.Seasons),
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	writeSuccess(ctx, w, http.StatusOK, recomputeAllDTO{
		Seasons:   mapSlice(result.Seasons, recomputeResultToDTO),
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	})
}
