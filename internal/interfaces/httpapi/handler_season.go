package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.seasonService.ListSeasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if seasons == nil {
		seasons = []string{}
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonSummary")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, exists, err := h.seasonService.GetSummary(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get season summary failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonSummaryToDTO(summary))
}

func (h *Handler) ListSeasonMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonMatches")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := h.limit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.listMatches(w, r.WithContext(ctx), season, limit)
}

func (h *Handler) ListSeasonMatchOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonMatchOptions")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	options, err := h.matchService.ListMatchOptions(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list match options failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchOptionDTO, 0, len(options))
	for _, o := range options {
		items = append(items, matchOptionToDTO(o))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSeasonShots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonShots")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := teamQuery{Team: strings.TrimSpace(r.URL.Query().Get("team"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	shots, err := h.matchService.ListSeasonShots(ctx, season, query.Team)
	if err != nil {
		h.logger.WarnContext(ctx, "list season shots failed", "season", season, "team", query.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shotsToDTO(shots))
}

func (h *Handler) GetSeasonTactical(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTactical")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	breakdown, exists, err := h.tacticalService.GetSeasonBreakdown(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get tactical breakdown failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tacticalToDTO(breakdown))
}

func (h *Handler) ListSeasonTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonTrends")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	window, err := queryInt(r, "window")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := windowQuery{Window: window}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	points, err := h.insightService.PerformanceTrends(ctx, season, query.Window)
	if err != nil {
		h.logger.WarnContext(ctx, "list performance trends failed", "season", season, "window", query.Window, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trendToDTO(points))
}
