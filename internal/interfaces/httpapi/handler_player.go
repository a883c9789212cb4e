package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListSeasonPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonPlayers")
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

	stats, err := h.playerService.ListSeasonStats(ctx, season, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerStatsDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, playerStatsToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSeasonPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonPlayer")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerName := strings.TrimSpace(r.PathValue("playerName"))

	stats, exists, err := h.playerService.GetPlayerStats(ctx, season, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "season", season, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(stats))
}

func (h *Handler) ListSeasonPlayerShots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonPlayerShots")
	defer span.End()

	season, err := h.season(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerName := strings.TrimSpace(r.PathValue("playerName"))

	shots, err := h.playerService.ListPlayerShots(ctx, season, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "list player shots failed", "season", season, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shotsToDTO(shots))
}

func (h *Handler) GetSeasonAssistNetwork(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonAssistNetwork")
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

	edges, err := h.playerService.SeasonAssistNetwork(ctx, season, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "build assist network failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assistEdgesToDTO(edges))
}
