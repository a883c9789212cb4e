package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	limit, err := h.limit(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.listMatches(w, r.WithContext(ctx), "", limit)
}

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request, season string, limit int) {
	ctx := r.Context()

	matches, err := h.matchService.ListMatches(ctx, season, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "season", season, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchShots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchShots")
	defer span.End()

	matchID, err := h.matchID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	shots, exists, err := h.matchService.ListMatchShots(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match shots failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shotsToDTO(shots))
}

func (h *Handler) ListMatchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchPlayers")
	defer span.End()

	matchID, err := h.matchID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, exists, err := h.matchService.ListMatchPlayers(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match players failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) ListMatchPlayerShots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchPlayerShots")
	defer span.End()

	matchID, err := h.matchID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerName := strings.TrimSpace(r.PathValue("playerName"))

	shots, exists, err := h.matchService.ListMatchPlayerShots(ctx, matchID, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "list match player shots failed", "match_id", matchID, "player", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shotsToDTO(shots))
}

func (h *Handler) GetMatchAssistNetwork(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchAssistNetwork")
	defer span.End()

	matchID, err := h.matchID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	edges, exists, err := h.playerService.MatchAssistNetwork(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "build match assist network failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assistEdgesToDTO(edges))
}

func (h *Handler) GetMatchAdvancedStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchAdvancedStats")
	defer span.End()

	matchID, err := h.matchID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, exists, err := h.matchService.GetAdvancedStats(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match advanced stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchAdvancedToDTO(stats))
}
