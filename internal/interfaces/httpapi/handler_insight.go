package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListOpponents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOpponents")
	defer span.End()

	season := strings.TrimSpace(r.URL.Query().Get("season"))
	records, err := h.insightService.CompareOpponents(ctx, season)
	if err != nil {
		h.logger.WarnContext(ctx, "compare opponents failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, opponentsToDTO(records))
}

func (h *Handler) GetDataQuality(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDataQuality")
	defer span.End()

	report, err := h.insightService.DataQuality(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "data quality snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dataQualityToDTO(report))
}

func (h *Handler) ListDataAnomalies(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDataAnomalies")
	defer span.End()

	anomalies, err := h.insightService.Anomalies(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list data anomalies failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, anomaliesToDTO(anomalies))
}
