package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{season}/summary", handler.GetSeasonSummary)
	mux.HandleFunc("GET /v1/seasons/{season}/matches", handler.ListSeasonMatches)
	mux.HandleFunc("GET /v1/seasons/{season}/match-list", handler.ListSeasonMatchOptions)
	mux.HandleFunc("GET /v1/seasons/{season}/shots", handler.ListSeasonShots)
	mux.HandleFunc("GET /v1/seasons/{season}/players", handler.ListSeasonPlayers)
	mux.HandleFunc("GET /v1/seasons/{season}/players/{playerName}", handler.GetSeasonPlayer)
	mux.HandleFunc("GET /v1/seasons/{season}/players/{playerName}/shots", handler.ListSeasonPlayerShots)
	mux.HandleFunc("GET /v1/seasons/{season}/assist-network", handler.GetSeasonAssistNetwork)
	mux.HandleFunc("GET /v1/seasons/{season}/tactical", handler.GetSeasonTactical)
	mux.HandleFunc("GET /v1/seasons/{season}/trends", handler.ListSeasonTrends)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/shots", handler.ListMatchShots)
	mux.HandleFunc("GET /v1/matches/{matchID}/players", handler.ListMatchPlayers)
	mux.HandleFunc("GET /v1/matches/{matchID}/players/{playerName}/shots", handler.ListMatchPlayerShots)
	mux.HandleFunc("GET /v1/matches/{matchID}/assist-network", handler.GetMatchAssistNetwork)
	mux.HandleFunc("GET /v1/matches/{matchID}/advanced", handler.GetMatchAdvancedStats)
}

func registerInsightRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/opponents", handler.ListOpponents)
	mux.HandleFunc("GET /v1/data-quality", handler.GetDataQuality)
	mux.HandleFunc("GET /v1/data-quality/anomalies", handler.ListDataAnomalies)
}
