package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/platform/logging"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

type Handler struct {
	seasonService   *usecase.SeasonService
	matchService    *usecase.MatchService
	playerService   *usecase.PlayerService
	tacticalService *usecase.TacticalService
	insightService  *usecase.InsightService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	seasonService *usecase.SeasonService,
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	tacticalService *usecase.TacticalService,
	insightService *usecase.InsightService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		seasonService:   seasonService,
		matchService:    matchService,
		playerService:   playerService,
		tacticalService: tacticalService,
		insightService:  insightService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type seasonPath struct {
	Season string `validate:"required,max=20"`
}

type matchPath struct {
	MatchID string `validate:"required,max=64"`
}

type limitQuery struct {
	Limit int `validate:"gte=0,lte=500"`
}

type teamQuery struct {
	Team string `validate:"omitempty,max=100"`
}

type windowQuery struct {
	Window int `validate:"gte=0"`
}

// queryInt reads an optional integer query parameter. Missing values read as 0.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

func (h *Handler) season(r *http.Request) (string, error) {
	in := seasonPath{Season: strings.TrimSpace(r.PathValue("season"))}
	if err := h.validateRequest(r.Context(), in); err != nil {
		return "", err
	}
	return in.Season, nil
}

func (h *Handler) matchID(r *http.Request) (string, error) {
	in := matchPath{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(r.Context(), in); err != nil {
		return "", err
	}
	return in.MatchID, nil
}

func (h *Handler) limit(r *http.Request) (int, error) {
	v, err := queryInt(r, "limit")
	if err != nil {
		return 0, err
	}
	in := limitQuery{Limit: v}
	if err := h.validateRequest(r.Context(), in); err != nil {
		return 0, err
	}
	return in.Limit, nil
}
