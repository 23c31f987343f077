package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
	"github.com/fplpulse/fpl-dashboard/internal/usecase"
)

type Handler struct {
	playerService   *usecase.PlayerService
	teamService     *usecase.TeamService
	statsService    *usecase.PlayerStatsService
	gameweekService *usecase.GameweekService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	statsService *usecase.PlayerStatsService,
	gameweekService *usecase.GameweekService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:   playerService,
		teamService:     teamService,
		statsService:    statsService,
		gameweekService: gameweekService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
