package app

import (
	"fmt"
	"net/http"

	"github.com/fplpulse/fpl-dashboard/external/fpl"
	"github.com/fplpulse/fpl-dashboard/internal/config"
	"github.com/fplpulse/fpl-dashboard/internal/interfaces/httpapi"
	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
	"github.com/fplpulse/fpl-dashboard/internal/platform/resilience"
	"github.com/fplpulse/fpl-dashboard/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	provider := fpl.NewClient(fpl.ClientConfig{
		BaseURL:    cfg.FPLBaseURL,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		CacheTTL:   cfg.FPLCacheTTL,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	fixtureSvc := usecase.NewFixtureService(provider, logger)
	playerSvc := usecase.NewPlayerService(provider, fixtureSvc, cfg.UpcomingFixtureCount, logger)
	teamSvc := usecase.NewTeamService(provider, logger)
	statsSvc := usecase.NewPlayerStatsService(provider, logger)
	gameweekSvc := usecase.NewGameweekService(provider, logger)

	handler := httpapi.NewHandler(playerSvc, teamSvc, statsSvc, gameweekSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
