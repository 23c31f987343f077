package usecase

import (
	"context"

	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
)

// GameweekService resolves the current/next gameweek window from the
// season event list.
type GameweekService struct {
	provider SportDataProvider
	logger   *logging.Logger
}

func NewGameweekService(provider SportDataProvider, logger *logging.Logger) *GameweekService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameweekService{
		provider: provider,
		logger:   logger,
	}
}

// Window returns the current and next gameweek numbers. Both degrade to
// the provider's documented defaults when the event list is missing.
func (s *GameweekService) Window(ctx context.Context) (current, next int) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.Window")
	defer span.End()

	current, err := s.provider.CurrentGameweek(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "current gameweek unavailable, using fallback", "gameweek", current, "error", err)
	}

	next, err = s.provider.NextGameweek(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "next gameweek unavailable, using fallback", "gameweek", next, "error", err)
	}

	return current, next
}
