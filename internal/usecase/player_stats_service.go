package usecase

import (
	"context"
	"fmt"

	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
)

// PlayerStatsService serves a player's past-gameweek history rows.
type PlayerStatsService struct {
	provider SportDataProvider
	logger   *logging.Logger
}

func NewPlayerStatsService(provider SportDataProvider, logger *logging.Logger) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStatsService{
		provider: provider,
		logger:   logger,
	}
}

// MatchHistory returns the player's completed-gameweek rows from the
// element summary. An unknown but well-formed id yields an empty slice;
// upstream failure degrades the same way with a warning.
func (s *PlayerStatsService) MatchHistory(ctx context.Context, playerID int) ([]ExternalGameweekStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.MatchHistory")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	rows, err := s.provider.PlayerHistory(ctx, playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "player history unavailable, serving empty history", "player_id", playerID, "error", err)
	}

	return rows, nil
}
