package usecase

import (
	"context"
	"sort"

	"github.com/fplpulse/fpl-dashboard/internal/domain/player"
	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
)

// DefaultUpcomingCount is how many upcoming fixtures feed the average
// difficulty shown per player.
const DefaultUpcomingCount = 3

// FixtureService resolves a team's next scheduled fixtures with
// per-side difficulty ratings.
type FixtureService struct {
	provider SportDataProvider
	logger   *logging.Logger
}

func NewFixtureService(provider SportDataProvider, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureService{
		provider: provider,
		logger:   logger,
	}
}

// Upcoming returns at most n future fixtures for teamID, ascending by
// gameweek. Fixtures already played or not yet scheduled into a round
// are excluded. A team with no qualifying fixtures yields an empty
// slice, never an error; provider failures degrade the same way.
func (s *FixtureService) Upcoming(ctx context.Context, teamID, n int) []player.Upcoming {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Upcoming")
	defer span.End()

	if teamID <= 0 || n <= 0 {
		return nil
	}

	nextGameweek, err := s.provider.NextGameweek(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "next gameweek unavailable, using fallback", "team_id", teamID, "gameweek", nextGameweek, "error", err)
	}

	fixtures, err := s.provider.Fixtures(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fixtures unavailable, returning no upcoming fixtures", "team_id", teamID, "error", err)
	}

	upcoming := make([]player.Upcoming, 0, n)
	for _, f := range fixtures {
		if f.Gameweek == nil || *f.Gameweek < nextGameweek {
			continue
		}

		switch teamID {
		case f.HomeTeamID:
			upcoming = append(upcoming, player.Upcoming{
				Gameweek:   *f.Gameweek,
				IsHome:     true,
				Opponent:   f.AwayTeamID,
				Difficulty: f.HomeDifficulty,
			})
		case f.AwayTeamID:
			upcoming = append(upcoming, player.Upcoming{
				Gameweek:   *f.Gameweek,
				IsHome:     false,
				Opponent:   f.HomeTeamID,
				Difficulty: f.AwayDifficulty,
			})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Gameweek < upcoming[j].Gameweek
	})

	if len(upcoming) > n {
		upcoming = upcoming[:n]
	}

	return upcoming
}
