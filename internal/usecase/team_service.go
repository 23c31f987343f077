package usecase

import (
	"context"

	"github.com/fplpulse/fpl-dashboard/internal/domain/team"
	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
)

// TeamService exposes team strength summaries for the comparison view.
type TeamService struct {
	provider SportDataProvider
	logger   *logging.Logger
}

func NewTeamService(provider SportDataProvider, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		provider: provider,
		logger:   logger,
	}
}

// List returns all teams with their strength ratings, degrading to an
// empty slice when the bootstrap payload is unavailable.
func (s *TeamService) List(ctx context.Context) []team.Team {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	raw, err := s.provider.Teams(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "teams unavailable, serving empty list", "error", err)
	}

	out := make([]team.Team, 0, len(raw))
	for _, t := range raw {
		out = append(out, team.Team{
			ID:        t.ID,
			Name:      t.Name,
			ShortName: t.ShortName,
			Code:      t.Code,

			Strength:            t.Strength,
			StrengthAttackHome:  t.StrengthAttackHome,
			StrengthAttackAway:  t.StrengthAttackAway,
			StrengthDefenceHome: t.StrengthDefenceHome,
			StrengthDefenceAway: t.StrengthDefenceAway,
		})
	}

	return out
}
