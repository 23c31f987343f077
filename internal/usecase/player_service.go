package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/fplpulse/fpl-dashboard/internal/domain/player"
	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
)

// PlayerService builds the normalized player table from the current raw
// snapshot. The table is rebuilt in full on every call; raw data is
// never mutated.
type PlayerService struct {
	provider      SportDataProvider
	fixtures      *FixtureService
	upcomingCount int
	logger        *logging.Logger
}

func NewPlayerService(provider SportDataProvider, fixtures *FixtureService, upcomingCount int, logger *logging.Logger) *PlayerService {
	if upcomingCount <= 0 {
		upcomingCount = DefaultUpcomingCount
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		provider:      provider,
		fixtures:      fixtures,
		upcomingCount: upcomingCount,
		logger:        logger,
	}
}

// List returns the normalized player records in raw input order.
// Players who are unavailable, on loan, injured, or without a single
// minute played are dropped; a malformed record is skipped with a
// warning rather than failing the batch. Upstream failures degrade to
// an empty table.
func (s *PlayerService) List(ctx context.Context) []player.Normalized {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	rawPlayers, err := s.provider.Players(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "players unavailable, serving empty table", "error", err)
	}
	rawTeams, err := s.provider.Teams(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "teams unavailable, player teams resolve to Unknown", "error", err)
	}

	positionNames := s.Positions(ctx)
	teamNames := make(map[int]string, len(rawTeams))
	teamCodes := make(map[int]int, len(rawTeams))
	for _, t := range rawTeams {
		teamNames[t.ID] = t.Name
		teamCodes[t.ID] = t.Code
	}

	out := make([]player.Normalized, 0, len(rawPlayers))
	for _, raw := range rawPlayers {
		if raw.ID <= 0 || strings.TrimSpace(raw.WebName) == "" {
			s.logger.WarnContext(ctx, "skipping malformed player record", "player_id", raw.ID, "team_id", raw.TeamID)
			continue
		}
		if player.Excluded(raw.Status) || raw.Minutes == 0 {
			continue
		}

		out = append(out, s.normalize(ctx, raw, positionNames, teamNames, teamCodes))
	}

	return out
}

// Positions returns the position-type code to display name mapping
// sourced from the bootstrap payload.
func (s *PlayerService) Positions(ctx context.Context) map[int]string {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Positions")
	defer span.End()

	positions, err := s.provider.Positions(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "positions unavailable, player positions resolve to Unknown", "error", err)
	}

	out := make(map[int]string, len(positions))
	for _, pos := range positions {
		out[pos.ID] = pos.Name
	}
	return out
}

func (s *PlayerService) normalize(
	ctx context.Context,
	raw ExternalPlayer,
	positionNames map[int]string,
	teamNames map[int]string,
	teamCodes map[int]int,
) player.Normalized {
	position, ok := positionNames[raw.PositionID]
	if !ok {
		position = player.Unknown
	}
	teamName, ok := teamNames[raw.TeamID]
	if !ok {
		teamName = player.Unknown
	}

	upcoming := s.fixtures.Upcoming(ctx, raw.TeamID, s.upcomingCount)
	avgDifficulty := player.NeutralDifficulty
	if len(upcoming) > 0 {
		sum := 0
		for _, f := range upcoming {
			sum += f.Difficulty
		}
		avgDifficulty = float64(sum) / float64(len(upcoming))
	}

	return player.Normalized{
		ID:       raw.ID,
		Code:     raw.Code,
		Name:     raw.WebName,
		FullName: strings.TrimSpace(raw.FirstName + " " + raw.SecondName),

		TeamID:   raw.TeamID,
		TeamName: teamName,
		TeamCode: teamCodes[raw.TeamID],

		PositionID: raw.PositionID,
		Position:   position,

		Price:         float64(raw.NowCost) / 10,
		Form:          floatOrZero(raw.Form),
		PointsPerGame: floatOrZero(raw.PointsPerGame),
		TotalPoints:   raw.TotalPoints,
		Minutes:       raw.Minutes,

		GoalsScored:     raw.GoalsScored,
		Assists:         raw.Assists,
		CleanSheets:     raw.CleanSheets,
		GoalsConceded:   raw.GoalsConceded,
		OwnGoals:        raw.OwnGoals,
		PenaltiesSaved:  raw.PenaltiesSaved,
		PenaltiesMissed: raw.PenaltiesMissed,
		YellowCards:     raw.YellowCards,
		RedCards:        raw.RedCards,
		Saves:           raw.Saves,
		Bonus:           raw.Bonus,
		BPS:             raw.BPS,

		Influence:  floatOrZero(raw.Influence),
		Creativity: floatOrZero(raw.Creativity),
		Threat:     floatOrZero(raw.Threat),
		ICTIndex:   floatOrZero(raw.ICTIndex),

		SelectedByPercent: floatOrZero(raw.SelectedByPercent),

		UpcomingFixtures:     upcoming,
		AvgFixtureDifficulty: avgDifficulty,
	}
}

// floatOrZero coerces the provider's decimal-string metrics; null or
// absent values arrive as empty strings and mean zero.
func floatOrZero(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
