package usecase

import "context"

// ExternalPlayer is one raw player record as delivered by the stats
// provider. Index-style metrics arrive as decimal strings (or null) on
// the wire and stay unparsed here; the normalizer owns coercion.
type ExternalPlayer struct {
	ID         int
	Code       int
	WebName    string
	FirstName  string
	SecondName string

	TeamID     int
	PositionID int
	Status     string

	NowCost     int
	TotalPoints int
	Minutes     int

	GoalsScored     int
	Assists         int
	CleanSheets     int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
	Saves           int
	Bonus           int
	BPS             int

	Form              string
	PointsPerGame     string
	Influence         string
	Creativity        string
	Threat            string
	ICTIndex          string
	SelectedByPercent string
}

// ExternalTeam is one raw team record from the bootstrap payload.
type ExternalTeam struct {
	ID        int
	Code      int
	Name      string
	ShortName string

	Strength            int
	StrengthAttackHome  int
	StrengthAttackAway  int
	StrengthDefenceHome int
	StrengthDefenceAway int
}

// ExternalPosition maps a position-type code to its display name.
type ExternalPosition struct {
	ID   int
	Name string
}

// ExternalFixture is one raw fixture. Gameweek is nil until the match
// has been scheduled into a round.
type ExternalFixture struct {
	ID             int
	Gameweek       *int
	HomeTeamID     int
	AwayTeamID     int
	HomeDifficulty int
	AwayDifficulty int
	Finished       bool
}

// ExternalGameweekStat is one past-gameweek row from a player's
// element summary.
type ExternalGameweekStat struct {
	Gameweek       int
	OpponentTeamID int
	WasHome        bool
	TotalPoints    int
	Minutes        int
	GoalsScored    int
	Assists        int
	CleanSheets    int
	GoalsConceded  int
	Bonus          int
	Value          int
}

// SportDataProvider is the read-only contract the services need from
// the upstream fantasy API client. List accessors degrade to empty
// collections on upstream failure and report the failure through the
// returned error; scalar accessors degrade to their documented
// defaults. Callers decide how loudly to surface a degraded result.
type SportDataProvider interface {
	Players(ctx context.Context) ([]ExternalPlayer, error)
	Teams(ctx context.Context) ([]ExternalTeam, error)
	Positions(ctx context.Context) ([]ExternalPosition, error)
	Fixtures(ctx context.Context) ([]ExternalFixture, error)
	PlayerHistory(ctx context.Context, playerID int) ([]ExternalGameweekStat, error)
	CurrentGameweek(ctx context.Context) (int, error)
	NextGameweek(ctx context.Context) (int, error)
}
