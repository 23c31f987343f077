package player

// Status codes used by the upstream API for player availability.
const (
	StatusAvailable   = "a"
	StatusDoubtful    = "d"
	StatusInjured     = "i"
	StatusSuspended   = "s"
	StatusUnavailable = "u"
	StatusNotInSquad  = "n"
)

// Unknown is used when a position or team id cannot be resolved against
// the bootstrap lookup maps. Lookups degrade, they never fail.
const Unknown = "Unknown"

// NeutralDifficulty is assumed when a team has no upcoming fixtures to
// average over.
const NeutralDifficulty = 3.0

// Excluded reports whether a player's availability status keeps them
// out of the normalized pool. Doubtful and suspended players stay in.
func Excluded(status string) bool {
	switch status {
	case StatusUnavailable, StatusNotInSquad, StatusInjured:
		return true
	default:
		return false
	}
}

// Upcoming is one future fixture from a single team's perspective.
type Upcoming struct {
	Gameweek   int
	IsHome     bool
	Opponent   int
	Difficulty int
}

// Normalized is the flat per-player analytics record built by joining a
// raw player with its team, position, and upcoming fixtures. Immutable
// once built; rebuilt in full from the current raw snapshot on every
// request.
type Normalized struct {
	ID       int
	Code     int
	Name     string
	FullName string

	TeamID   int
	TeamName string
	TeamCode int

	PositionID int
	Position   string

	Price         float64
	Form          float64
	PointsPerGame float64
	TotalPoints   int
	Minutes       int

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

	Influence  float64
	Creativity float64
	Threat     float64
	ICTIndex   float64

	SelectedByPercent float64

	UpcomingFixtures     []Upcoming
	AvgFixtureDifficulty float64
}

// Value is the points-per-million metric shown alongside each player.
func (p Normalized) Value() float64 {
	if p.Price <= 0 {
		return 0
	}
	return float64(p.TotalPoints) / p.Price
}
