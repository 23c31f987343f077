package usecase

import "context"

// stubProvider is a hand-rolled SportDataProvider for service tests.
type stubProvider struct {
	players   []ExternalPlayer
	teams     []ExternalTeam
	positions []ExternalPosition
	fixtures  []ExternalFixture
	history   map[int][]ExternalGameweekStat

	currentGameweek int
	nextGameweek    int

	playersErr  error
	teamsErr    error
	fixturesErr error
	historyErr  error
	gameweekErr error
}

func (s *stubProvider) Players(context.Context) ([]ExternalPlayer, error) {
	return s.players, s.playersErr
}

func (s *stubProvider) Teams(context.Context) ([]ExternalTeam, error) {
	return s.teams, s.teamsErr
}

func (s *stubProvider) Positions(context.Context) ([]ExternalPosition, error) {
	return s.positions, nil
}

func (s *stubProvider) Fixtures(context.Context) ([]ExternalFixture, error) {
	return s.fixtures, s.fixturesErr
}

func (s *stubProvider) PlayerHistory(_ context.Context, playerID int) ([]ExternalGameweekStat, error) {
	return s.history[playerID], s.historyErr
}

func (s *stubProvider) CurrentGameweek(context.Context) (int, error) {
	if s.gameweekErr != nil {
		return 1, s.gameweekErr
	}
	return s.currentGameweek, nil
}

func (s *stubProvider) NextGameweek(context.Context) (int, error) {
	if s.gameweekErr != nil {
		return 1, s.gameweekErr
	}
	return s.nextGameweek, nil
}

func gw(n int) *int {
	return &n
}
