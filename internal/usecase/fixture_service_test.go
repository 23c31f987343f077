package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestFixtureService_Upcoming_OrdersAndTruncates(t *testing.T) {
	t.Parallel()

	// Team 7 has fixtures at gameweeks 5, 3, 9; with the next gameweek
	// at 4, gameweek 3 is already past. Limit 2 keeps [5, 9].
	provider := &stubProvider{
		nextGameweek: 4,
		fixtures: []ExternalFixture{
			{ID: 1, Gameweek: gw(5), HomeTeamID: 7, AwayTeamID: 2, HomeDifficulty: 4, AwayDifficulty: 2},
			{ID: 2, Gameweek: gw(3), HomeTeamID: 3, AwayTeamID: 7, HomeDifficulty: 2, AwayDifficulty: 5},
			{ID: 3, Gameweek: gw(9), HomeTeamID: 4, AwayTeamID: 7, HomeDifficulty: 1, AwayDifficulty: 3},
		},
	}
	svc := NewFixtureService(provider, nil)

	got := svc.Upcoming(context.Background(), 7, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(got))
	}
	if got[0].Gameweek != 5 || got[1].Gameweek != 9 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestFixtureService_Upcoming_PicksDifficultyBySide(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		nextGameweek: 1,
		fixtures: []ExternalFixture{
			{ID: 1, Gameweek: gw(1), HomeTeamID: 7, AwayTeamID: 2, HomeDifficulty: 4, AwayDifficulty: 2},
			{ID: 2, Gameweek: gw(2), HomeTeamID: 3, AwayTeamID: 7, HomeDifficulty: 2, AwayDifficulty: 5},
		},
	}
	svc := NewFixtureService(provider, nil)

	got := svc.Upcoming(context.Background(), 7, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(got))
	}
	if !got[0].IsHome || got[0].Difficulty != 4 || got[0].Opponent != 2 {
		t.Fatalf("unexpected home fixture: %+v", got[0])
	}
	if got[1].IsHome || got[1].Difficulty != 5 || got[1].Opponent != 3 {
		t.Fatalf("unexpected away fixture: %+v", got[1])
	}
}

func TestFixtureService_Upcoming_SkipsUnscheduledFixtures(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		nextGameweek: 1,
		fixtures: []ExternalFixture{
			{ID: 1, Gameweek: nil, HomeTeamID: 7, AwayTeamID: 2, HomeDifficulty: 4},
			{ID: 2, Gameweek: gw(6), HomeTeamID: 7, AwayTeamID: 5, HomeDifficulty: 3},
		},
	}
	svc := NewFixtureService(provider, nil)

	got := svc.Upcoming(context.Background(), 7, 3)
	if len(got) != 1 || got[0].Gameweek != 6 {
		t.Fatalf("unscheduled fixture should be excluded, got %+v", got)
	}
}

func TestFixtureService_Upcoming_EmptyOnProviderFailure(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		gameweekErr: errors.New("upstream down"),
		fixturesErr: errors.New("upstream down"),
	}
	svc := NewFixtureService(provider, nil)

	if got := svc.Upcoming(context.Background(), 7, 3); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFixtureService_Upcoming_NoQualifyingFixtures(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		nextGameweek: 30,
		fixtures: []ExternalFixture{
			{ID: 1, Gameweek: gw(5), HomeTeamID: 7, AwayTeamID: 2},
		},
	}
	svc := NewFixtureService(provider, nil)

	if got := svc.Upcoming(context.Background(), 7, 3); len(got) != 0 {
		t.Fatalf("expected empty result for past-only fixtures, got %+v", got)
	}
}
