package httpapi

import (
	"fmt"

	"github.com/fplpulse/fpl-dashboard/internal/domain/player"
	"github.com/fplpulse/fpl-dashboard/internal/domain/team"
	"github.com/fplpulse/fpl-dashboard/internal/usecase"
)

type playerDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoUrl,omitempty"`

	TeamID       int    `json:"teamId"`
	TeamName     string `json:"teamName"`
	TeamBadgeURL string `json:"teamBadgeUrl,omitempty"`
	Position     string `json:"position"`

	Price         float64 `json:"price"`
	Form          float64 `json:"form"`
	PointsPerGame float64 `json:"pointsPerGame"`
	TotalPoints   int     `json:"totalPoints"`
	Value         float64 `json:"value"`
	Minutes       int     `json:"minutes"`

	GoalsScored     int `json:"goalsScored"`
	Assists         int `json:"assists"`
	CleanSheets     int `json:"cleanSheets"`
	GoalsConceded   int `json:"goalsConceded"`
	OwnGoals        int `json:"ownGoals"`
	PenaltiesSaved  int `json:"penaltiesSaved"`
	PenaltiesMissed int `json:"penaltiesMissed"`
	YellowCards     int `json:"yellowCards"`
	RedCards        int `json:"redCards"`
	Saves           int `json:"saves"`
	Bonus           int `json:"bonus"`
	BPS             int `json:"bps"`

	Influence  float64 `json:"influence"`
	Creativity float64 `json:"creativity"`
	Threat     float64 `json:"threat"`
	ICTIndex   float64 `json:"ictIndex"`

	SelectedByPercent float64 `json:"selectedByPercent"`

	UpcomingFixtures     []upcomingFixtureDTO `json:"upcomingFixtures"`
	AvgFixtureDifficulty float64              `json:"avgFixtureDifficulty"`
}

type upcomingFixtureDTO struct {
	Gameweek   int    `json:"gameweek"`
	OpponentID int    `json:"opponentId"`
	Opponent   string `json:"opponent"`
	IsHome     bool   `json:"isHome"`
	Difficulty int    `json:"difficulty"`
	Display    string `json:"display"`
}

type teamDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	BadgeURL  string `json:"badgeUrl,omitempty"`

	Strength            int `json:"strength"`
	StrengthAttackHome  int `json:"strengthAttackHome"`
	StrengthAttackAway  int `json:"strengthAttackAway"`
	StrengthDefenceHome int `json:"strengthDefenceHome"`
	StrengthDefenceAway int `json:"strengthDefenceAway"`
}

type positionDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type gameweekDTO struct {
	Current int `json:"current"`
	Next    int `json:"next"`
}

type gameweekStatDTO struct {
	Gameweek      int     `json:"gameweek"`
	Opponent      string  `json:"opponent"`
	WasHome       bool    `json:"wasHome"`
	TotalPoints   int     `json:"totalPoints"`
	Minutes       int     `json:"minutes"`
	GoalsScored   int     `json:"goalsScored"`
	Assists       int     `json:"assists"`
	CleanSheets   int     `json:"cleanSheets"`
	GoalsConceded int     `json:"goalsConceded"`
	Bonus         int     `json:"bonus"`
	Price         float64 `json:"price"`
}

func playerToDTO(p player.Normalized, shortNameByTeamID map[int]string) playerDTO {
	fixtures := make([]upcomingFixtureDTO, 0, len(p.UpcomingFixtures))
	for _, f := range p.UpcomingFixtures {
		fixtures = append(fixtures, upcomingToDTO(f, shortNameByTeamID))
	}

	return playerDTO{
		ID:       p.ID,
		Name:     p.Name,
		FullName: p.FullName,
		PhotoURL: playerPhotoURL(p.Code),

		TeamID:       p.TeamID,
		TeamName:     p.TeamName,
		TeamBadgeURL: teamBadgeURL(p.TeamCode),
		Position:     p.Position,

		Price:         p.Price,
		Form:          p.Form,
		PointsPerGame: p.PointsPerGame,
		TotalPoints:   p.TotalPoints,
		Value:         p.Value(),
		Minutes:       p.Minutes,

		GoalsScored:     p.GoalsScored,
		Assists:         p.Assists,
		CleanSheets:     p.CleanSheets,
		GoalsConceded:   p.GoalsConceded,
		OwnGoals:        p.OwnGoals,
		PenaltiesSaved:  p.PenaltiesSaved,
		PenaltiesMissed: p.PenaltiesMissed,
		YellowCards:     p.YellowCards,
		RedCards:        p.RedCards,
		Saves:           p.Saves,
		Bonus:           p.Bonus,
		BPS:             p.BPS,

		Influence:  p.Influence,
		Creativity: p.Creativity,
		Threat:     p.Threat,
		ICTIndex:   p.ICTIndex,

		SelectedByPercent: p.SelectedByPercent,

		UpcomingFixtures:     fixtures,
		AvgFixtureDifficulty: p.AvgFixtureDifficulty,
	}
}

func upcomingToDTO(f player.Upcoming, shortNameByTeamID map[int]string) upcomingFixtureDTO {
	opponent := shortNameByTeamID[f.Opponent]
	if opponent == "" {
		opponent = player.Unknown
	}
	venue := "A"
	if f.IsHome {
		venue = "H"
	}

	return upcomingFixtureDTO{
		Gameweek:   f.Gameweek,
		OpponentID: f.Opponent,
		Opponent:   opponent,
		IsHome:     f.IsHome,
		Difficulty: f.Difficulty,
		Display:    fmt.Sprintf("GW%d %s (%s)", f.Gameweek, opponent, venue),
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		BadgeURL:  teamBadgeURL(t.Code),

		Strength:            t.Strength,
		StrengthAttackHome:  t.StrengthAttackHome,
		StrengthAttackAway:  t.StrengthAttackAway,
		StrengthDefenceHome: t.StrengthDefenceHome,
		StrengthDefenceAway: t.StrengthDefenceAway,
	}
}

func gameweekStatToDTO(row usecase.ExternalGameweekStat, shortNameByTeamID map[int]string) gameweekStatDTO {
	opponent := shortNameByTeamID[row.OpponentTeamID]
	if opponent == "" {
		opponent = player.Unknown
	}

	return gameweekStatDTO{
		Gameweek:      row.Gameweek,
		Opponent:      opponent,
		WasHome:       row.WasHome,
		TotalPoints:   row.TotalPoints,
		Minutes:       row.Minutes,
		GoalsScored:   row.GoalsScored,
		Assists:       row.Assists,
		CleanSheets:   row.CleanSheets,
		GoalsConceded: row.GoalsConceded,
		Bonus:         row.Bonus,
		Price:         float64(row.Value) / 10,
	}
}
