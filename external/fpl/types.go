package fpl

// Wire types for the public fantasy API. Decimal metrics such as form
// and the ICT indices are decoded as strings because that is how the
// API serializes them; nulls decode to the empty string.

type bootstrapEnvelope struct {
	Events       []eventWire       `json:"events"`
	Teams        []teamWire        `json:"teams"`
	Elements     []elementWire     `json:"elements"`
	ElementTypes []elementTypeWire `json:"element_types"`
}

type eventWire struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
	IsNext    bool `json:"is_next"`
	Finished  bool `json:"finished"`
}

type teamWire struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`

	Strength            int `json:"strength"`
	StrengthAttackHome  int `json:"strength_attack_home"`
	StrengthAttackAway  int `json:"strength_attack_away"`
	StrengthDefenceHome int `json:"strength_defence_home"`
	StrengthDefenceAway int `json:"strength_defence_away"`
}

type elementWire struct {
	ID         int    `json:"id"`
	Code       int    `json:"code"`
	WebName    string `json:"web_name"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`

	Team        int    `json:"team"`
	ElementType int    `json:"element_type"`
	Status      string `json:"status"`

	NowCost     int `json:"now_cost"`
	TotalPoints int `json:"total_points"`
	Minutes     int `json:"minutes"`

	GoalsScored     int `json:"goals_scored"`
	Assists         int `json:"assists"`
	CleanSheets     int `json:"clean_sheets"`
	GoalsConceded   int `json:"goals_conceded"`
	OwnGoals        int `json:"own_goals"`
	PenaltiesSaved  int `json:"penalties_saved"`
	PenaltiesMissed int `json:"penalties_missed"`
	YellowCards     int `json:"yellow_cards"`
	RedCards        int `json:"red_cards"`
	Saves           int `json:"saves"`
	Bonus           int `json:"bonus"`
	BPS             int `json:"bps"`

	Form              string `json:"form"`
	PointsPerGame     string `json:"points_per_game"`
	Influence         string `json:"influence"`
	Creativity        string `json:"creativity"`
	Threat            string `json:"threat"`
	ICTIndex          string `json:"ict_index"`
	SelectedByPercent string `json:"selected_by_percent"`
}

type elementTypeWire struct {
	ID           int    `json:"id"`
	SingularName string `json:"singular_name"`
}

type fixtureWire struct {
	ID              int  `json:"id"`
	Event           *int `json:"event"`
	TeamH           int  `json:"team_h"`
	TeamA           int  `json:"team_a"`
	TeamHDifficulty int  `json:"team_h_difficulty"`
	TeamADifficulty int  `json:"team_a_difficulty"`
	Finished        bool `json:"finished"`
}

type elementSummaryEnvelope struct {
	History []historyWire `json:"history"`
}

type historyWire struct {
	Round         int  `json:"round"`
	OpponentTeam  int  `json:"opponent_team"`
	WasHome       bool `json:"was_home"`
	TotalPoints   int  `json:"total_points"`
	Minutes       int  `json:"minutes"`
	GoalsScored   int  `json:"goals_scored"`
	Assists       int  `json:"assists"`
	CleanSheets   int  `json:"clean_sheets"`
	GoalsConceded int  `json:"goals_conceded"`
	Bonus         int  `json:"bonus"`
	Value         int  `json:"value"`
}
