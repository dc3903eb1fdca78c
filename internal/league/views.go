package league

// Response shapes returned by the service layer and rendered by the HTTP
// handlers as-is.

// TeamStanding is one team's row in a group table
type TeamStanding struct {
	TeamID         string `json:"team_id"`
	Name           string `json:"name"`
	Country        string `json:"country"`
	Pot            int    `json:"pot"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	Points         int    `json:"points"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Form           string `json:"form"`
	Guess          int    `json:"guess"`
}

// GroupView is a group with its table, ordered best first
type GroupView struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Teams []TeamStanding `json:"teams"`
}

// FixtureView is one match as rendered in fixture lists and play results.
// Score reads "TBD" until the match is played.
type FixtureView struct {
	ID        string `json:"id"`
	Group     string `json:"group"`
	Week      int    `json:"week"`
	MatchDay  string `json:"match_day"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeGoals *int   `json:"home_goals"`
	AwayGoals *int   `json:"away_goals"`
	Score     string `json:"score"`
	Played    bool   `json:"played"`
}

// WeekFixtures groups fixtures under their week number
type WeekFixtures struct {
	Week    int           `json:"week"`
	Matches []FixtureView `json:"matches"`
}

// MatchOutcome is the result of playing a single match
type MatchOutcome struct {
	Match            FixtureView `json:"match"`
	Week             int         `json:"week"`
	RemainingMatches int         `json:"remaining_matches"`
	IsLastMatch      bool        `json:"is_last_match"`
}

// WeekOutcome is the result of playing one full week
type WeekOutcome struct {
	Week    int           `json:"week"`
	Results []FixtureView `json:"results"`
}
