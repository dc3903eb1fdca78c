package models

import (
	"time"
)

// Team represents an immutable team record with its seeded attributes.
// Attribute values are conventionally in [0,100]; Strength is the opaque
// aggregate rating used by the prediction engine.
type Team struct {
	ID         string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Country    string    `gorm:"column:country;type:varchar(50)" json:"country"`
	Pot        int       `gorm:"column:pot;default:1" json:"pot"`
	Power      int       `gorm:"column:power;default:50" json:"power"`
	Attack     int       `gorm:"column:attack;default:50" json:"attack"`
	Defense    int       `gorm:"column:defense;default:50" json:"defense"`
	Goalkeeper int       `gorm:"column:goalkeeper;default:50" json:"goalkeeper"`
	Supporter  int       `gorm:"column:supporter;default:50" json:"supporter"`
	Strength   int       `gorm:"column:strength;default:50" json:"strength"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Team model
func (Team) TableName() string {
	return "teams"
}

// Group represents a tournament group (single-letter name, 4 teams)
type Group struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:char(1);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Group model
func (Group) TableName() string {
	return "groups"
}

// GroupTeam is the membership record of one team in one group, carrying the
// team's cumulative standing within that group. GoalDifference is always
// recomputed as GoalsFor-GoalsAgainst, never set independently. Form holds
// the last up-to-5 results as a string of 'W'/'D'/'L', oldest dropped first.
// Guess is the predicted group-winner probability as an integer percentage.
type GroupTeam struct {
	ID             string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	GroupID        string    `gorm:"column:group_id;type:varchar(36);not null;index:idx_group" json:"group_id"`
	TeamID         string    `gorm:"column:team_id;type:varchar(36);not null;index:idx_team" json:"team_id"`
	Played         int       `gorm:"column:played;default:0" json:"played"`
	Won            int       `gorm:"column:won;default:0" json:"won"`
	Drawn          int       `gorm:"column:drawn;default:0" json:"drawn"`
	Lost           int       `gorm:"column:lost;default:0" json:"lost"`
	Points         int       `gorm:"column:points;default:0" json:"points"`
	GoalsFor       int       `gorm:"column:goals_for;default:0" json:"goals_for"`
	GoalsAgainst   int       `gorm:"column:goals_against;default:0" json:"goals_against"`
	GoalDifference int       `gorm:"column:goal_difference;default:0" json:"goal_difference"`
	Form           string    `gorm:"column:form;type:varchar(5);default:''" json:"form"`
	Guess          int       `gorm:"column:guess;default:0" json:"guess"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName specifies the table name for GroupTeam model
func (GroupTeam) TableName() string {
	return "group_teams"
}

// Fixture represents a single scheduled match. Scores stay nil until the
// match is played or corrected. MatchDay is derived from the group's
// broadcast side at generation time and stored for read efficiency.
type Fixture struct {
	ID         string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	GroupID    string    `gorm:"column:group_id;type:varchar(36);not null;index:idx_fixture_group" json:"group_id"`
	Week       int       `gorm:"column:week;not null;index:idx_week" json:"week"`
	MatchDay   string    `gorm:"column:match_day;type:varchar(9);not null" json:"match_day"`
	HomeTeamID string    `gorm:"column:home_team_id;type:varchar(36);not null" json:"home_team_id"`
	AwayTeamID string    `gorm:"column:away_team_id;type:varchar(36);not null" json:"away_team_id"`
	HomeGoals  *int      `gorm:"column:home_goals" json:"home_goals"`
	AwayGoals  *int      `gorm:"column:away_goals" json:"away_goals"`
	Played     bool      `gorm:"column:played;default:false" json:"played"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	HomeTeam *Team  `gorm:"foreignKey:HomeTeamID" json:"home_team,omitempty"`
	AwayTeam *Team  `gorm:"foreignKey:AwayTeamID" json:"away_team,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
}

// TableName specifies the table name for Fixture model
func (Fixture) TableName() string {
	return "fixtures"
}

// CorrectMatchRequest is the payload for overriding a played match's score
type CorrectMatchRequest struct {
	HomeGoals *int `json:"home_goals" binding:"required"`
	AwayGoals *int `json:"away_goals" binding:"required"`
}
