/* models.go
 * This file contains the models used by the external package when fetching data from the Fantasy Premier League api.
 * Field names and json tags follow the upstream wire format
 * Authors: Zachary Bower
 */

package external

import "time"

// Player is an element of bootstrap-static. Several numeric stats are sent as strings by the FPL api (e.g. form "5.2")
// and may be empty or malformed, so they are kept as strings and parsed by the logic package
type Player struct {
	ID                       int    `json:"id"`
	Code                     int    `json:"code"`
	FirstName                string `json:"first_name"`
	SecondName               string `json:"second_name"`
	WebName                  string `json:"web_name"`
	Team                     int    `json:"team"`
	ElementType              int    `json:"element_type"` // 1=GK, 2=DEF, 3=MID, 4=FWD
	SelectedByPercent        string `json:"selected_by_percent"`
	NowCost                  int    `json:"now_cost"` // tenths of a million, 75 = £7.5m
	PointsPerGame            string `json:"points_per_game"`
	TotalPoints              int    `json:"total_points"`
	Minutes                  int    `json:"minutes"`
	GoalsScored              int    `json:"goals_scored"`
	Assists                  int    `json:"assists"`
	CleanSheets              int    `json:"clean_sheets"`
	GoalsConceded            int    `json:"goals_conceded"`
	OwnGoals                 int    `json:"own_goals"`
	PenaltiesSaved           int    `json:"penalties_saved"`
	PenaltiesMissed          int    `json:"penalties_missed"`
	YellowCards              int    `json:"yellow_cards"`
	RedCards                 int    `json:"red_cards"`
	Saves                    int    `json:"saves"`
	Bonus                    int    `json:"bonus"`
	BPS                      int    `json:"bps"`
	Influence                string `json:"influence"`
	Creativity               string `json:"creativity"`
	Threat                   string `json:"threat"`
	ICTIndex                 string `json:"ict_index"`
	Form                     string `json:"form"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"` // nil means no flag, i.e. 100%
	ChanceOfPlayingThisRound *int   `json:"chance_of_playing_this_round"`
}

// FullName returns "first second" as shown on the FPL site
func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.SecondName
	}
	if p.SecondName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.SecondName
}

// Team is a Premier League club. Strength ratings are passed through untouched for consumers of the api
type Team struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	Strength            int    `json:"strength"`
	StrengthOverallHome int    `json:"strength_overall_home"`
	StrengthOverallAway int    `json:"strength_overall_away"`
	StrengthAttackHome  int    `json:"strength_attack_home"`
	StrengthAttackAway  int    `json:"strength_attack_away"`
	StrengthDefenceHome int    `json:"strength_defence_home"`
	StrengthDefenceAway int    `json:"strength_defence_away"`
}

// Fixture is a single match. Event is nil for fixtures that have not been assigned to a gameweek yet, and scores are
// nil until the match has started
type Fixture struct {
	ID              int        `json:"id"`
	Event           *int       `json:"event"`
	TeamH           int        `json:"team_h"`
	TeamA           int        `json:"team_a"`
	TeamHScore      *int       `json:"team_h_score"`
	TeamAScore      *int       `json:"team_a_score"`
	Started         bool       `json:"started"`
	Finished        bool       `json:"finished"`
	KickoffTime     *time.Time `json:"kickoff_time"`
	Minutes         int        `json:"minutes"`
	TeamHDifficulty int        `json:"team_h_difficulty"`
	TeamADifficulty int        `json:"team_a_difficulty"`
}

// Event is a gameweek
type Event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	Finished     bool   `json:"finished"`
	IsPrevious   bool   `json:"is_previous"`
	IsCurrent    bool   `json:"is_current"`
	IsNext       bool   `json:"is_next"`
}

// BootstrapStatic is the subset of /bootstrap-static/ used by this project. A nil Elements or Teams slice means the key
// was missing from the response, which callers treat as a malformed payload
type BootstrapStatic struct {
	Elements []Player `json:"elements"`
	Teams    []Team   `json:"teams"`
	Events   []Event  `json:"events"`
}
