/* models.go
 * This file contain the structs that are shared between sub packages and returned to api consumers. These are derived
 * from the upstream records on every request and are never mutated after construction
 * Authors: Zachary Bower
 */

package shared

import (
	"fmt"
	"time"

	"fpl-insights/api/external"
)

const photoURLFormat = "https://resources.premierleague.com/premierleague/photos/players/110x140/p%d.png"

// NextFixture is a player's next unplayed fixture, seen from the player's team
type NextFixture struct {
	Opponent   external.Team `json:"opponent"`
	IsHome     bool          `json:"isHome"`
	Difficulty int           `json:"difficulty"`
	Gameweek   int           `json:"gameweek"`
}

// PlayerPrediction holds the derived metrics for a single player. Team is nil when the player's team id could not be
// found in the team table, and NextFixture is nil when no upcoming fixture could be resolved
type PlayerPrediction struct {
	Player            external.Player `json:"player"`
	Team              *external.Team  `json:"team"`
	NextFixture       *NextFixture    `json:"nextFixture"`
	PredictedPoints   float64         `json:"predictedPoints"`
	BuyRecommendation int             `json:"buyRecommendation"`
	Form              float64         `json:"form"`
	RotationRisk      float64         `json:"rotationRisk"`
	XG                float64         `json:"xG"`
	XA                float64         `json:"xA"`
	FormHistory       []float64       `json:"formHistory"`
	PhotoURL          string          `json:"photoUrl"`
}

// TopPlayers is the result of a ranking pass
type TopPlayers struct {
	AllPlayers         []PlayerPrediction `json:"allPlayers"`
	BudgetSuggestions  []PlayerPrediction `json:"budgetSuggestions"`
	PremiumSuggestions []PlayerPrediction `json:"premiumSuggestions"`
	Season             string             `json:"season,omitempty"`
	LastUpdated        time.Time          `json:"lastUpdated"`
}

// Match is a fixture formatted for display
type Match struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore *int   `json:"homeScore"`
	AwayScore *int   `json:"awayScore"`
	Time      string `json:"time"`   // "15:00", "67'" or "FT"
	Status    string `json:"status"` // "upcoming", "live" or "finished"
	IsLive    bool   `json:"isLive"`
}

// MatchDay groups matches that kick off on the same calendar day
type MatchDay struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// LiveFixtures is the current gameweek grouped by day
type LiveFixtures struct {
	Matchweek   int        `json:"matchweek"`
	Fixtures    []MatchDay `json:"fixtures"`
	LastUpdated time.Time  `json:"lastUpdated"`
}

// PhotoURL returns the Premier League headshot for a player code
func PhotoURL(code int) string {
	return fmt.Sprintf(photoURLFormat, code)
}
