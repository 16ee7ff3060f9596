/* constants.go
 * Named weights and thresholds used by the scoring and selection logic
 * Authors: Zachary Bower
 */

package logic

const (
	// MinMinutes is three full matches; players below this have too small a sample to score
	MinMinutes = 270
	// MaxForm bounds adjusted form so it can't dominate the ranking score
	MaxForm = 10.0
	// MaxPredictedPoints bounds the predicted points for the next gameweek
	MaxPredictedPoints = 10.0
	// DefaultDifficulty is used when a fixture has no difficulty or a player has no next fixture
	DefaultDifficulty = 3
	// DefaultAvailability is used when chance_of_playing_next_round is absent
	DefaultAvailability = 100.0
	// DefaultRecommendation is returned when a buy recommendation cannot be calculated
	DefaultRecommendation = 0
)

// ScoringWeights are the weights of the buy recommendation blend. They sum to 1
type ScoringWeights struct {
	Form         float64
	Fixture      float64
	Rotation     float64
	Performance  float64
	Availability float64
}

// RankingWeights combine buy recommendation and form into the single ranking score
type RankingWeights struct {
	BuyRecommendation float64
	Form              float64
}

// SelectionConfig controls the budget/premium split and the diversified top list
type SelectionConfig struct {
	BudgetThreshold  float64 // in millions, compared against now_cost / 10
	SuggestionCount  int
	TopCount         int
	UnconditionalTop int // taken regardless of team before the per team cap applies
	MaxPerTeam       int
}

// Options groups everything ComputeTopPlayersWith needs
type Options struct {
	Weights   ScoringWeights
	Ranking   RankingWeights
	Selection SelectionConfig
}

var DefaultScoringWeights = ScoringWeights{
	Form:         0.25,
	Fixture:      0.15,
	Rotation:     0.20,
	Performance:  0.30,
	Availability: 0.10,
}

var DefaultRankingWeights = RankingWeights{
	BuyRecommendation: 0.4,
	Form:              60,
}

var DefaultSelection = SelectionConfig{
	BudgetThreshold:  7.0,
	SuggestionCount:  3,
	TopCount:         25,
	UnconditionalTop: 5,
	MaxPerTeam:       3,
}

// DefaultOptions returns the default weights and thresholds
func DefaultOptions() Options {
	return Options{
		Weights:   DefaultScoringWeights,
		Ranking:   DefaultRankingWeights,
		Selection: DefaultSelection,
	}
}
