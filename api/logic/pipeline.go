/* pipeline.go
 * Contains the logic for turning the upstream players, teams and fixtures into ranked predictions. The pipeline is
 * eligibility -> predict -> rank -> select and keeps no state between calls
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"

	"fpl-insights/api/external"
	"fpl-insights/api/shared"
	"fpl-insights/metrics"
)

var (
	ErrMissingPlayers = errors.New("invalid data structure: players are missing")
	ErrMissingTeams   = errors.New("invalid data structure: teams are missing")
)

// formHistoryFactors give the trend shown on player cards, ending at the current form
var formHistoryFactors = []float64{0.8, 0.85, 0.9, 0.95, 1}

// Predict builds the derived record for one player. It does not check eligibility
func Predict(player external.Player, teams []external.Team, fixtures []external.Fixture) shared.PlayerPrediction {
	return predict(player, teams, fixtures, DefaultScoringWeights)
}

func predict(player external.Player, teams []external.Team, fixtures []external.Fixture, weights ScoringWeights) shared.PlayerPrediction {
	form := Form(player)

	history := make([]float64, len(formHistoryFactors))
	for i, factor := range formHistoryFactors {
		history[i] = form * factor
	}

	return shared.PlayerPrediction{
		Player:            player,
		Team:              FindTeam(teams, player.Team),
		NextFixture:       NextFixture(player.Team, fixtures, teams),
		PredictedPoints:   PredictedPoints(player, form),
		BuyRecommendation: buyRecommendation(player, fixtures, teams, weights),
		Form:              form,
		RotationRisk:      RotationRisk(player),
		XG:                ParseDecimal(player.Threat) / 100,
		XA:                ParseDecimal(player.Creativity) / 100,
		FormHistory:       history,
		PhotoURL:          shared.PhotoURL(player.Code),
	}
}

// ComputeTopPlayers ranks the players with the default options
func ComputeTopPlayers(players []external.Player, teams []external.Team, fixtures []external.Fixture) (shared.TopPlayers, error) {
	return ComputeTopPlayersWith(players, teams, fixtures, DefaultOptions())
}

// ComputeTopPlayersWith runs the full pipeline
// Preconditions: Receives the player and team collections (required, nil means the upstream payload was malformed),
// the fixture list (nil is treated as empty) and the options to score and select with
// Postconditions: Returns the diversified top list and the budget and premium suggestions, or an error if a required
// collection is missing. Faults on single players never abort the pass
func ComputeTopPlayersWith(players []external.Player, teams []external.Team, fixtures []external.Fixture, opts Options) (shared.TopPlayers, error) {
	if players == nil {
		return shared.TopPlayers{}, ErrMissingPlayers
	}
	if teams == nil {
		return shared.TopPlayers{}, ErrMissingTeams
	}

	predictions := make([]shared.PlayerPrediction, 0)
	for _, player := range players {
		if !IsEligible(player) {
			continue
		}
		prediction := predict(player, teams, fixtures, opts.Weights)
		// a player ruled out (0% chance) still passes eligibility on minutes, but has nothing to recommend
		if prediction.Form <= 0 || prediction.PredictedPoints <= 0 {
			continue
		}
		predictions = append(predictions, prediction)
	}
	metrics.EligiblePlayers.Set(float64(len(predictions)))

	ranked := Rank(predictions, opts.Ranking)

	return shared.TopPlayers{
		AllPlayers:         Diversify(ranked, opts.Selection),
		BudgetSuggestions:  BudgetSuggestions(ranked, opts.Selection),
		PremiumSuggestions: PremiumSuggestions(ranked, opts.Selection),
	}, nil
}
