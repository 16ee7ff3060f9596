/* scoring.go
 * Contains the per player metric calculations: availability, form, rotation risk, predicted points and the buy
 * recommendation. All of these are total functions, malformed upstream fields count as 0
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"fpl-insights/api/external"
	"fpl-insights/metrics"
)

var ErrNonFiniteScore = errors.New("score is not a finite number")

// ScoreResult is the outcome of a calculation that may fault without aborting the ranking pass
type ScoreResult struct {
	Value int
	Err   error
}

// OrDefault returns the value, or def if the calculation faulted
func (r ScoreResult) OrDefault(def int) int {
	if r.Err != nil {
		return def
	}
	return r.Value
}

// Availability returns the chance of playing next round as a percentage, 100 when the api sends null
func Availability(player external.Player) float64 {
	if player.ChanceOfPlayingNextRound == nil {
		return DefaultAvailability
	}
	return float64(*player.ChanceOfPlayingNextRound)
}

// Form returns the player's form scaled by availability, within [0, MaxForm]
func Form(player external.Player) float64 {
	raw := ParseDecimal(player.Form)
	return clamp(raw*(Availability(player)/100), 0, MaxForm)
}

// RotationRisk estimates how likely the player is to miss out or be subbed, within [0, 100]
// Preconditions: Receives a player record
// Postconditions: Returns the availability gap plus a minutes penalty plus a low form penalty, clamped to [0, 100]
func RotationRisk(player external.Player) float64 {
	risk := 0.0

	availability := Availability(player)
	if availability < 100 {
		risk += 100 - availability
	}

	minutes := float64(player.Minutes)
	gamesPlayed := math.Max(1, minutes/90)
	averageMinutes := minutes / gamesPlayed

	switch {
	case averageMinutes < 45:
		risk += 50
	case averageMinutes < 60:
		risk += 30
	case averageMinutes < 80:
		risk += 15
	}

	if ParseDecimal(player.Form) < 2 {
		risk += 20
	}

	return clamp(risk, 0, 100)
}

// PredictedPoints projects next gameweek points from points per game, scaled by form relative to 5 and by availability
func PredictedPoints(player external.Player, form float64) float64 {
	prediction := ParseDecimal(player.PointsPerGame)
	if form > 0 {
		prediction *= form / 5
	}
	prediction *= Availability(player) / 100
	return clamp(prediction, 0, MaxPredictedPoints)
}

// BuyRecommendation scores a player from 0 to 100 using the default weights. A fault in the calculation is logged and
// counted, and the player gets DefaultRecommendation instead of dropping out of the ranking
func BuyRecommendation(player external.Player, fixtures []external.Fixture, teams []external.Team) int {
	return buyRecommendation(player, fixtures, teams, DefaultScoringWeights)
}

func buyRecommendation(player external.Player, fixtures []external.Fixture, teams []external.Team, weights ScoringWeights) int {
	result := BuyRecommendationResult(player, fixtures, teams, weights)
	if result.Err != nil {
		metrics.RecommendationFaults.Inc()
		slog.Warn("Buy recommendation fell back to default", "player_id", player.ID, "error", result.Err)
	}
	return result.OrDefault(DefaultRecommendation)
}

// BuyRecommendationResult computes the weighted blend of form, next fixture, rotation, performance and availability
// Preconditions: Receives a player, the fixture list, the team table and the weights to blend with
// Postconditions: Returns the rounded score clamped to [0, 100], or a ScoreResult with Err set if the arithmetic
// produced a non-finite value or panicked
func BuyRecommendationResult(player external.Player, fixtures []external.Fixture, teams []external.Team, weights ScoringWeights) (result ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ScoreResult{Err: fmt.Errorf("buy recommendation for player %d panicked: %v", player.ID, r)}
		}
	}()

	form := Form(player)
	rotationRisk := RotationRisk(player)
	pointsPerGame := ParseDecimal(player.PointsPerGame)
	influence := ParseDecimal(player.Influence)
	creativity := ParseDecimal(player.Creativity)
	threat := ParseDecimal(player.Threat)

	difficulty := DefaultDifficulty
	if next := NextFixture(player.Team, fixtures, teams); next != nil {
		difficulty = next.Difficulty
	}

	formScore := math.Min(100, (form/MaxForm)*100)
	fixtureScore := math.Min(100, (float64(5-difficulty)/4)*100)
	rotationScore := 100 - rotationRisk
	performanceScore := math.Min(100,
		pointsPerGame*8+
			(influence/100)*4+
			(creativity/100)*4+
			(threat/100)*4)
	availabilityScore := Availability(player)

	weighted := formScore*weights.Form +
		fixtureScore*weights.Fixture +
		rotationScore*weights.Rotation +
		performanceScore*weights.Performance +
		availabilityScore*weights.Availability

	if math.IsNaN(weighted) || math.IsInf(weighted, 0) {
		return ScoreResult{Err: fmt.Errorf("player %d: %w", player.ID, ErrNonFiniteScore)}
	}

	// half rounds up
	rounded := int(math.Floor(weighted + 0.5))
	return ScoreResult{Value: clampInt(rounded, 0, 100)}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func clampInt(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
