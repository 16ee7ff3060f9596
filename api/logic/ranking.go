/* ranking.go
 * Contains the ranking score and sort used by every selection
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"

	"fpl-insights/api/shared"
)

// RankScore is the single ordering signal: buyRecommendation*0.4 + form*60 with the default weights
func RankScore(prediction shared.PlayerPrediction, weights RankingWeights) float64 {
	return float64(prediction.BuyRecommendation)*weights.BuyRecommendation + prediction.Form*weights.Form
}

// Rank returns a copy of predictions sorted by RankScore, highest first. Ties keep their input order
func Rank(predictions []shared.PlayerPrediction, weights RankingWeights) []shared.PlayerPrediction {
	ranked := make([]shared.PlayerPrediction, len(predictions))
	copy(ranked, predictions)

	sort.SliceStable(ranked, func(i, j int) bool {
		return RankScore(ranked[i], weights) > RankScore(ranked[j], weights)
	})
	return ranked
}
