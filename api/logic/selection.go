/* selection.go
 * Contains the selections made from the ranked candidate list: budget and premium suggestions, and the diversified
 * top list
 * Authors: Zachary Bower
 */

package logic

import "fpl-insights/api/shared"

// IsBudget reports whether a player costs at most the budget threshold. now_cost is stored in tenths
func IsBudget(prediction shared.PlayerPrediction, cfg SelectionConfig) bool {
	return float64(prediction.Player.NowCost)/10 <= cfg.BudgetThreshold
}

// BudgetSuggestions returns the first SuggestionCount ranked players at or under the budget threshold
func BudgetSuggestions(ranked []shared.PlayerPrediction, cfg SelectionConfig) []shared.PlayerPrediction {
	return takeWhere(ranked, cfg.SuggestionCount, func(p shared.PlayerPrediction) bool {
		return IsBudget(p, cfg)
	})
}

// PremiumSuggestions returns the first SuggestionCount ranked players over the budget threshold
func PremiumSuggestions(ranked []shared.PlayerPrediction, cfg SelectionConfig) []shared.PlayerPrediction {
	return takeWhere(ranked, cfg.SuggestionCount, func(p shared.PlayerPrediction) bool {
		return !IsBudget(p, cfg)
	})
}

// Diversify greedily picks up to TopCount players from the ranked list. The first UnconditionalTop are always taken,
// after that a player is only taken while their team has fewer than MaxPerTeam picks. This is order dependent and not
// globally optimal, and the list may be shorter than TopCount if the pool runs out
func Diversify(ranked []shared.PlayerPrediction, cfg SelectionConfig) []shared.PlayerPrediction {
	selected := make([]shared.PlayerPrediction, 0, max(0, min(cfg.TopCount, len(ranked))))
	perTeam := make(map[int]int)

	for i, prediction := range ranked {
		if len(selected) >= cfg.TopCount {
			break
		}
		team := prediction.Player.Team
		if i < cfg.UnconditionalTop || perTeam[team] < cfg.MaxPerTeam {
			selected = append(selected, prediction)
			perTeam[team]++
		}
	}
	return selected
}

func takeWhere(ranked []shared.PlayerPrediction, n int, keep func(shared.PlayerPrediction) bool) []shared.PlayerPrediction {
	out := make([]shared.PlayerPrediction, 0, max(n, 0))
	for _, p := range ranked {
		if len(out) >= n {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
