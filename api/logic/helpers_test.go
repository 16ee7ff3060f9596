/* helpers_test.go
 * Contains builders shared by the logic package tests
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"

	"fpl-insights/api/external"
	"fpl-insights/api/shared"
)

func intPtr(v int) *int {
	return &v
}

// makePlayer creates a player with the fields the scoring logic reads. Availability is nil (100%)
func makePlayer(id, team int, form, pointsPerGame string, minutes, cost int) external.Player {
	return external.Player{
		ID:            id,
		Code:          1000 + id,
		FirstName:     "First",
		SecondName:    fmt.Sprintf("Player%d", id),
		WebName:       fmt.Sprintf("Player%d", id),
		Team:          team,
		ElementType:   3,
		NowCost:       cost,
		Form:          form,
		PointsPerGame: pointsPerGame,
		Minutes:       minutes,
		Influence:     "0.0",
		Creativity:    "0.0",
		Threat:        "0.0",
	}
}

func makeTeams(n int) []external.Team {
	teams := make([]external.Team, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, external.Team{
			ID:        i,
			Name:      fmt.Sprintf("Team %d", i),
			ShortName: fmt.Sprintf("T%02d", i),
		})
	}
	return teams
}

// makeRanked creates predictions in the given team order, as if already ranked
func makeRanked(teams ...int) []shared.PlayerPrediction {
	out := make([]shared.PlayerPrediction, 0, len(teams))
	for i, team := range teams {
		out = append(out, shared.PlayerPrediction{
			Player: external.Player{ID: i + 1, Team: team, NowCost: 50},
		})
	}
	return out
}

func repeat(team, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = team
	}
	return out
}
