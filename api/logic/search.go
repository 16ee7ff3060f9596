/* search.go
 * Contains the fuzzy player name lookup used by the $player command and the search endpoint
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"
	"strings"

	"fpl-insights/api/external"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const DefaultSearchLimit = 5

// SearchPlayers matches a query against each player's web name and full name, ignoring case and accents
// Preconditions: Receives the user's query, the players to search and the max number of results (<= 0 uses
// DefaultSearchLimit)
// Postconditions: Returns matching players, closest match first. An exact web name match always ranks first, ties are
// broken by total points so the better known player comes first
func SearchPlayers(query string, players []external.Player, limit int) []external.Player {
	query = strings.TrimSpace(query)
	if query == "" || len(players) == 0 {
		return []external.Player{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	// Two targets per player, owner maps a target back to its player
	targets := make([]string, 0, len(players)*2)
	owner := make([]int, 0, len(players)*2)
	for i, p := range players {
		targets = append(targets, p.WebName, p.FullName())
		owner = append(owner, i, i)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)

	best := make(map[int]int) // player index -> best distance
	for _, r := range ranks {
		i := owner[r.OriginalIndex]
		distance := r.Distance
		if strings.EqualFold(players[i].WebName, query) {
			distance = -1
		}
		if d, ok := best[i]; !ok || distance < d {
			best[i] = distance
		}
	}

	matched := make([]int, 0, len(best))
	for i := range best {
		matched = append(matched, i)
	}
	sort.Slice(matched, func(a, b int) bool {
		pa, pb := matched[a], matched[b]
		if best[pa] != best[pb] {
			return best[pa] < best[pb]
		}
		if players[pa].TotalPoints != players[pb].TotalPoints {
			return players[pa].TotalPoints > players[pb].TotalPoints
		}
		return pa < pb
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]external.Player, 0, len(matched))
	for _, i := range matched {
		out = append(out, players[i])
	}
	return out
}
