/* eligibility.go
 * Contains the filter that decides which players enter the candidate pool
 * Authors: Zachary Bower
 */

package logic

import "fpl-insights/api/external"

// IsEligible reports whether a player has enough evidence to be scored: they must be playing or available, have
// positive form and points per game, and have played at least MinMinutes
func IsEligible(player external.Player) bool {
	minutes := player.Minutes
	form := ParseDecimal(player.Form)
	pointsPerGame := ParseDecimal(player.PointsPerGame)

	return (minutes > 0 || Availability(player) > 0) &&
		form > 0 &&
		pointsPerGame > 0 &&
		minutes >= MinMinutes
}
