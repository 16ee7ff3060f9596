/* eligibility_test.go
 * Contains unit tests for eligibility.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligible_RegularStarter(t *testing.T) {
	player := makePlayer(1, 1, "5.2", "4.8", 900, 60)

	assert.True(t, IsEligible(player))
}

func TestIsEligible_ExactlyMinMinutes(t *testing.T) {
	player := makePlayer(1, 1, "5", "5", MinMinutes, 60)

	assert.True(t, IsEligible(player))
}

func TestIsEligible_BelowMinMinutes(t *testing.T) {
	player := makePlayer(1, 1, "5", "5", MinMinutes-1, 60)

	assert.False(t, IsEligible(player))
}

func TestIsEligible_ZeroMinutesWithAvailability(t *testing.T) {
	player := makePlayer(1, 1, "5", "5", 0, 60)

	assert.False(t, IsEligible(player))
}

func TestIsEligible_ZeroAvailabilityWithMinutes(t *testing.T) {
	// Availability alone doesn't exclude a player who has minutes
	player := makePlayer(1, 1, "5", "5", 900, 60)
	player.ChanceOfPlayingNextRound = intPtr(0)

	assert.True(t, IsEligible(player))
}

func TestIsEligible_ZeroForm(t *testing.T) {
	player := makePlayer(1, 1, "0.0", "5", 900, 60)

	assert.False(t, IsEligible(player))
}

func TestIsEligible_ZeroPointsPerGame(t *testing.T) {
	player := makePlayer(1, 1, "5", "0.0", 900, 60)

	assert.False(t, IsEligible(player))
}

func TestIsEligible_MalformedFields(t *testing.T) {
	player := makePlayer(1, 1, "", "abc", 900, 60)

	assert.False(t, IsEligible(player))
}
