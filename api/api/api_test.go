/* api_test.go
 * Contains unit tests for api.go - testing all public API methods
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"fpl-insights/api/external"
	"fpl-insights/api/logic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// region NewAPI tests

func TestNewAPI_Success(t *testing.T) {
	a, err := NewAPI(NewMockSource(), "2024-25", nil)

	require.NoError(t, err)
	assert.Equal(t, "2024-25", a.Season)
	assert.Equal(t, time.UTC, a.Location)
	assert.NotNil(t, a.Now)
}

func TestNewAPI_MissingSource(t *testing.T) {
	_, err := NewAPI(nil, "2024-25", nil)

	assert.Error(t, err)
}

func TestNewAPI_AcceptsClient(t *testing.T) {
	_, err := NewAPI(external.NewClient(external.ClientConfig{}), "2024-25", time.UTC)

	assert.NoError(t, err)
}

// endregion

// region GetTopPlayers tests

func TestGetTopPlayers_Success(t *testing.T) {
	a, source := NewMockAPI()

	top, err := a.GetTopPlayers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-25", top.Season)
	assert.Equal(t, MockNow(), top.LastUpdated)

	require.Len(t, top.AllPlayers, 2)
	assert.Equal(t, 1, top.AllPlayers[0].Player.ID)
	assert.Equal(t, 2, top.AllPlayers[1].Player.ID)

	require.Len(t, top.BudgetSuggestions, 1)
	assert.Equal(t, "Wood", top.BudgetSuggestions[0].Player.WebName)
	require.Len(t, top.PremiumSuggestions, 1)
	assert.Equal(t, "M.Salah", top.PremiumSuggestions[0].Player.WebName)

	assert.Equal(t, 1, source.BootstrapCalls)
	assert.Equal(t, 1, source.FixturesCalls)
}

func TestGetTopPlayers_NoStateBetweenCalls(t *testing.T) {
	a, source := NewMockAPI()

	_, err := a.GetTopPlayers(context.Background())
	require.NoError(t, err)

	source.Bootstrap.Elements = source.Bootstrap.Elements[1:]
	top, err := a.GetTopPlayers(context.Background())

	require.NoError(t, err)
	require.Len(t, top.AllPlayers, 1)
	assert.Equal(t, 2, top.AllPlayers[0].Player.ID)
	assert.Equal(t, 2, source.BootstrapCalls)
}

func TestGetTopPlayers_BootstrapError(t *testing.T) {
	a, source := NewMockAPI()
	source.FetchBootstrapError = external.ErrRateLimited

	_, err := a.GetTopPlayers(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, external.ErrRateLimited))
	assert.Equal(t, 0, source.FixturesCalls)
}

func TestGetTopPlayers_FixturesError(t *testing.T) {
	a, source := NewMockAPI()
	source.FetchFixturesError = errors.New("connection reset")

	_, err := a.GetTopPlayers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch fixtures")
}

func TestGetTopPlayers_MissingTeams(t *testing.T) {
	a, source := NewMockAPI()
	source.Bootstrap.Teams = nil

	_, err := a.GetTopPlayers(context.Background())

	assert.True(t, errors.Is(err, logic.ErrMissingTeams))
}

func TestGetTopPlayers_NoFixtures(t *testing.T) {
	a, source := NewMockAPI()
	source.Fixtures = nil

	top, err := a.GetTopPlayers(context.Background())

	require.NoError(t, err)
	require.Len(t, top.AllPlayers, 2)
	assert.Nil(t, top.AllPlayers[0].NextFixture)
}

func TestGetTopPlayers_ContextCancelled(t *testing.T) {
	a, _ := NewMockAPI()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.GetTopPlayers(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

// endregion

// region GetPlayer tests

func TestGetPlayer_Success(t *testing.T) {
	a, _ := NewMockAPI()

	prediction, err := a.GetPlayer(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Wood", prediction.Player.WebName)
	require.NotNil(t, prediction.Team)
	assert.Equal(t, "NFO", prediction.Team.ShortName)
	require.NotNil(t, prediction.NextFixture)
	assert.False(t, prediction.NextFixture.IsHome)
	assert.Equal(t, 5, prediction.NextFixture.Difficulty)
}

func TestGetPlayer_IneligiblePlayerStillReturned(t *testing.T) {
	a, _ := NewMockAPI()

	prediction, err := a.GetPlayer(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Keeper", prediction.Player.WebName)
	assert.Equal(t, 0.0, prediction.Form)
}

func TestGetPlayer_NotFound(t *testing.T) {
	a, _ := NewMockAPI()

	_, err := a.GetPlayer(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlayerNotFound))
}

func TestGetPlayer_MissingPlayers(t *testing.T) {
	a, source := NewMockAPI()
	source.Bootstrap.Elements = nil

	_, err := a.GetPlayer(context.Background(), 1)

	assert.True(t, errors.Is(err, logic.ErrMissingPlayers))
}

// endregion

// region SearchPlayers tests

func TestSearchPlayers_Success(t *testing.T) {
	a, _ := NewMockAPI()

	predictions, err := a.SearchPlayers(context.Background(), "salah", 5)

	require.NoError(t, err)
	require.Len(t, predictions, 1)
	assert.Equal(t, 1, predictions[0].Player.ID)
	assert.Greater(t, predictions[0].BuyRecommendation, 0)
}

func TestSearchPlayers_NoMatch(t *testing.T) {
	a, _ := NewMockAPI()

	predictions, err := a.SearchPlayers(context.Background(), "zzz", 5)

	require.NoError(t, err)
	assert.NotNil(t, predictions)
	assert.Empty(t, predictions)
}

func TestSearchPlayers_FetchError(t *testing.T) {
	a, source := NewMockAPI()
	source.FetchBootstrapError = errors.New("boom")

	_, err := a.SearchPlayers(context.Background(), "salah", 5)

	assert.Error(t, err)
}

// endregion

// region GetLiveFixtures tests

func TestGetLiveFixtures_Success(t *testing.T) {
	a, source := NewMockAPI()
	kickoff := time.Date(2024, time.September, 21, 14, 0, 0, 0, time.UTC)
	event := 5
	source.EventFixtures[5] = []external.Fixture{
		{ID: 41, Event: &event, TeamH: 1, TeamA: 2, KickoffTime: &kickoff, Started: true, Minutes: 30,
			TeamHScore: intPtr(1), TeamAScore: intPtr(0)},
	}

	live, err := a.GetLiveFixtures(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, live.Matchweek)
	assert.Equal(t, MockNow(), live.LastUpdated)
	assert.Equal(t, []int{5}, source.RequestedEvents)
	require.Len(t, live.Fixtures, 1)
	assert.Equal(t, "Saturday 21 September", live.Fixtures[0].Date)
	require.Len(t, live.Fixtures[0].Matches, 1)
	match := live.Fixtures[0].Matches[0]
	assert.Equal(t, "LIV", match.HomeTeam)
	assert.Equal(t, "NFO", match.AwayTeam)
	assert.Equal(t, "30'", match.Time)
	assert.True(t, match.IsLive)
}

func TestGetLiveFixtures_NoCurrentGameweek(t *testing.T) {
	a, source := NewMockAPI()
	source.Bootstrap.Events = []external.Event{{ID: 1, IsNext: true}}

	_, err := a.GetLiveFixtures(context.Background())

	assert.True(t, errors.Is(err, logic.ErrNoCurrentEvent))
	assert.Equal(t, 0, source.EventFixturesCalls)
}

func TestGetLiveFixtures_FixturesError(t *testing.T) {
	a, source := NewMockAPI()
	source.FetchEventFixturesError = external.ErrRateLimited

	_, err := a.GetLiveFixtures(context.Background())

	assert.True(t, errors.Is(err, external.ErrRateLimited))
}

// endregion

func intPtr(v int) *int {
	return &v
}
