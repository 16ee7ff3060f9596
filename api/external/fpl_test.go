/* fpl_test.go
 * Contains unit tests for the FPL api client using httptest
 * Authors: Zachary Bower
 */

package external

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bootstrapJSON = `{
	"elements": [
		{"id": 1, "code": 118748, "first_name": "Mohamed", "second_name": "Salah", "web_name": "M.Salah", "team": 12,
		 "element_type": 3, "now_cost": 130, "points_per_game": "8.1", "total_points": 210, "minutes": 2700,
		 "form": "9.5", "influence": "1100.2", "creativity": "950.4", "threat": "1300.0",
		 "chance_of_playing_next_round": null},
		{"id": 2, "code": 223094, "first_name": "Erling", "second_name": "Haaland", "web_name": "Haaland", "team": 13,
		 "element_type": 4, "now_cost": 150, "points_per_game": "", "minutes": 0, "form": "0.0",
		 "chance_of_playing_next_round": 75}
	],
	"teams": [
		{"id": 12, "name": "Liverpool", "short_name": "LIV", "strength": 5},
		{"id": 13, "name": "Man City", "short_name": "MCI", "strength": 5}
	],
	"events": [
		{"id": 4, "name": "Gameweek 4", "finished": true, "is_previous": true},
		{"id": 5, "name": "Gameweek 5", "is_current": true}
	]
}`

const fixturesJSON = `[
	{"id": 41, "event": 5, "team_h": 12, "team_a": 13, "team_h_score": null, "team_a_score": null,
	 "started": false, "finished": false, "kickoff_time": "2024-09-21T14:00:00Z", "minutes": 0,
	 "team_h_difficulty": 4, "team_a_difficulty": 0},
	{"id": 300, "event": null, "team_h": 13, "team_a": 12, "kickoff_time": null,
	 "team_h_difficulty": 0, "team_a_difficulty": 5}
]`

func newTestClient(server *httptest.Server) *Client {
	return NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/",
		UserAgent:  "fpl-insights-test",
	})
}

// region FetchBootstrapStatic tests

func TestFetchBootstrapStatic_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bootstrap-static/", r.URL.Path)
		assert.Equal(t, "fpl-insights-test", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(bootstrapJSON))
	}))
	defer server.Close()

	data, err := newTestClient(server).FetchBootstrapStatic(context.Background())

	require.NoError(t, err)
	require.Len(t, data.Elements, 2)
	require.Len(t, data.Teams, 2)
	require.Len(t, data.Events, 2)

	salah := data.Elements[0]
	assert.Equal(t, "M.Salah", salah.WebName)
	assert.Equal(t, "Mohamed Salah", salah.FullName())
	assert.Equal(t, "9.5", salah.Form)
	assert.Equal(t, 130, salah.NowCost)
	assert.Nil(t, salah.ChanceOfPlayingNextRound)

	haaland := data.Elements[1]
	assert.Equal(t, "", haaland.PointsPerGame)
	require.NotNil(t, haaland.ChanceOfPlayingNextRound)
	assert.Equal(t, 75, *haaland.ChanceOfPlayingNextRound)

	assert.Equal(t, "LIV", data.Teams[0].ShortName)
	assert.True(t, data.Events[1].IsCurrent)
}

func TestFetchBootstrapStatic_MissingKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": []}`))
	}))
	defer server.Close()

	data, err := newTestClient(server).FetchBootstrapStatic(context.Background())

	require.NoError(t, err)
	assert.Nil(t, data.Elements)
	assert.Nil(t, data.Teams)
}

func TestFetchBootstrapStatic_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchBootstrapStatic(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRateLimited))
}

func TestFetchBootstrapStatic_NotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := newTestClient(server).FetchBootstrapStatic(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFetchBootstrapStatic_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("The game is being updated."))
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchBootstrapStatic(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRateLimited))
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "The game is being updated.")
}

func TestFetchBootstrapStatic_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"elements": [`))
	}))
	defer server.Close()

	_, err := newTestClient(server).FetchBootstrapStatic(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestFetchBootstrapStatic_ContextCancelled(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(bootstrapJSON))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server).FetchBootstrapStatic(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, int32(0), calls.Load())
}

// endregion

// region FetchFixtures tests

func TestFetchFixtures_FutureOnlyAndDifficultyDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("future"))
		w.Write([]byte(fixturesJSON))
	}))
	defer server.Close()

	fixtures, err := newTestClient(server).FetchFixtures(context.Background())

	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	first := fixtures[0]
	require.NotNil(t, first.Event)
	assert.Equal(t, 5, *first.Event)
	assert.Equal(t, 4, first.TeamHDifficulty)
	assert.Equal(t, DefaultDifficulty, first.TeamADifficulty)
	assert.Nil(t, first.TeamHScore)
	require.NotNil(t, first.KickoffTime)
	assert.True(t, first.KickoffTime.Equal(time.Date(2024, time.September, 21, 14, 0, 0, 0, time.UTC)))

	unscheduled := fixtures[1]
	assert.Nil(t, unscheduled.Event)
	assert.Nil(t, unscheduled.KickoffTime)
	assert.Equal(t, DefaultDifficulty, unscheduled.TeamHDifficulty)
	assert.Equal(t, 5, unscheduled.TeamADifficulty)
}

func TestFetchEventFixtures_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fixtures/", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("event"))
		assert.Empty(t, r.URL.Query().Get("future"))
		w.Write([]byte(`[{"id": 41, "event": 5, "team_h": 12, "team_a": 13, "started": true, "minutes": 67,
			"team_h_score": 1, "team_a_score": 0, "team_h_difficulty": 4, "team_a_difficulty": 3}]`))
	}))
	defer server.Close()

	fixtures, err := newTestClient(server).FetchEventFixtures(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	assert.True(t, fixtures[0].Started)
	assert.Equal(t, 67, fixtures[0].Minutes)
	require.NotNil(t, fixtures[0].TeamHScore)
	assert.Equal(t, 1, *fixtures[0].TeamHScore)
}

func TestFetchEventFixtures_InvalidEvent(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:0"})

	_, err := client.FetchEventFixtures(context.Background(), 0)

	assert.Error(t, err)
}

// endregion

// region NewClient tests

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{})

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultUserAgent, client.userAgent)
	assert.Equal(t, 20*time.Second, client.httpClient.Timeout)
}

func TestNewClient_RateLimit(t *testing.T) {
	client := NewClient(ClientConfig{RateLimit: 2, RateBurst: 0})

	assert.Equal(t, 2.0, float64(client.limiter.Limit()))
	assert.Equal(t, 1, client.limiter.Burst())
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: " https://example.com/api/ "})

	assert.Equal(t, "https://example.com/api", client.baseURL)
}

// endregion
