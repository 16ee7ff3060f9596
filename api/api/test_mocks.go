/* test_mocks.go
 * Contains a mock Source for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fpl-insights/api/external"
)

// MockSource implements the Source interface for testing
type MockSource struct {
	mu sync.Mutex

	// Data returned by the fetch methods
	Bootstrap     external.BootstrapStatic
	Fixtures      []external.Fixture
	EventFixtures map[int][]external.Fixture

	// Error injection for testing error paths
	FetchBootstrapError     error
	FetchFixturesError      error
	FetchEventFixturesError error

	// Call counts
	BootstrapCalls     int
	FixturesCalls      int
	EventFixturesCalls int
	RequestedEvents    []int
}

// NewMockSource creates a MockSource with two teams, two eligible players, one upcoming fixture and a current
// gameweek of 5
func NewMockSource() *MockSource {
	event := 5
	return &MockSource{
		Bootstrap: external.BootstrapStatic{
			Elements: []external.Player{
				{
					ID: 1, Code: 118748, FirstName: "Mohamed", SecondName: "Salah", WebName: "M.Salah",
					Team: 1, ElementType: 3, NowCost: 130, Form: "8.0", PointsPerGame: "7.5", TotalPoints: 200,
					Minutes: 2500, Influence: "900.0", Creativity: "800.0", Threat: "1200.0",
				},
				{
					ID: 2, Code: 219847, FirstName: "Chris", SecondName: "Wood", WebName: "Wood",
					Team: 2, ElementType: 4, NowCost: 65, Form: "6.0", PointsPerGame: "5.0", TotalPoints: 120,
					Minutes: 2000, Influence: "400.0", Creativity: "150.0", Threat: "700.0",
				},
				{
					ID: 3, Code: 100000, FirstName: "Benched", SecondName: "Keeper", WebName: "Keeper",
					Team: 2, ElementType: 1, NowCost: 40, Form: "0.0", PointsPerGame: "0.0",
				},
			},
			Teams: []external.Team{
				{ID: 1, Name: "Liverpool", ShortName: "LIV"},
				{ID: 2, Name: "Nott'm Forest", ShortName: "NFO"},
			},
			Events: []external.Event{
				{ID: 4, Name: "Gameweek 4", Finished: true, IsPrevious: true},
				{ID: 5, Name: "Gameweek 5", IsCurrent: true},
				{ID: 6, Name: "Gameweek 6", IsNext: true},
			},
		},
		Fixtures: []external.Fixture{
			{ID: 41, Event: &event, TeamH: 1, TeamA: 2, TeamHDifficulty: 2, TeamADifficulty: 5},
		},
		EventFixtures: map[int][]external.Fixture{
			5: {{ID: 41, Event: &event, TeamH: 1, TeamA: 2, TeamHDifficulty: 2, TeamADifficulty: 5}},
		},
	}
}

// FetchBootstrapStatic mock implementation
func (m *MockSource) FetchBootstrapStatic(ctx context.Context) (external.BootstrapStatic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BootstrapCalls++

	if err := ctx.Err(); err != nil {
		return external.BootstrapStatic{}, err
	}
	if m.FetchBootstrapError != nil {
		return external.BootstrapStatic{}, m.FetchBootstrapError
	}
	return m.Bootstrap, nil
}

// FetchFixtures mock implementation
func (m *MockSource) FetchFixtures(ctx context.Context) ([]external.Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FixturesCalls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.FetchFixturesError != nil {
		return nil, m.FetchFixturesError
	}
	return m.Fixtures, nil
}

// FetchEventFixtures mock implementation
func (m *MockSource) FetchEventFixtures(ctx context.Context, event int) ([]external.Fixture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventFixturesCalls++
	m.RequestedEvents = append(m.RequestedEvents, event)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.FetchEventFixturesError != nil {
		return nil, m.FetchEventFixturesError
	}
	fixtures, ok := m.EventFixtures[event]
	if !ok {
		return nil, fmt.Errorf("event-fixtures: %w", external.ErrNotFound)
	}
	return fixtures, nil
}

// NewMockAPI creates an API backed by a fresh MockSource, with a fixed clock
func NewMockAPI() (*API, *MockSource) {
	source := NewMockSource()
	return &API{
		Source:   source,
		Season:   "2024-25",
		Location: nil,
		Now:      MockNow,
	}, source
}

// MockNow is the clock used by NewMockAPI
func MockNow() time.Time {
	return time.Date(2024, time.September, 20, 12, 0, 0, 0, time.UTC)
}
