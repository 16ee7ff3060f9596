/* api.go
 * This file contains the public methods for interacting with this package. Consumers (the web server and the discord
 * bot) should only call the methods in this file, not the logic and external sub packages directly. Every call fetches
 * fresh data from the source, nothing is kept between calls
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"time"

	"fpl-insights/api/external"
	"fpl-insights/api/logic"
	"fpl-insights/api/shared"
	"fpl-insights/logger"
)

// API provides methods for getting player predictions and fixtures
type API struct {
	Source   Source
	Season   string
	Location *time.Location   // used when grouping fixtures into match days
	Now      func() time.Time // stamps LastUpdated, replaced in tests
}

// NewAPI creates a new API instance with the provided source
// Preconditions: Receives a non nil source, the season label and the location to display kickoff times in (nil uses UTC)
// Postconditions: Returns the API, or an error if the source is missing
func NewAPI(source Source, season string, location *time.Location) (*API, error) {
	if source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if location == nil {
		location = time.UTC
	}
	return &API{
		Source:   source,
		Season:   season,
		Location: location,
		Now:      time.Now,
	}, nil
}

// GetTopPlayers fetches the latest players, teams and fixtures and ranks them
// Preconditions: Receives the request context
// Postconditions: Returns the diversified top list and the budget and premium suggestions, or an error if either fetch
// fails or the bootstrap payload is missing players or teams
func (a *API) GetTopPlayers(ctx context.Context) (shared.TopPlayers, error) {
	data, fixtures, err := a.fetchAll(ctx)
	if err != nil {
		return shared.TopPlayers{}, err
	}

	top, err := logic.ComputeTopPlayers(data.Elements, data.Teams, fixtures)
	if err != nil {
		return shared.TopPlayers{}, err
	}
	top.Season = a.Season
	top.LastUpdated = a.now()

	logger.FromContext(ctx).Debug("Computed top players",
		"players", len(data.Elements),
		"selected", len(top.AllPlayers))
	return top, nil
}

// GetPlayer returns the prediction for a single player, whether or not they would be eligible for the top list
// Preconditions: Receives the request context and the FPL element id
// Postconditions: Returns the prediction, ErrPlayerNotFound if no player has that id, or a fetch error
func (a *API) GetPlayer(ctx context.Context, id int) (shared.PlayerPrediction, error) {
	data, fixtures, err := a.fetchAll(ctx)
	if err != nil {
		return shared.PlayerPrediction{}, err
	}
	if data.Elements == nil {
		return shared.PlayerPrediction{}, logic.ErrMissingPlayers
	}

	for _, player := range data.Elements {
		if player.ID == id {
			return logic.Predict(player, data.Teams, fixtures), nil
		}
	}
	return shared.PlayerPrediction{}, fmt.Errorf("player %d: %w", id, ErrPlayerNotFound)
}

// SearchPlayers looks players up by name
// Preconditions: Receives the request context, the name to search for and the max number of results
// Postconditions: Returns predictions for the closest matches in order, an empty slice when nothing matches, or a
// fetch error
func (a *API) SearchPlayers(ctx context.Context, query string, limit int) ([]shared.PlayerPrediction, error) {
	data, fixtures, err := a.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if data.Elements == nil {
		return nil, logic.ErrMissingPlayers
	}

	matches := logic.SearchPlayers(query, data.Elements, limit)
	predictions := make([]shared.PlayerPrediction, 0, len(matches))
	for _, player := range matches {
		predictions = append(predictions, logic.Predict(player, data.Teams, fixtures))
	}
	return predictions, nil
}

// GetLiveFixtures returns the fixtures of the current gameweek grouped by the day they kick off
// Preconditions: Receives the request context
// Postconditions: Returns the gameweek and its match days, or an error if there is no current gameweek or a fetch fails
func (a *API) GetLiveFixtures(ctx context.Context) (shared.LiveFixtures, error) {
	data, err := a.Source.FetchBootstrapStatic(ctx)
	if err != nil {
		return shared.LiveFixtures{}, fmt.Errorf("failed to fetch bootstrap data: %w", err)
	}
	if data.Teams == nil {
		return shared.LiveFixtures{}, logic.ErrMissingTeams
	}

	current, err := logic.CurrentEvent(data.Events)
	if err != nil {
		return shared.LiveFixtures{}, err
	}

	fixtures, err := a.Source.FetchEventFixtures(ctx, current.ID)
	if err != nil {
		return shared.LiveFixtures{}, fmt.Errorf("failed to fetch fixtures for gameweek %d: %w", current.ID, err)
	}

	return shared.LiveFixtures{
		Matchweek:   current.ID,
		Fixtures:    logic.GroupMatchDays(fixtures, data.Teams, a.Location),
		LastUpdated: a.now(),
	}, nil
}

// fetchAll gets the bootstrap data and upcoming fixtures. Either failing fails the whole request
func (a *API) fetchAll(ctx context.Context) (external.BootstrapStatic, []external.Fixture, error) {
	data, err := a.Source.FetchBootstrapStatic(ctx)
	if err != nil {
		return external.BootstrapStatic{}, nil, fmt.Errorf("failed to fetch bootstrap data: %w", err)
	}

	fixtures, err := a.Source.FetchFixtures(ctx)
	if err != nil {
		return external.BootstrapStatic{}, nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}
	return data, fixtures, nil
}

func (a *API) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
