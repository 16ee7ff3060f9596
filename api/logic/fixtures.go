/* fixtures.go
 * Contains the fixture lookups: a team's next unplayed fixture, the current gameweek, and grouping a gameweek's
 * fixtures into match days for display
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"fmt"
	"time"

	"fpl-insights/api/external"
	"fpl-insights/api/shared"
)

const (
	matchDayFormat  = "Monday 2 January"
	kickoffFormat   = "15:04"
	unscheduledDate = "TBC"

	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinished = "finished"
)

var ErrNoCurrentEvent = errors.New("no current gameweek found")

// NextFixture finds the first fixture, in input order, that involves the team, is not finished and has a gameweek
// Preconditions: Receives the team id, the fixture list and the team table
// Postconditions: Returns the fixture from the team's point of view, or nil if there is none or if the opponent is not
// in the team table
func NextFixture(teamID int, fixtures []external.Fixture, teams []external.Team) *shared.NextFixture {
	for _, f := range fixtures {
		if f.TeamH != teamID && f.TeamA != teamID {
			continue
		}
		if f.Finished || f.Event == nil {
			continue
		}

		isHome := f.TeamH == teamID
		opponentID := f.TeamH
		difficulty := f.TeamADifficulty
		if isHome {
			opponentID = f.TeamA
			difficulty = f.TeamHDifficulty
		}

		opponent := FindTeam(teams, opponentID)
		if opponent == nil || *f.Event == 0 {
			return nil
		}
		if difficulty == 0 {
			difficulty = DefaultDifficulty
		}

		return &shared.NextFixture{
			Opponent:   *opponent,
			IsHome:     isHome,
			Difficulty: difficulty,
			Gameweek:   *f.Event,
		}
	}
	return nil
}

// FindTeam returns a pointer to a copy of the team with the given id, or nil if it is not in the table
func FindTeam(teams []external.Team, id int) *external.Team {
	for i := range teams {
		if teams[i].ID == id {
			team := teams[i]
			return &team
		}
	}
	return nil
}

// CurrentEvent returns the gameweek flagged as current
func CurrentEvent(events []external.Event) (external.Event, error) {
	for _, e := range events {
		if e.IsCurrent {
			return e, nil
		}
	}
	return external.Event{}, ErrNoCurrentEvent
}

// GroupMatchDays groups fixtures by the calendar day they kick off in loc, keeping the order days are first seen.
// Fixtures whose teams are not in the team table are skipped
func GroupMatchDays(fixtures []external.Fixture, teams []external.Team, loc *time.Location) []shared.MatchDay {
	if loc == nil {
		loc = time.UTC
	}

	days := make([]shared.MatchDay, 0)
	index := make(map[string]int)

	for _, f := range fixtures {
		home := FindTeam(teams, f.TeamH)
		away := FindTeam(teams, f.TeamA)
		if home == nil || away == nil {
			continue
		}

		date := unscheduledDate
		displayTime := unscheduledDate
		if f.KickoffTime != nil {
			kickoff := f.KickoffTime.In(loc)
			date = kickoff.Format(matchDayFormat)
			displayTime = kickoff.Format(kickoffFormat)
		}

		status := StatusUpcoming
		switch {
		case f.Started && !f.Finished:
			status = StatusLive
			displayTime = fmt.Sprintf("%d'", f.Minutes)
		case f.Finished:
			status = StatusFinished
			displayTime = "FT"
		}

		match := shared.Match{
			HomeTeam:  home.ShortName,
			AwayTeam:  away.ShortName,
			HomeScore: f.TeamHScore,
			AwayScore: f.TeamAScore,
			Time:      displayTime,
			Status:    status,
			IsLive:    status == StatusLive,
		}

		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, shared.MatchDay{Date: date})
		}
		days[i].Matches = append(days[i].Matches, match)
	}
	return days
}
