package league

import (
	"fmt"

	"league-platform/backend/internal/models"
)

const formWindow = 5

// WorkingSet is the in-memory collection of standings records mutated during
// one batch operation. Records are loaded once, updated in memory across the
// whole batch and flushed in a single bulk upsert at the end, so there is
// never one write per statistic per match.
type WorkingSet struct {
	records map[string]*models.GroupTeam
}

func workingSetKey(groupID, teamID string) string {
	return groupID + "/" + teamID
}

// NewWorkingSet wraps loaded standings rows. The rows are copied, so the
// caller's slice is not mutated.
func NewWorkingSet(rows []models.GroupTeam) *WorkingSet {
	ws := &WorkingSet{records: make(map[string]*models.GroupTeam, len(rows))}
	for i := range rows {
		row := rows[i]
		ws.records[workingSetKey(row.GroupID, row.TeamID)] = &row
	}
	return ws
}

// Get returns the standing record for a team within a group, or nil
func (ws *WorkingSet) Get(groupID, teamID string) *models.GroupTeam {
	return ws.records[workingSetKey(groupID, teamID)]
}

// GroupRecords returns the records belonging to one group
func (ws *WorkingSet) GroupRecords(groupID string) []*models.GroupTeam {
	var records []*models.GroupTeam
	for _, r := range ws.records {
		if r.GroupID == groupID {
			records = append(records, r)
		}
	}
	return records
}

// Records returns every record in the set, for the final bulk flush
func (ws *WorkingSet) Records() []models.GroupTeam {
	out := make([]models.GroupTeam, 0, len(ws.records))
	for _, r := range ws.records {
		out = append(out, *r)
	}
	return out
}

// ApplyResult folds one side's view of a completed match into its standing:
// played, exactly one of won/drawn/lost, points (3/1/0), goal counts, a
// recomputed goal difference and the trailing form window.
func (ws *WorkingSet) ApplyResult(groupID, teamID string, goalsFor, goalsAgainst int) error {
	record := ws.Get(groupID, teamID)
	if record == nil {
		return fmt.Errorf("%w: team %s in group %s", ErrTeamMissing, teamID, groupID)
	}

	record.Played++
	var outcome byte
	switch {
	case goalsFor > goalsAgainst:
		record.Won++
		record.Points += 3
		outcome = 'W'
	case goalsFor == goalsAgainst:
		record.Drawn++
		record.Points++
		outcome = 'D'
	default:
		record.Lost++
		outcome = 'L'
	}

	record.GoalsFor += goalsFor
	record.GoalsAgainst += goalsAgainst
	record.GoalDifference = record.GoalsFor - record.GoalsAgainst

	form := record.Form + string(outcome)
	if len(form) > formWindow {
		form = form[len(form)-formWindow:]
	}
	record.Form = form

	return nil
}

// ApplyMatch applies a completed match to both sides' records
func (ws *WorkingSet) ApplyMatch(groupID, homeTeamID, awayTeamID string, homeGoals, awayGoals int) error {
	if err := ws.ApplyResult(groupID, homeTeamID, homeGoals, awayGoals); err != nil {
		return err
	}
	return ws.ApplyResult(groupID, awayTeamID, awayGoals, homeGoals)
}

// ResetGroup zeroes every standing of a group, including form and guess.
// Used before replaying a corrected group's matches: form strings are
// order-dependent and not invertible, so corrections replay from scratch.
func (ws *WorkingSet) ResetGroup(groupID string) {
	for _, r := range ws.records {
		if r.GroupID != groupID {
			continue
		}
		r.Played = 0
		r.Won = 0
		r.Drawn = 0
		r.Lost = 0
		r.Points = 0
		r.GoalsFor = 0
		r.GoalsAgainst = 0
		r.GoalDifference = 0
		r.Form = ""
		r.Guess = 0
	}
}

// Replay re-applies already-played matches, in the order given. Callers must
// pass matches in chronological (week) order.
func (ws *WorkingSet) Replay(matches []models.Fixture) error {
	for _, m := range matches {
		if !m.Played || m.HomeGoals == nil || m.AwayGoals == nil {
			continue
		}
		if err := ws.ApplyMatch(m.GroupID, m.HomeTeamID, m.AwayTeamID, *m.HomeGoals, *m.AwayGoals); err != nil {
			return err
		}
	}
	return nil
}
