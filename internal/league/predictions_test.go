package league

import (
	"errors"
	"testing"

	"league-platform/backend/internal/models"
)

func predictionRecords() ([]*models.GroupTeam, map[string]int) {
	records := []*models.GroupTeam{
		{ID: "gt-1", GroupID: "g1", TeamID: "t1", Played: 4, Points: 10, GoalsFor: 9, GoalsAgainst: 3, GoalDifference: 6},
		{ID: "gt-2", GroupID: "g1", TeamID: "t2", Played: 4, Points: 7, GoalsFor: 6, GoalsAgainst: 5, GoalDifference: 1},
		{ID: "gt-3", GroupID: "g1", TeamID: "t3", Played: 4, Points: 4, GoalsFor: 4, GoalsAgainst: 6, GoalDifference: -2},
		{ID: "gt-4", GroupID: "g1", TeamID: "t4", Played: 4, Points: 1, GoalsFor: 2, GoalsAgainst: 7, GoalDifference: -5},
	}
	strengths := map[string]int{"t1": 95, "t2": 85, "t3": 75, "t4": 70}
	return records, strengths
}

func TestCalculateGuessesSumsToExactlyHundred(t *testing.T) {
	records, strengths := predictionRecords()
	if err := CalculateGuesses(records, strengths); err != nil {
		t.Fatalf("calculate failed: %v", err)
	}

	sum := 0
	for _, r := range records {
		if r.Guess < 0 {
			t.Fatalf("team %s has negative guess %d", r.TeamID, r.Guess)
		}
		sum += r.Guess
	}
	if sum != 100 {
		t.Fatalf("guesses sum to %d, expected exactly 100", sum)
	}
}

func TestCalculateGuessesOrdersByStrengthOfPosition(t *testing.T) {
	records, strengths := predictionRecords()
	if err := CalculateGuesses(records, strengths); err != nil {
		t.Fatalf("calculate failed: %v", err)
	}

	byTeam := make(map[string]int)
	for _, r := range records {
		byTeam[r.TeamID] = r.Guess
	}
	if !(byTeam["t1"] > byTeam["t2"] && byTeam["t2"] > byTeam["t3"] && byTeam["t3"] > byTeam["t4"]) {
		t.Fatalf("guesses not monotone in table position: %v", byTeam)
	}
}

func TestCalculateGuessesGatedBeforeFourGames(t *testing.T) {
	records, strengths := predictionRecords()
	for _, r := range records {
		r.Played = 3
		r.Guess = 55 // stale value must be cleared
	}
	if err := CalculateGuesses(records, strengths); err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	for _, r := range records {
		if r.Guess != 0 {
			t.Fatalf("team %s has guess %d before eligibility", r.TeamID, r.Guess)
		}
	}
}

func TestCalculateGuessesGateOpensOnMaxPlayed(t *testing.T) {
	// one team at 4 games is enough even if others lag (a correction can
	// leave played counts uneven)
	records, strengths := predictionRecords()
	records[1].Played = 3
	records[2].Played = 3
	if err := CalculateGuesses(records, strengths); err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	sum := 0
	for _, r := range records {
		sum += r.Guess
	}
	if sum != 100 {
		t.Fatalf("guesses sum to %d, expected 100", sum)
	}
}

func TestCalculateGuessesMissingStrength(t *testing.T) {
	records, strengths := predictionRecords()
	delete(strengths, "t3")
	err := CalculateGuesses(records, strengths)
	if !errors.Is(err, ErrTeamMissing) {
		t.Fatalf("expected ErrTeamMissing, got %v", err)
	}
}

func TestCalculateGuessesEmptyInput(t *testing.T) {
	if err := CalculateGuesses(nil, nil); err != nil {
		t.Fatalf("expected nil error on empty input, got %v", err)
	}
}

func TestAdvisoryPredictions(t *testing.T) {
	records := []models.GroupTeam{
		{ID: "gt-1", TeamID: "t1", Points: 9, GoalDifference: 5, Team: &models.Team{ID: "t1", Name: "Leaders", Power: 90}},
		{ID: "gt-2", TeamID: "t2", Points: 4, GoalDifference: -1, Team: &models.Team{ID: "t2", Name: "Middle", Power: 80}},
		{ID: "gt-3", TeamID: "t3", Points: 1, GoalDifference: -4, Team: &models.Team{ID: "t3", Name: "Trailing", Power: 70}},
	}

	predictions, err := AdvisoryPredictions(records)
	if err != nil {
		t.Fatalf("advisory failed: %v", err)
	}
	if len(predictions) != 3 {
		t.Fatalf("expected 3 predictions, got %d", len(predictions))
	}

	byTeam := make(map[string]int)
	for _, p := range predictions {
		if p.Probability < 0 || p.Probability > 100 {
			t.Fatalf("probability %d out of range", p.Probability)
		}
		byTeam[p.TeamID] = p.Probability
	}
	if !(byTeam["t1"] > byTeam["t2"] && byTeam["t2"] > byTeam["t3"]) {
		t.Fatalf("advisory view not monotone: %v", byTeam)
	}
}

func TestAdvisoryPredictionsZeroState(t *testing.T) {
	// fresh table: probabilities come from power alone, no gate
	records := []models.GroupTeam{
		{ID: "gt-1", TeamID: "t1", Team: &models.Team{ID: "t1", Name: "A", Power: 90}},
		{ID: "gt-2", TeamID: "t2", Team: &models.Team{ID: "t2", Name: "B", Power: 60}},
	}
	predictions, err := AdvisoryPredictions(records)
	if err != nil {
		t.Fatalf("advisory failed: %v", err)
	}
	if predictions[0].Probability <= predictions[1].Probability {
		t.Fatalf("stronger team should lead on a fresh table: %+v", predictions)
	}
	if predictions[0].Probability == 0 {
		t.Fatalf("ungated view must not be zeroed on a fresh table")
	}
}

func TestAdvisoryPredictionsRequiresTeam(t *testing.T) {
	records := []models.GroupTeam{{ID: "gt-1", TeamID: "t1"}}
	if _, err := AdvisoryPredictions(records); !errors.Is(err, ErrTeamMissing) {
		t.Fatalf("expected ErrTeamMissing, got %v", err)
	}
}
