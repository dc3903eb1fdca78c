package simulation

import (
	"testing"

	"league-platform/backend/internal/models"
)

func testTeam(attack, power, defense, goalkeeper, supporter int) *models.Team {
	return &models.Team{
		Attack:     attack,
		Power:      power,
		Defense:    defense,
		Goalkeeper: goalkeeper,
		Supporter:  supporter,
	}
}

// TestSimulate_ScoresWithinBounds verifies goals are always in [0, MaxGoals]
// across the attribute extremes, including the all-zero defense case that
// exercises the division-by-zero floor.
func TestSimulate_ScoresWithinBounds(t *testing.T) {
	engine := NewEngineWithSeed(1)

	teams := []*models.Team{
		testTeam(0, 0, 0, 0, 0),
		testTeam(100, 100, 0, 0, 100),
		testTeam(0, 0, 100, 100, 0),
		testTeam(100, 100, 100, 100, 100),
	}

	forms := []float64{-1.5, 0, 1.5}

	for _, home := range teams {
		for _, away := range teams {
			for _, hf := range forms {
				for _, af := range forms {
					for i := 0; i < 200; i++ {
						hg, ag := engine.Simulate(home, away, hf, af)
						if hg < 0 || hg > MaxGoals {
							t.Fatalf("home goals out of bounds: %d", hg)
						}
						if ag < 0 || ag > MaxGoals {
							t.Fatalf("away goals out of bounds: %d", ag)
						}
					}
				}
			}
		}
	}
}

// TestSimulate_StrongerTeamScoresMore checks that over many matches a far
// stronger side outscores a far weaker one on aggregate.
func TestSimulate_StrongerTeamScoresMore(t *testing.T) {
	engine := NewEngineWithSeed(42)

	strong := testTeam(95, 96, 94, 92, 88)
	weak := testTeam(40, 40, 40, 40, 40)

	strongTotal, weakTotal := 0, 0
	for i := 0; i < 2000; i++ {
		hg, ag := engine.Simulate(strong, weak, 0, 0)
		strongTotal += hg
		weakTotal += ag
	}

	if strongTotal <= weakTotal {
		t.Errorf("expected stronger side to outscore over 2000 matches, got %d vs %d", strongTotal, weakTotal)
	}
}

func TestGoalsFromXG_ZeroXGMeansNoGoals(t *testing.T) {
	engine := NewEngineWithSeed(7)
	for i := 0; i < 100; i++ {
		if goals := engine.goalsFromXG(0); goals != 0 {
			t.Fatalf("expected 0 goals for zero xG, got %d", goals)
		}
	}
}

func TestGoalsFromXG_CeilingHolds(t *testing.T) {
	engine := NewEngineWithSeed(7)
	// Probability stays >1 until well past the ceiling
	for i := 0; i < 100; i++ {
		if goals := engine.goalsFromXG(1000); goals != MaxGoals {
			t.Fatalf("expected ceiling of %d goals for huge xG, got %d", MaxGoals, goals)
		}
	}
}

func TestFormBonus(t *testing.T) {
	tests := []struct {
		name string
		form string
		want float64
	}{
		{"empty form", "", 0},
		{"single win", "W", 0.5},
		{"single loss", "L", -0.5},
		{"draws ignored", "DDD", 0},
		{"three wins", "WWW", 1.5},
		{"three losses", "LLL", -1.5},
		{"only last three count", "WWLLL", -1.5},
		{"mixed tail", "LLWDW", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormBonus(tt.form); got != tt.want {
				t.Errorf("FormBonus(%q) = %v, want %v", tt.form, got, tt.want)
			}
		})
	}
}
