package league

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"league-platform/backend/internal/models"
)

func testGroups(n int) []models.Group {
	groups := make([]models.Group, 0, n)
	for i := 0; i < n; i++ {
		name := string(rune('A' + i))
		groups = append(groups, models.Group{ID: "group-" + name, Name: name})
	}
	return groups
}

// testField builds n*4 teams: one per pot per group slot, countries spread so
// every draw is feasible.
func testField(groups int) []models.Team {
	var teams []models.Team
	for pot := 1; pot <= PotCount; pot++ {
		for i := 0; i < groups; i++ {
			teams = append(teams, models.Team{
				ID:      fmt.Sprintf("team-p%d-%d", pot, i),
				Name:    fmt.Sprintf("Team P%d-%d", pot, i),
				Country: fmt.Sprintf("Country-%d-%d", pot, i),
				Pot:     pot,
			})
		}
	}
	return teams
}

func TestValidateDrawPreconditions(t *testing.T) {
	groups := testGroups(2)
	teams := testField(2)

	tests := []struct {
		name    string
		teams   []models.Team
		groups  []models.Group
		wantErr error
	}{
		{"valid", teams, groups, nil},
		{"no groups", teams, nil, ErrNoGroups},
		{"no teams", nil, groups, ErrNoTeams},
		{"count mismatch", teams[:5], groups, ErrTeamCountMismatch},
		{"country overflow", func() []models.Team {
			overloaded := make([]models.Team, len(teams))
			copy(overloaded, teams)
			for i := 0; i < 3; i++ {
				overloaded[i].Country = "Overrepresented"
			}
			return overloaded
		}(), groups, ErrCountryOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDrawPreconditions(tt.teams, tt.groups)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPerformDrawConstraints(t *testing.T) {
	groups := testGroups(8)
	teams := testField(8)

	// a few same-country pairs across pots to make the constraint bite
	teams[0].Country = "Shared-1"
	teams[8].Country = "Shared-1"
	teams[16].Country = "Shared-1"
	teams[1].Country = "Shared-2"
	teams[9].Country = "Shared-2"

	teamsByID := make(map[string]models.Team, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
	}

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 50; run++ {
		assignment, err := PerformDraw(teams, groups, rng)
		if err != nil {
			t.Fatalf("run %d: draw failed: %v", run, err)
		}
		if len(assignment) != len(groups) {
			t.Fatalf("run %d: expected %d groups, got %d", run, len(groups), len(assignment))
		}

		seen := make(map[string]bool)
		for gid, teamIDs := range assignment {
			if len(teamIDs) != TeamsPerGroup {
				t.Fatalf("run %d: group %s has %d teams", run, gid, len(teamIDs))
			}
			pots := make(map[int]bool)
			countries := make(map[string]bool)
			for index, id := range teamIDs {
				if seen[id] {
					t.Fatalf("run %d: team %s assigned twice", run, id)
				}
				seen[id] = true
				team := teamsByID[id]
				if pots[team.Pot] {
					t.Fatalf("run %d: group %s has two pot-%d teams", run, gid, team.Pot)
				}
				if countries[team.Country] {
					t.Fatalf("run %d: group %s has two %s teams", run, gid, team.Country)
				}
				pots[team.Pot] = true
				countries[team.Country] = true
				if team.Pot != index+1 {
					t.Fatalf("run %d: group %s position %d holds pot-%d team, attach order broken",
						run, gid, index, team.Pot)
				}
			}
		}
		if len(seen) != len(teams) {
			t.Fatalf("run %d: %d teams assigned, expected %d", run, len(seen), len(teams))
		}
	}
}

func TestPerformDrawExhaustsOnImpossibleField(t *testing.T) {
	groups := testGroups(2)

	// 8 teams but pots of size 3/3/1/1: pot 1 can never seed both groups
	// exactly once, so every attempt ends with a malformed group.
	var teams []models.Team
	sizes := map[int]int{1: 3, 2: 3, 3: 1, 4: 1}
	n := 0
	for pot, size := range sizes {
		for i := 0; i < size; i++ {
			teams = append(teams, models.Team{
				ID:      fmt.Sprintf("team-%d", n),
				Name:    fmt.Sprintf("Team %d", n),
				Country: fmt.Sprintf("Country-%d", n),
				Pot:     pot,
			})
			n++
		}
	}

	if err := ValidateDrawPreconditions(teams, groups); err != nil {
		t.Fatalf("preconditions should pass, got %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	_, err := PerformDraw(teams, groups, rng)
	if !errors.Is(err, ErrDrawExhausted) {
		t.Fatalf("expected ErrDrawExhausted, got %v", err)
	}
	if !IsValidationError(err) {
		t.Fatalf("exhaustion should classify as a validation error")
	}
}
