package league

import (
	"fmt"
	"log"
	"math/rand"
	"sort"

	"league-platform/backend/internal/models"
)

const (
	// TeamsPerGroup is the fixed group size
	TeamsPerGroup = 4
	// WeeksPerGroup is the length of the double round robin for 4 teams
	WeeksPerGroup = 6
	// PotCount is the number of seeding tiers
	PotCount = 4

	maxDrawAttempts = 100
)

// Assignment maps a group ID to its drawn team IDs, in attach order. The
// attach order is significant: it is the team-to-index mapping used by the
// fixture schedule matrix.
type Assignment map[string][]string

// ValidateDrawPreconditions fails fast on inputs for which no valid draw can
// exist: missing groups or teams, a team count other than groups x 4, or any
// country holding more teams than there are groups (pigeonhole).
func ValidateDrawPreconditions(teams []models.Team, groups []models.Group) error {
	if len(groups) == 0 {
		return ErrNoGroups
	}
	if len(teams) == 0 {
		return ErrNoTeams
	}

	expected := len(groups) * TeamsPerGroup
	if len(teams) != expected {
		return fmt.Errorf("%w: expected %d teams, have %d", ErrTeamCountMismatch, expected, len(teams))
	}

	countryCounts := make(map[string]int)
	for _, t := range teams {
		countryCounts[t.Country]++
	}
	for country, count := range countryCounts {
		if count > len(groups) {
			return fmt.Errorf("%w: %s has %d teams for %d groups", ErrCountryOverflow, country, count, len(groups))
		}
	}

	return nil
}

// PerformDraw assigns every team to a group so that no group holds two teams
// of the same pot or the same country. The per-team choice is greedy with no
// backtracking, so an attempt can dead-end; the whole pot-by-pot procedure is
// restarted with fresh shuffles, up to maxDrawAttempts, before giving up.
func PerformDraw(teams []models.Team, groups []models.Group, rng *rand.Rand) (Assignment, error) {
	var lastErr error
	for attempt := 1; attempt <= maxDrawAttempts; attempt++ {
		assignment, err := drawOnce(teams, groups, rng)
		if err == nil {
			log.Printf("[DRAW] draw succeeded on attempt %d", attempt)
			return assignment, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w: %v", ErrDrawExhausted, lastErr)
}

// drawOnce is a single attempt of the full 4-pot procedure
func drawOnce(teams []models.Team, groups []models.Group, rng *rand.Rand) (Assignment, error) {
	assigned := make(map[string][]models.Team, len(groups))
	groupIDs := make([]string, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
		assigned[g.ID] = nil
	}

	pots := make(map[int][]models.Team)
	for _, t := range teams {
		pots[t.Pot] = append(pots[t.Pot], t)
	}

	if err := drawPotOne(pots[1], groupIDs, assigned, rng); err != nil {
		return nil, err
	}
	for pot := 2; pot <= PotCount; pot++ {
		if err := drawPotWithCountryPriority(pots[pot], groupIDs, assigned, rng); err != nil {
			return nil, err
		}
	}

	assignment := make(Assignment, len(groupIDs))
	for _, gid := range groupIDs {
		if len(assigned[gid]) != TeamsPerGroup {
			return nil, fmt.Errorf("%w: group %s has %d teams", errNoValidGroup, gid, len(assigned[gid]))
		}
		ids := make([]string, 0, TeamsPerGroup)
		for _, t := range assigned[gid] {
			ids = append(ids, t.ID)
		}
		assignment[gid] = ids
	}
	return assignment, nil
}

// drawPotOne shuffles pot 1 and deals one team per group, seeding every group
// with exactly one top-seeded team.
func drawPotOne(pot []models.Team, groupIDs []string, assigned map[string][]models.Team, rng *rand.Rand) error {
	if len(pot) < len(groupIDs) {
		return fmt.Errorf("%w: pot 1 has %d teams for %d groups", errNoValidGroup, len(pot), len(groupIDs))
	}
	shuffled := shuffleTeams(pot, rng)
	for i, gid := range groupIDs {
		assigned[gid] = append(assigned[gid], shuffled[i])
	}
	return nil
}

// drawPotWithCountryPriority places one pot's teams country by country,
// largest country first, so the hardest-to-place teams go early. Within a
// country teams are shuffled and each picks uniformly among its valid groups.
func drawPotWithCountryPriority(pot []models.Team, groupIDs []string, assigned map[string][]models.Team, rng *rand.Rand) error {
	byCountry := make(map[string][]models.Team)
	for _, t := range pot {
		byCountry[t.Country] = append(byCountry[t.Country], t)
	}

	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Slice(countries, func(i, j int) bool {
		if len(byCountry[countries[i]]) != len(byCountry[countries[j]]) {
			return len(byCountry[countries[i]]) > len(byCountry[countries[j]])
		}
		return countries[i] < countries[j]
	})

	for _, country := range countries {
		for _, team := range shuffleTeams(byCountry[country], rng) {
			valid := validGroupsForTeam(team, groupIDs, assigned)
			if len(valid) == 0 {
				return fmt.Errorf("%w: pot %d team %s (%s)", errNoValidGroup, team.Pot, team.Name, team.Country)
			}
			gid := valid[rng.Intn(len(valid))]
			assigned[gid] = append(assigned[gid], team)
		}
	}
	return nil
}

// validGroupsForTeam returns the groups that are not full and contain no
// existing member sharing the team's pot or country.
func validGroupsForTeam(team models.Team, groupIDs []string, assigned map[string][]models.Team) []string {
	var valid []string
	for _, gid := range groupIDs {
		members := assigned[gid]
		if len(members) >= TeamsPerGroup {
			continue
		}
		conflict := false
		for _, existing := range members {
			if existing.Pot == team.Pot || existing.Country == team.Country {
				conflict = true
				break
			}
		}
		if !conflict {
			valid = append(valid, gid)
		}
	}
	return valid
}

func shuffleTeams(teams []models.Team, rng *rand.Rand) []models.Team {
	shuffled := make([]models.Team, len(teams))
	copy(shuffled, teams)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
