package league

import (
	"sort"

	"github.com/google/uuid"

	"league-platform/backend/internal/models"
)

// Side is the broadcast ("TV rights") side of a group, which decides the
// weekday its matches are played on.
type Side string

const (
	SideRed  Side = "RED"
	SideBlue Side = "BLUE"
)

// scheduleMatrix pairs team indexes 0-3 for the 6 weeks of the double round
// robin: a rotated 3-week single round robin with home/away reversed for the
// second half. Every ordered pair appears exactly once.
var scheduleMatrix = [WeeksPerGroup][2][2]int{
	{{0, 3}, {1, 2}},
	{{2, 0}, {3, 1}},
	{{0, 1}, {2, 3}},
	{{3, 0}, {2, 1}},
	{{0, 2}, {1, 3}},
	{{1, 0}, {3, 2}},
}

// GenerateFixtures builds the complete fixture list for the given groups.
// memberships must carry their Team records; the team-to-index mapping within
// a group is pot order, which is the order the draw attaches teams. The
// schedule shape is fully deterministic; only the draw introduces randomness.
func GenerateFixtures(groups []models.Group, memberships []models.GroupTeam) ([]models.Fixture, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	byGroup := make(map[string][]models.GroupTeam)
	for _, gt := range memberships {
		if gt.Team == nil {
			return nil, ErrTeamMissing
		}
		byGroup[gt.GroupID] = append(byGroup[gt.GroupID], gt)
	}

	sides := assignBroadcastSides(memberships)

	var fixtures []models.Fixture
	for _, group := range groups {
		members := byGroup[group.ID]
		sort.Slice(members, func(i, j int) bool {
			return members[i].Team.Pot < members[j].Team.Pot
		})
		if len(members) != TeamsPerGroup {
			continue
		}

		side, ok := sides[group.ID]
		if !ok {
			side = SideRed
		}

		for week := 1; week <= WeeksPerGroup; week++ {
			matchDay := matchDayFor(week, side)
			for _, pair := range scheduleMatrix[week-1] {
				fixtures = append(fixtures, models.Fixture{
					ID:         uuid.New().String(),
					GroupID:    group.ID,
					Week:       week,
					MatchDay:   matchDay,
					HomeTeamID: members[pair[0]].TeamID,
					AwayTeamID: members[pair[1]].TeamID,
					Played:     false,
				})
			}
		}
	}
	return fixtures, nil
}

// assignBroadcastSides labels every group RED or BLUE, balancing the two
// sides globally and alternating within same-country team cohorts so one
// country does not cluster on a single broadcast day. Countries are walked
// largest first; within a country, records in pot order. A group keeps the
// first side it is given.
func assignBroadcastSides(memberships []models.GroupTeam) map[string]Side {
	sides := make(map[string]Side)

	byCountry := make(map[string][]models.GroupTeam)
	for _, gt := range memberships {
		if gt.Team == nil {
			continue
		}
		byCountry[gt.Team.Country] = append(byCountry[gt.Team.Country], gt)
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

	redCount, blueCount := 0, 0
	for _, country := range countries {
		records := byCountry[country]
		sort.Slice(records, func(i, j int) bool {
			if records[i].Team.Pot != records[j].Team.Pot {
				return records[i].Team.Pot < records[j].Team.Pot
			}
			return records[i].Team.Name < records[j].Team.Name
		})

		for index, record := range records {
			if _, exists := sides[record.GroupID]; exists {
				continue
			}

			var side Side
			if index%2 == 0 {
				// global greedy balance
				if redCount <= blueCount {
					side = SideRed
				} else {
					side = SideBlue
				}
			} else {
				// alternate against the cohort's previous group
				if sides[records[index-1].GroupID] == SideRed {
					side = SideBlue
				} else {
					side = SideRed
				}
			}

			sides[record.GroupID] = side
			if side == SideRed {
				redCount++
			} else {
				blueCount++
			}
		}
	}
	return sides
}

// matchDayFor derives the weekday from the broadcast side: RED groups play
// Tuesday on odd weeks and Wednesday on even weeks, BLUE groups the mirror.
func matchDayFor(week int, side Side) string {
	redTuesday := week%2 != 0
	if side == SideRed {
		if redTuesday {
			return "Tuesday"
		}
		return "Wednesday"
	}
	if redTuesday {
		return "Wednesday"
	}
	return "Tuesday"
}
