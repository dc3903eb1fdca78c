package league

import (
	"fmt"
	"math"
	"sort"

	"league-platform/backend/internal/models"
)

// guessEligibilityGames gates the authoritative guess: until some team in a
// group has played this many of its 6 fixtures, the signal is too thin and
// every guess in the group is forced to 0.
const guessEligibilityGames = 4

// CalculateGuesses recomputes the gated group-winner probabilities for one
// group's standings records, in place. strengths maps team ID to the opaque
// registry strength rating. When eligible, the guesses are non-negative
// integers summing to exactly 100: independent rounding can drift the sum, so
// the difference is folded into the team with the highest raw power score,
// where it is least visible.
func CalculateGuesses(records []*models.GroupTeam, strengths map[string]int) error {
	if len(records) == 0 {
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].TeamID < records[j].TeamID
	})

	maxPlayed := 0
	for _, r := range records {
		if r.Played > maxPlayed {
			maxPlayed = r.Played
		}
	}
	if maxPlayed < guessEligibilityGames {
		for _, r := range records {
			r.Guess = 0
		}
		return nil
	}

	scores := make([]float64, len(records))
	total := 0.0
	for i, r := range records {
		strength, ok := strengths[r.TeamID]
		if !ok {
			return fmt.Errorf("%w: no strength for team %s", ErrTeamMissing, r.TeamID)
		}

		remaining := float64(WeeksPerGroup - r.Played)
		strengthMultiplier := float64(strength) / 10

		// points squared so the gap between leaders widens; remaining games
		// weighted by strength keep trailing strong sides alive
		pointsEffect := float64(r.Points * r.Points)
		potential := remaining * strengthMultiplier

		powerScore := (pointsEffect+potential)*strengthMultiplier + float64(r.GoalDifference)*2
		if powerScore < 1 {
			powerScore = 1
		}
		scores[i] = powerScore
		total += powerScore
	}

	currentTotal := 0
	for i, r := range records {
		r.Guess = int(math.Round(scores[i] / total * 100))
		currentTotal += r.Guess
	}

	if currentTotal != 100 && currentTotal > 0 {
		best := 0
		for i, s := range scores {
			if s > scores[best] {
				best = i
			}
		}
		records[best].Guess += 100 - currentTotal
	}

	return nil
}

// TeamPrediction is one row of the advisory probability view
type TeamPrediction struct {
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	Probability int    `json:"probability"`
}

// AdvisoryPredictions computes the lightweight, always-available probability
// view for one group. Unlike the gated guess it has no eligibility threshold
// and tolerates rounding drift in the sum. Records must carry their Team.
func AdvisoryPredictions(records []models.GroupTeam) ([]TeamPrediction, error) {
	weights := make([]float64, len(records))
	total := 0.0
	for i, r := range records {
		if r.Team == nil {
			return nil, fmt.Errorf("%w: membership %s has no team", ErrTeamMissing, r.ID)
		}
		weight := float64(r.Points*10) + float64(r.Team.Power)*0.5 + float64(r.GoalDifference)
		if weight < 1 {
			weight = 1
		}
		weights[i] = weight
		total += weight
	}

	predictions := make([]TeamPrediction, 0, len(records))
	for i, r := range records {
		predictions = append(predictions, TeamPrediction{
			TeamID:      r.TeamID,
			TeamName:    r.Team.Name,
			Probability: int(math.Round(weights[i] / total * 100)),
		})
	}
	return predictions, nil
}
