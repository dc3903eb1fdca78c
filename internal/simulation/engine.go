package simulation

import (
	"math/rand"
	"time"

	"league-platform/backend/internal/models"
)

// Rating model constants. These are design constants tuned for realistic
// scorelines, not values derived from data.
const (
	attackWeight    = 0.6
	powerWeight     = 0.6
	supporterWeight = 0.1
	formWeight      = 2.0

	defenseWeight    = 0.7
	goalkeeperWeight = 0.3
	homeDefenseBonus = 5.0

	homeMultiplier = 1.4
	awayMultiplier = 1.2

	// MaxGoals is the hard ceiling on goals per side in a single match
	MaxGoals = 9
)

// Engine computes a scoreline for one fixture from both teams' attributes
// and their current form bonuses.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine seeded from the current time
func NewEngine() *Engine {
	return NewEngineWithSeed(time.Now().UnixNano())
}

// NewEngineWithSeed creates an engine with a fixed seed, for reproducible runs
func NewEngineWithSeed(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// Simulate returns (homeGoals, awayGoals) for a match between home and away.
// Both counts are independent draws from the decaying-probability process in
// goalsFromXG; each is in [0, MaxGoals].
func (e *Engine) Simulate(home, away *models.Team, homeForm, awayForm float64) (int, int) {
	homeAttack := float64(home.Attack)*attackWeight +
		float64(home.Power)*powerWeight +
		float64(home.Supporter)*supporterWeight +
		homeForm*formWeight
	awayAttack := float64(away.Attack)*attackWeight +
		float64(away.Power)*powerWeight +
		awayForm*formWeight

	homeDefense := float64(home.Defense)*defenseWeight +
		float64(home.Goalkeeper)*goalkeeperWeight +
		homeDefenseBonus
	awayDefense := float64(away.Defense)*defenseWeight +
		float64(away.Goalkeeper)*goalkeeperWeight

	homeXG := homeAttack / max1(awayDefense) * homeMultiplier
	awayXG := awayAttack / max1(homeDefense) * awayMultiplier

	return e.goalsFromXG(homeXG), e.goalsFromXG(awayXG)
}

// goalsFromXG converts an expected-goals estimate into an integer goal count.
// Starting at zero, each additional goal is scored with probability
// xg/(goals+1.5); the first failed draw (or the MaxGoals ceiling) stops the
// process. The expectation tracks xg but this is deliberately not a Poisson
// draw.
func (e *Engine) goalsFromXG(xg float64) int {
	goals := 0
	for {
		probability := xg / (float64(goals) + 1.5)
		if e.rng.Float64() >= probability {
			break
		}
		goals++
		if goals >= MaxGoals {
			break
		}
	}
	return goals
}

// FormBonus computes the momentum bonus from a team's form string: +0.5 per
// win and -0.5 per loss over the trailing up-to-3 results. Empty form means
// no bonus.
func FormBonus(form string) float64 {
	if form == "" {
		return 0
	}
	lastThree := form
	if len(lastThree) > 3 {
		lastThree = lastThree[len(lastThree)-3:]
	}
	bonus := 0.0
	for _, c := range lastThree {
		switch c {
		case 'W':
			bonus += 0.5
		case 'L':
			bonus -= 0.5
		}
	}
	return bonus
}

// defense denominators are floored at 1 to avoid division by zero
func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
