package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"league-platform/backend/internal/models"
	"league-platform/backend/internal/simulation"
)

const (
	leagueLockKey       = "league:simulation"
	predictionsCacheKey = "league:predictions"
	predictionsCacheTTL = 30 * time.Second
)

// Locker serializes mutating batch operations across service instances
type Locker interface {
	WithLock(ctx context.Context, key string, fn func() error) error
}

// Cache is the read-through cache used for the advisory predictions view
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service orchestrates the tournament: draw, fixtures, simulation batches,
// score corrections and the read views. Standings mutations go through an
// in-memory working set and are flushed once per operation.
type Service struct {
	db     *gorm.DB
	engine *simulation.Engine
	rng    *rand.Rand
	locks  Locker
	cache  Cache
}

// NewService creates a service with a time-seeded random source
func NewService(db *gorm.DB) *Service {
	return NewServiceWithSeed(db, time.Now().UnixNano())
}

// NewServiceWithSeed creates a service with a fixed seed, for reproducible runs
func NewServiceWithSeed(db *gorm.DB, seed int64) *Service {
	return &Service{
		db:     db,
		engine: simulation.NewEngineWithSeed(seed),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SetLocker attaches a distributed lock manager; without one, batch
// operations run unserialized (fine for a single instance).
func (s *Service) SetLocker(l Locker) {
	s.locks = l
}

// SetCache attaches a cache for the advisory predictions view
func (s *Service) SetCache(c Cache) {
	s.cache = c
}

func (s *Service) withLeagueLock(ctx context.Context, fn func() error) error {
	if s.locks == nil {
		return fn()
	}
	return s.locks.WithLock(ctx, leagueLockKey, fn)
}

func (s *Service) invalidatePredictions(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, predictionsCacheKey); err != nil {
		log.Printf("[LEAGUE] failed to invalidate predictions cache: %v", err)
	}
}

// DrawGroups runs the constrained draw and replaces all group memberships.
// Existing fixtures are cleared too: they reference the previous assignment.
func (s *Service) DrawGroups(ctx context.Context) ([]GroupView, error) {
	var result []GroupView
	err := s.withLeagueLock(ctx, func() error {
		var teams []models.Team
		if err := s.db.WithContext(ctx).Find(&teams).Error; err != nil {
			return fmt.Errorf("loading teams: %w", err)
		}
		groups, err := s.loadGroups(ctx)
		if err != nil {
			return err
		}
		if err := ValidateDrawPreconditions(teams, groups); err != nil {
			return err
		}

		assignment, err := PerformDraw(teams, groups, s.rng)
		if err != nil {
			return err
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.GroupTeam{}).Error; err != nil {
				return fmt.Errorf("clearing memberships: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&models.Fixture{}).Error; err != nil {
				return fmt.Errorf("clearing fixtures: %w", err)
			}

			rows := make([]models.GroupTeam, 0, len(teams))
			for _, g := range groups {
				for _, teamID := range assignment[g.ID] {
					rows = append(rows, models.GroupTeam{
						ID:      uuid.New().String(),
						GroupID: g.ID,
						TeamID:  teamID,
					})
				}
			}
			return tx.Create(&rows).Error
		})
		if err != nil {
			return err
		}

		s.invalidatePredictions(ctx)
		result, err = s.GetGroups(ctx)
		return err
	})
	return result, err
}

// GenerateFixtures replaces the full fixture list for the current draw
func (s *Service) GenerateFixtures(ctx context.Context) ([]WeekFixtures, error) {
	var result []WeekFixtures
	err := s.withLeagueLock(ctx, func() error {
		groups, err := s.loadGroups(ctx)
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			return ErrNoGroups
		}
		memberships, err := s.loadMemberships(ctx)
		if err != nil {
			return err
		}
		if len(memberships) == 0 {
			return ErrNoTeams
		}

		fixtures, err := GenerateFixtures(groups, memberships)
		if err != nil {
			return err
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.Fixture{}).Error; err != nil {
				return fmt.Errorf("clearing fixtures: %w", err)
			}
			return tx.CreateInBatches(fixtures, 100).Error
		})
		if err != nil {
			return err
		}

		log.Printf("[LEAGUE] generated %d fixtures for %d groups", len(fixtures), len(groups))
		result, err = s.GetFixtures(ctx)
		return err
	})
	return result, err
}

// PlayNextMatch simulates the single next unplayed match: the lowest
// unplayed week, one match. When that match completes its week, every
// group's winner guesses are recomputed in the same flush.
func (s *Service) PlayNextMatch(ctx context.Context) (*MatchOutcome, error) {
	var outcome *MatchOutcome
	err := s.withLeagueLock(ctx, func() error {
		week, err := s.nextUnplayedWeek(ctx)
		if err != nil {
			if errors.Is(err, ErrNoUnplayedWeek) {
				return ErrNoUnplayedMatch
			}
			return err
		}

		var match models.Fixture
		err = s.db.WithContext(ctx).
			Preload("HomeTeam").Preload("AwayTeam").Preload("Group").
			Where("played = ? AND week = ?", false, week).
			Order("match_day asc, id asc").
			First(&match).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoUnplayedMatch
			}
			return fmt.Errorf("loading next match: %w", err)
		}
		if match.HomeTeam == nil || match.AwayTeam == nil || match.Group == nil {
			return fmt.Errorf("%w: fixture %s", ErrTeamMissing, match.ID)
		}

		rows, err := s.loadMembershipRows(ctx)
		if err != nil {
			return err
		}
		ws := NewWorkingSet(rows)
		homeRec := ws.Get(match.GroupID, match.HomeTeamID)
		awayRec := ws.Get(match.GroupID, match.AwayTeamID)
		if homeRec == nil || awayRec == nil {
			return fmt.Errorf("%w: fixture %s standings", ErrTeamMissing, match.ID)
		}

		homeGoals, awayGoals := s.engine.Simulate(
			match.HomeTeam, match.AwayTeam,
			simulation.FormBonus(homeRec.Form), simulation.FormBonus(awayRec.Form),
		)
		if err := ws.ApplyMatch(match.GroupID, match.HomeTeamID, match.AwayTeamID, homeGoals, awayGoals); err != nil {
			return err
		}

		var remaining int64
		err = s.db.WithContext(ctx).Model(&models.Fixture{}).
			Where("played = ? AND week = ? AND id <> ?", false, week, match.ID).
			Count(&remaining).Error
		if err != nil {
			return fmt.Errorf("counting remaining matches: %w", err)
		}
		isLast := remaining == 0

		if isLast {
			if err := s.recomputeGuesses(ctx, ws, rows); err != nil {
				return err
			}
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			update := map[string]interface{}{
				"home_goals": homeGoals,
				"away_goals": awayGoals,
				"played":     true,
			}
			if err := tx.Model(&models.Fixture{}).Where("id = ?", match.ID).Updates(update).Error; err != nil {
				return fmt.Errorf("saving match result: %w", err)
			}
			return s.upsertStandings(tx, ws.Records())
		})
		if err != nil {
			return err
		}

		s.invalidatePredictions(ctx)
		log.Printf("[SIM] week %d: %s %d - %d %s", week, match.HomeTeam.Name, homeGoals, awayGoals, match.AwayTeam.Name)

		match.HomeGoals = &homeGoals
		match.AwayGoals = &awayGoals
		match.Played = true
		outcome = &MatchOutcome{
			Match:            fixtureView(match),
			Week:             week,
			RemainingMatches: int(remaining),
			IsLastMatch:      isLast,
		}
		return nil
	})
	return outcome, err
}

// PlayNextWeek simulates every unplayed match of the lowest unplayed week as
// one atomic batch and recomputes all winner guesses.
func (s *Service) PlayNextWeek(ctx context.Context) (*WeekOutcome, error) {
	var outcome *WeekOutcome
	err := s.withLeagueLock(ctx, func() error {
		var err error
		outcome, err = s.playNextWeek(ctx)
		return err
	})
	return outcome, err
}

func (s *Service) playNextWeek(ctx context.Context) (*WeekOutcome, error) {
	week, err := s.nextUnplayedWeek(ctx)
	if err != nil {
		return nil, err
	}

	var matches []models.Fixture
	err = s.db.WithContext(ctx).
		Preload("HomeTeam").Preload("AwayTeam").Preload("Group").
		Where("played = ? AND week = ?", false, week).
		Order("group_id asc, id asc").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("loading week %d fixtures: %w", week, err)
	}

	rows, err := s.loadMembershipRows(ctx)
	if err != nil {
		return nil, err
	}
	ws := NewWorkingSet(rows)

	for i := range matches {
		m := &matches[i]
		if m.HomeTeam == nil || m.AwayTeam == nil {
			return nil, fmt.Errorf("%w: fixture %s", ErrTeamMissing, m.ID)
		}
		homeRec := ws.Get(m.GroupID, m.HomeTeamID)
		awayRec := ws.Get(m.GroupID, m.AwayTeamID)
		if homeRec == nil || awayRec == nil {
			return nil, fmt.Errorf("%w: fixture %s standings", ErrTeamMissing, m.ID)
		}

		homeGoals, awayGoals := s.engine.Simulate(
			m.HomeTeam, m.AwayTeam,
			simulation.FormBonus(homeRec.Form), simulation.FormBonus(awayRec.Form),
		)
		m.HomeGoals = &homeGoals
		m.AwayGoals = &awayGoals
		m.Played = true
		if err := ws.ApplyMatch(m.GroupID, m.HomeTeamID, m.AwayTeamID, homeGoals, awayGoals); err != nil {
			return nil, err
		}
	}

	if err := s.recomputeGuesses(ctx, ws, rows); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range matches {
			m := matches[i]
			update := map[string]interface{}{
				"home_goals": *m.HomeGoals,
				"away_goals": *m.AwayGoals,
				"played":     true,
			}
			if err := tx.Model(&models.Fixture{}).Where("id = ?", m.ID).Updates(update).Error; err != nil {
				return fmt.Errorf("saving match result: %w", err)
			}
		}
		return s.upsertStandings(tx, ws.Records())
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePredictions(ctx)
	log.Printf("[SIM] played week %d (%d matches)", week, len(matches))

	results := make([]FixtureView, 0, len(matches))
	for _, m := range matches {
		results = append(results, fixtureView(m))
	}
	return &WeekOutcome{Week: week, Results: results}, nil
}

// PlayAllWeeks simulates every remaining week, in order
func (s *Service) PlayAllWeeks(ctx context.Context) ([]WeekOutcome, error) {
	var outcomes []WeekOutcome
	err := s.withLeagueLock(ctx, func() error {
		for {
			outcome, err := s.playNextWeek(ctx)
			if errors.Is(err, ErrNoUnplayedWeek) {
				if len(outcomes) == 0 {
					return ErrNoUnplayedWeek
				}
				return nil
			}
			if err != nil {
				return err
			}
			outcomes = append(outcomes, *outcome)
		}
	})
	return outcomes, err
}

// CorrectMatch overrides a match's score and rebuilds its group's standings
// by replaying the group's played matches in week order. Form strings are not
// invertible, so the group is zeroed and replayed rather than patched.
func (s *Service) CorrectMatch(ctx context.Context, matchID string, homeGoals, awayGoals int) (*FixtureView, error) {
	var view *FixtureView
	err := s.withLeagueLock(ctx, func() error {
		var match models.Fixture
		err := s.db.WithContext(ctx).
			Preload("HomeTeam").Preload("AwayTeam").Preload("Group").
			Where("id = ?", matchID).
			First(&match).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
			}
			return fmt.Errorf("loading match: %w", err)
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			update := map[string]interface{}{
				"home_goals": homeGoals,
				"away_goals": awayGoals,
				"played":     true,
			}
			if err := tx.Model(&models.Fixture{}).Where("id = ?", match.ID).Updates(update).Error; err != nil {
				return fmt.Errorf("saving correction: %w", err)
			}

			var rows []models.GroupTeam
			if err := tx.Where("group_id = ?", match.GroupID).Find(&rows).Error; err != nil {
				return fmt.Errorf("loading group standings: %w", err)
			}
			ws := NewWorkingSet(rows)
			ws.ResetGroup(match.GroupID)

			var played []models.Fixture
			err := tx.Where("group_id = ? AND played = ?", match.GroupID, true).
				Order("week asc, id asc").
				Find(&played).Error
			if err != nil {
				return fmt.Errorf("loading played matches: %w", err)
			}
			if err := ws.Replay(played); err != nil {
				return err
			}

			strengths, err := s.loadStrengths(tx)
			if err != nil {
				return err
			}
			if err := CalculateGuesses(ws.GroupRecords(match.GroupID), strengths); err != nil {
				return err
			}
			return s.upsertStandings(tx, ws.Records())
		})
		if err != nil {
			return err
		}

		s.invalidatePredictions(ctx)
		log.Printf("[LEAGUE] corrected match %s to %d - %d", match.ID, homeGoals, awayGoals)

		match.HomeGoals = &homeGoals
		match.AwayGoals = &awayGoals
		match.Played = true
		v := fixtureView(match)
		view = &v
		return nil
	})
	return view, err
}

// ResetLeague clears every result and standing, keeping the draw and the
// fixture schedule in place.
func (s *Service) ResetLeague(ctx context.Context) error {
	return s.withLeagueLock(ctx, func() error {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			fixtureReset := map[string]interface{}{
				"home_goals": nil,
				"away_goals": nil,
				"played":     false,
			}
			if err := tx.Model(&models.Fixture{}).Where("1 = 1").Updates(fixtureReset).Error; err != nil {
				return fmt.Errorf("resetting fixtures: %w", err)
			}

			standingReset := map[string]interface{}{
				"played": 0, "won": 0, "drawn": 0, "lost": 0, "points": 0,
				"goals_for": 0, "goals_against": 0, "goal_difference": 0,
				"form": "", "guess": 0,
			}
			if err := tx.Model(&models.GroupTeam{}).Where("1 = 1").Updates(standingReset).Error; err != nil {
				return fmt.Errorf("resetting standings: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		s.invalidatePredictions(ctx)
		log.Printf("[LEAGUE] league reset")
		return nil
	})
}

// GetGroups returns all groups with their tables, best team first
func (s *Service) GetGroups(ctx context.Context) ([]GroupView, error) {
	groups, err := s.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	memberships, err := s.loadMemberships(ctx)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]models.GroupTeam)
	for _, gt := range memberships {
		byGroup[gt.GroupID] = append(byGroup[gt.GroupID], gt)
	}

	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		rows := byGroup[g.ID]
		sortStandings(rows)
		view := GroupView{ID: g.ID, Name: g.Name, Teams: make([]TeamStanding, 0, len(rows))}
		for _, r := range rows {
			if r.Team == nil {
				return nil, fmt.Errorf("%w: membership %s", ErrTeamMissing, r.ID)
			}
			view.Teams = append(view.Teams, standingView(r))
		}
		views = append(views, view)
	}
	return views, nil
}

// GetStandings returns the tables keyed by group name, points then goal
// difference descending.
func (s *Service) GetStandings(ctx context.Context) (map[string][]TeamStanding, error) {
	views, err := s.GetGroups(ctx)
	if err != nil {
		return nil, err
	}
	standings := make(map[string][]TeamStanding, len(views))
	for _, v := range views {
		standings[v.Name] = v.Teams
	}
	return standings, nil
}

// GetFixtures returns every fixture grouped by week, in week order
func (s *Service) GetFixtures(ctx context.Context) ([]WeekFixtures, error) {
	fixtures, err := s.loadFixtures(ctx)
	if err != nil {
		return nil, err
	}

	byWeek := make(map[int][]FixtureView)
	for _, f := range fixtures {
		byWeek[f.Week] = append(byWeek[f.Week], fixtureView(f))
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	out := make([]WeekFixtures, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, WeekFixtures{Week: w, Matches: byWeek[w]})
	}
	return out, nil
}

// GetAllFixtures returns fixtures keyed by group name, then grouped by week
func (s *Service) GetAllFixtures(ctx context.Context) (map[string][]WeekFixtures, error) {
	fixtures, err := s.loadFixtures(ctx)
	if err != nil {
		return nil, err
	}

	type weekKey struct {
		group string
		week  int
	}
	byGroupWeek := make(map[weekKey][]FixtureView)
	groupWeeks := make(map[string][]int)
	for _, f := range fixtures {
		if f.Group == nil {
			return nil, fmt.Errorf("%w: fixture %s group", ErrTeamMissing, f.ID)
		}
		key := weekKey{group: f.Group.Name, week: f.Week}
		if len(byGroupWeek[key]) == 0 {
			groupWeeks[key.group] = append(groupWeeks[key.group], f.Week)
		}
		byGroupWeek[key] = append(byGroupWeek[key], fixtureView(f))
	}

	out := make(map[string][]WeekFixtures, len(groupWeeks))
	for group, weeks := range groupWeeks {
		sort.Ints(weeks)
		list := make([]WeekFixtures, 0, len(weeks))
		for _, w := range weeks {
			list = append(list, WeekFixtures{Week: w, Matches: byGroupWeek[weekKey{group: group, week: w}]})
		}
		out[group] = list
	}
	return out, nil
}

// GetPredictions returns the ungated advisory winner probabilities keyed by
// group name, highest first. Served from cache when one is attached.
func (s *Service) GetPredictions(ctx context.Context) (map[string][]TeamPrediction, error) {
	if s.cache != nil {
		var cached map[string][]TeamPrediction
		hit, err := s.cache.GetJSON(ctx, predictionsCacheKey, &cached)
		if err != nil {
			log.Printf("[LEAGUE] predictions cache read failed: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	groups, err := s.loadGroups(ctx)
	if err != nil {
		return nil, err
	}
	memberships, err := s.loadMemberships(ctx)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]models.GroupTeam)
	for _, gt := range memberships {
		byGroup[gt.GroupID] = append(byGroup[gt.GroupID], gt)
	}

	out := make(map[string][]TeamPrediction, len(groups))
	for _, g := range groups {
		rows := byGroup[g.ID]
		if len(rows) == 0 {
			continue
		}
		predictions, err := AdvisoryPredictions(rows)
		if err != nil {
			return nil, err
		}
		sort.Slice(predictions, func(i, j int) bool {
			if predictions[i].Probability != predictions[j].Probability {
				return predictions[i].Probability > predictions[j].Probability
			}
			return predictions[i].TeamName < predictions[j].TeamName
		})
		out[g.Name] = predictions
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, predictionsCacheKey, out, predictionsCacheTTL); err != nil {
			log.Printf("[LEAGUE] predictions cache write failed: %v", err)
		}
	}
	return out, nil
}

// nextUnplayedWeek returns the lowest week with an unplayed fixture
func (s *Service) nextUnplayedWeek(ctx context.Context) (int, error) {
	var week sql.NullInt64
	err := s.db.WithContext(ctx).Model(&models.Fixture{}).
		Where("played = ?", false).
		Select("MIN(week)").
		Scan(&week).Error
	if err != nil {
		return 0, fmt.Errorf("finding next week: %w", err)
	}
	if !week.Valid {
		return 0, ErrNoUnplayedWeek
	}
	return int(week.Int64), nil
}

// recomputeGuesses refreshes the gated winner guesses for every group in the
// working set. The gate inside CalculateGuesses keeps early-season guesses 0.
func (s *Service) recomputeGuesses(ctx context.Context, ws *WorkingSet, rows []models.GroupTeam) error {
	strengths, err := s.loadStrengths(s.db.WithContext(ctx))
	if err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, r := range rows {
		if seen[r.GroupID] {
			continue
		}
		seen[r.GroupID] = true
		if err := CalculateGuesses(ws.GroupRecords(r.GroupID), strengths); err != nil {
			return err
		}
	}
	return nil
}

// upsertStandings flushes the working set in one statement, updating only the
// columns the batch mutates.
func (s *Service) upsertStandings(tx *gorm.DB, rows []models.GroupTeam) error {
	if len(rows) == 0 {
		return nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"played", "won", "drawn", "lost", "points",
			"goals_for", "goals_against", "goal_difference",
			"form", "guess", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("flushing standings: %w", err)
	}
	return nil
}

func (s *Service) loadGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := s.db.WithContext(ctx).Order("name asc").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("loading groups: %w", err)
	}
	return groups, nil
}

func (s *Service) loadMemberships(ctx context.Context) ([]models.GroupTeam, error) {
	var memberships []models.GroupTeam
	if err := s.db.WithContext(ctx).Preload("Team").Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("loading memberships: %w", err)
	}
	return memberships, nil
}

// loadMembershipRows loads standings without team records, for the working set
func (s *Service) loadMembershipRows(ctx context.Context) ([]models.GroupTeam, error) {
	var rows []models.GroupTeam
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading standings: %w", err)
	}
	return rows, nil
}

func (s *Service) loadFixtures(ctx context.Context) ([]models.Fixture, error) {
	var fixtures []models.Fixture
	err := s.db.WithContext(ctx).
		Preload("HomeTeam").Preload("AwayTeam").Preload("Group").
		Order("week asc, match_day asc, id asc").
		Find(&fixtures).Error
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}
	return fixtures, nil
}

func (s *Service) loadStrengths(tx *gorm.DB) (map[string]int, error) {
	var teams []models.Team
	if err := tx.Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("loading team strengths: %w", err)
	}
	strengths := make(map[string]int, len(teams))
	for _, t := range teams {
		strengths[t.ID] = t.Strength
	}
	return strengths, nil
}

func sortStandings(rows []models.GroupTeam) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].TeamID < rows[j].TeamID
	})
}

func standingView(r models.GroupTeam) TeamStanding {
	return TeamStanding{
		TeamID:         r.TeamID,
		Name:           r.Team.Name,
		Country:        r.Team.Country,
		Pot:            r.Team.Pot,
		Played:         r.Played,
		Won:            r.Won,
		Drawn:          r.Drawn,
		Lost:           r.Lost,
		Points:         r.Points,
		GoalsFor:       r.GoalsFor,
		GoalsAgainst:   r.GoalsAgainst,
		GoalDifference: r.GoalDifference,
		Form:           r.Form,
		Guess:          r.Guess,
	}
}

func fixtureView(f models.Fixture) FixtureView {
	view := FixtureView{
		ID:        f.ID,
		Week:      f.Week,
		MatchDay:  f.MatchDay,
		HomeGoals: f.HomeGoals,
		AwayGoals: f.AwayGoals,
		Score:     "TBD",
		Played:    f.Played,
	}
	if f.Group != nil {
		view.Group = f.Group.Name
	}
	if f.HomeTeam != nil {
		view.HomeTeam = f.HomeTeam.Name
	}
	if f.AwayTeam != nil {
		view.AwayTeam = f.AwayTeam.Name
	}
	if f.Played && f.HomeGoals != nil && f.AwayGoals != nil {
		view.Score = fmt.Sprintf("%d - %d", *f.HomeGoals, *f.AwayGoals)
	}
	return view
}
