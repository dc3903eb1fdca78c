package league

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"league-platform/backend/internal/models"
)

// defaultGroupNames are the canned tournament groups (A-H)
var defaultGroupNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// defaultTeams is the canned 32-team field: 4 pots of 8, each pot spread
// across countries so a valid draw always exists.
var defaultTeams = []models.Team{
	// Pot 1
	{Name: "Manchester City", Country: "England", Pot: 1, Power: 96, Attack: 95, Defense: 94, Goalkeeper: 92, Supporter: 88, Strength: 96},
	{Name: "Real Madrid", Country: "Spain", Pot: 1, Power: 95, Attack: 94, Defense: 92, Goalkeeper: 93, Supporter: 95, Strength: 95},
	{Name: "Bayern Munich", Country: "Germany", Pot: 1, Power: 93, Attack: 93, Defense: 91, Goalkeeper: 90, Supporter: 90, Strength: 93},
	{Name: "Paris Saint-Germain", Country: "France", Pot: 1, Power: 92, Attack: 94, Defense: 88, Goalkeeper: 89, Supporter: 87, Strength: 92},
	{Name: "Liverpool", Country: "England", Pot: 1, Power: 91, Attack: 90, Defense: 89, Goalkeeper: 88, Supporter: 92, Strength: 91},
	{Name: "Inter", Country: "Italy", Pot: 1, Power: 90, Attack: 88, Defense: 91, Goalkeeper: 89, Supporter: 85, Strength: 90},
	{Name: "Barcelona", Country: "Spain", Pot: 1, Power: 89, Attack: 91, Defense: 85, Goalkeeper: 86, Supporter: 93, Strength: 89},
	{Name: "Chelsea", Country: "England", Pot: 1, Power: 88, Attack: 87, Defense: 86, Goalkeeper: 85, Supporter: 89, Strength: 88},
	// Pot 2
	{Name: "Arsenal", Country: "England", Pot: 2, Power: 87, Attack: 87, Defense: 86, Goalkeeper: 85, Supporter: 90, Strength: 87},
	{Name: "Atletico Madrid", Country: "Spain", Pot: 2, Power: 86, Attack: 84, Defense: 88, Goalkeeper: 86, Supporter: 88, Strength: 86},
	{Name: "Borussia Dortmund", Country: "Germany", Pot: 2, Power: 85, Attack: 86, Defense: 82, Goalkeeper: 83, Supporter: 91, Strength: 85},
	{Name: "RB Leipzig", Country: "Germany", Pot: 2, Power: 84, Attack: 85, Defense: 83, Goalkeeper: 82, Supporter: 84, Strength: 84},
	{Name: "Napoli", Country: "Italy", Pot: 2, Power: 83, Attack: 85, Defense: 81, Goalkeeper: 82, Supporter: 83, Strength: 83},
	{Name: "Benfica", Country: "Portugal", Pot: 2, Power: 82, Attack: 83, Defense: 80, Goalkeeper: 81, Supporter: 86, Strength: 82},
	{Name: "Juventus", Country: "Italy", Pot: 2, Power: 81, Attack: 80, Defense: 84, Goalkeeper: 83, Supporter: 87, Strength: 81},
	{Name: "Porto", Country: "Portugal", Pot: 2, Power: 80, Attack: 81, Defense: 79, Goalkeeper: 80, Supporter: 84, Strength: 80},
	// Pot 3
	{Name: "PSV Eindhoven", Country: "Netherlands", Pot: 3, Power: 79, Attack: 80, Defense: 78, Goalkeeper: 79, Supporter: 82, Strength: 79},
	{Name: "Ajax", Country: "Netherlands", Pot: 3, Power: 78, Attack: 81, Defense: 75, Goalkeeper: 77, Supporter: 88, Strength: 78},
	{Name: "Sporting CP", Country: "Portugal", Pot: 3, Power: 77, Attack: 78, Defense: 76, Goalkeeper: 77, Supporter: 83, Strength: 77},
	{Name: "Lazio", Country: "Italy", Pot: 3, Power: 76, Attack: 77, Defense: 75, Goalkeeper: 76, Supporter: 81, Strength: 76},
	{Name: "Sevilla", Country: "Spain", Pot: 3, Power: 75, Attack: 76, Defense: 74, Goalkeeper: 75, Supporter: 86, Strength: 75},
	{Name: "Shakhtar Donetsk", Country: "Ukraine", Pot: 3, Power: 74, Attack: 75, Defense: 73, Goalkeeper: 74, Supporter: 80, Strength: 74},
	{Name: "RB Salzburg", Country: "Austria", Pot: 3, Power: 73, Attack: 74, Defense: 72, Goalkeeper: 73, Supporter: 79, Strength: 73},
	{Name: "Celtic", Country: "Scotland", Pot: 3, Power: 72, Attack: 73, Defense: 71, Goalkeeper: 72, Supporter: 90, Strength: 72},
	// Pot 4
	{Name: "Galatasaray", Country: "Turkey", Pot: 4, Power: 78, Attack: 79, Defense: 76, Goalkeeper: 77, Supporter: 95, Strength: 78},
	{Name: "Copenhagen", Country: "Denmark", Pot: 4, Power: 74, Attack: 73, Defense: 75, Goalkeeper: 74, Supporter: 82, Strength: 74},
	{Name: "Young Boys", Country: "Switzerland", Pot: 4, Power: 73, Attack: 74, Defense: 72, Goalkeeper: 73, Supporter: 78, Strength: 73},
	{Name: "Red Star Belgrade", Country: "Serbia", Pot: 4, Power: 72, Attack: 73, Defense: 71, Goalkeeper: 72, Supporter: 88, Strength: 72},
	{Name: "Slavia Praha", Country: "Czech Republic", Pot: 4, Power: 71, Attack: 72, Defense: 70, Goalkeeper: 71, Supporter: 80, Strength: 71},
	{Name: "Qarabag", Country: "Azerbaijan", Pot: 4, Power: 70, Attack: 69, Defense: 70, Goalkeeper: 71, Supporter: 77, Strength: 70},
	{Name: "Molde", Country: "Norway", Pot: 4, Power: 69, Attack: 70, Defense: 68, Goalkeeper: 69, Supporter: 76, Strength: 69},
	{Name: "Ludogorets", Country: "Bulgaria", Pot: 4, Power: 68, Attack: 69, Defense: 67, Goalkeeper: 68, Supporter: 75, Strength: 68},
}

// SeedDefaults inserts the canned teams and groups when the teams table is
// empty. Existing data is left untouched.
func (s *Service) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Team{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting teams: %w", err)
	}
	if count > 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		teams := make([]models.Team, len(defaultTeams))
		copy(teams, defaultTeams)
		for i := range teams {
			teams[i].ID = uuid.New().String()
		}
		if err := tx.Create(&teams).Error; err != nil {
			return fmt.Errorf("seeding teams: %w", err)
		}

		groups := make([]models.Group, 0, len(defaultGroupNames))
		for _, name := range defaultGroupNames {
			groups = append(groups, models.Group{ID: uuid.New().String(), Name: name})
		}
		if err := tx.Create(&groups).Error; err != nil {
			return fmt.Errorf("seeding groups: %w", err)
		}

		log.Printf("[SEED] seeded %d teams and %d groups", len(teams), len(groups))
		return nil
	})
}
