package validation

import (
	"testing"
)

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name    string
		uuid    string
		wantErr bool
	}{
		{"Valid UUID", "550e8400-e29b-41d4-a716-446655440000", false},
		{"Valid uppercase", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Empty", "", true},
		{"No hyphens", "550e8400e29b41d4a716446655440000", true},
		{"Too short", "550e8400-e29b-41d4-a716", true},
		{"Invalid characters", "550e8400-e29b-41d4-a716-44665544zzzz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUID(tt.uuid)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUUID() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		min     int
		max     int
		wantErr bool
	}{
		{"Within range", 5, 0, 9, false},
		{"At minimum", 0, 0, 9, false},
		{"At maximum", 9, 0, 9, false},
		{"Below minimum", -1, 0, 9, true},
		{"Above maximum", 10, 0, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange(tt.value, tt.min, tt.max, "value")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIntRange() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateScoreline(t *testing.T) {
	tests := []struct {
		name      string
		homeGoals int
		awayGoals int
		wantErr   bool
	}{
		{"Typical score", 2, 1, false},
		{"Goalless", 0, 0, false},
		{"At the cap", 9, 9, false},
		{"Home over cap", 10, 0, true},
		{"Away negative", 1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScoreline(tt.homeGoals, tt.awayGoals, 9)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScoreline() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
