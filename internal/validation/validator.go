package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// Common validation errors
var (
	ErrInvalidUUID  = errors.New("invalid UUID format")
	ErrInvalidRange = errors.New("value out of valid range")
)

var uuidRegex = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)

// ValidateUUID validates UUID format
func ValidateUUID(uuid string) error {
	if uuid == "" {
		return errors.New("UUID is required")
	}
	if !uuidRegex.MatchString(uuid) {
		return ErrInvalidUUID
	}
	return nil
}

// ValidateIntRange validates integer is within range
func ValidateIntRange(value, min, max int, fieldName string) error {
	if value < min || value > max {
		return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidRange, fieldName, min, max)
	}
	return nil
}

// ValidateScoreline validates both sides of a match score against the goal cap
func ValidateScoreline(homeGoals, awayGoals, maxGoals int) error {
	if err := ValidateIntRange(homeGoals, 0, maxGoals, "home goals"); err != nil {
		return err
	}
	return ValidateIntRange(awayGoals, 0, maxGoals, "away goals")
}
