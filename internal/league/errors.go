package league

import "errors"

// Validation errors, surfaced to the caller as 4xx-equivalent failures.
var (
	// ErrNoGroups occurs when a draw or fixture generation runs before any groups exist
	ErrNoGroups = errors.New("no groups found")
	// ErrNoTeams occurs when a draw runs before any teams are seeded
	ErrNoTeams = errors.New("no teams found")
	// ErrTeamCountMismatch occurs when the team count is not groups x 4
	ErrTeamCountMismatch = errors.New("team count does not match group capacity")
	// ErrCountryOverflow occurs when one country has more teams than there are groups
	ErrCountryOverflow = errors.New("country has more teams than groups")
	// ErrDrawExhausted occurs when no valid assignment was found within the attempt limit
	ErrDrawExhausted = errors.New("draw failed after maximum attempts")
	// ErrNoUnplayedWeek occurs when every week has already been played
	ErrNoUnplayedWeek = errors.New("no unplayed week remaining")
	// ErrNoUnplayedMatch occurs when every match has already been played
	ErrNoUnplayedMatch = errors.New("no unplayed match remaining")
	// ErrMatchNotFound occurs when a score correction references an unknown match id
	ErrMatchNotFound = errors.New("match not found")
)

// ErrTeamMissing is an invariant violation: a team record expected by a
// lookup was absent. It indicates an internal fault, not caller error.
var ErrTeamMissing = errors.New("team record missing from lookup")

// errNoValidGroup aborts one draw attempt; it is caught by the retry loop
// and never surfaced directly.
var errNoValidGroup = errors.New("no valid group for team")

// IsValidationError reports whether err is a precondition failure the caller
// can act on, as opposed to an internal fault.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrNoGroups,
		ErrNoTeams,
		ErrTeamCountMismatch,
		ErrCountryOverflow,
		ErrDrawExhausted,
		ErrNoUnplayedWeek,
		ErrNoUnplayedMatch,
		ErrMatchNotFound,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
