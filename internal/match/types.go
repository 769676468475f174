package match

import (
	"errors"

	"github.com/mvolden/sideout/internal/rotation"
)

// TeamSide identifies one of the two teams in a match.
type TeamSide string

const (
	TeamHome TeamSide = "HOME"
	TeamAway TeamSide = "AWAY"
)

// Opponent returns the other side.
func (s TeamSide) Opponent() TeamSide {
	if s == TeamHome {
		return TeamAway
	}
	return TeamHome
}

// ParseTeamSide converts a "HOME"/"AWAY" label into a TeamSide.
func ParseTeamSide(s string) (TeamSide, bool) {
	switch TeamSide(s) {
	case TeamHome:
		return TeamHome, true
	case TeamAway:
		return TeamAway, true
	}
	return "", false
}

// Direction selects manual rotation forward or backward.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// LiberoSwapState records whether the libero is on court, which specialist
// role it replaced, and whether the choice is pinned by the user. Without a
// manual lock the substitution follows the configured target roles
// automatically as the rotation advances; a manual lock overrides the default
// target set until explicitly cleared.
type LiberoSwapState struct {
	Active       bool          `json:"active"`
	ReplacedRole rotation.Role `json:"replaced_role,omitempty"`
	ManualLock   bool          `json:"manual_lock"`
}

// TeamState is the single per-team state record owned by the engine: the
// immutable rotation configuration plus the mutable rotation counter and
// libero swap state.
type TeamState struct {
	Config   rotation.Config `json:"config"`
	Rotation int             `json:"rotation"` // 1..6
	Libero   LiberoSwapState `json:"libero"`
}

// NewTeamState starts a team at rotation 1 with the libero benched.
func NewTeamState(cfg rotation.Config) TeamState {
	return TeamState{Config: cfg, Rotation: 1}
}

// PointResult is the outcome of a point-end transition. Lineups only contains
// entries for teams whose lineup changed; the non-serving team is untouched.
type PointResult struct {
	NewServingTeam   TeamSide                     `json:"new_serving_team"`
	RotationAdvanced bool                         `json:"rotation_advanced"`
	Lineups          map[TeamSide]rotation.Lineup `json:"lineups,omitempty"`
}

// PointEvent is one recorded point outcome. Replaying the full event sequence
// through the engine reproduces the exact lineup sequence, which is how
// session restore re-derives state.
type PointEvent struct {
	Seq         int      `json:"seq"`
	ScoringTeam TeamSide `json:"scoring_team"`
}

var (
	ErrNoLibero         = errors.New("match: no libero configured for team")
	ErrLiberoOnCourt    = errors.New("match: libero is already on court")
	ErrLiberoNotOnCourt = errors.New("match: libero is not on court")
	ErrNotBackRow       = errors.New("match: libero may only enter at a back-row position")
	ErrUnknownDirection = errors.New("match: unknown rotation direction")
	ErrUnknownTeam      = errors.New("match: unknown team side")
)
