package match

import (
	"github.com/charmbracelet/log"
	"github.com/mvolden/sideout/internal/rotation"
)

// Engine drives rotation state transitions at each point's end and exposes
// the manual correction controls. Every transition is a total function of the
// current team states and the triggering event: it either completes and
// commits the new state, or fails with a typed error leaving prior state
// unmodified.
type Engine struct {
	roster rotation.RosterResolver
}

// New creates an Engine resolving roster references through roster. A nil
// roster is allowed; roster references then render as placeholders.
func New(roster rotation.RosterResolver) *Engine {
	return &Engine{roster: roster}
}

// OnPointEnd applies side-out handling for one point outcome. A side-out
// occurs iff the scoring team was not serving: its rotation advances by
// exactly one and its lineup is reassembled with serving status; the other
// team is untouched. If the serving team scored again nothing rotates.
func (e *Engine) OnPointEnd(scoring, serving TeamSide, home, away *TeamState) (PointResult, error) {
	if scoring == serving {
		log.Debug("Serving team scored, no rotation", "team", scoring)
		return PointResult{NewServingTeam: serving}, nil
	}

	ts := home
	if scoring == TeamAway {
		ts = away
	}

	next := ts.Rotation%6 + 1
	lineup, err := e.assemble(ts, next, true)
	if err != nil {
		return PointResult{}, err
	}
	ts.Rotation = next
	e.syncSwapState(ts, lineup)
	log.Debug("Side-out", "team", scoring, "rotation", next)

	return PointResult{
		NewServingTeam:   scoring,
		RotationAdvanced: true,
		Lineups:          map[TeamSide]rotation.Lineup{scoring: lineup},
	}, nil
}

// ManualRotate advances or retreats a team's rotation by one for coach
// correction. It shares the assembly path with OnPointEnd so both always
// produce the same lineup for the same target rotation number.
func (e *Engine) ManualRotate(ts *TeamState, dir Direction, serving bool) (rotation.Lineup, int, error) {
	var next int
	switch dir {
	case Forward:
		next = ts.Rotation%6 + 1
	case Backward:
		if ts.Rotation == 1 {
			next = 6
		} else {
			next = ts.Rotation - 1
		}
	default:
		return nil, 0, ErrUnknownDirection
	}

	lineup, err := e.assemble(ts, next, serving)
	if err != nil {
		return nil, 0, err
	}
	ts.Rotation = next
	e.syncSwapState(ts, lineup)
	return lineup, next, nil
}

// Lineup assembles the team's current lineup without changing any state. A
// benched libero stays benched until the next transition re-checks
// eligibility; re-entry happens at side-out boundaries, not mid-rally.
func (e *Engine) Lineup(ts *TeamState, serving bool) (rotation.Lineup, error) {
	if !ts.Libero.Active {
		cfg := ts.Config
		cfg.Libero = nil
		return rotation.Assemble(cfg, ts.Rotation, e.roster, "", serving)
	}
	return e.assemble(ts, ts.Rotation, serving)
}

// InitSet assembles a team's opening lineup for a set, applying automatic
// libero tracking and recording where it placed the libero.
func (e *Engine) InitSet(ts *TeamState, serving bool) (rotation.Lineup, error) {
	lineup, err := e.assemble(ts, ts.Rotation, serving)
	if err != nil {
		return nil, err
	}
	e.syncSwapState(ts, lineup)
	return lineup, nil
}

// LiberoSwapIn puts the libero on court at target, which must be a vacant-of-
// libero back-row position. The lock is only flagged manual when the chosen
// role diverges from the configured default targets; picking a default target
// keeps the system in automatic mode so later rotations continue to
// auto-track.
func (e *Engine) LiberoSwapIn(ts *TeamState, target rotation.Position, serving bool) (rotation.Lineup, error) {
	if ts.Config.Libero == nil {
		return nil, ErrNoLibero
	}
	if !target.BackRow() {
		return nil, ErrNotBackRow
	}
	if ts.Libero.Active && e.liberoOnCourt(ts, serving) {
		return nil, ErrLiberoOnCourt
	}

	sys, ok := rotation.SystemByID(ts.Config.System)
	if !ok {
		return nil, &rotation.ConfigurationError{System: ts.Config.System, Reason: "unknown system"}
	}
	order, err := rotation.StartingOrder(sys, ts.Config.StartingP1)
	if err != nil {
		return nil, err
	}
	base := rotation.RotationOccupants(order, ts.Config.Players, ts.Rotation-1)
	replaced := base[int(target)].Role

	manualLock := !containsRole(ts.Config.LiberoTargets, replaced)

	// The user's explicit pick decides the immediate lineup either way; the
	// persisted lock only controls how later assemblies track.
	lineup, err := rotation.Assemble(ts.Config, ts.Rotation, e.roster, replaced, serving)
	if err != nil {
		return nil, err
	}

	ts.Libero = LiberoSwapState{Active: true, ReplacedRole: replaced, ManualLock: manualLock}
	log.Info("Libero swapped in", "position", target, "replaced_role", replaced, "manual_lock", manualLock)
	return lineup, nil
}

// LiberoSwapOut benches the libero and restores the replaced specialist. The
// libero re-enters automatically at the next side-out boundary if a default
// target is then in the back row.
func (e *Engine) LiberoSwapOut(ts *TeamState, serving bool) (rotation.Lineup, error) {
	if !ts.Libero.Active {
		return nil, ErrLiberoNotOnCourt
	}

	cfg := ts.Config
	cfg.Libero = nil
	lineup, err := rotation.Assemble(cfg, ts.Rotation, e.roster, "", serving)
	if err != nil {
		return nil, err
	}

	replaced := ts.Libero.ReplacedRole
	ts.Libero = LiberoSwapState{}
	log.Info("Libero swapped out", "restored_role", replaced)
	return lineup, nil
}

// ResetSwapStates benches both liberos. Called whenever the active set number
// changes.
func (e *Engine) ResetSwapStates(home, away *TeamState) {
	home.Libero = LiberoSwapState{}
	away.Libero = LiberoSwapState{}
}

// Replay folds the recorded point events over fresh copies of the given team
// states and returns the resulting states and serving team. Because every
// transition is deterministic, replaying the same sequence always reproduces
// the same lineups.
func (e *Engine) Replay(home, away TeamState, firstServing TeamSide, events []PointEvent) (TeamState, TeamState, TeamSide, error) {
	serving := firstServing
	for _, ev := range events {
		res, err := e.OnPointEnd(ev.ScoringTeam, serving, &home, &away)
		if err != nil {
			return home, away, serving, err
		}
		serving = res.NewServingTeam
	}
	return home, away, serving, nil
}

// assemble builds the lineup for one rotation number using the team's swap
// state: the pinned role under a manual lock, automatic target tracking
// otherwise.
func (e *Engine) assemble(ts *TeamState, rotationNumber int, serving bool) (rotation.Lineup, error) {
	var manualRole rotation.Role
	if ts.Libero.Active && ts.Libero.ManualLock {
		manualRole = ts.Libero.ReplacedRole
	}
	return rotation.Assemble(ts.Config, rotationNumber, e.roster, manualRole, serving)
}

// liberoOnCourt reports whether the current assembly actually places the
// libero. The recorded swap state alone is not enough: under a manual lock the
// pinned role can rotate to the front row, benching the libero while the lock
// stays recorded, and the coach must then be able to re-target directly.
func (e *Engine) liberoOnCourt(ts *TeamState, serving bool) bool {
	lineup, err := e.assemble(ts, ts.Rotation, serving)
	if err != nil {
		return true
	}
	for _, occ := range lineup {
		if occ.Role == rotation.RoleLibero {
			return true
		}
	}
	return false
}

// syncSwapState records where the automatic substitution actually placed the
// libero. A manual lock is left untouched until explicitly cleared.
func (e *Engine) syncSwapState(ts *TeamState, lineup rotation.Lineup) {
	if ts.Libero.ManualLock {
		return
	}
	for _, pos := range rotation.Positions {
		if occ, ok := lineup[pos]; ok && occ.Role == rotation.RoleLibero {
			ts.Libero = LiberoSwapState{Active: true, ReplacedRole: occ.OriginalRole}
			return
		}
	}
	ts.Libero = LiberoSwapState{}
}

func containsRole(roles []rotation.Role, role rotation.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
