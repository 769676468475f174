package match_test

import (
	"testing"

	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamConfig(withLibero bool) rotation.Config {
	cfg := rotation.Config{
		System:     rotation.SystemFiveOneOH,
		StartingP1: "S",
		Players: map[rotation.Role]rotation.PlayerRef{
			"S":        rotation.CustomRef(1, "Sander"),
			"OH (w.s)": rotation.CustomRef(2, "Oda"),
			"MB":       rotation.CustomRef(3, "Mia"),
			"Oppo":     rotation.CustomRef(4, "Olav"),
			"OH":       rotation.CustomRef(5, "Oskar"),
			"MB (w.s)": rotation.CustomRef(6, "Marte"),
		},
	}
	if withLibero {
		libero := rotation.CustomRef(12, "Libby")
		cfg.Libero = &libero
		cfg.LiberoTargets = []rotation.Role{"MB", "MB (w.s)"}
	}
	return cfg
}

func TestOnPointEnd(t *testing.T) {
	e := match.New(nil)

	t.Run("side-out advances only the scoring team", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(false))
		away := match.NewTeamState(teamConfig(false))

		res, err := e.OnPointEnd(match.TeamAway, match.TeamHome, &home, &away)
		require.NoError(t, err)

		assert.Equal(t, match.TeamAway, res.NewServingTeam)
		assert.True(t, res.RotationAdvanced)
		assert.Equal(t, 2, away.Rotation)
		assert.Equal(t, 1, home.Rotation, "receiving team that lost the point is untouched")

		lineup, ok := res.Lineups[match.TeamAway]
		require.True(t, ok)
		assert.Equal(t, rotation.Role("OH (w.s)"), lineup[rotation.P1].Role, "next server steps into P1")
		_, ok = res.Lineups[match.TeamHome]
		assert.False(t, ok)
	})

	t.Run("serving team scoring again changes nothing", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(false))
		away := match.NewTeamState(teamConfig(false))

		res, err := e.OnPointEnd(match.TeamHome, match.TeamHome, &home, &away)
		require.NoError(t, err)

		assert.Equal(t, match.TeamHome, res.NewServingTeam)
		assert.False(t, res.RotationAdvanced)
		assert.Equal(t, 1, home.Rotation)
		assert.Equal(t, 1, away.Rotation)
		assert.Empty(t, res.Lineups)
	})

	t.Run("rotation wraps from 6 back to 1", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(false))
		away := match.NewTeamState(teamConfig(false))
		away.Rotation = 6

		res, err := e.OnPointEnd(match.TeamAway, match.TeamHome, &home, &away)
		require.NoError(t, err)
		assert.True(t, res.RotationAdvanced)
		assert.Equal(t, 1, away.Rotation)
	})

	t.Run("libero auto-tracks across side-outs", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(true))
		away := match.NewTeamState(teamConfig(false))

		// Rotation 2 puts MB (w.s) in the back row at P5.
		res, err := e.OnPointEnd(match.TeamHome, match.TeamAway, &home, &away)
		require.NoError(t, err)

		lineup := res.Lineups[match.TeamHome]
		assert.Equal(t, rotation.RoleLibero, lineup[rotation.P5].Role)
		assert.True(t, home.Libero.Active)
		assert.Equal(t, rotation.Role("MB (w.s)"), home.Libero.ReplacedRole)
		assert.False(t, home.Libero.ManualLock)
	})

	t.Run("broken configuration fails without touching state", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(false))
		away := match.NewTeamState(teamConfig(false))
		away.Config.System = "bogus"

		_, err := e.OnPointEnd(match.TeamAway, match.TeamHome, &home, &away)
		var confErr *rotation.ConfigurationError
		require.ErrorAs(t, err, &confErr)
		assert.Equal(t, 1, away.Rotation)
	})
}

func TestManualRotate(t *testing.T) {
	e := match.New(nil)

	t.Run("forward and backward wrap around", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(false))
		ts.Rotation = 6

		_, next, err := e.ManualRotate(&ts, match.Forward, false)
		require.NoError(t, err)
		assert.Equal(t, 1, next)

		_, next, err = e.ManualRotate(&ts, match.Backward, false)
		require.NoError(t, err)
		assert.Equal(t, 6, next)

		ts.Rotation = 1
		_, next, err = e.ManualRotate(&ts, match.Backward, false)
		require.NoError(t, err)
		assert.Equal(t, 6, next)
	})

	t.Run("unknown direction is rejected", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(false))
		_, _, err := e.ManualRotate(&ts, "sideways", false)
		assert.ErrorIs(t, err, match.ErrUnknownDirection)
		assert.Equal(t, 1, ts.Rotation)
	})

	t.Run("produces the same lineup as a side-out to the same rotation", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(true))
		away := match.NewTeamState(teamConfig(false))
		res, err := e.OnPointEnd(match.TeamHome, match.TeamAway, &home, &away)
		require.NoError(t, err)

		manual := match.NewTeamState(teamConfig(true))
		lineup, next, err := e.ManualRotate(&manual, match.Forward, true)
		require.NoError(t, err)

		assert.Equal(t, home.Rotation, next)
		assert.Equal(t, res.Lineups[match.TeamHome], lineup)
	})
}

func TestLiberoSwaps(t *testing.T) {
	e := match.New(nil)

	t.Run("swap-in at a default target keeps automatic mode", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		ts.Rotation = 2 // MB (w.s) at P5

		lineup, err := e.LiberoSwapIn(&ts, rotation.P5, false)
		require.NoError(t, err)

		assert.Equal(t, rotation.RoleLibero, lineup[rotation.P5].Role)
		assert.True(t, ts.Libero.Active)
		assert.False(t, ts.Libero.ManualLock, "picking a default target stays automatic")
		assert.Equal(t, rotation.Role("MB (w.s)"), ts.Libero.ReplacedRole)
	})

	t.Run("swap-in off the default targets pins a manual lock", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		// Rotation 1: setter at P1.

		lineup, err := e.LiberoSwapIn(&ts, rotation.P1, false)
		require.NoError(t, err)

		assert.Equal(t, rotation.RoleLibero, lineup[rotation.P1].Role)
		assert.Equal(t, rotation.Role("S"), lineup[rotation.P1].OriginalRole)
		assert.True(t, ts.Libero.ManualLock)
	})

	t.Run("manual lock targets P1 even while serving", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		ts.Config.StartingP1 = "Oppo"

		lineup, err := e.LiberoSwapIn(&ts, rotation.P1, true)
		require.NoError(t, err)

		assert.Equal(t, rotation.RoleLibero, lineup[rotation.P1].Role)
		assert.Equal(t, rotation.Role("Oppo"), lineup[rotation.P1].OriginalRole)
		assert.True(t, ts.Libero.ManualLock)
	})

	t.Run("swap-in requires a back-row position", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		_, err := e.LiberoSwapIn(&ts, rotation.P3, false)
		assert.ErrorIs(t, err, match.ErrNotBackRow)
	})

	t.Run("swap-in is illegal while the libero is on court", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		ts.Rotation = 2
		_, err := e.LiberoSwapIn(&ts, rotation.P5, false)
		require.NoError(t, err)

		_, err = e.LiberoSwapIn(&ts, rotation.P6, false)
		assert.ErrorIs(t, err, match.ErrLiberoOnCourt)
	})

	t.Run("re-targeting after the locked role rotates to the front row", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		_, err := e.LiberoSwapIn(&ts, rotation.P1, false)
		require.NoError(t, err)
		require.True(t, ts.Libero.ManualLock)

		// Three forward rotations carry the setter to P4; the pinned role is
		// in the front row, so the libero sits on the bench even though the
		// lock is still recorded.
		for i := 0; i < 3; i++ {
			_, _, err = e.ManualRotate(&ts, match.Forward, false)
			require.NoError(t, err)
		}
		lineup, err := e.Lineup(&ts, false)
		require.NoError(t, err)
		for _, pos := range rotation.Positions {
			assert.NotEqual(t, rotation.RoleLibero, lineup[pos].Role)
		}
		require.True(t, ts.Libero.Active)

		// A benched libero can be re-targeted directly, no swap-out needed.
		lineup, err = e.LiberoSwapIn(&ts, rotation.P5, false)
		require.NoError(t, err)
		assert.Equal(t, rotation.RoleLibero, lineup[rotation.P5].Role)
		assert.Equal(t, rotation.Role("OH (w.s)"), ts.Libero.ReplacedRole)
	})

	t.Run("swap-in without a configured libero is rejected", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(false))
		_, err := e.LiberoSwapIn(&ts, rotation.P5, false)
		assert.ErrorIs(t, err, match.ErrNoLibero)
	})

	t.Run("swap-out restores the specialist and benches the libero", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		ts.Rotation = 2
		_, err := e.LiberoSwapIn(&ts, rotation.P5, false)
		require.NoError(t, err)

		lineup, err := e.LiberoSwapOut(&ts, false)
		require.NoError(t, err)

		assert.Equal(t, rotation.Role("MB (w.s)"), lineup[rotation.P5].Role)
		assert.Equal(t, "Marte", lineup[rotation.P5].Name)
		assert.False(t, ts.Libero.Active)

		// A read keeps the libero benched; re-entry waits for the next
		// side-out boundary.
		read, err := e.Lineup(&ts, false)
		require.NoError(t, err)
		assert.Equal(t, rotation.Role("MB (w.s)"), read[rotation.P5].Role)
	})

	t.Run("swap-out with the libero benched is rejected", func(t *testing.T) {
		ts := match.NewTeamState(teamConfig(true))
		_, err := e.LiberoSwapOut(&ts, false)
		assert.ErrorIs(t, err, match.ErrLiberoNotOnCourt)
	})

	t.Run("set change benches both liberos", func(t *testing.T) {
		home := match.NewTeamState(teamConfig(true))
		away := match.NewTeamState(teamConfig(true))
		home.Rotation = 2
		_, err := e.LiberoSwapIn(&home, rotation.P5, false)
		require.NoError(t, err)

		e.ResetSwapStates(&home, &away)
		assert.False(t, home.Libero.Active)
		assert.False(t, away.Libero.Active)
	})
}

func TestReplay(t *testing.T) {
	e := match.New(nil)

	events := []match.PointEvent{
		{Seq: 1, ScoringTeam: match.TeamAway}, // side-out, away serves
		{Seq: 2, ScoringTeam: match.TeamAway},
		{Seq: 3, ScoringTeam: match.TeamHome}, // side-out, home serves
		{Seq: 4, ScoringTeam: match.TeamAway}, // side-out again
	}

	t.Run("replay reproduces the live transition sequence", func(t *testing.T) {
		liveHome := match.NewTeamState(teamConfig(true))
		liveAway := match.NewTeamState(teamConfig(false))
		serving := match.TeamHome
		for _, ev := range events {
			res, err := e.OnPointEnd(ev.ScoringTeam, serving, &liveHome, &liveAway)
			require.NoError(t, err)
			serving = res.NewServingTeam
		}

		replHome, replAway, replServing, err := e.Replay(
			match.NewTeamState(teamConfig(true)),
			match.NewTeamState(teamConfig(false)),
			match.TeamHome,
			events,
		)
		require.NoError(t, err)

		assert.Equal(t, liveHome, replHome)
		assert.Equal(t, liveAway, replAway)
		assert.Equal(t, serving, replServing)
		assert.Equal(t, match.TeamAway, replServing)
		assert.Equal(t, 2, replHome.Rotation)
		assert.Equal(t, 3, replAway.Rotation)
	})
}
