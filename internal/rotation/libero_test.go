package rotation_test

import (
	"testing"

	"github.com/mvolden/sideout/internal/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveOneOccupants(t *testing.T, startingP1 rotation.Role, r int) [6]rotation.Occupant {
	t.Helper()
	sys, ok := rotation.SystemByID(rotation.SystemFiveOneOH)
	require.True(t, ok)
	order, err := rotation.StartingOrder(sys, startingP1)
	require.NoError(t, err)
	return rotation.RotationOccupants(order, nil, r)
}

func countLiberos(occ [6]rotation.Occupant) int {
	n := 0
	for _, o := range occ {
		if o.Role == rotation.RoleLibero {
			n++
		}
	}
	return n
}

func TestApplyLibero(t *testing.T) {
	libero := rotation.CustomRef(12, "Libby")
	middles := []rotation.Role{"MB", "MB (w.s)"}

	t.Run("nil libero is a no-op", func(t *testing.T) {
		occ := fiveOneOccupants(t, "S", 0)
		out := rotation.ApplyLibero(occ, nil, middles, "", false)
		assert.Equal(t, occ, out)
	})

	t.Run("replaces highest-priority back-row target, front row untouched", func(t *testing.T) {
		// Rotation 2 of the 5-1 puts MB (w.s) at P5 and MB at P2.
		occ := fiveOneOccupants(t, "S", 1)
		require.Equal(t, rotation.Role("MB (w.s)"), occ[4].Role)
		require.Equal(t, rotation.Role("MB"), occ[1].Role)

		out := rotation.ApplyLibero(occ, &libero, middles, "", false)

		assert.Equal(t, rotation.RoleLibero, out[4].Role)
		assert.Equal(t, rotation.Role("MB (w.s)"), out[4].OriginalRole)
		assert.Equal(t, "Libby", out[4].Ref.Name)
		assert.Equal(t, rotation.Role("MB"), out[1].Role, "front-row middle stays on court")
		assert.Equal(t, 1, countLiberos(out))
	})

	t.Run("at most one substitution even with two back-row targets", func(t *testing.T) {
		var occ [6]rotation.Occupant
		for i := range occ {
			occ[i] = rotation.Occupant{Role: "OH"}
		}
		occ[4].Role = "MB"
		occ[5].Role = "MB (w.s)"

		out := rotation.ApplyLibero(occ, &libero, middles, "", false)

		assert.Equal(t, rotation.RoleLibero, out[4].Role, "P5 wins on priority")
		assert.Equal(t, rotation.Role("MB (w.s)"), out[5].Role)
		assert.Equal(t, 1, countLiberos(out))
	})

	t.Run("serving excludes P1 in automatic mode", func(t *testing.T) {
		var occ [6]rotation.Occupant
		for i := range occ {
			occ[i] = rotation.Occupant{Role: "OH"}
		}
		occ[0].Role = "MB"

		out := rotation.ApplyLibero(occ, &libero, middles, "", true)
		assert.Equal(t, 0, countLiberos(out), "the server cannot be replaced automatically")

		out = rotation.ApplyLibero(occ, &libero, middles, "", false)
		assert.Equal(t, rotation.RoleLibero, out[0].Role, "P1 is eligible once the team stops serving")
	})

	t.Run("manual lock bypasses the serving exclusion", func(t *testing.T) {
		// The opposite sits at P1 while the team serves; a manual lock on
		// Oppo must still substitute there.
		occ := fiveOneOccupants(t, "Oppo", 0)
		require.Equal(t, rotation.Role("Oppo"), occ[0].Role)

		out := rotation.ApplyLibero(occ, &libero, middles, "Oppo", true)

		assert.Equal(t, rotation.RoleLibero, out[0].Role)
		assert.Equal(t, rotation.Role("Oppo"), out[0].OriginalRole)
		assert.Equal(t, 1, countLiberos(out))
	})

	t.Run("manual lock ignores the default targets", func(t *testing.T) {
		occ := fiveOneOccupants(t, "S", 1)
		require.Equal(t, rotation.Role("MB (w.s)"), occ[4].Role)
		require.Equal(t, rotation.Role("S"), occ[5].Role)

		out := rotation.ApplyLibero(occ, &libero, middles, "S", false)

		assert.Equal(t, rotation.Role("MB (w.s)"), out[4].Role, "default target skipped under manual lock")
		assert.Equal(t, rotation.RoleLibero, out[5].Role)
		assert.Equal(t, rotation.Role("S"), out[5].OriginalRole)
	})

	t.Run("no back-row candidate is a no-op, not an error", func(t *testing.T) {
		// Rotation 1 of the 5-1 has MB in the front row at P3; with MB as the
		// only target there is nothing to replace.
		occ := fiveOneOccupants(t, "S", 0)
		require.Equal(t, rotation.Role("MB"), occ[2].Role)

		out := rotation.ApplyLibero(occ, &libero, []rotation.Role{"MB"}, "", false)
		assert.Equal(t, occ, out)
	})

	t.Run("empty target set without manual lock is a no-op", func(t *testing.T) {
		occ := fiveOneOccupants(t, "S", 1)
		out := rotation.ApplyLibero(occ, &libero, nil, "", false)
		assert.Equal(t, occ, out)
	})
}
