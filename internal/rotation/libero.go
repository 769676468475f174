package rotation

// liberoPriority is the fixed scan order for back-row substitution candidates.
var liberoPriority = [3]Position{P5, P6, P1}

// ApplyLibero applies the single-libero substitution rules to a rotation's
// occupant list and returns the (possibly updated) list.
//
// With manualRole set, the libero is pinned to the first candidate position
// whose role equals manualRole; a manual lock bypasses the serving exclusion,
// so P1 stays a candidate even while serving. In automatic mode the libero
// replaces the first candidate whose role is in targets, and P1 is excluded
// entirely while serving (the server must be the original specialist).
//
// At most one substitution occurs: only a single libero is allowed on court
// even if several target roles sit in the back row at once. No candidate
// matching is a normal steady state, not an error.
func ApplyLibero(occ [6]Occupant, libero *PlayerRef, targets []Role, manualRole Role, serving bool) [6]Occupant {
	if libero == nil {
		return occ
	}

	manual := manualRole != ""
	if !manual && len(targets) == 0 {
		return occ
	}

	for _, pos := range liberoPriority {
		if pos == P1 && serving && !manual {
			continue
		}
		i := int(pos)
		var match bool
		if manual {
			match = occ[i].Role == manualRole
		} else {
			match = containsRole(targets, occ[i].Role)
		}
		if !match {
			continue
		}
		occ[i] = Occupant{
			Role:         RoleLibero,
			Ref:          *libero,
			OriginalRole: occ[i].Role,
		}
		break
	}
	return occ
}

func containsRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
