package rotation

import "strings"

// roleCategory buckets roles for the rally mapping. The mapping is independent
// of the offensive system: any MB-prefixed role is a middle, any OH-prefixed
// role is an outside, everything else (setters, opposite) shares the
// setter/opposite slot.
type roleCategory int

const (
	catSetter roleCategory = iota
	catMiddle
	catOutside
)

func categoryOf(role Role) roleCategory {
	switch {
	case strings.HasPrefix(string(role), "MB"):
		return catMiddle
	case strings.HasPrefix(string(role), "OH"):
		return catOutside
	default:
		return catSetter
	}
}

// ToRally converts a serving-formation lineup into the in-play rally
// formation. Front-row occupants map to P2/P3/P4 and back-row occupants to
// P1/P5/P6 by role category; the libero maps by the category of the role it is
// covering. Vacant positions are simply omitted. The input lineup is not
// mutated.
func ToRally(serving Lineup) Lineup {
	rally := make(Lineup, len(serving))
	for _, pos := range Positions {
		occ, ok := serving[pos]
		if !ok {
			continue
		}
		rally[rallySlot(pos, occ)] = occ
	}
	return rally
}

func rallySlot(pos Position, occ Occupant) Position {
	role := occ.Role
	if role == RoleLibero {
		role = occ.OriginalRole
	}
	if pos.BackRow() {
		switch categoryOf(role) {
		case catMiddle:
			return P5
		case catOutside:
			return P6
		default:
			return P1
		}
	}
	switch categoryOf(role) {
	case catMiddle:
		return P3
	case catOutside:
		return P4
	default:
		return P2
	}
}
