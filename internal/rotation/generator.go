package rotation

// StartingOrder rotates the system's base order so startingP1 comes first.
// Returns an InvalidRoleError if startingP1 is not part of the system.
func StartingOrder(sys System, startingP1 Role) ([6]Role, error) {
	start := -1
	for i, r := range sys.Roles {
		if r == startingP1 {
			start = i
			break
		}
	}
	if start == -1 {
		return [6]Role{}, &InvalidRoleError{Role: startingP1, System: sys.ID}
	}

	var order [6]Role
	for i := range order {
		order[i] = sys.Roles[(start+i)%6]
	}
	return order, nil
}

// RotationOccupants produces the occupant list for rotation r (0-indexed):
// position i holds order[(i+r) mod 6]. A role with no player mapping yields an
// occupant with a zero reference; absent data is rendered as a placeholder
// later, not rejected here.
func RotationOccupants(order [6]Role, players map[Role]PlayerRef, r int) [6]Occupant {
	var occ [6]Occupant
	for i := range occ {
		role := order[(i+r)%6]
		occ[i] = Occupant{
			Role: role,
			Ref:  players[role],
		}
	}
	return occ
}

// AllRotations returns the six serving-order occupant lists a team cycles
// through over a set, before any libero substitution.
func AllRotations(sys System, startingP1 Role, players map[Role]PlayerRef) ([6][6]Occupant, error) {
	order, err := StartingOrder(sys, startingP1)
	if err != nil {
		return [6][6]Occupant{}, err
	}
	var out [6][6]Occupant
	for r := 0; r < 6; r++ {
		out[r] = RotationOccupants(order, players, r)
	}
	return out, nil
}
