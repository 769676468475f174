package rotation

import "fmt"

// Assemble materializes the lineup for one rotation number (1..6): base
// occupant order from the generator, libero substitution, then player
// reference resolution against the roster.
//
// A broken configuration surfaces as a ConfigurationError or InvalidRoleError;
// it is never silently defaulted. Unresolvable roster references resolve to a
// defined placeholder instead so a stale roster never corrupts rendering.
func Assemble(cfg Config, rotationNumber int, roster RosterResolver, manualRole Role, serving bool) (Lineup, error) {
	sys, ok := SystemByID(cfg.System)
	if !ok {
		return nil, &ConfigurationError{System: cfg.System, Reason: "unknown system"}
	}
	if rotationNumber < 1 || rotationNumber > 6 {
		return nil, &ConfigurationError{System: cfg.System, Reason: fmt.Sprintf("rotation number %d out of range 1..6", rotationNumber)}
	}
	if manualRole != "" && !sys.Contains(manualRole) {
		return nil, &InvalidRoleError{Role: manualRole, System: sys.ID}
	}

	order, err := StartingOrder(sys, cfg.StartingP1)
	if err != nil {
		return nil, err
	}

	occ := RotationOccupants(order, cfg.Players, rotationNumber-1)
	occ = ApplyLibero(occ, cfg.Libero, cfg.LiberoTargets, manualRole, serving)

	lineup := make(Lineup, 6)
	for i, pos := range Positions {
		lineup[pos] = resolve(occ[i], pos, roster)
	}
	return lineup, nil
}

// ValidateComplete checks the configuration the way the configuration UI does
// before a set starts: the system must be known, the starting role must belong
// to it and every role of the system must have a valid player reference.
func ValidateComplete(cfg Config) error {
	sys, ok := SystemByID(cfg.System)
	if !ok {
		return &ConfigurationError{System: cfg.System, Reason: "unknown system"}
	}
	if !sys.Contains(cfg.StartingP1) {
		return &InvalidRoleError{Role: cfg.StartingP1, System: sys.ID}
	}
	for _, role := range sys.Roles {
		ref, ok := cfg.Players[role]
		if !ok || !ref.Valid() {
			return &ConfigurationError{System: cfg.System, Reason: fmt.Sprintf("no player assigned to role %q", role)}
		}
	}
	if cfg.Libero != nil && !cfg.Libero.Valid() {
		return &ConfigurationError{System: cfg.System, Reason: "libero reference is not valid"}
	}
	for _, role := range cfg.LiberoTargets {
		if !sys.Contains(role) {
			return &InvalidRoleError{Role: role, System: sys.ID}
		}
	}
	return nil
}

func resolve(occ Occupant, pos Position, roster RosterResolver) Occupant {
	switch occ.Ref.Kind {
	case RefRoster:
		if roster != nil {
			if p, ok := roster.LookupPlayer(occ.Ref.TeamID, occ.Ref.PlayerID); ok {
				occ.Name = p.Name
				occ.Jersey = p.Jersey
				return occ
			}
		}
	case RefCustom:
		if occ.Ref.Valid() {
			occ.Name = occ.Ref.Name
			occ.Jersey = occ.Ref.Jersey
			return occ
		}
	}
	p := placeholder(pos)
	occ.Name = p.Name
	occ.Jersey = p.Jersey
	return occ
}
