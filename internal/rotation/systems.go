package rotation

// SystemID identifies one of the supported offensive systems.
type SystemID string

const (
	SystemFiveOneOH SystemID = "5-1 (OH>S)"
	SystemFiveOneMB SystemID = "5-1 (MB>S)"
	SystemSixTwo    SystemID = "6-2"
	SystemFourTwo   SystemID = "4-2"
)

// System is an immutable ordered sequence of exactly six distinct roles: the
// fixed relative spacing of specialists around the court for one offensive
// system.
type System struct {
	ID    SystemID `json:"id"`
	Roles [6]Role  `json:"roles"`
}

// The base orders are read clockwise starting from the setter (or first
// setter). The two 5-1 variants differ in whether the outside hitter or the
// middle blocker follows the setter. The 6-2 and 4-2 share the same relative
// spacing but their role labels are scoped to their own system.
var systems = []System{
	{ID: SystemFiveOneOH, Roles: [6]Role{"S", "OH (w.s)", "MB", "Oppo", "OH", "MB (w.s)"}},
	{ID: SystemFiveOneMB, Roles: [6]Role{"S", "MB", "OH (w.s)", "Oppo", "MB (w.s)", "OH"}},
	{ID: SystemSixTwo, Roles: [6]Role{"S1", "OH1", "MB1", "S2", "OH2", "MB2"}},
	{ID: SystemFourTwo, Roles: [6]Role{"S1", "OH1", "MB1", "S2", "OH2", "MB2"}},
}

// Systems returns all supported offensive systems.
func Systems() []System {
	out := make([]System, len(systems))
	copy(out, systems)
	return out
}

// SystemByID looks up a system by its identifier.
func SystemByID(id SystemID) (System, bool) {
	for _, sys := range systems {
		if sys.ID == id {
			return sys, true
		}
	}
	return System{}, false
}

// Contains reports whether the role belongs to the system.
func (s System) Contains(role Role) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
