package rotation

import "fmt"

// Role is a specialist label scoped to one offensive system. A role string is
// only meaningful relative to the system it was declared in.
type Role string

// RoleLibero is the synthetic role reserved for the libero in every system.
const RoleLibero Role = "L"

// Position is one of the six fixed clockwise court slots. P1 is always the
// current server's slot. Internally positions are 0-indexed.
type Position int

const (
	P1 Position = iota
	P2
	P3
	P4
	P5
	P6
)

// Positions lists all court positions in slot order.
var Positions = [6]Position{P1, P2, P3, P4, P5, P6}

func (p Position) String() string {
	return fmt.Sprintf("P%d", int(p)+1)
}

// BackRow reports whether the position is a back-row slot (P1, P5, P6).
func (p Position) BackRow() bool {
	return p == P1 || p == P5 || p == P6
}

// MarshalText renders the position as its "P1".."P6" label, which also keys
// JSON-encoded lineups.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(text []byte) error {
	parsed, ok := ParsePosition(string(text))
	if !ok {
		return fmt.Errorf("invalid position %q", string(text))
	}
	*p = parsed
	return nil
}

// ParsePosition converts a "P1".."P6" label into a Position.
func ParsePosition(s string) (Position, bool) {
	for _, p := range Positions {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// Occupant describes who holds one court position in one rotation. OriginalRole
// is set only when Role == RoleLibero and records which specialist role the
// libero is currently covering. Name and Jersey are filled in by the assembler
// once the player reference has been resolved.
type Occupant struct {
	Role         Role      `json:"role"`
	Ref          PlayerRef `json:"ref"`
	OriginalRole Role      `json:"original_role,omitempty"`
	Name         string    `json:"name,omitempty"`
	Jersey       int       `json:"jersey,omitempty"`
}

// Lineup maps court positions to their occupants. A missing key means the slot
// is vacant, which is legitimate during the serve-to-rally transition window.
type Lineup map[Position]Occupant

// Config is a team's rotation configuration for one set. The rotation counter
// and libero swap state are deliberately not part of it; they live in the
// per-team state record owned by the match engine.
type Config struct {
	System        SystemID           `json:"system"`
	Players       map[Role]PlayerRef `json:"players"`
	Libero        *PlayerRef         `json:"libero,omitempty"`
	LiberoTargets []Role             `json:"libero_targets,omitempty"`
	StartingP1    Role               `json:"starting_p1"`
}
