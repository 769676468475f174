package rotation

import "fmt"

// RefKind tags the two variants of a player reference.
type RefKind string

const (
	// RefRoster references a player by id, resolved against the roster
	// collaborator.
	RefRoster RefKind = "ROSTER"
	// RefCustom is a self-contained ad-hoc name/number reference that needs
	// no external lookup.
	RefCustom RefKind = "CUSTOM"
)

// PlayerRef is a tagged reference to a player. Roster references carry
// PlayerID and TeamID; custom references carry Jersey and Name.
type PlayerRef struct {
	Kind     RefKind `json:"kind"`
	PlayerID string  `json:"player_id,omitempty"`
	TeamID   string  `json:"team_id,omitempty"`
	Jersey   int     `json:"jersey,omitempty"`
	Name     string  `json:"name,omitempty"`
}

// RosterRef builds a reference to a roster player.
func RosterRef(teamID, playerID string) PlayerRef {
	return PlayerRef{Kind: RefRoster, TeamID: teamID, PlayerID: playerID}
}

// CustomRef builds a self-contained reference from a jersey number and name.
func CustomRef(jersey int, name string) PlayerRef {
	return PlayerRef{Kind: RefCustom, Jersey: jersey, Name: name}
}

// Valid reports whether the reference carries enough data to render. A custom
// reference needs a non-empty name or a jersey number above zero.
func (r PlayerRef) Valid() bool {
	switch r.Kind {
	case RefRoster:
		return r.PlayerID != ""
	case RefCustom:
		return r.Name != "" || r.Jersey > 0
	}
	return false
}

// ResolvedPlayer is the display data a roster lookup yields.
type ResolvedPlayer struct {
	Name   string
	Jersey int
}

// RosterResolver resolves roster references to display data. An unresolvable
// id is reported via the bool, never an error; the assembler substitutes a
// placeholder so a stale roster never blocks gameplay tracking.
type RosterResolver interface {
	LookupPlayer(teamID, playerID string) (ResolvedPlayer, bool)
}

// placeholder is the defined fallback occupant identity for position pos.
func placeholder(pos Position) ResolvedPlayer {
	return ResolvedPlayer{
		Name:   fmt.Sprintf("Player %d", int(pos)+1),
		Jersey: int(pos) + 1,
	}
}
