package roster

import "github.com/mvolden/sideout/internal/rotation"

// RosterStore defines the interface for interacting with team rosters. It also
// satisfies rotation.RosterResolver so the lineup assembler can resolve roster
// references directly against it.
type RosterStore interface {
	UpsertPlayers(players []PlayerInfo) error
	AddPlayer(playerID, teamID, name string, jersey int)
	GetPlayer(teamID, playerID string) (PlayerInfo, bool)
	GetTeamPlayers(teamID string) ([]PlayerInfo, error)
	GetAllPlayers() ([]PlayerInfo, error)
	IsKnownPlayer(playerID string) bool
	Clear()

	LookupPlayer(teamID, playerID string) (rotation.ResolvedPlayer, bool)
}
