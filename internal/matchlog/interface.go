package matchlog

import (
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/rotation"
)

// MatchStore defines the interface for persisting match sessions and their
// point-event logs. The store is dumb persistence: configurations are
// validated by the caller before they get here, and restored ones take the
// same validation path when loaded.
type MatchStore interface {
	CreateMatch(home, away match.TeamState, firstServing match.TeamSide) (*MatchSession, error)
	GetMatch(matchID string) (*MatchSession, error)
	GetAllMatches() ([]*MatchSession, error)
	SaveMatch(m *MatchSession) error
	AppendPointEvent(matchID string, setNumber int, ev match.PointEvent, lineup rotation.Lineup) error
	GetPointEvents(matchID string, setNumber int) ([]match.PointEvent, error)
	GetLineupSnapshot(matchID string, setNumber, seq int) (rotation.Lineup, error)
	Clear()
	ClearMatch(matchID string)
}
