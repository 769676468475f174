package matchlog

import (
	"database/sql"
	"sync"

	"github.com/mvolden/sideout/internal/match"
)

// store handles all database operations for match sessions.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// MatchStatus defines the lifecycle state of a match session.
type MatchStatus string

const (
	// StatusLive means points may be recorded for the current set.
	StatusLive MatchStatus = "LIVE"
	// StatusBetweenSets means the current set is complete and point entry is
	// frozen until the next set is started.
	StatusBetweenSets MatchStatus = "BETWEEN_SETS"
	// StatusCompleted means the match is over.
	StatusCompleted MatchStatus = "COMPLETED"
)

// MatchSession is the persisted state of one tracked match: both teams' state
// records, the set bookkeeping and who is serving. FirstServing records the
// opening server of the current set so the point log can be replayed.
type MatchSession struct {
	ID           string          `json:"id"`
	CreatedAt    int64           `json:"created_at"`
	Status       MatchStatus     `json:"status"`
	SetNumber    int             `json:"set_number"`
	ServingTeam  match.TeamSide  `json:"serving_team"`
	FirstServing match.TeamSide  `json:"first_serving"`
	HomeSets     int             `json:"home_sets"`
	AwaySets     int             `json:"away_sets"`
	Home         match.TeamState `json:"home"`
	Away         match.TeamState `json:"away"`
}
