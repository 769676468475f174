package roster

import (
	"database/sql"
	"sync"
)

// store handles all database operations for rosters.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerInfo represents a roster player in the store.
type PlayerInfo struct {
	ID       string `json:"id"`
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	Jersey   int    `json:"jersey"`
	Position string `json:"position,omitempty"`
}
