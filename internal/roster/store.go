package roster

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/mvolden/sideout/internal/rotation"
)

// New creates a new RosterStore.
func New(db *sql.DB) RosterStore {
	return &store{
		db: db,
	}
}

// UpsertPlayers inserts or updates a batch of roster players in one
// transaction.
func (s *store) UpsertPlayers(players []PlayerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, team_id, name, jersey, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			team_id = excluded.team_id,
			name = excluded.name,
			jersey = excluded.jersey,
			position = excluded.position;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		if _, err := stmt.Exec(p.ID, p.TeamID, p.Name, p.Jersey, p.Position); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *store) AddPlayer(playerID, teamID, name string, jersey int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return
	}

	if !exists {
		_, err := s.db.Exec("INSERT INTO players (id, team_id, name, jersey) VALUES (?, ?, ?, ?)", playerID, teamID, name, jersey)
		if err != nil {
			log.Error("Failed to add player", "error", err, "playerID", playerID)
		} else {
			log.Info("Added new player to the roster", "playerID", playerID, "name", name, "jersey", jersey)
		}
	} else {
		_, err := s.db.Exec("UPDATE players SET team_id = ?, name = ?, jersey = ? WHERE id = ?", teamID, name, jersey, playerID)
		if err != nil {
			log.Error("Failed to update player", "error", err, "playerID", playerID)
		} else {
			log.Info("Updated existing roster player", "playerID", playerID, "name", name, "jersey", jersey)
		}
	}
}

func (s *store) GetPlayer(teamID, playerID string) (PlayerInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p PlayerInfo
	var name, position sql.NullString
	err := s.db.QueryRow(
		"SELECT id, team_id, name, jersey, position FROM players WHERE id = ? AND team_id = ?",
		playerID, teamID,
	).Scan(&p.ID, &p.TeamID, &name, &p.Jersey, &position)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Error("Failed to query player", "error", err, "playerID", playerID)
		}
		return PlayerInfo{}, false
	}
	p.Name = name.String
	p.Position = position.String
	return p, true
}

func (s *store) GetTeamPlayers(teamID string) ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, team_id, name, jersey, position FROM players WHERE team_id = ? ORDER BY jersey", teamID)
	if err != nil {
		log.Error("Failed to query team players", "error", err, "teamID", teamID)
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

func (s *store) GetAllPlayers() ([]PlayerInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, team_id, name, jersey, position FROM players ORDER BY team_id, jersey")
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	return scanPlayers(rows)
}

func (s *store) IsKnownPlayer(playerID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "playerID", playerID)
		return false
	}
	return exists
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
	}
}

// LookupPlayer implements rotation.RosterResolver. A miss is reported through
// the bool so the assembler can fall back to its placeholder.
func (s *store) LookupPlayer(teamID, playerID string) (rotation.ResolvedPlayer, bool) {
	p, ok := s.GetPlayer(teamID, playerID)
	if !ok {
		return rotation.ResolvedPlayer{}, false
	}
	return rotation.ResolvedPlayer{Name: p.Name, Jersey: p.Jersey}, true
}

func scanPlayers(rows *sql.Rows) ([]PlayerInfo, error) {
	var players []PlayerInfo
	for rows.Next() {
		var p PlayerInfo
		var name, position sql.NullString
		if err := rows.Scan(&p.ID, &p.TeamID, &name, &p.Jersey, &position); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		p.Name = name.String
		p.Position = position.String
		players = append(players, p)
	}
	return players, nil
}
