package matchlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/rotation"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// CreateMatch persists a fresh session with both teams at their configured
// starting state and the given team serving first.
func (s *store) CreateMatch(home, away match.TeamState, firstServing match.TeamSide) (*MatchSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &MatchSession{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().Unix(),
		Status:       StatusLive,
		SetNumber:    1,
		ServingTeam:  firstServing,
		FirstServing: firstServing,
		Home:         home,
		Away:         away,
	}

	homeJSON, err := json.Marshal(session.Home)
	if err != nil {
		return nil, fmt.Errorf("failed to encode home state: %w", err)
	}
	awayJSON, err := json.Marshal(session.Away)
	if err != nil {
		return nil, fmt.Errorf("failed to encode away state: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO match_sessions (id, created_at, status, set_number, serving_team, first_serving, home_sets, away_sets, home_state_json, away_state_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, session.ID, session.CreatedAt, session.Status, session.SetNumber, session.ServingTeam, session.FirstServing, session.HomeSets, session.AwaySets, homeJSON, awayJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to create match session: %w", err)
	}

	log.Info("Created match session", "matchID", session.ID, "first_serving", firstServing)
	return session, nil
}

// SaveMatch writes the session's mutable fields back to the database.
func (s *store) SaveMatch(m *MatchSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	homeJSON, err := json.Marshal(m.Home)
	if err != nil {
		return fmt.Errorf("failed to encode home state: %w", err)
	}
	awayJSON, err := json.Marshal(m.Away)
	if err != nil {
		return fmt.Errorf("failed to encode away state: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE match_sessions
		SET status = ?, set_number = ?, serving_team = ?, first_serving = ?, home_sets = ?, away_sets = ?, home_state_json = ?, away_state_json = ?
		WHERE id = ?
	`, m.Status, m.SetNumber, m.ServingTeam, m.FirstServing, m.HomeSets, m.AwaySets, homeJSON, awayJSON, m.ID)
	if err != nil {
		return fmt.Errorf("failed to save match session: %w", err)
	}
	return nil
}

func (s *store) GetMatch(matchID string) (*MatchSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, created_at, status, set_number, serving_team, first_serving, home_sets, away_sets, home_state_json, away_state_json
		FROM match_sessions WHERE id = ?
	`, matchID)

	session, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("match %q not found", matchID)
		}
		return nil, err
	}
	return session, nil
}

func (s *store) GetAllMatches() ([]*MatchSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, created_at, status, set_number, serving_team, first_serving, home_sets, away_sets, home_state_json, away_state_json
		FROM match_sessions ORDER BY created_at DESC
	`)
	if err != nil {
		log.Error("Failed to query match sessions", "error", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []*MatchSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			log.Error("Failed to scan match session row", "error", err)
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// AppendPointEvent records one point outcome together with a snapshot of the
// lineup it produced. The snapshot is encoded with MessagePack; replay does
// not need it, it exists for auditing and the dashboard consumers.
func (s *store) AppendPointEvent(matchID string, setNumber int, ev match.PointEvent, lineup rotation.Lineup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blob []byte
	if lineup != nil {
		var err error
		blob, err = msgpack.Marshal(lineup)
		if err != nil {
			return fmt.Errorf("failed to encode lineup snapshot: %w", err)
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO point_events (match_id, set_number, seq, scoring_team, recorded_at, lineup_blob)
		VALUES (?, ?, ?, ?, ?, ?)
	`, matchID, setNumber, ev.Seq, ev.ScoringTeam, time.Now().Unix(), blob)
	if err != nil {
		return fmt.Errorf("failed to append point event: %w", err)
	}
	return nil
}

func (s *store) GetPointEvents(matchID string, setNumber int) ([]match.PointEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT seq, scoring_team FROM point_events
		WHERE match_id = ? AND set_number = ?
		ORDER BY seq
	`, matchID, setNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []match.PointEvent
	for rows.Next() {
		var ev match.PointEvent
		if err := rows.Scan(&ev.Seq, &ev.ScoringTeam); err != nil {
			log.Error("Failed to scan point event row", "error", err)
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

// GetLineupSnapshot decodes the lineup stored with one point event.
func (s *store) GetLineupSnapshot(matchID string, setNumber, seq int) (rotation.Lineup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blob []byte
	err := s.db.QueryRow(`
		SELECT lineup_blob FROM point_events
		WHERE match_id = ? AND set_number = ? AND seq = ?
	`, matchID, setNumber, seq).Scan(&blob)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, nil
	}

	var lineup rotation.Lineup
	if err := msgpack.Unmarshal(blob, &lineup); err != nil {
		return nil, fmt.Errorf("failed to decode lineup snapshot: %w", err)
	}
	return lineup, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	if _, err := tx.Exec("DELETE FROM point_events"); err != nil {
		log.Error("Failed to clear point_events table", "error", err)
		tx.Rollback()
		return
	}
	if _, err := tx.Exec("DELETE FROM match_sessions"); err != nil {
		log.Error("Failed to clear match_sessions table", "error", err)
		tx.Rollback()
		return
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func (s *store) ClearMatch(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec("DELETE FROM match_sessions WHERE id = ?", matchID); err != nil {
		log.Error("Failed to clear match", "error", err, "matchID", matchID)
	}
}

// scanSession is a helper to scan a single match session row.
func scanSession(scanner interface{ Scan(...any) error }) (*MatchSession, error) {
	var session MatchSession
	var homeJSON, awayJSON []byte

	err := scanner.Scan(
		&session.ID, &session.CreatedAt, &session.Status, &session.SetNumber,
		&session.ServingTeam, &session.FirstServing, &session.HomeSets, &session.AwaySets,
		&homeJSON, &awayJSON,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(homeJSON, &session.Home); err != nil {
		return nil, fmt.Errorf("failed to decode home state for match %s: %w", session.ID, err)
	}
	if err := json.Unmarshal(awayJSON, &session.Away); err != nil {
		return nil, fmt.Errorf("failed to decode away state for match %s: %w", session.ID, err)
	}
	return &session, nil
}
