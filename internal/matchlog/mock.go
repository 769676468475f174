package matchlog

import (
	"fmt"
	"sync"

	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/rotation"
)

// MockStore is a mock implementation of the MatchStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateMatchFunc       func(home, away match.TeamState, firstServing match.TeamSide) (*MatchSession, error)
	GetMatchFunc          func(matchID string) (*MatchSession, error)
	GetAllMatchesFunc     func() ([]*MatchSession, error)
	SaveMatchFunc         func(m *MatchSession) error
	AppendPointEventFunc  func(matchID string, setNumber int, ev match.PointEvent, lineup rotation.Lineup) error
	GetPointEventsFunc    func(matchID string, setNumber int) ([]match.PointEvent, error)
	GetLineupSnapshotFunc func(matchID string, setNumber, seq int) (rotation.Lineup, error)

	// Call records
	SaveMatchCalls        []*MatchSession
	AppendPointEventCalls []struct {
		MatchID   string
		SetNumber int
		Event     match.PointEvent
	}
	ClearCalls      int
	ClearMatchCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreateMatch(home, away match.TeamState, firstServing match.TeamSide) (*MatchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(home, away, firstServing)
	}
	return &MatchSession{
		ID:           "mock-match",
		Status:       StatusLive,
		SetNumber:    1,
		ServingTeam:  firstServing,
		FirstServing: firstServing,
		Home:         home,
		Away:         away,
	}, nil
}

func (m *MockStore) GetMatch(matchID string) (*MatchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(matchID)
	}
	return nil, fmt.Errorf("match %q not found", matchID)
}

func (m *MockStore) GetAllMatches() ([]*MatchSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllMatchesFunc != nil {
		return m.GetAllMatchesFunc()
	}
	return nil, nil
}

func (m *MockStore) SaveMatch(session *MatchSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveMatchCalls = append(m.SaveMatchCalls, session)
	if m.SaveMatchFunc != nil {
		return m.SaveMatchFunc(session)
	}
	return nil
}

func (m *MockStore) AppendPointEvent(matchID string, setNumber int, ev match.PointEvent, lineup rotation.Lineup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AppendPointEventCalls = append(m.AppendPointEventCalls, struct {
		MatchID   string
		SetNumber int
		Event     match.PointEvent
	}{matchID, setNumber, ev})
	if m.AppendPointEventFunc != nil {
		return m.AppendPointEventFunc(matchID, setNumber, ev, lineup)
	}
	return nil
}

func (m *MockStore) GetPointEvents(matchID string, setNumber int) ([]match.PointEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPointEventsFunc != nil {
		return m.GetPointEventsFunc(matchID, setNumber)
	}
	return nil, nil
}

func (m *MockStore) GetLineupSnapshot(matchID string, setNumber, seq int) (rotation.Lineup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetLineupSnapshotFunc != nil {
		return m.GetLineupSnapshotFunc(matchID, setNumber, seq)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
}

func (m *MockStore) ClearMatch(matchID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearMatchCalls = append(m.ClearMatchCalls, matchID)
}
