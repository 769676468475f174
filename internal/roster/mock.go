package roster

import (
	"sync"

	"github.com/mvolden/sideout/internal/rotation"
)

// MockStore is a mock implementation of the RosterStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayersFunc  func(players []PlayerInfo) error
	AddPlayerFunc      func(playerID, teamID, name string, jersey int)
	GetPlayerFunc      func(teamID, playerID string) (PlayerInfo, bool)
	GetTeamPlayersFunc func(teamID string) ([]PlayerInfo, error)
	GetAllPlayersFunc  func() ([]PlayerInfo, error)
	IsKnownPlayerFunc  func(playerID string) bool
	ClearFunc          func()

	// Call records
	UpsertPlayersCalls [][]PlayerInfo
	LookupPlayerCalls  []struct {
		TeamID   string
		PlayerID string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertPlayers(players []PlayerInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayersCalls = append(m.UpsertPlayersCalls, players)
	if m.UpsertPlayersFunc != nil {
		return m.UpsertPlayersFunc(players)
	}
	return nil
}

func (m *MockStore) AddPlayer(playerID, teamID, name string, jersey int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPlayerFunc != nil {
		m.AddPlayerFunc(playerID, teamID, name, jersey)
	}
}

func (m *MockStore) GetPlayer(teamID, playerID string) (PlayerInfo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(teamID, playerID)
	}
	return PlayerInfo{}, false
}

func (m *MockStore) GetTeamPlayers(teamID string) ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTeamPlayersFunc != nil {
		return m.GetTeamPlayersFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) GetAllPlayers() ([]PlayerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) IsKnownPlayer(playerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.IsKnownPlayerFunc != nil {
		return m.IsKnownPlayerFunc(playerID)
	}
	return false
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) LookupPlayer(teamID, playerID string) (rotation.ResolvedPlayer, bool) {
	m.mu.Lock()
	m.LookupPlayerCalls = append(m.LookupPlayerCalls, struct {
		TeamID   string
		PlayerID string
	}{teamID, playerID})
	m.mu.Unlock()

	p, ok := m.GetPlayer(teamID, playerID)
	if !ok {
		return rotation.ResolvedPlayer{}, false
	}
	return rotation.ResolvedPlayer{Name: p.Name, Jersey: p.Jersey}, true
}
