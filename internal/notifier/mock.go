package notifier

import (
	"sync"

	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/rotation"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendSetResultNotificationFunc   func(session *matchlog.MatchSession, score match.Score, winner match.TeamSide, dryRun bool) error
	SendMatchResultNotificationFunc func(session *matchlog.MatchSession, winner match.TeamSide, dryRun bool) error
	SendLineupNotificationFunc      func(side match.TeamSide, rotationNumber int, lineup rotation.Lineup, dryRun bool) error

	// Call records
	SendSetResultNotificationCalls []struct {
		Session *matchlog.MatchSession
		Score   match.Score
		Winner  match.TeamSide
	}
	SendMatchResultNotificationCalls []struct {
		Session *matchlog.MatchSession
		Winner  match.TeamSide
	}
	SendLineupNotificationCalls []struct {
		Side           match.TeamSide
		RotationNumber int
		Lineup         rotation.Lineup
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSetResultNotificationCalls = nil
	m.SendMatchResultNotificationCalls = nil
	m.SendLineupNotificationCalls = nil
}

func (m *Mock) SendSetResultNotification(session *matchlog.MatchSession, score match.Score, winner match.TeamSide, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSetResultNotificationCalls = append(m.SendSetResultNotificationCalls, struct {
		Session *matchlog.MatchSession
		Score   match.Score
		Winner  match.TeamSide
	}{session, score, winner})
	if m.SendSetResultNotificationFunc != nil {
		return m.SendSetResultNotificationFunc(session, score, winner, dryRun)
	}
	return nil
}

func (m *Mock) SendMatchResultNotification(session *matchlog.MatchSession, winner match.TeamSide, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultNotificationCalls = append(m.SendMatchResultNotificationCalls, struct {
		Session *matchlog.MatchSession
		Winner  match.TeamSide
	}{session, winner})
	if m.SendMatchResultNotificationFunc != nil {
		return m.SendMatchResultNotificationFunc(session, winner, dryRun)
	}
	return nil
}

func (m *Mock) SendLineupNotification(side match.TeamSide, rotationNumber int, lineup rotation.Lineup, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLineupNotificationCalls = append(m.SendLineupNotificationCalls, struct {
		Side           match.TeamSide
		RotationNumber int
		Lineup         rotation.Lineup
	}{side, rotationNumber, lineup})
	if m.SendLineupNotificationFunc != nil {
		return m.SendLineupNotificationFunc(side, rotationNumber, lineup, dryRun)
	}
	return nil
}
