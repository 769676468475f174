package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	pointsRecorded    int
	sideOuts          int
	manualRotations   int
	liberoSwaps       int
	assemblyDurations []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		assemblyDurations: make([]float64, 0),
	}
}

func (m *Mock) IncPointsRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointsRecorded++
}

func (m *Mock) IncSideOuts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sideOuts++
}

func (m *Mock) IncManualRotations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.manualRotations++
}

func (m *Mock) IncLiberoSwaps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.liberoSwaps++
}

func (m *Mock) ObserveAssemblyDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assemblyDurations = append(m.assemblyDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// PointsRecorded returns the number of times IncPointsRecorded was called.
func (m *Mock) PointsRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointsRecorded
}

// SideOuts returns the number of times IncSideOuts was called.
func (m *Mock) SideOuts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sideOuts
}

// ManualRotations returns the number of times IncManualRotations was called.
func (m *Mock) ManualRotations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.manualRotations
}

// LiberoSwaps returns the number of times IncLiberoSwaps was called.
func (m *Mock) LiberoSwaps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liberoSwaps
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
