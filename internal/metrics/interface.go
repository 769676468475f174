package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPointsRecorded()
	IncSideOuts()
	IncManualRotations()
	IncLiberoSwaps()
	ObserveAssemblyDuration(duration float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// CounterKey names one persistent counter row.
type CounterKey string

const (
	CounterPointsRecorded  CounterKey = "points_recorded"
	CounterSideOuts        CounterKey = "side_outs"
	CounterManualRotations CounterKey = "manual_rotations"
	CounterLiberoSwaps     CounterKey = "libero_swaps"
)

// MetricsStore persists the named counters across restarts. The Prometheus
// registry resets with the process; these do not.
type MetricsStore interface {
	Increment(key CounterKey)
	GetAll() (map[string]int, error)
}
