package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PointsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sideout_points_recorded_total",
			Help: "The total number of rally outcomes recorded.",
		}),
		SideOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sideout_side_outs_total",
			Help: "The total number of points that triggered a rotation advance.",
		}),
		ManualRotations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sideout_manual_rotations_total",
			Help: "The total number of manual rotation overrides.",
		}),
		LiberoSwaps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sideout_libero_swaps_total",
			Help: "The total number of manual libero swap-ins and swap-outs.",
		}),
		AssemblyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sideout_lineup_assembly_duration_seconds",
			Help:    "The duration of individual lineup assemblies.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sideout_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sideout_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sideout_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PointsRecorded,
		s.SideOuts,
		s.ManualRotations,
		s.LiberoSwaps,
		s.AssemblyDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPointsRecorded() {
	s.PointsRecorded.Inc()
}

func (s *Service) IncSideOuts() {
	s.SideOuts.Inc()
}

func (s *Service) IncManualRotations() {
	s.ManualRotations.Inc()
}

func (s *Service) IncLiberoSwaps() {
	s.LiberoSwaps.Inc()
}

func (s *Service) ObserveAssemblyDuration(duration float64) {
	s.AssemblyDuration.Observe(duration)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
