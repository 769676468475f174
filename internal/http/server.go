package http

import (
	"net/http"

	"github.com/mvolden/sideout/internal/config"
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/metrics"
	"github.com/mvolden/sideout/internal/notifier"
	"github.com/mvolden/sideout/internal/pubsub"
	"github.com/mvolden/sideout/internal/roster"
)

func NewServer(matches matchlog.MatchStore, rosterStore roster.RosterStore, engine *match.Engine, metricsSvc metrics.Metrics, metricsStore metrics.MetricsStore, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Matches:        matches,
		Roster:         rosterStore,
		Engine:         engine,
		Metrics:        metricsSvc,
		MetricsStore:   metricsStore,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/stats", Chain(s.StatsHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/matches", Chain(s.MatchesHandler(), paramsMiddleware))
	s.Router.Handle("/matches/state", Chain(s.MatchStateHandler(), paramsMiddleware))
	s.Router.Handle("/lineup", Chain(s.LineupHandler(), paramsMiddleware))
	s.Router.Handle("/point", Chain(s.PointHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/point", Chain(s.PointEventPushHandler(), paramsMiddleware))
	s.Router.Handle("/rotate", Chain(s.RotateHandler(), paramsMiddleware))
	s.Router.Handle("/libero/in", Chain(s.LiberoInHandler(), paramsMiddleware))
	s.Router.Handle("/libero/out", Chain(s.LiberoOutHandler(), paramsMiddleware))
	s.Router.Handle("/restore", Chain(s.RestoreHandler(), paramsMiddleware))
	s.Router.Handle("/set/next", Chain(s.NextSetHandler(), paramsMiddleware))
	s.Router.Handle("/roster", Chain(s.RosterHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
