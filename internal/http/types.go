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

type Server struct {
	Matches        matchlog.MatchStore
	Roster         roster.RosterStore
	Engine         *match.Engine
	Metrics        metrics.Metrics
	MetricsStore   metrics.MetricsStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
