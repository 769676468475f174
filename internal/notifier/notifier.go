package notifier

import (
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/rotation"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For completed sets
	SendSetResultNotification(session *matchlog.MatchSession, score match.Score, winner match.TeamSide, dryRun bool) error
	// For completed matches
	SendMatchResultNotification(session *matchlog.MatchSession, winner match.TeamSide, dryRun bool) error
	// For lineup changes worth announcing (set openers, restored matches)
	SendLineupNotification(side match.TeamSide, rotationNumber int, lineup rotation.Lineup, dryRun bool) error
}
