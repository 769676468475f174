package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/metrics"
	"github.com/mvolden/sideout/internal/notifier"
	"github.com/mvolden/sideout/internal/rotation"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendSetResultNotification(session *matchlog.MatchSession, score match.Score, winner match.TeamSide, dryRun bool) error {
	msg := s.formatSetResult(session, score, winner)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendMatchResultNotification(session *matchlog.MatchSession, winner match.TeamSide, dryRun bool) error {
	msg := s.formatMatchResult(session, winner)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendLineupNotification(side match.TeamSide, rotationNumber int, lineup rotation.Lineup, dryRun bool) error {
	msg := s.formatLineup(side, rotationNumber, lineup)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatSetResult creates the Slack message for a completed set using Block Kit.
func (s *Notifier) formatSetResult(session *matchlog.MatchSession, score match.Score, winner match.TeamSide) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏐 Set %d finished!", session.SetNumber), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s takes it %d-%d", winner, score.Home, score.Away)
	if winner == match.TeamAway {
		detailsText = fmt.Sprintf("%s takes it %d-%d", winner, score.Away, score.Home)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	standings := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Sets: HOME %d - %d AWAY", session.HomeSets, session.AwaySets), true, false)
	blocks = append(blocks, slack.NewContextBlock("", standings))

	return slack.NewBlockMessage(blocks...)
}

// formatMatchResult creates the Slack message for a finished match using Block Kit.
func (s *Notifier) formatMatchResult(session *matchlog.MatchSession, winner match.TeamSide) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏐 Match finished!", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s wins %d-%d in sets", winner, session.HomeSets, session.AwaySets)
	if winner == match.TeamAway {
		detailsText = fmt.Sprintf("%s wins %d-%d in sets", winner, session.AwaySets, session.HomeSets)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatLineup creates the Slack message for a team's current court occupancy.
func (s *Notifier) formatLineup(side match.TeamSide, rotationNumber int, lineup rotation.Lineup) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏐 %s lineup, rotation %d", side, rotationNumber), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	var lines []string
	for _, pos := range rotation.Positions {
		occ, ok := lineup[pos]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s: #%d %s (%s)", pos, occ.Jersey, occ.Name, occ.Role)
		if occ.Role == rotation.RoleLibero {
			line = fmt.Sprintf("%s: #%d %s (L for %s)", pos, occ.Jersey, occ.Name, occ.OriginalRole)
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
