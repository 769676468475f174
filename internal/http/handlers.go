package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/metrics"
	"github.com/mvolden/sideout/internal/pubsub"
	"github.com/mvolden/sideout/internal/roster"
	"github.com/mvolden/sideout/internal/rotation"
)

// setsToWin is the number of set wins that decides a match (best of five).
const setsToWin = 3

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// StatsHandler serves the persistent counters kept alongside the Prometheus
// registry.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.MetricsStore.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}
		respondJSON(w, stats)
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID != "" {
			log.Info("Received request to clear a specific match", "matchID", matchID)
			s.Matches.ClearMatch(matchID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared match %s from store!", matchID)
			log.Info("Successfully cleared match from store", "matchID", matchID)
		} else {
			log.Info("Received request to clear entire store")
			s.Matches.Clear()
			s.Roster.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
	}
}

// MatchesHandler lists sessions on GET and creates a new session on POST.
func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			s.createMatch(w, r)
		default:
			matches, err := s.Matches.GetAllMatches()
			if err != nil {
				http.Error(w, "Failed to get matches", http.StatusInternalServerError)
				log.Error("Failed to get matches from store", "error", err)
				return
			}
			respondJSON(w, matches)
		}
	}
}

func (s *Server) createMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Home         rotation.Config `json:"home"`
		Away         rotation.Config `json:"away"`
		FirstServing string          `json:"first_serving"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode match request", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	firstServing := match.TeamHome
	if req.FirstServing != "" {
		side, ok := match.ParseTeamSide(req.FirstServing)
		if !ok {
			http.Error(w, "Invalid first_serving, expected HOME or AWAY", http.StatusBadRequest)
			return
		}
		firstServing = side
	}

	if err := rotation.ValidateComplete(req.Home); err != nil {
		http.Error(w, fmt.Sprintf("Invalid home configuration: %v", err), http.StatusBadRequest)
		return
	}
	if err := rotation.ValidateComplete(req.Away); err != nil {
		http.Error(w, fmt.Sprintf("Invalid away configuration: %v", err), http.StatusBadRequest)
		return
	}
	if unknown := s.unknownRosterPlayers(req.Home, req.Away); len(unknown) > 0 {
		http.Error(w, fmt.Sprintf("Configuration references unknown roster players: %v", unknown), http.StatusBadRequest)
		return
	}

	session, err := s.Matches.CreateMatch(match.NewTeamState(req.Home), match.NewTeamState(req.Away), firstServing)
	if err != nil {
		log.Error("Failed to create match session", "error", err)
		http.Error(w, "Failed to create match", http.StatusInternalServerError)
		return
	}

	lineups, err := s.openingLineups(session)
	if err != nil {
		log.Error("Failed to assemble opening lineups", "error", err, "matchID", session.ID)
		http.Error(w, fmt.Sprintf("Failed to assemble lineups: %v", err), http.StatusUnprocessableEntity)
		return
	}
	if err := s.Matches.SaveMatch(session); err != nil {
		log.Error("Failed to save match session", "error", err, "matchID", session.ID)
		http.Error(w, "Failed to save match", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"match":   session,
		"lineups": lineups,
	}); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// unknownRosterPlayers collects roster-tagged references that do not resolve
// against the roster store. Mid-match assembly tolerates stale references by
// substituting placeholders, but a new match must not start with them.
func (s *Server) unknownRosterPlayers(configs ...rotation.Config) []string {
	var unknown []string
	for _, cfg := range configs {
		refs := make([]rotation.PlayerRef, 0, len(cfg.Players)+1)
		for _, ref := range cfg.Players {
			refs = append(refs, ref)
		}
		if cfg.Libero != nil {
			refs = append(refs, *cfg.Libero)
		}
		for _, ref := range refs {
			if ref.Kind == rotation.RefRoster && !s.Roster.IsKnownPlayer(ref.PlayerID) {
				unknown = append(unknown, ref.PlayerID)
			}
		}
	}
	return unknown
}

// openingLineups assembles both teams' set-opening lineups, recording where
// automatic libero tracking placed each libero.
func (s *Server) openingLineups(session *matchlog.MatchSession) (map[match.TeamSide]rotation.Lineup, error) {
	home, err := s.Engine.InitSet(&session.Home, session.ServingTeam == match.TeamHome)
	if err != nil {
		return nil, err
	}
	away, err := s.Engine.InitSet(&session.Away, session.ServingTeam == match.TeamAway)
	if err != nil {
		return nil, err
	}
	return map[match.TeamSide]rotation.Lineup{match.TeamHome: home, match.TeamAway: away}, nil
}

// MatchStateHandler returns the full persisted state of one session.
func (s *Server) MatchStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		respondJSON(w, session)
	}
}

// LineupHandler assembles the current lineup of one team. With
// formation=rally it returns the in-play rally formation instead of the
// serving formation.
func (s *Server) LineupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		side, ts, ok := s.teamFromRequest(w, r, session)
		if !ok {
			return
		}

		start := time.Now()
		lineup, err := s.Engine.Lineup(ts, session.ServingTeam == side)
		s.Metrics.ObserveAssemblyDuration(time.Since(start).Seconds())
		if err != nil {
			log.Error("Failed to assemble lineup", "error", err, "matchID", session.ID, "team", side)
			http.Error(w, fmt.Sprintf("Failed to assemble lineup: %v", err), http.StatusUnprocessableEntity)
			return
		}

		if r.URL.Query().Get("formation") == "rally" {
			lineup = rotation.ToRally(lineup)
		}
		respondJSON(w, map[string]any{
			"team":     side,
			"rotation": ts.Rotation,
			"lineup":   lineup,
		})
	}
}

// PointHandler records one rally outcome: side-out handling, the point event
// log, set scoring and any set/match completion that follows from it.
func (s *Server) PointHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		scoring, ok := match.ParseTeamSide(r.URL.Query().Get("scoring"))
		if !ok {
			http.Error(w, "Invalid scoring team, expected HOME or AWAY", http.StatusBadRequest)
			return
		}
		s.applyPoint(w, r, session, scoring)
	}
}

// PointEventPushHandler ingests rally outcomes delivered through a Pub/Sub
// push subscription, so a court-side scoring device can publish points instead
// of calling the API directly. The payload is the same point message this
// service publishes.
func (s *Server) PointEventPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received point event push", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var ev pointEventMessage
		if err := s.pubsub.ProcessMessage(rawData, &ev); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		scoring, ok := match.ParseTeamSide(string(ev.ScoringTeam))
		if !ok {
			http.Error(w, "Invalid scoring team in payload", http.StatusBadRequest)
			return
		}
		session, err := s.Matches.GetMatch(ev.MatchID)
		if err != nil {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		s.applyPoint(w, r, session, scoring)
	}
}

// applyPoint is the shared point pipeline behind the API and push entry
// points.
func (s *Server) applyPoint(w http.ResponseWriter, r *http.Request, session *matchlog.MatchSession, scoring match.TeamSide) {
	if session.Status != matchlog.StatusLive {
		http.Error(w, "Set is not live", http.StatusConflict)
		return
	}
	isDryRun := isDryRunFromContext(r)

	start := time.Now()
	result, err := s.Engine.OnPointEnd(scoring, session.ServingTeam, &session.Home, &session.Away)
	s.Metrics.ObserveAssemblyDuration(time.Since(start).Seconds())
	if err != nil {
		log.Error("Failed to apply point", "error", err, "matchID", session.ID)
		http.Error(w, fmt.Sprintf("Failed to apply point: %v", err), http.StatusUnprocessableEntity)
		return
	}

	events, err := s.Matches.GetPointEvents(session.ID, session.SetNumber)
	if err != nil {
		log.Error("Failed to load point events", "error", err, "matchID", session.ID)
		http.Error(w, "Failed to load point events", http.StatusInternalServerError)
		return
	}
	ev := match.PointEvent{Seq: len(events) + 1, ScoringTeam: scoring}
	score := match.ScoreFromEvents(append(events, ev))

	if isDryRun {
		log.Info("[Dry Run] Would record point", "matchID", session.ID, "seq", ev.Seq, "scoring", scoring)
		respondJSON(w, map[string]any{
			"result": result,
			"score":  score,
		})
		return
	}

	if err := s.Matches.AppendPointEvent(session.ID, session.SetNumber, ev, result.Lineups[scoring]); err != nil {
		log.Error("Failed to append point event", "error", err, "matchID", session.ID)
		http.Error(w, "Failed to record point", http.StatusInternalServerError)
		return
	}
	session.ServingTeam = result.NewServingTeam

	s.Metrics.IncPointsRecorded()
	s.MetricsStore.Increment(metrics.CounterPointsRecorded)
	if err := s.pubsub.SendMessage(pubsub.EventPointRecorded, pointEventMessage{
		MatchID: session.ID, SetNumber: session.SetNumber, Seq: ev.Seq, ScoringTeam: scoring,
	}); err != nil {
		log.Error("Failed to publish point event", "error", err)
	}
	if result.RotationAdvanced {
		s.Metrics.IncSideOuts()
		s.MetricsStore.Increment(metrics.CounterSideOuts)
		if err := s.pubsub.SendMessage(pubsub.EventRotationAdvanced, rotationEventMessage{
			MatchID: session.ID, Team: scoring, Rotation: s.teamState(session, scoring).Rotation,
		}); err != nil {
			log.Error("Failed to publish rotation event", "error", err)
		}
	}

	if done, winner := match.SetComplete(score, session.SetNumber); done {
		s.completeSet(session, score, winner, isDryRun)
	}

	if err := s.Matches.SaveMatch(session); err != nil {
		log.Error("Failed to save match session", "error", err, "matchID", session.ID)
		http.Error(w, "Failed to save match", http.StatusInternalServerError)
		return
	}

	respondJSON(w, map[string]any{
		"result":     result,
		"score":      score,
		"set_number": session.SetNumber,
		"status":     session.Status,
		"home_sets":  session.HomeSets,
		"away_sets":  session.AwaySets,
	})
}

// completeSet freezes point entry and handles set/match bookkeeping and
// notifications for a finished set.
func (s *Server) completeSet(session *matchlog.MatchSession, score match.Score, winner match.TeamSide, isDryRun bool) {
	if winner == match.TeamHome {
		session.HomeSets++
	} else {
		session.AwaySets++
	}
	session.Status = matchlog.StatusBetweenSets
	log.Info("Set complete", "matchID", session.ID, "set", session.SetNumber, "winner", winner, "score", fmt.Sprintf("%d-%d", score.Home, score.Away))

	if err := s.pubsub.SendMessage(pubsub.EventSetCompleted, setEventMessage{
		MatchID: session.ID, SetNumber: session.SetNumber, Winner: winner, Score: score,
	}); err != nil {
		log.Error("Failed to publish set event", "error", err)
	}
	if err := s.Notifier.SendSetResultNotification(session, score, winner, isDryRun); err != nil {
		log.Error("Failed to send set result notification", "error", err)
	}

	if session.HomeSets >= setsToWin || session.AwaySets >= setsToWin {
		session.Status = matchlog.StatusCompleted
		log.Info("Match complete", "matchID", session.ID, "winner", winner)
		if err := s.pubsub.SendMessage(pubsub.EventMatchCompleted, setEventMessage{
			MatchID: session.ID, SetNumber: session.SetNumber, Winner: winner, Score: score,
		}); err != nil {
			log.Error("Failed to publish match event", "error", err)
		}
		if err := s.Notifier.SendMatchResultNotification(session, winner, isDryRun); err != nil {
			log.Error("Failed to send match result notification", "error", err)
		}
	}
}

// RotateHandler applies a manual rotation override to one team.
func (s *Server) RotateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		side, ts, ok := s.teamFromRequest(w, r, session)
		if !ok {
			return
		}
		dir := match.Forward
		if d := r.URL.Query().Get("direction"); d != "" {
			dir = match.Direction(d)
		}

		lineup, rotationNumber, err := s.Engine.ManualRotate(ts, dir, session.ServingTeam == side)
		if err != nil {
			if errors.Is(err, match.ErrUnknownDirection) {
				http.Error(w, "Invalid direction, expected forward or backward", http.StatusBadRequest)
				return
			}
			log.Error("Failed to rotate", "error", err, "matchID", session.ID, "team", side)
			http.Error(w, fmt.Sprintf("Failed to rotate: %v", err), http.StatusUnprocessableEntity)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would rotate team", "matchID", session.ID, "team", side, "rotation", rotationNumber)
		} else {
			if err := s.Matches.SaveMatch(session); err != nil {
				log.Error("Failed to save match session", "error", err, "matchID", session.ID)
				http.Error(w, "Failed to save match", http.StatusInternalServerError)
				return
			}
			s.Metrics.IncManualRotations()
			s.MetricsStore.Increment(metrics.CounterManualRotations)
		}

		respondJSON(w, map[string]any{
			"team":     side,
			"rotation": rotationNumber,
			"lineup":   lineup,
		})
	}
}

// LiberoInHandler puts a team's libero on court at the requested back-row
// position.
func (s *Server) LiberoInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		side, ts, ok := s.teamFromRequest(w, r, session)
		if !ok {
			return
		}
		pos, ok := rotation.ParsePosition(r.URL.Query().Get("position"))
		if !ok {
			http.Error(w, "Invalid position, expected P1-P6", http.StatusBadRequest)
			return
		}

		lineup, err := s.Engine.LiberoSwapIn(ts, pos, session.ServingTeam == side)
		if err != nil {
			s.respondLiberoError(w, err)
			return
		}
		s.saveLiberoChange(w, r, session, side, "swap-in")
		respondJSON(w, map[string]any{
			"team":   side,
			"libero": ts.Libero,
			"lineup": lineup,
		})
	}
}

// LiberoOutHandler benches a team's libero and restores the replaced
// specialist.
func (s *Server) LiberoOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		side, ts, ok := s.teamFromRequest(w, r, session)
		if !ok {
			return
		}

		lineup, err := s.Engine.LiberoSwapOut(ts, session.ServingTeam == side)
		if err != nil {
			s.respondLiberoError(w, err)
			return
		}
		s.saveLiberoChange(w, r, session, side, "swap-out")
		respondJSON(w, map[string]any{
			"team":   side,
			"libero": ts.Libero,
			"lineup": lineup,
		})
	}
}

func (s *Server) respondLiberoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, match.ErrNoLibero), errors.Is(err, match.ErrNotBackRow):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, match.ErrLiberoOnCourt), errors.Is(err, match.ErrLiberoNotOnCourt):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, fmt.Sprintf("Failed to apply libero change: %v", err), http.StatusUnprocessableEntity)
	}
}

func (s *Server) saveLiberoChange(w http.ResponseWriter, r *http.Request, session *matchlog.MatchSession, side match.TeamSide, kind string) {
	if isDryRunFromContext(r) {
		log.Info("[Dry Run] Would save libero change", "matchID", session.ID, "team", side, "kind", kind)
		return
	}
	if err := s.Matches.SaveMatch(session); err != nil {
		log.Error("Failed to save match session", "error", err, "matchID", session.ID)
	}
	s.Metrics.IncLiberoSwaps()
	s.MetricsStore.Increment(metrics.CounterLiberoSwaps)
}

// RestoreHandler re-derives the current set's state by replaying its recorded
// point events over fresh team states.
func (s *Server) RestoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		isDryRun := isDryRunFromContext(r)

		events, err := s.Matches.GetPointEvents(session.ID, session.SetNumber)
		if err != nil {
			log.Error("Failed to load point events", "error", err, "matchID", session.ID)
			http.Error(w, "Failed to load point events", http.StatusInternalServerError)
			return
		}

		home, away, serving, err := s.Engine.Replay(
			match.NewTeamState(session.Home.Config),
			match.NewTeamState(session.Away.Config),
			session.FirstServing,
			events,
		)
		if err != nil {
			log.Error("Failed to replay point events", "error", err, "matchID", session.ID)
			http.Error(w, fmt.Sprintf("Failed to replay: %v", err), http.StatusUnprocessableEntity)
			return
		}

		session.Home = home
		session.Away = away
		session.ServingTeam = serving
		if !isDryRun {
			if err := s.Matches.SaveMatch(session); err != nil {
				log.Error("Failed to save match session", "error", err, "matchID", session.ID)
				http.Error(w, "Failed to save match", http.StatusInternalServerError)
				return
			}
		}

		for _, side := range []match.TeamSide{match.TeamHome, match.TeamAway} {
			ts := s.teamState(session, side)
			lineup, err := s.Engine.Lineup(ts, session.ServingTeam == side)
			if err != nil {
				log.Error("Failed to assemble restored lineup", "error", err, "team", side)
				continue
			}
			if err := s.Notifier.SendLineupNotification(side, ts.Rotation, lineup, isDryRun); err != nil {
				log.Error("Failed to send lineup notification", "error", err, "team", side)
			}
		}

		log.Info("Restored match from point log", "matchID", session.ID, "events", len(events), "serving", serving)
		respondJSON(w, session)
	}
}

// NextSetHandler opens the next set: fresh rotation state for both teams and
// the opening serve alternated from the previous set.
func (s *Server) NextSetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := s.loadMatch(w, r)
		if !ok {
			return
		}
		if session.Status != matchlog.StatusBetweenSets {
			http.Error(w, "Match is not between sets", http.StatusConflict)
			return
		}

		session.SetNumber++
		session.FirstServing = session.FirstServing.Opponent()
		session.ServingTeam = session.FirstServing
		session.Home.Rotation = 1
		session.Away.Rotation = 1
		s.Engine.ResetSwapStates(&session.Home, &session.Away)
		session.Status = matchlog.StatusLive

		lineups, err := s.openingLineups(session)
		if err != nil {
			log.Error("Failed to assemble opening lineups", "error", err, "matchID", session.ID)
			http.Error(w, fmt.Sprintf("Failed to assemble lineups: %v", err), http.StatusUnprocessableEntity)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would start next set", "matchID", session.ID, "set", session.SetNumber)
		} else if err := s.Matches.SaveMatch(session); err != nil {
			log.Error("Failed to save match session", "error", err, "matchID", session.ID)
			http.Error(w, "Failed to save match", http.StatusInternalServerError)
			return
		}

		log.Info("Started next set", "matchID", session.ID, "set", session.SetNumber, "serving", session.ServingTeam)
		respondJSON(w, map[string]any{
			"match":   session,
			"lineups": lineups,
		})
	}
}

// RosterHandler lists players on GET and upserts players on POST.
func (s *Server) RosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var players []roster.PlayerInfo
			if err := json.NewDecoder(r.Body).Decode(&players); err != nil {
				log.Error("Failed to decode roster request", "error", err)
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			if isDryRunFromContext(r) {
				log.Info("[Dry Run] Would upsert players", "count", len(players))
				w.WriteHeader(http.StatusOK)
				return
			}
			if err := s.Roster.UpsertPlayers(players); err != nil {
				log.Error("Failed to upsert players", "error", err)
				http.Error(w, "Failed to save players", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Upserted %d players", len(players))
		default:
			teamID := r.URL.Query().Get("teamID")
			var (
				players []roster.PlayerInfo
				err     error
			)
			if teamID != "" {
				players, err = s.Roster.GetTeamPlayers(teamID)
			} else {
				players, err = s.Roster.GetAllPlayers()
			}
			if err != nil {
				http.Error(w, "Failed to get players", http.StatusInternalServerError)
				log.Error("Failed to get players from store", "error", err)
				return
			}
			respondJSON(w, players)
		}
	}
}

// loadMatch resolves the matchID query parameter to a stored session.
func (s *Server) loadMatch(w http.ResponseWriter, r *http.Request) (*matchlog.MatchSession, bool) {
	matchID := r.URL.Query().Get("matchID")
	if matchID == "" {
		http.Error(w, "Missing matchID parameter", http.StatusBadRequest)
		return nil, false
	}
	session, err := s.Matches.GetMatch(matchID)
	if err != nil {
		http.Error(w, "Match not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// teamFromRequest resolves the team query parameter to the session's state
// record for that side.
func (s *Server) teamFromRequest(w http.ResponseWriter, r *http.Request, session *matchlog.MatchSession) (match.TeamSide, *match.TeamState, bool) {
	side, ok := match.ParseTeamSide(r.URL.Query().Get("team"))
	if !ok {
		http.Error(w, "Invalid team, expected HOME or AWAY", http.StatusBadRequest)
		return "", nil, false
	}
	return side, s.teamState(session, side), true
}

func (s *Server) teamState(session *matchlog.MatchSession, side match.TeamSide) *match.TeamState {
	if side == match.TeamAway {
		return &session.Away
	}
	return &session.Home
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// pointEventMessage is the pubsub payload for a recorded point.
type pointEventMessage struct {
	MatchID     string         `msgpack:"match_id"`
	SetNumber   int            `msgpack:"set_number"`
	Seq         int            `msgpack:"seq"`
	ScoringTeam match.TeamSide `msgpack:"scoring_team"`
}

// rotationEventMessage is the pubsub payload for a rotation advance.
type rotationEventMessage struct {
	MatchID  string         `msgpack:"match_id"`
	Team     match.TeamSide `msgpack:"team"`
	Rotation int            `msgpack:"rotation"`
}

// setEventMessage is the pubsub payload for set and match completion.
type setEventMessage struct {
	MatchID   string         `msgpack:"match_id"`
	SetNumber int            `msgpack:"set_number"`
	Winner    match.TeamSide `msgpack:"winner"`
	Score     match.Score    `msgpack:"score"`
}
