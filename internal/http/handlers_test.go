package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvolden/sideout/internal/config"
	"github.com/mvolden/sideout/internal/database"
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/metrics"
	"github.com/mvolden/sideout/internal/notifier"
	"github.com/mvolden/sideout/internal/pubsub"
	"github.com/mvolden/sideout/internal/roster"
	"github.com/mvolden/sideout/internal/rotation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T) (*Server, *notifier.Mock, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	matchStore := matchlog.New(db)
	rosterStore := roster.New(db)
	engine := match.New(rosterStore)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	metricsStore := metrics.New(db)
	notifierMock := notifier.NewMock()
	pubsubMock := pubsub.NewMock("TEST")

	server := NewServer(matchStore, rosterStore, engine, metricsSvc, metricsStore, metricsHandler, config.Config{}, notifierMock, pubsubMock)

	return server, notifierMock, dbTeardown
}

func teamConfig() rotation.Config {
	libero := rotation.CustomRef(12, "Libby")
	return rotation.Config{
		System: rotation.SystemFiveOneOH,
		Players: map[rotation.Role]rotation.PlayerRef{
			"S":        rotation.CustomRef(1, "Sander"),
			"OH (w.s)": rotation.CustomRef(2, "Oda"),
			"MB":       rotation.CustomRef(3, "Mia"),
			"Oppo":     rotation.CustomRef(4, "Olav"),
			"OH":       rotation.CustomRef(5, "Oskar"),
			"MB (w.s)": rotation.CustomRef(6, "Marte"),
		},
		Libero:        &libero,
		LiberoTargets: []rotation.Role{"MB", "MB (w.s)"},
		StartingP1:    "S",
	}
}

type createMatchResponse struct {
	Match   matchlog.MatchSession                  `json:"match"`
	Lineups map[match.TeamSide]map[string]occupant `json:"lineups"`
}

type occupant struct {
	Role         rotation.Role `json:"role"`
	OriginalRole rotation.Role `json:"original_role"`
	Name         string        `json:"name"`
	Jersey       int           `json:"jersey"`
}

// createTestMatch creates a match over the API and returns its decoded response.
func createTestMatch(t *testing.T, server *Server) createMatchResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"home":          teamConfig(),
		"away":          teamConfig(),
		"first_serving": "HOME",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/matches", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp createMatchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Match.ID)
	return resp
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestCreateMatchHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	resp := createTestMatch(t, server)
	assert.Equal(t, matchlog.StatusLive, resp.Match.Status)
	assert.Equal(t, match.TeamHome, resp.Match.ServingTeam)

	home := resp.Lineups[match.TeamHome]
	require.Len(t, home, 6)
	assert.Equal(t, "Sander", home["P1"].Name)
	// Automatic libero tracking places the libero at the highest-priority
	// back-row default target: P6 holds the second middle at rotation 1.
	assert.Equal(t, rotation.RoleLibero, home["P6"].Role)
	assert.Equal(t, rotation.Role("MB (w.s)"), home["P6"].OriginalRole)
}

func TestCreateMatchHandler_InvalidConfig(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	cfg := teamConfig()
	delete(cfg.Players, "Oppo")
	body, err := json.Marshal(map[string]any{"home": cfg, "away": teamConfig()})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/matches", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateMatchHandler_UnknownRosterPlayer(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	require.NoError(t, server.Roster.UpsertPlayers([]roster.PlayerInfo{
		{ID: "p1", TeamID: "team-a", Name: "Sander Berg", Jersey: 1, Position: "S"},
	}))

	post := func(cfg rotation.Config) *httptest.ResponseRecorder {
		body, err := json.Marshal(map[string]any{"home": cfg, "away": teamConfig()})
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/matches", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		return rr
	}

	cfg := teamConfig()
	cfg.Players["S"] = rotation.RosterRef("team-a", "ghost")
	rr := post(cfg)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "ghost")

	cfg.Players["S"] = rotation.RosterRef("team-a", "p1")
	rr = post(cfg)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestMatchStateHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	req := httptest.NewRequest("GET", "/matches/state?matchID="+created.Match.ID, nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var session matchlog.MatchSession
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
	assert.Equal(t, created.Match.ID, session.ID)
	assert.Equal(t, 1, session.Home.Rotation)

	t.Run("unknown match returns 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/matches/state?matchID=nope", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestPointHandler_SideOut(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	// HOME serves, AWAY scores: side-out, AWAY advances and takes the serve.
	req := httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring=AWAY", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Result match.PointResult `json:"result"`
		Score  match.Score       `json:"score"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Result.RotationAdvanced)
	assert.Equal(t, match.TeamAway, resp.Result.NewServingTeam)
	assert.Equal(t, match.Score{Home: 0, Away: 1}, resp.Score)

	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, session.Away.Rotation)
	assert.Equal(t, 1, session.Home.Rotation)
	assert.Equal(t, match.TeamAway, session.ServingTeam)

	mock := server.pubsub.(*pubsub.MockPubSubClient)
	topics := make([]pubsub.EventType, 0, len(mock.SendMessageCalls))
	for _, call := range mock.SendMessageCalls {
		topics = append(topics, call.Topic)
	}
	assert.Contains(t, topics, pubsub.EventPointRecorded)
	assert.Contains(t, topics, pubsub.EventRotationAdvanced)
}

func TestPointHandler_ServeWin(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	req := httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring=HOME", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Home.Rotation, "serving team scoring must not rotate")
	assert.Equal(t, match.TeamHome, session.ServingTeam)
}

func TestPointHandler_DryRun(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	req := httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring=AWAY&dry_run=true", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, match.TeamHome, session.ServingTeam, "dry run must not persist anything")
	events, err := server.Matches.GetPointEvents(created.Match.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

// pushEnvelope wraps a msgpack payload the way a Pub/Sub push delivery does.
func pushEnvelope(t *testing.T, payload any) []byte {
	t.Helper()
	raw, err := msgpack.Marshal(payload)
	require.NoError(t, err)
	body, err := json.Marshal(map[string]any{
		"subscription": "projects/test/subscriptions/court-points",
		"message":      map[string]string{"data": base64.StdEncoding.EncodeToString(raw)},
	})
	require.NoError(t, err)
	return body
}

func TestPointEventPushHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	mock := server.pubsub.(*pubsub.MockPubSubClient)
	mock.ProcessMessageFunc = func(data []byte, returnValue any) error {
		return msgpack.Unmarshal(data, returnValue)
	}

	created := createTestMatch(t, server)

	body := pushEnvelope(t, pointEventMessage{MatchID: created.Match.ID, SetNumber: 1, Seq: 1, ScoringTeam: match.TeamAway})
	req := httptest.NewRequest("POST", "/pubsub/point", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// The pushed point runs the same pipeline as the API: side-out, event log,
	// serve change.
	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, session.Away.Rotation)
	assert.Equal(t, match.TeamAway, session.ServingTeam)
	events, err := server.Matches.GetPointEvents(created.Match.ID, 1)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	t.Run("invalid base64 payload is rejected", func(t *testing.T) {
		body, err := json.Marshal(map[string]any{
			"message": map[string]string{"data": "not-base64!"},
		})
		require.NoError(t, err)
		req := httptest.NewRequest("POST", "/pubsub/point", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown match returns 404", func(t *testing.T) {
		body := pushEnvelope(t, pointEventMessage{MatchID: "nope", SetNumber: 1, Seq: 1, ScoringTeam: match.TeamHome})
		req := httptest.NewRequest("POST", "/pubsub/point", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// seedPoints appends point events directly to the store, bypassing the API.
func seedPoints(t *testing.T, server *Server, matchID string, setNumber, count int, scoring match.TeamSide) {
	t.Helper()
	for i := 1; i <= count; i++ {
		require.NoError(t, server.Matches.AppendPointEvent(matchID, setNumber, match.PointEvent{Seq: i, ScoringTeam: scoring}, nil))
	}
}

func TestPointHandler_SetCompletion(t *testing.T) {
	server, notifierMock, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)
	// 24 straight serve wins for HOME leave the score at 24-0.
	seedPoints(t, server, created.Match.ID, 1, 24, match.TeamHome)

	req := httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring=HOME", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, matchlog.StatusBetweenSets, session.Status)
	assert.Equal(t, 1, session.HomeSets)
	require.Len(t, notifierMock.SendSetResultNotificationCalls, 1)
	assert.Equal(t, match.TeamHome, notifierMock.SendSetResultNotificationCalls[0].Winner)
	assert.Equal(t, match.Score{Home: 25, Away: 0}, notifierMock.SendSetResultNotificationCalls[0].Score)

	t.Run("point entry is frozen between sets", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring=HOME", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestLineupHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	var resp struct {
		Rotation int                 `json:"rotation"`
		Lineup   map[string]occupant `json:"lineup"`
	}

	t.Run("serving formation", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/lineup?matchID="+created.Match.ID+"&team=AWAY", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Rotation)
		assert.Equal(t, rotation.RoleLibero, resp.Lineup["P6"].Role)
	})

	t.Run("rally formation", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/lineup?matchID="+created.Match.ID+"&team=AWAY&formation=rally", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		// The libero covers a middle in the back row, so it lands on P5 in play.
		assert.Equal(t, rotation.RoleLibero, resp.Lineup["P5"].Role)
		assert.Equal(t, "Mia", resp.Lineup["P3"].Name)
	})

	t.Run("invalid team", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/lineup?matchID="+created.Match.ID+"&team=BOTH", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRotateHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	req := httptest.NewRequest("POST", "/rotate?matchID="+created.Match.ID+"&team=HOME&direction=backward", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Rotation int `json:"rotation"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Rotation, "backward from rotation 1 wraps to 6")

	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, session.Home.Rotation)

	t.Run("invalid direction", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/rotate?matchID="+created.Match.ID+"&team=HOME&direction=sideways", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLiberoHandlers(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	var resp struct {
		Libero match.LiberoSwapState `json:"libero"`
		Lineup map[string]occupant   `json:"lineup"`
	}

	// The libero entered automatically at match creation, so bench it first.
	req := httptest.NewRequest("POST", "/libero/out?matchID="+created.Match.ID+"&team=HOME", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Libero.Active)
	assert.Equal(t, "Marte", resp.Lineup["P6"].Name, "replaced middle returns to court")

	t.Run("swap-out with libero benched conflicts", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/libero/out?matchID="+created.Match.ID+"&team=HOME", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("swap-in at front row is rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/libero/in?matchID="+created.Match.ID+"&team=HOME&position=P3", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	req = httptest.NewRequest("POST", "/libero/in?matchID="+created.Match.ID+"&team=HOME&position=P6", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Libero.Active)
	assert.Equal(t, rotation.Role("MB (w.s)"), resp.Libero.ReplacedRole)
	assert.False(t, resp.Libero.ManualLock, "picking a default target keeps automatic tracking")

	t.Run("swap-in with libero on court conflicts", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/libero/in?matchID="+created.Match.ID+"&team=HOME&position=P6", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestRestoreHandler(t *testing.T) {
	server, notifierMock, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	// Record a short rally sequence through the API.
	for _, scoring := range []string{"AWAY", "AWAY", "HOME"} {
		req := httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring="+scoring, nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}
	before, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/restore?matchID="+created.Match.ID, nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	after, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Home.Rotation, after.Home.Rotation, "replay must reproduce the live state")
	assert.Equal(t, before.Away.Rotation, after.Away.Rotation)
	assert.Equal(t, before.ServingTeam, after.ServingTeam)
	assert.Len(t, notifierMock.SendLineupNotificationCalls, 2)
}

func TestNextSetHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)

	t.Run("rejected while a set is live", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/set/next?matchID="+created.Match.ID, nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	// Pin a manual libero lock before the set ends; the next set must clear it.
	req := httptest.NewRequest("POST", "/libero/out?matchID="+created.Match.ID+"&team=HOME", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	req = httptest.NewRequest("POST", "/libero/in?matchID="+created.Match.ID+"&team=HOME&position=P1", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Finish the first set.
	seedPoints(t, server, created.Match.ID, 1, 24, match.TeamHome)
	req = httptest.NewRequest("POST", "/point?matchID="+created.Match.ID+"&scoring=HOME", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("POST", "/set/next?matchID="+created.Match.ID, nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	session, err := server.Matches.GetMatch(created.Match.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, session.SetNumber)
	assert.Equal(t, matchlog.StatusLive, session.Status)
	assert.Equal(t, match.TeamAway, session.ServingTeam, "opening serve alternates between sets")
	assert.Equal(t, 1, session.Home.Rotation)
	assert.Equal(t, 1, session.Away.Rotation)
	assert.False(t, session.Home.Libero.ManualLock, "set change drops the manual lock")
	assert.True(t, session.Home.Libero.Active, "automatic tracking resumes at the set opening")
	assert.Equal(t, rotation.Role("MB (w.s)"), session.Home.Libero.ReplacedRole)
}

func TestRosterHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	players := []roster.PlayerInfo{
		{ID: "p1", TeamID: "team-a", Name: "Player One", Jersey: 7, Position: "OH"},
		{ID: "p2", TeamID: "team-a", Name: "Player Two", Jersey: 9, Position: "MB"},
	}
	body, err := json.Marshal(players)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/roster", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("GET", "/roster?teamID=team-a", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []roster.PlayerInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestStatsHandler(t *testing.T) {
	server, _, teardown := setupTestServer(t)
	defer teardown()

	created := createTestMatch(t, server)
	req := httptest.NewRequest("POST", fmt.Sprintf("/point?matchID=%s&scoring=AWAY", created.Match.ID), nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("GET", "/stats", nil)
	rr = httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats["points_recorded"])
	assert.Equal(t, 1, stats["side_outs"])
}
