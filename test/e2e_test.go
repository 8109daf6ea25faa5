package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2ECreateJoinSynthesizesNames drives scenario 1: create a game over
// HTTP, join it with an explicit username and then a blank one, and
// check the documented side assignment and name synthesis.
func TestE2ECreateJoinSynthesizesNames(t *testing.T) {
	_, srv := newHarness(config.Default())

	createRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(createRec, httptest.NewRequest(http.MethodPost, "/game", nil))
	require.Equal(t, http.StatusOK, createRec.Code)

	var created struct {
		ID   uuid.UUID    `json:"id"`
		Game game.GameDto `json:"game"`
	}
	require.NoError(t, json.Unmarshal(createRec.Body.Bytes(), &created))
	assert.Equal(t, game.WaitingForPlayers, created.Game.State)
	assert.Empty(t, created.Game.Players)

	aliceBody, _ := json.Marshal(map[string]string{"username": "alice"})
	aliceRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(aliceRec, httptest.NewRequest(http.MethodPost, "/game/"+created.ID.String()+"/join", bytes.NewReader(aliceBody)))
	require.Equal(t, http.StatusOK, aliceRec.Code)

	var alice game.PlayerDto
	require.NoError(t, json.Unmarshal(aliceRec.Body.Bytes(), &alice))
	assert.Equal(t, "alice", alice.Name)
	require.NotNil(t, alice.Position)
	assert.Equal(t, game.Top, *alice.Position)

	secondRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(secondRec, httptest.NewRequest(http.MethodPost, "/game/"+created.ID.String()+"/join", bytes.NewReader([]byte("{}"))))
	require.Equal(t, http.StatusOK, secondRec.Code)

	var second game.PlayerDto
	require.NoError(t, json.Unmarshal(secondRec.Body.Bytes(), &second))
	assert.Equal(t, "player_2", second.Name)
	require.NotNil(t, second.Position)
	assert.Equal(t, game.Bottom, *second.Position)
}

// TestE2EStartGatingRequiresAllReady drives scenario 2: with two players
// in a game, un-readying one keeps an explicit start request failing and
// the game in WaitingForPlayers.
func TestE2EStartGatingRequiresAllReady(t *testing.T) {
	rooms, _ := newHarness(config.Default())
	g := rooms.CreateGame()
	a, b := joinTwoHumans(t, rooms, g, "alice", "bob")
	a.IsReady = true
	b.IsReady = true

	b.IsReady = false

	err := rooms.StartGame(g, time.Now().UTC())
	assert.ErrorIs(t, err, game.ErrPlayersNotReady)
	assert.Equal(t, game.WaitingForPlayers, g.State)
	assert.True(t, a.IsReady)
	assert.False(t, b.IsReady)
}

// TestE2EGoalScoringResetsBallAndFreezes drives scenario 3: a ball
// crossing an unoccupied-by-scorer goal line credits the last toucher,
// resets the ball to center, and holds it there through the post-goal
// freeze window.
func TestE2EGoalScoringResetsBallAndFreezes(t *testing.T) {
	cfg := config.Default()
	rooms, _ := newHarness(cfg)
	g := rooms.CreateGame()
	top, bottom := joinTwoHumans(t, rooms, g, "top", "bottom")
	readyUp(rooms, cfg, g, top, time.Now().UTC())
	readyUp(rooms, cfg, g, bottom, time.Now().UTC())
	require.Equal(t, game.Active, g.State)

	g.Ball.Position = game.Vec2{X: 5, Y: 9.8}
	g.Ball.Velocity = game.Vec2{X: 0, Y: 0.3}
	g.Ball.LastTouchedBy = &top.ID

	goalAt := time.Now().UTC()
	stepOnce(rooms, g, cfg, goalAt)

	assert.Equal(t, uint32(1), top.Score)
	assert.Equal(t, uint32(0), bottom.Score)
	assert.Equal(t, float32(5), g.Ball.Position.X)
	assert.Equal(t, float32(5), g.Ball.Position.Y)
	require.NotNil(t, g.LastGoalAt)

	stepOnce(rooms, g, cfg, goalAt.Add(cfg.GoalTimeout/2))
	assert.Equal(t, float32(5), g.Ball.Position.X)
	assert.Equal(t, float32(5), g.Ball.Position.Y)
}

// TestE2EOwnGoalSuppressesScore drives scenario 4: identical to scenario
// 3 except the last toucher occupies the side the ball crossed, so no
// score is credited.
func TestE2EOwnGoalSuppressesScore(t *testing.T) {
	cfg := config.Default()
	rooms, _ := newHarness(cfg)
	g := rooms.CreateGame()
	top, bottom := joinTwoHumans(t, rooms, g, "top", "bottom")
	readyUp(rooms, cfg, g, top, time.Now().UTC())
	readyUp(rooms, cfg, g, bottom, time.Now().UTC())
	require.Equal(t, game.Active, g.State)

	g.Ball.Position = game.Vec2{X: 5, Y: 9.8}
	g.Ball.Velocity = game.Vec2{X: 0, Y: 0.3}
	g.Ball.LastTouchedBy = &bottom.ID

	stepOnce(rooms, g, cfg, time.Now().UTC())

	assert.Equal(t, uint32(0), top.Score)
	assert.Equal(t, uint32(0), bottom.Score)
	require.NotNil(t, g.LastGoalAt)
}

// TestE2EDisconnectTimeoutFinishesGame drives scenario 5: a player whose
// ping has gone stale for longer than PingTimeout is evicted on the next
// tick, and losing a human below 2 finishes the game.
func TestE2EDisconnectTimeoutFinishesGame(t *testing.T) {
	cfg := config.Default()
	rooms, _ := newHarness(cfg)
	g := rooms.CreateGame()
	alice, bob := joinTwoHumans(t, rooms, g, "alice", "bob")
	readyUp(rooms, cfg, g, alice, time.Now().UTC())
	readyUp(rooms, cfg, g, bob, time.Now().UTC())
	require.Equal(t, game.Active, g.State)

	now := time.Now().UTC()
	stale := now.Add(-3 * time.Second)
	bob.PingTimestamp = &stale

	stepOnce(rooms, g, cfg, now)

	_, stillPresent := g.Players[bob.ID]
	assert.False(t, stillPresent)
	_, alicePresent := g.Players[alice.ID]
	assert.True(t, alicePresent)
	assert.Equal(t, game.Finished, g.State)
	require.NotNil(t, g.FinishedAt)
}

// TestE2EStaleCleanupSweepsFinishedGame drives scenario 6: a Finished
// game whose FinishedAt is older than GameDeleteTimeout is removed from
// the session map by the sweeper.
func TestE2EStaleCleanupSweepsFinishedGame(t *testing.T) {
	cfg := config.Default()
	rooms, _ := newHarness(cfg)
	g := rooms.CreateGame()
	finishedAt := time.Now().UTC().Add(-61 * time.Second)
	g.State = game.Finished
	g.FinishedAt = &finishedAt

	rooms.SweepExpired(time.Now().UTC())

	_, err := rooms.Find(g.ID)
	assert.ErrorIs(t, err, game.ErrGameNotFound)
}
