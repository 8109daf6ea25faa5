package transport

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(discard{})
	return l.WithField("component", "test")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newWaitingGameWithPlayer(cfg config.Config) (*game.Game, *game.Player) {
	g := game.NewGame(cfg.CourtSize, cfg.BallRadius, cfg.BallSpawnSpeed)
	p := game.NewPlayerFor("alice", game.Top, cfg.CourtSize, cfg.PaddleDelta, cfg.PaddleWidth, false)
	g.Players[p.ID] = p
	return g, p
}

func TestDispatchJoinGameRecordsAddrWhileWaiting(t *testing.T) {
	cfg := config.Default()
	g, p := newWaitingGameWithPlayer(cfg)
	games := map[uuid.UUID]*game.Game{g.ID: g}
	addr := &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}

	datagrams := []Datagram{{
		Addr: addr,
		Input: game.ClientInput{
			GameID:   g.ID.String(),
			PlayerID: p.ID.String(),
			Action:   game.Action{Type: game.ActionJoinGame},
		},
	}}

	Dispatch(games, cfg, datagrams, time.Now(), testLog())
	assert.Equal(t, addr, p.Addr)
	assert.NotNil(t, p.PingTimestamp)
}

func TestDispatchPlayerReadyStartsGameWhenAllReady(t *testing.T) {
	cfg := config.Default()
	g := game.NewGame(cfg.CourtSize, cfg.BallRadius, cfg.BallSpawnSpeed)
	p1 := game.NewPlayerFor("a", game.Top, cfg.CourtSize, cfg.PaddleDelta, cfg.PaddleWidth, false)
	p2 := game.NewPlayerFor("b", game.Bottom, cfg.CourtSize, cfg.PaddleDelta, cfg.PaddleWidth, false)
	p1.IsReady = true
	g.Players[p1.ID] = p1
	g.Players[p2.ID] = p2
	games := map[uuid.UUID]*game.Game{g.ID: g}

	datagrams := []Datagram{{
		Input: game.ClientInput{
			GameID:   g.ID.String(),
			PlayerID: p2.ID.String(),
			Action:   game.Action{Type: game.ActionPlayerReady},
		},
	}}

	Dispatch(games, cfg, datagrams, time.Now(), testLog())
	assert.Equal(t, game.Active, g.State)
}

func TestDispatchMovePaddleOnlyAppliesWhenActive(t *testing.T) {
	cfg := config.Default()
	g, p := newWaitingGameWithPlayer(cfg)
	games := map[uuid.UUID]*game.Game{g.ID: g}
	before := p.PaddlePosition

	datagrams := []Datagram{{
		Input: game.ClientInput{
			GameID:   g.ID.String(),
			PlayerID: p.ID.String(),
			Action:   game.Action{Type: game.ActionMovePaddle, Direction: game.Positive},
		},
	}}
	Dispatch(games, cfg, datagrams, time.Now(), testLog())
	assert.Equal(t, before, p.PaddlePosition, "MovePaddle must be a no-op before the game is Active")
}

func TestDispatchDisconnectRemovesPlayer(t *testing.T) {
	cfg := config.Default()
	g, p := newWaitingGameWithPlayer(cfg)
	games := map[uuid.UUID]*game.Game{g.ID: g}

	datagrams := []Datagram{{
		Input: game.ClientInput{
			GameID:   g.ID.String(),
			PlayerID: p.ID.String(),
			Action:   game.Action{Type: game.ActionDisconnect},
		},
	}}
	Dispatch(games, cfg, datagrams, time.Now(), testLog())
	_, ok := g.Players[p.ID]
	assert.False(t, ok)
}

func TestDispatchDropsMalformedIDsWithoutPanicking(t *testing.T) {
	cfg := config.Default()
	games := map[uuid.UUID]*game.Game{}
	datagrams := []Datagram{{Input: game.ClientInput{GameID: "not-a-uuid", PlayerID: "also-not"}}}
	require.NotPanics(t, func() {
		Dispatch(games, cfg, datagrams, time.Now(), testLog())
	})
}
