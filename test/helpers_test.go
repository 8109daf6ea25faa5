// Package test holds cross-package end-to-end scenarios that exercise
// session, physics, transport, and server together — the composed flows
// that package-level unit tests never see end to end.
package test

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
	"github.com/lguibr/pongo/physics"
	"github.com/lguibr/pongo/server"
	"github.com/lguibr/pongo/session"
	"github.com/lguibr/pongo/transport"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func silentLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(nopWriter{})
	return log.WithField("component", "e2e")
}

// newHarness wires a session manager and a control-plane server off one
// config, with a silent logger, the way main.go wires the real process.
func newHarness(cfg config.Config) (*session.GameRooms, *server.Server) {
	rooms := session.New(cfg)
	return rooms, server.New(rooms, silentLog())
}

// stepOnce advances g by one tick at instant now, under the session
// manager's single lock acquisition — matching the real tick task's lock
// discipline (spec.md §4.2/§5) rather than reaching into g directly.
func stepOnce(rooms *session.GameRooms, g *game.Game, cfg config.Config, now time.Time) {
	rooms.WithLock(func(map[uuid.UUID]*game.Game) {
		physics.StepGame(g, cfg, now)
	})
}

// addr is a stand-in client endpoint for datagrams the tests inject
// directly rather than sending over a real socket.
type addr struct{ id string }

func (a addr) Network() string { return "udp" }
func (a addr) String() string  { return a.id }

// readyUp dispatches a PlayerReady datagram for p the same way the UDP
// ingress loop and tick task would, exercising transport.Dispatch rather
// than flipping p.IsReady directly. Games that reach all-ready
// auto-start inside applyAction, same as production.
func readyUp(rooms *session.GameRooms, cfg config.Config, g *game.Game, p *game.Player, now time.Time) {
	d := transport.Datagram{
		Addr: addr{id: p.ID.String()},
		Input: game.ClientInput{
			GameID:   g.ID.String(),
			PlayerID: p.ID.String(),
			Action:   game.Action{Type: game.ActionPlayerReady},
		},
	}
	rooms.WithLock(func(games map[uuid.UUID]*game.Game) {
		transport.Dispatch(games, cfg, []transport.Datagram{d}, now, silentLog())
	})
}

// joinTwoHumans admits two named human players to g, leaving readiness
// for the caller to drive (directly, or via readyUp).
func joinTwoHumans(t *testing.T, rooms *session.GameRooms, g *game.Game, nameA, nameB string) (*game.Player, *game.Player) {
	t.Helper()
	a, err := rooms.Join(g.ID, nameA)
	require.NoError(t, err)
	b, err := rooms.Join(g.ID, nameB)
	require.NoError(t, err)
	return a, b
}

var _ net.Addr = addr{}
