package transport

import (
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
	"github.com/sirupsen/logrus"
)

// Dispatch applies every queued datagram against the live games map,
// implementing spec.md §4.4's action table. Callers hold the session
// manager's single mutex for the duration of this call (it runs inside
// the same session.WithLock block as the tick's physics step).
func Dispatch(games map[uuid.UUID]*game.Game, cfg config.Config, datagrams []Datagram, now time.Time, log *logrus.Entry) {
	for _, d := range datagrams {
		gameID, err := uuid.Parse(d.Input.GameID)
		if err != nil {
			log.WithError(err).Debug("dropping datagram: malformed game id")
			continue
		}
		playerID, err := uuid.Parse(d.Input.PlayerID)
		if err != nil {
			log.WithError(err).Debug("dropping datagram: malformed player id")
			continue
		}
		g, ok := games[gameID]
		if !ok {
			continue
		}
		p, ok := g.Players[playerID]
		if !ok {
			continue
		}
		applyAction(g, p, d.Input.Action, d.Addr, cfg, now)
	}
}

func applyAction(g *game.Game, p *game.Player, action game.Action, addr net.Addr, cfg config.Config, now time.Time) {
	switch action.Type {
	case game.ActionJoinGame:
		if g.State != game.WaitingForPlayers {
			return
		}
		p.Touch(addr, now)

	case game.ActionPing:
		p.Touch(addr, now)

	case game.ActionPlayerReady:
		p.IsReady = !p.IsReady
		if err := g.Start(now); err == nil {
			g.Ball = game.NewBall(cfg.CourtSize, cfg.BallRadius, cfg.BallSpawnSpeed, "")
		}

	case game.ActionMovePaddle:
		if g.State != game.Active {
			return
		}
		p.MovePaddle(action.Direction == game.Positive, cfg.CourtSize, cfg.AISlowdown)

	case game.ActionDisconnect, game.ActionLeaveGame:
		delete(g.Players, p.ID)

	case game.ActionPauseGame, game.ActionResumeGame:
		// No-op: spec.md leaves pause/resume data-plane semantics
		// undefined for this server; acknowledged but not acted on.
	}
}
