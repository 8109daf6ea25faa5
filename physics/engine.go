package physics

import (
	"time"

	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
)

// StepGame advances one game by one tick: liveness, post-goal freeze,
// ball integration, AI movement, wall reflection, goal detection, and
// paddle collision, in the exact order spec.md §4.2 lists. Callers hold
// the session manager's single mutex for the duration of this call.
func StepGame(g *game.Game, cfg config.Config, now time.Time) {
	if removeStalePlayers(g, cfg, now) {
		if g.HumanCount() < 2 {
			g.Finish(now)
		}
	}

	if g.State != game.Active {
		return
	}

	if g.LastGoalAt != nil && now.Sub(*g.LastGoalAt) < cfg.GoalTimeout {
		return
	}

	g.Ball.Move()
	StepAI(g, cfg)
	ReflectEmptyWalls(g, cfg)
	if CheckGoal(g, cfg, now) {
		return
	}
	ResolvePaddleCollisions(g, cfg)
}

// removeStalePlayers evicts every player whose last ping predates the
// liveness timeout, returning whether any player was removed.
func removeStalePlayers(g *game.Game, cfg config.Config, now time.Time) bool {
	removed := false
	for id, p := range g.Players {
		if p.IsAI {
			continue
		}
		if p.IsPingStale(now, cfg.PingTimeout) {
			delete(g.Players, id)
			removed = true
		}
	}
	return removed
}
