package physics

import (
	"time"

	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
)

// CheckGoal tests every occupied side for a crossed boundary. On the
// first crossing found, it credits the last-touching player (unless they
// occupy the scored-on side — an own goal scores nothing), stamps
// LastGoalAt, resets the ball, and finishes the game if MAX_SCORE was
// reached. Returns whether a goal occurred.
func CheckGoal(g *game.Game, cfg config.Config, now time.Time) bool {
	for _, p := range g.Players {
		if p.Position == nil {
			continue
		}
		if !crossedSide(g.Ball, *p.Position, cfg.CourtSize) {
			continue
		}
		scorer := scoringPlayer(g, *p.Position)
		if scorer != nil {
			scorer.Score++
		}
		g.LastGoalAt = &now
		resetBall(g, cfg)
		if scorer != nil && scorer.Score >= cfg.MaxScore {
			g.Finish(now)
		}
		return true
	}
	return false
}

// scoringPlayer resolves spec.md §4.2's credit rule: the player named by
// last_touched_by scores, unless that player occupies the side the ball
// just crossed (an own goal scores nothing).
func scoringPlayer(g *game.Game, scoredSide game.Position) *game.Player {
	if g.Ball.LastTouchedBy == nil {
		return nil
	}
	scorer, ok := g.Players[*g.Ball.LastTouchedBy]
	if !ok {
		return nil
	}
	if scorer.Position != nil && *scorer.Position == scoredSide {
		return nil
	}
	return scorer
}

// resetBall respawns the ball centered, aimed at a uniformly-random
// present player's side (spec.md §3's spawn rule, §9's one-player
// resolution: with exactly one player present that player's side is
// the only element of the sample space).
func resetBall(g *game.Game, cfg config.Config) {
	g.Ball = game.NewBall(cfg.CourtSize, cfg.BallRadius, cfg.BallSpawnSpeed, randomPresentSide(g))
}

func randomPresentSide(g *game.Game) game.Position {
	sides := make([]game.Position, 0, len(g.Players))
	for pos := range g.OccupiedPositions() {
		sides = append(sides, pos)
	}
	if len(sides) == 0 {
		return ""
	}
	return sides[randIntn(len(sides))]
}
