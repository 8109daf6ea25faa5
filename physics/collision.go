// Package physics implements the tick engine: ball integration, wall and
// paddle collision/reflection, goal detection, and the AI paddle
// controller (spec.md §4.2-§4.5). Generalizes the teacher's
// game/collision.go (one collision-test function per wall, dispatched
// through a small table) from a brick-breaker's wall-only bounce into the
// angle-based paddle reflection spec.md §4.3 requires.
package physics

import (
	"math"

	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
)

// CanSkipCollision is the short-circuit test of spec.md §4.3: when the
// ball sits well clear of every wall, no paddle collision is possible.
func CanSkipCollision(ball *game.Ball, cfg config.Config) bool {
	margin := cfg.PaddlePadding * cfg.SafeZoneMargin
	x, y := ball.Position.X, ball.Position.Y
	return margin < x && x < cfg.CourtSize-margin && margin < y && y < cfg.CourtSize-margin
}

// ResolvePaddleCollisions tests the ball against every present player's
// paddle, applying the first hit found. Returns the hitting player, or
// nil if no paddle was hit.
func ResolvePaddleCollisions(g *game.Game, cfg config.Config) *game.Player {
	if CanSkipCollision(g.Ball, cfg) {
		return nil
	}
	for _, p := range g.Players {
		if p.Position == nil {
			continue
		}
		if resolveOnePaddle(g.Ball, p, *p.Position, cfg) {
			return p
		}
	}
	return nil
}

// paddleGeometry pins down the two things that differ per side once the
// paddle/approach axes are picked by IsHorizontalWall: where the padding
// line sits on the approach axis, and the base angle + sign the hit
// offset is applied with (the sign convention derived in DESIGN.md).
type paddleGeometry struct {
	near      bool
	thetaBase float64
	thetaSign float64
}

var paddleGeometries = map[game.Position]paddleGeometry{
	game.Top:    {near: true, thetaBase: 3 * math.Pi / 2, thetaSign: 1},
	game.Bottom: {near: false, thetaBase: math.Pi / 2, thetaSign: -1},
	game.Left:   {near: true, thetaBase: math.Pi, thetaSign: -1},
	game.Right:  {near: false, thetaBase: 2 * math.Pi, thetaSign: 1},
}

// resolveOnePaddle tests and, on hit, resolves collision against one
// player's paddle. Returns whether a collision occurred.
func resolveOnePaddle(ball *game.Ball, p *game.Player, side game.Position, cfg config.Config) bool {
	geo, ok := paddleGeometries[side]
	if !ok {
		return false
	}
	half := p.PaddleWidth / 2

	paddleAxis, approachAxis := &ball.Position.X, &ball.Position.Y
	if !side.IsHorizontalWall() {
		paddleAxis, approachAxis = &ball.Position.Y, &ball.Position.X
	}

	line := cfg.CourtSize - cfg.PaddlePadding
	if geo.near {
		line = cfg.PaddlePadding
	}
	blocked := *approachAxis <= line
	if geo.near {
		blocked = *approachAxis >= line
	}
	if blocked || !spanIntersects(*paddleAxis, ball.Radius, p.PaddlePosition, half) {
		return false
	}

	hitOffset := clamp((*paddleAxis-p.PaddlePosition)/half, -1, 1)
	theta := geo.thetaBase + geo.thetaSign*float64(hitOffset)*cfg.MaxAngle
	if side.IsHorizontalWall() {
		ball.Velocity.X = cfg.BallSpeed * float32(math.Cos(theta))
		ball.Velocity.Y = -cfg.BallSpeed * float32(math.Sin(theta))
	} else {
		ball.Velocity.X = -cfg.BallSpeed * float32(math.Cos(theta))
		ball.Velocity.Y = cfg.BallSpeed * float32(math.Sin(theta))
	}
	if geo.near {
		*approachAxis = line + ball.Radius
	} else {
		*approachAxis = line - ball.Radius
	}

	ball.LastTouchedBy = &p.ID
	return true
}

// spanIntersects reports whether the ball's extent along one axis
// [center-radius, center+radius] overlaps the paddle's span
// [paddlePos-half, paddlePos+half].
func spanIntersects(ballCenter, ballRadius, paddlePos, half float32) bool {
	return ballCenter+ballRadius >= paddlePos-half && ballCenter-ballRadius <= paddlePos+half
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
