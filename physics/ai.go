package physics

import (
	"math"
	"math/rand"

	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
)

// StepAI advances every AI player's paddle one tick: project the ball's
// path to this player's wall, jitter the aim if already close, and
// command one MovePaddle step toward the target (spec.md §4.5).
func StepAI(g *game.Game, cfg config.Config) {
	if g.Ball == nil {
		return
	}
	for _, p := range g.Players {
		if !p.IsAI || p.Position == nil {
			continue
		}
		target := aiTarget(g.Ball, *p.Position, cfg)
		half := p.PaddleWidth / 2
		if float32(math.Abs(float64(p.PaddlePosition-target))) < half {
			target += (rand.Float32()*2 - 1) * half
		}
		if p.PaddlePosition < target {
			p.MovePaddle(true, cfg.CourtSize, cfg.AISlowdown)
		} else if p.PaddlePosition > target {
			p.MovePaddle(false, cfg.CourtSize, cfg.AISlowdown)
		}
	}
}

// aiTarget projects the ball's straight-line travel, folded off
// perpendicular walls, to find where it will cross this player's side.
// Falls back to court center when the ball is moving away or the
// crossing would need more than two reflections (spec.md §4.5).
func aiTarget(b *game.Ball, side game.Position, cfg config.Config) float32 {
	center := cfg.CourtSize / 2

	if side != game.Top && side != game.Bottom && side != game.Left && side != game.Right {
		return center
	}

	alongPos, alongVel, perpPos, perpVel := b.Position.Y, b.Velocity.Y, b.Position.X, b.Velocity.X
	if !side.IsHorizontalWall() {
		alongPos, alongVel, perpPos, perpVel = b.Position.X, b.Velocity.X, b.Position.Y, b.Velocity.Y
	}
	line := cfg.CourtSize - cfg.PaddlePadding
	if isNearSide(side) {
		line = cfg.PaddlePadding
	}

	if alongVel == 0 {
		return center
	}
	t := (line - alongPos) / alongVel
	if t <= 0 {
		return center
	}

	rawPerp := perpPos + perpVel*t
	folded, reflections := foldIntoCourt(rawPerp, cfg.CourtSize)
	if reflections > 2 {
		return center
	}
	return folded
}

// foldIntoCourt reflects a coordinate that may lie outside [0, size] back
// into range as if it had bounced off the walls at 0 and size, returning
// the folded coordinate and how many reflections occurred.
func foldIntoCourt(x, size float32) (float32, int) {
	if size <= 0 {
		return 0, 0
	}
	period := 2 * size
	m := float32(math.Mod(float64(x), float64(period)))
	if m < 0 {
		m += period
	}
	reflections := int(math.Abs(math.Floor(float64(x) / float64(size))))
	if m > size {
		return period - m, reflections
	}
	return m, reflections
}
