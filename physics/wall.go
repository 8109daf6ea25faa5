package physics

import (
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
)

// isNearSide reports whether side's padding boundary sits at the low end
// of its axis (coordinate 0) rather than the high end (CourtSize). Top
// and Left are near; their Opposite()s, Bottom and Right, are far.
func isNearSide(side game.Position) bool {
	return side == game.Top || side == game.Left
}

// ReflectEmptyWalls bounces the ball off any of the four sides that has no
// player, clamping its position and inverting the orthogonal velocity
// component (spec.md §4.2/§4.3). Occupied sides are left untouched; they
// are handled by goal detection and paddle collision instead.
func ReflectEmptyWalls(g *game.Game, cfg config.Config) {
	occupied := g.OccupiedPositions()
	b := g.Ball

	reflectAxis(occupied, game.Top, &b.Position.Y, &b.Velocity.Y, cfg.CourtSize, b.Radius)
	reflectAxis(occupied, game.Left, &b.Position.X, &b.Velocity.X, cfg.CourtSize, b.Radius)
}

// reflectAxis handles one axis' pair of walls: lowSide (Top or Left) and
// its Opposite() (Bottom or Right), sharing the position/velocity
// component that axis owns.
func reflectAxis(occupied map[game.Position]bool, lowSide game.Position, pos, vel *float32, courtSize, radius float32) {
	highSide := lowSide.Opposite()
	if !occupied[lowSide] && *pos-radius <= 0 {
		*pos = radius
		*vel = -*vel
	}
	if !occupied[highSide] && *pos+radius >= courtSize {
		*pos = courtSize - radius
		*vel = -*vel
	}
}

// crossedSide reports whether the ball's center has crossed the named
// occupied side's boundary (minus radius), per the Goal definition in the
// GLOSSARY.
func crossedSide(b *game.Ball, side game.Position, courtSize float32) bool {
	pos := b.Position.Y
	if !side.IsHorizontalWall() {
		pos = b.Position.X
	}
	if isNearSide(side) {
		return pos-b.Radius < 0
	}
	return pos+b.Radius > courtSize
}
