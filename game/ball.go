package game

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Vec2 is a 2D point or vector in court coordinates.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Ball is the shared ball, spawned centered with velocity toward a
// present player's side (spec.md §3).
type Ball struct {
	Position      Vec2       `json:"position"`
	Velocity      Vec2       `json:"velocity"`
	Radius        float32    `json:"radius"`
	LastTouchedBy *uuid.UUID `json:"last_touched_by,omitempty"`
}

// NewBall spawns a ball centered at (size/2, size/2) moving toward target
// at spawnSpeed. An empty target ("") is accepted: the ball still spawns,
// moving in a uniformly random direction.
func NewBall(courtSize, radius, spawnSpeed float32, target Position) *Ball {
	center := courtSize / 2
	vx, vy := directionToward(target, spawnSpeed)
	return &Ball{
		Position: Vec2{X: center, Y: center},
		Velocity: Vec2{X: vx, Y: vy},
		Radius:   radius,
	}
}

// directionToward returns a velocity vector of the given speed pointed
// roughly at the named side, with a random lateral component so repeated
// spawns don't all travel the same line.
func directionToward(target Position, speed float32) (float32, float32) {
	lateral := (rand.Float32()*2 - 1) * speed * 0.5
	var vx, vy float32
	switch target {
	case Top:
		vx, vy = lateral, -speed
	case Bottom:
		vx, vy = lateral, speed
	case Left:
		vx, vy = -speed, lateral
	case Right:
		vx, vy = speed, lateral
	default:
		// No player present: aim along a uniformly random direction.
		theta := rand.Float64() * 2 * math.Pi
		return float32(math.Cos(theta)) * speed, float32(math.Sin(theta)) * speed
	}
	// Rescale so the lateral component does not add to the speed.
	scale := float64(speed) / math.Hypot(float64(vx), float64(vy))
	return float32(float64(vx) * scale), float32(float64(vy) * scale)
}

// Move integrates the ball one tick: position += velocity.
func (b *Ball) Move() {
	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y
}

// Speed returns the magnitude of the ball's velocity.
func (b *Ball) Speed() float32 {
	return float32(math.Hypot(float64(b.Velocity.X), float64(b.Velocity.Y)))
}
