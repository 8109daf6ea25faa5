package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBallSpawnsCentered(t *testing.T) {
	b := NewBall(10, 0.125, 0.2, Top)
	assert.Equal(t, float32(5), b.Position.X)
	assert.Equal(t, float32(5), b.Position.Y)
	assert.InDelta(t, 0.2, float64(b.Speed()), 1e-6)
	assert.Less(t, float64(b.Speed()), 0.25)
}

func TestNewBallAimsTowardTarget(t *testing.T) {
	b := NewBall(10, 0.125, 0.2, Bottom)
	assert.Greater(t, b.Velocity.Y, float32(0))
	b = NewBall(10, 0.125, 0.2, Top)
	assert.Less(t, b.Velocity.Y, float32(0))
	b = NewBall(10, 0.125, 0.2, Left)
	assert.Less(t, b.Velocity.X, float32(0))
	b = NewBall(10, 0.125, 0.2, Right)
	assert.Greater(t, b.Velocity.X, float32(0))
}

func TestNewBallWithNoTargetStillHasSpawnSpeed(t *testing.T) {
	b := NewBall(10, 0.125, 0.2, "")
	assert.InDelta(t, 0.2, float64(b.Speed()), 0.001)
}

func TestBallMoveIntegratesPosition(t *testing.T) {
	b := &Ball{Position: Vec2{X: 1, Y: 1}, Velocity: Vec2{X: 0.1, Y: -0.2}}
	b.Move()
	assert.Equal(t, float32(1.1), b.Position.X)
	assert.InDelta(t, 0.8, float64(b.Position.Y), 1e-6)
}
