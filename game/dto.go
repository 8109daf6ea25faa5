package game

import (
	"time"

	"github.com/google/uuid"
)

// BallDto is the public projection of Ball, omitting LastTouchedBy per
// spec.md §6.
type BallDto struct {
	Position Vec2    `json:"position" msgpack:"position"`
	Velocity Vec2    `json:"velocity" msgpack:"velocity"`
	Radius   float32 `json:"radius" msgpack:"radius"`
}

// PlayerDto is the public projection of Player, omitting Addr and
// PingTimestamp per spec.md §6.
type PlayerDto struct {
	ID             uuid.UUID `json:"id" msgpack:"id"`
	Name           string    `json:"name" msgpack:"name"`
	JoinedAt       time.Time `json:"joined_at" msgpack:"joined_at"`
	Score          uint32    `json:"score" msgpack:"score"`
	Position       *Position `json:"position,omitempty" msgpack:"position,omitempty"`
	PaddlePosition float32   `json:"paddle_position" msgpack:"paddle_position"`
	PaddleDelta    float32   `json:"paddle_delta" msgpack:"paddle_delta"`
	PaddleWidth    float32   `json:"paddle_width" msgpack:"paddle_width"`
	IsReady        bool      `json:"is_ready" msgpack:"is_ready"`
	IsAI           bool      `json:"is_ai" msgpack:"is_ai"`
}

// GameDto is the public projection of Game broadcast at tick rate
// (spec.md §6/§4.7). Control-plane JSON responses also use it so both
// wire formats describe the identical shape.
type GameDto struct {
	ID         uuid.UUID            `json:"id" msgpack:"id"`
	Players    map[string]PlayerDto `json:"players" msgpack:"players"`
	State      State                `json:"state" msgpack:"state"`
	CreatedAt  time.Time            `json:"created_at" msgpack:"created_at"`
	StartedAt  *time.Time           `json:"started_at,omitempty" msgpack:"started_at,omitempty"`
	FinishedAt *time.Time           `json:"finished_at,omitempty" msgpack:"finished_at,omitempty"`
	LastGoalAt *time.Time           `json:"last_goal_at,omitempty" msgpack:"last_goal_at,omitempty"`
	Ball       *BallDto             `json:"ball,omitempty" msgpack:"ball,omitempty"`
}

// ToDto projects a Player to its wire-safe representation.
func (p *Player) ToDto() PlayerDto {
	return PlayerDto{
		ID:             p.ID,
		Name:           p.Name,
		JoinedAt:       p.JoinedAt,
		Score:          p.Score,
		Position:       p.Position,
		PaddlePosition: p.PaddlePosition,
		PaddleDelta:    p.PaddleDelta,
		PaddleWidth:    p.PaddleWidth,
		IsReady:        p.IsReady,
		IsAI:           p.IsAI,
	}
}

// ToDto projects a Ball to its wire-safe representation.
func (b *Ball) ToDto() *BallDto {
	if b == nil {
		return nil
	}
	return &BallDto{Position: b.Position, Velocity: b.Velocity, Radius: b.Radius}
}

// ToDto projects a Game to its wire-safe snapshot, copying the state held
// under the session manager's mutex into a new value so callers may serialize
// after releasing any lock (spec.md §4.2/§5: "clones snapshots before
// serializing").
func (g *Game) ToDto() GameDto {
	players := make(map[string]PlayerDto, len(g.Players))
	for id, p := range g.Players {
		players[id.String()] = p.ToDto()
	}
	return GameDto{
		ID:         g.ID,
		Players:    players,
		State:      g.State,
		CreatedAt:  g.CreatedAt,
		StartedAt:  g.StartedAt,
		FinishedAt: g.FinishedAt,
		LastGoalAt: g.LastGoalAt,
		Ball:       g.Ball.ToDto(),
	}
}
