package game

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Player is one occupant of a Game. Generalizes the teacher's Player
// (game/player.go), which held only index/canvas/color/score, into the
// full paddle-kinematics + liveness + readiness model spec.md §3 requires.
type Player struct {
	ID             uuid.UUID
	Name           string
	JoinedAt       time.Time
	PingTimestamp  *time.Time
	Score          uint32

	Addr     net.Addr
	Position *Position

	PaddlePosition float32
	PaddleDelta    float32
	PaddleWidth    float32

	IsReady bool
	IsAI    bool
}

// NewPlayerFor creates a player at the court center of its assigned wall,
// not yet ready unless isAI (AI players are created ready, per spec.md §3).
func NewPlayerFor(name string, position Position, courtSize, paddleDelta, paddleWidth float32, isAI bool) *Player {
	return &Player{
		ID:             uuid.New(),
		Name:           name,
		JoinedAt:       time.Now().UTC(),
		Position:       &position,
		PaddlePosition: courtSize / 2,
		PaddleDelta:    paddleDelta,
		PaddleWidth:    paddleWidth,
		IsReady:        isAI,
		IsAI:           isAI,
	}
}

// ClampPaddlePosition enforces paddleWidth/2 <= pos <= courtSize-paddleWidth/2.
func ClampPaddlePosition(pos, paddleWidth, courtSize float32) float32 {
	half := paddleWidth / 2
	if pos < half {
		return half
	}
	if pos > courtSize-half {
		return courtSize - half
	}
	return pos
}

// MovePaddle applies one directional step, scaled by aiSlowdown for AI
// players, clamped to the court per spec.md §4.4.
func (p *Player) MovePaddle(positive bool, courtSize, aiSlowdown float32) {
	delta := p.PaddleDelta
	if !positive {
		delta = -delta
	}
	if p.IsAI {
		delta *= aiSlowdown
	}
	p.PaddlePosition = ClampPaddlePosition(p.PaddlePosition+delta, p.PaddleWidth, courtSize)
}

// IsPingStale reports whether the player has an observed ping that
// predates now-timeout. A player who has never sent a datagram (nil
// PingTimestamp) has not yet had a chance to go stale.
func (p *Player) IsPingStale(now time.Time, timeout time.Duration) bool {
	if p.PingTimestamp == nil {
		return false
	}
	return now.Sub(*p.PingTimestamp) > timeout
}

// Touch records an observed datagram from the player: its sender address
// and, for Ping/JoinGame inputs, a refreshed liveness timestamp.
func (p *Player) Touch(addr net.Addr, now time.Time) {
	p.Addr = addr
	p.PingTimestamp = &now
}

// SynthesizeName returns name trimmed, or a generated "player_N"/"bot_N"
// label if name is empty, per spec.md §4.1's admission policy.
func SynthesizeName(name string, n int, isAI bool) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if isAI {
		return botName(n)
	}
	return playerName(n)
}

func playerName(n int) string { return "player_" + strconv.Itoa(n) }
func botName(n int) string    { return "bot_" + strconv.Itoa(n) }
