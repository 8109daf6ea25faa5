package game

import (
	"time"

	"github.com/google/uuid"
)

// State is the Game's lifecycle state (spec.md §3).
type State string

const (
	WaitingForPlayers State = "WaitingForPlayers"
	Active            State = "Active"
	Paused            State = "Paused"
	Finished          State = "Finished"
)

// MaxPlayers is the court's capacity: one player per side.
const MaxPlayers = 4

// Game is one arena: up to four players, a shared ball, score bookkeeping,
// and state-machine fields. Generalizes the teacher's GameActor state
// (game/game_actor.go) from an actor's private fields into a plain struct
// mutated under the session manager's single mutex (spec.md §5).
type Game struct {
	ID      uuid.UUID
	Players map[uuid.UUID]*Player
	State   State

	CreatedAt  time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
	LastGoalAt *time.Time

	Ball *Ball
}

// NewGame creates a fresh game in WaitingForPlayers with a centered ball
// aimed nowhere in particular (no players yet).
func NewGame(courtSize, ballRadius, ballSpawnSpeed float32) *Game {
	return &Game{
		ID:        uuid.New(),
		Players:   make(map[uuid.UUID]*Player),
		State:     WaitingForPlayers,
		CreatedAt: time.Now().UTC(),
		Ball:      NewBall(courtSize, ballRadius, ballSpawnSpeed, ""),
	}
}

// OccupiedPositions returns the sides currently held by a player.
func (g *Game) OccupiedPositions() map[Position]bool {
	occupied := make(map[Position]bool, len(g.Players))
	for _, p := range g.Players {
		if p.Position != nil {
			occupied[*p.Position] = true
		}
	}
	return occupied
}

// AssignPosition returns the first side in canonical order not currently
// held, or "" if the game is full (spec.md §4.1).
func (g *Game) AssignPosition() Position {
	occupied := g.OccupiedPositions()
	for _, pos := range canonicalOrder {
		if !occupied[pos] {
			return pos
		}
	}
	return ""
}

// HumanCount returns the number of non-AI players.
func (g *Game) HumanCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.IsAI {
			n++
		}
	}
	return n
}

// AllReady reports whether every player (human or AI) is ready.
func (g *Game) AllReady() bool {
	for _, p := range g.Players {
		if !p.IsReady {
			return false
		}
	}
	return true
}

// Start transitions WaitingForPlayers -> Active if >=2 players and all
// ready, per spec.md §3's lifecycle. Returns ErrInvalidStateTransition if
// the game is not WaitingForPlayers, and ErrPlayersNotReady if it has
// fewer than 2 players or any player is not ready.
func (g *Game) Start(now time.Time) error {
	if g.State != WaitingForPlayers {
		return ErrInvalidStateTransition
	}
	if len(g.Players) < 2 || !g.AllReady() {
		return ErrPlayersNotReady
	}
	g.State = Active
	g.StartedAt = &now
	return nil
}

// Finish transitions to Finished, recording FinishedAt.
func (g *Game) Finish(now time.Time) {
	if g.State == Finished {
		return
	}
	g.State = Finished
	g.FinishedAt = &now
}

// Reset clears a Finished game back to WaitingForPlayers: drops players,
// ball, started/finished timestamps (spec.md §4.1 play-again semantics).
func (g *Game) Reset(courtSize, ballRadius, ballSpawnSpeed float32) {
	g.Players = make(map[uuid.UUID]*Player)
	g.State = WaitingForPlayers
	g.StartedAt = nil
	g.FinishedAt = nil
	g.LastGoalAt = nil
	g.Ball = NewBall(courtSize, ballRadius, ballSpawnSpeed, "")
}

// FindAIPlayer returns any AI player in the game, or nil.
func (g *Game) FindAIPlayer() *Player {
	for _, p := range g.Players {
		if p.IsAI {
			return p
		}
	}
	return nil
}
