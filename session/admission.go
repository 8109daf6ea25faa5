package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/game"
)

// Join admits a new human player to a WaitingForPlayers game, per
// spec.md §4.1's admission policy.
func (r *GameRooms) Join(id uuid.UUID, name string) (*game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	if g.State != game.WaitingForPlayers {
		return nil, game.ErrInvalidStateTransition
	}
	return r.admit(g, name, false)
}

// PlayAgain behaves like Join but first resets a Finished game back to
// WaitingForPlayers (spec.md §4.1).
func (r *GameRooms) PlayAgain(id uuid.UUID, name string) (*game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	if g.State == game.Finished {
		g.Reset(r.cfg.CourtSize, r.cfg.BallRadius, r.cfg.BallSpawnSpeed)
	}
	if g.State != game.WaitingForPlayers {
		return nil, game.ErrInvalidStateTransition
	}
	return r.admit(g, name, false)
}

// AddBot admits an AI player, ready immediately, rejecting a full game.
func (r *GameRooms) AddBot(id uuid.UUID) (*game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	return r.admit(g, "", true)
}

// RemoveBot drops any one AI player from the game.
func (r *GameRooms) RemoveBot(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return game.ErrGameNotFound
	}
	bot := g.FindAIPlayer()
	if bot == nil {
		return game.ErrNoBot
	}
	delete(g.Players, bot.ID)
	return nil
}

// admit assigns a free position and inserts a new player. Caller must
// hold r.mu.
func (r *GameRooms) admit(g *game.Game, name string, isAI bool) (*game.Player, error) {
	if len(g.Players) >= game.MaxPlayers {
		return nil, game.ErrGameFull
	}
	pos := g.AssignPosition()
	if pos == "" {
		return nil, game.ErrGameFull
	}
	display := game.SynthesizeName(name, len(g.Players)+1, isAI)
	p := game.NewPlayerFor(display, pos, r.cfg.CourtSize, r.cfg.PaddleDelta, r.cfg.PaddleWidth, isAI)
	g.Players[p.ID] = p
	return p, nil
}

// StartGame toggles nothing itself; it calls g.Start. It does not take
// r.mu. The data-plane PlayerReady handler (transport.Dispatch) calls
// g.Start directly rather than going through this method.
func (r *GameRooms) StartGame(g *game.Game, now time.Time) error {
	return g.Start(now)
}
