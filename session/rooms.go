// Package session implements the session/lobby manager (spec.md §4.1): a
// single process-wide map of game-id to Game, guarded by one mutex, plus
// the admission policy shared by join/play-again/add-bot. Generalizes the
// teacher's RoomManagerActor (game/room_manager.go) from an actor mailbox
// into a plain mutex-guarded struct, per the concurrency model spec.md §5
// mandates (see DESIGN.md's dropped-dependency note on bollywood).
package session

import (
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
)

// GameRooms is the process-wide session map.
type GameRooms struct {
	cfg config.Config

	mu    sync.Mutex
	games map[uuid.UUID]*game.Game
}

// New creates an empty session manager.
func New(cfg config.Config) *GameRooms {
	return &GameRooms{
		cfg:   cfg,
		games: make(map[uuid.UUID]*game.Game),
	}
}

// CreateGame inserts a fresh game in WaitingForPlayers and returns it.
func (r *GameRooms) CreateGame() *game.Game {
	g := game.NewGame(r.cfg.CourtSize, r.cfg.BallRadius, r.cfg.BallSpawnSpeed)
	r.mu.Lock()
	r.games[g.ID] = g
	r.mu.Unlock()
	return g
}

// Find returns the game with the given id, or ErrGameNotFound.
func (r *GameRooms) Find(id uuid.UUID) (*game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	if !ok {
		return nil, game.ErrGameNotFound
	}
	return g, nil
}

// List returns every game, ordered by CreatedAt ascending.
func (r *GameRooms) List() []*game.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*game.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, g)
	}
	sortByCreatedAt(out)
	return out
}

func sortByCreatedAt(games []*game.Game) {
	for i := 1; i < len(games); i++ {
		for j := i; j > 0 && games[j].CreatedAt.Before(games[j-1].CreatedAt); j-- {
			games[j], games[j-1] = games[j-1], games[j]
		}
	}
}

// Delete removes a game from the map.
func (r *GameRooms) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

// SweepExpired removes every Finished game whose FinishedAt is older than
// GameDeleteTimeout (spec.md §3/§4.1).
func (r *GameRooms) SweepExpired(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, g := range r.games {
		if g.State == game.Finished && g.FinishedAt != nil && now.Sub(*g.FinishedAt) > r.cfg.GameDeleteTimeout {
			delete(r.games, id)
		}
	}
}

// WithLock runs fn with the session mutex held, giving the tick engine a
// single lock acquisition over the whole map per spec.md §4.2/§5.
func (r *GameRooms) WithLock(fn func(games map[uuid.UUID]*game.Game)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.games)
}

// BroadcastSnapshot pairs one game's public DTO with the player addresses
// it should be sent to — everything the broadcast task needs, captured
// under one lock acquisition so it never has to touch Game again.
type BroadcastSnapshot struct {
	Dto   game.GameDto
	Addrs []net.Addr
}

// Snapshot clones every game's current DTO and player addresses under the
// lock, then releases it before the caller serializes and sends —
// bounding lock residency per spec.md §5/§176. This is the broadcast
// task's only touch point on the session map; it never shares a lock
// acquisition with the tick task's WithLock.
func (r *GameRooms) Snapshot() []BroadcastSnapshot {
	r.mu.Lock()
	out := make([]BroadcastSnapshot, 0, len(r.games))
	for _, g := range r.games {
		addrs := make([]net.Addr, 0, len(g.Players))
		for _, p := range g.Players {
			if p.Addr != nil {
				addrs = append(addrs, p.Addr)
			}
		}
		out = append(out, BroadcastSnapshot{Dto: g.ToDto(), Addrs: addrs})
	}
	r.mu.Unlock()
	return out
}

// Config returns the session manager's configuration.
func (r *GameRooms) Config() config.Config {
	return r.cfg
}
