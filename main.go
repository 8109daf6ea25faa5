// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/pongo/config"
	"github.com/lguibr/pongo/game"
	"github.com/lguibr/pongo/physics"
	"github.com/lguibr/pongo/server"
	"github.com/lguibr/pongo/session"
	"github.com/lguibr/pongo/transport"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := log.WithField("component", "main")

	cfg := config.FromEnv()
	entry.WithFields(logrus.Fields{
		"http_port": cfg.HTTPPort,
		"udp_port":  cfg.UDPPort,
		"tick_rate": cfg.TickRate,
	}).Info("configuration loaded")

	rooms := session.New(cfg)

	udp, err := transport.Listen(cfg, log.WithField("component", "transport"))
	if err != nil {
		entry.WithError(err).Fatal("failed to open udp socket")
	}
	entry.WithField("addr", udp.Addr()).Info("udp data-plane listening")

	httpServer := newHTTPServer(cfg, rooms, log.WithField("component", "server"))

	stop := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(5)
	go func() { defer wg.Done(); udp.ReadLoop() }()
	go func() { defer wg.Done(); runTickLoop(rooms, udp, cfg, stop, log.WithField("component", "engine")) }()
	go func() { defer wg.Done(); runBroadcastLoop(rooms, udp, cfg, stop, log.WithField("component", "broadcast")) }()
	go func() { defer wg.Done(); runSweeper(rooms, cfg, stop) }()
	go func() {
		defer wg.Done()
		entry.WithField("addr", httpServer.Addr).Info("control-plane listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			entry.WithError(err).Fatal("control-plane server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	entry.WithField("signal", sig.String()).Info("shutting down")

	close(stop)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		entry.WithError(err).Warn("control-plane shutdown error")
	}
	_ = udp.Close()
	wg.Wait()
	entry.Info("shutdown complete")
}

func newHTTPServer(cfg config.Config, rooms *session.GameRooms, log *logrus.Entry) *http.Server {
	srv := server.New(rooms, log)
	return &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      srv.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// runTickLoop drives the simulation at cfg.TickRate: drain queued inputs,
// apply them, and step every game's physics — all under one acquisition
// of the session manager's mutex per spec.md §4.2/§5. It never touches
// the socket directly; the broadcast task owns sending.
func runTickLoop(rooms *session.GameRooms, udp *transport.Transport, cfg config.Config, stop <-chan struct{}, log *logrus.Entry) {
	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			tick(rooms, udp, cfg, log)
		}
	}
}

func tick(rooms *session.GameRooms, udp *transport.Transport, cfg config.Config, log *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("recovered from panic in tick")
		}
	}()

	now := time.Now().UTC()
	datagrams := udp.Inbox.Drain()

	rooms.WithLock(func(games map[uuid.UUID]*game.Game) {
		transport.Dispatch(games, cfg, datagrams, now, log)
		for _, g := range games {
			physics.StepGame(g, cfg, now)
		}
	})
}

// runBroadcastLoop is the third long-lived task spec.md §2/§5 names: on
// its own 60Hz ticker, independent of tick cadence, it clones every
// game's snapshot under one lock acquisition via rooms.Snapshot(), drops
// the lock, then serializes and sends to each player (spec.md §168/§176).
func runBroadcastLoop(rooms *session.GameRooms, udp *transport.Transport, cfg config.Config, stop <-chan struct{}, log *logrus.Entry) {
	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			broadcast(rooms, udp, log)
		}
	}
}

func broadcast(rooms *session.GameRooms, udp *transport.Transport, log *logrus.Entry) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("recovered from panic in broadcast")
		}
	}()

	for _, snap := range rooms.Snapshot() {
		udp.Broadcast(snap.Dto, snap.Addrs)
	}
}

func runSweeper(rooms *session.GameRooms, cfg config.Config, stop <-chan struct{}) {
	ticker := time.NewTicker(cfg.RoomSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rooms.SweepExpired(time.Now().UTC())
		}
	}
}
