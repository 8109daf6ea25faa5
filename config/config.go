// Package config holds every tunable constant of the quadropong server:
// court geometry, physics constants, and timing. Mirrors the
// Config/DefaultConfig split the original game server used, generalized
// from a brick-breaker grid to a four-sided scoring court.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configurable server parameters.
type Config struct {
	// Network
	HTTPPort string // control-plane port, e.g. "3000"
	UDPPort  string // data-plane port, e.g. "34254"

	// Timing
	TickRate           time.Duration // simulation step period (60Hz default)
	PingTimeout        time.Duration // liveness timeout for a player
	GoalTimeout        time.Duration // post-goal freeze duration
	GameDeleteTimeout  time.Duration // retention of finished games
	RoomSweepInterval  time.Duration // cadence of the stale-game cleaner task

	// Court geometry
	CourtSize float32 // court is CourtSize x CourtSize

	// Ball
	BallRadius      float32
	BallSpawnSpeed  float32 // initial speed leaving spawn
	BallSpeed       float32 // speed after a paddle collision
	MaxAngle        float64 // max deflection angle (radians) off a paddle

	// Paddle
	PaddleDelta float32 // movement step per input
	PaddleWidth float32 // paddle length along its wall
	AISlowdown  float32 // factor applied to AI paddle movement

	// Collision short-circuit
	PaddlePadding    float32
	SafeZoneMargin   float32

	// Scoring
	MaxScore uint32

	// Datagram
	MaxPacketBytes int
}

const (
	defaultHTTPPort = "3000"
	defaultUDPPort  = "34254"
)

// Default returns the server configuration matching spec.md's constants.
func Default() Config {
	return Config{
		HTTPPort: defaultHTTPPort,
		UDPPort:  defaultUDPPort,

		TickRate:          time.Second / 60,
		PingTimeout:       2000 * time.Millisecond,
		GoalTimeout:       750 * time.Millisecond,
		GameDeleteTimeout: 60 * time.Second,
		RoomSweepInterval: 60 * time.Second,

		CourtSize: 10,

		BallRadius:     0.125,
		BallSpawnSpeed: 0.125,
		BallSpeed:      0.15,
		MaxAngle:       3.14159265358979 / 3,

		PaddleDelta: 0.3,
		PaddleWidth: 1.0,
		AISlowdown:  0.2,

		PaddlePadding:  0.25,
		SafeZoneMargin: 1.0,

		MaxScore: 10,

		MaxPacketBytes: 1024,
	}
}

// Fast returns a configuration tuned for quick test convergence: a much
// shorter tick period and timeouts, same court/physics constants so
// collision math stays identical to Default.
func Fast() Config {
	cfg := Default()
	cfg.TickRate = time.Millisecond
	cfg.PingTimeout = 50 * time.Millisecond
	cfg.GoalTimeout = 10 * time.Millisecond
	cfg.GameDeleteTimeout = 200 * time.Millisecond
	cfg.RoomSweepInterval = 20 * time.Millisecond
	return cfg
}

// FromEnv builds a Config from Default, overriding the control and
// datagram ports from PORT / UDP_PORT if set — the only configuration
// surface spec.md §1 leaves in scope.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			cfg.HTTPPort = v
		}
	}
	if v := os.Getenv("UDP_PORT"); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			cfg.UDPPort = v
		}
	}
	return cfg
}
