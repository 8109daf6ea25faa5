package game

import "errors"

// Sentinel errors returned by world-model operations. The session manager
// and control-plane handlers map these onto wire-level statuses.
var (
	ErrGameFull               = errors.New("game full")
	ErrGameNotFound           = errors.New("game not found")
	ErrPlayerNotFound         = errors.New("player not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrPlayersNotReady        = errors.New("players not ready")
	ErrNoBot                  = errors.New("no bot in game")
)
