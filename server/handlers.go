package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lguibr/pongo/game"
)

// joinRequest is the shared body shape for join and play_again.
type joinRequest struct {
	Name string `json:"username"`
}

// createGameResponse wraps a freshly created game's id alongside its DTO,
// matching the teacher's habit of including both a short id field and the
// full resource in creation responses.
type createGameResponse struct {
	ID   uuid.UUID    `json:"id"`
	Game game.GameDto `json:"game"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	g := s.rooms.CreateGame()
	writeJSON(w, http.StatusOK, createGameResponse{ID: g.ID, Game: g.ToDto()})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := s.rooms.List()
	dtos := make([]game.GameDto, 0, len(games))
	for _, g := range games {
		dtos = append(dtos, g.ToDto())
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseGameID(w, r)
	if !ok {
		return
	}
	g, err := s.rooms.Find(id)
	if !writeErrIfAny(w, s.log, err) {
		return
	}
	writeJSON(w, http.StatusOK, g.ToDto())
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseGameID(w, r)
	if !ok {
		return
	}
	var body joinRequest
	_ = json.NewDecoder(r.Body).Decode(&body)
	p, err := s.rooms.Join(id, body.Name)
	if !writeErrIfAny(w, s.log, err) {
		return
	}
	writeJSON(w, http.StatusOK, p.ToDto())
}

func (s *Server) handlePlayAgain(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseGameID(w, r)
	if !ok {
		return
	}
	var body joinRequest
	_ = json.NewDecoder(r.Body).Decode(&body)
	p, err := s.rooms.PlayAgain(id, body.Name)
	if !writeErrIfAny(w, s.log, err) {
		return
	}
	writeJSON(w, http.StatusOK, p.ToDto())
}

func (s *Server) handleAddBot(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseGameID(w, r)
	if !ok {
		return
	}
	p, err := s.rooms.AddBot(id)
	if !writeErrIfAny(w, s.log, err) {
		return
	}
	writeJSON(w, http.StatusOK, p.ToDto())
}

func (s *Server) handleRemoveBot(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseGameID(w, r)
	if !ok {
		return
	}
	if err := s.rooms.RemoveBot(id); !writeErrIfAny(w, s.log, err) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) parseGameID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed game id")
		return uuid.UUID{}, false
	}
	return id, true
}

// writeErrIfAny maps a session/world-model sentinel error to its HTTP
// status per spec.md §4.6's table, returning true if there was no error.
func writeErrIfAny(w http.ResponseWriter, log interface{ Warn(args ...interface{}) }, err error) bool {
	if err == nil {
		return true
	}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGameFull),
		errors.Is(err, game.ErrNoBot),
		errors.Is(err, game.ErrInvalidStateTransition),
		errors.Is(err, game.ErrPlayersNotReady):
		status = http.StatusBadRequest
	default:
		log.Warn(err)
	}
	writeError(w, status, err.Error())
	return false
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
