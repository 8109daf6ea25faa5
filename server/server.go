// Package server implements the control-plane API of spec.md §4.6: seven
// JSON request/response endpoints backed by the session manager.
// Generalizes the teacher's server/handlers.go (HTTP handler factories
// returning func(w, r), wrapped in panic recovery) from a single /rooms
// GET into the full REST surface, routed with gorilla/mux in place of a
// bare http.HandleFunc call.
package server

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/lguibr/pongo/session"
	"github.com/sirupsen/logrus"
)

// Server wires the session manager to an HTTP router.
type Server struct {
	rooms *session.GameRooms
	log   *logrus.Entry
}

// New creates a control-plane Server.
func New(rooms *session.GameRooms, log *logrus.Entry) *Server {
	return &Server{rooms: rooms, log: log}
}

// Router builds the mux.Router for the control-plane endpoints in
// spec.md §4.6's table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverMiddleware)
	r.HandleFunc("/game", s.handleCreateGame).Methods(http.MethodPost)
	r.HandleFunc("/game", s.handleListGames).Methods(http.MethodGet)
	r.HandleFunc("/game/{id}", s.handleGetGame).Methods(http.MethodGet)
	r.HandleFunc("/game/{id}/join", s.handleJoin).Methods(http.MethodPost)
	r.HandleFunc("/game/{id}/play_again", s.handlePlayAgain).Methods(http.MethodPost)
	r.HandleFunc("/game/{id}/add_bot", s.handleAddBot).Methods(http.MethodPost)
	r.HandleFunc("/game/{id}/remove_bot", s.handleRemoveBot).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return r
}

// recoverMiddleware mirrors the teacher's per-handler panic recovery
// (server/handlers.go) as a single router-wide middleware.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.WithField("stack", string(debug.Stack())).Errorf("panic recovered: %v", rec)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
