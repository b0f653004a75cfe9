// Package web serves a small debug HTTP API over the solver, for poking at
// it without the CLI: gorilla/mux router, /api prefix, health check.
package web

import (
	"log"
	"net/http"

	"github.com/ehrlich-b/cubesolver/internal/heuristic"
	"github.com/gorilla/mux"
)

type Server struct {
	router *mux.Router
	h      heuristic.Heuristic
}

func NewServer(h heuristic.Heuristic) *Server {
	s := &Server{router: mux.NewRouter(), h: h}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/show", s.handleShow).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

func (s *Server) Start(addr string) error {
	log.Printf("web: listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
