package server

import (
	"fmt"
	"net/http"

	"github.com/jdelaney/go-task-server/internal/config"
	"github.com/jdelaney/go-task-server/tasks"
	"github.com/jdelaney/go-task-server/token"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config
	codec  *token.Codec
	tasks  tasks.Repo
}

func New(config config.Config, taskRepo tasks.Repo) (*Server, error) {
	codec, err := token.NewCodec(config)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create token codec: %w", err)
	}

	s := &Server{
		mux:    http.NewServeMux(),
		config: config,
		codec:  codec,
		tasks:  taskRepo,
	}
	s.env = config.GetEnv()

	s.initRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Preflights are answered before route matching: the mux only knows
	// method-specific patterns and would reject OPTIONS with 405 before any
	// middleware runs.
	if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
		s.handlePreflight(w, r)
		return
	}
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}
