// Package api serves saved mazes over HTTP as JSON and lets browsers walk
// them over a WebSocket.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/gridkit/internal/config"
	"github.com/vovakirdan/gridkit/internal/storage"
)

// Options configures the API server.
type Options struct {
	Address   string
	Algorithm string // default generator for POST /mazes
	MaxCells  int    // largest maze POST /mazes will generate
}

// OptionsFrom builds server options from the loaded configuration.
func OptionsFrom(cfg config.Config) Options {
	return Options{
		Address:   cfg.HTTP.Address,
		Algorithm: cfg.Maze.Algorithm,
		MaxCells:  cfg.HTTP.MaxCells,
	}
}

// Server is the HTTP API server.
type Server struct {
	opts   Options
	store  *storage.Store
	logger *log.Logger
	router *mux.Router
	server *http.Server
}

// NewServer creates a server backed by store. The store stays owned by the
// caller.
func NewServer(store *storage.Store, opts Options, logger *log.Logger) *Server {
	s := &Server{
		opts:   opts,
		store:  store,
		logger: logger,
		router: mux.NewRouter(),
	}

	s.router.HandleFunc("/generators", s.handleGenerators).Methods(http.MethodGet)
	s.router.HandleFunc("/cells/{index:[0-9]+}", s.handleCell).Methods(http.MethodGet)
	s.router.HandleFunc("/mazes", s.handleListMazes).Methods(http.MethodGet)
	s.router.HandleFunc("/mazes", s.handleCreateMaze).Methods(http.MethodPost)
	s.router.HandleFunc("/mazes/{id:[0-9]+}", s.handleGetMaze).Methods(http.MethodGet)
	s.router.HandleFunc("/mazes/{id:[0-9]+}", s.handleDeleteMaze).Methods(http.MethodDelete)
	s.router.HandleFunc("/mazes/{id:[0-9]+}/walk", s.handleWalk).Methods(http.MethodGet)
	s.router.PathPrefix("/").Handler(http.NotFoundHandler())
	s.router.Use(s.loggingMiddleware)

	s.server = &http.Server{
		Addr:              opts.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
	return s
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.opts.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"took", time.Since(start),
		)
	})
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	json.NewEncoder(w).Encode(data) //nolint:errcheck // client went away
}

func errorResponse(w http.ResponseWriter, status int, msg string) {
	jsonResponse(w, status, map[string]string{"error": msg})
}

// pathID returns the {id} route variable.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

// queryInt reads an integer query parameter, returning fallback when absent.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
