// Package server exposes the parser over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/cbegin/stan-go/internal/config"
	"github.com/cbegin/stan-go/internal/lilypond"
	"github.com/cbegin/stan-go/internal/notation"
)

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 1 << 20

const shutdownTimeout = 5 * time.Second

// Parser is the subset of *lilypond.Parser the server needs.
type Parser interface {
	Parse(input string) (notation.Column, error)
	Config() lilypond.ParserConfig
}

type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

type Server struct {
	cfg     config.ServerConfig
	parser  Parser
	logger  *log.Logger
	handler http.Handler
}

func New(cfg config.ServerConfig, p Parser, opts ...Option) *Server {
	s := &Server{cfg: cfg, parser: p, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", s.handleParse).Methods("POST")
	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	s.handler = requestID(s.recoverer(c.Handler(router)))
	return s
}

func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
