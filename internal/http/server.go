package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/moviepulse/moviepulse/internal/auth"
	"github.com/moviepulse/moviepulse/internal/config"
	"github.com/moviepulse/moviepulse/internal/repository"
	"github.com/moviepulse/moviepulse/internal/store"
)

// Server wires HTTP routing, middleware, and handlers.
type Server struct {
	cfg     config.Config
	store   *store.Store
	repo    *repository.Repository
	tokens  *auth.TokenService
	logger  *log.Logger
	router  chi.Router
	httpSrv *http.Server
}

// New constructs the HTTP server with base middleware and routes.
func New(cfg config.Config, st *store.Store, repo *repository.Repository, tokens *auth.TokenService, logger *log.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(cfg.CORSOrigin))

	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		store:  st,
		repo:   repo,
		tokens: tokens,
		logger: logger,
		router: r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)

	// Reference catalog, public.
	s.router.Get("/oracle-data", s.handleReferenceList("all", s.repo.MovieRatings.ListAll))
	s.router.Get("/man", s.handleReferenceList("man", s.preferenceQuery("man")))
	s.router.Get("/manrating", s.handleReferenceList("man", s.preferenceQuery("man")))
	s.router.Get("/woman", s.handleReferenceList("woman", s.preferenceQuery("woman")))
	s.router.Get("/introduce", s.handleIntroduce)

	// Accounts, public.
	s.router.Post("/register", s.handleRegister)
	s.router.Post("/login", s.handleLogin)

	// Aggregate stats, public.
	s.router.Get("/ratings/{movieID}", s.handleMovieStats)

	// User ratings, behind the auth gate.
	s.router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(s.tokens, s.logger))
		r.Post("/rating", s.handleSubmitRating)
		r.Get("/ratings", s.handleListRatings)
		r.Delete("/ratings/{movieID}", s.handleDeleteRating)
	})
}

// Start boots the HTTP server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.HealthCheck(ctx); err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// corsMiddleware permits cross-origin browser clients. The allowed origin is
// configuration; the default admits any origin.
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
