package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 2 << 20

// SkillExtractor turns resume text into a skill list.
type SkillExtractor interface {
	Extract(ctx context.Context, resumeText string) ([]string, error)
}

// JobSearcher finds jobs matching a skill list in a country.
type JobSearcher interface {
	Search(ctx context.Context, skills []string, country string) ([]types.JobSummary, error)
}

// Deps holds the upstream clients. A nil field means the matching API key is
// not configured.
type Deps struct {
	Extractor SkillExtractor
	Searcher  JobSearcher
}

// Server represents the HTTP server
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	extractor SkillExtractor
	searcher  JobSearcher
	router    chi.Router
	static    http.Handler
}

// New creates a new server instance
func New(cfg *config.Config, logger *zap.Logger, deps Deps) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		extractor: deps.Extractor,
		searcher:  deps.Searcher,
		static:    http.FileServer(http.Dir(cfg.Server.StaticDir)),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(s.logger))
	r.Use(middleware.Recover(s.logger, func(w http.ResponseWriter, message string) {
		WriteError(w, http.StatusInternalServerError, message)
	}))
	r.Use(middleware.CORS)
	r.Use(middleware.BodyLimit(MaxBodyBytes))
	r.Use(chimiddleware.GetHead)

	r.Get("/", s.handleIndex)
	r.Get("/index.html", s.handleIndex)
	r.Get("/api/health", s.handleHealth)

	r.Post("/api/extract-skills", s.handleExtractSkills)
	r.Post("/api/search-jobs", s.handleSearchJobs)

	r.Get("/*", s.handleStatic)
	r.NotFound(s.handleFallback)
	r.MethodNotAllowed(s.handleFallback)

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run binds the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. The listener is always closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     zap.NewStdLog(s.logger),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeoutDuration())
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			_ = httpServer.Close()
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, types.HealthResponse{
		OK:          true,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: s.cfg.Environment,
	})
}

// handleFallback serves static files for GET/HEAD and answers every other
// unrouted request with a JSON 404.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		s.handleStatic(w, r)
		return
	}
	WriteError(w, http.StatusNotFound, "API endpoint not found")
}
