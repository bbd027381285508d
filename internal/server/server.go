package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether a backing store is reachable. *storage.DB
// implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Params holds the dependencies of a Server. Redis, Limiter, Gatherer and
// MCP are optional.
type Params struct {
	Programs ProgramService
	Catalog  CatalogService
	Training TrainingService
	Accounts AccountService

	DB              Pinger
	Redis           *redis.Client
	Limiter         RequestRateLimiter
	WritesPerMinute int

	Metrics  *telemetry.Manager
	Gatherer prometheus.Gatherer
	MCP      http.Handler

	APIKey   string
	DevLogin string
	Log      *slog.Logger
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	programs ProgramService
	catalog  CatalogService
	training TrainingService
	accounts AccountService

	db        Pinger
	redis     *redis.Client
	limiter   RequestRateLimiter
	perMinute int

	metrics  *telemetry.Manager
	gatherer prometheus.Gatherer
	mcp      http.Handler

	apiKey   string
	devLogin string
	ts       WhoIsClient
	log      *slog.Logger
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(p Params) *Server {
	s := &Server{
		programs:  p.Programs,
		catalog:   p.Catalog,
		training:  p.Training,
		accounts:  p.Accounts,
		db:        p.DB,
		redis:     p.Redis,
		limiter:   p.Limiter,
		perMinute: p.WritesPerMinute,
		metrics:   p.Metrics,
		gatherer:  p.Gatherer,
		mcp:       p.MCP,
		apiKey:    p.APIKey,
		devLogin:  p.DevLogin,
		log:       p.Log,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetTailscale switches identity resolution from the dev login to tailnet
// WhoIs lookups.
func (s *Server) SetTailscale(lc WhoIsClient) {
	s.ts = lc
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(PanicRecovery(s.metrics, s.log))
	s.router.Use(RequestMetrics(s.metrics))
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)
	if s.gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	if s.mcp != nil {
		s.router.Route("/mcp", func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Use(s.identify)
			r.Use(ResolveActor(s.accounts, s.log))
			r.Handle("/", s.mcp)
			r.Handle("/*", s.mcp)
		})
	}

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.identify)
		r.Use(ResolveActor(s.accounts, s.log))
		r.Use(RateLimitWrites(s.limiter, s.perMinute, s.metrics))

		r.Get("/me", s.handleMe)
		r.Patch("/me", s.handleUpdateMe)
		r.Get("/profiles", s.handleListProfiles)
		r.Put("/profiles/{id}/role", s.handleSetRole)

		r.Get("/trainer-links", s.handleListLinks)
		r.Post("/trainer-links", s.handleLink)
		r.Delete("/trainer-links", s.handleUnlink)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Put("/exercises/{id}", s.handleUpdateExercise)
		r.Delete("/exercises/{id}", s.handleDeleteExercise)
		r.Get("/machines", s.handleListMachines)
		r.Post("/machines", s.handleCreateMachine)
		r.Delete("/machines/{id}", s.handleDeleteMachine)

		r.Get("/programs", s.handleListPrograms)
		r.Post("/programs", s.handleCreateProgram)
		r.Route("/programs/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetProgram)
			r.Put("/", s.handleUpdateProgram)
			r.Delete("/", s.handleDeleteProgram)
			r.Post("/clone", s.handleCloneProgram)
			r.Post("/repair", s.handleRepairProgram)
			r.Get("/sheet", s.handleProgramSheet)
			r.Post("/days", s.handleAddDay)
			r.Post("/sessions", s.handleStartSession)
		})

		r.Patch("/days/{id}", s.handleRenameDay)
		r.Delete("/days/{id}", s.handleDeleteDay)
		r.Post("/days/{id}/move", s.handleMoveDay)
		r.Post("/days/{id}/exercises", s.handleAddProgramExercise)

		r.Put("/program-exercises/{id}", s.handleUpdateProgramExercise)
		r.Delete("/program-exercises/{id}", s.handleDeleteProgramExercise)
		r.Post("/program-exercises/{id}/move", s.handleMoveProgramExercise)

		r.Get("/sessions", s.handleListSessions)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Post("/sessions/{id}/sets", s.handleLogSet)
		r.Post("/sessions/{id}/end", s.handleEndSession)

		r.Get("/progress", s.handleProgress)
		r.Get("/progress/exercises", s.handleProgressExercises)
		r.Get("/last-entries", s.handleLastEntries)
	})
}

// identify picks the identity source per request so SetTailscale may be
// called after New.
func (s *Server) identify(next http.Handler) http.Handler {
	dev := DevIdentity(s.devLogin)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.ts == nil {
			dev.ServeHTTP(w, r)
			return
		}
		TailscaleIdentity(s.ts, s.log)(next).ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": "database: " + err.Error()})
			return
		}
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": "redis: " + err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
