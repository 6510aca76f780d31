package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/fittrack/internal/summary"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	summaries *summary.Service
	log       *slog.Logger
	apiKey    string
	whois     WhoIser
	router    chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// the calculation endpoints open.
func New(summaries *summary.Service, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		summaries: summaries,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(s.identity)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/workout-types", s.handleWorkoutTypes)
		r.Get("/me", s.handleMe)

		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/trainings", s.handleCreateTraining)
		})
	})
}

// SetTailscale resolves caller identity through the tailnet for every request.
func (s *Server) SetTailscale(wc WhoIser) {
	s.whois = wc
}

// SetMCP mounts a streamable HTTP MCP handler at /mcp behind the API key.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(APIKeyAuth(s.apiKey)).Handle("/mcp", h)
}

func (s *Server) identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.whois == nil {
			DevIdentity(next).ServeHTTP(w, r)
			return
		}
		TailscaleIdentity(s.whois, s.log)(next).ServeHTTP(w, r)
	})
}
