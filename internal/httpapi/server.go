// Package httpapi is the HTTP surface of llmtools: the JSON API under /api,
// the HTML pages for operators, health endpoints and Prometheus metrics.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"llmtools/internal/hub"
	"llmtools/internal/session"
	"llmtools/pkg/types"
)

// Dashboard is the status dashboard used by the HTTP layer.
type Dashboard interface {
	Snapshot(ctx context.Context) types.DashboardResponse
	Act(ctx context.Context, name, action string) types.ActionResponse
	Logs(ctx context.Context, name string, tail int) types.LogsResponse
	DefaultRefresh() int
	Ready(ctx context.Context) bool
}

// Runner forwards operator commands to the engine CLI.
type Runner interface {
	Run(ctx context.Context, command string) (types.RunResponse, error)
	Presets() []types.RunPreset
	RunPreset(ctx context.Context, name string) (types.RunResponse, error)
}

// Hub browses and downloads from the model hub.
type Hub interface {
	SearchAll(ctx context.Context, req types.HubSearchRequest) ([]types.HubRepo, error)
	Page(kind hub.Kind, all []types.HubRepo, page int) types.HubSearchResponse
	ListFiles(ctx context.Context, kind, repoID string) (types.HubFilesResponse, error)
	Download(ctx context.Context, req types.HubDownloadRequest) (types.HubDownloadResponse, error)
	DownloadDir() string
}

// Tokens estimates prompt token counts.
type Tokens interface {
	Estimate(ctx context.Context, model, text string) (types.TokenResponse, error)
}

// Configs is the model config directory.
type Configs interface {
	List() ([]string, error)
	Create(name string) (string, error)
	Read(name string) (string, error)
	Save(name, content string) error
	Delete(name string) error
}

// Deps wires the components into the mux. A nil component leaves its
// routes unregistered; Sessions defaults to an in-memory store without
// expiry.
type Deps struct {
	Dashboard Dashboard
	Runner    Runner
	Hub       Hub
	Tokens    Tokens
	Configs   Configs
	Sessions  *session.Store
}

type server struct {
	Deps
}

func NewMux(d Deps) http.Handler {
	if d.Sessions == nil {
		d.Sessions = session.NewStore(0)
	}
	s := &server{Deps: d}

	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		// Compression for JSON endpoints; the live socket is registered
		// outside this group because compression breaks hijacking.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Compress(5))
			s.mountAPI(r)
		})
		if s.Dashboard != nil {
			r.Get("/dashboard/live", s.handleLive)
		}
	})

	r.Group(func(r chi.Router) {
		r.Use(d.Sessions.Middleware)
		r.Use(middleware.Compress(5))
		s.mountPages(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if s.Dashboard == nil || s.Dashboard.Ready(r.Context()) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("engine unavailable"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

func (s *server) mountAPI(r chi.Router) {
	if s.Dashboard != nil {
		r.Get("/dashboard", s.apiDashboard)
		r.Get("/containers/{name}/logs", s.apiLogs)
		r.Post("/containers/{name}/{action}", s.apiAction)
	}
	if s.Runner != nil {
		r.Post("/run", s.apiRun)
		r.Get("/run/presets", s.apiPresets)
		r.Post("/run/presets/{preset}", s.apiRunPreset)
	}
	if s.Hub != nil {
		r.Get("/hub/{kind}/search", s.apiHubSearch)
		r.Get("/hub/{kind}/files", s.apiHubFiles)
		r.Post("/hub/{kind}/download", s.apiHubDownload)
	}
	if s.Tokens != nil {
		r.Post("/tokens", s.apiTokens)
	}
	if s.Configs != nil {
		r.Get("/configs", s.apiConfigList)
		r.Post("/configs", s.apiConfigCreate)
		r.Get("/configs/reference", s.apiConfigReference)
		r.Post("/configs/lint", s.apiLint)
		r.Get("/configs/{name}", s.apiConfigRead)
		r.Put("/configs/{name}", s.apiConfigSave)
		r.Delete("/configs/{name}", s.apiConfigDelete)
		r.Post("/configs/{name}/lint", s.apiConfigLintFile)
	}
}
