package demo

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/collate/internal/config"
	"github.com/vango-dev/collate/internal/errors"
	"github.com/vango-dev/collate/pkg/middleware"
)

// Server serves the demo provider stack over HTTP.
//
// Routes:
//
//	GET /         full HTML document
//	GET /render   the stack output without the document shell
//	GET /layers   registered layers as JSON
//	GET /healthz  liveness probe
//	GET /metrics  Prometheus exposition, when metrics are enabled
//
// Query parameters a, b, c, theme, locale and user override the configured
// props; layers takes a comma separated layer list.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	router   chi.Router
	metrics  *middleware.Metrics
	registry *prometheus.Registry
	tracer   trace.Tracer
}

// NewServer builds the router for cfg.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		logger: logger.With("component", "server"),
		router: chi.NewRouter(),
	}

	s.router.Use(chimw.RequestID)
	s.router.Use(s.logRequests)
	s.router.Use(chimw.Recoverer)

	if cfg.Tracing.Enabled {
		s.tracer = otel.Tracer(cfg.Tracing.TracerName)
		s.router.Use(middleware.Tracing(
			middleware.WithTracer(s.tracer),
			middleware.WithRequestFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != cfg.Metrics.Path
			}),
		))
	}

	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.metrics = middleware.NewMetrics(
			middleware.WithRegistry(s.registry),
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)
		s.router.Use(s.metrics.Handler)
		s.router.Method(http.MethodGet, cfg.Metrics.Path,
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	s.router.Get("/", s.handleRender(false))
	s.router.Get("/render", s.handleRender(true))
	s.router.Get("/layers", s.handleLayers)
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry returns the metrics registry, or nil when metrics are disabled.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Server) handleRender(fragment bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		values := maps.Clone(s.cfg.Props)
		if values == nil {
			values = make(map[string]string)
		}
		for _, key := range []string{"a", "b", "c", "theme", "locale", "user"} {
			if v := query.Get(key); v != "" {
				values[key] = v
			}
		}
		names := s.cfg.Layers
		if q := query.Get("layers"); q != "" {
			names = SplitNames(q)
		}

		var buf bytes.Buffer
		stats, err := RenderHTML(r.Context(), &buf, Options{
			Layers:   names,
			Props:    PropsFromMap(values),
			Fragment: fragment,
			Title:    s.cfg.Render.Title,
			Lang:     s.cfg.Render.Lang,
			Pretty:   s.cfg.Render.Pretty,
			Logger:   s.logger,
			Tracer:   s.tracer,
		})
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		if s.metrics != nil {
			s.metrics.ObserveRender(stats)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	e := errors.FromError(err, errors.CodeRenderFailed)
	status := http.StatusInternalServerError
	if e.Code == errors.CodeUnknownLayer {
		status = http.StatusBadRequest
	} else if s.metrics != nil {
		s.metrics.RecordRenderError(chi.RouteContext(r.Context()).RoutePattern(), err)
	}

	s.logger.Error("render failed",
		"path", r.URL.Path,
		"code", e.Code,
		"error", err,
		"request_id", chimw.GetReqID(r.Context()),
	)
	http.Error(w, e.Error(), status)
}

type layerInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleLayers(w http.ResponseWriter, r *http.Request) {
	infos := make([]layerInfo, 0, len(registry))
	for _, l := range Layers() {
		infos = append(infos, layerInfo{Name: l.Name, Description: l.Description})
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		s.logger.Error("encode layers", "error", err)
	}
}

// logRequests logs one line per request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
