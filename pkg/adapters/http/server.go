package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aretw0/prism/internal/logging"
	"github.com/aretw0/prism/pkg/gradient"
	"github.com/aretw0/prism/pkg/observability"
	"github.com/aretw0/prism/pkg/ports"
	"github.com/aretw0/prism/pkg/preset"
	"github.com/aretw0/prism/pkg/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodyBytes bounds the size of a request body.
const MaxBodyBytes = 1 << 20

// MaxLength bounds the gradient length and the text length of a gradient request, in cells.
const MaxLength = 4096

// Server renders styled text over HTTP.
type Server struct {
	presets  *preset.Registry
	cache    ports.RenderCache
	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCache enables caching of rendered output.
func WithCache(c ports.RenderCache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// WithMetrics records render and request metrics in m and serves g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a server that resolves preset names through presets.
func NewServer(presets *preset.Registry, opts ...Option) *Server {
	s := &Server{
		presets: presets,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.presets == nil {
		s.presets = preset.NewRegistry()
	}
	return s
}

// NewHandler creates the HTTP handler for the render API.
func NewHandler(presets *preset.Registry, opts ...Option) http.Handler {
	return NewServer(presets, opts...).Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.Health)
	r.Get("/v1/presets", s.ListPresets)
	r.Post("/v1/gradient", s.Gradient)
	r.Post("/v1/style", s.Style)
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, strconv.Itoa(status), time.Since(start))
		}
		s.logger.Debug("request served", "method", r.Method, "route", route, "status", status, "duration", time.Since(start))
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPresets handles GET /v1/presets.
func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, PresetsResponse{
		Styles:    s.presets.StyleNames(),
		Gradients: s.presets.GradientNames(),
	})
}

// Gradient handles POST /v1/gradient.
func (s *Server) Gradient(w http.ResponseWriter, r *http.Request) {
	var body GradientRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.serveCached(w, r, "gradient", body, func() (string, error) {
		return s.renderGradient(body)
	})
}

// Style handles POST /v1/style.
func (s *Server) Style(w http.ResponseWriter, r *http.Request) {
	var body StyleRequest
	if !s.decode(w, r, &body) {
		return
	}
	s.serveCached(w, r, "style", body, func() (string, error) {
		return s.renderStyle(body)
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.logger.Warn("invalid request body", "path", r.URL.Path, "error", err)
		writeError(w, s.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, kind string, body any, build func() (string, error)) {
	key, err := cacheKey(kind, body)
	if err != nil {
		writeError(w, s.logger, http.StatusInternalServerError, "failed to hash request")
		return
	}

	if s.cache != nil {
		out, err := s.cache.Get(r.Context(), key)
		switch {
		case err == nil:
			writeJSON(w, s.logger, http.StatusOK, RenderResponse{Output: out, Cached: true})
			return
		case !errors.Is(err, ports.ErrCacheMiss):
			s.logger.Error("cache lookup failed", "key", key, "error", err)
		}
	}

	out, err := build()
	if err != nil {
		status := statusFor(err)
		s.logger.Warn("render rejected", "kind", kind, "status", status, "error", err)
		writeError(w, s.logger, status, err.Error())
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(r.Context(), key, out); err != nil {
			s.logger.Error("cache store failed", "key", key, "error", err)
		}
	}
	writeJSON(w, s.logger, http.StatusOK, RenderResponse{Output: out})
}

func (s *Server) renderOptions(reset *bool, coalesce bool) []render.Option {
	opts := []render.Option{render.WithCoalesce(coalesce)}
	if reset != nil {
		opts = append(opts, render.WithReset(*reset))
	}
	if s.metrics != nil {
		opts = append(opts, render.WithHooks(s.metrics.Hooks()))
	}
	return opts
}

func cacheKey(kind string, body any) (string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return kind + ":" + hex.EncodeToString(sum[:]), nil
}

func statusFor(err error) int {
	var pe *preset.ParseError
	switch {
	case errors.Is(err, preset.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &pe),
		errors.Is(err, gradient.ErrInvalidGradientInput),
		errors.Is(err, render.ErrUnequalGradientLengths),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	writeJSON(w, logger, status, ErrorResponse{Error: msg})
}
