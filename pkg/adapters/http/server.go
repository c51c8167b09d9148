package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/internal/dto"
	"github.com/aretw0/furrow/pkg/config"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/observability"
	"github.com/aretw0/furrow/pkg/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// maxBodyBytes bounds the size of a scenario document.
const maxBodyBytes = 1 << 20

// Server implements the generated ServerInterface. Every request carries its own
// scenario, so the server holds no per-request state.
type Server struct {
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithRegistry exposes search metrics through reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.Registry = reg
	}
}

// NewServer creates a server with its metrics registered.
func NewServer(opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if s.Registry == nil {
		s.Registry = prometheus.NewRegistry()
	}
	s.Metrics = observability.NewMetrics(s.Registry)
	return s
}

// NewHandler creates the HTTP handler for a new Server.
func NewHandler(opts ...Option) http.Handler {
	return NewServer(opts...).Routes()
}

// Routes builds the chi router. The API routes come from the OpenAPI document;
// metrics and documentation are mounted beside them.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.Logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	handler := HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.Logger.Debug("invalid parameter", "path", r.URL.Path, "err", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		},
	})
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Furrow API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// Evaluate handles POST /v1/evaluate: the core operations on the initial state.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	_, problem, ok := s.decodeScenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.NewEvaluation(problem))
}

// Expand handles POST /v1/expand: the children of the root node.
func (s *Server) Expand(w http.ResponseWriter, r *http.Request) {
	_, problem, ok := s.decodeScenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ExpandResponse{Children: dto.NewChildren(problem, problem.ExpandNode(problem.Root()))})
}

// Plan handles POST /v1/plan.
func (s *Server) Plan(w http.ResponseWriter, r *http.Request, params PlanParams) {
	limits, err := searchLimits(params.MaxExpansions, params.MaxDepth)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sc, problem, ok := s.decodeScenario(w, r)
	if !ok {
		return
	}

	opts := append(sc.SearchOptions(), limits...)
	opts = append(opts, search.WithHooks(s.Metrics.Hooks()), search.WithLogger(s.Logger))
	res, err := problem.Plan(r.Context(), opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPlanResponse(res))
}

// PlanStream handles POST /v1/plan/stream (SSE). Each expansion is sent as an
// "expand" event, followed by a single "result" or "error" event.
func (s *Server) PlanStream(w http.ResponseWriter, r *http.Request, params PlanStreamParams) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("PlanStream: Streaming not supported")
		return
	}
	limits, err := searchLimits(params.MaxExpansions, params.MaxDepth)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sc, problem, ok := s.decodeScenario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(event string, payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			s.Logger.Error("PlanStream: encode failed", "event", event, "err", err)
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	stream := domain.SearchHooks{
		OnExpand: func(_ context.Context, e *domain.ExpandEvent) {
			send("expand", e)
		},
	}
	opts := append(sc.SearchOptions(), limits...)
	opts = append(opts,
		search.WithHooks(s.Metrics.Hooks().Combine(stream)),
		search.WithLogger(s.Logger),
	)

	res, err := problem.Plan(r.Context(), opts...)
	if err != nil {
		send("error", ErrorResponse{Error: err.Error()})
		return
	}
	send("result", dto.NewPlanResponse(res))
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := Info{
		App:        "furrow-http",
		Version:    strings.TrimSpace(furrow.Version),
		ApiVersion: "unknown",
	}
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		info.ApiVersion = swagger.Info.Version
	}
	writeJSON(w, http.StatusOK, info)
}

// searchLimits turns the optional query overrides into search options.
func searchLimits(maxExpansions, maxDepth *int) ([]search.Option, error) {
	var opts []search.Option
	var issues []domain.Issue
	if maxExpansions != nil {
		if *maxExpansions < 1 {
			issues = append(issues, domain.Issue{Field: "max_expansions", Reason: "must be >= 1"})
		} else {
			opts = append(opts, search.WithMaxExpansions(*maxExpansions))
		}
	}
	if maxDepth != nil {
		if *maxDepth < 1 {
			issues = append(issues, domain.Issue{Field: "max_depth", Reason: "must be >= 1"})
		} else {
			opts = append(opts, search.WithMaxDepth(*maxDepth))
		}
	}
	if err := domain.NewConfigurationError(issues...); err != nil {
		return nil, err
	}
	return opts, nil
}

// decodeScenario reads the request body as a scenario and builds the problem.
// On failure it writes the error response and returns ok == false.
func (s *Server) decodeScenario(w http.ResponseWriter, r *http.Request) (*config.Scenario, *furrow.Problem, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Invalid request body", "path", r.URL.Path, "err", err)
		return nil, nil, false
	}

	format := config.FormatJSON
	if ct := r.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		format = config.FormatYAML
	}

	sc, err := config.Parse(body, format)
	if err != nil {
		s.writeError(w, err)
		return nil, nil, false
	}
	problem, err := sc.Build(furrow.WithLogger(s.Logger))
	if err != nil {
		s.writeError(w, err)
		return nil, nil, false
	}
	return sc, problem, true
}

// writeError maps domain errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, domain.ErrConfiguration):
		status = http.StatusBadRequest
		for _, issue := range domain.ConfigurationIssues(err) {
			resp.Issues = append(resp.Issues, dto.IssueResponse{Field: issue.Field, Reason: issue.Reason})
		}
	case errors.Is(err, config.ErrSyntax):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNoPlan), errors.Is(err, domain.ErrExpansionLimit):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "err", err)
	} else {
		s.Logger.Debug("request rejected", "status", status, "err", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}
