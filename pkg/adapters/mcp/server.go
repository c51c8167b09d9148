package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/furrow"
	"github.com/aretw0/furrow/internal/dto"
	"github.com/aretw0/furrow/pkg/config"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/aretw0/furrow/pkg/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultScenarioURI is the resource holding the reference scenario.
const DefaultScenarioURI = "furrow://scenario/default"

const scenarioArgHelp = "Scenario document in YAML or JSON (optional, defaults to " + DefaultScenarioURI + ")"

// Server exposes the planning operations as MCP tools.
type Server struct {
	mcpServer *server.MCPServer
	logger    *slog.Logger
	hooks     domain.SearchHooks
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger used by tool handlers.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSearchHooks attaches observability hooks to every plan_irrigation call.
func WithSearchHooks(hooks domain.SearchHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("furrow-mcp", strings.TrimSpace(furrow.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: evaluate_state
	evaluateTool := mcp.NewTool("evaluate_state",
		mcp.WithDescription("Evaluate the initial farm state of a scenario: heuristic, cost, goal test and the valid actions."),
		mcp.WithString("scenario", mcp.Description(scenarioArgHelp)),
		mcp.WithOutputSchema[dto.Evaluation](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: expand_state
	expandTool := mcp.NewTool("expand_state",
		mcp.WithDescription("Expand the initial state of a scenario into one child per valid action."),
		mcp.WithString("scenario", mcp.Description(scenarioArgHelp)),
		mcp.WithOutputSchema[dto.ExpandResponse](),
	)
	s.mcpServer.AddTool(expandTool, mcp.NewStructuredToolHandler(s.handleExpand))

	// TOOL: plan_irrigation
	planTool := mcp.NewTool("plan_irrigation",
		mcp.WithDescription("Search for the cheapest sequence of irrigation and fertilization actions that brings every variable into its optimal range."),
		mcp.WithString("scenario", mcp.Description(scenarioArgHelp)),
		mcp.WithNumber("max_expansions", mcp.Description("Upper bound on expanded nodes (optional)")),
		mcp.WithOutputSchema[dto.PlanResponse](),
	)
	s.mcpServer.AddTool(planTool, mcp.NewStructuredToolHandler(s.handlePlan))
}

// Handler methods for structured tools

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (dto.Evaluation, error) {
	_, problem, err := s.problemFromArgs(args)
	if err != nil {
		return dto.Evaluation{}, err
	}
	return dto.NewEvaluation(problem), nil
}

func (s *Server) handleExpand(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (dto.ExpandResponse, error) {
	_, problem, err := s.problemFromArgs(args)
	if err != nil {
		return dto.ExpandResponse{}, err
	}
	return dto.ExpandResponse{Children: dto.NewChildren(problem, problem.ExpandNode(problem.Root()))}, nil
}

func (s *Server) handlePlan(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (dto.PlanResponse, error) {
	sc, problem, err := s.problemFromArgs(args)
	if err != nil {
		return dto.PlanResponse{}, err
	}

	opts := append(sc.SearchOptions(), search.WithHooks(s.hooks), search.WithLogger(s.logger))
	if n, ok := args["max_expansions"].(float64); ok && n > 0 {
		opts = append(opts, search.WithMaxExpansions(int(n)))
	}

	res, err := problem.Plan(ctx, opts...)
	if err != nil {
		s.logger.Warn("MCP plan_irrigation: search failed", "err", err)
		return dto.PlanResponse{}, fmt.Errorf("plan failed: %w", err)
	}
	return dto.NewPlanResponse(res), nil
}

func (s *Server) problemFromArgs(args map[string]interface{}) (*config.Scenario, *furrow.Problem, error) {
	doc, _ := args["scenario"].(string)

	var sc *config.Scenario
	if strings.TrimSpace(doc) == "" {
		sc = config.Default()
	} else {
		parsed, err := config.ParseString(doc)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid scenario: %w", err)
		}
		sc = parsed
	}

	problem, err := sc.Build(furrow.WithLogger(s.logger))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, problem, nil
}

func (s *Server) registerResources() {
	// EXPOSE: furrow://scenario/default
	s.mcpServer.AddResource(mcp.NewResource(DefaultScenarioURI, "Reference scenario",
		mcp.WithResourceDescription("The demo scenario used when a tool call omits one."),
		mcp.WithMIMEType("application/yaml"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := config.Default().YAML()
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      DefaultScenarioURI,
				MIMEType: "application/yaml",
				Text:     string(data),
			},
		}, nil
	})
}
