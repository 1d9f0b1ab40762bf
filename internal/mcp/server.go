package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/analysis"
	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/transcript"
)

const (
	serverName    = "InterviewEngineServer"
	serverVersion = "1.0.0"
)

// PlannerFactory builds a planner for a single plan request. Each call
// gets a fresh planner so time-based sampling seeds differ between plans.
type PlannerFactory func() *interview.Planner

// TranscriptResourceHandler serves exported transcripts as MCP resources.
type TranscriptResourceHandler struct {
	store  *transcript.Store
	logger *slog.Logger
}

// ReadResource processes transcript:// resource requests.
func (h *TranscriptResourceHandler) ReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := req.Params.URI

	content, err := h.store.Read(uri)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read transcript resource",
			"error", err,
			"uri", uri,
		)
		return nil, mcp.ResourceNotFoundError(uri)
	}

	h.logger.DebugContext(ctx, "read transcript resource",
		"uri", uri,
		"size", len(content),
	)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     string(content),
		}},
	}, nil
}

// Server encapsulates the MCP server with all its dependencies
type Server struct {
	mcpServer *mcp.Server
	registry  *Registry
	store     *transcript.Store
	bank      *interview.QuestionBank
	advisor   *analysis.Advisor
	planner   PlannerFactory
	logger    *slog.Logger
	config    Config
}

// NewServer creates a new MCP server with the given configuration
func NewServer(cfg Config, logger *slog.Logger) (*Server, error) {
	ttl, err := time.ParseDuration(cfg.TranscriptTTL)
	if err != nil {
		logger.ErrorContext(context.Background(), "failed to parse transcript TTL",
			"error", err,
			"ttl", cfg.TranscriptTTL,
		)
		return nil, fmt.Errorf("parse TTL: %w", err)
	}

	store, err := transcript.NewStore(transcript.StoreConfig{
		BasePath:   cfg.TranscriptPath,
		DefaultTTL: ttl,
		Logger:     logger,
	})
	if err != nil {
		logger.ErrorContext(context.Background(), "failed to initialize transcript store",
			"error", err,
		)
		return nil, fmt.Errorf("transcript store init: %w", err)
	}

	bank := interview.NewQuestionBank()
	if cfg.BankPath != "" {
		if err := bank.LoadFile(cfg.BankPath); err != nil {
			logger.ErrorContext(context.Background(), "failed to load question bank",
				"error", err,
				"path", cfg.BankPath,
			)
			return nil, fmt.Errorf("question bank load: %w", err)
		}
	}

	planner := func() *interview.Planner {
		seed := cfg.SampleSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return interview.NewPlanner(interview.PlannerConfig{
			MaxProjectQuestions: cfg.MaxProjectQuestions,
			MaxSkillQuestions:   cfg.MaxSkillQuestions,
			RoleQuestionCount:   cfg.RoleQuestionCount,
			Seed:                seed,
			Bank:                bank,
		})
	}

	s := &Server{
		registry: NewRegistry(),
		store:    store,
		bank:     bank,
		advisor:  analysis.NewAdvisor(),
		planner:  planner,
		logger:   logger,
		config:   cfg,
	}

	impl := &mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	s.mcpServer = mcp.NewServer(impl, &mcp.ServerOptions{
		Instructions: ServerInstructions,
	})

	s.registerHandlers()

	return s, nil
}

// registerHandlers registers all resources and tools on the MCP server
func (s *Server) registerHandlers() {
	s.registerResources()
	s.registerTools()
}

// registerResources registers all resource handlers
func (s *Server) registerResources() {
	transcriptHandler := &TranscriptResourceHandler{store: s.store, logger: s.logger}
	for i := range ResourceTemplateDefinitions {
		s.mcpServer.AddResourceTemplate(&ResourceTemplateDefinitions[i], transcriptHandler.ReadResource)
	}
}

// registerTools registers all tool handlers
func (s *Server) registerTools() {
	// start_interview tool
	startTool := NewStartInterviewTool(s.registry, s.planner).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["start_interview"], startTool.Call)

	// current_question tool
	questionTool := NewCurrentQuestionTool(s.registry).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["current_question"], questionTool.Call)

	// submit_answer tool
	answerTool := NewSubmitAnswerTool(s.registry, s.advisor, s.bank).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["submit_answer"], answerTool.Call)

	// skip_question tool
	skipTool := NewSkipQuestionTool(s.registry, s.bank).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["skip_question"], skipTool.Call)

	// interview_stats tool
	statsTool := NewInterviewStatsTool(s.registry).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["interview_stats"], statsTool.Call)

	// preview_plan tool
	previewTool := NewPreviewPlanTool(s.planner).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["preview_plan"], previewTool.Call)

	// list_roles tool
	rolesTool := NewListRolesTool(s.bank).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["list_roles"], rolesTool.Call)

	// export_transcript tool
	exportTool := NewExportTranscriptTool(s.registry, s.store, s.bank).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["export_transcript"], exportTool.Call)

	// cleanup_transcripts tool
	cleanupTool := NewCleanupTranscriptsTool(s.store).WithLogger(s.logger)
	s.mcpServer.AddTool(ToolDefinitions["cleanup_transcripts"], cleanupTool.Call)
}

// ListenAndServe starts the HTTP server and begins handling requests
func (s *Server) ListenAndServe() error {
	httpHandler := mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{
		JSONResponse: true,
		Logger:       nil,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", httpHandler)
	mux.HandleFunc("/health/live", s.livenessHandler)
	mux.HandleFunc("/health/ready", s.readinessHandler)
	mux.HandleFunc("/", s.indexHandler)

	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.InfoContext(context.Background(), "starting MCP server",
		"port", s.config.Port,
		"endpoints", []string{"/mcp", "/health/live", "/health/ready", "/"},
	)
	return http.ListenAndServe(addr, mux)
}

// livenessHandler checks if the server is running and accepting requests
func (s *Server) livenessHandler(w http.ResponseWriter, r *http.Request) {
	LivenessHandlerWithLogger(w, r, s.logger)
}

// readinessHandler checks if the server is ready to handle requests
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	ReadinessHandlerWithLogger(w, r, s.store, s.logger)
}

// indexHandler returns the server information page
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "Interview Engine MCP Server\n\n")
	fmt.Fprintf(w, "Endpoints:\n")
	fmt.Fprintf(w, "  POST /mcp          - Streamable HTTP transport (recommended)\n")
	fmt.Fprintf(w, "  GET  /health/live  - Liveness probe\n")
	fmt.Fprintf(w, "  GET  /health/ready - Readiness probe\n")
	fmt.Fprintf(w, "  GET  /             - This help message\n\n")
	fmt.Fprintf(w, "Server: %s %s\n", serverName, serverVersion)
}
