package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/resume"
)

// StartInterviewTool plans questions from resume facts and opens a session.
type StartInterviewTool struct {
	registry *Registry
	planner  PlannerFactory
	logger   *slog.Logger
}

// NewStartInterviewTool creates a new start interview tool.
func NewStartInterviewTool(registry *Registry, planner PlannerFactory) *StartInterviewTool {
	return &StartInterviewTool{
		registry: registry,
		planner:  planner,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *StartInterviewTool) WithLogger(logger *slog.Logger) *StartInterviewTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *StartInterviewTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Resume *resume.ParsedResume `json:"resume"`
		Role   string               `json:"role"`
	}

	if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid input format: %w", err)
	}

	if args.Resume == nil {
		return textResult("Error: 'resume' parameter is required"),
			&ValidationError{Field: "resume", Reason: "required parameter missing"}
	}

	planner := t.planner()
	role := interview.RoleID(args.Role)

	facts := resume.Normalize(*args.Resume)
	plan, err := planner.Plan(facts, role)
	if err != nil {
		t.logger.ErrorContext(ctx, "question planning failed",
			"error", err,
			"role", args.Role,
			"operation", "start_interview",
		)
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	session := interview.NewSession(plan, role)
	if err := session.Start(); err != nil {
		t.logger.ErrorContext(ctx, "session start failed",
			"error", err,
			"operation", "start_interview",
		)
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	sessionID := t.registry.Add(session, facts)
	question, err := session.CurrentQuestion()
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	t.logger.InfoContext(ctx, "interview started",
		"session_id", sessionID,
		"role", args.Role,
		"questions_planned", len(plan),
	)

	progress := session.Progress()
	text := fmt.Sprintf("Interview started.\nSession: %s\nQuestions planned: %d\n\nQuestion %d of %d:\n%s",
		sessionID, progress.TotalQuestions, progress.QuestionNumber, progress.TotalQuestions, question.Prompt)

	return textResult(text), nil
}
