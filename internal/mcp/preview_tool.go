package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/resume"
)

// PreviewPlanTool builds a question plan without starting a session.
type PreviewPlanTool struct {
	planner PlannerFactory
	logger  *slog.Logger
}

// NewPreviewPlanTool creates a new plan preview tool.
func NewPreviewPlanTool(planner PlannerFactory) *PreviewPlanTool {
	return &PreviewPlanTool{
		planner: planner,
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *PreviewPlanTool) WithLogger(logger *slog.Logger) *PreviewPlanTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *PreviewPlanTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Resume *resume.ParsedResume `json:"resume"`
		Role   string               `json:"role"`
	}

	if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid input format: %w", err)
	}

	if args.Resume == nil {
		err := &ValidationError{Field: "resume", Reason: "required parameter missing"}
		return textResult("Error: 'resume' parameter is required"), err
	}

	facts := resume.Normalize(*args.Resume)
	plan, err := t.planner().Plan(facts, interview.RoleID(args.Role))
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Planned questions: %d\n\n", len(plan))
	for _, q := range plan {
		fmt.Fprintf(&b, "%d. [%s] %s\n", q.Rank, q.Category, q.Prompt)
	}

	t.logger.InfoContext(ctx, "plan previewed", "questions", len(plan), "role", args.Role)

	return textResult(b.String()), nil
}
