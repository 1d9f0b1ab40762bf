package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
)

// InterviewStatsTool reports answer and skip statistics for a session.
type InterviewStatsTool struct {
	registry *Registry
	logger   *slog.Logger
}

// NewInterviewStatsTool creates a new stats tool.
func NewInterviewStatsTool(registry *Registry) *InterviewStatsTool {
	return &InterviewStatsTool{
		registry: registry,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *InterviewStatsTool) WithLogger(logger *slog.Logger) *InterviewStatsTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *InterviewStatsTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		SessionID string `json:"session_id"`
	}

	if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid input format: %w", err)
	}

	entry, errResult, err := resolveSession(t.registry, args.SessionID)
	if err != nil {
		return errResult, err
	}

	stats := interview.Summarize(entry.Session)
	body, err := statsJSON(stats)
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	t.logger.InfoContext(ctx, "interview stats requested",
		"session_id", args.SessionID,
		"asked", stats.Asked,
		"answered", stats.Answered,
		"skipped", stats.Skipped)

	return textResult(body), nil
}
