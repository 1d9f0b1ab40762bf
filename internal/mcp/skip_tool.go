package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
)

// SkipQuestionTool marks the current question as skipped and advances.
type SkipQuestionTool struct {
	registry *Registry
	bank     *interview.QuestionBank
	logger   *slog.Logger
}

// NewSkipQuestionTool creates a new skip question tool.
func NewSkipQuestionTool(registry *Registry, bank *interview.QuestionBank) *SkipQuestionTool {
	return &SkipQuestionTool{
		registry: registry,
		bank:     bank,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *SkipQuestionTool) WithLogger(logger *slog.Logger) *SkipQuestionTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *SkipQuestionTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	session := entry.Session

	question, err := session.CurrentQuestion()
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	if err := session.Skip(); err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	t.logger.InfoContext(ctx, "question skipped",
		"session_id", args.SessionID,
		"question_id", question.ID,
	)

	text := "No problem! Let's move on to the next question.\n\n" + nextQuestionText(session, t.bank)
	return textResult(text), nil
}
