package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CurrentQuestionTool returns the question a session is waiting on.
type CurrentQuestionTool struct {
	registry *Registry
	logger   *slog.Logger
}

// NewCurrentQuestionTool creates a new current question tool.
func NewCurrentQuestionTool(registry *Registry) *CurrentQuestionTool {
	return &CurrentQuestionTool{
		registry: registry,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *CurrentQuestionTool) WithLogger(logger *slog.Logger) *CurrentQuestionTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *CurrentQuestionTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	if session.IsComplete() {
		return textResult("The interview is complete; there is no current question."), nil
	}

	question, err := session.CurrentQuestion()
	if err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	progress := session.Progress()
	text := fmt.Sprintf("Question %d of %d (%s):\n%s",
		progress.QuestionNumber, progress.TotalQuestions, question.Category, question.Prompt)
	return textResult(text), nil
}
