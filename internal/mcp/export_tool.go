package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/transcript"
)

// ExportTranscriptTool writes a session transcript to the store.
type ExportTranscriptTool struct {
	registry *Registry
	store    *transcript.Store
	bank     *interview.QuestionBank
	logger   *slog.Logger
}

// NewExportTranscriptTool creates a new transcript export tool.
func NewExportTranscriptTool(registry *Registry, store *transcript.Store, bank *interview.QuestionBank) *ExportTranscriptTool {
	return &ExportTranscriptTool{
		registry: registry,
		store:    store,
		bank:     bank,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *ExportTranscriptTool) WithLogger(logger *slog.Logger) *ExportTranscriptTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *ExportTranscriptTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	summary := transcript.Summary{
		SessionID:   args.SessionID,
		Role:        session.SelectedRole(),
		RoleDisplay: t.bank.DisplayName(session.SelectedRole()),
		Phase:       session.Phase(),
		ExportedAt:  time.Now().UTC(),
		Stats:       interview.Summarize(session),
		Plan:        session.Plan(),
		History:     session.History(),
	}

	uri, err := t.store.Save(summary)
	if err != nil {
		t.logger.ErrorContext(ctx, "transcript export failed", "session_id", args.SessionID, "error", err)
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	t.logger.InfoContext(ctx, "transcript exported", "session_id", args.SessionID, "uri", uri)

	return textResult(fmt.Sprintf("Transcript exported.\nResource: %s", uri)), nil
}

// CleanupTranscriptsTool removes transcripts older than a TTL.
type CleanupTranscriptsTool struct {
	store  *transcript.Store
	logger *slog.Logger
}

// NewCleanupTranscriptsTool creates a new transcript cleanup tool.
func NewCleanupTranscriptsTool(store *transcript.Store) *CleanupTranscriptsTool {
	return &CleanupTranscriptsTool{
		store:  store,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *CleanupTranscriptsTool) WithLogger(logger *slog.Logger) *CleanupTranscriptsTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *CleanupTranscriptsTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		TTL string `json:"ttl"`
	}

	if err := json.Unmarshal(request.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("invalid input format: %w", err)
	}

	var ttl time.Duration
	if args.TTL != "" {
		parsed, err := parseTTL(args.TTL)
		if err != nil {
			verr := &ValidationError{Field: "ttl", Value: args.TTL, Reason: "must be a duration like '24h' or a number of hours"}
			return textResult(fmt.Sprintf("Error: %v", verr)), verr
		}
		ttl = parsed
	}

	removed, err := t.store.Cleanup(ttl)
	if err != nil {
		t.logger.ErrorContext(ctx, "transcript cleanup failed", "error", err)
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	t.logger.InfoContext(ctx, "transcripts cleaned up", "removed", removed)

	return textResult(fmt.Sprintf("Cleanup complete. Removed %d transcript(s).", removed)), nil
}

// parseTTL accepts Go duration strings and bare hour counts.
func parseTTL(raw string) (time.Duration, error) {
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	hours, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid ttl %q", raw)
	}
	return time.Duration(hours) * time.Hour, nil
}
