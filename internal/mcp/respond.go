package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
)

// textResult wraps plain text in a tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// resolveSession looks up a session id, returning a ready-to-send error
// result when the id is missing or unknown.
func resolveSession(registry *Registry, sessionID string) (*SessionEntry, *mcp.CallToolResult, error) {
	if sessionID == "" {
		err := &ValidationError{Field: "session_id", Reason: "required parameter missing"}
		return nil, textResult("Error: 'session_id' parameter is required"), err
	}

	entry, ok := registry.Get(sessionID)
	if !ok {
		err := &SessionNotFoundError{ID: sessionID}
		return nil, textResult(fmt.Sprintf("Error: session not found: %s", sessionID)), err
	}
	return entry, nil, nil
}

// statsJSON renders interview stats as indented JSON.
func statsJSON(stats interview.Stats) (string, error) {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal stats: %w", err)
	}
	return string(data), nil
}
