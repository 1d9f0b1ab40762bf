package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/interview"
)

// ListRolesTool lists the roles with technical question pools.
type ListRolesTool struct {
	bank   *interview.QuestionBank
	logger *slog.Logger
}

// NewListRolesTool creates a new role listing tool.
func NewListRolesTool(bank *interview.QuestionBank) *ListRolesTool {
	return &ListRolesTool{
		bank:   bank,
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *ListRolesTool) WithLogger(logger *slog.Logger) *ListRolesTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *ListRolesTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roles := t.bank.Roles()

	var b strings.Builder
	fmt.Fprintf(&b, "Available roles: %d\n\n", len(roles))
	for _, role := range roles {
		fmt.Fprintf(&b, "- %s (%s): %d questions\n",
			t.bank.DisplayName(role), role, t.bank.PoolSize(role))
	}

	return textResult(b.String()), nil
}
