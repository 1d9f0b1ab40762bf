package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mockmate/interview-engine/internal/analysis"
	"github.com/mockmate/interview-engine/internal/interview"
)

// skipPhrases are answer texts the original UI treated as a skip request.
var skipPhrases = map[string]bool{
	"skip":          true,
	"skip to next":  true,
	"next question": true,
	"skip this":     true,
	"move to next":  true,
}

// SubmitAnswerTool records an answer (or a skip phrase) for the current
// question and advances the session.
type SubmitAnswerTool struct {
	registry *Registry
	advisor  *analysis.Advisor
	bank     *interview.QuestionBank
	logger   *slog.Logger
}

// NewSubmitAnswerTool creates a new submit answer tool.
func NewSubmitAnswerTool(registry *Registry, advisor *analysis.Advisor, bank *interview.QuestionBank) *SubmitAnswerTool {
	return &SubmitAnswerTool{
		registry: registry,
		advisor:  advisor,
		bank:     bank,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger for the tool.
func (t *SubmitAnswerTool) WithLogger(logger *slog.Logger) *SubmitAnswerTool {
	t.logger = logger
	return t
}

// Call implements the MCP tool interface.
func (t *SubmitAnswerTool) Call(ctx context.Context, request *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		SessionID string `json:"session_id"`
		Answer    string `json:"answer"`
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

	if skipPhrases[strings.ToLower(strings.TrimSpace(args.Answer))] {
		if err := session.Skip(); err != nil {
			return textResult(fmt.Sprintf("Error: %v", err)), err
		}
		t.logger.InfoContext(ctx, "question skipped via skip phrase",
			"session_id", args.SessionID,
			"question_id", question.ID,
		)
		text := "No problem! Let's move on to the next question.\n\n" + nextQuestionText(session, t.bank)
		return textResult(text), nil
	}

	if err := session.RecordAnswer(args.Answer); err != nil {
		return textResult(fmt.Sprintf("Error: %v", err)), err
	}

	t.logger.InfoContext(ctx, "answer recorded",
		"session_id", args.SessionID,
		"question_id", question.ID,
		"answer_length", len(args.Answer),
	)

	var b strings.Builder
	b.WriteString("Good answer! Thank you for sharing that.\n")

	// Advice is informational; the session state never depends on it.
	advice, err := t.advisor.Review(ctx, question, args.Answer)
	if err != nil {
		t.logger.ErrorContext(ctx, "answer review failed",
			"error", err,
			"session_id", args.SessionID,
			"question_id", question.ID,
		)
	} else if advice.NeedsFollowUp {
		fmt.Fprintf(&b, "\nFollow-up suggested (%s).", advice.Reason)
		if len(advice.MissingPoints) > 0 {
			fmt.Fprintf(&b, " Points left uncovered: %s.", strings.Join(advice.MissingPoints, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(nextQuestionText(session, t.bank))

	return textResult(b.String()), nil
}

// nextQuestionText renders the next question plus progress, or the
// completion message when the plan is exhausted.
func nextQuestionText(session *interview.Session, bank *interview.QuestionBank) string {
	if session.IsComplete() {
		return interview.CompletionMessage(session.Plan(), bank.DisplayName(session.SelectedRole()))
	}

	question, err := session.CurrentQuestion()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	progress := session.Progress()
	text := fmt.Sprintf("Question %d of %d:\n%s", progress.QuestionNumber, progress.TotalQuestions, question.Prompt)
	if question.Category == interview.CategoryRoleTechnical && isFirstOfCategory(session, question) {
		text = "Now let's test your technical knowledge.\n\n" + text
	}
	return text
}

// isFirstOfCategory reports whether the question opens its plan segment.
func isFirstOfCategory(session *interview.Session, question interview.QuestionSpec) bool {
	for _, q := range session.Plan() {
		if q.Category == question.Category {
			return q.ID == question.ID
		}
	}
	return false
}
