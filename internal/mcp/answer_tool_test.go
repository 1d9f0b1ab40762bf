package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/interview-engine/internal/analysis"
	"github.com/mockmate/interview-engine/internal/interview"
)

func TestSubmitAnswerTool_Call(t *testing.T) {
	bank := interview.NewQuestionBank()

	t.Run("RecordsAnswerAndAdvances", func(t *testing.T) {
		registry := NewRegistry()
		sessionID := startSession(t, registry, "")
		tool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)

		result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"session_id": sessionID,
			"answer":     "I am a backend developer with six years of experience building data-heavy services.",
		}))
		require.NoError(t, err)

		text := resultText(t, result)
		assert.Contains(t, text, "Good answer!")
		assert.Contains(t, text, "Question 2 of")

		entry, ok := registry.Get(sessionID)
		require.True(t, ok)
		history := entry.Session.History()
		require.Len(t, history, 1)
		assert.Equal(t, interview.StatusAnswered, history[0].Status)
	})

	t.Run("SkipPhraseSkipsQuestion", func(t *testing.T) {
		registry := NewRegistry()
		sessionID := startSession(t, registry, "")
		tool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)

		result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"session_id": sessionID,
			"answer":     "  Skip to next  ",
		}))
		require.NoError(t, err)

		text := resultText(t, result)
		assert.Contains(t, text, "No problem!")

		entry, ok := registry.Get(sessionID)
		require.True(t, ok)
		history := entry.Session.History()
		require.Len(t, history, 1)
		assert.Equal(t, interview.StatusSkipped, history[0].Status)
	})

	t.Run("UnknownSessionFails", func(t *testing.T) {
		registry := NewRegistry()
		tool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)

		result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"session_id": "no-such-session",
			"answer":     "hello",
		}))
		require.Error(t, err)

		var nferr *SessionNotFoundError
		require.ErrorAs(t, err, &nferr)
		assert.Contains(t, resultText(t, result), "session not found")
	})

	t.Run("CompletingPlanReturnsClosingMessage", func(t *testing.T) {
		registry := NewRegistry()
		sessionID := startSession(t, registry, "")
		tool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)

		entry, ok := registry.Get(sessionID)
		require.True(t, ok)
		total := len(entry.Session.Plan())

		var text string
		for i := 0; i < total; i++ {
			result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
				"session_id": sessionID,
				"answer":     "A reasonably detailed answer covering the project, its technologies and the final outcome in depth.",
			}))
			require.NoError(t, err)
			text = resultText(t, result)
		}

		assert.Contains(t, text, "Thank you for completing the interview!")
		assert.True(t, entry.Session.IsComplete())

		// One more answer must be rejected, the session is terminal.
		_, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"session_id": sessionID,
			"answer":     "anything",
		}))
		require.Error(t, err)
		assert.True(t, interview.IsContractError(err))
	})

	t.Run("TechnicalPhaseIsAnnounced", func(t *testing.T) {
		registry := NewRegistry()
		sessionID := startSession(t, registry, "python_developer")
		tool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)

		entry, ok := registry.Get(sessionID)
		require.True(t, ok)

		var beforeTechnical int
		for _, q := range entry.Session.Plan() {
			if q.Category == interview.CategoryRoleTechnical {
				break
			}
			beforeTechnical++
		}

		var text string
		for i := 0; i < beforeTechnical; i++ {
			result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
				"session_id": sessionID,
				"answer":     "A reasonably detailed answer covering the work, its technologies and the final outcome in depth.",
			}))
			require.NoError(t, err)
			text = resultText(t, result)
		}

		assert.Contains(t, text, "Now let's test your technical knowledge.")
		assert.Equal(t, interview.PhaseRoleTechnical, entry.Session.Phase())
	})
}

func TestInterviewStatsTool_Call(t *testing.T) {
	bank := interview.NewQuestionBank()
	registry := NewRegistry()
	sessionID := startSession(t, registry, "")

	answerTool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)
	skipTool := NewSkipQuestionTool(registry, bank)
	statsTool := NewInterviewStatsTool(registry)

	_, err := answerTool.Call(context.Background(), callRequest(t, map[string]any{
		"session_id": sessionID,
		"answer":     "I focus on backend services and data pipelines.",
	}))
	require.NoError(t, err)

	_, err = skipTool.Call(context.Background(), callRequest(t, map[string]any{
		"session_id": sessionID,
	}))
	require.NoError(t, err)

	result, err := statsTool.Call(context.Background(), callRequest(t, map[string]any{
		"session_id": sessionID,
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	assert.Contains(t, text, `"asked": 2`)
	assert.Contains(t, text, `"answered": 1`)
	assert.Contains(t, text, `"skipped": 1`)
}
