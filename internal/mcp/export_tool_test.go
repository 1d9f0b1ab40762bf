package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/interview-engine/internal/analysis"
	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/transcript"
)

func testStore(t *testing.T) *transcript.Store {
	t.Helper()
	store, err := transcript.NewStore(transcript.StoreConfig{
		BasePath:   "/transcripts",
		DefaultTTL: time.Hour,
		FileSystem: transcript.NewMemMapFileSystem(),
	})
	require.NoError(t, err)
	return store
}

func TestExportTranscriptTool_Call(t *testing.T) {
	bank := interview.NewQuestionBank()
	registry := NewRegistry()
	store := testStore(t)

	sessionID := startSession(t, registry, "")

	answerTool := NewSubmitAnswerTool(registry, analysis.NewAdvisor(), bank)
	_, err := answerTool.Call(context.Background(), callRequest(t, map[string]any{
		"session_id": sessionID,
		"answer":     "I build backend services, mostly in Python.",
	}))
	require.NoError(t, err)

	exportTool := NewExportTranscriptTool(registry, store, bank)
	result, err := exportTool.Call(context.Background(), callRequest(t, map[string]any{
		"session_id": sessionID,
	}))
	require.NoError(t, err)

	text := resultText(t, result)
	require.Contains(t, text, "transcript://")

	var uri string
	for _, line := range strings.Split(text, "\n") {
		if v, ok := strings.CutPrefix(line, "Resource: "); ok {
			uri = v
		}
	}
	require.NotEmpty(t, uri)

	content, err := store.Read(uri)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Interview Transcript")
	assert.Contains(t, string(content), "mostly in Python")
}

func TestExportTranscriptTool_UnknownSession(t *testing.T) {
	tool := NewExportTranscriptTool(NewRegistry(), testStore(t), interview.NewQuestionBank())

	_, err := tool.Call(context.Background(), callRequest(t, map[string]any{
		"session_id": "missing",
	}))
	require.Error(t, err)

	var nferr *SessionNotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestCleanupTranscriptsTool_Call(t *testing.T) {
	t.Run("InvalidTTL", func(t *testing.T) {
		tool := NewCleanupTranscriptsTool(testStore(t))

		result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"ttl": "soon",
		}))
		require.Error(t, err)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "ttl", verr.Field)
		assert.Contains(t, resultText(t, result), "Error:")
	})

	t.Run("EmptyStore", func(t *testing.T) {
		tool := NewCleanupTranscriptsTool(testStore(t))

		result, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"ttl": "1h",
		}))
		require.NoError(t, err)
		assert.Contains(t, resultText(t, result), "Removed 0 transcript(s)")
	})

	t.Run("BareHoursAccepted", func(t *testing.T) {
		tool := NewCleanupTranscriptsTool(testStore(t))

		_, err := tool.Call(context.Background(), callRequest(t, map[string]any{
			"ttl": "24",
		}))
		require.NoError(t, err)
	})
}
