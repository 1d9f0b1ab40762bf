package mcp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/resume"
)

func registryTestSession(t *testing.T) *interview.Session {
	t.Helper()
	plan := []interview.QuestionSpec{
		{ID: "intro", Category: interview.CategoryPersonal, Prompt: "Introduce yourself.", Rank: 1},
	}
	session := interview.NewSession(plan, interview.RoleNone)
	require.NoError(t, session.Start())
	return session
}

func TestRegistry(t *testing.T) {
	t.Run("AddAndGet", func(t *testing.T) {
		registry := NewRegistry()
		session := registryTestSession(t)

		id := registry.Add(session, resume.Facts{})
		require.NotEmpty(t, id)

		entry, ok := registry.Get(id)
		require.True(t, ok)
		assert.Same(t, session, entry.Session)
		assert.False(t, entry.CreatedAt.IsZero())
		assert.Equal(t, 1, registry.Count())
	})

	t.Run("GetUnknown", func(t *testing.T) {
		registry := NewRegistry()
		_, ok := registry.Get("missing")
		assert.False(t, ok)
	})

	t.Run("Remove", func(t *testing.T) {
		registry := NewRegistry()
		id := registry.Add(registryTestSession(t), resume.Facts{})

		registry.Remove(id)
		_, ok := registry.Get(id)
		assert.False(t, ok)
		assert.Equal(t, 0, registry.Count())
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		registry := NewRegistry()
		a := registry.Add(registryTestSession(t), resume.Facts{})
		b := registry.Add(registryTestSession(t), resume.Facts{})
		assert.NotEqual(t, a, b)
	})

	t.Run("ConcurrentAdd", func(t *testing.T) {
		registry := NewRegistry()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				plan := []interview.QuestionSpec{
					{ID: "intro", Category: interview.CategoryPersonal, Prompt: "Introduce yourself.", Rank: 1},
				}
				registry.Add(interview.NewSession(plan, interview.RoleNone), resume.Facts{})
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, registry.Count())
	})
}
