package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/interview-engine/internal/resume"
)

func testPlan(t *testing.T, role RoleID) []QuestionSpec {
	t.Helper()
	facts := resume.Facts{
		Personal: resume.Personal{Name: "Tara", Hobbies: []string{"running"}},
		Projects: []resume.Project{{Title: "Parser"}, {Title: "Scheduler"}},
		Skills:   []string{"Go", "React", "Redis"},
	}
	plan, err := NewPlanner(PlannerConfig{Seed: 5}).Plan(facts, role)
	require.NoError(t, err)
	return plan
}

func TestSession_Start(t *testing.T) {
	t.Run("moves to first segment's phase", func(t *testing.T) {
		s := NewSession(testPlan(t, RoleNone), RoleNone)
		assert.Equal(t, PhaseNotStarted, s.Phase())

		require.NoError(t, s.Start())
		assert.Equal(t, PhasePersonal, s.Phase())
		assert.Equal(t, 0, s.Cursor())
	})

	t.Run("empty plan is a configuration error", func(t *testing.T) {
		s := NewSession(nil, RoleNone)
		err := s.Start()
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("double start is a contract violation", func(t *testing.T) {
		s := NewSession(testPlan(t, RoleNone), RoleNone)
		require.NoError(t, s.Start())
		err := s.Start()
		require.Error(t, err)
		assert.True(t, IsContractError(err))
	})

	t.Run("plan without personal questions starts at first non-empty segment", func(t *testing.T) {
		plan := []QuestionSpec{
			{ID: "skill-programming", Category: CategorySkill, Prompt: "q", Rank: 1},
		}
		s := NewSession(plan, RoleNone)
		require.NoError(t, s.Start())
		assert.Equal(t, PhaseResume, s.Phase())
	})
}

func TestSession_TraversalInvariants(t *testing.T) {
	s := NewSession(testPlan(t, RolePythonDeveloper), RolePythonDeveloper)
	require.NoError(t, s.Start())

	// Any interleaving of answers and skips keeps history and cursor in
	// lockstep and within the plan bounds.
	step := 0
	for !s.IsComplete() {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)
		assert.NotEmpty(t, q.Prompt)

		if step%3 == 2 {
			require.NoError(t, s.Skip())
		} else {
			require.NoError(t, s.RecordAnswer("an answer"))
		}
		step++

		assert.Equal(t, s.Cursor(), len(s.History()))
		assert.LessOrEqual(t, s.Cursor(), len(s.Plan()))
	}

	assert.Equal(t, len(s.Plan()), len(s.History()))
}

func TestSession_PhaseTransitionsAreMonotonic(t *testing.T) {
	s := NewSession(testPlan(t, RoleMERNStack), RoleMERNStack)
	require.NoError(t, s.Start())

	order := map[Phase]int{
		PhasePersonal:      0,
		PhaseResume:        1,
		PhaseRoleTechnical: 2,
		PhaseCompleted:     3,
	}

	seen := []Phase{s.Phase()}
	for !s.IsComplete() {
		require.NoError(t, s.RecordAnswer("ok"))
		if current := s.Phase(); current != seen[len(seen)-1] {
			seen = append(seen, current)
		}
	}

	for i := 1; i < len(seen); i++ {
		assert.Greater(t, order[seen[i]], order[seen[i-1]],
			"phase %q revisited or reordered after %q", seen[i], seen[i-1])
	}
	assert.Equal(t, PhaseCompleted, seen[len(seen)-1])
}

func TestSession_ContractViolations(t *testing.T) {
	t.Run("operations before start", func(t *testing.T) {
		s := NewSession(testPlan(t, RoleNone), RoleNone)

		_, err := s.CurrentQuestion()
		assert.True(t, IsContractError(err))
		assert.True(t, IsContractError(s.RecordAnswer("hi")))
		assert.True(t, IsContractError(s.Skip()))
	})

	t.Run("advance past completion", func(t *testing.T) {
		s := NewSession(testPlan(t, RoleNone), RoleNone)
		require.NoError(t, s.Start())
		for !s.IsComplete() {
			require.NoError(t, s.RecordAnswer("done"))
		}

		_, err := s.CurrentQuestion()
		assert.True(t, IsContractError(err))
		assert.True(t, IsContractError(s.RecordAnswer("extra")))
		assert.True(t, IsContractError(s.Skip()))
	})
}

func TestSession_EventsAreTerminal(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)
	require.NoError(t, s.Start())

	require.NoError(t, s.Skip())
	require.NoError(t, s.RecordAnswer("a real answer"))

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, StatusSkipped, history[0].Status)
	assert.Empty(t, history[0].Answer)
	assert.Equal(t, StatusAnswered, history[1].Status)
	assert.Equal(t, "a real answer", history[1].Answer)

	// Mutating the returned copy must not touch session state.
	history[0].Status = StatusAnswered
	assert.Equal(t, StatusSkipped, s.History()[0].Status)
}

func TestSession_EmptyAnswerAccepted(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)
	require.NoError(t, s.Start())

	require.NoError(t, s.RecordAnswer(""))
	assert.Equal(t, StatusAnswered, s.History()[0].Status)
}

func TestSession_Progress(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession(testPlan(t, RoleNone), RoleNone).WithClock(func() time.Time { return fixed })
	require.NoError(t, s.Start())

	total := len(s.Plan())
	p := s.Progress()
	assert.Equal(t, 1, p.QuestionNumber)
	assert.Equal(t, total, p.TotalQuestions)

	require.NoError(t, s.RecordAnswer("first"))
	assert.Equal(t, 2, s.Progress().QuestionNumber)
	assert.Equal(t, fixed, s.History()[0].Timestamp)
}

func TestCompletionMessage(t *testing.T) {
	plan := testPlan(t, RolePythonDeveloper)
	msg := CompletionMessage(plan, "Python Developer")
	assert.Contains(t, msg, "4 technical questions for Python Developer")

	noRole := CompletionMessage(testPlan(t, RoleNone), "")
	assert.NotContains(t, noRole, "technical questions for")
}
