package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/interview-engine/internal/resume"
)

func TestSummarize_BeforeStart(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)

	stats := Summarize(s)
	assert.Equal(t, len(s.Plan()), stats.Total)
	assert.Zero(t, stats.Asked)
	assert.Zero(t, stats.Answered)
	assert.Zero(t, stats.Skipped)
	assert.Zero(t, stats.ResponseRate)
	assert.Zero(t, stats.SkipRate)
}

func TestSummarize_AbandonedMidInterview(t *testing.T) {
	// 9-question plan: answer 5, skip 1, abandon the remaining 3.
	facts := resume.Facts{
		Personal:   resume.Personal{Name: "Tara", Hobbies: []string{"running"}},
		Projects:   []resume.Project{{Title: "A"}, {Title: "B"}, {Title: "C"}},
		Experience: []resume.Position{{Company: "Acme", Title: "Developer", Duration: "1 year"}},
	}
	plan, err := NewPlanner(PlannerConfig{Seed: 2, RoleQuestionCount: 3}).Plan(facts, RolePythonDeveloper)
	require.NoError(t, err)
	require.Len(t, plan, 9)

	s := NewSession(plan, RolePythonDeveloper)
	require.NoError(t, s.Start())
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordAnswer("answer"))
	}
	require.NoError(t, s.Skip())

	stats := Summarize(s)
	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 6, stats.Asked)
	assert.Equal(t, 5, stats.Answered)
	assert.Equal(t, 1, stats.Skipped)
	assert.InDelta(t, 0.83, stats.ResponseRate, 0.01)
	assert.InDelta(t, 0.17, stats.SkipRate, 0.01)
}

func TestSummarize_RatesSumToOne(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)
	require.NoError(t, s.Start())
	require.NoError(t, s.RecordAnswer("a"))
	require.NoError(t, s.Skip())
	require.NoError(t, s.Skip())

	stats := Summarize(s)
	require.Positive(t, stats.Asked)
	assert.InDelta(t, 1.0, stats.ResponseRate+stats.SkipRate, 1e-9)
}

func TestSummarize_PerCategoryBreakdown(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)
	require.NoError(t, s.Start())

	// Resolve both personal questions, one answered and one skipped.
	require.NoError(t, s.RecordAnswer("intro answer"))
	require.NoError(t, s.Skip())

	stats := Summarize(s)
	personal := stats.ByCategory[CategoryPersonal]
	assert.Equal(t, 2, personal.Total)
	assert.Equal(t, 2, personal.Asked)
	assert.Equal(t, 1, personal.Answered)
	assert.Equal(t, 1, personal.Skipped)

	project := stats.ByCategory[CategoryProject]
	assert.Equal(t, 2, project.Total)
	assert.Zero(t, project.Asked)
}

func TestSummarize_Idempotent(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)
	require.NoError(t, s.Start())
	require.NoError(t, s.RecordAnswer("one"))

	assert.Equal(t, Summarize(s), Summarize(s))
}

func TestSummarize_AfterCompletion(t *testing.T) {
	s := NewSession(testPlan(t, RoleNone), RoleNone)
	require.NoError(t, s.Start())
	for !s.IsComplete() {
		require.NoError(t, s.RecordAnswer("done"))
	}

	stats := Summarize(s)
	assert.Equal(t, stats.Total, stats.Asked)
	assert.Equal(t, stats.Total, stats.Answered)
	assert.Equal(t, 1.0, stats.ResponseRate)
}
