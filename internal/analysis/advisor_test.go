package analysis

import (
	"context"
	"testing"

	"github.com/mockmate/interview-engine/internal/interview"
)

var projectQuestion = interview.QuestionSpec{
	ID:        "project-1",
	Category:  interview.CategoryProject,
	Prompt:    "Tell me about your first project.",
	KeyPoints: []string{"challenges", "technologies", "outcome"},
}

func TestAdvisor_BriefAnswerNeedsFollowUp(t *testing.T) {
	advisor := NewAdvisor()

	advice, err := advisor.Review(context.Background(), projectQuestion, "It went fine.")
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if !advice.NeedsFollowUp {
		t.Error("expected follow-up for a brief answer")
	}
	if len(advice.MissingPoints) != len(projectQuestion.KeyPoints) {
		t.Errorf("expected all key points missing, got %v", advice.MissingPoints)
	}
}

func TestAdvisor_ComprehensiveAnswerClears(t *testing.T) {
	advisor := NewAdvisor()

	answer := "The main challenges were around data consistency under load. " +
		"For technologies we used Go with PostgreSQL and Redis for caching. " +
		"The outcome was a production deployment serving about a thousand users."

	advice, err := advisor.Review(context.Background(), projectQuestion, answer)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if advice.NeedsFollowUp {
		t.Errorf("expected no follow-up, got reason %q with missing %v", advice.Reason, advice.MissingPoints)
	}
	if advice.Coverage != 1.0 {
		t.Errorf("expected full coverage, got %f", advice.Coverage)
	}
}

func TestAdvisor_PartialCoverageListsMissingPoints(t *testing.T) {
	advisor := NewAdvisor()

	// Long enough, but only touches one of three key points.
	answer := "We faced many challenges during this project, mostly organizational ones, " +
		"and it took a lot longer than any of us initially planned for."

	advice, err := advisor.Review(context.Background(), projectQuestion, answer)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if !advice.NeedsFollowUp {
		t.Error("expected follow-up for partial coverage")
	}

	missing := map[string]bool{}
	for _, point := range advice.MissingPoints {
		missing[point] = true
	}
	if missing["challenges"] {
		t.Error("'challenges' was addressed and should not be missing")
	}
	if !missing["technologies"] || !missing["outcome"] {
		t.Errorf("expected technologies and outcome missing, got %v", advice.MissingPoints)
	}
}

func TestAdvisor_NoKeyPoints(t *testing.T) {
	advisor := NewAdvisor()
	question := interview.QuestionSpec{ID: "free-form", Prompt: "Anything to add?"}

	answer := "Nothing much beyond what we already discussed earlier in this conversation today, thank you very much indeed."
	advice, err := advisor.Review(context.Background(), question, answer)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if advice.NeedsFollowUp {
		t.Error("questions without key points should never trigger follow-ups")
	}
}

func TestAdvisor_Deterministic(t *testing.T) {
	advisor := NewAdvisor()
	answer := "We used Go and PostgreSQL, the outcome was solid, and the challenges were mostly about scaling."

	first, err := advisor.Review(context.Background(), projectQuestion, answer)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	second, err := advisor.Review(context.Background(), projectQuestion, answer)
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if first.NeedsFollowUp != second.NeedsFollowUp || first.Coverage != second.Coverage {
		t.Errorf("advice not deterministic: %+v vs %+v", first, second)
	}
}
