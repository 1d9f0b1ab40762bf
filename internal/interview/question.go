package interview

import "time"

// Category classifies a planned question by the resume signal it probes.
type Category string

const (
	CategoryPersonal      Category = "personal"
	CategoryProject       Category = "project"
	CategoryExperience    Category = "experience"
	CategorySkill         Category = "skill"
	CategoryRoleTechnical Category = "role_technical"
)

// QuestionSpec is one planned question. Specs are immutable once planned;
// a plan is a fixed ordered sequence for the lifetime of a session.
type QuestionSpec struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Prompt    string   `json:"prompt"`
	KeyPoints []string `json:"key_points,omitempty"`
	Source    string   `json:"source,omitempty"` // resume entry or role pool this question came from
	Rank      int      `json:"rank"`
}

// EventStatus is the terminal status of a conversation event.
// A question that was reached but never resolved has no event at all;
// "asked" is derived from the history length, not stored.
type EventStatus string

const (
	StatusAnswered EventStatus = "answered"
	StatusSkipped  EventStatus = "skipped"
)

// ConversationEvent is one append-only record per resolved question.
// The session owns the event list exclusively; stats only read it.
type ConversationEvent struct {
	QuestionID string      `json:"question_id"`
	Category   Category    `json:"category"`
	Status     EventStatus `json:"status"`
	Answer     string      `json:"answer,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Phase is a contiguous segment of the plan, traversed in a fixed order.
type Phase string

const (
	PhaseNotStarted    Phase = "not_started"
	PhasePersonal      Phase = "personal"
	PhaseResume        Phase = "resume"
	PhaseRoleTechnical Phase = "role_technical"
	PhaseCompleted     Phase = "completed"
)

// phaseFor maps a question category to the session phase that serves it.
func phaseFor(cat Category) Phase {
	switch cat {
	case CategoryPersonal:
		return PhasePersonal
	case CategoryProject, CategoryExperience, CategorySkill:
		return PhaseResume
	case CategoryRoleTechnical:
		return PhaseRoleTechnical
	default:
		return PhaseResume
	}
}
