package interview

import (
	"fmt"
	"sync"
	"time"
)

// Session is the stateful side of the engine: it walks a pre-built plan
// linearly and never re-derives categories from resume data. Planning is
// pure and stateless; traversal is stateful and serialized by an internal
// mutex, so bugs in one stay isolated from the other.
//
// Sessions are fully independent of each other. Abandoning one is just
// dropping the reference; nothing outside the session is mutated.
type Session struct {
	mu      sync.Mutex
	phase   Phase
	plan    []QuestionSpec
	cursor  int
	history []ConversationEvent
	role    RoleID
	now     func() time.Time
}

// NewSession creates a session over a fixed plan. The plan is copied so
// later caller mutations cannot reach the session.
func NewSession(plan []QuestionSpec, role RoleID) *Session {
	owned := make([]QuestionSpec, len(plan))
	copy(owned, plan)
	return &Session{
		phase: PhaseNotStarted,
		plan:  owned,
		role:  role,
		now:   time.Now,
	}
}

// WithClock replaces the event timestamp source. Test hook.
func (s *Session) WithClock(now func() time.Time) *Session {
	s.now = now
	return s
}

// Start moves the session to the first question's phase. An empty plan is
// a planner bug and fails with a ConfigError; starting twice is a caller
// bug and fails with a ContractError.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseNotStarted {
		return &ContractError{Operation: "start", Reason: fmt.Sprintf("session already in phase %q", s.phase)}
	}
	if len(s.plan) == 0 {
		return &ConfigError{Component: "session", Reason: "empty question plan"}
	}

	s.phase = phaseFor(s.plan[0].Category)
	s.cursor = 0
	return nil
}

// CurrentQuestion returns the question at the cursor. Callers must check
// the phase first: asking after completion (or before start) violates the
// session contract.
func (s *Session) CurrentQuestion() (QuestionSpec, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseNotStarted {
		return QuestionSpec{}, &ContractError{Operation: "current_question", Reason: "session not started"}
	}
	if s.cursor >= len(s.plan) {
		return QuestionSpec{}, &ContractError{Operation: "current_question", Reason: "session already completed"}
	}
	return s.plan[s.cursor], nil
}

// RecordAnswer records the candidate's answer for the current question and
// advances. Every answer is accepted, including empty and very long ones;
// there is no user-triggered error path here.
func (s *Session) RecordAnswer(text string) error {
	return s.resolve(StatusAnswered, text)
}

// Skip records the current question as skipped and advances. Skipping is
// always permitted; no question is required.
func (s *Session) Skip() error {
	return s.resolve(StatusSkipped, "")
}

// resolve appends the event before moving the cursor, so history and
// cursor never disagree about what has been asked.
func (s *Session) resolve(status EventStatus, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := string(status)
	if s.phase == PhaseNotStarted {
		return &ContractError{Operation: op, Reason: "session not started"}
	}
	if s.phase == PhaseCompleted || s.cursor >= len(s.plan) {
		return &ContractError{Operation: op, Reason: "cannot advance past a completed session"}
	}

	question := s.plan[s.cursor]
	s.history = append(s.history, ConversationEvent{
		QuestionID: question.ID,
		Category:   question.Category,
		Status:     status,
		Answer:     answer,
		Timestamp:  s.now(),
	})

	s.cursor++
	if s.cursor >= len(s.plan) {
		s.phase = PhaseCompleted
	} else {
		s.phase = phaseFor(s.plan[s.cursor].Category)
	}
	return nil
}

// IsComplete reports whether every planned question has been resolved.
func (s *Session) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseCompleted
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Cursor returns the index of the next unresolved question.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// SelectedRole returns the role the plan was built for, RoleNone if none.
func (s *Session) SelectedRole() RoleID {
	return s.role
}

// Plan returns a copy of the fixed question plan.
func (s *Session) Plan() []QuestionSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	plan := make([]QuestionSpec, len(s.plan))
	copy(plan, s.plan)
	return plan
}

// History returns a copy of the conversation events recorded so far.
func (s *Session) History() []ConversationEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]ConversationEvent, len(s.history))
	copy(history, s.history)
	return history
}

// Progress describes where the interview stands, in the shape the
// presentation layer reports alongside every question.
type Progress struct {
	QuestionNumber int    `json:"question_number"` // 1-based, next unresolved question
	TotalQuestions int    `json:"total_questions"`
	Phase          Phase  `json:"phase"`
	Role           RoleID `json:"role,omitempty"`
}

// Progress returns the current progress snapshot.
func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := s.cursor + 1
	if number > len(s.plan) {
		number = len(s.plan)
	}
	return Progress{
		QuestionNumber: number,
		TotalQuestions: len(s.plan),
		Phase:          s.phase,
		Role:           s.role,
	}
}

// CompletionMessage composes the end-of-interview text from what the plan
// actually covered.
func CompletionMessage(plan []QuestionSpec, roleDisplayName string) string {
	roleQuestions := 0
	for _, q := range plan {
		if q.Category == CategoryRoleTechnical {
			roleQuestions++
		}
	}

	msg := "Thank you for completing the interview!\n\nWe've covered:\n" +
		"- Personal introduction and background questions\n" +
		"- Questions based on your resume and experience\n"
	if roleQuestions > 0 {
		msg += fmt.Sprintf("- %d technical questions for %s\n", roleQuestions, roleDisplayName)
	}
	msg += "\nYour responses have been recorded and will be reviewed by our team. " +
		"You'll hear back within 2-3 business days."
	return msg
}
