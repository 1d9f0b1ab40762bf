package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	index "github.com/blevesearch/bleve_index_api"

	"github.com/mockmate/interview-engine/internal/interview"
)

var logger = slog.Default()

// Advice is the follow-up decision for one answered question. The session
// state never depends on it; callers may feed the missing points into an
// external phrasing hook, or ignore the advice entirely.
type Advice struct {
	NeedsFollowUp bool     `json:"needs_followup"`
	Coverage      float64  `json:"coverage"`
	MissingPoints []string `json:"missing_points,omitempty"`
	Reason        string   `json:"reason"`
}

// Advisor decides whether an answer warrants a follow-up question by
// scoring its term coverage of the question's key points against a bleve
// in-memory index. The decision is local and deterministic - no external
// calls, in contrast to the paid generation path other question sources
// may use.
type Advisor struct {
	indexMapping   mapping.IndexMapping
	minAnswerWords int
	minCoverage    float64
}

// NewAdvisor creates an advisor with the default thresholds: answers
// shorter than 12 words, or covering fewer than half the key points,
// are flagged.
func NewAdvisor() *Advisor {
	return &Advisor{
		indexMapping:   bleve.NewIndexMapping(),
		minAnswerWords: 12,
		minCoverage:    0.5,
	}
}

// Review scores an answer against the question's key points.
func (a *Advisor) Review(ctx context.Context, question interview.QuestionSpec, answer string) (*Advice, error) {
	answer = strings.TrimSpace(answer)

	logger.DebugContext(ctx, "reviewing answer",
		"question_id", question.ID,
		"answer_length", len(answer),
		"key_points", len(question.KeyPoints),
	)

	if wordCount(answer) < a.minAnswerWords {
		return &Advice{
			NeedsFollowUp: true,
			Coverage:      0,
			MissingPoints: append([]string(nil), question.KeyPoints...),
			Reason:        "answer is too brief to cover the expected points",
		}, nil
	}

	if len(question.KeyPoints) == 0 {
		return &Advice{Coverage: 1, Reason: "question has no key points to check"}, nil
	}

	terms, err := a.answerTerms(answer)
	if err != nil {
		return nil, fmt.Errorf("analyze answer: %w", err)
	}

	var missing []string
	covered := 0
	for _, point := range question.KeyPoints {
		if pointCovered(point, terms) {
			covered++
		} else {
			missing = append(missing, point)
		}
	}

	coverage := float64(covered) / float64(len(question.KeyPoints))
	advice := &Advice{
		NeedsFollowUp: coverage < a.minCoverage,
		Coverage:      coverage,
		MissingPoints: missing,
	}
	if advice.NeedsFollowUp {
		advice.Reason = fmt.Sprintf("answer covers %d of %d expected points", covered, len(question.KeyPoints))
	} else {
		advice.Reason = "answer covers the expected points"
	}

	logger.DebugContext(ctx, "answer reviewed",
		"question_id", question.ID,
		"coverage", advice.Coverage,
		"needs_followup", advice.NeedsFollowUp,
	)

	return advice, nil
}

// answerTerms indexes the answer in a throwaway in-memory index and
// collects the analyzed token set from the stored document.
func (a *Advisor) answerTerms(answer string) (map[string]bool, error) {
	bleveIndex, err := bleve.NewMemOnly(a.indexMapping)
	if err != nil {
		return nil, fmt.Errorf("create memory index: %w", err)
	}
	defer bleveIndex.Close()

	if err := bleveIndex.Index("answer", answer); err != nil {
		return nil, fmt.Errorf("index answer: %w", err)
	}

	doc, err := bleveIndex.Document("answer")
	if err != nil {
		return nil, fmt.Errorf("load indexed answer: %w", err)
	}

	terms := make(map[string]bool)
	doc.VisitFields(func(field index.Field) {
		for term := range field.AnalyzedTokenFrequencies() {
			terms[term] = true
		}
	})
	return terms, nil
}

// pointCovered reports whether any significant word of a key point
// appears among the answer's analyzed terms.
func pointCovered(point string, terms map[string]bool) bool {
	for _, word := range significantWords(point) {
		if terms[word] {
			return true
		}
	}
	return false
}

// significantWords lowercases and drops short connective words so a key
// point like "relation to career" matches on "relation" or "career".
func significantWords(point string) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(point)) {
		word = strings.Trim(word, ".,;:!?()")
		if len(word) >= 3 {
			words = append(words, word)
		}
	}
	return words
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
