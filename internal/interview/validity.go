package interview

import (
	"strings"

	"github.com/mockmate/interview-engine/internal/resume"
)

// professionalTitleKeywords mark a title as actual employment. An entry
// whose title carries none of these can still qualify through a stated
// duration.
var professionalTitleKeywords = []string{
	"intern", "trainee", "apprentice", "employee", "worker",
	"analyst", "consultant", "specialist", "engineer", "developer", "programmer",
}

// leadershipTitles are typically extracurricular roles, not employment.
var leadershipTitles = []string{
	"head", "co-head", "leader", "president", "vice president",
	"secretary", "treasurer", "coordinator", "member",
}

// companyExclusions disqualify self-employment, academic institutions,
// and club activity from counting as work experience.
var companyExclusions = []string{
	"self employed", "self-employed", "freelance", "personal", "own", "individual",
	"college", "university", "school", "institute", "club", "society", "committee",
	"student", "academic", "campus",
	"team", "group", "association", "organization",
}

// IsValidExperience reports whether an experience entry counts as genuine
// work experience: a non-empty company AND (a professional title keyword
// OR a stated duration), minus the exclusion lists. The set of valid
// entries, not the raw list, drives experience questions.
func IsValidExperience(pos resume.Position) bool {
	company := strings.ToLower(pos.Company)
	title := strings.ToLower(pos.Title)

	if strings.TrimSpace(company) == "" {
		return false
	}

	for _, excluded := range companyExclusions {
		if containsPhrase(company, excluded) {
			return false
		}
	}

	for _, leadership := range leadershipTitles {
		if containsPhrase(title, leadership) {
			return false
		}
	}

	hasProfessionalTitle := false
	for _, keyword := range professionalTitleKeywords {
		if containsPhrase(title, keyword) {
			hasProfessionalTitle = true
			break
		}
	}

	return hasProfessionalTitle || pos.Duration != ""
}

// containsPhrase reports whether text contains phrase on word boundaries,
// so "own" does not match inside "Browning".
func containsPhrase(text, phrase string) bool {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
	phraseWords := strings.Fields(phrase)
	if len(phraseWords) == 0 {
		return false
	}
	for i := 0; i+len(phraseWords) <= len(words); i++ {
		match := true
		for j, pw := range phraseWords {
			if words[i+j] != pw {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// ValidExperience filters entries through IsValidExperience, preserving
// resume order. Invalid entries are silently dropped, never questioned.
func ValidExperience(entries []resume.Position) []resume.Position {
	var valid []resume.Position
	for _, pos := range entries {
		if IsValidExperience(pos) {
			valid = append(valid, pos)
		}
	}
	return valid
}
