package interview

import "strings"

// SkillGroup is an ordered bucket of related skills.
type SkillGroup struct {
	Name   string
	Skills []string
}

// GroupSkillsFunc groups a skill list into ordered, non-empty buckets.
// The grouping taxonomy is deliberately pluggable; the planner phrases
// one question per group it receives.
type GroupSkillsFunc func(skills []string) []SkillGroup

var (
	programmingKeywords = []string{"python", "java", "javascript", "typescript", "c++", "c#", "go", "golang", "rust", "php", "ruby", "swift", "kotlin"}
	webKeywords         = []string{"html", "css", "react", "vue", "angular", "node", "express", "django", "flask", "bootstrap", "next"}
	databaseKeywords    = []string{"mysql", "postgresql", "postgres", "mongodb", "sqlite", "redis", "firebase", "sql"}
)

// GroupSkillsByKeyword is the default grouping: keyword matching into
// programming, web, and database buckets; everything else lands in
// "other". Groups come back in that fixed order with empty buckets
// omitted.
func GroupSkillsByKeyword(skills []string) []SkillGroup {
	buckets := map[string][]string{}

	for _, skill := range skills {
		lower := strings.ToLower(skill)
		name := "other"
		switch {
		case matchesAny(lower, programmingKeywords):
			name = "programming"
		case matchesAny(lower, webKeywords):
			name = "web"
		case matchesAny(lower, databaseKeywords):
			name = "database"
		}
		buckets[name] = append(buckets[name], skill)
	}

	var groups []SkillGroup
	for _, name := range []string{"programming", "web", "database", "other"} {
		if len(buckets[name]) > 0 {
			groups = append(groups, SkillGroup{Name: name, Skills: buckets[name]})
		}
	}
	return groups
}

func matchesAny(skill string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(skill, keyword) {
			return true
		}
	}
	return false
}
