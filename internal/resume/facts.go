package resume

import "strings"

// ParsedResume is the raw output of the resume-parsing collaborator.
// Every field may be empty or missing; normalization tolerates all of it.
type ParsedResume struct {
	Name       string           `json:"name"`
	Hobbies    []string         `json:"hobbies"`
	Projects   []ParsedProject  `json:"projects"`
	Experience []ParsedPosition `json:"experience"`
	Skills     []string         `json:"skills"`
}

// ParsedProject is a raw project entry from the parser.
type ParsedProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"tech"`
}

// ParsedPosition is a raw experience entry from the parser.
type ParsedPosition struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Personal holds the candidate's personal details.
type Personal struct {
	Name    string
	Hobbies []string
}

// Project is a normalized project entry, in resume order.
type Project struct {
	Title        string
	Description  string
	Technologies []string
}

// Position is a normalized experience entry. Any field may be empty.
type Position struct {
	Company     string
	Title       string
	Duration    string
	Description string
}

// Facts is the normalized, read-only view of a parsed resume that the
// planner consumes. Build it once with Normalize and never mutate it.
type Facts struct {
	Personal   Personal
	Projects   []Project
	Experience []Position
	Skills     []string
}

// Normalize builds Facts from the parser's raw output. Empty/whitespace
// skills are dropped, entry order is preserved, and field values are
// trimmed. A missing name stays empty; the planner substitutes a
// placeholder at question-phrasing time.
func Normalize(parsed ParsedResume) Facts {
	facts := Facts{
		Personal: Personal{
			Name:    strings.TrimSpace(parsed.Name),
			Hobbies: cleanStrings(parsed.Hobbies),
		},
		Skills: cleanStrings(parsed.Skills),
	}

	for _, p := range parsed.Projects {
		title := strings.TrimSpace(p.Title)
		desc := strings.TrimSpace(p.Description)
		if title == "" && desc == "" {
			continue
		}
		facts.Projects = append(facts.Projects, Project{
			Title:        title,
			Description:  desc,
			Technologies: cleanStrings(p.Technologies),
		})
	}

	for _, e := range parsed.Experience {
		pos := Position{
			Company:     strings.TrimSpace(e.Company),
			Title:       strings.TrimSpace(e.Title),
			Duration:    strings.TrimSpace(e.Duration),
			Description: strings.TrimSpace(e.Description),
		}
		if pos.Company == "" && pos.Title == "" && pos.Duration == "" {
			continue
		}
		facts.Experience = append(facts.Experience, pos)
	}

	return facts
}

// cleanStrings trims entries and drops empty ones, preserving order.
func cleanStrings(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
