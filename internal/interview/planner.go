package interview

import (
	"fmt"
	"strings"

	"github.com/mockmate/interview-engine/internal/resume"
)

// Default planning limits. The plan shrinks when the resume has less to
// offer; it is never padded with placeholders.
const (
	DefaultMaxProjectQuestions = 3
	DefaultMaxSkillQuestions   = 3
	DefaultRoleQuestionCount   = 4
)

// genericSkillPrompts are asked when a resume offers neither valid
// experience nor any parseable skills.
var genericSkillPrompts = []string{
	"What programming languages or technologies are you most comfortable with and why?",
	"Can you describe a challenging technical problem you've solved recently?",
	"How do you stay updated with new technologies in your field?",
	"Tell me about a time you had to learn something new quickly. How did you approach it?",
}

// PlannerConfig tunes the planner. Zero values take the defaults above.
type PlannerConfig struct {
	MaxProjectQuestions int
	MaxSkillQuestions   int
	RoleQuestionCount   int
	Seed                int64
	GroupSkills         GroupSkillsFunc
	Bank                *QuestionBank
}

// Planner turns resume facts plus an optional role into an ordered
// question plan. Planning is pure: no I/O, no external services, and the
// same inputs with the same seed always produce the same plan.
type Planner struct {
	maxProjectQuestions int
	maxSkillQuestions   int
	roleQuestionCount   int
	seed                int64
	groupSkills         GroupSkillsFunc
	bank                *QuestionBank
}

// NewPlanner creates a planner, filling in defaults for zero config values.
func NewPlanner(cfg PlannerConfig) *Planner {
	p := &Planner{
		maxProjectQuestions: cfg.MaxProjectQuestions,
		maxSkillQuestions:   cfg.MaxSkillQuestions,
		roleQuestionCount:   cfg.RoleQuestionCount,
		seed:                cfg.Seed,
		groupSkills:         cfg.GroupSkills,
		bank:                cfg.Bank,
	}
	if p.maxProjectQuestions == 0 {
		p.maxProjectQuestions = DefaultMaxProjectQuestions
	}
	if p.maxSkillQuestions == 0 {
		p.maxSkillQuestions = DefaultMaxSkillQuestions
	}
	if p.roleQuestionCount == 0 {
		p.roleQuestionCount = DefaultRoleQuestionCount
	}
	if p.groupSkills == nil {
		p.groupSkills = GroupSkillsByKeyword
	}
	if p.bank == nil {
		p.bank = NewQuestionBank()
	}
	return p
}

// Bank exposes the planner's question bank for role listings.
func (p *Planner) Bank() *QuestionBank {
	return p.bank
}

// RoleQuestionCount reports how many role-technical questions a plan with
// a selected role will carry.
func (p *Planner) RoleQuestionCount() int {
	return p.roleQuestionCount
}

// Plan builds the full ordered question plan:
//
//  1. personal (introduction always, hobbies if present)
//  2. projects in resume order, capped
//  3. experience questions for valid entries, or skill questions when no
//     entry passes the validity predicate
//  4. role-technical sample, only when a role was selected
//
// The only error condition is a misconfigured role bank; missing resume
// data is handled by omission, never raised.
func (p *Planner) Plan(facts resume.Facts, role RoleID) ([]QuestionSpec, error) {
	if role != RoleNone {
		if err := p.bank.Validate(role, p.roleQuestionCount); err != nil {
			return nil, err
		}
	}

	var plan []QuestionSpec
	plan = append(plan, p.personalQuestions(facts)...)
	plan = append(plan, p.projectQuestions(facts.Projects)...)

	if valid := ValidExperience(facts.Experience); len(valid) > 0 {
		plan = append(plan, p.experienceQuestions(valid)...)
	} else {
		plan = append(plan, p.skillQuestions(facts.Skills)...)
	}

	if role != RoleNone {
		roleQuestions, err := p.bank.Sample(role, p.roleQuestionCount, p.seed)
		if err != nil {
			return nil, err
		}
		plan = append(plan, roleQuestions...)
	}

	for i := range plan {
		plan[i].Rank = i + 1
	}
	return plan, nil
}

func (p *Planner) personalQuestions(facts resume.Facts) []QuestionSpec {
	name := facts.Personal.Name
	if name == "" {
		name = "Candidate"
	}

	questions := []QuestionSpec{{
		ID:       "intro",
		Category: CategoryPersonal,
		Prompt: fmt.Sprintf("Hello %s! Please introduce yourself. Tell us about your background, "+
			"education, and what interests you about this field.", name),
		KeyPoints: []string{"background", "education", "interests"},
		Source:    "personal",
	}}

	if len(facts.Personal.Hobbies) > 0 {
		questions = append(questions, QuestionSpec{
			ID:       "hobbies",
			Category: CategoryPersonal,
			Prompt: "Can you tell us about your hobbies and interests? How do they relate to " +
				"your current course of study or career goals?",
			KeyPoints: []string{"hobbies", "relation to career"},
			Source:    "personal",
		})
	}
	return questions
}

func (p *Planner) projectQuestions(projects []resume.Project) []QuestionSpec {
	var questions []QuestionSpec
	for i, project := range projects {
		if i >= p.maxProjectQuestions {
			break
		}

		title := project.Title
		if title == "" {
			title = fmt.Sprintf("Project %d", i+1)
		}

		var prompt string
		if i == 0 {
			prompt = fmt.Sprintf("Let's talk about your projects. Can you explain your first project '%s'? "+
				"What was the project about? What difficulties did you face during development? "+
				"What tech stack did you use? What was the overall outcome and what did you learn from it?", title)
		} else {
			prompt = fmt.Sprintf("Tell me about your %s project '%s'. What challenges did you encounter? "+
				"What technologies did you use? How did this project contribute to your learning "+
				"and what was the final result?", ordinal(i+1), title)
		}

		questions = append(questions, QuestionSpec{
			ID:        fmt.Sprintf("project-%d", i+1),
			Category:  CategoryProject,
			Prompt:    prompt,
			KeyPoints: []string{"project description", "challenges", "technologies", "outcome"},
			Source:    fmt.Sprintf("project:%s", title),
		})
	}
	return questions
}

func (p *Planner) experienceQuestions(valid []resume.Position) []QuestionSpec {
	var questions []QuestionSpec
	for i, pos := range valid {
		company := pos.Company
		title := pos.Title
		if title == "" {
			title = "your role"
		}

		var prompt string
		if strings.Contains(strings.ToLower(title), "intern") {
			prompt = fmt.Sprintf("Tell me about your internship experience as %s at %s. "+
				"What were your main responsibilities and what did you learn?", title, company)
		} else {
			prompt = fmt.Sprintf("Describe your experience as %s at %s. "+
				"What were your key accomplishments and responsibilities?", title, company)
		}

		questions = append(questions, QuestionSpec{
			ID:        fmt.Sprintf("experience-%d", i+1),
			Category:  CategoryExperience,
			Prompt:    prompt,
			KeyPoints: []string{"responsibilities", "accomplishments", "learning"},
			Source:    fmt.Sprintf("experience:%s", company),
		})
	}
	return questions
}

func (p *Planner) skillQuestions(skills []string) []QuestionSpec {
	var questions []QuestionSpec

	if len(skills) == 0 {
		for i, prompt := range genericSkillPrompts {
			if i >= p.maxSkillQuestions {
				break
			}
			questions = append(questions, QuestionSpec{
				ID:        fmt.Sprintf("skill-general-%d", i+1),
				Category:  CategorySkill,
				Prompt:    prompt,
				KeyPoints: []string{"technical skills", "problem solving", "learning ability"},
				Source:    "skills",
			})
		}
		return questions
	}

	for _, group := range p.groupSkills(skills) {
		if len(questions) >= p.maxSkillQuestions {
			break
		}
		questions = append(questions, QuestionSpec{
			ID:        fmt.Sprintf("skill-%s", group.Name),
			Category:  CategorySkill,
			Prompt:    skillGroupPrompt(group),
			KeyPoints: []string{"proficiency", "practical application", "depth of knowledge"},
			Source:    fmt.Sprintf("skills:%s", group.Name),
		})
	}
	return questions
}

// skillGroupPrompt phrases one question for a skill group, naming up to
// three of the group's skills.
func skillGroupPrompt(group SkillGroup) string {
	named := group.Skills
	if len(named) > 3 {
		named = named[:3]
	}
	listed := strings.Join(named, ", ")

	switch group.Name {
	case "programming":
		return fmt.Sprintf("I see you have experience with %s. Which of these are you most "+
			"proficient in, and can you describe a project where you used it effectively?", listed)
	case "web":
		return fmt.Sprintf("You've mentioned %s in your skills. Can you walk me through how "+
			"you would build a web application using these technologies?", listed)
	case "database":
		return fmt.Sprintf("Regarding your database skills (%s), how would you design a "+
			"database for a simple e-commerce application?", listed)
	default:
		return fmt.Sprintf("Your resume lists %s. How have you applied these skills, and "+
			"how do you go about deepening them?", listed)
	}
}

// ordinal converts 1 to "1st", 2 to "2nd", and so on.
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
