package interview

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
)

// RoleID identifies a target role with a predefined technical question pool.
type RoleID string

const (
	RolePythonDeveloper RoleID = "python_developer"
	RoleJavaDeveloper   RoleID = "java_developer"
	RoleMERNStack       RoleID = "mern_stack"
)

// RoleNone means no role was selected; the plan simply has no
// role-technical segment.
const RoleNone RoleID = ""

// QuestionBank holds the static role-technical question pools. These
// questions are predefined on purpose: no external generation call is
// ever made for this category, which bounds both latency and cost.
type QuestionBank struct {
	pools        map[RoleID][]string
	displayNames map[RoleID]string
}

// NewQuestionBank returns a bank with the built-in role pools.
func NewQuestionBank() *QuestionBank {
	return &QuestionBank{
		pools: map[RoleID][]string{
			RolePythonDeveloper: {
				"Explain the difference between deep copy and shallow copy in Python.",
				"What are decorators and how do you use them?",
				"Explain the concept of list comprehension.",
				"What is the use of the 'with' statement in Python?",
				"How do you manage virtual environments?",
				"What is the difference between '==' and 'is' in Python?",
				"Explain the Global Interpreter Lock (GIL) in Python.",
				"What are lambda functions and when would you use them?",
				"How do you handle exceptions in Python?",
				"What is the difference between a list and a tuple?",
			},
			RoleJavaDeveloper: {
				"What is the difference between JDK, JRE, and JVM?",
				"Explain the concept of inheritance in Java.",
				"What are checked and unchecked exceptions?",
				"How does garbage collection work in Java?",
				"Explain the use of the 'final' keyword.",
				"What is the difference between abstract class and interface?",
				"Explain method overloading vs method overriding.",
				"What are access modifiers in Java?",
				"How does multithreading work in Java?",
				"What is the difference between String, StringBuilder, and StringBuffer?",
			},
			RoleMERNStack: {
				"What is the difference between state and props in React?",
				"How does MongoDB differ from SQL databases?",
				"Explain the lifecycle methods in React.",
				"What is Express.js and how does it work?",
				"How do you handle authentication in a MERN app?",
				"What are React Hooks and why are they useful?",
				"Explain the concept of middleware in Express.js.",
				"What is JSX and how does it work?",
				"How do you optimize MongoDB queries?",
				"What is the difference between server-side and client-side rendering?",
			},
		},
		displayNames: map[RoleID]string{
			RolePythonDeveloper: "Python Developer",
			RoleJavaDeveloper:   "Java Developer",
			RoleMERNStack:       "MERN Stack Developer",
		},
	}
}

// bankFile is the on-disk override format: role id -> pool definition.
type bankFile map[string]struct {
	DisplayName string   `json:"display_name"`
	Questions   []string `json:"questions"`
}

// LoadFile merges role pools from a JSON file into the bank, replacing
// any built-in pool with the same role id. Pools are validated eagerly
// so a broken file surfaces at startup, not mid-interview.
func (b *QuestionBank) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigError{Component: "question bank", Reason: fmt.Sprintf("read %s", path), Err: err}
	}

	var file bankFile
	if err := json.Unmarshal(data, &file); err != nil {
		return &ConfigError{Component: "question bank", Reason: fmt.Sprintf("parse %s", path), Err: err}
	}

	for id, pool := range file {
		if len(pool.Questions) == 0 {
			return &ConfigError{Component: "question bank", Reason: fmt.Sprintf("role %q has an empty question pool", id)}
		}
		b.pools[RoleID(id)] = pool.Questions
		if pool.DisplayName != "" {
			b.displayNames[RoleID(id)] = pool.DisplayName
		}
	}
	return nil
}

// Roles lists the known role ids in sorted order.
func (b *QuestionBank) Roles() []RoleID {
	roles := make([]RoleID, 0, len(b.pools))
	for id := range b.pools {
		roles = append(roles, id)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// DisplayName returns the user-facing role name, falling back to the id.
func (b *QuestionBank) DisplayName(role RoleID) string {
	if name, ok := b.displayNames[role]; ok {
		return name
	}
	return string(role)
}

// PoolSize returns the number of questions registered for a role,
// zero for unknown roles.
func (b *QuestionBank) PoolSize(role RoleID) int {
	return len(b.pools[role])
}

// Validate checks that a role exists and its pool can supply k questions.
// This is a configuration error, not a runtime one; call it before a
// session starts.
func (b *QuestionBank) Validate(role RoleID, k int) error {
	pool, ok := b.pools[role]
	if !ok {
		return &ConfigError{
			Component: "question bank",
			Reason:    fmt.Sprintf("unknown role %q (available: %v)", role, b.Roles()),
		}
	}
	if k > len(pool) {
		return &ConfigError{
			Component: "question bank",
			Reason:    fmt.Sprintf("role %q pool has %d questions, %d requested", role, len(pool), k),
		}
	}
	return nil
}

// Sample selects k questions without replacement from the role's pool.
// The selection is a seeded shuffle, so a fixed seed reproduces the same
// sample. Question ids are stable per pool index, never duplicated
// within a sample.
func (b *QuestionBank) Sample(role RoleID, k int, seed int64) ([]QuestionSpec, error) {
	if err := b.Validate(role, k); err != nil {
		return nil, err
	}

	pool := b.pools[role]
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(pool))

	specs := make([]QuestionSpec, 0, k)
	for _, idx := range perm[:k] {
		specs = append(specs, QuestionSpec{
			ID:       fmt.Sprintf("%s-%d", role, idx+1),
			Category: CategoryRoleTechnical,
			Prompt:   pool[idx],
			KeyPoints: []string{
				"technical accuracy", "depth of explanation", "practical examples",
			},
			Source: string(role),
		})
	}
	return specs, nil
}
