package interview

import "testing"

func TestGroupSkillsByKeyword(t *testing.T) {
	skills := []string{"Python", "React", "PostgreSQL", "Go", "Figma"}
	groups := GroupSkillsByKeyword(skills)

	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d: %+v", len(groups), groups)
	}

	want := map[string][]string{
		"programming": {"Python", "Go"},
		"web":         {"React"},
		"database":    {"PostgreSQL"},
		"other":       {"Figma"},
	}

	for _, group := range groups {
		expected, ok := want[group.Name]
		if !ok {
			t.Errorf("unexpected group %q", group.Name)
			continue
		}
		if len(group.Skills) != len(expected) {
			t.Errorf("group %q = %v, want %v", group.Name, group.Skills, expected)
			continue
		}
		for i, skill := range expected {
			if group.Skills[i] != skill {
				t.Errorf("group %q = %v, want %v", group.Name, group.Skills, expected)
				break
			}
		}
	}
}

func TestGroupSkillsByKeyword_GroupOrderIsFixed(t *testing.T) {
	groups := GroupSkillsByKeyword([]string{"MongoDB", "Java", "CSS"})

	wantOrder := []string{"programming", "web", "database"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("expected %d groups, got %d", len(wantOrder), len(groups))
	}
	for i, name := range wantOrder {
		if groups[i].Name != name {
			t.Errorf("group[%d] = %q, want %q", i, groups[i].Name, name)
		}
	}
}

func TestGroupSkillsByKeyword_Empty(t *testing.T) {
	if groups := GroupSkillsByKeyword(nil); groups != nil {
		t.Errorf("expected no groups for empty skills, got %+v", groups)
	}
}
