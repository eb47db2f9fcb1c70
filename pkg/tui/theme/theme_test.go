package theme

import "testing"

func TestSkillStyleByClass(t *testing.T) {
	th := Default()
	tests := map[string]string{
		"Easy":       "easy",
		"Moreeffort": "more",
		"AChallenge": "challenge",
		"":           "other",
	}
	for class, want := range tests {
		got := th.Skill.For(class)
		var expect = th.Skill.Other
		switch want {
		case "easy":
			expect = th.Skill.Easy
		case "more":
			expect = th.Skill.MoreEffort
		case "challenge":
			expect = th.Skill.Challenge
		}
		if got.GetForeground() != expect.GetForeground() {
			t.Fatalf("For(%q) picked the wrong style", class)
		}
	}
}
