package engine

import (
	"testing"

	"careerdecide/internal/types"
)

func resumeSkill(name string) types.ExtractedSkill {
	return types.ExtractedSkill{Skill: name, Evidence: "evidence for " + name, Source: types.SourceSkills}
}

func TestDiffPartition(t *testing.T) {
	resumeSkills := []types.ExtractedSkill{
		resumeSkill("Python"),
		resumeSkill("Docker"),
		resumeSkill("Git"),
	}
	jobSkills := []types.JobSkill{
		{Skill: "Python", Required: true},
		{Skill: "AWS", Required: true},
		{Skill: "Docker", Required: false},
	}

	diff := Diff(resumeSkills, jobSkills)

	if len(diff.Matched) != 2 || diff.Matched[0].Skill != "Python" || diff.Matched[1].Skill != "Docker" {
		t.Errorf("Expected matched [Python Docker], got %+v", diff.Matched)
	}
	if len(diff.Missing) != 1 || diff.Missing[0].Skill != "AWS" {
		t.Errorf("Expected missing [AWS], got %+v", diff.Missing)
	}
	if len(diff.Extra) != 1 || diff.Extra[0].Skill != "Git" {
		t.Errorf("Expected extra [Git], got %+v", diff.Extra)
	}

	// Partition invariant: matched + extra covers the resume side, and
	// matched names + missing names cover the job side.
	if len(diff.Matched)+len(diff.Extra) != len(resumeSkills) {
		t.Errorf("matched+extra (%d) must equal resume skill count (%d)", len(diff.Matched)+len(diff.Extra), len(resumeSkills))
	}
	if len(diff.Matched)+len(diff.Missing) != len(jobSkills) {
		t.Errorf("matched+missing (%d) must equal job skill count (%d)", len(diff.Matched)+len(diff.Missing), len(jobSkills))
	}
}

func TestDiffCaseInsensitive(t *testing.T) {
	diff := Diff(
		[]types.ExtractedSkill{resumeSkill("PYTHON")},
		[]types.JobSkill{{Skill: "python", Required: true}},
	)

	if len(diff.Matched) != 1 {
		t.Fatalf("Expected case-insensitive match, got %+v", diff)
	}
	// Evidence and original casing are preserved from the resume side.
	if diff.Matched[0].Skill != "PYTHON" {
		t.Errorf("Expected resume-side record preserved, got %+v", diff.Matched[0])
	}
}

func TestDiffEmptyInputs(t *testing.T) {
	diff := Diff(nil, nil)
	if len(diff.Matched) != 0 || len(diff.Missing) != 0 || len(diff.Extra) != 0 {
		t.Errorf("Expected empty partition, got %+v", diff)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		matched   []string
		missing   []types.JobSkill
		extra     int
		jobSkills []types.JobSkill
		expected  int
	}{
		{
			name:      "empty job list gives neutral 50",
			jobSkills: nil,
			expected:  50,
		},
		{
			name:    "full required coverage",
			matched: []string{"Python", "SQL"},
			jobSkills: []types.JobSkill{
				{Skill: "Python", Required: true},
				{Skill: "SQL", Required: true},
			},
			// required 80, no preferred subset flat 10
			expected: 90,
		},
		{
			name:    "half required coverage",
			matched: []string{"Python"},
			jobSkills: []types.JobSkill{
				{Skill: "Python", Required: true},
				{Skill: "SQL", Required: true},
			},
			// 40 + 10
			expected: 50,
		},
		{
			name: "no matches at all",
			jobSkills: []types.JobSkill{
				{Skill: "Python", Required: true},
				{Skill: "SQL", Required: true},
			},
			// 0 + 10
			expected: 10,
		},
		{
			name:    "preferred-only job list",
			matched: []string{"Docker"},
			jobSkills: []types.JobSkill{
				{Skill: "Docker", Required: false},
				{Skill: "AWS", Required: false},
			},
			// no required subset flat 40, preferred (1/2)*20
			expected: 50,
		},
		{
			name:    "extra bonus is capped at 10",
			matched: []string{"Python"},
			extra:   8,
			jobSkills: []types.JobSkill{
				{Skill: "Python", Required: true},
			},
			// 80 + 10 + capped 10
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := types.SkillDiff{}
			for _, name := range tt.matched {
				diff.Matched = append(diff.Matched, resumeSkill(name))
			}
			for i := 0; i < tt.extra; i++ {
				diff.Extra = append(diff.Extra, resumeSkill("Extra"))
			}
			diff.Missing = tt.missing

			score := Score(diff, tt.jobSkills)
			if score != tt.expected {
				t.Errorf("Expected score %d, got %d", tt.expected, score)
			}
			if score < 0 || score > 100 {
				t.Errorf("Score out of bounds: %d", score)
			}
		})
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		score    int
		expected types.Decision
	}{
		{0, types.DecisionDoNotApply},
		{59, types.DecisionDoNotApply},
		{60, types.DecisionBorderline},
		{74, types.DecisionBorderline},
		{75, types.DecisionApply},
		{100, types.DecisionApply},
	}

	for _, tt := range tests {
		if got := Decide(tt.score); got != tt.expected {
			t.Errorf("Decide(%d): expected %s, got %s", tt.score, tt.expected, got)
		}
	}
}

func BenchmarkScore(b *testing.B) {
	diff := types.SkillDiff{
		Matched: []types.ExtractedSkill{resumeSkill("Python"), resumeSkill("SQL")},
		Extra:   []types.ExtractedSkill{resumeSkill("Git")},
	}
	jobSkills := []types.JobSkill{
		{Skill: "Python", Required: true},
		{Skill: "SQL", Required: true},
		{Skill: "AWS", Required: false},
	}
	for b.Loop() {
		Score(diff, jobSkills)
	}
}
