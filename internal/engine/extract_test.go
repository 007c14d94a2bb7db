package engine

import (
	"strings"
	"testing"

	"careerdecide/internal/types"
)

func TestExtractResumeSkills(t *testing.T) {
	tests := []struct {
		name       string
		resumeText string
		expected   []string
	}{
		{
			name:       "empty text yields no skills",
			resumeText: "",
			expected:   nil,
		},
		{
			name:       "pattern-free text yields no skills",
			resumeText: "I enjoy long walks and reading novels in my spare time.",
			expected:   nil,
		},
		{
			name:       "skills reported in taxonomy order not text order",
			resumeText: "Deployed services with Docker. Wrote data pipelines in Python.",
			expected:   []string{"Python", "Docker"},
		},
		{
			name:       "aliases map to canonical names",
			resumeText: "Managed k8s clusters and postgres databases at my last company.",
			expected:   []string{"SQL", "Kubernetes"},
		},
		{
			name:       "no inference from related terms",
			resumeText: "I enjoy cloud computing and hope to study programming someday.",
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := ExtractResumeSkills(tt.resumeText)
			if len(skills) != len(tt.expected) {
				t.Fatalf("Expected %d skills, got %d: %+v", len(tt.expected), len(skills), skills)
			}
			for i, want := range tt.expected {
				if skills[i].Skill != want {
					t.Errorf("Expected skill[%d] = %q, got %q", i, want, skills[i].Skill)
				}
			}
		})
	}
}

func TestExtractResumeSkillsEvidence(t *testing.T) {
	resumeText := "Certified in AWS cloud architecture.\nBuilt a REST API with Flask for my thesis project."

	skills := ExtractResumeSkills(resumeText)

	bySkill := make(map[string]types.ExtractedSkill)
	for _, s := range skills {
		bySkill[s.Skill] = s
	}

	aws, ok := bySkill["AWS"]
	if !ok {
		t.Fatalf("Expected AWS to be extracted, got %+v", skills)
	}
	if aws.Source != types.SourceCertifications {
		t.Errorf("Expected AWS source 'certifications', got %q", aws.Source)
	}
	if !strings.Contains(strings.ToLower(aws.Evidence), "aws") {
		t.Errorf("Evidence must contain a literal pattern match, got %q", aws.Evidence)
	}

	python, ok := bySkill["Python"]
	if !ok {
		t.Fatalf("Expected Python (via flask alias) to be extracted, got %+v", skills)
	}
	if python.Source != types.SourceProjects {
		t.Errorf("Expected Python source 'projects', got %q", python.Source)
	}
}

func TestExtractResumeSkillsDeduplicates(t *testing.T) {
	// Both django and flask are Python patterns; only one entry may appear.
	resumeText := "Developed web backends with django. Also shipped microservices using flask."

	skills := ExtractResumeSkills(resumeText)

	count := 0
	for _, s := range skills {
		if s.Skill == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one Python entry, got %d", count)
	}
}

func TestExtractResumeSkillsEvidenceTruncation(t *testing.T) {
	long := "Built a data analysis platform in Python " + strings.Repeat("with many features ", 20)
	skills := ExtractResumeSkills(long)

	if len(skills) == 0 {
		t.Fatal("Expected at least one skill")
	}
	for _, s := range skills {
		if len([]rune(s.Evidence)) > maxEvidenceLength {
			t.Errorf("Evidence for %s exceeds %d chars: %d", s.Skill, maxEvidenceLength, len(s.Evidence))
		}
	}
}

func TestExtractJobSkills(t *testing.T) {
	tests := []struct {
		name     string
		jobText  string
		expected []types.JobSkill
	}{
		{
			name:     "empty description yields no requirements",
			jobText:  "",
			expected: nil,
		},
		{
			name:    "requirements default to required",
			jobText: "We are hiring an engineer experienced with Python and SQL databases.",
			expected: []types.JobSkill{
				{Skill: "Python", Required: true},
				{Skill: "SQL", Required: true},
			},
		},
		{
			name:    "preferred marker in context window downgrades requirement",
			jobText: "Docker experience is nice to have for this position.",
			expected: []types.JobSkill{
				{Skill: "Docker", Required: false},
			},
		},
		{
			name:    "bonus marker counts as preferred",
			jobText: "Knowing GraphQL is a bonus.",
			expected: []types.JobSkill{
				{Skill: "GraphQL", Required: false},
			},
		},
		{
			name:    "case-insensitive keyword containment",
			jobText: "Candidates must be fluent in TYPESCRIPT.",
			expected: []types.JobSkill{
				{Skill: "TypeScript", Required: true},
			},
		},
	}

	// Whole-description required/preferred section flags from earlier
	// revisions are intentionally not part of the output; only the local
	// context window around each keyword's first occurrence matters.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := ExtractJobSkills(tt.jobText)
			if len(skills) != len(tt.expected) {
				t.Fatalf("Expected %d skills, got %d: %+v", len(tt.expected), len(skills), skills)
			}
			for i, want := range tt.expected {
				if skills[i] != want {
					t.Errorf("Expected skill[%d] = %+v, got %+v", i, want, skills[i])
				}
			}
		})
	}
}

func TestExtractJobSkillsContextWindow(t *testing.T) {
	// The preferred section sits beyond the 50 chars following "Python",
	// so Python stays required while Rust is downgraded.
	jobText := "Required: Python for all backend services written and maintained here. Preferred but not mandatory: Rust."

	skills := ExtractJobSkills(jobText)

	byName := make(map[string]bool)
	for _, s := range skills {
		byName[s.Skill] = s.Required
	}
	if required, ok := byName["Python"]; !ok || !required {
		t.Errorf("Expected Python required, got %+v", skills)
	}
	if required, ok := byName["Rust"]; !ok || required {
		t.Errorf("Expected Rust preferred, got %+v", skills)
	}
}

func BenchmarkExtractResumeSkills(b *testing.B) {
	resumeText := strings.Repeat("Built services with Python, Docker and Kubernetes. Worked on React frontends at my company. ", 10)
	for b.Loop() {
		ExtractResumeSkills(resumeText)
	}
}
