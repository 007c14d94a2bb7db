package engine

import (
	"regexp"
	"strings"

	"careerdecide/internal/types"
)

const maxEvidenceLength = 150

var evidenceSplitter = regexp.MustCompile(`[.!?\n]+`)

// ExtractResumeSkills scans resume text against the skill taxonomy and
// returns one evidence-backed entry per matched skill. A skill is only
// recorded when a literal pattern match exists in the text; nothing is
// inferred from related terms. Output order follows the taxonomy.
func ExtractResumeSkills(resumeText string) []types.ExtractedSkill {
	units := evidenceUnits(resumeText)

	var skills []types.ExtractedSkill
	seen := make(map[string]bool)

	for _, entry := range resumeTaxonomy {
		for _, pattern := range entry.patterns {
			if !pattern.MatchString(resumeText) {
				continue
			}
			if unit, ok := findEvidence(entry.patterns, units); ok && !seen[entry.name] {
				seen[entry.name] = true
				skills = append(skills, types.ExtractedSkill{
					Skill:    entry.name,
					Evidence: truncate(strings.TrimSpace(unit), maxEvidenceLength),
					Source:   classifySource(unit),
				})
			}
			break
		}
	}

	return skills
}

// evidenceUnits splits text into candidate evidence units on sentence
// punctuation or newlines, dropping trivial fragments.
func evidenceUnits(text string) []string {
	var units []string
	for _, unit := range evidenceSplitter.Split(text, -1) {
		if len(strings.TrimSpace(unit)) > 10 {
			units = append(units, unit)
		}
	}
	return units
}

// findEvidence returns the first unit matching any of the skill's patterns.
func findEvidence(patterns []*regexp.Regexp, units []string) (string, bool) {
	for _, unit := range units {
		for _, pattern := range patterns {
			if pattern.MatchString(unit) {
				return unit, true
			}
		}
	}
	return "", false
}

// classifySource determines skill provenance from keyword families in
// the evidence unit. The default bucket is the skills section.
func classifySource(unit string) types.SkillSource {
	lower := strings.ToLower(unit)
	switch {
	case strings.Contains(lower, "project") || strings.Contains(lower, "built") || strings.Contains(lower, "developed"):
		return types.SourceProjects
	case strings.Contains(lower, "worked") || strings.Contains(lower, "company") || strings.Contains(lower, "intern"):
		return types.SourceExperience
	case strings.Contains(lower, "certified") || strings.Contains(lower, "certification"):
		return types.SourceCertifications
	default:
		return types.SourceSkills
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
