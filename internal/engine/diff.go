package engine

import (
	"strings"

	"careerdecide/internal/types"
)

// Diff computes the matched/missing/extra partition between evidenced
// resume skills and declared job requirements. Name comparison is
// case-insensitive; each slice preserves its source extraction order.
func Diff(resumeSkills []types.ExtractedSkill, jobSkills []types.JobSkill) types.SkillDiff {
	resumeNames := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeNames[strings.ToLower(s.Skill)] = true
	}
	jobNames := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		jobNames[strings.ToLower(s.Skill)] = true
	}

	diff := types.SkillDiff{
		Matched: []types.ExtractedSkill{},
		Missing: []types.JobSkill{},
		Extra:   []types.ExtractedSkill{},
	}

	for _, s := range resumeSkills {
		if jobNames[strings.ToLower(s.Skill)] {
			diff.Matched = append(diff.Matched, s)
		} else {
			diff.Extra = append(diff.Extra, s)
		}
	}

	for _, s := range jobSkills {
		if !resumeNames[strings.ToLower(s.Skill)] {
			diff.Missing = append(diff.Missing, s)
		}
	}

	return diff
}
