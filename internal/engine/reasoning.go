package engine

import (
	"fmt"
	"strings"

	"careerdecide/internal/types"
)

// buildReasoning produces the four-line explanation for a decision:
// an alignment statement, a score-vs-threshold statement, a strength or
// gap highlight, and a recommended next action.
func buildReasoning(decision types.Decision, score int, diff types.SkillDiff) []string {
	matchedCount := len(diff.Matched)
	requiredMissing := 0
	for _, m := range diff.Missing {
		if m.Required {
			requiredMissing++
		}
	}

	switch decision {
	case types.DecisionApply:
		highlight := "Profile demonstrates solid technical foundation"
		if len(diff.Extra) > 0 {
			highlight = fmt.Sprintf("Additional strengths: %s", joinSkillNames(extraNames(diff.Extra), 3))
		}
		return []string{
			fmt.Sprintf("Strong alignment with %d required technical skills", matchedCount),
			fmt.Sprintf("Readiness score of %d%% exceeds the 75%% threshold", score),
			highlight,
			"Proceed to interview preparation to maximize success",
		}

	case types.DecisionBorderline:
		return []string{
			fmt.Sprintf("Partial alignment with %d skills, but missing %d required skills", matchedCount, requiredMissing),
			fmt.Sprintf("Readiness score of %d%% is in the borderline range (60-75%%)", score),
			"Consider addressing key skill gaps before applying",
			"If urgent, apply but prepare to explain learning plan for missing skills",
		}

	default:
		highlight := "General technical depth needs improvement"
		if len(diff.Missing) > 0 {
			highlight = fmt.Sprintf("Priority gaps: %s", joinSkillNames(missingNames(diff.Missing), 3))
		}
		return []string{
			fmt.Sprintf("Missing %d critical required skills for this position", requiredMissing),
			fmt.Sprintf("Readiness score of %d%% is below the 60%% threshold", score),
			highlight,
			"Focus on skill development before applying to similar roles",
		}
	}
}

func extraNames(skills []types.ExtractedSkill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Skill)
	}
	return names
}

func missingNames(skills []types.JobSkill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Skill)
	}
	return names
}

func joinSkillNames(names []string, limit int) string {
	if len(names) > limit {
		names = names[:limit]
	}
	return strings.Join(names, ", ")
}
