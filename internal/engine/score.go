package engine

import (
	"math"
	"strings"

	"careerdecide/internal/types"
)

// Decision thresholds and scoring weights. Fixed constants, not
// configurable at runtime.
const (
	ApplyThreshold      = 75
	BorderlineThreshold = 60

	requiredWeight  = 80
	preferredWeight = 20

	neutralScore         = 50
	noRequiredFlatScore  = 40
	noPreferredFlatScore = 10
	maxExtraBonus        = 10
	extraBonusPerSkill   = 2
)

// Score converts a skill diff into a 0-100 readiness score. Required
// coverage dominates (80 points) over preferred coverage (20 points);
// skills outside the job's list earn at most a 10-point bonus, so extra
// breadth alone cannot produce a passing score. An empty job list
// yields a fixed neutral 50: fit cannot be assessed without any
// requirements.
func Score(diff types.SkillDiff, jobSkills []types.JobSkill) int {
	if len(jobSkills) == 0 {
		return neutralScore
	}

	var required, preferred []types.JobSkill
	for _, s := range jobSkills {
		if s.Required {
			required = append(required, s)
		} else {
			preferred = append(preferred, s)
		}
	}

	matchedRequired := countMatched(diff.Matched, required)
	matchedPreferred := countMatched(diff.Matched, preferred)

	requiredScore := float64(noRequiredFlatScore)
	if len(required) > 0 {
		requiredScore = float64(matchedRequired) / float64(len(required)) * requiredWeight
	}

	preferredScore := float64(noPreferredFlatScore)
	if len(preferred) > 0 {
		preferredScore = float64(matchedPreferred) / float64(len(preferred)) * preferredWeight
	}

	extraBonus := len(diff.Extra) * extraBonusPerSkill
	if extraBonus > maxExtraBonus {
		extraBonus = maxExtraBonus
	}

	score := int(math.Round(requiredScore + preferredScore + float64(extraBonus)))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func countMatched(matched []types.ExtractedSkill, subset []types.JobSkill) int {
	names := make(map[string]bool, len(subset))
	for _, s := range subset {
		names[strings.ToLower(s.Skill)] = true
	}
	count := 0
	for _, m := range matched {
		if names[strings.ToLower(m.Skill)] {
			count++
		}
	}
	return count
}

// Decide maps a readiness score to a discrete decision.
func Decide(score int) types.Decision {
	switch {
	case score >= ApplyThreshold:
		return types.DecisionApply
	case score >= BorderlineThreshold:
		return types.DecisionBorderline
	default:
		return types.DecisionDoNotApply
	}
}
