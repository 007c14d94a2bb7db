package engine

import (
	"math"
	"strings"

	"careerdecide/internal/types"
)

const shortAnswerWordCount = 50

// EvaluateAnswer rates a free-text interview answer along three proxy
// axes. The question text is informational only; scoring looks at the
// answer alone. Technical depth and relevance include a bounded random
// perturbation drawn from the engine's random source.
func (e *Engine) EvaluateAnswer(question, answer string) types.AnswerFeedback {
	wordCount := len(strings.Fields(answer))
	hasStructure := strings.Contains(answer, "because") ||
		strings.Contains(answer, "therefore") ||
		strings.Contains(answer, "first")
	hasExample := strings.Contains(answer, "example") ||
		strings.Contains(answer, "project") ||
		strings.Contains(answer, "when I")

	structureBonus := 0.0
	if hasStructure {
		structureBonus = 20
	}
	exampleBonus := 0.0
	if hasExample {
		exampleBonus = 25
	}

	clarity := clamp(40+float64(wordCount)*0.5+structureBonus, 30, 100)
	technicalDepth := clamp(35+float64(wordCount)*0.3+e.randFloat()*20, 25, 100)
	relevance := clamp(50+exampleBonus+e.randFloat()*15, 40, 100)

	overall := int(math.Round((clarity + technicalDepth + relevance) / 3))

	var suggestions []string
	if wordCount < shortAnswerWordCount {
		suggestions = append(suggestions, "Provide more detail and specific examples")
	}
	if !hasStructure {
		suggestions = append(suggestions, "Structure your answer with clear beginning, middle, and end")
	}
	if !hasExample {
		suggestions = append(suggestions, "Include a concrete example from your experience")
	}
	if overall < 70 {
		suggestions = append(suggestions, "Practice STAR method (Situation, Task, Action, Result)")
	}

	return types.AnswerFeedback{
		Clarity:        int(math.Round(clarity)),
		TechnicalDepth: int(math.Round(technicalDepth)),
		Relevance:      int(math.Round(relevance)),
		OverallScore:   overall,
		Suggestions:    suggestions,
	}
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
