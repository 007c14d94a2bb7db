package engine

import (
	"fmt"

	"careerdecide/internal/types"
)

const maxTechnicalQuestions = 3

// buildQuestions composes the interview practice set from matched-skill
// evidence and the top missing skill. Questions never reference a skill
// that is not either matched or the first missing entry.
func (e *Engine) buildQuestions(matched []types.ExtractedSkill, missing []types.JobSkill) []types.InterviewQuestion {
	var questions []types.InterviewQuestion

	technical := matched
	if len(technical) > maxTechnicalQuestions {
		technical = technical[:maxTechnicalQuestions]
	}
	for _, skill := range technical {
		questions = append(questions, types.InterviewQuestion{
			ID:           e.newID(),
			Type:         types.QuestionTechnical,
			Question:     fmt.Sprintf("Explain a challenging problem you solved using %s. Walk me through your approach and the outcome.", skill.Skill),
			Context:      fmt.Sprintf("Based on your experience: %q", skill.Evidence),
			RelatedSkill: skill.Skill,
		})
	}

	questions = append(questions, types.InterviewQuestion{
		ID:       e.newID(),
		Type:     types.QuestionBehavioral,
		Question: "Tell me about a time you had to learn a new technology quickly to meet a deadline. How did you approach it?",
		Context:  "Assesses adaptability and learning velocity",
	})
	questions = append(questions, types.InterviewQuestion{
		ID:       e.newID(),
		Type:     types.QuestionBehavioral,
		Question: "Describe a situation where you disagreed with a technical decision. How did you handle it?",
		Context:  "Evaluates communication and collaboration skills",
	})

	if len(matched) > 0 {
		questions = append(questions, types.InterviewQuestion{
			ID:       e.newID(),
			Type:     types.QuestionResume,
			Question: "Walk me through your most impactful project. What was your role and what did you learn?",
			Context:  "Evaluates project experience and self-reflection",
		})
	}

	if len(missing) > 0 {
		topMissing := missing[0]
		questions = append(questions, types.InterviewQuestion{
			ID:           e.newID(),
			Type:         types.QuestionWeakArea,
			Question:     fmt.Sprintf("This role requires %s. How would you approach learning it quickly if you were selected?", topMissing.Skill),
			Context:      "Probes awareness of gaps and learning strategy",
			RelatedSkill: topMissing.Skill,
		})
	}

	return questions
}
