package store

import "careerdecide/internal/types"

// ATSRecord flattens an evaluation into the record shape consumed by
// applicant-tracking systems. The interview recommendation mirrors the
// APPLY decision.
func ATSRecord(e types.EvaluationResult, candidateID, jobRoleID string) types.ATSExport {
	matched := make([]string, 0, len(e.SkillDiff.Matched))
	for _, s := range e.SkillDiff.Matched {
		matched = append(matched, s.Skill)
	}
	missing := make([]string, 0, len(e.SkillDiff.Missing))
	for _, s := range e.SkillDiff.Missing {
		missing = append(missing, s.Skill)
	}

	return types.ATSExport{
		CandidateID:             candidateID,
		JobID:                   jobRoleID,
		ReadinessScore:          e.ReadinessScore,
		Decision:                e.Decision,
		MatchedSkills:           matched,
		MissingSkills:           missing,
		InterviewRecommendation: e.Decision == types.DecisionApply,
	}
}
