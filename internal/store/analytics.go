package store

import (
	"math"
	"sort"

	"careerdecide/internal/types"
)

const (
	topSkillCount = 5

	// Minutes of manual screening assumed saved per evaluated candidate.
	minutesSavedPerCandidate = 5
)

// StudentAnalytics aggregates student-mode evaluation history from the
// store: decision counts, average readiness, the most common skill
// gaps, interview practice volume, and the trusted-feedback ratio.
func StudentAnalytics(s Store) (types.StudentAnalytics, error) {
	all, err := s.Evaluations()
	if err != nil {
		return types.StudentAnalytics{}, err
	}
	var evaluations []types.EvaluationResult
	for _, e := range all {
		if e.Mode == types.ModeStudent {
			evaluations = append(evaluations, e)
		}
	}

	attempts, err := s.Attempts()
	if err != nil {
		return types.StudentAnalytics{}, err
	}
	feedback, err := s.FeedbackEntries()
	if err != nil {
		return types.StudentAnalytics{}, err
	}

	analytics := types.StudentAnalytics{
		TotalEvaluations:  len(evaluations),
		InterviewAttempts: len(attempts),
		CommonSkillGaps:   []types.SkillCount{},
	}

	gapCounts := make(map[string]int)
	totalScore := 0
	for _, e := range evaluations {
		totalScore += e.ReadinessScore
		switch e.Decision {
		case types.DecisionApply:
			analytics.ApplyCount++
		case types.DecisionBorderline:
			analytics.BorderlineCount++
		case types.DecisionDoNotApply:
			analytics.DoNotApplyCount++
		}
		for _, gap := range e.SkillGaps {
			gapCounts[gap.Skill]++
		}
	}

	if len(evaluations) > 0 {
		analytics.AverageReadinessScore = roundRatio(totalScore, len(evaluations))
	}
	analytics.CommonSkillGaps = topCounts(gapCounts, topSkillCount)

	trusted := 0
	for _, f := range feedback {
		if f.Trusted {
			trusted++
		}
	}
	if len(feedback) > 0 {
		analytics.TrustScore = roundRatio(trusted*100, len(feedback))
	}

	return analytics, nil
}

// HRAnalytics aggregates hr-mode screening outcomes: candidate volume,
// how many cleared the interview bar, the most common missing skills,
// and the estimated screening time saved.
func HRAnalytics(s Store) (types.HRAnalytics, error) {
	all, err := s.Evaluations()
	if err != nil {
		return types.HRAnalytics{}, err
	}
	var evaluations []types.EvaluationResult
	for _, e := range all {
		if e.Mode == types.ModeHR {
			evaluations = append(evaluations, e)
		}
	}

	analytics := types.HRAnalytics{
		TotalCandidates:     len(evaluations),
		TimeSavedMinutes:    len(evaluations) * minutesSavedPerCandidate,
		CommonMissingSkills: []types.SkillCount{},
	}

	missingCounts := make(map[string]int)
	totalScore := 0
	for _, e := range evaluations {
		totalScore += e.ReadinessScore
		if e.Decision == types.DecisionApply {
			analytics.InterviewRecommended++
		}
		for _, m := range e.SkillDiff.Missing {
			missingCounts[m.Skill]++
		}
	}

	if len(evaluations) > 0 {
		analytics.InterviewRecommendedPercent = roundRatio(analytics.InterviewRecommended*100, len(evaluations))
		analytics.AverageReadinessScore = roundRatio(totalScore, len(evaluations))
	}
	analytics.CommonMissingSkills = topCounts(missingCounts, topSkillCount)

	return analytics, nil
}

// topCounts returns the top n entries by count, descending. Ties are
// broken alphabetically so output is stable.
func topCounts(counts map[string]int, n int) []types.SkillCount {
	entries := make([]types.SkillCount, 0, len(counts))
	for skill, count := range counts {
		entries = append(entries, types.SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Skill < entries[j].Skill
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func roundRatio(numerator, denominator int) int {
	return int(math.Round(float64(numerator) / float64(denominator)))
}
