package store

import (
	"testing"
	"time"

	"careerdecide/internal/errors"
	"careerdecide/internal/types"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}

func evaluation(id string, mode types.Mode, decision types.Decision, score int, gaps ...string) types.EvaluationResult {
	e := types.EvaluationResult{
		ID:             id,
		Mode:           mode,
		Decision:       decision,
		ReadinessScore: score,
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, gap := range gaps {
		e.SkillGaps = append(e.SkillGaps, types.SkillGap{Skill: gap, Importance: types.ImportanceHigh})
		e.SkillDiff.Missing = append(e.SkillDiff.Missing, types.JobSkill{Skill: gap, Required: true})
	}
	return e
}

func TestFileStoreEvaluations(t *testing.T) {
	s := newTestStore(t)

	first := evaluation("eval-1", types.ModeStudent, types.DecisionApply, 82)
	second := evaluation("eval-2", types.ModeHR, types.DecisionDoNotApply, 30)

	if err := s.SaveEvaluation(first); err != nil {
		t.Fatalf("SaveEvaluation failed: %v", err)
	}
	if err := s.SaveEvaluation(second); err != nil {
		t.Fatalf("SaveEvaluation failed: %v", err)
	}

	all, err := s.Evaluations()
	if err != nil {
		t.Fatalf("Evaluations failed: %v", err)
	}
	if len(all) != 2 || all[0].ID != "eval-1" || all[1].ID != "eval-2" {
		t.Errorf("Expected append order [eval-1 eval-2], got %+v", all)
	}

	got, err := s.EvaluationByID("eval-2")
	if err != nil {
		t.Fatalf("EvaluationByID failed: %v", err)
	}
	if got.ReadinessScore != 30 {
		t.Errorf("Expected score 30, got %d", got.ReadinessScore)
	}
}

func TestFileStoreEvaluationNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.EvaluationByID("missing")
	if err == nil {
		t.Fatal("Expected error for missing evaluation")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeRecordNotFound {
		t.Errorf("Expected RECORD_NOT_FOUND, got %v", err)
	}
}

func TestFileStoreAttempts(t *testing.T) {
	s := newTestStore(t)

	attempts := []types.InterviewAttempt{
		{EvaluationID: "eval-1", QuestionID: "q1", Answer: "first answer"},
		{EvaluationID: "eval-2", QuestionID: "q2", Answer: "other answer"},
		{EvaluationID: "eval-1", QuestionID: "q3", Answer: "second answer"},
	}
	for _, a := range attempts {
		if err := s.SaveAttempt(a); err != nil {
			t.Fatalf("SaveAttempt failed: %v", err)
		}
	}

	forFirst, err := s.AttemptsForEvaluation("eval-1")
	if err != nil {
		t.Fatalf("AttemptsForEvaluation failed: %v", err)
	}
	if len(forFirst) != 2 || forFirst[0].QuestionID != "q1" || forFirst[1].QuestionID != "q3" {
		t.Errorf("Expected attempts [q1 q3] for eval-1, got %+v", forFirst)
	}
}

func TestFileStoreCandidates(t *testing.T) {
	s := newTestStore(t)

	role := types.JobRole{ID: "role-1", Title: "Backend Engineer", Description: "Python services"}
	if err := s.SaveJobRole(role); err != nil {
		t.Fatalf("SaveJobRole failed: %v", err)
	}

	candidates := []types.Candidate{
		{ID: "cand-1", JobRoleID: "role-1", Name: "A", ResumeText: "Python"},
		{ID: "cand-2", JobRoleID: "role-1", Name: "B", ResumeText: "SQL"},
	}
	if err := s.SaveCandidates("role-1", candidates); err != nil {
		t.Fatalf("SaveCandidates failed: %v", err)
	}

	got, err := s.CandidatesForJob("role-1")
	if err != nil {
		t.Fatalf("CandidatesForJob failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(got))
	}

	empty, err := s.CandidatesForJob("role-2")
	if err != nil {
		t.Fatalf("CandidatesForJob failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no candidates for unknown role, got %+v", empty)
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if err := first.SaveEvaluation(evaluation("eval-1", types.ModeStudent, types.DecisionApply, 80)); err != nil {
		t.Fatalf("SaveEvaluation failed: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	got, err := second.EvaluationByID("eval-1")
	if err != nil {
		t.Fatalf("Expected record to survive reopen: %v", err)
	}
	if got.Decision != types.DecisionApply {
		t.Errorf("Expected APPLY, got %s", got.Decision)
	}
}

func TestStudentAnalytics(t *testing.T) {
	s := newTestStore(t)

	seed := []types.EvaluationResult{
		evaluation("e1", types.ModeStudent, types.DecisionApply, 80, "AWS"),
		evaluation("e2", types.ModeStudent, types.DecisionBorderline, 65, "AWS", "Docker"),
		evaluation("e3", types.ModeStudent, types.DecisionDoNotApply, 20, "AWS", "Python"),
		// HR evaluations are excluded from the student view.
		evaluation("e4", types.ModeHR, types.DecisionApply, 90),
	}
	for _, e := range seed {
		if err := s.SaveEvaluation(e); err != nil {
			t.Fatalf("SaveEvaluation failed: %v", err)
		}
	}
	if err := s.SaveAttempt(types.InterviewAttempt{EvaluationID: "e1", QuestionID: "q1"}); err != nil {
		t.Fatalf("SaveAttempt failed: %v", err)
	}
	for _, trusted := range []bool{true, true, false} {
		if err := s.SaveFeedback(types.Feedback{EvaluationID: "e1", Trusted: trusted}); err != nil {
			t.Fatalf("SaveFeedback failed: %v", err)
		}
	}

	analytics, err := StudentAnalytics(s)
	if err != nil {
		t.Fatalf("StudentAnalytics failed: %v", err)
	}

	if analytics.TotalEvaluations != 3 {
		t.Errorf("Expected 3 evaluations, got %d", analytics.TotalEvaluations)
	}
	if analytics.ApplyCount != 1 || analytics.BorderlineCount != 1 || analytics.DoNotApplyCount != 1 {
		t.Errorf("Unexpected decision counts: %+v", analytics)
	}
	// round((80+65+20)/3) = round(55.0)
	if analytics.AverageReadinessScore != 55 {
		t.Errorf("Expected average 55, got %d", analytics.AverageReadinessScore)
	}
	if analytics.InterviewAttempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", analytics.InterviewAttempts)
	}
	// round(2/3*100)
	if analytics.TrustScore != 67 {
		t.Errorf("Expected trust score 67, got %d", analytics.TrustScore)
	}
	if len(analytics.CommonSkillGaps) == 0 || analytics.CommonSkillGaps[0].Skill != "AWS" || analytics.CommonSkillGaps[0].Count != 3 {
		t.Errorf("Expected AWS as the top gap with count 3, got %+v", analytics.CommonSkillGaps)
	}
}

func TestStudentAnalyticsEmptyStore(t *testing.T) {
	analytics, err := StudentAnalytics(newTestStore(t))
	if err != nil {
		t.Fatalf("StudentAnalytics failed: %v", err)
	}
	if analytics.TotalEvaluations != 0 || analytics.AverageReadinessScore != 0 || analytics.TrustScore != 0 {
		t.Errorf("Expected zero analytics for empty store, got %+v", analytics)
	}
}

func TestHRAnalytics(t *testing.T) {
	s := newTestStore(t)

	seed := []types.EvaluationResult{
		evaluation("e1", types.ModeHR, types.DecisionApply, 85, "Kubernetes"),
		evaluation("e2", types.ModeHR, types.DecisionApply, 78, "Kubernetes", "AWS"),
		evaluation("e3", types.ModeHR, types.DecisionDoNotApply, 25, "Kubernetes"),
		// Student evaluations are excluded from the HR view.
		evaluation("e4", types.ModeStudent, types.DecisionApply, 90),
	}
	for _, e := range seed {
		if err := s.SaveEvaluation(e); err != nil {
			t.Fatalf("SaveEvaluation failed: %v", err)
		}
	}

	analytics, err := HRAnalytics(s)
	if err != nil {
		t.Fatalf("HRAnalytics failed: %v", err)
	}

	if analytics.TotalCandidates != 3 {
		t.Errorf("Expected 3 candidates, got %d", analytics.TotalCandidates)
	}
	if analytics.InterviewRecommended != 2 {
		t.Errorf("Expected 2 recommended, got %d", analytics.InterviewRecommended)
	}
	// round(2/3*100)
	if analytics.InterviewRecommendedPercent != 67 {
		t.Errorf("Expected 67%%, got %d", analytics.InterviewRecommendedPercent)
	}
	// round((85+78+25)/3) = round(62.67)
	if analytics.AverageReadinessScore != 63 {
		t.Errorf("Expected average 63, got %d", analytics.AverageReadinessScore)
	}
	if analytics.TimeSavedMinutes != 15 {
		t.Errorf("Expected 15 minutes saved, got %d", analytics.TimeSavedMinutes)
	}
	if len(analytics.CommonMissingSkills) == 0 || analytics.CommonMissingSkills[0].Skill != "Kubernetes" || analytics.CommonMissingSkills[0].Count != 3 {
		t.Errorf("Expected Kubernetes as top missing skill with count 3, got %+v", analytics.CommonMissingSkills)
	}
}

func TestATSRecord(t *testing.T) {
	e := types.EvaluationResult{
		ID:             "eval-1",
		Decision:       types.DecisionApply,
		ReadinessScore: 82,
		SkillDiff: types.SkillDiff{
			Matched: []types.ExtractedSkill{{Skill: "React"}, {Skill: "TypeScript"}},
			Missing: []types.JobSkill{{Skill: "AWS"}},
		},
	}

	record := ATSRecord(e, "cand-1", "role-1")

	if record.CandidateID != "cand-1" || record.JobID != "role-1" {
		t.Errorf("Unexpected identifiers: %+v", record)
	}
	if !record.InterviewRecommendation {
		t.Error("APPLY decision must set the interview recommendation")
	}
	if len(record.MatchedSkills) != 2 || record.MatchedSkills[0] != "React" {
		t.Errorf("Unexpected matched skills: %v", record.MatchedSkills)
	}
	if len(record.MissingSkills) != 1 || record.MissingSkills[0] != "AWS" {
		t.Errorf("Unexpected missing skills: %v", record.MissingSkills)
	}
}
