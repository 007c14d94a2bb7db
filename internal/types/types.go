package types

import "time"

// Mode selects which audience an evaluation is produced for.
type Mode string

const (
	ModeStudent Mode = "student"
	ModeHR      Mode = "hr"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeStudent || m == ModeHR
}

// Decision is the discrete outcome of an evaluation.
type Decision string

const (
	DecisionApply      Decision = "APPLY"
	DecisionBorderline Decision = "BORDERLINE"
	DecisionDoNotApply Decision = "DO_NOT_APPLY"
)

// SkillSource classifies where in a resume a skill claim was evidenced.
type SkillSource string

const (
	SourceSkills         SkillSource = "skills"
	SourceProjects       SkillSource = "projects"
	SourceExperience     SkillSource = "experience"
	SourceCertifications SkillSource = "certifications"
)

// ExtractedSkill is a skill claim backed by a verbatim snippet of resume text.
type ExtractedSkill struct {
	Skill    string      `json:"skill"`
	Evidence string      `json:"evidence"`
	Source   SkillSource `json:"source"`
}

// JobSkill is a skill requirement extracted from a job description.
// Required is false only when the surrounding text marks it as preferred.
type JobSkill struct {
	Skill    string `json:"skill"`
	Required bool   `json:"required"`
}

// SkillDiff is the three-way partition between evidenced resume skills
// and declared job requirements.
type SkillDiff struct {
	Matched []ExtractedSkill `json:"matched"`
	Missing []JobSkill       `json:"missing"`
	Extra   []ExtractedSkill `json:"extra"`
}

// GapImportance ranks how urgently a missing skill should be addressed.
type GapImportance string

const (
	ImportanceHigh   GapImportance = "high"
	ImportanceMedium GapImportance = "medium"
	ImportanceLow    GapImportance = "low"
)

// SkillGap describes one missing skill together with learning-path guidance.
type SkillGap struct {
	Skill          string        `json:"skill"`
	Importance     GapImportance `json:"importance"`
	WhyMissing     string        `json:"whyMissing"`
	WhatToLearn    string        `json:"whatToLearn"`
	HowToPractice  string        `json:"howToPractice"`
	ResumeAddition string        `json:"resumeAddition"`
}

// QuestionType classifies interview practice questions.
type QuestionType string

const (
	QuestionTechnical  QuestionType = "technical"
	QuestionBehavioral QuestionType = "behavioral"
	QuestionResume     QuestionType = "resume"
	QuestionWeakArea   QuestionType = "weak-area"
)

// InterviewQuestion is a practice question built from matched-skill
// evidence or the top missing skill.
type InterviewQuestion struct {
	ID           string       `json:"id"`
	Type         QuestionType `json:"type"`
	Question     string       `json:"question"`
	Context      string       `json:"context,omitempty"`
	RelatedSkill string       `json:"relatedSkill,omitempty"`
}

// EvaluationResult is the immutable record produced by one evaluation run.
type EvaluationResult struct {
	ID                    string              `json:"id"`
	Mode                  Mode                `json:"mode"`
	CandidateName         string              `json:"candidateName,omitempty"`
	Decision              Decision            `json:"decision"`
	ReadinessScore        int                 `json:"readinessScore"`
	ExtractedResumeSkills []ExtractedSkill    `json:"extractedResumeSkills"`
	JobRequiredSkills     []JobSkill          `json:"jobRequiredSkills"`
	SkillDiff             SkillDiff           `json:"skillDiff"`
	Reasoning             []string            `json:"reasoning"`
	SkillGaps             []SkillGap          `json:"skillGaps"`
	InterviewQuestions    []InterviewQuestion `json:"interviewQuestions"`
	CVSummary             string              `json:"cvSummary"`
	JobSummary            string              `json:"jobSummary"`
	CreatedAt             time.Time           `json:"createdAt"`
}

// AnswerFeedback scores a free-text interview answer along three axes.
type AnswerFeedback struct {
	Clarity        int      `json:"clarity"`
	TechnicalDepth int      `json:"technicalDepth"`
	Relevance      int      `json:"relevance"`
	OverallScore   int      `json:"overallScore"`
	Suggestions    []string `json:"suggestions"`
}

// InterviewAttempt records one submitted answer and its feedback.
// Attempts are append-only; they are never updated after creation.
type InterviewAttempt struct {
	EvaluationID string         `json:"evaluationId"`
	QuestionID   string         `json:"questionId"`
	Question     string         `json:"question"`
	Answer       string         `json:"answer"`
	Feedback     AnswerFeedback `json:"feedback"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Feedback is a user's trust verdict on an evaluation.
type Feedback struct {
	EvaluationID string    `json:"evaluationId"`
	Trusted      bool      `json:"trusted"`
	Timestamp    time.Time `json:"timestamp"`
}

// JobRole is a stored job description used for HR batch screening.
type JobRole struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Candidate is one resume submitted against a job role in HR mode.
type Candidate struct {
	ID           string `json:"id"`
	JobRoleID    string `json:"jobRoleId"`
	Name         string `json:"name"`
	ResumeText   string `json:"resumeText"`
	EvaluationID string `json:"evaluationId,omitempty"`
}

// ScreenedCandidate summarizes one candidate's outcome in a screening run.
type ScreenedCandidate struct {
	CandidateID    string   `json:"candidateId"`
	Name           string   `json:"name"`
	EvaluationID   string   `json:"evaluationId"`
	ReadinessScore int      `json:"readinessScore"`
	Decision       Decision `json:"decision"`
}

// ScreeningResult is the outcome of evaluating a batch of candidates
// against one job role. Candidates appear in submission order.
type ScreeningResult struct {
	JobRoleID  string              `json:"jobRoleId"`
	Title      string              `json:"title"`
	Candidates []ScreenedCandidate `json:"candidates"`
}

// SkillCount pairs a skill name with an occurrence count for analytics.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// StudentAnalytics aggregates a student's evaluation history.
type StudentAnalytics struct {
	TotalEvaluations      int          `json:"totalEvaluations"`
	ApplyCount            int          `json:"applyCount"`
	BorderlineCount       int          `json:"borderlineCount"`
	DoNotApplyCount       int          `json:"doNotApplyCount"`
	AverageReadinessScore int          `json:"averageReadinessScore"`
	CommonSkillGaps       []SkillCount `json:"commonSkillGaps"`
	InterviewAttempts     int          `json:"interviewAttempts"`
	TrustScore            int          `json:"trustScore"`
}

// HRAnalytics aggregates screening outcomes across candidates.
type HRAnalytics struct {
	TotalCandidates             int          `json:"totalCandidates"`
	InterviewRecommended        int          `json:"interviewRecommended"`
	InterviewRecommendedPercent int          `json:"interviewRecommendedPercent"`
	CommonMissingSkills         []SkillCount `json:"commonMissingSkills"`
	AverageReadinessScore       int          `json:"averageReadinessScore"`
	TimeSavedMinutes            int          `json:"timeSavedMinutes"`
}

// ATSExport is the flat record shape consumed by applicant-tracking systems.
type ATSExport struct {
	CandidateID             string   `json:"candidate_id"`
	JobID                   string   `json:"job_id"`
	ReadinessScore          int      `json:"readiness_score"`
	Decision                Decision `json:"decision"`
	MatchedSkills           []string `json:"matched_skills"`
	MissingSkills           []string `json:"missing_skills"`
	InterviewRecommendation bool     `json:"interview_recommendation"`
}
