package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"careerdecide/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "EvaluationResult", &EvaluationTextFormatter{})
	registry.RegisterFormatter("markdown", "EvaluationResult", &EvaluationMarkdownFormatter{})
	registry.RegisterFormatter("text", "AnswerFeedback", &AnswerFeedbackTextFormatter{})
	registry.RegisterFormatter("markdown", "AnswerFeedback", &AnswerFeedbackMarkdownFormatter{})
	registry.RegisterFormatter("text", "StudentAnalytics", &StudentAnalyticsTextFormatter{})
	registry.RegisterFormatter("markdown", "StudentAnalytics", &StudentAnalyticsMarkdownFormatter{})
	registry.RegisterFormatter("text", "HRAnalytics", &HRAnalyticsTextFormatter{})
	registry.RegisterFormatter("markdown", "HRAnalytics", &HRAnalyticsMarkdownFormatter{})
	registry.RegisterFormatter("text", "ATSExport", &ATSExportTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSExport", &ATSExportMarkdownFormatter{})
	registry.RegisterFormatter("text", "ScreeningResult", &ScreeningResultTextFormatter{})
	registry.RegisterFormatter("markdown", "ScreeningResult", &ScreeningResultMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.EvaluationResult:
		return "EvaluationResult"
	case types.AnswerFeedback:
		return "AnswerFeedback"
	case types.StudentAnalytics:
		return "StudentAnalytics"
	case types.HRAnalytics:
		return "HRAnalytics"
	case types.ATSExport:
		return "ATSExport"
	case types.ScreeningResult:
		return "ScreeningResult"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// EvaluationTextFormatter handles text formatting for evaluation results
type EvaluationTextFormatter struct{}

func (etf *EvaluationTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.EvaluationResult)
	if !ok {
		return "", fmt.Errorf("expected EvaluationResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== APPLICATION READINESS ===\n\n")
	output.WriteString(fmt.Sprintf("Decision: %s\n", result.Decision))
	output.WriteString(fmt.Sprintf("Readiness Score: %d/100\n\n", result.ReadinessScore))
	output.WriteString(result.CVSummary)
	output.WriteString("\n")
	output.WriteString(result.JobSummary)
	output.WriteString("\n\n")

	output.WriteString("=== REASONING ===\n")
	for _, line := range result.Reasoning {
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}
	output.WriteString("\n")

	output.WriteString("=== SKILL MATCH ===\n")
	output.WriteString("Matched:\n")
	if len(result.SkillDiff.Matched) == 0 {
		output.WriteString("  (none)\n")
	}
	for _, skill := range result.SkillDiff.Matched {
		output.WriteString(fmt.Sprintf("  - %s (%s)\n", skill.Skill, skill.Source))
	}
	output.WriteString("Missing:\n")
	if len(result.SkillDiff.Missing) == 0 {
		output.WriteString("  (none)\n")
	}
	for _, skill := range result.SkillDiff.Missing {
		requirement := "required"
		if !skill.Required {
			requirement = "preferred"
		}
		output.WriteString(fmt.Sprintf("  - %s (%s)\n", skill.Skill, requirement))
	}
	output.WriteString("Additional:\n")
	if len(result.SkillDiff.Extra) == 0 {
		output.WriteString("  (none)\n")
	}
	for _, skill := range result.SkillDiff.Extra {
		output.WriteString(fmt.Sprintf("  - %s\n", skill.Skill))
	}
	output.WriteString("\n")

	if len(result.SkillGaps) > 0 {
		output.WriteString("=== SKILL GAPS ===\n\n")
		for i, gap := range result.SkillGaps {
			output.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, gap.Skill, gap.Importance))
			output.WriteString("   Why missing: ")
			output.WriteString(gap.WhyMissing)
			output.WriteString("\n")
			output.WriteString("   What to learn: ")
			output.WriteString(gap.WhatToLearn)
			output.WriteString("\n")
			output.WriteString("   How to practice: ")
			output.WriteString(gap.HowToPractice)
			output.WriteString("\n")
			output.WriteString("   Resume addition: ")
			output.WriteString(gap.ResumeAddition)
			output.WriteString("\n\n")
		}
	}

	if len(result.InterviewQuestions) > 0 {
		output.WriteString("=== INTERVIEW PREPARATION ===\n\n")
		for i, question := range result.InterviewQuestions {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, question.Type, question.Question))
			if question.Context != "" {
				output.WriteString("   Context: ")
				output.WriteString(question.Context)
				output.WriteString("\n")
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (etf *EvaluationTextFormatter) SupportedType() string {
	return "EvaluationResult"
}

// EvaluationMarkdownFormatter handles markdown formatting for evaluation results
type EvaluationMarkdownFormatter struct{}

func (emf *EvaluationMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.EvaluationResult)
	if !ok {
		return "", fmt.Errorf("expected EvaluationResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Application Readiness\n\n")
	output.WriteString(fmt.Sprintf("**Decision:** %s\n\n", result.Decision))
	output.WriteString(fmt.Sprintf("**Readiness Score:** %d/100\n\n", result.ReadinessScore))
	output.WriteString(result.CVSummary)
	output.WriteString("\n")
	output.WriteString(result.JobSummary)
	output.WriteString("\n\n")

	output.WriteString("## Reasoning\n\n")
	for _, line := range result.Reasoning {
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}
	output.WriteString("\n")

	output.WriteString("## Skill Match\n\n")
	output.WriteString("### Matched\n")
	if len(result.SkillDiff.Matched) == 0 {
		output.WriteString("_none_\n")
	}
	for _, skill := range result.SkillDiff.Matched {
		output.WriteString(fmt.Sprintf("- **%s** (%s)\n", skill.Skill, skill.Source))
	}
	output.WriteString("\n### Missing\n")
	if len(result.SkillDiff.Missing) == 0 {
		output.WriteString("_none_\n")
	}
	for _, skill := range result.SkillDiff.Missing {
		requirement := "required"
		if !skill.Required {
			requirement = "preferred"
		}
		output.WriteString(fmt.Sprintf("- **%s** (%s)\n", skill.Skill, requirement))
	}
	output.WriteString("\n### Additional\n")
	if len(result.SkillDiff.Extra) == 0 {
		output.WriteString("_none_\n")
	}
	for _, skill := range result.SkillDiff.Extra {
		output.WriteString(fmt.Sprintf("- **%s**\n", skill.Skill))
	}
	output.WriteString("\n")

	if len(result.SkillGaps) > 0 {
		output.WriteString("## Skill Gaps\n\n")
		for i, gap := range result.SkillGaps {
			output.WriteString(fmt.Sprintf("### %d. %s (%s)\n\n", i+1, gap.Skill, gap.Importance))
			output.WriteString("**Why missing:** ")
			output.WriteString(gap.WhyMissing)
			output.WriteString("\n\n")
			output.WriteString("**What to learn:** ")
			output.WriteString(gap.WhatToLearn)
			output.WriteString("\n\n")
			output.WriteString("**How to practice:** ")
			output.WriteString(gap.HowToPractice)
			output.WriteString("\n\n")
			output.WriteString("**Resume addition:** ")
			output.WriteString(gap.ResumeAddition)
			output.WriteString("\n\n")
		}
	}

	if len(result.InterviewQuestions) > 0 {
		output.WriteString("## Interview Preparation\n\n")
		for i, question := range result.InterviewQuestions {
			output.WriteString(fmt.Sprintf("%d. **[%s]** %s\n", i+1, question.Type, question.Question))
			if question.Context != "" {
				output.WriteString(fmt.Sprintf("   - _%s_\n", question.Context))
			}
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (emf *EvaluationMarkdownFormatter) SupportedType() string {
	return "EvaluationResult"
}

// AnswerFeedbackTextFormatter handles text formatting for answer feedback
type AnswerFeedbackTextFormatter struct{}

func (aff *AnswerFeedbackTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnswerFeedback)
	if !ok {
		return "", fmt.Errorf("expected AnswerFeedback, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ANSWER FEEDBACK ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("Clarity:         %d/100\n", result.Clarity))
	output.WriteString(fmt.Sprintf("Technical Depth: %d/100\n", result.TechnicalDepth))
	output.WriteString(fmt.Sprintf("Relevance:       %d/100\n\n", result.Relevance))

	if len(result.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (aff *AnswerFeedbackTextFormatter) SupportedType() string {
	return "AnswerFeedback"
}

// AnswerFeedbackMarkdownFormatter handles markdown formatting for answer feedback
type AnswerFeedbackMarkdownFormatter struct{}

func (afm *AnswerFeedbackMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnswerFeedback)
	if !ok {
		return "", fmt.Errorf("expected AnswerFeedback, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Answer Feedback\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("- **Clarity:** %d/100\n", result.Clarity))
	output.WriteString(fmt.Sprintf("- **Technical Depth:** %d/100\n", result.TechnicalDepth))
	output.WriteString(fmt.Sprintf("- **Relevance:** %d/100\n\n", result.Relevance))

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (afm *AnswerFeedbackMarkdownFormatter) SupportedType() string {
	return "AnswerFeedback"
}

// StudentAnalyticsTextFormatter handles text formatting for student analytics
type StudentAnalyticsTextFormatter struct{}

func (sat *StudentAnalyticsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.StudentAnalytics)
	if !ok {
		return "", fmt.Errorf("expected StudentAnalytics, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== STUDENT ANALYTICS ===\n\n")
	output.WriteString(fmt.Sprintf("Total Evaluations: %d\n", result.TotalEvaluations))
	output.WriteString(fmt.Sprintf("  APPLY:        %d\n", result.ApplyCount))
	output.WriteString(fmt.Sprintf("  BORDERLINE:   %d\n", result.BorderlineCount))
	output.WriteString(fmt.Sprintf("  DO_NOT_APPLY: %d\n\n", result.DoNotApplyCount))
	output.WriteString(fmt.Sprintf("Average Readiness Score: %d/100\n", result.AverageReadinessScore))
	output.WriteString(fmt.Sprintf("Interview Attempts: %d\n", result.InterviewAttempts))
	output.WriteString(fmt.Sprintf("Trust Score: %d%%\n\n", result.TrustScore))

	if len(result.CommonSkillGaps) > 0 {
		output.WriteString("Most Common Skill Gaps:\n")
		for _, gap := range result.CommonSkillGaps {
			output.WriteString(fmt.Sprintf("- %s (%d)\n", gap.Skill, gap.Count))
		}
	}

	return output.String(), nil
}

func (sat *StudentAnalyticsTextFormatter) SupportedType() string {
	return "StudentAnalytics"
}

// StudentAnalyticsMarkdownFormatter handles markdown formatting for student analytics
type StudentAnalyticsMarkdownFormatter struct{}

func (sam *StudentAnalyticsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.StudentAnalytics)
	if !ok {
		return "", fmt.Errorf("expected StudentAnalytics, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Student Analytics\n\n")
	output.WriteString(fmt.Sprintf("**Total Evaluations:** %d\n\n", result.TotalEvaluations))
	output.WriteString(fmt.Sprintf("- APPLY: %d\n", result.ApplyCount))
	output.WriteString(fmt.Sprintf("- BORDERLINE: %d\n", result.BorderlineCount))
	output.WriteString(fmt.Sprintf("- DO_NOT_APPLY: %d\n\n", result.DoNotApplyCount))
	output.WriteString(fmt.Sprintf("**Average Readiness Score:** %d/100\n\n", result.AverageReadinessScore))
	output.WriteString(fmt.Sprintf("**Interview Attempts:** %d\n\n", result.InterviewAttempts))
	output.WriteString(fmt.Sprintf("**Trust Score:** %d%%\n\n", result.TrustScore))

	if len(result.CommonSkillGaps) > 0 {
		output.WriteString("## Most Common Skill Gaps\n\n")
		for _, gap := range result.CommonSkillGaps {
			output.WriteString(fmt.Sprintf("- **%s** (%d)\n", gap.Skill, gap.Count))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (sam *StudentAnalyticsMarkdownFormatter) SupportedType() string {
	return "StudentAnalytics"
}

// HRAnalyticsTextFormatter handles text formatting for HR analytics
type HRAnalyticsTextFormatter struct{}

func (hat *HRAnalyticsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.HRAnalytics)
	if !ok {
		return "", fmt.Errorf("expected HRAnalytics, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== HR SCREENING ANALYTICS ===\n\n")
	output.WriteString(fmt.Sprintf("Total Candidates: %d\n", result.TotalCandidates))
	output.WriteString(fmt.Sprintf("Interview Recommended: %d (%d%%)\n", result.InterviewRecommended, result.InterviewRecommendedPercent))
	output.WriteString(fmt.Sprintf("Average Readiness Score: %d/100\n", result.AverageReadinessScore))
	output.WriteString(fmt.Sprintf("Estimated Time Saved: %d minutes\n\n", result.TimeSavedMinutes))

	if len(result.CommonMissingSkills) > 0 {
		output.WriteString("Most Common Missing Skills:\n")
		for _, skill := range result.CommonMissingSkills {
			output.WriteString(fmt.Sprintf("- %s (%d)\n", skill.Skill, skill.Count))
		}
	}

	return output.String(), nil
}

func (hat *HRAnalyticsTextFormatter) SupportedType() string {
	return "HRAnalytics"
}

// HRAnalyticsMarkdownFormatter handles markdown formatting for HR analytics
type HRAnalyticsMarkdownFormatter struct{}

func (ham *HRAnalyticsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.HRAnalytics)
	if !ok {
		return "", fmt.Errorf("expected HRAnalytics, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# HR Screening Analytics\n\n")
	output.WriteString(fmt.Sprintf("**Total Candidates:** %d\n\n", result.TotalCandidates))
	output.WriteString(fmt.Sprintf("**Interview Recommended:** %d (%d%%)\n\n", result.InterviewRecommended, result.InterviewRecommendedPercent))
	output.WriteString(fmt.Sprintf("**Average Readiness Score:** %d/100\n\n", result.AverageReadinessScore))
	output.WriteString(fmt.Sprintf("**Estimated Time Saved:** %d minutes\n\n", result.TimeSavedMinutes))

	if len(result.CommonMissingSkills) > 0 {
		output.WriteString("## Most Common Missing Skills\n\n")
		for _, skill := range result.CommonMissingSkills {
			output.WriteString(fmt.Sprintf("- **%s** (%d)\n", skill.Skill, skill.Count))
		}
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (ham *HRAnalyticsMarkdownFormatter) SupportedType() string {
	return "HRAnalytics"
}

// ATSExportTextFormatter handles text formatting for ATS export records
type ATSExportTextFormatter struct{}

func (aet *ATSExportTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSExport)
	if !ok {
		return "", fmt.Errorf("expected ATSExport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS EXPORT ===\n\n")
	output.WriteString(fmt.Sprintf("Candidate ID: %s\n", result.CandidateID))
	output.WriteString(fmt.Sprintf("Job ID: %s\n", result.JobID))
	output.WriteString(fmt.Sprintf("Readiness Score: %d/100\n", result.ReadinessScore))
	output.WriteString(fmt.Sprintf("Decision: %s\n", result.Decision))
	output.WriteString(fmt.Sprintf("Interview Recommendation: %t\n\n", result.InterviewRecommendation))

	output.WriteString(fmt.Sprintf("Matched Skills: %s\n", strings.Join(result.MatchedSkills, ", ")))
	output.WriteString(fmt.Sprintf("Missing Skills: %s\n", strings.Join(result.MissingSkills, ", ")))

	return output.String(), nil
}

func (aet *ATSExportTextFormatter) SupportedType() string {
	return "ATSExport"
}

// ATSExportMarkdownFormatter handles markdown formatting for ATS export records
type ATSExportMarkdownFormatter struct{}

func (aem *ATSExportMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSExport)
	if !ok {
		return "", fmt.Errorf("expected ATSExport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Export\n\n")
	output.WriteString(fmt.Sprintf("**Candidate ID:** %s\n\n", result.CandidateID))
	output.WriteString(fmt.Sprintf("**Job ID:** %s\n\n", result.JobID))
	output.WriteString(fmt.Sprintf("**Readiness Score:** %d/100\n\n", result.ReadinessScore))
	output.WriteString(fmt.Sprintf("**Decision:** %s\n\n", result.Decision))
	output.WriteString(fmt.Sprintf("**Interview Recommendation:** %t\n\n", result.InterviewRecommendation))
	output.WriteString(fmt.Sprintf("**Matched Skills:** %s\n\n", strings.Join(result.MatchedSkills, ", ")))
	output.WriteString(fmt.Sprintf("**Missing Skills:** %s\n", strings.Join(result.MissingSkills, ", ")))

	return output.String(), nil
}

func (aem *ATSExportMarkdownFormatter) SupportedType() string {
	return "ATSExport"
}

// ScreeningResultTextFormatter handles text formatting for screening results
type ScreeningResultTextFormatter struct{}

func (srt *ScreeningResultTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScreeningResult)
	if !ok {
		return "", fmt.Errorf("expected ScreeningResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CANDIDATE SCREENING ===\n\n")
	output.WriteString(fmt.Sprintf("Job Role: %s\n", result.Title))
	output.WriteString(fmt.Sprintf("Job Role ID: %s\n", result.JobRoleID))
	output.WriteString(fmt.Sprintf("Candidates Screened: %d\n\n", len(result.Candidates)))

	for i, candidate := range result.Candidates {
		output.WriteString(fmt.Sprintf("%d. %s\n", i+1, candidate.Name))
		output.WriteString(fmt.Sprintf("   Readiness Score: %d/100\n", candidate.ReadinessScore))
		output.WriteString(fmt.Sprintf("   Decision: %s\n", candidate.Decision))
		output.WriteString(fmt.Sprintf("   Evaluation ID: %s\n\n", candidate.EvaluationID))
	}

	return output.String(), nil
}

func (srt *ScreeningResultTextFormatter) SupportedType() string {
	return "ScreeningResult"
}

// ScreeningResultMarkdownFormatter handles markdown formatting for screening results
type ScreeningResultMarkdownFormatter struct{}

func (srm *ScreeningResultMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScreeningResult)
	if !ok {
		return "", fmt.Errorf("expected ScreeningResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Candidate Screening\n\n")
	output.WriteString(fmt.Sprintf("**Job Role:** %s\n\n", result.Title))
	output.WriteString(fmt.Sprintf("**Job Role ID:** %s\n\n", result.JobRoleID))
	output.WriteString(fmt.Sprintf("**Candidates Screened:** %d\n\n", len(result.Candidates)))

	output.WriteString("| Candidate | Score | Decision | Evaluation |\n")
	output.WriteString("|-----------|-------|----------|------------|\n")
	for _, candidate := range result.Candidates {
		output.WriteString(fmt.Sprintf("| %s | %d/100 | %s | %s |\n",
			candidate.Name, candidate.ReadinessScore, candidate.Decision, candidate.EvaluationID))
	}
	output.WriteString("\n")

	return output.String(), nil
}

func (srm *ScreeningResultMarkdownFormatter) SupportedType() string {
	return "ScreeningResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
