package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"careerdecide/internal/common"
	"careerdecide/internal/extract"
	"careerdecide/internal/types"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var screenCmd = &cobra.Command{
	Use:   "screen [job-description-file] [resume-file...]",
	Short: "Screen candidate resumes against one job role",
	Long: `Screen a batch of candidate resumes against a single job role. The
first argument is the job description file; every following argument is
one candidate's resume. Each resume is evaluated in hr mode and the
evaluation is persisted, along with the job role and the candidate
roster linking each candidate to their evaluation.

Candidate names default to the resume file name without its extension.
The summary lists each candidate's readiness score and decision.`,
	Args: cobra.MinimumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if screenConfig.OutputFormat == "" {
			screenConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(screenConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScreen,
}

var screenConfig common.CommandConfig
var screenTitle string

func init() {
	screenCmd.Flags().StringVarP(&screenConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	screenCmd.Flags().StringVar(&screenConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	screenCmd.Flags().StringVar(&screenTitle, "title", "", "Job role title (default: job description file name)")
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	eng := buildEngine(cfg)
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	extractor := extract.New(cfg.App.MaxFileSize, logger)

	jobText, err := extractor.ExtractText(args[0])
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	title := screenTitle
	if title == "" {
		title = nameFromFile(args[0])
	}

	role := types.JobRole{
		ID:          uuid.NewString(),
		Title:       title,
		Description: jobText,
		CreatedAt:   time.Now(),
	}
	if err := st.SaveJobRole(role); err != nil {
		return fmt.Errorf("failed to save job role: %w", err)
	}

	logger.Info("Starting candidate screening",
		"job_role_id", role.ID,
		"title", role.Title,
		"candidates", len(args)-1,
		"output_format", screenConfig.OutputFormat)

	candidates := make([]types.Candidate, 0, len(args)-1)
	screened := make([]types.ScreenedCandidate, 0, len(args)-1)

	for _, resumeFile := range args[1:] {
		resumeText, err := extractor.ExtractText(resumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume %s: %w", resumeFile, err)
		}

		name := nameFromFile(resumeFile)
		result := eng.Evaluate(resumeText, jobText, types.ModeHR, name)
		if err := st.SaveEvaluation(result); err != nil {
			return fmt.Errorf("failed to save evaluation for %s: %w", name, err)
		}

		logger.Info("Candidate screened",
			"candidate", name,
			"evaluation_id", result.ID,
			"readiness_score", result.ReadinessScore,
			"decision", result.Decision)

		candidates = append(candidates, types.Candidate{
			ID:           uuid.NewString(),
			JobRoleID:    role.ID,
			Name:         name,
			ResumeText:   resumeText,
			EvaluationID: result.ID,
		})
		screened = append(screened, types.ScreenedCandidate{
			CandidateID:    candidates[len(candidates)-1].ID,
			Name:           name,
			EvaluationID:   result.ID,
			ReadinessScore: result.ReadinessScore,
			Decision:       result.Decision,
		})
	}

	if err := st.SaveCandidates(role.ID, candidates); err != nil {
		return fmt.Errorf("failed to save candidates: %w", err)
	}

	logger.Info("Screening completed successfully",
		"job_role_id", role.ID,
		"candidates", len(candidates))

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(types.ScreeningResult{
		JobRoleID:  role.ID,
		Title:      role.Title,
		Candidates: screened,
	}, screenConfig)
}

// nameFromFile derives a display name from a file path by stripping
// the directory and extension.
func nameFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
