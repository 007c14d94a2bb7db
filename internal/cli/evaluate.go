package cli

import (
	"context"
	"fmt"

	"careerdecide/internal/common"
	"careerdecide/internal/extract"
	"careerdecide/internal/types"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [resume-file] [job-description-file]",
	Short: "Evaluate application readiness for a job",
	Long: `Evaluate a resume against a job description to decide whether the
candidate is ready to apply. The command takes two arguments: the path
to the resume file and the path to the job description file.

The result includes a readiness score, an APPLY, BORDERLINE, or
DO_NOT_APPLY decision, the skill diff behind it, per-skill
explanations, and a set of tailored interview questions.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if evaluateConfig.OutputFormat == "" {
			evaluateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(evaluateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runEvaluate,
}

var evaluateConfig common.CommandConfig
var evaluateMode string
var evaluateCandidate string
var evaluateSave bool

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	evaluateCmd.Flags().StringVar(&evaluateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	evaluateCmd.Flags().StringVar(&evaluateMode, "mode", "student", "Evaluation mode: student or hr")
	evaluateCmd.Flags().StringVar(&evaluateCandidate, "candidate", "", "Candidate name (recorded in hr mode)")
	evaluateCmd.Flags().BoolVar(&evaluateSave, "save", false, "Persist the evaluation to the data store")

	// Add completion for format flag
	_ = evaluateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = evaluateCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(types.ModeStudent), string(types.ModeHR)}, cobra.ShellCompDirectiveNoFileComp
	})
}

type evaluateInput struct {
	ResumeText     string
	JobDescription string
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	mode, err := common.ValidateMode(evaluateMode)
	if err != nil {
		return err
	}

	eng := buildEngine(cfg)
	extractor := extract.New(cfg.App.MaxFileSize, logger)

	createInput := func(contents []string) (evaluateInput, error) {
		if len(contents) != 2 {
			return evaluateInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return evaluateInput{
			ResumeText:     contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input evaluateInput, cfg common.CommandConfig) {
		logger.Info("Starting readiness evaluation",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobDescription),
			"mode", mode,
			"output_format", cfg.OutputFormat)
	}

	evaluateOperation := func(ctx context.Context, input evaluateInput) (types.EvaluationResult, error) {
		result := eng.Evaluate(input.ResumeText, input.JobDescription, mode, evaluateCandidate)
		if evaluateSave {
			st, err := openStore(cfg)
			if err != nil {
				return types.EvaluationResult{}, err
			}
			if err := st.SaveEvaluation(result); err != nil {
				return types.EvaluationResult{}, fmt.Errorf("failed to save evaluation: %w", err)
			}
			logger.Info("Evaluation saved", "evaluation_id", result.ID)
		}
		return result, nil
	}

	err = common.RunFileCommand(
		cmd.Context(),
		logger,
		extractor,
		evaluateConfig,
		args,
		createInput,
		evaluateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to evaluate application readiness: %w", err)
	}
	logger.Info("Readiness evaluation completed successfully")
	return nil
}
