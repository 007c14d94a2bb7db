package cli

import (
	"fmt"
	"os"

	"careerdecide/internal/common"
	"careerdecide/internal/extract"

	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer [question] [answer-file-or-text]",
	Short: "Score a practice interview answer",
	Long: `Score a practice interview answer against a question. The first
argument is the question text; the second is either a path to a file
containing the answer or the answer text itself.

The feedback covers clarity, relevance, and depth, with suggestions
for improving the answer.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if answerConfig.OutputFormat == "" {
			answerConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(answerConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnswer,
}

var answerConfig common.CommandConfig

func init() {
	answerCmd.Flags().StringVarP(&answerConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	answerCmd.Flags().StringVar(&answerConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = answerCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnswer(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	question := args[0]

	// The second argument is a file path when one exists, otherwise
	// it is taken as the literal answer text.
	answerText := args[1]
	if stat, statErr := os.Stat(args[1]); statErr == nil && !stat.IsDir() {
		extractor := extract.New(cfg.App.MaxFileSize, logger)
		content, err := extractor.ExtractText(args[1])
		if err != nil {
			return err
		}
		answerText = content
	}

	logger.Info("Scoring interview answer",
		"question_chars", len(question),
		"answer_chars", len(answerText),
		"output_format", answerConfig.OutputFormat)

	eng := buildEngine(cfg)
	feedback := eng.EvaluateAnswer(question, answerText)

	outputHandler := common.NewOutputHandler(logger)
	if err := outputHandler.HandleOutput(feedback, answerConfig); err != nil {
		return fmt.Errorf("failed to score answer: %w", err)
	}
	logger.Info("Answer scoring completed successfully",
		"overall_score", feedback.OverallScore)
	return nil
}
