package cli

import (
	"fmt"

	"careerdecide/internal/common"
	"careerdecide/internal/store"
	"careerdecide/internal/types"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show aggregated analytics over stored evaluations",
	Long: `Aggregate the evaluations stored in the data directory into an
analytics view.

Student mode reports total evaluations, the apply rate, average and
best readiness scores, the most common missing skills, and interview
practice statistics. HR mode reports screening volume, score
distribution, top missing skills across candidates, and feedback
trust rates.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if analyticsConfig.OutputFormat == "" {
			analyticsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(analyticsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalytics,
}

var analyticsConfig common.CommandConfig
var analyticsMode string

func init() {
	analyticsCmd.Flags().StringVarP(&analyticsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyticsCmd.Flags().StringVar(&analyticsConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyticsCmd.Flags().StringVar(&analyticsMode, "mode", "student", "Analytics view: student or hr")

	_ = analyticsCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(types.ModeStudent), string(types.ModeHR)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	mode, err := common.ValidateMode(analyticsMode)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	logger.Info("Computing analytics",
		"mode", mode,
		"data_dir", cfg.Storage.DataDir,
		"output_format", analyticsConfig.OutputFormat)

	outputHandler := common.NewOutputHandler(logger)

	switch mode {
	case types.ModeHR:
		analytics, err := store.HRAnalytics(st)
		if err != nil {
			return fmt.Errorf("failed to compute hr analytics: %w", err)
		}
		return outputHandler.HandleOutput(analytics, analyticsConfig)
	default:
		analytics, err := store.StudentAnalytics(st)
		if err != nil {
			return fmt.Errorf("failed to compute student analytics: %w", err)
		}
		return outputHandler.HandleOutput(analytics, analyticsConfig)
	}
}
