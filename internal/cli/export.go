package cli

import (
	"fmt"

	"careerdecide/internal/common"
	"careerdecide/internal/store"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [evaluation-id]",
	Short: "Export a stored evaluation as an ATS record",
	Long: `Export a stored evaluation in the flattened format applicant
tracking systems ingest: candidate and role identifiers, the readiness
score, matched and missing skill names, and an interview
recommendation derived from the decision.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if exportConfig.OutputFormat == "" {
			exportConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(exportConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExport,
}

var exportConfig common.CommandConfig
var exportCandidateID string
var exportJobRoleID string

func init() {
	exportCmd.Flags().StringVarP(&exportConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	exportCmd.Flags().StringVar(&exportConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	exportCmd.Flags().StringVar(&exportCandidateID, "candidate-id", "", "Candidate identifier for the ATS record (default: evaluation ID)")
	exportCmd.Flags().StringVar(&exportJobRoleID, "job-role-id", "", "Job role identifier for the ATS record")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	evaluation, err := st.EvaluationByID(args[0])
	if err != nil {
		return fmt.Errorf("failed to load evaluation %s: %w", args[0], err)
	}

	candidateID := exportCandidateID
	if candidateID == "" {
		candidateID = evaluation.ID
	}

	logger.Info("Exporting ATS record",
		"evaluation_id", evaluation.ID,
		"candidate_id", candidateID,
		"output_format", exportConfig.OutputFormat)

	record := store.ATSRecord(evaluation, candidateID, exportJobRoleID)

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(record, exportConfig)
}
