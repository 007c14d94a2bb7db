package cli

import (
	"context"
	"fmt"
	"math/rand"

	"careerdecide/internal/config"
	"careerdecide/internal/engine"
	"careerdecide/internal/errors"
	"careerdecide/internal/store"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "careerdecide",
	Short: "A CLI tool for evaluating job application readiness",
	Long: `Careerdecide evaluates how ready a candidate is to apply for a job.
It extracts skills from a resume, diffs them against a job description,
scores the match, and produces an apply/don't-apply decision with
explanations and tailored interview questions. It can also score
practice interview answers and aggregate analytics over stored results.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg, nil
	}
	return nil, fmt.Errorf("config not found in context")
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) (*errors.Logger, error) {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger, nil
	}
	return nil, fmt.Errorf("logger not found in context")
}

// buildEngine constructs the evaluation engine from configuration.
// A seeded answer evaluator makes practice scores reproducible.
func buildEngine(cfg *config.Config) *engine.Engine {
	if cfg.Engine.DeterministicAnswers {
		r := rand.New(rand.NewSource(cfg.Engine.AnswerSeed))
		return engine.New(engine.WithRandSource(r.Float64))
	}
	return engine.New()
}

// openStore opens the JSON file store at the configured data directory
func openStore(cfg *config.Config) (*store.FileStore, error) {
	st, err := store.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}
	return st, nil
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
