package common

import (
	"context"
	"fmt"

	"careerdecide/internal/errors"
	"careerdecide/internal/extract"
)

// CreateInputFunc defines how to build an operation input from file contents.
type CreateInputFunc[Input any] func(contents []string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// OperationFunc is a generic signature for an evaluation operation.
type OperationFunc[Input, Output any] func(context.Context, Input) (Output, error)

// RunFileCommand encapsulates the common logic for file-based CLI
// commands: extract text from the input files, build the operation
// input, run it, and hand the result to the output pipeline.
func RunFileCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	extractor *extract.Extractor,
	cmdConfig CommandConfig,
	args []string,
	createInput CreateInputFunc[Input],
	operation OperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	outputHandler := NewOutputHandler(logger)

	contents := make([]string, len(args))
	for i, filename := range args {
		content, err := extractor.ExtractText(filename)
		if err != nil {
			return err
		}
		contents[i] = content
	}

	input, err := createInput(contents)
	if err != nil {
		return fmt.Errorf("failed to create input from file contents: %w", err)
	}

	logDetails(input, cmdConfig)

	result, err := operation(ctx, input)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
