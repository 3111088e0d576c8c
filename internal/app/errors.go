package app

import (
	"fmt"

	"duration-stats/internal/shared/svcerrors"
)

// Command-line errors
const (
	codeModeConflict        = "CLI_1000"
	codeSummaryWithoutBatch = "CLI_1001"
	codeInputNotReadable    = "CLI_1002"
	codeBatchDirNotReadable = "CLI_1003"
	codeOutputWithBatch     = "CLI_1004"
	codeTooManyArguments    = "CLI_1005"
	codeInvalidFlags        = "CLI_1006"
	codeInvalidConfig       = "CLI_1007"
)

func errModeConflict() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeModeConflict,
		"Provide either an input CSV file or --batch-dir, but not both.", nil)
}

func errSummaryWithoutBatch() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeSummaryWithoutBatch,
		"--summary-output can only be used together with --batch-dir.", nil)
}

func errInputNotReadable(path, reason string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInputNotReadable,
		fmt.Sprintf("Input file '%s' %s.", path, reason), cause)
}

func errBatchDirNotReadable(path, reason string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBatchDirNotReadable,
		fmt.Sprintf("Batch directory '%s' %s.", path, reason), cause)
}

func errOutputWithBatch() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeOutputWithBatch,
		"An output CSV file cannot be combined with --batch-dir; use --summary-output.", nil)
}

func errTooManyArguments(n int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTooManyArguments,
		fmt.Sprintf("Expected at most 2 positional arguments, got %d.", n), nil)
}

func errInvalidFlags(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFlags, "invalid command line", cause)
}

func errInvalidConfig(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidConfig, "invalid configuration", cause)
}
