package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	// IANA locations for --timezone on hosts without a zoneinfo database
	_ "time/tzdata"

	"duration-stats/internal/shared/configs"
	"duration-stats/internal/shared/loggers"
	"duration-stats/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

const usageHeader = `Normalize the Duration column of CSV files to milliseconds.

Usage:
  durstats [flags] <input.csv> [output.csv]
  durstats [flags] --batch-dir DIR [--summary-output FILE]

Flags:
`

// cliFlags holds the flags that are not configuration keys.
type cliFlags struct {
	configPath    string
	batchDir      string
	summaryOutput string
}

// newFlagSet declares every command-line flag. Flags named in
// configs.FlagBindings override the matching configuration keys.
func newFlagSet(output io.Writer) (*pflag.FlagSet, *cliFlags) {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.SortFlags = false

	cli := &cliFlags{}
	flags.StringVar(&cli.batchDir, "batch-dir", "", "process every CSV file within `DIR` and write a summary")
	flags.StringVar(&cli.summaryOutput, "summary-output", "", "summary CSV `FILE` in batch mode (default <batch-dir>/summary.csv)")
	flags.StringVar(&cli.configPath, "config", "", "optional YAML configuration `FILE`")
	flags.String("encoding", "utf-8", "character set of the input files; outputs are always UTF-8")
	flags.Bool("strict", false, "fail on the first malformed Duration value")
	flags.Bool("overwrite", true, "replace existing durations files; with --overwrite=false an existing file is an error")
	flags.String("timezone", "UTC", "IANA location used for time-of-day buckets and summary dates")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json, console)")
	flags.String("metrics-textfile", "", "write Prometheus metrics to `FILE` after the run")

	flags.Usage = func() {
		fmt.Fprint(output, usageHeader)
		flags.PrintDefaults()
	}
	return flags, cli
}

// Main runs the command line argv and returns the process exit code.
func Main(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	err := run(ctx, argv, stdout, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return svcerrors.ExitOK
	}
	if err != nil {
		reportError(stderr, err)
	}
	return svcerrors.ExitCode(err)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	flags, cli := newFlagSet(stderr)
	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return errInvalidFlags(err)
	}

	args, err := NewArgs(flags.Args(), cli.batchDir, cli.summaryOutput)
	if err != nil {
		return err
	}

	config, err := configs.LoadConfig(cli.configPath, flags)
	if err != nil {
		return errInvalidConfig(err)
	}

	application, err := New(config, stdout, stderr)
	if err != nil {
		return errInvalidConfig(err)
	}

	if err := application.Run(ctx, args); err != nil {
		err = withServiceError(err)
		svcErr, _ := svcerrors.AsServiceError(err)
		application.appLogger.Error().
			Str(loggers.FieldErrorCode, svcErr.Code).
			Err(err).
			Msg("run failed")
		return err
	}
	return nil
}

// reportError prints argument errors verbatim and everything else as a
// processing failure.
func reportError(w io.Writer, err error) {
	svcErr, ok := svcerrors.AsServiceError(err)
	if ok && svcErr.IsInvalidArgument() {
		if svcErr.Cause != nil && (svcErr.Code == codeInvalidFlags || svcErr.Code == codeInvalidConfig) {
			fmt.Fprintf(w, "%s: %v\n", svcErr.Message, svcErr.Cause)
			return
		}
		fmt.Fprintln(w, svcErr.Message)
		return
	}
	fmt.Fprintf(w, "Failed to process CSV files: %v\n", err)
}

// withServiceError wraps errors without a ServiceError in their chain as
// undefined internal errors so every failure is logged with a code.
func withServiceError(err error) error {
	if _, ok := svcerrors.AsServiceError(err); ok {
		return err
	}
	return svcerrors.NewInternalErrorUndefined(err)
}
