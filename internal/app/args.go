package app

import (
	"errors"
	"io/fs"
	"os"
)

type Mode string

const (
	ModeSingle Mode = "single"
	ModeBatch  Mode = "batch"
)

// Args are the paths of one invocation.
type Args struct {
	InputPath     string
	OutputPath    string // single-file mode, defaults to <prefix><input name> next to the input
	BatchDir      string
	SummaryOutput string // batch mode, defaults to <summary file name> inside BatchDir
}

// NewArgs builds Args from positional arguments and the mode flags.
func NewArgs(positional []string, batchDir, summaryOutput string) (Args, error) {
	if len(positional) > 2 {
		return Args{}, errTooManyArguments(len(positional))
	}

	args := Args{BatchDir: batchDir, SummaryOutput: summaryOutput}
	if len(positional) > 0 {
		args.InputPath = positional[0]
	}
	if len(positional) > 1 {
		args.OutputPath = positional[1]
	}
	return args, nil
}

func (a Args) Mode() Mode {
	if a.BatchDir != "" {
		return ModeBatch
	}
	return ModeSingle
}

// Validate checks mode exclusivity and that the input path is usable.
// Output paths are not checked; writing them reports its own errors.
func (a Args) Validate() error {
	if (a.InputPath == "") == (a.BatchDir == "") {
		return errModeConflict()
	}
	if a.BatchDir == "" && a.SummaryOutput != "" {
		return errSummaryWithoutBatch()
	}
	if a.BatchDir != "" && a.OutputPath != "" {
		return errOutputWithBatch()
	}

	if a.Mode() == ModeBatch {
		info, err := os.Stat(a.BatchDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return errBatchDirNotReadable(a.BatchDir, "does not exist", err)
		case err != nil:
			return errBatchDirNotReadable(a.BatchDir, "cannot be read", err)
		case !info.IsDir():
			return errBatchDirNotReadable(a.BatchDir, "is not a directory", nil)
		}
		return nil
	}

	info, err := os.Stat(a.InputPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errInputNotReadable(a.InputPath, "does not exist", err)
	case err != nil:
		return errInputNotReadable(a.InputPath, "cannot be read", err)
	case !info.Mode().IsRegular():
		return errInputNotReadable(a.InputPath, "is not a file", nil)
	}
	return nil
}
