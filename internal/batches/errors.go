package batches

import (
	"fmt"

	"duration-stats/internal/shared/svcerrors"
)

// BatchAggregator errors
const (
	codeNoSummaryRows = "BAT_1000"

	codeInternalListFailed         = "BAT_9000"
	codeInternalSummaryStoreFailed = "BAT_9001"
	codeInternalBatchInterrupted   = "BAT_9002"
)

// errNoSummaryRows returns an error when no file in the batch produced a summary row.
func errNoSummaryRows(eligible int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeNoSummaryRows,
		fmt.Sprintf("none of the %d eligible file(s) produced a summary row", eligible), nil)
}

// errInternalListFailed returns an error when the batch directory cannot be listed.
func errInternalListFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalListFailed, "cannot list batch directory", cause)
}

// errInternalSummaryStoreFailed returns an error when the summary table cannot be written.
func errInternalSummaryStoreFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Sprintf("cannot write %q", key), cause)
}

// errInternalBatchInterrupted returns an error when the run is cancelled between files.
func errInternalBatchInterrupted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchInterrupted, "batch interrupted", cause)
}
