package extractors

import (
	"fmt"

	"duration-stats/internal/models"
	"duration-stats/internal/shared/svcerrors"
)

// ExtractionService errors
const (
	codeInsufficientData  = "EXT_1000"
	codeMalformedDuration = "EXT_1001"
	codeSourceUnreadable  = "EXT_1002"

	codeInternalOutputStoreFailed = "EXT_9000"
)

// errInsufficientData returns an error when a file holds no valid Duration value.
func errInsufficientData(source string, stats models.ExtractionStats) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeInsufficientData,
		fmt.Sprintf("no valid Duration values in %q (%d blank, %d malformed)", source, stats.Skipped, stats.Malformed), nil)
}

// errMalformedDuration returns an error for the first malformed value in strict mode.
func errMalformedDuration(source string, row int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeMalformedDuration,
		fmt.Sprintf("malformed Duration at row %d of %q", row, source), cause)
}

// errSourceUnreadable returns an error when the input file cannot be opened or decoded.
func errSourceUnreadable(source string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidInputError(codeSourceUnreadable, fmt.Sprintf("cannot read %q", source), cause)
}

// errInternalOutputStoreFailed returns an error when the normalized column cannot be written.
func errInternalOutputStoreFailed(output string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputStoreFailed, fmt.Sprintf("cannot write %q", output), cause)
}
