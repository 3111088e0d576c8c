package statistics

import "errors"

var (
	ErrInsufficientData  = errors.New("insufficient data")
	ErrZeroTimeSpan      = errors.New("zero time span")
	ErrInvalidPercentile = errors.New("percentile must be within [0, 100]")
)
