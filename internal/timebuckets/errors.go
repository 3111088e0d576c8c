package timebuckets

import (
	"errors"
	"fmt"
)

var (
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
	ErrNoObservations       = errors.New("no observations")
)

// UnparseableTimestampError reports a Date value that is not ISO-8601.
type UnparseableTimestampError struct {
	Raw string
}

func (e *UnparseableTimestampError) Error() string {
	return fmt.Sprintf("unparseable timestamp %q: expected ISO-8601 such as 2025-10-27T09:00:00Z", e.Raw)
}

func (e *UnparseableTimestampError) Unwrap() error {
	return ErrUnparseableTimestamp
}
