package summarizers

import "fmt"

// SummaryError reports why a file produced no summary row. The cause wraps
// statistics.ErrInsufficientData or statistics.ErrZeroTimeSpan.
type SummaryError struct {
	Source string
	Cause  error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("cannot summarize %q: %v", e.Source, e.Cause)
}

func (e *SummaryError) Unwrap() error {
	return e.Cause
}
