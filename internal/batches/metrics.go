package batches

import (
	"errors"

	"duration-stats/internal/shared/metrics"
	"duration-stats/internal/statistics"
)

const (
	outcomeSummarized    = "summarized"
	outcomeNoSummary     = "no_summary"
	outcomeFailed        = "failed"
	outcomeNotApplicable = "not_applicable"
)

const (
	reasonNoDateColumn     = "no_date_column"
	reasonInsufficientData = "insufficient_data"
	reasonZeroTimeSpan     = "zero_time_span"
	reasonOther            = "other"
)

// metricFilesTotal counts directory entries by how the batch handled them.
//
//   - summarized: durations written and a summary row appended
//   - no_summary: durations written, no summary row (see metricNoSummaryTotal)
//   - failed: the file could not be read, extracted or written
//   - not_applicable: not a .csv file, or an output of a previous run
var (
	metricFilesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "files_total",
		},
		[]string{metrics.FieldOutcome},
	)

	metricNoSummaryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "no_summary_total",
		},
		[]string{metrics.FieldReason},
	)

	metricFileDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "file_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldOutcome},
	)

	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubBatch,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)

// noSummaryReason labels why a file produced no summary row.
func noSummaryReason(err error) string {
	switch {
	case errors.Is(err, errNoDateColumn):
		return reasonNoDateColumn
	case errors.Is(err, statistics.ErrZeroTimeSpan):
		return reasonZeroTimeSpan
	case errors.Is(err, statistics.ErrInsufficientData):
		return reasonInsufficientData
	default:
		return reasonOther
	}
}
