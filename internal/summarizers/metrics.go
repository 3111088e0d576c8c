package summarizers

import (
	"duration-stats/internal/shared/metrics"
)

const (
	outcomeComplete     = "complete"
	outcomeDurationOnly = "duration_only"
	outcomeDateOnly     = "date_only"
	outcomeSkipped      = "skipped"
)

// metricRowsTotal counts summarized rows by which of their fields were usable.
//
//   - complete: both Duration and Date valid
//   - duration_only: Date blank or unparseable, row still counts towards n and P95
//   - date_only: Duration blank or malformed, row still counts towards intensity, date and time of day
//   - skipped: neither field valid
var (
	metricRowsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSummary,
			Name:      "rows_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
