package extractors

import (
	"duration-stats/internal/shared/metrics"
)

const (
	outcomeProcessed = "processed"
	outcomeSkipped   = "skipped"
	outcomeMalformed = "malformed"
)

var (
	metricRowsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "rows_total",
		},
		[]string{metrics.FieldOutcome},
	)

	metricFilesExtractedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "files_extracted_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
