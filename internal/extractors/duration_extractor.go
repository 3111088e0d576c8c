package extractors

import (
	"context"
	"strings"

	"duration-stats/internal/models"
	"duration-stats/internal/normalizers"
	"duration-stats/internal/shared/loggers"
)

//go:generate mockgen -source=duration_extractor.go -destination=./mocks/duration_extractor_mock.go -package=mocks
type DurationExtractor interface {
	// Extract normalizes the Duration column of table to milliseconds, keeping row order.
	Extract(ctx context.Context, table *models.SourceTable) (*models.Extraction, error)
}

type durationExtractor struct {
	strict bool
}

// NewDurationExtractor returns an extractor that skips blank and malformed
// values. With strict set, the first malformed value fails the extraction.
func NewDurationExtractor(strict bool) DurationExtractor {
	return &durationExtractor{strict: strict}
}

func (e *durationExtractor) Extract(ctx context.Context, table *models.SourceTable) (*models.Extraction, error) {
	logger := loggers.Ctx(ctx)

	extraction := &models.Extraction{
		Source: table.Name,
		Values: make([]float64, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		if strings.TrimSpace(row.Duration) == "" {
			extraction.Stats.Skipped++
			metricRowsTotal.WithLabelValues(outcomeSkipped).Inc()
			continue
		}

		value, err := normalizers.ParseDuration(row.Duration)
		if err != nil {
			extraction.Stats.Malformed++
			metricRowsTotal.WithLabelValues(outcomeMalformed).Inc()
			if e.strict {
				return nil, errMalformedDuration(table.Name, row.Number, err)
			}
			logger.Warn().
				Str(loggers.FieldSourceFile, table.Name).
				Int(loggers.FieldRow, row.Number).
				Str(loggers.FieldRawValue, row.Duration).
				Err(err).
				Msgf("skipping malformed Duration at row %d", row.Number)
			continue
		}

		extraction.Values = append(extraction.Values, value)
		extraction.Stats.Processed++
		metricRowsTotal.WithLabelValues(outcomeProcessed).Inc()
	}

	return extraction, nil
}
