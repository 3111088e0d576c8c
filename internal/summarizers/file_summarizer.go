package summarizers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"duration-stats/internal/models"
	"duration-stats/internal/normalizers"
	"duration-stats/internal/shared/loggers"
	"duration-stats/internal/statistics"
	"duration-stats/internal/timebuckets"
)

// SummaryPercentile is the percentile reported in the P95 column.
const SummaryPercentile = 95

var errBlankField = errors.New("blank field")

//go:generate mockgen -source=file_summarizer.go -destination=./mocks/file_summarizer_mock.go -package=mocks
type FileSummarizer interface {
	// Summarize reduces the rows of one file to a single summary record.
	Summarize(ctx context.Context, source string, rows []models.RawRow) (*models.FileSummaryRecord, error)
}

type fileSummarizer struct {
	bucketer *timebuckets.Bucketer
}

func NewFileSummarizer(bucketer *timebuckets.Bucketer) FileSummarizer {
	return &fileSummarizer{bucketer: bucketer}
}

// Summarize validates Duration and Date independently: a row with a bad
// Duration still feeds the timestamp statistics and vice versa. Only rows
// with neither field usable are dropped.
func (s *fileSummarizer) Summarize(ctx context.Context, source string, rows []models.RawRow) (*models.FileSummaryRecord, error) {
	logger := loggers.Ctx(ctx)

	durations := make([]float64, 0, len(rows))
	timestamps := make([]time.Time, 0, len(rows))
	bucketCounts := make(map[models.TimeOfDay]int, len(models.TimesOfDay))

	for _, row := range rows {
		duration, durationErr := s.parseDuration(row.Duration)
		timestamp, timestampErr := s.parseDate(row.Date)

		if durationErr == nil {
			durations = append(durations, duration)
		}
		if timestampErr == nil {
			timestamps = append(timestamps, timestamp)
			bucketCounts[s.bucketer.Bucket(timestamp)]++
		}

		switch {
		case durationErr == nil && timestampErr == nil:
			metricRowsTotal.WithLabelValues(outcomeComplete).Inc()
		case durationErr == nil:
			metricRowsTotal.WithLabelValues(outcomeDurationOnly).Inc()
			logger.Debug().
				Str(loggers.FieldSourceFile, source).
				Int(loggers.FieldRow, row.Number).
				Err(timestampErr).
				Msg("row has no usable Date; counted for duration statistics only")
		case timestampErr == nil:
			metricRowsTotal.WithLabelValues(outcomeDateOnly).Inc()
			logger.Debug().
				Str(loggers.FieldSourceFile, source).
				Int(loggers.FieldRow, row.Number).
				Err(durationErr).
				Msg("row has no usable Duration; counted for timestamp statistics only")
		default:
			metricRowsTotal.WithLabelValues(outcomeSkipped).Inc()
			logger.Warn().
				Str(loggers.FieldSourceFile, source).
				Int(loggers.FieldRow, row.Number).
				Str("duration_value", row.Duration).
				Str("date_value", row.Date).
				Msgf("row %d of %q has neither a valid Duration nor a valid Date; skipping", row.Number, source)
		}
	}

	if len(durations) == 0 {
		return nil, &SummaryError{Source: source, Cause: fmt.Errorf("%w: no valid Duration values", statistics.ErrInsufficientData)}
	}
	if len(timestamps) == 0 {
		return nil, &SummaryError{Source: source, Cause: fmt.Errorf("%w: no valid Date values", statistics.ErrInsufficientData)}
	}

	p95, err := statistics.Percentile(durations, SummaryPercentile)
	if err != nil {
		return nil, &SummaryError{Source: source, Cause: err}
	}

	intensity, err := statistics.Intensity(timestamps)
	if err != nil {
		return nil, &SummaryError{Source: source, Cause: err}
	}

	timeOfDay, err := timebuckets.DominantBucket(bucketCounts)
	if err != nil {
		return nil, &SummaryError{Source: source, Cause: err}
	}

	earliest := timestamps[0]
	for _, ts := range timestamps[1:] {
		if ts.Before(earliest) {
			earliest = ts
		}
	}

	if description, err := statistics.Describe(durations); err == nil {
		logger.Debug().
			Str(loggers.FieldSourceFile, source).
			Float64("min_ms", description.Min).
			Float64("median_ms", description.Median).
			Float64("mean_ms", description.Mean).
			Float64("max_ms", description.Max).
			Float64("p95_ms", p95).
			Msg("duration distribution")
	}

	record := models.NewFileSummaryRecord(source, s.bucketer.CalendarDate(earliest), len(durations), p95, timeOfDay, intensity)
	return &record, nil
}

func (s *fileSummarizer) parseDuration(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, errBlankField
	}
	return normalizers.ParseDuration(raw)
}

func (s *fileSummarizer) parseDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, errBlankField
	}
	return s.bucketer.ParseTimestamp(raw)
}
