package batches

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"duration-stats/internal/extractors"
	"duration-stats/internal/models"
	"duration-stats/internal/shared/loggers"
	"duration-stats/internal/shared/metrics"
	"duration-stats/internal/shared/svcerrors"
	"duration-stats/internal/stores"
	"duration-stats/internal/summarizers"
)

const csvSuffix = ".csv"

var errNoDateColumn = errors.New("no Date column")

// Options configures one batch run.
type Options struct {
	// OutputPrefix names the per-file outputs: <OutputPrefix><input name>.
	OutputPrefix string
	// SummaryKey is the key the summary table is written under.
	SummaryKey string
	// ExcludeKeys are never treated as input, typically the summary file
	// when it lives in the batch directory.
	ExcludeKeys []string
	// FailOnEmpty makes a run with no summary rows an error instead of
	// writing a header-only summary.
	FailOnEmpty bool
}

//go:generate mockgen -source=batch_aggregator.go -destination=./mocks/batch_aggregator_mock.go -package=mocks
type BatchAggregator interface {
	// RunBatch processes every eligible file of the source directory in name
	// order and writes the summary table once at the end.
	RunBatch(ctx context.Context) (models.SummaryTable, error)
}

type batchAggregator struct {
	sourceStore  stores.SourceFileStore
	outputStore  stores.DurationOutputStore
	summaryStore stores.SummaryTableStore
	extractor    extractors.DurationExtractor
	summarizer   summarizers.FileSummarizer
	options      Options
}

func NewBatchAggregator(
	sourceStore stores.SourceFileStore,
	outputStore stores.DurationOutputStore,
	summaryStore stores.SummaryTableStore,
	extractor extractors.DurationExtractor,
	summarizer summarizers.FileSummarizer,
	options Options,
) BatchAggregator {
	return &batchAggregator{
		sourceStore:  sourceStore,
		outputStore:  outputStore,
		summaryStore: summaryStore,
		extractor:    extractor,
		summarizer:   summarizer,
		options:      options,
	}
}

func (a *batchAggregator) RunBatch(ctx context.Context) (models.SummaryTable, error) {
	table, err := a.runBatch(ctx)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricRunsTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	metricRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return table, nil
}

func (a *batchAggregator) runBatch(ctx context.Context) (models.SummaryTable, error) {
	logger := loggers.Ctx(ctx)

	keys, err := a.sourceStore.List(ctx)
	if err != nil {
		return nil, errInternalListFailed(err)
	}

	table := make(models.SummaryTable, 0, len(keys))
	eligible := 0
	for _, key := range keys {
		if !a.isEligible(key) {
			metricFilesTotal.WithLabelValues(outcomeNotApplicable).Inc()
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errInternalBatchInterrupted(err)
		}
		eligible++

		start := time.Now()
		record, err := a.processFile(ctx, key)
		elapsed := time.Since(start)

		outcome := outcomeSummarized
		switch {
		case err == nil:
			table = append(table, *record)
		case isNoSummary(err):
			outcome = outcomeNoSummary
			reason := noSummaryReason(err)
			metricNoSummaryTotal.WithLabelValues(reason).Inc()
			logger.Warn().
				Str(loggers.FieldSourceFile, key).
				Str(loggers.FieldReason, reason).
				Err(err).
				Msgf("no summary row for %q", key)
		default:
			outcome = outcomeFailed
			logger.Error().
				Str(loggers.FieldSourceFile, key).
				Int64(loggers.FieldDuration, elapsed.Milliseconds()).
				Err(err).
				Msgf("failed to process %q; continuing with the next file", key)
		}
		metricFilesTotal.WithLabelValues(outcome).Inc()
		metricFileDurationSeconds.WithLabelValues(outcome).Observe(elapsed.Seconds())
	}

	logger.Info().Msgf("summarized %d of %d eligible file(s)", len(table), eligible)

	if len(table) == 0 && a.options.FailOnEmpty {
		return nil, errNoSummaryRows(eligible)
	}

	if err := a.summaryStore.Put(ctx, a.options.SummaryKey, table); err != nil {
		return nil, errInternalSummaryStoreFailed(a.options.SummaryKey, err)
	}

	return table, nil
}

// processFile writes the normalized durations of key and summarizes it. The
// durations file is written even when the file yields no summary row.
func (a *batchAggregator) processFile(ctx context.Context, key string) (*models.FileSummaryRecord, error) {
	source, err := a.sourceStore.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	extraction, err := a.extractor.Extract(ctx, source)
	if err != nil {
		return nil, err
	}

	outputKey := a.options.OutputPrefix + key
	if err := a.outputStore.Put(ctx, outputKey, extraction.Values); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", outputKey, err)
	}
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldSourceFile, key).
		Str(loggers.FieldOutputFile, outputKey).
		Int("processed", extraction.Stats.Processed).
		Int("skipped", extraction.Stats.Skipped).
		Int("malformed", extraction.Stats.Malformed).
		Msg("wrote durations")

	if !source.HasDateColumn {
		return nil, &summarizers.SummaryError{Source: key, Cause: errNoDateColumn}
	}

	return a.summarizer.Summarize(ctx, key, source.Rows)
}

func (a *batchAggregator) isEligible(key string) bool {
	if !strings.HasSuffix(strings.ToLower(key), csvSuffix) {
		return false
	}
	if a.options.OutputPrefix != "" && strings.HasPrefix(key, a.options.OutputPrefix) {
		return false
	}
	for _, excluded := range a.options.ExcludeKeys {
		if key == excluded {
			return false
		}
	}
	return true
}

func isNoSummary(err error) bool {
	var summaryErr *summarizers.SummaryError
	return errors.As(err, &summaryErr)
}
