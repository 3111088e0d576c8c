package batches_test

import (
	"context"
	"errors"
	"testing"

	"duration-stats/internal/batches"
	extractormocks "duration-stats/internal/extractors/mocks"
	"duration-stats/internal/models"
	"duration-stats/internal/shared/csvio"
	"duration-stats/internal/shared/svcerrors"
	"duration-stats/internal/statistics"
	storemocks "duration-stats/internal/stores/mocks"
	"duration-stats/internal/summarizers"
	summarizermocks "duration-stats/internal/summarizers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type batchMocks struct {
	sourceStore  *storemocks.MockSourceFileStore
	outputStore  *storemocks.MockDurationOutputStore
	summaryStore *storemocks.MockSummaryTableStore
	extractor    *extractormocks.MockDurationExtractor
	summarizer   *summarizermocks.MockFileSummarizer
}

func newBatchAggregator(t *testing.T, options batches.Options) (batches.BatchAggregator, *batchMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &batchMocks{
		sourceStore:  storemocks.NewMockSourceFileStore(ctrl),
		outputStore:  storemocks.NewMockDurationOutputStore(ctrl),
		summaryStore: storemocks.NewMockSummaryTableStore(ctrl),
		extractor:    extractormocks.NewMockDurationExtractor(ctrl),
		summarizer:   summarizermocks.NewMockFileSummarizer(ctrl),
	}
	aggregator := batches.NewBatchAggregator(m.sourceStore, m.outputStore, m.summaryStore, m.extractor, m.summarizer, options)
	return aggregator, m
}

func defaultOptions() batches.Options {
	return batches.Options{
		OutputPrefix: "durations_",
		SummaryKey:   "summary.csv",
		ExcludeKeys:  []string{"summary.csv"},
		FailOnEmpty:  true,
	}
}

// expectFile wires the load, extract and output write of one file.
func (m *batchMocks) expectFile(ctx context.Context, key string, hasDate bool, values ...float64) *models.SourceTable {
	source := &models.SourceTable{
		Name:          key,
		HasDateColumn: hasDate,
		Rows:          []models.RawRow{{Number: 2, Duration: "1ms", Date: "2025-10-27T09:00:00Z"}},
	}
	m.sourceStore.EXPECT().Load(ctx, key).Return(source, nil)
	m.extractor.EXPECT().Extract(ctx, source).Return(&models.Extraction{
		Source: key,
		Values: values,
		Stats:  models.ExtractionStats{Processed: len(values)},
	}, nil)
	m.outputStore.EXPECT().Put(ctx, "durations_"+key, values).Return(nil)
	return source
}

func TestRunBatch_SummarizesEligibleFilesInOrder(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx := context.Background()

	m.sourceStore.EXPECT().List(ctx).Return([]string{
		"alpha.csv", "beta.CSV", "durations_alpha.csv", "notes.txt", "summary.csv",
	}, nil)

	alpha := m.expectFile(ctx, "alpha.csv", true, 100, 200, 3000)
	beta := m.expectFile(ctx, "beta.CSV", true, 5)

	alphaRecord := models.NewFileSummaryRecord("alpha.csv", "2025-10-27", 3, 2720, models.Morning, 1.5)
	betaRecord := models.NewFileSummaryRecord("beta.CSV", "2025-10-28", 1, 5, models.Evening, 0.25)
	gomock.InOrder(
		m.summarizer.EXPECT().Summarize(ctx, "alpha.csv", alpha.Rows).Return(&alphaRecord, nil),
		m.summarizer.EXPECT().Summarize(ctx, "beta.CSV", beta.Rows).Return(&betaRecord, nil),
	)

	want := models.SummaryTable{alphaRecord, betaRecord}
	m.summaryStore.EXPECT().Put(ctx, "summary.csv", want).Return(nil)

	table, err := aggregator.RunBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, table)
}

func TestRunBatch_ContinuesAfterFileFailures(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx := context.Background()

	m.sourceStore.EXPECT().List(ctx).Return([]string{"a.csv", "b.csv", "c.csv", "d.csv"}, nil)

	// a.csv has no Duration column
	m.sourceStore.EXPECT().Load(ctx, "a.csv").Return(nil, csvio.ErrMissingColumn)

	// b.csv fails in strict extraction
	bSource := &models.SourceTable{Name: "b.csv", HasDateColumn: true}
	m.sourceStore.EXPECT().Load(ctx, "b.csv").Return(bSource, nil)
	m.extractor.EXPECT().Extract(ctx, bSource).Return(nil, svcerrors.NewInvalidInputError("EXT_1001", "malformed", nil))

	// c.csv cannot be written
	cSource := &models.SourceTable{Name: "c.csv", HasDateColumn: true}
	m.sourceStore.EXPECT().Load(ctx, "c.csv").Return(cSource, nil)
	m.extractor.EXPECT().Extract(ctx, cSource).Return(&models.Extraction{Source: "c.csv", Values: []float64{1}}, nil)
	m.outputStore.EXPECT().Put(ctx, "durations_c.csv", []float64{1}).Return(errors.New("read-only file system"))

	d := m.expectFile(ctx, "d.csv", true, 7)
	dRecord := models.NewFileSummaryRecord("d.csv", "2025-10-27", 1, 7, models.Afternoon, 2)
	m.summarizer.EXPECT().Summarize(ctx, "d.csv", d.Rows).Return(&dRecord, nil)

	m.summaryStore.EXPECT().Put(ctx, "summary.csv", models.SummaryTable{dRecord}).Return(nil)

	table, err := aggregator.RunBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SummaryTable{dRecord}, table)
}

func TestRunBatch_WritesDurationsForFilesWithoutSummary(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx := context.Background()

	m.sourceStore.EXPECT().List(ctx).Return([]string{"nodate.csv", "single.csv", "ok.csv"}, nil)

	// no Date column: durations written, summarizer never called
	m.expectFile(ctx, "nodate.csv", false, 1, 2)

	single := m.expectFile(ctx, "single.csv", true, 1)
	m.summarizer.EXPECT().Summarize(ctx, "single.csv", single.Rows).
		Return(nil, &summarizers.SummaryError{Source: "single.csv", Cause: statistics.ErrInsufficientData})

	ok := m.expectFile(ctx, "ok.csv", true, 3)
	okRecord := models.NewFileSummaryRecord("ok.csv", "2025-10-27", 1, 3, models.Morning, 1)
	m.summarizer.EXPECT().Summarize(ctx, "ok.csv", ok.Rows).Return(&okRecord, nil)

	m.summaryStore.EXPECT().Put(ctx, "summary.csv", models.SummaryTable{okRecord}).Return(nil)

	table, err := aggregator.RunBatch(ctx)
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestRunBatch_ErrNoSummaryRows(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx := context.Background()

	m.sourceStore.EXPECT().List(ctx).Return([]string{"burst.csv", "readme.md"}, nil)
	burst := m.expectFile(ctx, "burst.csv", true, 1, 2)
	m.summarizer.EXPECT().Summarize(ctx, "burst.csv", burst.Rows).
		Return(nil, &summarizers.SummaryError{Source: "burst.csv", Cause: statistics.ErrZeroTimeSpan})
	// the summary is not written

	table, err := aggregator.RunBatch(ctx)
	assert.Nil(t, table)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "BAT_1000", svcErr.Code)
	assert.Equal(t, "invalid_input", svcErr.Category)
	assert.Contains(t, svcErr.Message, "none of the 1 eligible file(s)")
}

func TestRunBatch_EmptyDirectory_HeaderOnlySummary(t *testing.T) {
	t.Parallel()

	options := defaultOptions()
	options.FailOnEmpty = false
	aggregator, m := newBatchAggregator(t, options)
	ctx := context.Background()

	m.sourceStore.EXPECT().List(ctx).Return(nil, nil)
	m.summaryStore.EXPECT().Put(ctx, "summary.csv", models.SummaryTable{}).Return(nil)

	table, err := aggregator.RunBatch(ctx)
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestRunBatch_ErrInternalListFailed(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx := context.Background()

	cause := errors.New("permission denied")
	m.sourceStore.EXPECT().List(ctx).Return(nil, cause)

	_, err := aggregator.RunBatch(ctx)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "BAT_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
	assert.ErrorIs(t, err, cause)
}

func TestRunBatch_ErrInternalSummaryStoreFailed(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx := context.Background()

	m.sourceStore.EXPECT().List(ctx).Return([]string{"alpha.csv"}, nil)
	alpha := m.expectFile(ctx, "alpha.csv", true, 1)
	record := models.NewFileSummaryRecord("alpha.csv", "2025-10-27", 1, 1, models.Morning, 1)
	m.summarizer.EXPECT().Summarize(ctx, "alpha.csv", alpha.Rows).Return(&record, nil)

	cause := errors.New("disk full")
	m.summaryStore.EXPECT().Put(ctx, "summary.csv", models.SummaryTable{record}).Return(cause)

	_, err := aggregator.RunBatch(ctx)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "BAT_9001", svcErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestRunBatch_ErrInternalBatchInterrupted(t *testing.T) {
	t.Parallel()

	aggregator, m := newBatchAggregator(t, defaultOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.sourceStore.EXPECT().List(ctx).Return([]string{"alpha.csv"}, nil)

	_, err := aggregator.RunBatch(ctx)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "BAT_9002", svcErr.Code)
	assert.ErrorIs(t, err, context.Canceled)
}
