package extractors

import (
	"context"

	"duration-stats/internal/models"
	"duration-stats/internal/shared/loggers"
	"duration-stats/internal/shared/metrics"
	"duration-stats/internal/shared/svcerrors"
	"duration-stats/internal/stores"
)

//go:generate mockgen -source=extraction_service.go -destination=./mocks/extraction_service_mock.go -package=mocks
type ExtractionService interface {
	// ExtractFile normalizes the Duration column of inputKey and writes it to outputKey.
	ExtractFile(ctx context.Context, inputKey, outputKey string) (*models.ExtractionStats, error)
}

type extractionService struct {
	sourceStore stores.SourceFileStore
	outputStore stores.DurationOutputStore
	extractor   DurationExtractor
}

func NewExtractionService(sourceStore stores.SourceFileStore, outputStore stores.DurationOutputStore, extractor DurationExtractor) ExtractionService {
	return &extractionService{
		sourceStore: sourceStore,
		outputStore: outputStore,
		extractor:   extractor,
	}
}

func (s *extractionService) ExtractFile(ctx context.Context, inputKey, outputKey string) (*models.ExtractionStats, error) {
	stats, err := s.extractFile(ctx, inputKey, outputKey)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricFilesExtractedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	metricFilesExtractedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return stats, nil
}

func (s *extractionService) extractFile(ctx context.Context, inputKey, outputKey string) (*models.ExtractionStats, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started extracting durations from %q", s.sourceStore.Path(inputKey))

	table, err := s.sourceStore.Load(ctx, inputKey)
	if err != nil {
		return nil, errSourceUnreadable(inputKey, err)
	}

	extraction, err := s.extractor.Extract(ctx, table)
	if err != nil {
		return nil, err
	}
	if extraction.Stats.Processed == 0 {
		return nil, errInsufficientData(inputKey, extraction.Stats)
	}

	if err := s.outputStore.Put(ctx, outputKey, extraction.Values); err != nil {
		return nil, errInternalOutputStoreFailed(outputKey, err)
	}

	logger.Info().
		Str(loggers.FieldSourceFile, inputKey).
		Str(loggers.FieldOutputFile, outputKey).
		Int("processed", extraction.Stats.Processed).
		Int("skipped", extraction.Stats.Skipped).
		Int("malformed", extraction.Stats.Malformed).
		Msg("extracted durations")

	return &extraction.Stats, nil
}
