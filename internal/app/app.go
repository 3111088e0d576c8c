package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime/debug"
	"time"

	"duration-stats/internal/batches"
	"duration-stats/internal/extractors"
	"duration-stats/internal/shared/configs"
	"duration-stats/internal/shared/filestorages"
	"duration-stats/internal/shared/loggers"
	"duration-stats/internal/shared/metrics"
	"duration-stats/internal/shared/svcerrors"
	"duration-stats/internal/shared/ulid"
	"duration-stats/internal/stores"
	"duration-stats/internal/summarizers"
	"duration-stats/internal/timebuckets"
)

const appName = "durstats"

// App holds the configuration and logger of one invocation and wires the
// stores and services for the selected mode.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	stdout    io.Writer
}

// New creates an App logging to stderr and reporting results on stdout.
func New(config *configs.Config, stdout, stderr io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldRunID, ulid.NewRunID()).
		Logger()

	return &App{
		config:    config,
		appLogger: appLogger,
		stdout:    stdout,
	}, nil
}

// Run validates args and executes single-file or batch mode. A panic in
// either mode is logged with its stack and returned as an internal error.
func (app *App) Run(ctx context.Context, args Args) (err error) {
	if err := args.Validate(); err != nil {
		return err
	}

	logger := app.appLogger.With().Str(loggers.FieldMode, string(args.Mode())).Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	defer app.exportMetrics(ctx)
	defer recoverPanic(logger, &err)

	switch args.Mode() {
	case ModeBatch:
		err = app.runBatch(ctx, args)
	default:
		err = app.runSingle(ctx, args)
	}

	if err == nil {
		logger.Info().
			Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
			Msg("run completed")
	}
	return err
}

func (app *App) runSingle(ctx context.Context, args Args) error {
	inputDir, inputKey := filepath.Split(args.InputPath)
	outputPath := args.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(inputDir, app.config.Output.Prefix+inputKey)
	}
	outputDir, _ := filepath.Split(outputPath)

	sourceStorage, err := newFileStorage(inputDir)
	if err != nil {
		return err
	}
	outputStorage, err := newFileStorage(outputDir)
	if err != nil {
		return err
	}

	extractionService := extractors.NewExtractionService(
		stores.NewSourceFileStore(sourceStorage, app.config.Input.Encoding),
		stores.NewDurationOutputStore(outputStorage, app.config.Output.Overwrite),
		extractors.NewDurationExtractor(app.config.Input.Strict),
	)

	return app.extract(ctx, extractionService, args.InputPath, outputPath)
}

// extract runs the extraction service on one file and reports the written path.
func (app *App) extract(ctx context.Context, service extractors.ExtractionService, inputPath, outputPath string) error {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldComponent, "extraction_service").Logger()
	ctx = logger.WithContext(ctx)

	_, inputKey := filepath.Split(inputPath)
	_, outputKey := filepath.Split(outputPath)
	if _, err := service.ExtractFile(ctx, inputKey, outputKey); err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Successfully processed '%s' into '%s'.\n", inputPath, outputPath)
	return nil
}

func (app *App) runBatch(ctx context.Context, args Args) error {
	summaryPath := args.SummaryOutput
	if summaryPath == "" {
		summaryPath = filepath.Join(args.BatchDir, app.config.Output.SummaryFileName)
	}
	summaryDir, summaryKey := filepath.Split(summaryPath)

	batchStorage, err := newFileStorage(args.BatchDir)
	if err != nil {
		return err
	}
	summaryStorage, err := newFileStorage(summaryDir)
	if err != nil {
		return err
	}

	bucketer, err := timebuckets.NewBucketerFromName(app.config.Timestamps.Location)
	if err != nil {
		return errInvalidConfig(err)
	}

	// The summary must not be read back as input on the next run.
	var excludeKeys []string
	if batchStorage.Path(summaryKey) == summaryStorage.Path(summaryKey) {
		excludeKeys = append(excludeKeys, summaryKey)
	}

	aggregator := batches.NewBatchAggregator(
		stores.NewSourceFileStore(batchStorage, app.config.Input.Encoding),
		stores.NewDurationOutputStore(batchStorage, app.config.Output.Overwrite),
		stores.NewSummaryTableStore(summaryStorage, app.config.Summary.P95Precision, app.config.Summary.IntensityPrecision),
		extractors.NewDurationExtractor(app.config.Input.Strict),
		summarizers.NewFileSummarizer(bucketer),
		batches.Options{
			OutputPrefix: app.config.Output.Prefix,
			SummaryKey:   summaryKey,
			ExcludeKeys:  excludeKeys,
			FailOnEmpty:  app.config.Batch.FailOnEmpty,
		},
	)

	return app.aggregate(ctx, aggregator, args.BatchDir, summaryPath)
}

// aggregate runs one batch and reports the number of summary rows written.
func (app *App) aggregate(ctx context.Context, aggregator batches.BatchAggregator, batchDir, summaryPath string) error {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldComponent, "batch_aggregator").Logger()
	ctx = logger.WithContext(ctx)

	table, err := aggregator.RunBatch(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Successfully processed directory '%s' and wrote %d summary row(s) to '%s'.\n",
		batchDir, len(table), summaryPath)
	return nil
}

// recoverPanic logs a recovered panic with its stack and stores it in errp
// as an internal error. It must be deferred directly.
func recoverPanic(logger loggers.Logger, errp *error) {
	if r := recover(); r != nil {
		logger.Error().
			Bytes(loggers.FieldErrorStack, debug.Stack()).
			Msgf("panic recovered: %v", r)
		*errp = svcerrors.NewInternalErrorUndefined(fmt.Errorf("panic: %v", r))
	}
}

// exportMetrics writes the metrics textfile, if configured. Failures are
// logged and do not change the outcome of the run.
func (app *App) exportMetrics(ctx context.Context) {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msgf("failed to write metrics textfile %q", path)
	}
}

// newFileStorage roots a storage at dir; the empty dir is the working directory.
func newFileStorage(dir string) (filestorages.FileStorage, error) {
	if dir == "" {
		dir = "."
	}
	fileStorage, err := filestorages.NewFileStorage(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return fileStorage, nil
}
