package configs

// Config holds all configuration for the application.
type Config struct {
	Log        LogConfig       `mapstructure:"log" validate:"required"`
	Input      InputConfig     `mapstructure:"input" validate:"required"`
	Output     OutputConfig    `mapstructure:"output" validate:"required"`
	Timestamps TimestampConfig `mapstructure:"timestamps" validate:"required"`
	Summary    SummaryConfig   `mapstructure:"summary" validate:"required"`
	Batch      BatchConfig     `mapstructure:"batch"`
	Metrics    MetricsConfig   `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// InputConfig controls how source CSV files are read.
type InputConfig struct {
	Encoding string `mapstructure:"encoding" validate:"required,charset"` // applies to reading only, outputs are UTF-8
	Strict   bool   `mapstructure:"strict"`                               // single-file mode: malformed Duration aborts
}

// OutputConfig controls output file naming.
type OutputConfig struct {
	Prefix          string `mapstructure:"prefix" validate:"required,excludesall=/\\"`
	SummaryFileName string `mapstructure:"summary_file_name" validate:"required,excludesall=/\\"`
	Overwrite       bool   `mapstructure:"overwrite"` // false: an existing durations file is an error
}

// TimestampConfig holds the reference location used for time-of-day buckets and dates.
type TimestampConfig struct {
	Location string `mapstructure:"location" validate:"required,timezone"`
}

// SummaryConfig holds the number formatting of the summary table.
type SummaryConfig struct {
	P95Precision       int `mapstructure:"p95_precision" validate:"min=0,max=9"`       // decimal places
	IntensityPrecision int `mapstructure:"intensity_precision" validate:"min=0,max=9"` // decimal places
}

// BatchConfig holds batch mode policy.
type BatchConfig struct {
	FailOnEmpty bool `mapstructure:"fail_on_empty"` // fail when no file yields a summary row
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the export
}
