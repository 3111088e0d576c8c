package configs

import (
	"fmt"
	"strings"

	"duration-stats/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. DURSTATS_LOG_LEVEL.
const EnvPrefix = "DURSTATS"

var defaults = map[string]any{
	"log.level":                   "info",
	"log.format":                  "json",
	"input.encoding":              "utf-8",
	"input.strict":                false,
	"output.prefix":               "durations_",
	"output.summary_file_name":    "summary.csv",
	"output.overwrite":            true,
	"timestamps.location":         "UTC",
	"summary.p95_precision":       2,
	"summary.intensity_precision": 2,
	"batch.fail_on_empty":         true,
	"metrics.textfile_path":       "",
}

// FlagBindings maps config keys to the command-line flags that override them.
var FlagBindings = map[string]string{
	"log.level":             "log-level",
	"log.format":            "log-format",
	"input.encoding":        "encoding",
	"input.strict":          "strict",
	"output.overwrite":      "overwrite",
	"timestamps.location":   "timezone",
	"metrics.textfile_path": "metrics-textfile",
}

// LoadConfig builds the configuration from defaults, the optional YAML file at
// configPath, DURSTATS_* environment variables and the changed flags in flags
// (in increasing precedence), then validates it.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		for key, name := range FlagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Summary.P95Precision" -> "summary.p95precision"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "charset":
		msg = fmt.Sprintf("%s (unknown charset %q)", field, e.Value())
	case "timezone":
		msg = fmt.Sprintf("%s (unknown location %q)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}
	return msg
}
