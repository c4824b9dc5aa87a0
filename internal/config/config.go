package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"bizstats/internal"
	"bizstats/internal/errors"
)

// Report formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// SupportedFormats lists the accepted REPORT_FORMAT values
var SupportedFormats = []string{FormatText, FormatMarkdown, FormatHTML}

// Sampling engines
const (
	// EngineLegacy replays numpy's seeded RandomState streams (MT19937)
	EngineLegacy = "legacy"
	// EngineDistuv draws with gonum distuv from a PCG stream
	EngineDistuv = "distuv"
)

// SupportedEngines lists the accepted SAMPLER_ENGINE values
var SupportedEngines = []string{EngineLegacy, EngineDistuv}

// Config represents the complete application configuration. Scenario
// constants are deliberately absent: they live in domain/scenario.
type Config struct {
	Report   ReportConfig
	Sampling SamplingConfig
	Logging  LoggingConfig
}

// ReportConfig controls how a finished run is presented
type ReportConfig struct {
	Format   string
	XLSXPath string // empty disables the Excel export
	Preview  int    // leading sample values to print
}

// SamplingConfig selects the random stream and sampling algorithms
type SamplingConfig struct {
	Engine string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level internal.LogLevel
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	reportConfig, err := loadReportConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load report configuration")
	}
	config.Report = *reportConfig

	config.Sampling = SamplingConfig{
		Engine: strings.ToLower(getEnvOrDefault("SAMPLER_ENGINE", EngineLegacy)),
	}

	loggingConfig, err := loadLoggingConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logging configuration")
	}
	config.Logging = *loggingConfig

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Format:  FormatText,
			Preview: 10,
		},
		Sampling: SamplingConfig{Engine: EngineLegacy},
		Logging: LoggingConfig{Level: internal.LogLevelWarn},
	}
}

func loadReportConfig() (*ReportConfig, error) {
	preview, err := getEnvIntOrDefault("REPORT_PREVIEW", 10)
	if err != nil {
		return nil, err
	}
	return &ReportConfig{
		Format:   strings.ToLower(getEnvOrDefault("REPORT_FORMAT", FormatText)),
		XLSXPath: getEnvOrDefault("REPORT_XLSX", ""),
		Preview:  preview,
	}, nil
}

func loadLoggingConfig() (*LoggingConfig, error) {
	name := getEnvOrDefault("LOG_LEVEL", "WARN")
	level, ok := internal.ParseLogLevel(name)
	if !ok {
		return nil, errors.ConfigInvalid(fmt.Sprintf("unknown LOG_LEVEL %q", name))
	}
	return &LoggingConfig{Level: level}, nil
}

func validateConfig(config *Config) error {
	if !IsSupportedFormat(config.Report.Format) {
		return errors.ConfigInvalid(fmt.Sprintf("REPORT_FORMAT must be one of %s, got %q",
			strings.Join(SupportedFormats, ", "), config.Report.Format))
	}
	if !IsSupportedEngine(config.Sampling.Engine) {
		return errors.ConfigInvalid(fmt.Sprintf("SAMPLER_ENGINE must be one of %s, got %q",
			strings.Join(SupportedEngines, ", "), config.Sampling.Engine))
	}
	if config.Report.Preview < 0 {
		return errors.ConfigInvalid("REPORT_PREVIEW cannot be negative")
	}
	return nil
}

// IsSupportedFormat reports whether name is a known report format
func IsSupportedFormat(name string) bool {
	for _, f := range SupportedFormats {
		if f == name {
			return true
		}
	}
	return false
}

// IsSupportedEngine reports whether name is a known sampling engine
func IsSupportedEngine(name string) bool {
	for _, e := range SupportedEngines {
		if e == name {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s must be an integer, got %q", key, value))
	}
	return intValue, nil
}
