package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"iplstats/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig      `yaml:"data" envconfig:"DATA"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// DataConfig locates the two input datasets
type DataConfig struct {
	MatchesFile    string `yaml:"matches_file" envconfig:"MATCHES_FILE" validate:"required"`
	DeliveriesFile string `yaml:"deliveries_file" envconfig:"DELIVERIES_FILE" validate:"required"`
}

// ReportConfig selects the seasons used by the season-scoped reports
type ReportConfig struct {
	ExtrasSeason       string `yaml:"extras_season" envconfig:"EXTRAS_SEASON" validate:"required"`
	EconomySeason      string `yaml:"economy_season" envconfig:"ECONOMY_SEASON" validate:"required"`
	DismissalSeason    string `yaml:"dismissal_season" envconfig:"DISMISSAL_SEASON" validate:"required"`
	DismissalThreshold int    `yaml:"dismissal_threshold" envconfig:"DISMISSAL_THRESHOLD" validate:"gte=0"`
}

// ExportConfig controls the optional file export of the report tables.
// An empty Dir disables export.
type ExportConfig struct {
	Dir     string   `yaml:"dir" envconfig:"DIR"`
	Formats []string `yaml:"formats" envconfig:"FORMATS" validate:"required_with=Dir,dive,oneof=csv xlsx"`
	BOM     bool     `yaml:"bom" envconfig:"BOM"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output stderr"`
}

// TelemetryConfig contains tracing and metrics configuration
type TelemetryConfig struct {
	Tracing     bool   `yaml:"tracing" envconfig:"TRACING"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, then the YAML file at path
// (or the first file found in the default locations when path is empty),
// then IPL_* environment variables, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	configFile, err := resolveConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, errors.NewConfigError("failed to load config from file", err).
				WithContext("path", configFile)
		}
	}

	// Only variables that are set override; no default tags are declared so
	// unset variables leave file values alone.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile decodes a YAML file over cfg; keys absent from the file keep
// their current values
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// resolveConfigFile returns path when given (it must exist), otherwise the
// first existing default location, otherwise ""
func resolveConfigFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.NewNotFoundError(fmt.Sprintf("config file %s", path), err)
		}
		return path, nil
	}

	for _, location := range configFileLocations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return errors.NewConfigError("config validation failed", err)
	}
	return nil
}

// ExportEnabled reports whether report tables should be written to files
func (c *Config) ExportEnabled() bool {
	return c.Export.Dir != ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Data: DataConfig{
			MatchesFile:    DefaultMatchesFile,
			DeliveriesFile: DefaultDeliveriesFile,
		},
		Report: ReportConfig{
			ExtrasSeason:       DefaultExtrasSeason,
			EconomySeason:      DefaultEconomySeason,
			DismissalSeason:    DefaultDismissalSeason,
			DismissalThreshold: DefaultDismissalThreshold,
		},
		Export: ExportConfig{
			Formats: []string{ExportFormatCSV},
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
	}
}
