package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. TSCSYM_LOGGING_LEVEL.
const EnvPrefix = "TSCSYM"

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid logging level")
	ErrInvalidLogFormat = errors.New("invalid logging format")
	ErrInvalidColor     = errors.New("invalid color mode")
	ErrEmptyManifest    = errors.New("generator manifest path is empty")
)

var (
	validLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validFormats = []string{"text", "json"}
	validColors  = []string{"auto", "always", "never"}
)

// Config holds all configuration for tscsym.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Gen     GenConfig     `mapstructure:"gen"`
	Grammar GrammarConfig `mapstructure:"grammar"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is one of auto, always or never.
	Color string `mapstructure:"color"`
}

// GenConfig holds code generator defaults.
type GenConfig struct {
	Manifest string `mapstructure:"manifest"`
	// Output, when set, overrides the output path named by the manifest.
	Output string `mapstructure:"output"`
}

// GrammarConfig selects the grammar table.
type GrammarConfig struct {
	// Snapshot, when set, is a YAML grammar snapshot used instead of the
	// linked tree-sitter-c grammar.
	Snapshot string `mapstructure:"snapshot"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for tscsym.yaml in the working directory and
// $HOME/.config/tscsym; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("tscsym")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/tscsym")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
	viperCfg.SetDefault("output.color", DefaultColor)
	viperCfg.SetDefault("gen.manifest", DefaultManifest)
	viperCfg.SetDefault("gen.output", "")
	viperCfg.SetDefault("grammar.snapshot", "")
}

func validateConfig(config *Config) error {
	config.Logging.Level = strings.ToLower(config.Logging.Level)

	if !slices.Contains(validLevels, config.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !slices.Contains(validFormats, config.Logging.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	if !slices.Contains(validColors, config.Output.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, config.Output.Color)
	}

	if config.Gen.Manifest == "" {
		return ErrEmptyManifest
	}

	return nil
}
