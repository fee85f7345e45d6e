package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	ModName          string `yaml:"mod_name" validate:"required"`
	ItemsDir         string `yaml:"items_dir" validate:"required"`
	ExcludePattern   string `yaml:"exclude_pattern"`
	DatabasePath     string `yaml:"database_path" validate:"required"`
	OutputPath       string `yaml:"output_path"`
	ShorthandOverlay string `yaml:"shorthand_overlay"`
	MetricsFile      string `yaml:"metrics_file"`
	SchemaCheck      bool   `yaml:"schema_check"`
	Debug            bool   `yaml:"debug"`

	LogLevel    string `yaml:"log_level" validate:"required,loglevel"`
	LogFormat   string `yaml:"log_format" validate:"required,oneof=json text"`
	Environment string `yaml:"environment" validate:"omitempty,oneof=dev release"`
	Version     string `yaml:"version"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		ModName:        DefaultModName,
		ItemsDir:       ConfigPathItemsDir,
		ExcludePattern: DefaultExcludePattern,
		DatabasePath:   ConfigPathDatabase,
		SchemaCheck:    true,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		Environment:    DefaultEnvironment,
		Version:        DefaultVersion,
	}
}

// Load builds the configuration: defaults, then the YAML mod config, then
// environment variables (a .env file is honoured if present).
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := LoadFile(getEnv(EnvModConfig, ConfigPathModConfig))
	if err != nil {
		return nil, err
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	// Debug turns on the verbose channel regardless of LOG_LEVEL
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile loads the YAML mod config on top of the defaults.
// If the file doesn't exist, returns defaults.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf(ErrMsgReadConfigFailed, path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf(ErrMsgParseConfigFailed, path, err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.ModName = getEnv(EnvModName, cfg.ModName)
	cfg.ItemsDir = getEnv(EnvItemsDir, cfg.ItemsDir)
	cfg.ExcludePattern = getEnv(EnvExcludePattern, cfg.ExcludePattern)
	cfg.DatabasePath = getEnv(EnvDatabasePath, cfg.DatabasePath)
	cfg.OutputPath = getEnv(EnvOutputPath, cfg.OutputPath)
	cfg.ShorthandOverlay = getEnv(EnvShorthandOverlay, cfg.ShorthandOverlay)
	cfg.MetricsFile = getEnv(EnvMetricsFile, cfg.MetricsFile)
	cfg.LogLevel = strings.ToLower(getEnv(EnvLogLevel, cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(getEnv(EnvLogFormat, cfg.LogFormat))
	cfg.Environment = getEnv(EnvEnvironment, cfg.Environment)
	cfg.Version = getEnv(EnvVersion, cfg.Version)

	var err error
	if cfg.SchemaCheck, err = getEnvBool(EnvSchemaCheck, cfg.SchemaCheck); err != nil {
		return err
	}
	if cfg.Debug, err = getEnvBool(EnvDebug, cfg.Debug); err != nil {
		return err
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf(ErrMsgInvalidBool, key, err)
	}
	return b, nil
}
