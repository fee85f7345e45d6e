package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/WelcomeToTarkov/WTT-Armory-Prodigy/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Register custom validation for log levels
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return v
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// Validate checks the configuration struct against its validation tags.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, fmt.Sprintf("%s failed '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strings.Join(problems, ", "))
}

// Warnings returns non-fatal observations about the configuration.
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.OutputPath != "" && cfg.OutputPath == cfg.DatabasePath {
		warnings = append(warnings, "OUTPUT_PATH equals DATABASE_PATH - the source export will be overwritten")
	}

	if !cfg.SchemaCheck {
		warnings = append(warnings, "SCHEMA_CHECK is disabled - malformed item fragments are only caught at decode time")
	}

	if cfg.ExcludePattern == "" {
		warnings = append(warnings, "EXCLUDE_PATTERN is empty - every file in the items directory will be loaded")
	}

	return warnings
}
