package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/surfdoc/pkg/config"
)

// envVarPrefix is the prefix for all surfdoc environment variables.
const envVarPrefix = "SURFDOC_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FLAVOR":     {field: "flavor", typ: envTypeString},
	"SITE_NAME":  {field: "site_name", typ: envTypeString},
	"OUTPUT_DIR": {field: "output_dir", typ: envTypeString},
	"WORKERS":    {field: "workers", typ: envTypeInt},
	"MAX_DEPTH":  {field: "max_depth", typ: envTypeInt},
	"JOBS":       {field: "jobs", typ: envTypeInt},
	"FORMAT":     {field: "format", typ: envTypeString},
	"COLOR":      {field: "color", typ: envTypeString},
	"IGNORE":     {field: "ignore", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SURFDOC_ (e.g., SURFDOC_FLAVOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "flavor":
		cfg.Flavor = config.Flavor(value)
	case "site_name":
		cfg.SiteName = value
	case "output_dir":
		cfg.OutputDir = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "workers":
		cfg.Workers = value
	case "max_depth":
		cfg.MaxDepth = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"SURFDOC_CONFIG":     "Path to an explicit config file",
		"SURFDOC_FLAVOR":     "Markdown flavor for prose spans: commonmark or gfm",
		"SURFDOC_SITE_NAME":  "Site name shown in navigation and titles",
		"SURFDOC_OUTPUT_DIR": "Output directory for the build command",
		"SURFDOC_WORKERS":    "Number of parallel page renderers (0 = auto)",
		"SURFDOC_MAX_DEPTH":  "Container nesting limit (0 = default)",
		"SURFDOC_JOBS":       "Number of parallel file checkers (0 = auto)",
		"SURFDOC_FORMAT":     "Output format: text, json, or summary",
		"SURFDOC_COLOR":      "Color mode: auto, always, or never",
		"SURFDOC_IGNORE":     "Comma-separated list of ignore patterns",
	}
}
