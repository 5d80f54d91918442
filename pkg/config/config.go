// Package config defines the configuration types for surfdoc. These are
// pure data structures; discovery and merging live in the loader.
package config

// OutputFormat specifies how diagnostics are printed.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// CodeFormat controls how diagnostic identifiers appear in output.
type CodeFormat string

const (
	CodeFormatID       CodeFormat = "id"       // "SD101"
	CodeFormatName     CodeFormat = "name"     // "required-attribute-missing"
	CodeFormatCombined CodeFormat = "combined" // "SD101/required-attribute-missing"
)

// ColorMode controls ANSI styling of terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Flavor specifies the markdown flavor for prose spans.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Config is the root configuration for surfdoc.
type Config struct {
	// Flavor is the prose markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// SiteName overrides the site name used in navigation and titles.
	SiteName string `yaml:"site_name"`

	// OutputDir is where `build` writes the assembled site.
	OutputDir string `yaml:"output_dir"`

	// Workers bounds the parallel page renderers (0 = one per CPU).
	Workers int `yaml:"workers"`

	// MaxDepth is the container nesting limit (0 = built-in default).
	MaxDepth int `yaml:"max_depth"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`

	// Color is the terminal color mode: auto, always, or never.
	Color ColorMode `yaml:"color"`

	// CLI-level options, never persisted.

	// Format specifies the diagnostics output format.
	Format OutputFormat `yaml:"-"`

	// CodeFormat controls how diagnostic identifiers appear.
	CodeFormat CodeFormat `yaml:"-"`

	// Jobs bounds the parallel file checkers (0 = one per CPU).
	Jobs int `yaml:"-"`

	// Debug enables verbose logging.
	Debug bool `yaml:"-"`
}

// NewConfig returns a Config with the defaults the CLI starts from.
func NewConfig() *Config {
	return &Config{
		Flavor:     FlavorGFM,
		OutputDir:  "dist",
		Color:      ColorAuto,
		Format:     FormatText,
		CodeFormat: CodeFormatCombined,
	}
}
