package config

// GenerateTemplate creates a commented starter configuration file.
func GenerateTemplate() []byte {
	return []byte(`# surfdoc configuration
# See: https://github.com/yaklabco/surfdoc

# Markdown flavor for prose spans: gfm or commonmark
flavor: gfm

# Site name shown in navigation and page titles
# site_name: My Site

# Output directory for the build command
output_dir: dist

# Parallel page renderers (0 = one per CPU)
workers: 0

# Container nesting limit (0 = default of 8)
max_depth: 0

# Terminal color: auto, always, or never
color: auto

# Glob patterns to skip during file discovery
# ignore:
#   - "drafts/**"
#   - "node_modules/**"
`)
}
