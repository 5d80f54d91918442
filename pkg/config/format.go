package config

// FormatCode renders a diagnostic identifier in the configured style.
// Falls back to the bare code when the name is unknown.
func FormatCode(format CodeFormat, code, name string) string {
	if name == "" {
		return code
	}
	switch format {
	case CodeFormatID:
		return code
	case CodeFormatName:
		return name
	default:
		return code + "/" + name
	}
}
