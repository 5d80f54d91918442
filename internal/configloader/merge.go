package configloader

import "github.com/yaklabco/surfdoc/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.SiteName != "" {
		result.SiteName = override.SiteName
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.Workers != 0 {
		result.Workers = override.Workers
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.CodeFormat != "" {
		result.CodeFormat = override.CodeFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Debug is a CLI-only flag; true in override always wins since false
	// is indistinguishable from unset.
	if override.Debug {
		result.Debug = true
	}

	// Slices: override replaces base entirely if non-nil
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
