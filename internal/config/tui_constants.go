package config

// Layout constants.
const (
	// MinPreviewWidth is the narrowest terminal the builder renders in full.
	MinPreviewWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// SwatchWidth is the cell width of one color band swatch.
	SwatchWidth = 3
)

// Display limits.
const (
	// MaxVisibleLabels limits the batch list before it scrolls.
	MaxVisibleLabels = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxValueLength is the maximum length of a typed value.
	MaxValueLength = 32

	// MaxUnitLength is the maximum length of a unit name.
	MaxUnitLength = 16
)
