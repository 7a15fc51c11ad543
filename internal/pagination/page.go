// Package pagination applies defaults to and validates page arguments
// for list endpoints.
package pagination

// SizeConfig configures page size defaulting and bounds.
type SizeConfig struct {
	Default int
	Max     int
}

// DefaultSize substitutes the configured default for an absent (zero)
// size. Provided values pass through untouched so out-of-range input can
// be rejected rather than silently adjusted.
func DefaultSize(value int, cfg SizeConfig) int {
	if value == 0 {
		return cfg.Default
	}
	return value
}

// DefaultPage substitutes the first page for an absent (zero) number.
func DefaultPage(value int) int {
	if value == 0 {
		return 1
	}
	return value
}

// ValidSize reports whether size is positive and within cfg.Max.
func ValidSize(value int, cfg SizeConfig) bool {
	if value < 1 {
		return false
	}
	return cfg.Max <= 0 || value <= cfg.Max
}

// ValidPage reports whether the page number is positive.
func ValidPage(value int) bool {
	return value >= 1
}
