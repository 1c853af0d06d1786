package handlers

const (
	// DefaultPageSize is the default number of items per page
	DefaultPageSize = 100
	// MinPageSize is the minimum allowed page size
	MinPageSize = 1
	// MaxPageSize is the maximum allowed page size
	MaxPageSize = 1000
)

// clampPageSize bounds a requested page size to the allowed range
func clampPageSize(limit int) int {
	if limit < MinPageSize {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}
