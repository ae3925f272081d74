package config

// Layout constants.
const (
	// DefaultFocusColumn is the initially focused column (0 = pending).
	DefaultFocusColumn = 0

	// MinColumnWidth is the minimum width for a status column.
	MinColumnWidth = 18

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 80

	// HeaderHeight is the number of rows above the first card.
	HeaderHeight = 3

	// CardHeight is the number of rows a task card occupies.
	CardHeight = 3
)

// Display limits.
const (
	// MaxVisibleTasks limits cards shown per column.
	MaxVisibleTasks = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 100
)
