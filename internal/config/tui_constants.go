package config

// Layout constants.
const (
	// CalendarColumns is the number of day cells per calendar row.
	CalendarColumns = 5

	// CompactModeThreshold stacks the calendar above the checklist below this width.
	CompactModeThreshold = 90

	// CalendarPanelWidth is the outer width of the calendar panel.
	CalendarPanelWidth = 34

	// ProgressBarWidth is the preferred width of progress bars.
	ProgressBarWidth = 30

	// MinProgressBarWidth is the narrowest a progress bar is drawn.
	MinProgressBarWidth = 10

	// MinTopicWidth is the minimum width for a topic label.
	MinTopicWidth = 12
)

// TruncationSuffix is appended to truncated labels.
const TruncationSuffix = "…"
