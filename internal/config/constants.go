package config

// Study plan shape.
const (
	FirstDay        = 1
	TotalDays       = 25
	TopicsPerDay    = 3
	TotalTopics     = TotalDays * TopicsPerDay
	MaxAchievements = 10
)

// Persisted setting keys. These names are part of the on-disk format.
const (
	KeyDay           = "day"
	KeyCompleted     = "completed"
	KeyCompletedDays = "completedDays"
)

// Application settings.
const (
	AppName      = "prep-tracker"
	DBFileName   = "progress.db"
	LogFileName  = "tracker.log"
	DefaultTheme = "default"
)

// Environment variables read by Load.
const (
	EnvDataDir = "PREP_DATA_DIR"
	EnvTheme   = "PREP_THEME"
	EnvLogFile = "PREP_LOG_FILE"
)
