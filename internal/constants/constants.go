package constants

const (
	AppName         = "teamfit"
	Version         = "v0.3.0"
	DefaultDataPath = "~/.config/teamfit/teamfit.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ChartDayLabel labels day and week buckets; ChartMonthLabel labels month buckets.
	ChartDayLabel   = "01/02"
	ChartMonthLabel = "2006-01"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "teamfit-"
)

// Collection keys. Each collection persists independently under its own key;
// there is no single root document.
const (
	KeyMembers           = "members"
	KeyWorkoutLogs       = "workout_logs"
	KeyEncouragements    = "encouragements"
	KeyGoals             = "goals"
	KeyChallenges        = "challenges"
	KeyExerciseTemplates = "exercise_templates"
	KeyPrograms          = "programs"
)

// CollectionKeys lists every collection key in persistence order.
func CollectionKeys() []string {
	return []string{
		KeyMembers,
		KeyWorkoutLogs,
		KeyEncouragements,
		KeyGoals,
		KeyChallenges,
		KeyExerciseTemplates,
		KeyPrograms,
	}
}
