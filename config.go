package runlog

// Config holds the run log settings. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Level is the minimum severity written: DEBUG, INFO, WARNING, ERROR or
	// CRITICAL (case-insensitive).
	Level string `json:"level" validate:"required"`
	// LoggerName fills the logger-name column of every line.
	LoggerName string `json:"logger_name" validate:"required"`
	// RelLogFileDir is resolved against Service.WorkingDir.
	RelLogFileDir string `json:"rel_log_file_dir" validate:"required"`
}

// DefaultConfig writes INFO and above as "root" into ./logs.
func DefaultConfig() Config {
	return Config{
		Level:         DefaultLevel,
		LoggerName:    DefaultLoggerName,
		RelLogFileDir: DefaultRelLogFileDir,
	}
}
