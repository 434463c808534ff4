package runlog

// Logger emits leveled events into the run log. Every line carries the
// logger's name in its logger-name column.
type Logger interface {
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent
	CriticalWith() LogEvent

	// With creates a child logger with pre-populated fields.
	// Example: reqLogger := logger.With().Str("request_id", id).Logger()
	With() LogContext

	// Named returns a logger that reports name instead of this logger's
	// name, for per-module loggers.
	Named(name string) Logger
}
