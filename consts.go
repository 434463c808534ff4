package runlog

const emptyString = ""

const (
	// DefaultLoggerName is the logger-name column for events that are not
	// emitted through a Named logger.
	DefaultLoggerName = "root"
	// DefaultRelLogFileDir is the log directory relative to the working dir.
	DefaultRelLogFileDir = "logs"
	// DefaultLevel suppresses DEBUG.
	DefaultLevel = "INFO"

	// fileNameLayout is month_day_year_hour_minute_second.
	fileNameLayout = "01_02_2006_15_04_05"
	logFileExt     = ".log"
	asctimeLayout  = "2006-01-02 15:04:05,000"

	loggerFieldName = "logger"
)

const (
	errMsgNilConfig     = "Run log config is nil."
	errMsgNilService    = "Run log service is nil."
	errMsgConfigInvalid = "Run log configuration is invalid."
	errMsgLogDirNotRel  = "RelLogFileDir must be a relative path."
	errMsgInvalidLevel  = "Run log level is invalid."
	errMsgWorkingDir    = "Unable to determine the working directory."
	errMsgCreateLogDir  = "Failed to create the logs directory."
	errMsgCloseFile     = "Failed to close the log file."
)
