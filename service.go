package runlog

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// callerSkipFrameCount accounts for logEvent.Msg/Msgf/Send sitting between
// the logging call site and zerolog.
var callerSkipFrameCount = zerolog.CallerSkipFrameCount + 1

// Service is the run log sink. Configure the exported fields, then call
// Initialize once at process start and pass the Service (or a Named child)
// to whatever needs to log.
type Service struct {
	// WorkingDir is where the log directory is created. Defaults to the
	// process working directory.
	WorkingDir string
	// Config defaults to DefaultConfig().
	Config *Config
	// Output, when set, receives the formatted lines instead of the run's
	// log file. The log directory is still created.
	Output io.Writer

	now           func() time.Time
	path          string
	fileWriter    *lumberjack.Logger
	logger        atomic.Pointer[zerolog.Logger]
	isInitialized atomic.Bool
	initOnce      sync.Once
	initErr       error
}

func NewLogger() *Service {
	return &Service{}
}

// Initialize creates the log directory and opens the run's log file.
// Only the first call does any work; later calls return its result.
func (s *Service) Initialize() error {
	const op errors.Op = "runlog.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.initOnce.Do(func() {
		s.initErr = s.initialize()
	})
	return s.initErr
}

func (s *Service) initialize() error {
	const op errors.Op = "runlog.Service.initialize"
	if s.Config == nil {
		cfg := DefaultConfig()
		s.Config = &cfg
	}
	if err := validateConfig(s.Config); err != nil {
		return err
	}

	level, err := parseLevel(s.Config.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgInvalidLevel)
	}

	if s.WorkingDir == emptyString {
		wd, err := os.Getwd()
		if err != nil {
			return errors.New(op).Err(err).Msg(errMsgWorkingDir)
		}
		s.WorkingDir = wd
	}

	dir := filepath.Join(s.WorkingDir, s.Config.RelLogFileDir)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return errors.New(op).Err(err).Msg(errMsgCreateLogDir)
	}

	if s.now == nil {
		s.now = time.Now
	}
	s.path = filepath.Join(dir, FileName(s.now()))

	out := s.Output
	if out == nil {
		s.fileWriter = newFileWriter(s.path)
		out = s.fileWriter
	}

	logger := zerolog.New(newLineWriter(out)).
		Level(level).
		Hook(asctimeHook{now: s.now}).
		With().
		CallerWithSkipFrameCount(callerSkipFrameCount).
		Logger()

	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return nil
}

// Close detaches the logger and closes the log file.
// It's safe to call Close multiple times.
func (s *Service) Close() error {
	const op errors.Op = "runlog.Service.Close"
	if s == nil || !s.isInitialized.CompareAndSwap(true, false) {
		return nil
	}

	s.logger.Store(nil)

	if s.fileWriter != nil {
		if err := s.fileWriter.Close(); err != nil {
			return errors.New(op).Err(err).Msg(errMsgCloseFile)
		}
	}
	return nil
}

// Path is the run's log file. Empty before Initialize.
func (s *Service) Path() string {
	if s == nil {
		return emptyString
	}
	return s.path
}

// current returns the live logger, or nil when the service is not usable.
func (s *Service) current() *zerolog.Logger {
	if s == nil || !s.isInitialized.Load() {
		return nil
	}
	return s.logger.Load()
}

func (s *Service) name() string {
	if s == nil || s.Config == nil {
		return DefaultLoggerName
	}
	return s.Config.LoggerName
}

// DebugWith is dropped unless the level is DEBUG.
func (s *Service) DebugWith() LogEvent {
	return logEventBuilder(s.current(), s.name(), zerolog.DebugLevel)
}

// InfoWith returns a LogEvent at INFO.
// Example: logger.InfoWith().Str("user_id", id).Msg("User processed")
func (s *Service) InfoWith() LogEvent {
	return logEventBuilder(s.current(), s.name(), zerolog.InfoLevel)
}

func (s *Service) WarnWith() LogEvent {
	return logEventBuilder(s.current(), s.name(), zerolog.WarnLevel)
}

// ErrorWith returns a LogEvent at ERROR.
// Example: logger.ErrorWith().Err(exception.Wrap(err)).Msg("Query failed")
func (s *Service) ErrorWith() LogEvent {
	return logEventBuilder(s.current(), s.name(), zerolog.ErrorLevel)
}

// CriticalWith returns a LogEvent at CRITICAL. Unlike zerolog's Fatal it
// does not exit the process.
func (s *Service) CriticalWith() LogEvent {
	return logEventBuilder(s.current(), s.name(), zerolog.FatalLevel)
}

// With returns a LogContext for creating a child logger with pre-populated fields.
// Example: reqLogger := logger.With().Str("request_id", id).Logger()
func (s *Service) With() LogContext {
	logger := s.current()
	if logger == nil {
		return &noopLogContext{}
	}
	return &logContext{parent: s, context: logger.With(), name: s.name()}
}

// Named returns a logger for a module. Its lines show name in the
// logger-name column. It logs only while s is initialized.
func (s *Service) Named(name string) Logger {
	return &contextLogger{parent: s, name: name}
}
