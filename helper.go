package runlog

import (
	stderrs "errors"
	"fmt"
	"strings"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/runlog/exception"
	"github.com/rs/zerolog"
)

// parseLevel maps a level name onto a zerolog.Level.
// WARN and FATAL are accepted as aliases of WARNING and CRITICAL.
func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "INFO":
		return zerolog.InfoLevel, nil
	case "WARNING", "WARN":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return zerolog.FatalLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown level %q", level)
}

// levelName is the inverse of parseLevel, used for the levelname column.
func levelName(l zerolog.Level) string {
	switch l {
	case zerolog.TraceLevel:
		return "TRACE"
	case zerolog.DebugLevel:
		return "DEBUG"
	case zerolog.InfoLevel:
		return "INFO"
	case zerolog.WarnLevel:
		return "WARNING"
	case zerolog.ErrorLevel:
		return "ERROR"
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return "CRITICAL"
	}
	return "NOTSET"
}

// buildErrorChain walks an error's cause chain and returns:
//   - chain: outermost -> innermost error messages
//   - ops: operation identifiers per link ("" if not available)
//   - root: the innermost error message
//   - rootOp: the innermost operation identifier if available
//
// A Station-Manager DetailedError contributes its Op. An exception.Error
// contributes its source location as "file:line". Everything else falls
// back to stdlib errors.Unwrap. Depth and repeated messages are bounded to
// avoid cycles.
func buildErrorChain(err error) (chain []string, ops []string, root string, rootOp string) {
	const maxDepth = 50
	visited := 0
	seen := map[string]bool{}

	for err != nil && visited < maxDepth {
		visited++

		if eErr, ok := err.(*exception.Error); ok {
			chain = append(chain, eErr.Error())
			ops = append(ops, fmt.Sprintf("%s:%d", eErr.File(), eErr.Line()))
			err = eErr.Unwrap()
			continue
		}

		if dErr, ok := smerrors.AsDetailedError(err); ok && dErr != nil {
			chain = append(chain, dErr.Error())
			ops = append(ops, string(dErr.Op()))
			err = dErr.Cause()
			continue
		}

		msg := err.Error()
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		ops = append(ops, emptyString)
		err = stderrs.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	if len(ops) > 0 {
		rootOp = ops[len(ops)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}

// logEventBuilder creates an event at level on logger, stamped with the
// logger name. A nil logger, an unknown level or a level below the
// logger's minimum yields a no-op LogEvent.
func logEventBuilder(logger *zerolog.Logger, name string, level zerolog.Level) LogEvent {
	if logger == nil || level == zerolog.NoLevel {
		return newLogEvent(nil)
	}
	if logger.GetLevel() > level {
		return newLogEvent(nil)
	}

	var event *zerolog.Event
	switch level {
	case zerolog.DebugLevel:
		event = logger.Debug()
	case zerolog.InfoLevel:
		event = logger.Info()
	case zerolog.WarnLevel:
		event = logger.Warn()
	case zerolog.ErrorLevel:
		event = logger.Error()
	case zerolog.FatalLevel:
		// WithLevel does not exit the process; CRITICAL is just a severity here.
		event = logger.WithLevel(zerolog.FatalLevel)
	default:
		return newLogEvent(nil)
	}
	if event == nil {
		return newLogEvent(nil)
	}

	return newLogEvent(event.Str(loggerFieldName, name))
}
