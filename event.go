package runlog

import (
	"time"

	"github.com/rs/zerolog"
)

// LogContext collects fields for a child logger. Every line the child
// writes carries them after the message.
type LogContext interface {
	Str(key, val string) LogContext
	Int(key string, val int) LogContext
	Bool(key string, val bool) LogContext
	Err(err error) LogContext
	Interface(key string, val interface{}) LogContext
	Logger() Logger
}

// LogEvent adds typed fields to a single line and writes it with Msg, Msgf
// or Send.
type LogEvent interface {
	Str(key, val string) LogEvent
	Strs(key string, vals []string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Uint(key string, val uint) LogEvent
	Float64(key string, val float64) LogEvent
	Bool(key string, val bool) LogEvent
	Time(key string, val time.Time) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	AnErr(key string, err error) LogEvent
	Interface(key string, val interface{}) LogEvent
	Dict(key string, dict func(LogEvent)) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// logEvent wraps a zerolog.Event. A nil event is a dropped line.
type logEvent struct {
	event *zerolog.Event
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

func (e *logEvent) add(fn func(ev *zerolog.Event)) LogEvent {
	if e.event != nil {
		fn(e.event)
	}
	return e
}

func (e *logEvent) Str(key, val string) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Str(key, val) })
}

func (e *logEvent) Strs(key string, vals []string) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Strs(key, vals) })
}

func (e *logEvent) Int(key string, val int) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Int(key, val) })
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Int64(key, val) })
}

func (e *logEvent) Uint(key string, val uint) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Uint(key, val) })
}

func (e *logEvent) Float64(key string, val float64) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Float64(key, val) })
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Bool(key, val) })
}

func (e *logEvent) Time(key string, val time.Time) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Time(key, val) })
}

// Dur is rendered in milliseconds.
func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Dur(key, val) })
}

func (e *logEvent) Interface(key string, val interface{}) LogEvent {
	return e.add(func(ev *zerolog.Event) { ev.Interface(key, val) })
}

// Dict nests the fields set by dict under key.
func (e *logEvent) Dict(key string, dict func(LogEvent)) LogEvent {
	return e.add(func(ev *zerolog.Event) {
		nested := zerolog.Dict()
		dict(newLogEvent(nested))
		ev.Dict(key, nested)
	})
}

// Err records err and its cause chain.
func (e *logEvent) Err(err error) LogEvent {
	return e.AnErr(zerolog.ErrorFieldName, err)
}

// AnErr records err under key. When err wraps other errors the line also
// gets key_chain, key_root, key_history, key_ops and key_root_op.
func (e *logEvent) AnErr(key string, err error) LogEvent {
	return e.add(func(ev *zerolog.Event) {
		ev.AnErr(key, err)
		if err == nil {
			return
		}

		chain, ops, root, rootOp := buildErrorChain(err)
		// a single-link chain says nothing the error field does not
		if len(chain) < 2 {
			return
		}
		ev.Strs(key+"_chain", chain).
			Str(key+"_root", root).
			Str(key+"_history", joinChain(chain)).
			Strs(key+"_ops", ops)
		if rootOp != emptyString {
			ev.Str(key+"_root_op", rootOp)
		}
	})
}

func (e *logEvent) Msg(msg string) {
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	if e.event != nil {
		e.event.Send()
	}
}

// logContext builds the fields of a child logger on top of parent's logger.
type logContext struct {
	parent  *Service
	context zerolog.Context
	name    string
}

func (c *logContext) Str(key, val string) LogContext {
	c.context = c.context.Str(key, val)
	return c
}

func (c *logContext) Int(key string, val int) LogContext {
	c.context = c.context.Int(key, val)
	return c
}

func (c *logContext) Bool(key string, val bool) LogContext {
	c.context = c.context.Bool(key, val)
	return c
}

func (c *logContext) Err(err error) LogContext {
	c.context = c.context.Err(err)
	return c
}

func (c *logContext) Interface(key string, val interface{}) LogContext {
	c.context = c.context.Interface(key, val)
	return c
}

func (c *logContext) Logger() Logger {
	logger := c.context.Logger()
	return &contextLogger{parent: c.parent, logger: &logger, name: c.name}
}

// contextLogger is a Named or With child of a Service. It writes through the
// parent's writer and goes quiet once the parent is closed.
type contextLogger struct {
	parent *Service
	// logger carries the child's context fields; nil means the parent's logger.
	logger *zerolog.Logger
	name   string
}

// live returns the logger to write through, or nil while the parent is not
// initialized.
func (cl *contextLogger) live() *zerolog.Logger {
	root := cl.parent.current()
	if root == nil {
		return nil
	}
	if cl.logger != nil {
		return cl.logger
	}
	return root
}

func (cl *contextLogger) DebugWith() LogEvent {
	return logEventBuilder(cl.live(), cl.name, zerolog.DebugLevel)
}

func (cl *contextLogger) InfoWith() LogEvent {
	return logEventBuilder(cl.live(), cl.name, zerolog.InfoLevel)
}

func (cl *contextLogger) WarnWith() LogEvent {
	return logEventBuilder(cl.live(), cl.name, zerolog.WarnLevel)
}

func (cl *contextLogger) ErrorWith() LogEvent {
	return logEventBuilder(cl.live(), cl.name, zerolog.ErrorLevel)
}

func (cl *contextLogger) CriticalWith() LogEvent {
	return logEventBuilder(cl.live(), cl.name, zerolog.FatalLevel)
}

func (cl *contextLogger) With() LogContext {
	logger := cl.live()
	if logger == nil {
		return &noopLogContext{}
	}
	return &logContext{parent: cl.parent, context: logger.With(), name: cl.name}
}

func (cl *contextLogger) Named(name string) Logger {
	return &contextLogger{parent: cl.parent, logger: cl.logger, name: name}
}

// noopLogContext is handed out while the service is not initialized.
type noopLogContext struct{}

func (n *noopLogContext) Str(key, val string) LogContext                   { return n }
func (n *noopLogContext) Int(key string, val int) LogContext               { return n }
func (n *noopLogContext) Bool(key string, val bool) LogContext             { return n }
func (n *noopLogContext) Err(err error) LogContext                         { return n }
func (n *noopLogContext) Interface(key string, val interface{}) LogContext { return n }

// Logger returns a child with no parent, which never writes.
func (n *noopLogContext) Logger() Logger { return &contextLogger{} }
