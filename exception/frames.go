package exception

import (
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const (
	emptyString = ""
	maxDepth    = 64
)

// Frames reports the source location associated with the active error.
type Frames interface {
	Frame() (file string, line int, ok bool)
}

type location struct {
	file string
	line int
	ok   bool
}

func (l location) Frame() (string, int, bool) {
	return l.file, l.line, l.ok
}

// At returns a fixed location.
func At(file string, line int) Frames {
	return location{file: file, line: line, ok: true}
}

// Caller returns the frame skip levels above the caller of Caller.
// Caller(0) is the function calling Caller.
func Caller(skip int) Frames {
	_, file, line, ok := runtime.Caller(skip + 1)
	return location{file: file, line: line, ok: ok}
}

// Panic returns the frame that raised the panic being recovered. Runtime
// frames between the panic and the user code (panicdivide, sigpanic, ...)
// are skipped. Outside a deferred call during a panic it reports !ok.
func Panic() Frames {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	panicking := false
	for {
		f, more := frames.Next()
		if panicking && !strings.HasPrefix(f.Function, "runtime.") {
			return location{file: f.File, line: f.Line, ok: true}
		}
		if f.Function == "runtime.gopanic" {
			panicking = true
		}
		if !more {
			break
		}
	}
	return location{}
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf returns the deepest frame recorded by github.com/pkg/errors in
// err's chain, which is where the error was first created or wrapped.
func StackOf(err error) (Frames, bool) {
	var trace pkgerrors.StackTrace
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			if t := st.StackTrace(); len(t) > 0 {
				trace = t
			}
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if len(trace) == 0 {
		return nil, false
	}

	pc := uintptr(trace[0]) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return nil, false
	}
	file, line := fn.FileLine(pc)
	return At(file, line), true
}
