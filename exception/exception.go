// Package exception annotates a caught error with the source file and line
// it propagated from.
//
// The annotated message keeps the wording (and spelling) that downstream
// tooling matches on:
//
//	Error occured in python script name [calc.py] line number [42] error message [division by zero]
//
// Nothing in this package logs or touches the file system.
package exception

import (
	"fmt"
)

const messageFormat = "Error occured in python script name [%s] line number [%d] error message [%s]"

// Message renders the diagnostic for an error raised at file:line.
func Message(file string, line int, errText string) string {
	return fmt.Sprintf(messageFormat, file, line, errText)
}

// Error is an error enriched with the location it was raised at.
// Its Error method returns the formatted diagnostic, not the bare message.
type Error struct {
	err  error
	file string
	line int
	msg  string
}

// New wraps err with the location reported by frames. The message is
// formatted once, here.
func New(err error, frames Frames) *Error {
	var (
		file string
		line int
	)
	if frames != nil {
		file, line, _ = frames.Frame()
	}

	text := emptyString
	if err != nil {
		text = err.Error()
	}

	return &Error{
		err:  err,
		file: file,
		line: line,
		msg:  Message(file, line, text),
	}
}

// Wrap annotates err with the frame it was raised at. A pkg/errors stack
// recorded on err wins; otherwise the caller of Wrap is used. An error that
// is already an *Error is returned as is.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	if frames, ok := StackOf(err); ok {
		return New(err, frames)
	}
	return New(err, Caller(1))
}

// Recover converts a panic into an *Error located at the panicking frame
// and stores it in *errp; with a nil errp the *Error is re-panicked. Use it
// directly in a defer statement:
//
//	defer exception.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	var err error
	switch v := r.(type) {
	case error:
		err = v
	default:
		err = fmt.Errorf("%v", v)
	}

	enriched := New(err, Panic())
	if errp == nil {
		panic(enriched)
	}
	*errp = enriched
}

func (e *Error) Error() string { return e.msg }

// Unwrap returns the original error.
func (e *Error) Unwrap() error { return e.err }

// File is the source file the error was raised in.
func (e *Error) File() string { return e.file }

// Line is the line number within File.
func (e *Error) Line() int { return e.line }
