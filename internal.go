package runlog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// noRotateSizeMB keeps lumberjack from rotating; one run never writes this much.
const noRotateSizeMB = 1 << 20

// FileName returns the per-run log file name for a run started at t.
func FileName(t time.Time) string {
	return t.Format(fileNameLayout) + logFileExt
}

func newFileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: path,
		MaxSize:  noRotateSizeMB,
	}
}

// newLineWriter renders zerolog's JSON events as
//
//	[ <asctime> ] <lineno> <logger-name> - <levelname> - <message>
//
// followed by any extra fields as key=value.
func newLineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     out,
		NoColor: true,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.CallerFieldName,
			loggerFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude:    []string{loggerFieldName},
		FormatTimestamp:  formatAsctime,
		FormatCaller:     formatLineno,
		FormatLevel:      formatLevelName,
		FormatMessage:    formatMessage,
		FormatFieldValue: formatValue,
	}
}

// asctimeHook stamps the event with a millisecond, comma-separated local
// timestamp. It replaces zerolog's Timestamp() so the global
// zerolog.TimeFieldFormat is left alone.
type asctimeHook struct {
	now func() time.Time
}

func (h asctimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(zerolog.TimestampFieldName, h.now().Format(asctimeLayout))
}

func formatAsctime(i interface{}) string {
	if i == nil {
		return "[ ]"
	}
	return fmt.Sprintf("[ %v ]", i)
}

// formatLineno keeps only the line of zerolog's "file:line" caller.
func formatLineno(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return emptyString
	}
	if idx := strings.LastIndexByte(s, ':'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

func formatLevelName(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return "- NOTSET -"
	}
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return "- " + strings.ToUpper(s) + " -"
	}
	return "- " + levelName(l) + " -"
}

// formatMessage renders the message column. An empty message leaves no
// part, so a Send() line ends at "- LEVEL -" or runs straight into its fields.
func formatMessage(i interface{}) string {
	if i == nil {
		return emptyString
	}
	return fmt.Sprint(i)
}

// formatValue renders a field value. ConsoleWriter hands over strings and
// json.Number as is and everything else (bools, arrays, objects) as the
// marshalled JSON bytes.
func formatValue(i interface{}) string {
	switch v := i.(type) {
	case json.RawMessage:
		return string(v)
	case []byte:
		return string(v)
	}
	return fmt.Sprint(i)
}
