// Command runlog starts a run log in ./logs and records a start line and
// one annotated error, which is handy for checking the file layout.
package main

import (
	"fmt"
	"os"

	"github.com/Station-Manager/runlog"
	"github.com/Station-Manager/runlog/exception"
)

func main() {
	svc := runlog.NewLogger()
	if err := svc.Initialize(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
	defer func() { _ = svc.Close() }()

	svc.InfoWith().Msg("Logging has started.")

	if _, err := ratio(1, 0); err != nil {
		svc.Named("main").ErrorWith().Err(err).Msg("ratio failed")
	}

	_, _ = fmt.Fprintln(os.Stdout, svc.Path())
}

func ratio(a, b int) (q int, err error) {
	defer exception.Recover(&err)
	return a / b, nil
}
