// Package runlog sets up a run-scoped log file for a process.
//
// On Initialize the service derives a file name from the start time
// (MM_DD_YYYY_HH_MM_SS.log), ensures the logs directory exists under the
// working directory, and routes every event into that file as a text line:
//
//	[ 2026-10-18 09:05:07,123 ] 42 root - INFO - Logging has started.
//
// The columns are the timestamp, the line of the logging call, the logger
// name, the level name and the message. Levels below the configured
// minimum (INFO by default) are dropped. Fields added to an event follow
// the message as key=value pairs; errors are expanded into their cause
// chain.
//
// Typical usage
//
//	svc := runlog.NewLogger()
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	svc.InfoWith().Msg("Logging has started.")
//	ingest := svc.Named("ingest")
//	ingest.ErrorWith().Err(exception.Wrap(err)).Msg("load failed")
package runlog
