// Package logging provides structured logging for micromodal.
//
// This package wraps a zap logger with convenience functions for the log
// lines the dialog engine, the playground and the inspector emit. Library
// code asks for a named child logger; command code initializes the level
// once at startup.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Lifecycle transitions, stack pushes and pops
//   - Info: Inspector clients connecting and disconnecting, server start
//   - Warn: Caller contract violations (controlled dialog without a close callback)
//   - Error: Inspector transport failures
//
// # Structured Logging
//
// All log functions use structured fields:
//
//	logging.Info("Inspector listening",
//	    zap.String("addr", ":7777"),
//	)
//
// # Specialized Logging
//
// Transition logging:
//
//	logging.LogTransition(log, dialogID, "open", "closing", depth)
//
// Inspector client logging:
//
//	logging.LogClient(remoteAddr, "connected")
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When the level is empty, MICROMODAL_LOG_LEVEL is consulted. When that is
// empty too, logging is silent. The terminal playground owns stdout, so it
// logs to a file through InitializeWithOutput instead.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
