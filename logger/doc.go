// Package logger provides structured logging for querykit using zerolog.
//
// It supports JSON and console output formats, log level configuration, and
// component-scoped loggers with structured fields. The query engine itself
// never logs; the instrument package uses this logger for opt-in enumeration
// logging.
//
// # Usage
//
//	log := logger.NewDefault("reporting")
//	log.Info("pipeline done", logger.Fields("elements", 42))
package logger
