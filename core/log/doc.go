// Package log provides structured logging capabilities for the tobj library.
//
// Package: log
// Title: tobj Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual fields, multiple output formats, log levels, and tight
//              integration with the tobj error handling system. It supports
//              performance timing for parse and serialization operations.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with named loggers and custom fields
// - Integration with the tobj error system for automatic error logging
// - Performance metrics and timing measurements
// - Pluggable output destinations via io.Writer
//
// Usage:
//   import tobjlog "github.com/tobj-format/tobj-go/core/log"
//
//   // Create a logger with context
//   logger := log.New().
//     WithLevel(log.LevelInfo).
//     WithFormat(log.FormatJSON).
//     WithField("component", "parser")
//
//   // Log messages with different levels
//   logger.Info("document parsed", log.Field("objects", 12))
//   logger.Error("load failed", log.Err(err))
//   logger.Debug("processing input", log.Fields{
//     "source": "config.tobj",
//     "bytes":  1024,
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("parse")
//   // ... parse the document
//   timer.Stop()
package log
