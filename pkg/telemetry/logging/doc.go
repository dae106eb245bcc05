// Package logging configures structured logging for imprint.
//
// It builds a log/slog logger from the logging section of the configuration
// (level and json/text format). Components derive their own loggers with
// With("component", ...), so every line carries its origin.
package logging
