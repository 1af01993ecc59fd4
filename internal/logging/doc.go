// Package logging assembles the structured slog loggers used by trialcode.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so batch runs automatically tag log
// lines with their run id. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Log output goes to stderr by default so codes printed on stdout can be
// piped without filtering.
package logging
