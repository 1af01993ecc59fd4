// Package config loads, normalizes, and validates trialcode configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// TRIALCODE_LOG_LEVEL. The Config type holds every knob the CLI needs: log
// level and format, how codes are printed, and batch concurrency.
//
// Always obtain settings through this package so commands receive sanitized
// values and clear validation errors.
package config
