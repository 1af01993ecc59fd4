// Package main hosts the trialcode CLI entrypoint and command graph.
//
// The Cobra-based command tree turns time trial results given as flags or
// TOML record files into shareable 16-symbol codes, lists the course table,
// checks user-typed codes, and scaffolds configuration. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on presentation.
//
// Keep this package lean: encoding logic lives in internal/trialcode and its
// leaf packages; commands here only parse input and render results.
package main
