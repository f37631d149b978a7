// Package logger provides structured logging for envconf.
//
//   - logger.go: Logger interface, slog handler setup, process default
//   - redact.go: redaction of sensitive-looking attributes
//
// The loader logs per-file decisions at debug level and a summary of each
// load at info level; the CLI lowers the default to warn.
package logger
