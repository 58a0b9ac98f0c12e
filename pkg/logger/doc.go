// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package and writes to stderr, keeping
// stdout free for the human-readable connection report.
package logger
