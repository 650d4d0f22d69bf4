// Package log builds ketchup's slog logger: a text handler on stderr,
// debug level behind --verbose, wrapped in a redacting handler so the
// Slack token never reaches log output even in verbose mode.
package log
