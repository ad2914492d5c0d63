// Package logger wraps zap for the screen timer.
//
// It keeps one global sugared logger with a console encoder, lets callers
// carry a scoped logger in a context (ToContext, FromContext, WithName,
// WithKV) and exposes level helpers for the CLI flag and the config file.
package logger
