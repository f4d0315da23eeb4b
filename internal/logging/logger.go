// Package logging defines the structured-logging contract shared by the
// server components. The concrete adapter wraps zerolog; nothing outside
// this package depends on that choice.
package logging

import "context"

// Logger is a leveled, context-aware logger. The variadic args are
// alternating key/value pairs:
//
//	log.Info(ctx, "listening", "addr", addr)
type Logger interface {
	// Info records normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn records unusual but recoverable conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error records failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a derived logger that stamps the given key/value pairs
	// onto every entry.
	With(args ...any) Logger
}
