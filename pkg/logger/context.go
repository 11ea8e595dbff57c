package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// WithRunID stores a run identifier in ctx. Loggers built with WithRunIDFromContext
// add it to every record logged with that context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run identifier stored in ctx, or "".
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithRunIDFromContext registers the run id extractor.
func WithRunIDFromContext() Option {
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		id := RunIDFromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return RunID(id), true
	})
}
