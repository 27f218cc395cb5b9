// Package logger provides structured logging built on log/slog, with
// context-based attribute injection and optional Sentry error reporting.
//
// The slugfield core itself never logs (it reports through error returns),
// so this package serves the surrounding application: migrations, HTTP
// handlers, startup and shutdown.
//
// # Basic Usage
//
//	log := logger.New()
//	log.Info("starting", "addr", ":8080")
//
// # Context Extractors
//
// A ContextExtractor pulls a request-scoped attribute out of a context on
// every log call:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//	    if id, ok := ctx.Value(ctxKeyRequestID).(string); ok && id != "" {
//	        return slog.String("request_id", id), true
//	    }
//	    return slog.Attr{}, false
//	}
//
//	log := logger.New(requestID)
//	log.InfoContext(ctx, "article created", "slug", a.Slug)
//
// # Sentry
//
// NewWithSentry routes warnings and errors to Sentry in addition to stdout.
// An empty DSN degrades gracefully to stdout-only logging, so the same code
// path works in development and production:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//	    DSN:         os.Getenv("SENTRY_DSN"),
//	    Environment: "production",
//	})
package logger
