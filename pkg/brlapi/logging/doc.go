// Package logging provides the small logging facade used by the brlapi
// binding.
//
// Logger wraps the context-aware subset of log/slog the binding needs, so
// applications can route load diagnostics into their own logging system or
// silence them in tests:
//
//	logger := logging.New(nil) // binds slog.Default()
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	loader := brlapi.NewLoader(open, brlapi.WithLogger(logging.New(slog.New(handler))))
//
// Records carry the attribute helpers Library, Path, Symbol, State and Err so
// load diagnostics share one key set. Discard returns a Logger that drops
// every record.
package logging
