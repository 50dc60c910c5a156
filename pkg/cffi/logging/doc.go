// Package logging provides a minimal logging facade for the cffi wrapper.
//
// It defines a Logger interface over a subset of the standard library's
// log/slog functionality. The interface is intentionally small so that
// applications can provide their own implementation for testing or for
// integration with an existing logging setup.
//
// The primary consumer is the cffi package's ownership trace hook:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	cffi.SetTraceLogger(logging.New(slog.New(handler)))
//
// With the hook installed, every wrap, free, transfer, and finalizer-driven
// release is logged with the address involved, which is usually enough to
// pin down a leaked or doubly-released foreign handle.
package logging
