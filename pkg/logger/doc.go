// Package logger provides a context-aware wrapper around log/slog with
// functional options and attribute helpers for ASCII diagnostics.
//
// New builds a *slog.Logger from Option values (format, level, output, static
// attributes) and wraps the handler with LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks on every record.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("source", sourceKey{}),
//	)
//	if err := ascii.CheckPrintable(line); err != nil {
//	    log.WarnContext(ctx, "rejected line", logger.Line(n), logger.Diagnostic(err))
//	}
//
// ParseLevel turns a configured level name into a slog.Level and rejects
// unknown names with ErrInvalidLevel.
//
// Diagnostic turns an ascii error into a "diagnostic" group. For non-ASCII
// characters it includes the code point and Unicode name via Rune.
package logger
