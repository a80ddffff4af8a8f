// Package logging provides a minimal logging facade for popdb.
//
// The Logger interface carries a context on every call and supports With for
// attaching fields. Three implementations ship with the package:
//
//	logger := logging.New(nil)            // slog.Default()
//	logger := logging.NewZap(zapLogger)   // go.uber.org/zap
//	logger := logging.Nop()               // discard
//
// Arguments use the slog convention of alternating keys and values. The zap
// adapter translates them into zap fields and accepts slog.Attr values too:
//
//	logger.Info(ctx, "database opened", "id", db.ID(), "backend", "native")
package logging
