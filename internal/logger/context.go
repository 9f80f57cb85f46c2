package logger

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a text logger writing to w. Debug lowers the level to debug.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func AddToContext(ctx context.Context, ctxLogger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, ctxLogger)
}

func GetFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		logger = slog.Default()
	}

	return logger
}
