package cmd

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/flowpro/tnc-gateway/config"
)

// ProvideLogger builds the process-wide structured logger. Records go
// to three places at once: stderr as human-readable text for whoever is
// watching the agent process, a lumberjack-rotated JSON file at
// gateway.log under ConsensusDataDir (the only directory this process
// is guaranteed to be allowed to write to), and an otel LoggerProvider
// so a collector sitting next to the agent can correlate gateway log
// records with the traces the gRPC server emits.
func ProvideLogger(cfg *config.Config) *slog.Logger {
	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})

	rotator := &lumberjack.Logger{
		Filename:   cfg.ConsensusDataDir + "/gateway.log",
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
	}
	fileHandler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: slog.LevelDebug})

	// otelslog picks up whatever global LoggerProvider a collector
	// sidecar has registered; with none registered it is a no-op sink,
	// so this is safe to leave wired unconditionally.
	otelHandler := otelslog.NewHandler("tnc-gateway")

	logger := slog.New(multiHandler{textHandler, fileHandler, otelHandler})
	slog.SetDefault(logger)
	return logger
}

// multiHandler fans every record out to each of its handlers. A failing
// sink (e.g. a full disk under the file handler) does not stop delivery
// to the others; the first error encountered is the one returned.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var err error
	for _, h := range m {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if handleErr := h.Handle(ctx, record.Clone()); handleErr != nil && err == nil {
			err = handleErr
		}
	}
	return err
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(multiHandler, len(m))
	for i, h := range m {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	next := make(multiHandler, len(m))
	for i, h := range m {
		next[i] = h.WithGroup(name)
	}
	return next
}
