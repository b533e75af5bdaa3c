package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"truck-dispatch/internal/config"
	"truck-dispatch/internal/logx"
)

// NewLogger builds the structured logger selected by cfg.Log.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	level := strings.TrimSpace(cfg.Log.Level)
	if level == "" {
		level = "info"
	}

	switch cfg.Log.Backend {
	case config.LogBackendZap:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
		zl, err := zcfg.Build()
		if err != nil {
			return nil, fmt.Errorf("zap: %w", err)
		}
		return logx.NewZapAdapter(zl), nil
	case config.LogBackendSlog, "":
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: lvl,
		}))
		return logx.NewSlogAdapter(base), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Log.Backend)
	}
}
