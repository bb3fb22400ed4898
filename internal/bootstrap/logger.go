package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/ColorRush_Go/internal/config"
	"github.com/osse101/ColorRush_Go/internal/logger"
)

// SetupLogger initializes the application logger on stdout from cfg.
func SetupLogger(cfg *config.Config) *slog.Logger {
	return SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with an explicit destination.
// Source locations are only added outside production.
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		!cfg.IsProduction(),
	)
	l := logger.InitLoggerWithWriter(logCfg, w)

	l.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	l.Info(LogMsgStartingColorRush,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"rules_path", cfg.RulesPath,
		"session_capacity", cfg.SessionCapacity,
		"session_ttl", cfg.SessionTTL,
		"cors_origins", cfg.CORSAllowedOrigins)

	return l
}
