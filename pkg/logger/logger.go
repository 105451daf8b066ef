// Package logger provides a structured, levelled logger built on zerolog.
//
// The key extension over a bare zerolog.Logger is WithCtx: it returns the
// logger the request middleware stored in the context, so every log line
// from a handler carries the request ID:
//
//	log := logger.WithCtx(r.Context())
//	log.Info().Str("dish_id", id).Msg("dish created")
//	// → {"level":"info","request_id":"a1b2c3d4","dish_id":"...","message":"dish created"}
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/shashiranjanraj/grubdash/config"
)

// L is the base logger. Setup replaces it once configuration is loaded.
var L = zerolog.New(os.Stdout).With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.DefaultContextLogger = &L
}

// Setup configures L from cfg: JSON lines in production or when
// log.format=json, a console writer otherwise.
func Setup(cfg *config.Config) {
	var out io.Writer = os.Stdout
	if cfg.Log.Format != "json" && !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}
	L = New(out, cfg.Log.Level).With().Str("service", cfg.App.Name).Logger()
	zerolog.DefaultContextLogger = &L
}

// New builds a timestamped logger writing to w at the named level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// WithCtx returns the per-request logger stored in ctx, or L when the
// request middleware has not run.
func WithCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// InjectLogger stores log in ctx. Called by the Logger middleware.
func InjectLogger(ctx context.Context, log zerolog.Logger) context.Context {
	return log.WithContext(ctx)
}

func Debug() *zerolog.Event { return L.Debug() }

func Info() *zerolog.Event { return L.Info() }

func Warn() *zerolog.Event { return L.Warn() }

func Error() *zerolog.Event { return L.Error() }
