package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// A page read is a single indexed range scan; anything slower is worth a warning.
const defaultGormSlowThreshold = 100 * time.Millisecond

// gormSlogLogger routes GORM output into slog, preferring the logger of the run that issued the query.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		base:          base,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed queries, then slow ones, then everything when the level is Info.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if !l.enabled(logger.Error) {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		level, msg, extra = slog.LevelError, "[GORM] Query failed", slog.String("error", err.Error())
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.enabled(logger.Warn):
		level, msg, extra = slog.LevelWarn, "[GORM] Slow query", slog.Duration("slow_threshold", l.slowThreshold)
	case l.enabled(logger.Info):
		level, msg = slog.LevelInfo, "[GORM] Query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	l.target(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) printf(ctx context.Context, gormLevel logger.LogLevel, level slog.Level, msg string, args ...any) {
	if !l.enabled(gormLevel) {
		return
	}

	l.target(ctx).LogAttrs(ctx, level, "[GORM] "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) enabled(level logger.LogLevel) bool {
	return l.base != nil && l.level != logger.Silent && l.level >= level
}

func (l *gormSlogLogger) target(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
