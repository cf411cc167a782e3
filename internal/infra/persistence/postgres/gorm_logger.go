package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docgate/config"
	deliverycontext "docgate/internal/delivery/context"
	"docgate/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

var _ gorm.ParamsFilter = (*gormLogger)(nil)

// gormLogger sends gorm output to the request-scoped slog logger, so queries
// carry the request and identity attributes of the request that issued them.
type gormLogger struct {
	fallback *slog.Logger
	level    logger.LogLevel
	slow     time.Duration
}

func newGormLogger(fallback *slog.Logger, cfg *config.Config) *gormLogger {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	return &gormLogger{fallback: fallback, level: level, slow: slowQueryThreshold}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

// ParamsFilter drops bound values: credential statements carry tokens and e-mail
// addresses. Placeholders stay in the logged SQL.
func (l *gormLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, slow queries and, in debug mode, every query.
// A missing credential row is an expected outcome and is not an error here.
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed && l.level >= logger.Error:
		level, msg = slog.LevelError, "Credential query failed"
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Slow credential query"
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Credential query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if failed {
		attrs = append(attrs, slog.Any("error", err))
	}

	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}
