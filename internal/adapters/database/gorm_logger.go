package database

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SlogGormLogger routes gorm's SQL tracing into slog. Statements are logged
// at debug, slow statements at warn and failures at error.
type SlogGormLogger struct {
	log           *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewSlogGormLogger creates a gorm logger backed by log.
// A zero slowThreshold disables slow query warnings.
func NewSlogGormLogger(log *slog.Logger, slowThreshold time.Duration) *SlogGormLogger {
	return &SlogGormLogger{
		log:           log.With("component", "gorm"),
		level:         gormlogger.Info,
		slowThreshold: slowThreshold,
	}
}

// LogMode implements gormlogger.Interface.
func (l *SlogGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *SlogGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *SlogGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *SlogGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

// Trace implements gormlogger.Interface.
func (l *SlogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !stderrors.Is(err, gorm.ErrRecordNotFound):
		query, rows := fc()
		l.log.ErrorContext(ctx, "sql failed",
			"sql", query,
			"rows", rows,
			"elapsed", elapsed,
			"error", err)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		query, rows := fc()
		l.log.WarnContext(ctx, "slow sql",
			"sql", query,
			"rows", rows,
			"elapsed", elapsed,
			"threshold", l.slowThreshold)
	case l.level >= gormlogger.Info && l.log.Enabled(ctx, slog.LevelDebug):
		query, rows := fc()
		l.log.DebugContext(ctx, "sql",
			"sql", query,
			"rows", rows,
			"elapsed", elapsed)
	}
}
