package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"geoalert/config"
	deliverycontext "geoalert/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var base bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("errors are logged", func(t *testing.T) {
		base.Reset()
		gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Contains(t, base.String(), "[GORM] Query failed")
		assert.Contains(t, base.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		base.Reset()
		gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, base.String())
	})

	t.Run("slow queries warn", func(t *testing.T) {
		base.Reset()
		gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, base.String(), "[GORM] Slow query")
	})

	t.Run("fast queries are quiet at warn level", func(t *testing.T) {
		base.Reset()
		gormLogger.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, base.String())
	})

	t.Run("silent mode", func(t *testing.T) {
		base.Reset()
		gormLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, base.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))
	gormLogger.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "[GORM] Query failed")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	var base bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)

	gormLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 3 }, nil)
	gormLogger.Info(context.Background(), "pool size %d", 10)

	assert.Contains(t, base.String(), "[GORM] Query")
	assert.Contains(t, base.String(), "rows=3")
	assert.Contains(t, base.String(), "pool size 10")
}

func TestGormSlogLogger_WarnLevelSuppressesInfo(t *testing.T) {
	var base bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	gormLogger.Info(context.Background(), "hidden")
	gormLogger.Warn(context.Background(), "shown %s", "warning")

	assert.NotContains(t, base.String(), "hidden")
	assert.Contains(t, base.String(), "shown warning")
}
