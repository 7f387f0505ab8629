package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func sqlAndRows() (string, int64) {
	return `INSERT INTO "user_discounts" ("user_id","discount_id") VALUES ('u','d')`, 0
}

func TestGormSlogLogger_TraceErrorLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLines int
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "unique violation is debug",
			err:       errors.Wrap(gorm.ErrDuplicatedKey, "insert user_discounts"),
			wantLines: 1,
			wantLevel: "DEBUG",
			wantMsg:   "GORM unique constraint hit",
		},
		{
			name:      "record not found is skipped",
			err:       gorm.ErrRecordNotFound,
			wantLines: 0,
		},
		{
			name:      "unexpected error is error",
			err:       errors.New("connection reset by peer"),
			wantLines: 1,
			wantLevel: "ERROR",
			wantMsg:   "GORM query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := newCapturingLogger()
			gormLogger := newGormSlogLogger(base, &config.Config{})

			gormLogger.Trace(context.Background(), time.Now(), sqlAndRows, tt.err)

			lines := decodeLogLines(t, buf)
			require.Len(t, lines, tt.wantLines)
			if tt.wantLines == 0 {
				return
			}
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Contains(t, lines[0]["sql"], "user_discounts")
			assert.Equal(t, tt.err.Error(), lines[0]["error"])
		})
	}
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	base, buf := newCapturingLogger()
	gormLogger := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Info)

	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-42")))
	gormLogger.Trace(ctx, time.Now(), sqlAndRows, nil)
	gormLogger.Warn(ctx, "pool %s", "busy")

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "GORM query", lines[0]["msg"])
	assert.Equal(t, "req-42", lines[0]["request_id"])
	assert.Equal(t, "GORM warn", lines[1]["msg"])
	assert.Equal(t, "pool busy", lines[1]["message"])
	assert.Equal(t, "req-42", lines[1]["request_id"])
}

func TestGormSlogLogger_FallsBackToBaseLogger(t *testing.T) {
	base, buf := newCapturingLogger()
	gormLogger := newGormSlogLogger(base, &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "request_id")
}

func TestGormSlogLogger_SilentAndDefaultLevels(t *testing.T) {
	base, buf := newCapturingLogger()

	newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent).
		Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())

	// Successful fast statements stay quiet outside debug mode.
	newGormSlogLogger(base, &config.Config{}).
		Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Empty(t, buf.String())

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	newGormSlogLogger(base, debugCfg).
		Trace(context.Background(), time.Now(), sqlAndRows, nil)
	assert.Contains(t, buf.String(), "GORM query")
}
