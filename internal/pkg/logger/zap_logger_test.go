package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestGetLogsNewestFirstWithLevelFilter(t *testing.T) {
	path := writeLines(t,
		`{"level":"INFO","timestamp":"2026-01-01T10:00:00Z","message":"first","module":"AUTH"}`,
		`not json`,
		`{"level":"ERROR","timestamp":"2026-01-01T10:01:00Z","message":"second","module":"BONUS"}`,
		`{"level":"INFO","timestamp":"2026-01-01T10:02:00Z","message":"third","module":"AUTH"}`,
	)
	l := &ZapLogger{filePath: path}

	all, total, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, total)
	assert.Equal(t, "third", all[0].Message)
	assert.Equal(t, "first", all[2].Message)

	infos, total, err := l.GetLogs("INFO", 10, 0)
	require.NoError(t, err)
	assert.Len(t, infos, 2)
	assert.Equal(t, 2, total)

	errs, _, err := l.GetLogs("error", 10, 0)
	require.NoError(t, err)
	require.Len(t, errs, 1, "level filter ignores case")
	assert.Equal(t, "second", errs[0].Message)

	page, total, err := l.GetLogs("", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "second", page[0].Message)
	assert.Equal(t, 3, total)

	empty, total, err := l.GetLogs("", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, 3, total)
}

func TestGetLogById(t *testing.T) {
	path := writeLines(t, `{"level":"WARN","timestamp":"2026-01-01T10:00:00Z","message":"careful"}`)
	l := &ZapLogger{filePath: path}

	logs, _, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	found, err := l.GetLogById(logs[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "careful", found.Message)

	_, err = l.GetLogById("missing")
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestGetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "nope.log")}
	logs, total, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Zero(t, total)
}

func TestLogEntryTimeParsesZapTimestamps(t *testing.T) {
	cases := []struct {
		name string
		ts   string
		want time.Time
	}{
		{"offset", "2026-01-01T10:01:00.000+0200", time.Date(2026, 1, 1, 8, 1, 0, 0, time.UTC)},
		{"utc", "2026-01-01T10:01:00.250Z", time.Date(2026, 1, 1, 10, 1, 0, 250e6, time.UTC)},
		{"rfc3339", "2026-01-01T10:01:00Z", time.Date(2026, 1, 1, 10, 1, 0, 0, time.UTC)},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := LogEntry{Timestamp: tt.ts}.Time()
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
	assert.True(t, LogEntry{Timestamp: "yesterday"}.Time().IsZero())
}

func TestZapLoggerOutputIsReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewIsolatedLogger(path)
	l.Error("BONUS", "boom", map[string]interface{}{"error": "x"})
	require.NoError(t, l.Sync())

	logs, total, err := l.GetLogs("error", 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	assert.Equal(t, "BONUS", logs[0].Module)
	assert.WithinDuration(t, time.Now(), logs[0].Time(), time.Minute)
}
