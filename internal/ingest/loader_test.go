package ingest_test

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logreport/config"
	"logreport/internal/ingest"
	"logreport/internal/model"
	"logreport/internal/parser"
)

const sampleLog = "2024-01-01 10:00:00 INFO Started\n" +
	"2024-01-01 10:00:05 ERROR Crashed\n" +
	"2024-01-01 10:00:07 INFO Done"

func newLoader(maxLineBytes int) ingest.Loader {
	cfg := &config.Config{Ingest: config.IngestConfig{MaxLineBytes: maxLineBytes}}
	return ingest.NewLoader(cfg, parser.NewLineParser())
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeLog(t, sampleLog)

	result, err := newLoader(0).Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	assert.Equal(t, int64(len(sampleLog)), result.Bytes)
	assert.Len(t, result.Digest, 16)
	assert.Equal(t, []model.LogEntry{
		{Timestamp: "2024-01-01 10:00:00", Level: "INFO", Message: "Started"},
		{Timestamp: "2024-01-01 10:00:05", Level: "ERROR", Message: "Crashed"},
		{Timestamp: "2024-01-01 10:00:07", Level: "INFO", Message: "Done"},
	}, result.Entries)
}

func TestLoad_BlankLinesTolerated(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Trailing Newline", content: sampleLog + "\n"},
		{name: "Trailing Blank Line", content: sampleLog + "\n\n"},
		{name: "CRLF Line Endings", content: strings.ReplaceAll(sampleLog, "\n", "\r\n") + "\r\n"},
		{name: "Interior Blank Line", content: strings.Replace(sampleLog, "\n", "\n\n", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newLoader(0).LoadReader(context.Background(), "app.log", strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Len(t, result.Entries, 3)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	result, err := newLoader(0).Load(context.Background(), writeLog(t, ""))
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")

	result, err := newLoader(0).Load(context.Background(), path)

	assert.Nil(t, result)
	var accessErr *ingest.FileAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, path, accessErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Directory(t *testing.T) {
	result, err := newLoader(0).Load(context.Background(), t.TempDir())

	assert.Nil(t, result)
	var readErr *ingest.IOReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_MalformedLineAbortsEverything(t *testing.T) {
	content := "2024-01-01 10:00:00 INFO Started\nnot a log line\n2024-01-01 10:00:07 INFO Done\n"

	result, err := newLoader(0).Load(context.Background(), writeLog(t, content))

	assert.Nil(t, result)
	var formatErr *ingest.LogFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Line)
	assert.Equal(t, "not a log line", formatErr.Content)
	assert.ErrorIs(t, err, parser.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "not a log line")
}

func TestLoad_SingleMalformedLine(t *testing.T) {
	result, err := newLoader(0).Load(context.Background(), writeLog(t, "not a log line"))

	assert.Nil(t, result)
	var formatErr *ingest.LogFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestLoad_LevelWithoutSeparatorIsMalformed(t *testing.T) {
	content := "2024-01-01 10:00:00 INFO Started\n2024-01-01 10:00:05 INFO\n"

	result, err := newLoader(0).LoadReader(context.Background(), "app.log", strings.NewReader(content))

	assert.Nil(t, result)
	var formatErr *ingest.LogFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Line)
	assert.Equal(t, "2024-01-01 10:00:05 INFO", formatErr.Content)
}

func TestLoad_WhitespaceOnlyLineIsMalformed(t *testing.T) {
	_, err := newLoader(0).LoadReader(context.Background(), "app.log", strings.NewReader(sampleLog+"\n   \n"))

	var formatErr *ingest.LogFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 4, formatErr.Line)
}

func TestLoad_InvalidUTF8(t *testing.T) {
	content := "2024-01-01 10:00:00 INFO caf\xe9\n"

	result, err := newLoader(0).LoadReader(context.Background(), "app.log", strings.NewReader(content))

	assert.Nil(t, result)
	var readErr *ingest.IOReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_LineTooLong(t *testing.T) {
	content := "2024-01-01 10:00:00 INFO " + strings.Repeat("x", 256) + "\n"

	result, err := newLoader(64).LoadReader(context.Background(), "app.log", strings.NewReader(content))

	assert.Nil(t, result)
	var readErr *ingest.IOReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoad_LineAtLimit(t *testing.T) {
	line := "2024-01-01 10:00:00 INFO " + strings.Repeat("x", 39)
	require.Len(t, line, 64)

	tests := []struct {
		name    string
		content string
	}{
		{name: "With Newline", content: line + "\n"},
		{name: "At EOF", content: line},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newLoader(64).LoadReader(context.Background(), "app.log", strings.NewReader(tt.content))
			require.NoError(t, err)
			require.Len(t, result.Entries, 1)
			assert.Equal(t, line, result.Entries[0].String())
		})
	}

	_, err := newLoader(64).LoadReader(context.Background(), "app.log", strings.NewReader(line+"x\n"))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoad_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := newLoader(0).LoadReader(ctx, "app.log", strings.NewReader(sampleLog))

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoad_DigestDependsOnContent(t *testing.T) {
	loader := newLoader(0)

	a, err := loader.LoadReader(context.Background(), "a.log", strings.NewReader(sampleLog))
	require.NoError(t, err)
	b, err := loader.LoadReader(context.Background(), "b.log", strings.NewReader(sampleLog))
	require.NoError(t, err)
	c, err := loader.LoadReader(context.Background(), "c.log", strings.NewReader(sampleLog+"\n"))
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest)
	assert.NotEqual(t, a.Digest, c.Digest)
}
