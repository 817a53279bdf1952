package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/m-mizutani/masq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "nil context", ctx: nil, want: defaultLogger.Load()},
		{name: "no logger stored", ctx: context.Background(), want: defaultLogger.Load()},
		{name: "stored logger", ctx: WithContext(context.Background(), custom), want: custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, FromContext(tt.ctx))
		})
	}
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx = WithRequestID(ctx, "req-123")
	ctx = WithCorrelationID(ctx, "corr-789")
	ctx = WithTraceID(ctx, "trace-456")
	ctx = With(ctx, slog.String("theme", "dracula"))

	FromContext(ctx).InfoContext(ctx, "rendered card")

	entry := decodeLine(t, buf.Bytes())
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
	assert.Equal(t, "trace-456", entry["trace_id"])
	assert.Equal(t, "dracula", entry["theme"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger.Load()
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Same(t, custom, FromContext(context.Background()))
	assert.Same(t, custom, slog.Default())
}

func TestNew(t *testing.T) {
	logger := New(&Config{Level: "info", Format: FormatJSON, Service: "quote-card", Version: "1.0.0"})
	assert.NotNil(t, logger)
}

func TestNewWithWriter_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&Config{Level: "info", Format: FormatJSON, Service: "quote-card", Version: "1.0.0"}, &buf)

		logger.Info("server started", slog.Int("port", 8080))

		entry := decodeLine(t, buf.Bytes())
		assert.Equal(t, "server started", entry["msg"])
		assert.Equal(t, "quote-card", entry["service_name"])
		assert.Equal(t, "1.0.0", entry["service_version"])
		assert.InDelta(t, 8080, entry["port"], 0)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&Config{Level: "debug", Format: FormatText, Service: "quote-card"}, &buf)

		logger.Debug("debug message")

		assert.Contains(t, buf.String(), "debug message")
		assert.Contains(t, buf.String(), "service_name=quote-card")
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&Config{Level: "info", Format: FormatPretty, Service: "quote-card"}, &buf)

		logger.Info("pretty message", slog.String("password", "hunter2"))
		logger.Debug("hidden")

		assert.Contains(t, buf.String(), "pretty message")
		assert.NotContains(t, buf.String(), "hunter2")
		assert.NotContains(t, buf.String(), "hidden")
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&Config{Level: "warn", Format: FormatJSON}, &buf)

		logger.Info("dropped")

		assert.Empty(t, buf.String())
	})
}

func TestNewWithWriter_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "quote-card.log")

	var buf bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  FormatText,
		Service: "quote-card",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &buf)

	logger.Info("written twice", slog.String("token", "abc"))

	assert.Contains(t, buf.String(), "written twice")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)

	entry := decodeLine(t, bytes.TrimSpace(content))
	assert.Equal(t, "written twice", entry["msg"])
	assert.NotEqual(t, "abc", entry["token"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		name  string
		input slog.Level
		want  log.Level
	}{
		{"trace", LevelTrace, log.DebugLevel},
		{"debug", slog.LevelDebug, log.DebugLevel},
		{"info", slog.LevelInfo, log.InfoLevel},
		{"between info and warn", slog.LevelInfo + 2, log.InfoLevel},
		{"warn", slog.LevelWarn, log.WarnLevel},
		{"error", slog.LevelError, log.ErrorLevel},
		{"above error", slog.Level(12), log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slogToCharmLevel(tt.input))
		})
	}
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, multi.Enabled(context.Background(), LevelTrace))

	logger := slog.New(multi).WithGroup("card").With(slog.String("theme", "monokai"))
	logger.Debug("debug only")
	logger.Info("both")

	assert.Contains(t, debugBuf.String(), "debug only")
	assert.Contains(t, debugBuf.String(), "both")
	assert.NotContains(t, infoBuf.String(), "debug only")
	assert.Contains(t, infoBuf.String(), `"card":{"theme":"monokai"}`)
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		key    string
		value  string
		redact bool
	}{
		{"password", "secret123", true},
		{"token", "my-token", true},
		{"api_key", "key-value", true},
		{"secret_config", "sensitive", true},
		{"privateKey", "pk-data", true},
		{"authorization", "Bearer abc123xyz456", true},
		{"header", "Basic dXNlcjpwYXNz", true},
		{"author", "Linus Torvalds", false},
		{"theme", "radical", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))

			logger.Info("test", slog.String(tt.key, tt.value))

			assert.Contains(t, buf.String(), tt.key)
			if tt.redact {
				assert.NotContains(t, buf.String(), tt.value)
			} else {
				assert.Contains(t, buf.String(), tt.value)
			}
		})
	}
}

func TestNewReplaceAttr_ExtraOptions(t *testing.T) {
	var buf bytes.Buffer
	replace := NewReplaceAttr(masq.WithFieldName("quotes_file"))
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: replace}))

	logger.Info("loaded", slog.String("quotes_file", "/etc/quote-card/quotes.yaml"))

	assert.NotContains(t, buf.String(), "/etc/quote-card/quotes.yaml")
}

func TestRedactingHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newRedactingHandler(slog.NewJSONHandler(&buf, nil), NewReplaceAttr())

	logger := slog.New(h).With(slog.String("token", "t0k3n")).WithGroup("req")
	logger.Info("call", slog.String("password", "pw"), slog.String("path", "/api"))

	out := buf.String()
	assert.NotContains(t, out, "t0k3n")
	assert.NotContains(t, out, `"pw"`)
	assert.Contains(t, out, `"path":"/api"`)
}
