package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHandler_InjectsDynamicAttrs(t *testing.T) {
	var buf bytes.Buffer
	size := 0
	h := NewContextHandler(slog.NewTextHandler(&buf, nil), func() []slog.Attr {
		return []slog.Attr{slog.Int("queueSize", size)}
	})
	logger := slog.New(h)

	logger.Info("first")
	size = 4
	logger.Info("second")

	out := buf.String()
	assert.Contains(t, out, `msg=first queueSize=0`)
	assert.Contains(t, out, `msg=second queueSize=4`)
}

func TestContextHandler_NilProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil), nil))

	logger.Info("plain")

	assert.Contains(t, buf.String(), "msg=plain")
}

func TestContextHandler_WithAttrsKeepsProvider(t *testing.T) {
	var buf bytes.Buffer
	h := NewContextHandler(slog.NewTextHandler(&buf, nil), func() []slog.Attr {
		return []slog.Attr{slog.String("screen", "landing")}
	})
	logger := slog.New(h).With("component", "tui")

	logger.Info("hello")

	assert.Contains(t, buf.String(), "component=tui")
	assert.Contains(t, buf.String(), "screen=landing")
}

func TestContextHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewContextHandler(slog.NewTextHandler(&buf, nil), nil)

	assert.Same(t, h, h.WithGroup(""))

	slog.New(h.WithGroup("g")).Info("grouped", "k", "v")
	assert.Contains(t, buf.String(), "g.k=v")
}

func TestContextHandler_Enabled(t *testing.T) {
	h := NewContextHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}), nil)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestContextHandler_RecordAttrsWin(t *testing.T) {
	var buf bytes.Buffer
	h := NewContextHandler(slog.NewTextHandler(&buf, nil), func() []slog.Attr {
		return []slog.Attr{slog.Int("queueSize", 7), {}, slog.String("screen", "arena")}
	})

	slog.New(h).Info("cleared", "queueSize", 0)

	out := buf.String()
	assert.Contains(t, out, "queueSize=0")
	assert.NotContains(t, out, "queueSize=7")
	assert.Contains(t, out, "screen=arena")
}
