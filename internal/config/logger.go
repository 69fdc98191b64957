package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// logLevel backs every logger built by InitLogger so the level can change at runtime
var logLevel = new(slog.LevelVar)

// InitLogger builds the application logger from cfg and installs it as the slog default.
// An empty File uses the default state-dir log file; "-" logs to stderr.
func InitLogger(cfg *LoggingConfig) (*slog.Logger, error) {
	logLevel.Set(ParseLogLevel(cfg.Level))

	if cfg.File == "" {
		cfg.File = filepath.Join(getStateDir(), appName, appName+".log")
	}

	var writer io.Writer = os.Stderr
	toConsole := cfg.File == "-"
	if !toConsole {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		writer = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge, // days
			Compress:   cfg.Compress,
		}
	}

	logger := slog.New(newHandler(writer, cfg.Format, cfg.Color && toConsole))
	slog.SetDefault(logger)
	return logger, nil
}

// SetLogLevel changes the level of loggers created by InitLogger
func SetLogLevel(level string) {
	logLevel.Set(ParseLogLevel(level))
}

func newHandler(w io.Writer, format string, color bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: logLevel}
	switch {
	case strings.EqualFold(format, "json"):
		return slog.NewJSONHandler(w, opts)
	case color:
		return NewColoredTextHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

var levelColors = map[slog.Level]string{
	slog.LevelDebug: "\033[90m",
	slog.LevelInfo:  "\033[32m",
	slog.LevelWarn:  "\033[33m",
	slog.LevelError: "\033[31m",
}

// ColoredTextHandler renders records with slog's text format and colors the first field by level
type ColoredTextHandler struct {
	mu      *sync.Mutex
	buf     *bytes.Buffer
	handler slog.Handler
	writer  io.Writer
}

// NewColoredTextHandler creates a handler that writes colored text records to w
func NewColoredTextHandler(w io.Writer, opts *slog.HandlerOptions) *ColoredTextHandler {
	buf := &bytes.Buffer{}
	return &ColoredTextHandler{
		mu:      &sync.Mutex{},
		buf:     buf,
		handler: slog.NewTextHandler(buf, opts),
		writer:  w,
	}
}

// Handle implements slog.Handler
func (h *ColoredTextHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if err := h.handler.Handle(ctx, r); err != nil {
		return err
	}

	line := h.buf.String()
	if color, ok := levelColors[r.Level]; ok {
		first, rest, found := strings.Cut(line, " ")
		if found {
			line = color + first + "\033[0m " + rest
		}
	}

	_, err := io.WriteString(h.writer, line)
	return err
}

// WithAttrs implements slog.Handler
func (h *ColoredTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.handler = h.handler.WithAttrs(attrs)
	return &clone
}

// WithGroup implements slog.Handler
func (h *ColoredTextHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.handler = h.handler.WithGroup(name)
	return &clone
}

// Enabled implements slog.Handler
func (h *ColoredTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// ParseLogLevel parses a log level string, defaulting to info
func ParseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
