package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	warnMarker = "⚠️  "
	tipMarker  = "💡 "
)

// consoleHandler prints bare messages: no timestamp, no level. Debug records
// pass only when DEBUG is set.
type consoleHandler struct {
	writer io.Writer
	debug  bool
	quiet  *bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }

// envInt reads a non-negative integer override. Zero counts only with allowZero.
func envInt(key string, fallback int, allowZero bool) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 || (v == 0 && !allowZero) {
		return fallback
	}
	return v
}

// newRotatingLog opens the rotating gg log. Size is in megabytes and age in
// days; GG_LOG_MAX_SIZE, GG_LOG_MAX_BACKUPS and GG_LOG_MAX_AGE override them.
func newRotatingLog(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("GG_LOG_MAX_SIZE", 1, false),
		MaxBackups: envInt("GG_LOG_MAX_BACKUPS", 2, true),
		MaxAge:     envInt("GG_LOG_MAX_AGE", 30, false),
	}
}

// fanout sends each record to every handler that wants it
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range f {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// Splog is what gg prints to the user. Every message also lands in the
// repository log when one is configured, debug included.
type Splog struct {
	logger  *slog.Logger
	writer  io.Writer
	logFile io.WriteCloser
	quiet   bool
}

// NewSplog creates a console-only splog on stdout
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig("", os.Stdout)
	return splog
}

// NewSplogWithConfig creates a splog writing to w and, when logFilePath is
// set, to a rotating log file.
func NewSplogWithConfig(logFilePath string, w io.Writer) (*Splog, error) {
	s := &Splog{writer: w}
	handlers := fanout{&consoleHandler{
		writer: w,
		debug:  os.Getenv("DEBUG") != "",
		quiet:  &s.quiet,
	}}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := newRotatingLog(logFilePath)
		s.logFile = rotating
		handlers = append(handlers, slog.NewTextHandler(rotating, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}

	s.logger = slog.New(handlers)
	return s, nil
}

// Logger returns the underlying logger, e.g. for tracing git commands
func (s *Splog) Logger() *slog.Logger {
	return s.logger
}

// SetQuiet silences the console. The log file still records everything.
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// logf formats one message and prepends marker.
//
// nolint // format strings come from callers and only reach fmt.Sprintf
func (s *Splog) logf(level slog.Level, marker, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, marker+msg)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...any) {
	s.logf(slog.LevelInfo, "", format, args...)
}

// Warn writes a warning
func (s *Splog) Warn(format string, args ...any) {
	s.logf(slog.LevelWarn, warnMarker, format, args...)
}

// Tip suggests a follow-up command
func (s *Splog) Tip(format string, args ...any) {
	s.logf(slog.LevelInfo, tipMarker, format, args...)
}

// Debug writes a message shown only with DEBUG set
func (s *Splog) Debug(format string, args ...any) {
	s.logf(slog.LevelDebug, "", format, args...)
}

// Page writes a listing as is. It bypasses the log file.
func (s *Splog) Page(content string) {
	_, _ = fmt.Fprint(s.writer, content)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}
