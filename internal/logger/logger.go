package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "evned",
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "evned",
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, baseURL string) {
	l.Debug("config loaded",
		"path", path,
		"service", baseURL)
}

// SetupPrompted logs that the interactive setup wrote the config file
func (l *Logger) SetupPrompted(path string) {
	l.Info("config updated by setup",
		"path", path)
}

// EditorLaunched logs the start of an editor process
func (l *Logger) EditorLaunched(command, file string) {
	l.Debug("editor launched",
		"command", command,
		"file", file)
}

// EditorClosed logs the end of an editor process
func (l *Logger) EditorClosed(command string, bytes int, duration time.Duration) {
	l.Debug("editor closed",
		"command", command,
		"bytes", bytes,
		"duration", duration.Round(time.Millisecond))
}

// NoteRendered logs the size of a rendered note
func (l *Logger) NoteRendered(title string, markdownBytes, markupBytes int) {
	l.Debug("note rendered",
		"title", title,
		"markdown_bytes", markdownBytes,
		"markup_bytes", markupBytes)
}

// NoteCreated logs a note accepted by the service
func (l *Logger) NoteCreated(guid, title string) {
	l.Info("note created",
		"guid", guid,
		"title", title)
}

// SearchCompleted logs a finished search
func (l *Logger) SearchCompleted(term string, found int) {
	l.Debug("search completed",
		"term", term,
		"found", found)
}

// RemoteError logs a failed call to the note service
func (l *Logger) RemoteError(operation string, err error) {
	l.Error("note service error",
		"operation", operation,
		"error", err)
}
