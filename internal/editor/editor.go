// Package editor runs the user's text editor on a temporary markdown file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gerunddev/evned/internal/logger"
	"github.com/google/shlex"
)

// TempPattern names the temporary file handed to the editor
const TempPattern = "evned*.markdown"

// ErrNoEditor is returned when no editor command is configured
var ErrNoEditor = errors.New("no editor command configured")

// ExitError reports an editor that exited with a non-zero status
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("`%s` gave exit status: %d", e.Command, e.Code)
}

// Invoker launches an editor and waits for it to close
type Invoker struct {
	Command string
	TempDir string // empty means os.TempDir()

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Log *logger.Logger
}

// New creates an invoker attached to the process terminal
func New(command string, log *logger.Logger) *Invoker {
	if log == nil {
		log = logger.Discard()
	}
	return &Invoker{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Log:     log,
	}
}

// Edit writes initial to a temp file, opens it in the editor and returns
// the file's content once the editor exits. The temp file is always removed.
func (i *Invoker) Edit(ctx context.Context, initial string) (string, error) {
	f, err := os.CreateTemp(i.TempDir, TempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := io.WriteString(f, initial+"\n"); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := i.Open(ctx, path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read temp file: %w", err)
	}

	return string(content), nil
}

// Open runs the editor on path and blocks until it exits
func (i *Invoker) Open(ctx context.Context, path string) error {
	args, err := Args(i.Command, path)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = i.Stdin
	cmd.Stdout = i.Stdout
	cmd.Stderr = i.Stderr

	log := i.logger()
	log.EditorLaunched(strings.Join(args, " "), path)
	start := time.Now()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: strings.Join(args, " "), Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	size := 0
	if info, err := os.Stat(path); err == nil {
		size = int(info.Size())
	}
	log.EditorClosed(args[0], size, time.Since(start))

	return nil
}

func (i *Invoker) logger() *logger.Logger {
	if i.Log == nil {
		return logger.Discard()
	}
	return i.Log
}

// Args builds the editor argv: the split command, its blocking flag if any, then path
func Args(command, path string) ([]string, error) {
	fields, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid editor command %q: %w", command, err)
	}
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}

	if flag := BlockingFlag(fields[0]); flag != "" {
		fields = append(fields, flag)
	}
	return append(fields, path), nil
}

// BlockingFlag returns the argument that keeps a GUI editor in the foreground.
// Terminal editors need none.
func BlockingFlag(executable string) string {
	name := filepath.Base(executable)
	switch {
	case strings.HasPrefix(name, "gvim"), strings.HasPrefix(name, "mvim"):
		return "--nofork"
	case strings.HasPrefix(name, "jedit"):
		return "-wait"
	case strings.HasPrefix(name, "mate"), strings.HasPrefix(name, "subl"):
		return "-w"
	default:
		return ""
	}
}
