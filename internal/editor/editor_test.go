package editor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEditor writes an executable shell script and returns its path
func fakeEditor(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake editor needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "fake-editor")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestBlockingFlag(t *testing.T) {
	tests := []struct {
		executable string
		want       string
	}{
		{"gvim", "--nofork"},
		{"/usr/local/bin/mvim", "--nofork"},
		{"jedit", "-wait"},
		{"mate", "-w"},
		{"/opt/sublime/subl", "-w"},
		{"vim", ""},
		{"nano", ""},
		{"emacsclient", ""},
	}

	for _, tt := range tests {
		t.Run(tt.executable, func(t *testing.T) {
			assert.Equal(t, tt.want, BlockingFlag(tt.executable))
		})
	}
}

func TestArgs(t *testing.T) {
	args, err := Args(`"/Applications/Sublime Text/subl" -n`, "/tmp/evned1.markdown")
	require.NoError(t, err)
	assert.Equal(t, []string{"/Applications/Sublime Text/subl", "-n", "-w", "/tmp/evned1.markdown"}, args)

	args, err = Args("vim", "/tmp/x.markdown")
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "/tmp/x.markdown"}, args)

	_, err = Args("   ", "/tmp/x.markdown")
	assert.ErrorIs(t, err, ErrNoEditor)
}

func TestEditReturnsEditedContent(t *testing.T) {
	record := filepath.Join(t.TempDir(), "path")
	script := fakeEditor(t, `echo "$1" > `+record+`
printf '%s\n%s' '- milk' '- eggs' > "$1"`)

	inv := New(script, nil)
	inv.TempDir = t.TempDir()

	got, err := inv.Edit(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "- milk\n- eggs", got)

	// The temp file is gone after the edit
	raw, err := os.ReadFile(record)
	require.NoError(t, err)
	tempPath := string(raw[:len(raw)-1])
	assert.Equal(t, ".markdown", filepath.Ext(tempPath))
	assert.Contains(t, filepath.Base(tempPath), "evned")
	assert.NoFileExists(t, tempPath)
}

func TestEditPassesInitialContent(t *testing.T) {
	script := fakeEditor(t, `true`)

	inv := New(script, nil)
	inv.TempDir = t.TempDir()

	got, err := inv.Edit(context.Background(), "# Draft")
	require.NoError(t, err)
	assert.Equal(t, "# Draft\n", got)
}

func TestEditNonZeroExit(t *testing.T) {
	script := fakeEditor(t, `exit 3`)

	inv := New(script, nil)
	inv.TempDir = t.TempDir()

	_, err := inv.Edit(context.Background(), "")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, err.Error(), "gave exit status: 3")

	entries, err := os.ReadDir(inv.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEditMissingExecutable(t *testing.T) {
	inv := New(filepath.Join(t.TempDir(), "no-such-editor"), nil)
	inv.TempDir = t.TempDir()

	_, err := inv.Edit(context.Background(), "")
	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}
