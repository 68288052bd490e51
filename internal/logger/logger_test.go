package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHelpersWriteFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.NoteCreated("4f1c-guid", "Groceries")
	l.RemoteError("create", errors.New("quota reached"))
	l.SearchCompleted("Groceries", 2)

	out := buf.String()
	assert.Contains(t, out, "note created")
	assert.Contains(t, out, "guid=4f1c-guid")
	assert.Contains(t, out, "operation=create")
	assert.Contains(t, out, "quota reached")
	assert.Contains(t, out, "found=2")
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.WarnLevel)

	l.EditorLaunched("vim", "/tmp/evned1.markdown")
	assert.Empty(t, buf.String())
}

func TestNewFileLogger(t *testing.T) {
	path := t.TempDir() + "/evned.log"

	l, cleanup, err := NewFileLogger(path, log.InfoLevel)
	require.NoError(t, err)
	defer cleanup()

	l.SetupPrompted("/home/u/.evned")
	assert.FileExists(t, path)
}
