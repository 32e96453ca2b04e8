package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l, err := Init(Options{Format: "json", Output: &buf})
	require.NoError(t, err)
	defer Close()

	l.Info("tray ready", zap.String("tooltip", "Zoom Control"))
	Debug("hidden at info level")
	_ = l.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "tray ready", entry["msg"])
	assert.Equal(t, "Zoom Control", entry["tooltip"])
}

func TestInit_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := Init(Options{Debug: true, Format: "console", Output: &buf})
	require.NoError(t, err)
	defer Close()

	Debug("scroll ignored", "reason", "no_modifier")
	assert.Contains(t, buf.String(), "scroll ignored")
	assert.Contains(t, buf.String(), "no_modifier")
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "zoomctl.log")
	_, err := Init(Options{Format: "json", File: path})
	require.NoError(t, err)

	Warn("key injection failed", "key", "cmd")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "key injection failed")
}

func TestInit_UnsupportedFormat(t *testing.T) {
	_, err := Init(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	ctx, logs := TestContext()
	ctx = With(ctx, zap.String("session_id", "abc"))
	ctx = Named(ctx, "zoom")

	L(ctx).Info("sequence posted")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sequence posted", entries[0].Message)
	assert.Equal(t, "zoom", entries[0].LoggerName)
	assert.Equal(t, "abc", entries[0].ContextMap()["session_id"])
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
	assert.NotNil(t, FromContext(NopContext()))
}
