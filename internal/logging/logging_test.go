package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, FormatText, &buf)

	logger := New("test-component")
	logger.Info("hello")

	output := buf.String()
	if !strings.Contains(output, "component=test-component") {
		t.Errorf("expected component=test-component in output, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("expected 'hello' in output, got: %s", output)
	}
}

func TestInit_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, FormatText, &buf)

	New("filter").Info("quiet")
	assert.NotContains(t, buf.String(), "quiet")

	New("filter").Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestInit_LogfmtFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, FormatLogfmt, &buf)

	New("fmt-test").Info("logfmt check", "assemblies", 3)

	output := buf.String()
	assert.Contains(t, output, "msg=\"logfmt check\"")
	assert.Contains(t, output, "assemblies=3")
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, FormatJSON, &buf)

	New("json-test").Info("json check")

	output := buf.String()
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"component":"json-test"`)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestFileWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "run.log")
	w := FileWriter(p)
	_, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.FileExists(t, p)
}
