package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/internal/cli"
)

func writePreset(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadPresets(t *testing.T) {
	dir := t.TempDir()
	small := writePreset(t, dir, "small.hcl", `
maze {
  width  = var.size
  height = var.size
}
`)
	loaded, err := loadPresets(context.Background(), map[string]string{"small": small}, map[string]string{"size": "7"})
	require.NoError(t, err)
	require.Contains(t, loaded, "small")
	assert.Equal(t, 7, loaded["small"].Maze.Width)

	_, err = loadPresets(context.Background(), map[string]string{"gone": filepath.Join(dir, "gone.hcl")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `preset "gone"`)
}

func TestRunShutsDownWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs bytes.Buffer
	err := run(ctx, &logs, []string{"-addr", "127.0.0.1:0"})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "maze server listening")
	assert.Contains(t, logs.String(), "shutting down maze server")
}

func TestRunRejectsBadFlags(t *testing.T) {
	var logs bytes.Buffer
	err := run(context.Background(), &logs, []string{"-log-format", "xml"})
	var exit *cli.ExitError
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.Code)

	err = run(context.Background(), &logs, []string{"-preset", "broken"})
	require.ErrorAs(t, err, &exit)
}
