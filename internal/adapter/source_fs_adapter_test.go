package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "minigrep.dev/pkg/minigrep/internal/model"
)

func TestLocalSourceFSAdapter_Open(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "poem.txt")
	writeTestFile(t, path, "I'm nobody! Who are you?\n")

	rc, err := adapter.Open(m.Path(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "I'm nobody! Who are you?\n", string(data))
}

func TestLocalSourceFSAdapter_OpenMissingFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.Open(m.Path(filepath.Join(t.TempDir(), "missing.txt")))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
