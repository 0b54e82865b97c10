package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlstyle/pkg/consts"
	"github.com/stretchr/testify/require"
)

// WriteFiles creates the given files below dir, creating parent directories as
// needed.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
		require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
	}
}

// RequireFileContent asserts that a file exists and holds exactly expected.
func RequireFileContent(t *testing.T, path, expected string) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, expected, string(content))
}
