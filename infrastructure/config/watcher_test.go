package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeLimitsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLimitsFromFile_Valid(t *testing.T) {
	path := writeLimitsFile(t, `{"maxNodes": 100, "maxEdges": 500}`)

	limits, err := loadLimitsFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, 100, limits.MaxNodes)
	assert.Equal(t, 500, limits.MaxEdges)
}

func TestLoadLimitsFromFile_RejectsNonPositive(t *testing.T) {
	for _, content := range []string{
		`{"maxNodes": 0, "maxEdges": 500}`,
		`{"maxNodes": 100, "maxEdges": -1}`,
		`{}`,
	} {
		path := writeLimitsFile(t, content)
		_, err := loadLimitsFromFile(path)
		assert.Error(t, err, "content %s should be rejected", content)
	}
}

func TestLoadLimitsFromFile_RejectsBadJSON(t *testing.T) {
	path := writeLimitsFile(t, `not json`)

	_, err := loadLimitsFromFile(path)

	assert.Error(t, err)
}

func TestNewLimitsWatcher_MissingFileFails(t *testing.T) {
	_, err := NewLimitsWatcher(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())

	assert.Error(t, err)
}

func TestNewLimitsWatcher_InitialLoad(t *testing.T) {
	path := writeLimitsFile(t, `{"maxNodes": 42, "maxEdges": 99}`)

	watcher, err := NewLimitsWatcher(path, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()

	current := watcher.Current()
	assert.Equal(t, 42, current.MaxNodes)
	assert.Equal(t, 99, current.MaxEdges)
}
