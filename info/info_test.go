package info

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Info.txt")
	require.NoError(t, os.WriteFile(path, []byte("Welcome to SIP\nline two"), 0o644))

	assert.Equal(t, "Welcome to SIP\nline two", Load(path))
}

func TestLoadMissingFilePlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Modules", "Info", "Info.txt")

	got := Load(path)
	assert.Contains(t, got, path, "placeholder must name the expected path")
	assert.Contains(t, got, "Missing")
}
