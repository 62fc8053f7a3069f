package env

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"gotest.tools/v3/assert"
)

func TestGetAbsHomePath(t *testing.T) {
	dir := t.TempDir()

	// Test absolute directory
	t.Setenv(HOME_PATH, dir)
	got, err := GetAbsHomePath()
	assert.Equal(t, err, nil)
	assert.Equal(t, got, dir)

	// Test a sub directory which does not exist yet
	sub := filepath.Join(dir, "test_subdir")
	t.Setenv(HOME_PATH, sub)
	got, err = GetAbsHomePath()
	assert.Equal(t, err, nil)
	assert.Equal(t, got, sub)
}

func TestGetConfigDir(t *testing.T) {
	assert.Equal(t, GetConfigDir(), filepath.Join(xdg.ConfigHome, "mcpkg"))
}
