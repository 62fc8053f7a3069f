package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"mcpkg.io/mcpkg/pkg/env"
)

const testDataDir = "test_data"

func getTestDir(subDir string) string {
	pwd, _ := os.Getwd()
	testDir := filepath.Join(pwd, testDataDir)
	testDir = filepath.Join(testDir, subDir)

	return testDir
}

func TestSettingInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv(env.HOME_PATH, home)

	settings, err := GetSettings()
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.HomePath, home)
	assert.Equal(t, settings.PackDBPath(), filepath.Join(home, "packdb.json"))
	assert.Equal(t, settings.GameVersion(), "1.16")
	assert.Equal(t, settings.BaseUrl(), "https://vanillatweaks.net")
	assert.Equal(t, settings.Timeout(), 30*time.Second)
}

func TestLoadSettingsFromToml(t *testing.T) {
	settings, err := LoadSettings(getTestDir("custom"))
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.GameVersion(), "1.17")
	assert.Equal(t, settings.BaseUrl(), "http://localhost:8080")
	assert.Equal(t, settings.Timeout(), 5*time.Second)
}

func TestLoadSettingsPartialToml(t *testing.T) {
	settings, err := LoadSettings(getTestDir("partial"))
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.GameVersion(), "1.18")
	assert.Equal(t, settings.BaseUrl(), "https://vanillatweaks.net")
	assert.Equal(t, settings.Timeout(), 30*time.Second)
}

func TestLoadSettingsInvalidToml(t *testing.T) {
	_, err := LoadSettings(getTestDir("invalid"))
	assert.NotEqual(t, err, nil)
}

func TestPackageCacheLock(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	assert.Equal(t, err, nil)

	var logs bytes.Buffer
	err = settings.AcquirePackageCacheLock(&logs)
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.PackageCacheLock.Locked(), true)
	assert.Equal(t, logs.String(), "")

	err = settings.ReleasePackageCacheLock()
	assert.Equal(t, err, nil)
	assert.Equal(t, settings.PackageCacheLock.Locked(), false)
}
