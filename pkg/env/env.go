package env

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/utils"
)

// env name
const HOME_PATH = "MCPKG_HOME"
const MCPKG_CONFIG_DIR = "mcpkg"

// GetEnvHomePath will return the env $MCPKG_HOME.
func GetEnvHomePath() string {
	return os.Getenv(HOME_PATH)
}

// GetConfigDir will return the configuration directory of mcpkg following the XDG Base Directory Specification.
// It returns $XDG_CONFIG_HOME/mcpkg on Unix systems, or the platform-specific equivalent.
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, MCPKG_CONFIG_DIR)
}

// GetAbsHomePath will return the absolute path of $MCPKG_HOME,
// or the absolute path of the XDG configuration directory if $MCPKG_HOME is not set.
func GetAbsHomePath() (string, error) {
	home := GetEnvHomePath()
	if home == "" {
		home = GetConfigDir()
	}

	home, err := filepath.Abs(home)
	if err != nil {
		return "", reporter.NewErrorEvent(reporter.FailedAccessHomePath, err, "could not access $MCPKG_HOME.")
	}

	if !utils.DirExists(home) {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", reporter.NewErrorEvent(reporter.FailedAccessHomePath, err, "could not create the mcpkg home directory.")
		}
	}

	return home, nil
}
