package settings

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/env"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/utils"
)

// McpkgConf is the content of the optional 'config.toml' in the mcpkg home directory.
type McpkgConf struct {
	// The game version the vendor catalogs are requested for.
	GameVersion string `toml:"game_version"`
	BaseUrl     string `toml:"base_url"`
	// Timeout of a single request to the vendor, in seconds.
	Timeout int `toml:"timeout"`
}

// DefaultMcpkgConf returns the default configuration.
func DefaultMcpkgConf() McpkgConf {
	return McpkgConf{
		GameVersion: constants.DefaultGameVersion,
		BaseUrl:     constants.DefaultBaseUrl,
		Timeout:     constants.DefaultTimeout,
	}
}

type Settings struct {
	// The home directory of mcpkg.
	HomePath string
	Conf     McpkgConf
	// the lock of the local pack database.
	PackageCacheLock *flock.Flock
}

// PackDBPath returns the path of the local pack database.
func (settings *Settings) PackDBPath() string {
	return filepath.Join(settings.HomePath, constants.PackDBFile)
}

// ConfigPath returns the path of 'config.toml'.
func (settings *Settings) ConfigPath() string {
	return filepath.Join(settings.HomePath, constants.ConfigFile)
}

func (settings *Settings) GameVersion() string {
	return settings.Conf.GameVersion
}

func (settings *Settings) BaseUrl() string {
	return strings.TrimSuffix(settings.Conf.BaseUrl, "/")
}

// Timeout returns the timeout of a single request to the vendor.
func (settings *Settings) Timeout() time.Duration {
	return time.Duration(settings.Conf.Timeout) * time.Second
}

// GetSettings will load the settings from the mcpkg home directory.
func GetSettings() (*Settings, error) {
	home, err := env.GetAbsHomePath()
	if err != nil {
		return nil, err
	}
	return LoadSettings(home)
}

// LoadSettings will load the settings from 'homePath'.
// A missing 'config.toml' results in the default configuration,
// missing keys in 'config.toml' keep their default values.
func LoadSettings(homePath string) (*Settings, error) {
	settings := &Settings{
		HomePath: homePath,
		Conf:     DefaultMcpkgConf(),
		PackageCacheLock: flock.New(
			filepath.Join(homePath, constants.PackDBLockFile),
		),
	}

	configPath := settings.ConfigPath()
	if utils.FileExists(configPath) {
		meta, err := toml.DecodeFile(configPath, &settings.Conf)
		if err != nil {
			return nil, reporter.NewErrorEvent(
				reporter.FailedLoadSettings,
				err,
				fmt.Sprintf("failed to load the settings from '%s'.", configPath),
			)
		}
		for _, key := range meta.Undecoded() {
			logrus.Warnf("unknown key '%s' in '%s'", key.String(), configPath)
		}
	}

	if settings.Conf.Timeout <= 0 {
		settings.Conf.Timeout = constants.DefaultTimeout
	}
	if settings.Conf.GameVersion == "" {
		settings.Conf.GameVersion = constants.DefaultGameVersion
	}
	if settings.Conf.BaseUrl == "" {
		settings.Conf.BaseUrl = constants.DefaultBaseUrl
	}

	return settings, nil
}

// AcquirePackageCacheLock will try to acquire the lock of the local pack database,
// and block until the lock is acquired.
func (settings *Settings) AcquirePackageCacheLock(logWriter io.Writer) error {
	// if the lock is not initialized, there is nothing to acquire.
	if settings.PackageCacheLock == nil {
		return nil
	}

	isLocked, err := settings.PackageCacheLock.TryLock()
	if err != nil {
		return reporter.NewErrorEvent(reporter.Bug, err, "failed to acquire the pack database lock.")
	}

	if !isLocked {
		reporter.ReportEventTo(
			reporter.NewEvent(reporter.WaitingLock, "waiting for the pack database lock..."),
			logWriter,
		)
		err := settings.PackageCacheLock.Lock()
		if err != nil {
			return reporter.NewErrorEvent(reporter.Bug, err, "failed to acquire the pack database lock.")
		}
	}

	return nil
}

// ReleasePackageCacheLock will release the lock of the local pack database.
func (settings *Settings) ReleasePackageCacheLock() error {
	if settings.PackageCacheLock == nil {
		return nil
	}

	err := settings.PackageCacheLock.Unlock()
	if err != nil {
		return reporter.NewErrorEvent(reporter.Bug, err, "failed to release the pack database lock.")
	}
	return nil
}
