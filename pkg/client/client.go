package client

import (
	"io"
	"os"

	"mcpkg.io/mcpkg/pkg/settings"
	"mcpkg.io/mcpkg/pkg/syncdb"
	"mcpkg.io/mcpkg/pkg/vanillatweaks"
)

// McpkgClient is the client of mcpkg.
type McpkgClient struct {
	// The writer of the log.
	logWriter io.Writer
	// The home path of mcpkg for the configuration file and the local pack database.
	homePath string
	// The settings of mcpkg loaded from the configuration file.
	settings settings.Settings
	// The local pack database.
	syncDB *syncdb.SyncDB
	// The client of the vendor website.
	vendor *vanillatweaks.Client
}

// NewMcpkgClient will create a new mcpkg client with the settings in the mcpkg home directory.
func NewMcpkgClient() (*McpkgClient, error) {
	settings, err := settings.GetSettings()
	if err != nil {
		return nil, err
	}
	return NewMcpkgClientWithSettings(settings), nil
}

// NewMcpkgClientWithSettings will create a new mcpkg client with 'settings'.
func NewMcpkgClientWithSettings(settings *settings.Settings) *McpkgClient {
	c := &McpkgClient{
		logWriter: os.Stderr,
		homePath:  settings.HomePath,
		settings:  *settings,
	}
	c.init()
	return c
}

// init wires the vendor client and the local pack database to the settings and the log writer.
func (c *McpkgClient) init() {
	c.vendor = vanillatweaks.NewClient(
		vanillatweaks.WithBaseUrl(c.settings.BaseUrl()),
		vanillatweaks.WithGameVersion(c.settings.GameVersion()),
		vanillatweaks.WithTimeout(c.settings.Timeout()),
		vanillatweaks.WithLogWriter(c.logWriter),
	)
	c.syncDB = syncdb.NewSyncDB(
		c.settings.PackDBPath(),
		syncdb.WithFetcher(c.vendor),
		syncdb.WithLogWriter(c.logWriter),
	)
}

func (c *McpkgClient) SetLogWriter(writer io.Writer) {
	c.logWriter = writer
	c.init()
}

func (c *McpkgClient) GetLogWriter() io.Writer {
	return c.logWriter
}

// GetHomePath will return the home path of mcpkg.
func (c *McpkgClient) GetHomePath() string {
	return c.homePath
}

// GetSettings will return the settings of mcpkg client.
func (c *McpkgClient) GetSettings() *settings.Settings {
	return &c.settings
}

// GetSyncDB will return the local pack database.
func (c *McpkgClient) GetSyncDB() *syncdb.SyncDB {
	return c.syncDB
}

// AcquirePackageCacheLock will acquire the lock of the local pack database.
func (c *McpkgClient) AcquirePackageCacheLock() error {
	return c.settings.AcquirePackageCacheLock(c.logWriter)
}

// ReleasePackageCacheLock will release the lock of the local pack database.
func (c *McpkgClient) ReleasePackageCacheLock() error {
	return c.settings.ReleasePackageCacheLock()
}
