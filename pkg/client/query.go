package client

import (
	"context"
	"os"

	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/reconcile"
	"mcpkg.io/mcpkg/pkg/syncdb"
	"mcpkg.io/mcpkg/pkg/world"
)

// ListCatalog returns all packs of the local pack database sorted by id.
func (c *McpkgClient) ListCatalog(ctx context.Context) (*pack.PackSet, error) {
	return c.syncDB.Search(ctx, syncdb.Filter{})
}

// Search returns the packs of the local pack database selected by 'filter' sorted by id.
func (c *McpkgClient) Search(ctx context.Context, filter syncdb.Filter) (*pack.PackSet, error) {
	return c.syncDB.Search(ctx, filter)
}

// ListInstalled returns the packs installed into the world at 'path', the working directory by default.
func (c *McpkgClient) ListInstalled(path string) (map[string]world.InstalledPack, error) {
	path, err := worldPathOrWd(path)
	if err != nil {
		return nil, err
	}
	return world.GetInstalledPacks(path)
}

// Upgrades returns the packs installed into the world at 'path' which can be upgraded.
func (c *McpkgClient) Upgrades(ctx context.Context, path string) ([]reconcile.Upgrade, error) {
	installed, err := c.ListInstalled(path)
	if err != nil {
		return nil, err
	}
	catalog, err := c.syncDB.LocalPackList(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.FindUpgrades(installed, catalog), nil
}

func worldPathOrWd(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return os.Getwd()
}
