package client

import "context"

// Update fetches the catalogs from the vendor and merges them into the local pack database.
func (c *McpkgClient) Update(ctx context.Context) error {
	return c.syncDB.Refresh(ctx)
}
