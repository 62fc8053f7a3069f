// Copyright 2026 The mcpkg Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
)

// NewUpdateCmd new a Command for `mcpkg update`.
func NewUpdateCmd(mcpkgcli *client.McpkgClient) *cli.Command {
	return &cli.Command{
		Hidden: false,
		Name:   "update",
		Usage:  "Fetch the latest pack catalogs from VanillaTweaks",
		Action: func(c *cli.Context) error {
			return McpkgUpdate(c, mcpkgcli)
		},
	}
}

func McpkgUpdate(c *cli.Context, mcpkgcli *client.McpkgClient) error {
	return withPackageCacheLock(mcpkgcli, func() error {
		return mcpkgcli.Update(c.Context)
	})
}
