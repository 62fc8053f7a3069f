// Copyright 2026 The mcpkg Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
)

// NewUpgradeCmd new a Command for `mcpkg upgrade`.
func NewUpgradeCmd(mcpkgcli *client.McpkgClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "upgrade",
		Usage:     "Upgrade the installed packs, all of them if no pack is given",
		ArgsUsage: "[<packs>...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  FLAG_PATH,
				Usage: "the world or datapacks directory, the working directory by default",
			},
		},
		Action: func(c *cli.Context) error {
			return McpkgUpgrade(c, mcpkgcli)
		},
	}
}

func McpkgUpgrade(c *cli.Context, mcpkgcli *client.McpkgClient) error {
	return withPackageCacheLock(mcpkgcli, func() error {
		_, err := mcpkgcli.Upgrade(
			c.Context,
			client.WithPacks(c.Args().Slice()...),
			client.WithWorldPath(c.String(FLAG_PATH)),
		)
		return err
	})
}
