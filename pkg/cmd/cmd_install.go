// Copyright 2026 The mcpkg Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/reporter"
)

// NewInstallCmd new a Command for `mcpkg install`.
func NewInstallCmd(mcpkgcli *client.McpkgClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "install",
		Usage:     "Install packs into a world",
		ArgsUsage: "<packs>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  FLAG_PATH,
				Usage: "the world or datapacks directory, the working directory by default",
			},
		},
		Action: func(c *cli.Context) error {
			return McpkgInstall(c, mcpkgcli)
		},
	}
}

func McpkgInstall(c *cli.Context, mcpkgcli *client.McpkgClient) error {
	if c.NArg() == 0 {
		return reporter.NewErrorEvent(reporter.InvalidCmd, errors.InvalidInstallOptions)
	}
	return withPackageCacheLock(mcpkgcli, func() error {
		_, err := mcpkgcli.Install(
			c.Context,
			client.WithPacks(c.Args().Slice()...),
			client.WithWorldPath(c.String(FLAG_PATH)),
		)
		return err
	})
}
