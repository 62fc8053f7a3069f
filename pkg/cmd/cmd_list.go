// Copyright 2026 The mcpkg Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/world"
)

// NewListCmd new a Command for `mcpkg list`.
func NewListCmd(mcpkgcli *client.McpkgClient) *cli.Command {
	return &cli.Command{
		Hidden: false,
		Name:   "list",
		Usage:  "List the known packs, or the packs installed into a world",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    FLAG_COMPACT,
				Aliases: []string{"c"},
				Usage:   "print the packs without descriptions",
			},
			&cli.BoolFlag{
				Name:    FLAG_INSTALLED,
				Aliases: []string{"i"},
				Usage:   "list the installed packs",
			},
			&cli.StringFlag{
				Name:  FLAG_PATH,
				Usage: "the world or datapacks directory, implies --installed",
			},
		},
		Action: func(c *cli.Context) error {
			return McpkgList(c, mcpkgcli)
		},
	}
}

func McpkgList(c *cli.Context, mcpkgcli *client.McpkgClient) error {
	compact := compactLayout(c)
	printer := NewPrinter(c.App.Writer, compact, !compact)
	path := c.String(FLAG_PATH)

	return withPackageCacheLock(mcpkgcli, func() error {
		if !c.Bool(FLAG_INSTALLED) && path == "" {
			packs, err := mcpkgcli.ListCatalog(c.Context)
			if err != nil {
				return err
			}
			printer.PrintPacks(packs)
			return nil
		}

		installed, err := mcpkgcli.ListInstalled(path)
		if err != nil {
			return err
		}
		for _, id := range world.SortedIds(installed) {
			printer.PrintInstalled(installed[id])
		}

		upgrades, err := mcpkgcli.Upgrades(c.Context, path)
		if err != nil {
			return err
		}
		for _, upgrade := range upgrades {
			reporter.ReportEventTo(reporter.NewEvent(reporter.CanBeUpdated, upgrade.String()), c.App.ErrWriter)
		}
		return nil
	})
}
