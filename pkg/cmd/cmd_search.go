// Copyright 2026 The mcpkg Authors. All rights reserved.

package cmd

import (
	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/syncdb"
)

// NewSearchCmd new a Command for `mcpkg search`.
func NewSearchCmd(mcpkgcli *client.McpkgClient) *cli.Command {
	return &cli.Command{
		Hidden:    false,
		Name:      "search",
		Usage:     "Search the known packs by id, display name or tag",
		ArgsUsage: "<pattern>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    FLAG_COMPACT,
				Aliases: []string{"c"},
				Usage:   "print the packs without descriptions",
			},
			&cli.StringFlag{
				Name:  FLAG_CATEGORY,
				Usage: "only the packs of the category",
			},
			&cli.StringFlag{
				Name:  FLAG_TYPE,
				Usage: "only the packs of the type, one of 'data', 'crafting', 'resource'",
			},
		},
		Action: func(c *cli.Context) error {
			return McpkgSearch(c, mcpkgcli)
		},
	}
}

func McpkgSearch(c *cli.Context, mcpkgcli *client.McpkgClient) error {
	filter := syncdb.Filter{
		Patterns: c.Args().Slice(),
		Category: c.String(FLAG_CATEGORY),
	}
	if typeName := c.String(FLAG_TYPE); typeName != "" {
		packType, err := pack.ParsePackType(typeName)
		if err != nil {
			return reporter.NewErrorEvent(reporter.InvalidCmd, errors.InvalidSearchOptions, err.Error())
		}
		filter.Type = packType
	}

	compact := compactLayout(c)
	printer := NewPrinter(c.App.Writer, compact, !compact)

	return withPackageCacheLock(mcpkgcli, func() error {
		packs, err := mcpkgcli.Search(c.Context, filter)
		if err != nil {
			return err
		}
		printer.PrintPacks(packs)
		return nil
	})
}
