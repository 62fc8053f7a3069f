// Copyright 2026 The mcpkg Authors. All rights reserved.

package cmd

import (
	"os"

	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/utils"
	"mcpkg.io/mcpkg/pkg/version"
)

// NewMcpkgApp new the mcpkg cli with all the commands.
func NewMcpkgApp(mcpkgcli *client.McpkgClient) *cli.App {
	app := cli.NewApp()
	app.Name = "mcpkg"
	app.Usage = "mcpkg is a package manager for Minecraft datapacks"
	app.Version = version.GetVersionInStr()
	app.UsageText = "mcpkg <command> [arguments]..."
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    FLAG_VERBOSE,
			Aliases: []string{"v"},
			Usage:   "print debug messages",
		},
	}
	app.Before = func(c *cli.Context) error {
		reporter.InitReporter(c.Bool(FLAG_VERBOSE))
		return nil
	}
	app.Commands = []*cli.Command{
		NewUpdateCmd(mcpkgcli),
		NewInstallCmd(mcpkgcli),
		NewUpgradeCmd(mcpkgcli),
		NewListCmd(mcpkgcli),
		NewSearchCmd(mcpkgcli),
	}
	return app
}

// withPackageCacheLock runs 'fn' holding the lock of the local pack database.
func withPackageCacheLock(mcpkgcli *client.McpkgClient, fn func() error) (err error) {
	// acquire the lock of the package cache.
	err = mcpkgcli.AcquirePackageCacheLock()
	if err != nil {
		return err
	}

	defer func() {
		// release the lock of the package cache after the function returns.
		releaseErr := mcpkgcli.ReleasePackageCacheLock()
		if releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	return fn()
}

// compactLayout reports whether the packs are printed without descriptions.
// Output which is not a terminal is always compact.
func compactLayout(c *cli.Context) bool {
	if c.Bool(FLAG_COMPACT) {
		return true
	}
	if f, ok := c.App.Writer.(*os.File); ok && utils.IsTTY(f) {
		return false
	}
	reporter.ReportEventTo(reporter.NewEvent(reporter.PipeDetected, "Pipe detected. Using compact layout"), c.App.ErrWriter)
	return true
}
