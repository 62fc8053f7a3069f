package client

import (
	"context"
	"fmt"

	"github.com/thoas/go-funk"
	"mcpkg.io/mcpkg/pkg/reconcile"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/world"
)

// Upgrade installs the newer versions of the packs installed into the world.
// Without packs, every pack which can be upgraded is upgraded.
func (c *McpkgClient) Upgrade(ctx context.Context, options ...InstallOption) ([]world.InstalledPack, error) {
	opts, err := newInstallOptions(options...)
	if err != nil {
		return nil, err
	}

	upgrades, err := c.Upgrades(ctx, opts.path)
	if err != nil {
		return nil, err
	}
	upgradable := reconcile.Ids(upgrades)

	selected := upgradable
	if len(opts.packs) > 0 {
		installed, err := c.ListInstalled(opts.path)
		if err != nil {
			return nil, err
		}

		selected = []string{}
		for _, identifier := range funk.UniqString(opts.packs) {
			id := identifier
			p, known, err := c.syncDB.GetPackMetadata(ctx, identifier)
			if err != nil {
				return nil, err
			}
			if known {
				id = p.Id
			}
			_, isInstalled := installed[id]

			switch {
			case funk.ContainsString(upgradable, id):
				selected = append(selected, id)
			case !isInstalled:
				reporter.ReportEventTo(reporter.NewEvent(reporter.NotInstalled, fmt.Sprintf("'%s' is not installed", id)), c.logWriter)
			case !known:
				reporter.ReportEventTo(reporter.NewEvent(reporter.NotInstalled, fmt.Sprintf("'%s' is not in the pack database", id)), c.logWriter)
			default:
				reporter.ReportEventTo(reporter.NewEvent(reporter.UpToDate, fmt.Sprintf("'%s' is up to date", id)), c.logWriter)
			}
		}
	}

	if len(selected) == 0 {
		reporter.ReportEventTo(reporter.NewEvent(reporter.UpToDate, "nothing to upgrade"), c.logWriter)
		return nil, nil
	}
	return c.Install(ctx, WithPacks(selected...), WithWorldPath(opts.path))
}
