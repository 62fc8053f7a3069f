package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"mcpkg.io/mcpkg/pkg/bundle"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/world"
)

// InstallOptions is the option for installing packs into a world.
type InstallOptions struct {
	packs []string
	path  string
}

type InstallOption func(*InstallOptions) error

// WithPacks sets the packs to be installed, by id or by remote name.
func WithPacks(packs ...string) InstallOption {
	return func(opts *InstallOptions) error {
		opts.packs = append(opts.packs, packs...)
		return nil
	}
}

// WithWorldPath sets the world the packs are installed into, the working directory by default.
func WithWorldPath(path string) InstallOption {
	return func(opts *InstallOptions) error {
		opts.path = path
		return nil
	}
}

func newInstallOptions(options ...InstallOption) (*InstallOptions, error) {
	opts := &InstallOptions{}
	for _, option := range options {
		if err := option(opts); err != nil {
			return nil, err
		}
	}
	path, err := worldPathOrWd(opts.path)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedInstall, err, "failed to get the working directory.")
	}
	opts.path = path
	return opts, nil
}

// Install downloads the packs from the vendor and installs them into the world.
// Packs are requested from the vendor once per pack type.
func (c *McpkgClient) Install(ctx context.Context, options ...InstallOption) ([]world.InstalledPack, error) {
	opts, err := newInstallOptions(options...)
	if err != nil {
		return nil, err
	}
	if len(opts.packs) == 0 {
		return nil, reporter.NewErrorEvent(reporter.InvalidCmd, errors.InvalidInstallOptions)
	}

	requested, err := c.resolvePacks(ctx, opts.packs)
	if err != nil {
		return nil, err
	}

	tmpDir, err := os.MkdirTemp("", "mcpkg")
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedDownload, err, "failed to create a temporary directory.")
	}
	defer os.RemoveAll(tmpDir)

	var installed []world.InstalledPack
	for _, packType := range pack.PackTypes {
		group := requested.Filter(func(p *pack.Pack) bool { return p.Type == packType })
		if group.Len() == 0 {
			continue
		}
		groupInstalled, err := c.installGroup(ctx, packType, group, filepath.Join(tmpDir, string(packType)), opts.path)
		if err != nil {
			return nil, err
		}
		installed = append(installed, groupInstalled...)
	}
	return installed, nil
}

// resolvePacks looks up every identifier in the local pack database.
func (c *McpkgClient) resolvePacks(ctx context.Context, identifiers []string) (*pack.PackSet, error) {
	resolved := pack.NewPackSet()
	for _, identifier := range funk.UniqString(identifiers) {
		p, ok, err := c.syncDB.GetPackMetadata(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, reporter.NewErrorEvent(
				reporter.PackNotFound,
				fmt.Errorf("%w: '%s'", errors.PackNotFound, identifier),
				fmt.Sprintf("can't find '%s', try 'mcpkg update' or 'mcpkg search'.", identifier),
			)
		}
		if !p.Type.IsValid() {
			return nil, reporter.NewErrorEvent(
				reporter.FailedInstall,
				fmt.Errorf("%w: '%s' has no pack type", errors.FailedInstall, p.Id),
				"the pack database is outdated, run 'mcpkg update' first.",
			)
		}
		resolved.Insert(p)
	}
	return resolved, nil
}

func (c *McpkgClient) installGroup(ctx context.Context, packType pack.PackType, group *pack.PackSet, workDir, dest string) ([]world.InstalledPack, error) {
	reporter.ReportEventTo(
		reporter.NewEvent(reporter.Downloading, fmt.Sprintf("getting %d %s(s) from the vendor...", group.Len(), packType)),
		c.logWriter,
	)
	link, err := c.vendor.RequestDownload(ctx, packType, group.Packs())
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(workDir, 0755); err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedDownload, err, fmt.Sprintf("failed to create '%s'.", workDir))
	}
	archive, filename, err := c.vendor.Download(ctx, link, workDir)
	if err != nil {
		return nil, err
	}
	bundles, err := bundle.Split(archive, filepath.Join(workDir, "packs"), filename)
	if err != nil {
		return nil, err
	}

	var installed []world.InstalledPack
	for _, b := range bundles {
		p, err := c.installBundle(ctx, b, group, dest)
		if err != nil {
			return nil, err
		}
		installed = append(installed, *p)
	}
	return installed, nil
}

// installBundle installs a single pack archive. The pack is identified by the requested pack
// with the same remote name, otherwise by the id derived from the name of the archive.
func (c *McpkgClient) installBundle(ctx context.Context, b bundle.PackBundle, requested *pack.PackSet, dest string) (*world.InstalledPack, error) {
	var meta *pack.Pack
	for _, p := range requested.Packs() {
		if strings.EqualFold(p.RemoteName, b.Name) {
			meta = p
			break
		}
	}
	id := pack.FormaliseName(b.Name)
	if meta != nil {
		id = meta.Id
	} else {
		p, ok, err := c.syncDB.GetPackMetadata(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			meta = p
		}
	}

	var opts []world.InstallOption
	if meta != nil {
		opts = append(opts, world.WithDisplayName(meta.DisplayName), world.WithDescription(meta.Description))
	} else {
		logrus.Debugf("'%s' is not in the pack database, installing it without metadata", id)
	}

	reporter.ReportEventTo(reporter.NewEvent(reporter.Installing, fmt.Sprintf("installing '%s' v%s", id, b.Version)), c.logWriter)
	installed, err := world.InstallPack(b.Path, dest, id, b.Version, opts...)
	if err != nil {
		return nil, err
	}
	reporter.ReportEventTo(reporter.NewEvent(reporter.Installed, fmt.Sprintf("installed '%s' v%s", id, b.Version)), c.logWriter)
	return installed, nil
}
