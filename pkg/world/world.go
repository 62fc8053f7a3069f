// Package world installs pack archives into a world and keeps track of the installed packs.
//
// The installed packs of a world live in its 'datapacks' directory:
//
//	<world>/datapacks
//	├── VanillaTweaks.BackToBlocks.zip
//	└── mcpkg.json
//
// 'mcpkg.json' maps the id of every installed pack to its metadata.
package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/otiai10/copy"
	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/reporter"
	"mcpkg.io/mcpkg/pkg/utils"
)

// InstalledPack is a pack installed into a world.
type InstalledPack struct {
	Id          string `json:"id"`
	Version     string `json:"version"`
	DisplayName string `json:"display,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResolveDatapacksDir returns the directory the packs of the world at 'path' are installed into.
// 'path' may be the datapacks directory itself, a world directory or any other directory.
func ResolveDatapacksDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if filepath.Base(abs) == constants.DatapacksDir {
		return abs, nil
	}
	datapacks := filepath.Join(abs, constants.DatapacksDir)
	if utils.DirExists(datapacks) || utils.FileExists(filepath.Join(abs, constants.LevelDatFile)) {
		return datapacks, nil
	}
	return abs, nil
}

type InstallOption func(*InstalledPack)

// WithDisplayName records the display name of the installed pack.
func WithDisplayName(displayName string) InstallOption {
	return func(p *InstalledPack) {
		p.DisplayName = displayName
	}
}

// WithDescription records the description of the installed pack.
func WithDescription(description string) InstallOption {
	return func(p *InstalledPack) {
		p.Description = description
	}
}

// InstallPack installs the pack archive 'bundlePath' as 'id' into the world at 'dest'.
// A pack already installed as 'id' is replaced.
func InstallPack(bundlePath, dest, id, version string, opts ...InstallOption) (*InstalledPack, error) {
	installed := &InstalledPack{Id: id, Version: version}
	for _, opt := range opts {
		opt(installed)
	}

	dir, err := ResolveDatapacksDir(dest)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedInstall, fmt.Errorf("%w: %v", errors.FailedInstall, err), fmt.Sprintf("failed to install '%s'.", id))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedInstall, fmt.Errorf("%w: %v", errors.FailedInstall, err), fmt.Sprintf("failed to create '%s'.", dir))
	}

	packPath := filepath.Join(dir, id+constants.ZipPathSuffix)
	if err := copy.Copy(bundlePath, packPath); err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedInstall, fmt.Errorf("%w: %v", errors.FailedInstall, err), fmt.Sprintf("failed to install '%s' into '%s'.", id, dir))
	}
	logrus.Debugf("copied '%s' to '%s'", bundlePath, packPath)

	index, err := loadIndex(dir)
	if err != nil {
		return nil, err
	}
	index[id] = *installed
	if err := storeIndex(dir, index); err != nil {
		return nil, err
	}
	return installed, nil
}

// GetInstalledPacks returns the packs installed into the world at 'path' keyed by id.
// A world without installed packs returns an empty map.
func GetInstalledPacks(path string) (map[string]InstalledPack, error) {
	dir, err := ResolveDatapacksDir(path)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedLoadInstalled, err, fmt.Sprintf("failed to resolve '%s'.", path))
	}
	return loadIndex(dir)
}

// SortedIds returns the ids of 'installed' sorted.
func SortedIds(installed map[string]InstalledPack) []string {
	ids := make([]string, 0, len(installed))
	for id := range installed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func loadIndex(dir string) (map[string]InstalledPack, error) {
	index := map[string]InstalledPack{}
	indexPath := filepath.Join(dir, constants.InstalledIndex)

	data, err := os.ReadFile(indexPath)
	if os.IsNotExist(err) {
		return index, nil
	}
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedLoadInstalled, err, fmt.Sprintf("failed to read '%s'.", indexPath))
	}
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedLoadInstalled, err, fmt.Sprintf("failed to load '%s'.", indexPath))
	}
	for id, installed := range index {
		if installed.Id == "" {
			installed.Id = id
			index[id] = installed
		}
	}
	return index, nil
}

func storeIndex(dir string, index map[string]InstalledPack) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return reporter.NewErrorEvent(reporter.Bug, err, "failed to encode the installed packs.")
	}
	indexPath := filepath.Join(dir, constants.InstalledIndex)
	if err := utils.AtomicWriteFile(indexPath, append(data, '\n'), 0644); err != nil {
		return reporter.NewErrorEvent(reporter.FailedInstall, fmt.Errorf("%w: %v", errors.FailedInstall, err), fmt.Sprintf("failed to write '%s'.", indexPath))
	}
	return nil
}
