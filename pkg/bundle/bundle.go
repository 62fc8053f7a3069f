// Package bundle splits the archives downloaded from the vendor into single pack archives.
//
// The vendor answers a download request for several packs with one archive that holds
// an archive per pack, e.g.
//
//	VanillaTweaks_d123456_UNZIP_ME.zip
//	├── back to blocks v1.0.3 (MC 1.16).zip
//	└── multiplayer sleep v2.1.0 (MC 1.16).zip
//
// An archive without inner archives is a single pack itself.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/otiai10/copy"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/reporter"
)

var packFilenameRegex = regexp.MustCompile(constants.PackFilenamePattern)

// PackBundle is the archive of a single pack.
type PackBundle struct {
	// Path is the absolute path to the pack archive.
	Path string
	// Name is the pack name parsed from the archive file name.
	Name string
	// Version is the pack version parsed from the archive file name.
	Version string
}

// ParsePackFilename parses the name and the version of a pack from its archive file name,
// 'back to blocks v1.0.3 (MC 1.16).zip' gives 'back to blocks' and '1.0.3'.
func ParsePackFilename(filename string) (string, string, error) {
	stem := strings.TrimSuffix(filepath.Base(filename), constants.ZipPathSuffix)
	match := packFilenameRegex.FindStringSubmatch(stem)
	if match == nil {
		return "", "", fmt.Errorf("%w: '%s'", errors.UnparsablePackFilename, filename)
	}
	return match[packFilenameRegex.SubexpIndex("name")], match[packFilenameRegex.SubexpIndex("version")], nil
}

// Split extracts the pack archives contained in the archive at 'archivePath' into 'destDir'.
// If the archive contains no pack archives, it is copied into 'destDir' as the single pack named 'filename'.
// Every pack archive name must be parsable by ParsePackFilename.
func Split(archivePath, destDir, filename string) ([]PackBundle, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedSplitBundle, err, fmt.Sprintf("failed to open the downloaded archive '%s'.", filename))
	}
	defer zr.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedSplitBundle, err, fmt.Sprintf("failed to create '%s'.", destDir))
	}

	var bundles []PackBundle
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(f.Name), constants.ZipPathSuffix) {
			continue
		}
		bundle, err := newPackBundle(destDir, f.Name)
		if err != nil {
			return nil, err
		}
		if err := extractFile(f, bundle.Path); err != nil {
			return nil, reporter.NewErrorEvent(reporter.FailedSplitBundle, err, fmt.Sprintf("failed to extract '%s'.", f.Name))
		}
		bundles = append(bundles, *bundle)
	}
	if len(bundles) > 0 {
		return bundles, nil
	}

	bundle, err := newPackBundle(destDir, filename)
	if err != nil {
		return nil, err
	}
	if err := copy.Copy(archivePath, bundle.Path); err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedSplitBundle, err, fmt.Sprintf("failed to copy '%s'.", filename))
	}
	return []PackBundle{*bundle}, nil
}

func newPackBundle(destDir, filename string) (*PackBundle, error) {
	name, version, err := ParsePackFilename(filename)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.UnparsablePackFilename, err, "the vendor sent a pack which can not be installed.")
	}
	return &PackBundle{
		Path:    filepath.Join(destDir, filepath.Base(filename)),
		Name:    name,
		Version: version,
	}, nil
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
