package syncdb

import (
	"encoding/json"
	"fmt"
	"io"

	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
)

// vendorCatalog is a category listing published by the vendor:
//
//	{"categories": [{"category": "...", "packs": [{"name": "...", "display": "...", "version": "...", "description": "..."}]}]}
type vendorCatalog struct {
	Categories *[]vendorCategory `json:"categories"`
}

type vendorCategory struct {
	Category string       `json:"category"`
	Packs    []vendorPack `json:"packs"`
}

type vendorPack struct {
	Name        string `json:"name"`
	Display     string `json:"display"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description"`
}

// ConvertCatalog converts a vendor category listing into a pack set.
// Every pack is tagged with its category and its version defaults to '0.0.0'.
func ConvertCatalog(src io.Reader, packType pack.PackType) (*pack.PackSet, error) {
	var catalog vendorCatalog
	if err := json.NewDecoder(src).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.MalformedCatalog, err)
	}
	if catalog.Categories == nil {
		return nil, fmt.Errorf("%w: missing 'categories'", errors.MalformedCatalog)
	}

	packSet := pack.NewPackSet()
	for i, category := range *catalog.Categories {
		if category.Category == "" {
			return nil, fmt.Errorf("%w: category %d has no name", errors.MalformedCatalog, i)
		}
		for _, src := range category.Packs {
			p, err := pack.NewPack(
				src.Name,
				src.Display,
				packType,
				category.Category,
				src.Version,
				src.Description,
				[]string{category.Category},
			)
			if err != nil {
				return nil, err
			}
			packSet.Insert(p)
		}
	}
	return packSet, nil
}
