// Package pack provides the in-memory and on-disk representation of known packs.
package pack

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/thoas/go-funk"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/errors"
)

// PackType partitions the packs into the groups requested from the vendor separately.
type PackType string

const (
	Datapack      PackType = "datapack"
	CraftingTweak PackType = "craftingtweak"
	ResourcePack  PackType = "resourcepack"
)

// PackTypes lists all pack types in the order they are fetched on a catalog refresh.
var PackTypes = []PackType{Datapack, CraftingTweak, ResourcePack}

func (t PackType) String() string {
	return string(t)
}

// IsValid reports whether 't' is one of the known pack types.
func (t PackType) IsValid() bool {
	for _, known := range PackTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParsePackType parses a pack type name. The short names 'data', 'crafting' and 'resource' are accepted.
func ParsePackType(s string) (PackType, error) {
	switch strings.ToLower(s) {
	case "data", string(Datapack):
		return Datapack, nil
	case "crafting", string(CraftingTweak):
		return CraftingTweak, nil
	case "resource", string(ResourcePack):
		return ResourcePack, nil
	}
	return "", fmt.Errorf("unknown pack type '%s', expected one of 'data', 'crafting', 'resource'", s)
}

// Pack is a single installable unit.
type Pack struct {
	// The formal id derived from the display name, e.g. 'VanillaTweaks.BackToBlocks'.
	Id string
	// The raw name used by the vendor, required to request a download.
	RemoteName  string
	DisplayName string
	Type        PackType
	Category    string
	Version     string
	Description string
	Tags        []string
}

// FormaliseName derives the formal id of a pack from its display name.
// 'back to blocks' becomes 'VanillaTweaks.BackToBlocks'.
func FormaliseName(displayName string) string {
	title := cases.Title(language.English).String(displayName)
	return constants.VendorNamespace + "." + strings.Join(strings.Fields(title), "")
}

// NewPack creates a pack and derives its id from 'displayName'.
// The remote name, the display name and a valid pack type are required.
// An empty version is replaced by the lowest version '0.0.0'.
func NewPack(remoteName, displayName string, packType PackType, category, version, description string, tags []string) (*Pack, error) {
	if remoteName == "" {
		return nil, fmt.Errorf("%w: pack '%s' has no name", errors.MalformedCatalog, displayName)
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, fmt.Errorf("%w: pack '%s' has no display name", errors.MalformedCatalog, remoteName)
	}
	if !packType.IsValid() {
		return nil, fmt.Errorf("%w: pack '%s' has an invalid type '%s'", errors.MalformedCatalog, remoteName, packType)
	}
	if version == "" {
		version = constants.DefaultPackVersion
	}

	return &Pack{
		Id:          FormaliseName(displayName),
		RemoteName:  remoteName,
		DisplayName: displayName,
		Type:        packType,
		Category:    category,
		Version:     version,
		Description: description,
		Tags:        funk.UniqString(append([]string{}, tags...)),
	}, nil
}

// Clone returns a deep copy of the pack.
func (p *Pack) Clone() *Pack {
	clone := &Pack{}
	if err := copier.CopyWithOption(clone, p, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails for mismatched kinds, a Pack always copies into a Pack.
		panic(err)
	}
	if clone.Tags == nil {
		clone.Tags = []string{}
	}
	return clone
}

// Merge merges 'incoming' into 'p'.
// The tags are united and the version, the description and the display name are taken from 'incoming'.
// The remote name, the type and the category of 'p' are kept, unless they are empty.
func (p *Pack) Merge(incoming *Pack) {
	if p.RemoteName == "" {
		p.RemoteName = incoming.RemoteName
	}
	if p.Type == "" {
		p.Type = incoming.Type
	}
	if p.Category == "" {
		p.Category = incoming.Category
	}
	p.Tags = funk.UniqString(append(append([]string{}, p.Tags...), incoming.Tags...))
	p.Version = incoming.Version
	p.Description = incoming.Description
	p.DisplayName = incoming.DisplayName
}

// HasTag reports whether the pack is tagged with 'tag'.
func (p *Pack) HasTag(tag string) bool {
	return funk.ContainsString(p.Tags, tag)
}
