package pack

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"mcpkg.io/mcpkg/pkg/errors"
)

// PackSet is a collection of packs keyed by their formal id.
type PackSet struct {
	packs *orderedmap.OrderedMap[string, *Pack]
}

// NewPackSet creates a pack set containing 'packs'.
func NewPackSet(packs ...*Pack) *PackSet {
	ps := &PackSet{
		packs: orderedmap.NewOrderedMap[string, *Pack](),
	}
	for _, p := range packs {
		ps.Insert(p)
	}
	return ps
}

// Insert inserts 'p' or overwrites the pack with the same id.
func (ps *PackSet) Insert(p *Pack) {
	ps.packs.Set(p.Id, p)
}

// Get returns the pack whose id is 'id'.
func (ps *PackSet) Get(id string) (*Pack, bool) {
	return ps.packs.Get(id)
}

// Len returns the number of packs.
func (ps *PackSet) Len() int {
	return ps.packs.Len()
}

// Ids returns the ids of all packs in insertion order.
func (ps *PackSet) Ids() []string {
	return ps.packs.Keys()
}

// Packs returns all packs in insertion order.
func (ps *PackSet) Packs() []*Pack {
	packs := make([]*Pack, 0, ps.packs.Len())
	for el := ps.packs.Front(); el != nil; el = el.Next() {
		packs = append(packs, el.Value)
	}
	return packs
}

// SortedPacks returns all packs sorted by id.
func (ps *PackSet) SortedPacks() []*Pack {
	packs := ps.Packs()
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].Id < packs[j].Id
	})
	return packs
}

// Lookup returns the pack whose id is 'idOrRemoteName',
// otherwise the first pack whose remote name is 'idOrRemoteName'.
func (ps *PackSet) Lookup(idOrRemoteName string) (*Pack, bool) {
	if p, ok := ps.Get(idOrRemoteName); ok {
		return p, true
	}
	for el := ps.packs.Front(); el != nil; el = el.Next() {
		if el.Value.RemoteName == idOrRemoteName {
			return el.Value, true
		}
	}
	return nil, false
}

// Union merges 'other' into 'ps' and returns 'ps'.
// Packs only in 'other' are inserted. Packs in both are merged by Pack.Merge,
// so the values in 'other' win. The packs of 'other' are copied, never shared.
func (ps *PackSet) Union(other *PackSet) *PackSet {
	for el := other.packs.Front(); el != nil; el = el.Next() {
		incoming := el.Value
		if existing, ok := ps.Get(el.Key); ok {
			existing.Merge(incoming)
		} else {
			ps.Insert(incoming.Clone())
		}
	}
	return ps
}

// Filter returns a new pack set with the packs that satisfy 'keep', in insertion order.
func (ps *PackSet) Filter(keep func(*Pack) bool) *PackSet {
	filtered := NewPackSet()
	for el := ps.packs.Front(); el != nil; el = el.Next() {
		if keep(el.Value) {
			filtered.Insert(el.Value)
		}
	}
	return filtered
}

// packRecord is a pack in the local pack database.
type packRecord struct {
	Id          string   `json:"id"`
	RemoteName  string   `json:"remoteName"`
	DisplayName string   `json:"display"`
	Type        PackType `json:"type"`
	Category    string   `json:"category"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	// Written by older versions of the pack database.
	LegacyRemoteName string `json:"remote_name,omitempty"`
}

// Encode writes the pack set as a json object keyed by id.
// The keys are sorted, so the output is the same for the same packs.
func (ps *PackSet) Encode(w io.Writer) error {
	records := make(map[string]packRecord, ps.Len())
	for el := ps.packs.Front(); el != nil; el = el.Next() {
		p := el.Value
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		records[p.Id] = packRecord{
			Id:          p.Id,
			RemoteName:  p.RemoteName,
			DisplayName: p.DisplayName,
			Type:        p.Type,
			Category:    p.Category,
			Version:     p.Version,
			Description: p.Description,
			Tags:        tags,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// Decode reads a pack set written by Encode.
// Duplicate keys in the source overwrite each other, the last one wins.
// Records written by older versions carry neither an id nor a type: the key is the id
// and the type stays empty until the next import fills it.
func Decode(r io.Reader) (*PackSet, error) {
	var records map[string]packRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.MalformedCatalog, err)
	}

	keys := make([]string, 0, len(records))
	for key := range records {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ps := NewPackSet()
	for _, key := range keys {
		record := records[key]
		if record.Id == "" {
			record.Id = key
		}
		if record.Id != key {
			return nil, fmt.Errorf("%w: pack '%s' is stored under '%s'", errors.MalformedCatalog, record.Id, key)
		}
		if record.DisplayName == "" {
			return nil, fmt.Errorf("%w: pack '%s' has no display name", errors.MalformedCatalog, record.Id)
		}
		if record.Type != "" && !record.Type.IsValid() {
			return nil, fmt.Errorf("%w: pack '%s' has an invalid type '%s'", errors.MalformedCatalog, record.Id, record.Type)
		}
		remoteName := record.RemoteName
		if remoteName == "" {
			remoteName = record.LegacyRemoteName
		}
		tags := record.Tags
		if tags == nil {
			tags = []string{}
		}
		ps.Insert(&Pack{
			Id:          record.Id,
			RemoteName:  remoteName,
			DisplayName: record.DisplayName,
			Type:        record.Type,
			Category:    record.Category,
			Version:     record.Version,
			Description: record.Description,
			Tags:        tags,
		})
	}
	return ps, nil
}
