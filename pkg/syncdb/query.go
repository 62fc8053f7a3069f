package syncdb

import (
	"context"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/pack"
)

// Filter selects packs from the pack database.
type Filter struct {
	// A pack matches if any of the patterns matches its id, display name or one of its tags.
	// No patterns match all packs.
	Patterns []string
	// Only packs of this category if set.
	Category string
	// Only packs of this type if set.
	Type pack.PackType
}

// GetPackMetadata returns the pack whose id or remote name is 'identifier'.
// The error is only set if the pack database can not be loaded.
func (db *SyncDB) GetPackMetadata(ctx context.Context, identifier string) (*pack.Pack, bool, error) {
	packs, err := db.cache.EnsureLoaded(ctx)
	if err != nil {
		return nil, false, err
	}
	p, ok := packs.Lookup(identifier)
	return p, ok, nil
}

// Search returns the packs of the pack database selected by 'filter'.
func (db *SyncDB) Search(ctx context.Context, filter Filter) (*pack.PackSet, error) {
	packs, err := db.cache.EnsureLoaded(ctx)
	if err != nil {
		return nil, err
	}
	return Search(packs, filter), nil
}

// Search returns the packs of 'packs' selected by 'filter', sorted by id.
// Patterns are case insensitive regular expressions,
// a pattern which is not a valid regular expression is matched literally.
func Search(packs *pack.PackSet, filter Filter) *pack.PackSet {
	matchers := compilePatterns(filter.Patterns)

	result := pack.NewPackSet()
	for _, p := range packs.SortedPacks() {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) && !p.HasTag(filter.Category) {
			continue
		}
		if len(matchers) > 0 && !matchesAny(p, matchers) {
			continue
		}
		result.Insert(p)
	}
	return result
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	matchers := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			logrus.Debugf("'%s' is not a valid regular expression, matching it literally: %v", pattern, err)
			re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
		}
		matchers = append(matchers, re)
	}
	return matchers
}

func matchesAny(p *pack.Pack, matchers []*regexp.Regexp) bool {
	for _, re := range matchers {
		if re.MatchString(p.Id) || re.MatchString(p.DisplayName) {
			return true
		}
		for _, tag := range p.Tags {
			if re.MatchString(tag) {
				return true
			}
		}
	}
	return false
}
