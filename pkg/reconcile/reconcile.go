// Package reconcile compares the installed packs against the pack database.
package reconcile

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/semver"
	"mcpkg.io/mcpkg/pkg/world"
)

// Upgrade is an installed pack with a greater version in the pack database.
type Upgrade struct {
	Id        string
	Installed string
	Available string
}

func (u Upgrade) String() string {
	return fmt.Sprintf("%s can be updated to %s", u.Id, u.Available)
}

// FindUpgrades returns the installed packs that can be upgraded, sorted by id.
// Installed packs unknown to the pack database are skipped.
func FindUpgrades(installed map[string]world.InstalledPack, catalog *pack.PackSet) []Upgrade {
	upgrades := []Upgrade{}
	for _, id := range world.SortedIds(installed) {
		current := installed[id]
		available, ok := catalog.Get(id)
		if !ok {
			logrus.Debugf("'%s' is not in the pack database, skipped", id)
			continue
		}
		if semver.GreaterThan(available.Version, current.Version) {
			upgrades = append(upgrades, Upgrade{
				Id:        id,
				Installed: current.Version,
				Available: available.Version,
			})
		}
	}
	return upgrades
}

// Ids returns the ids of 'upgrades'.
func Ids(upgrades []Upgrade) []string {
	ids := make([]string, 0, len(upgrades))
	for _, u := range upgrades {
		ids = append(ids, u.Id)
	}
	return ids
}
