package reconcile

import (
	"testing"

	"gotest.tools/v3/assert"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/world"
)

func catalogWith(versions map[string]string) *pack.PackSet {
	ps := pack.NewPackSet()
	for id, version := range versions {
		ps.Insert(&pack.Pack{Id: id, RemoteName: id, DisplayName: id, Type: pack.Datapack, Version: version})
	}
	return ps
}

func TestFindUpgrades(t *testing.T) {
	installed := map[string]world.InstalledPack{
		"VanillaTweaks.Foo": {Id: "VanillaTweaks.Foo", Version: "1.0.0"},
	}

	upgrades := FindUpgrades(installed, catalogWith(map[string]string{"VanillaTweaks.Foo": "1.2.0"}))
	assert.DeepEqual(t, upgrades, []Upgrade{{Id: "VanillaTweaks.Foo", Installed: "1.0.0", Available: "1.2.0"}})
	assert.Equal(t, upgrades[0].String(), "VanillaTweaks.Foo can be updated to 1.2.0")

	assert.Equal(t, len(FindUpgrades(installed, catalogWith(map[string]string{"VanillaTweaks.Foo": "1.0.0"}))), 0)
	assert.Equal(t, len(FindUpgrades(installed, catalogWith(map[string]string{"VanillaTweaks.Bar": "9.0.0"}))), 0)
}

func TestFindUpgradesOrderAndVersions(t *testing.T) {
	installed := map[string]world.InstalledPack{
		"VanillaTweaks.C": {Id: "VanillaTweaks.C", Version: "1.2.0"},
		"VanillaTweaks.A": {Id: "VanillaTweaks.A", Version: "garbage"},
		"VanillaTweaks.B": {Id: "VanillaTweaks.B", Version: "2.0.0"},
		"VanillaTweaks.D": {Id: "VanillaTweaks.D", Version: "1.0.0"},
	}
	catalog := catalogWith(map[string]string{
		"VanillaTweaks.A": "0.0.1",
		"VanillaTweaks.B": "1.10.0",
		"VanillaTweaks.C": "1.10.0",
		"VanillaTweaks.D": "garbage",
	})

	upgrades := FindUpgrades(installed, catalog)
	assert.DeepEqual(t, Ids(upgrades), []string{"VanillaTweaks.A", "VanillaTweaks.C"})
}
