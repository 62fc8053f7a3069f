package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"mcpkg.io/mcpkg/pkg/constants"
)

func writeBundle(t *testing.T, dir string) string {
	path := filepath.Join(dir, "back to blocks v1.0.3 (MC 1.16).zip")
	assert.Nil(t, os.WriteFile(path, []byte("PK\x05\x06"), 0644))
	return path
}

func TestResolveDatapacksDir(t *testing.T) {
	tmp := t.TempDir()

	world := filepath.Join(tmp, "world")
	assert.Nil(t, os.MkdirAll(world, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(world, constants.LevelDatFile), []byte{}, 0644))

	withDatapacks := filepath.Join(tmp, "server")
	assert.Nil(t, os.MkdirAll(filepath.Join(withDatapacks, constants.DatapacksDir), 0755))

	plain := filepath.Join(tmp, "plain")
	assert.Nil(t, os.MkdirAll(plain, 0755))

	cases := []struct {
		path     string
		expected string
	}{
		{world, filepath.Join(world, constants.DatapacksDir)},
		{withDatapacks, filepath.Join(withDatapacks, constants.DatapacksDir)},
		{filepath.Join(withDatapacks, constants.DatapacksDir), filepath.Join(withDatapacks, constants.DatapacksDir)},
		{plain, plain},
	}
	for _, c := range cases {
		got, err := ResolveDatapacksDir(c.path)
		assert.Nil(t, err)
		assert.Equal(t, c.expected, got, c.path)
	}
}

func TestInstallPack(t *testing.T) {
	tmp := t.TempDir()
	bundle := writeBundle(t, tmp)

	world := filepath.Join(tmp, "world")
	assert.Nil(t, os.MkdirAll(world, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(world, constants.LevelDatFile), []byte{}, 0644))

	installed, err := InstallPack(bundle, world, "VanillaTweaks.BackToBlocks", "1.0.3",
		WithDisplayName("Back to Blocks"), WithDescription("Craft items back to blocks."))
	assert.Nil(t, err)
	assert.Equal(t, "Back to Blocks", installed.DisplayName)
	assert.FileExists(t, filepath.Join(world, constants.DatapacksDir, "VanillaTweaks.BackToBlocks.zip"))

	packs, err := GetInstalledPacks(world)
	assert.Nil(t, err)
	assert.Equal(t, map[string]InstalledPack{
		"VanillaTweaks.BackToBlocks": {
			Id:          "VanillaTweaks.BackToBlocks",
			Version:     "1.0.3",
			DisplayName: "Back to Blocks",
			Description: "Craft items back to blocks.",
		},
	}, packs)
}

func TestInstallPackWithoutMetadataReplaces(t *testing.T) {
	tmp := t.TempDir()
	bundle := writeBundle(t, tmp)
	dest := filepath.Join(tmp, constants.DatapacksDir)

	_, err := InstallPack(bundle, dest, "VanillaTweaks.BackToBlocks", "1.0.0", WithDisplayName("Back to Blocks"))
	assert.Nil(t, err)
	_, err = InstallPack(bundle, dest, "VanillaTweaks.MultiplayerSleep", "2.1.0")
	assert.Nil(t, err)
	_, err = InstallPack(bundle, dest, "VanillaTweaks.BackToBlocks", "1.0.3")
	assert.Nil(t, err)

	packs, err := GetInstalledPacks(dest)
	assert.Nil(t, err)
	assert.Equal(t, []string{"VanillaTweaks.BackToBlocks", "VanillaTweaks.MultiplayerSleep"}, SortedIds(packs))
	assert.Equal(t, InstalledPack{Id: "VanillaTweaks.BackToBlocks", Version: "1.0.3"}, packs["VanillaTweaks.BackToBlocks"])
}

func TestGetInstalledPacksEmpty(t *testing.T) {
	packs, err := GetInstalledPacks(t.TempDir())
	assert.Nil(t, err)
	assert.Equal(t, 0, len(packs))
}

func TestGetInstalledPacksCorrupted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), constants.DatapacksDir)
	assert.Nil(t, os.MkdirAll(dir, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(dir, constants.InstalledIndex), []byte("{"), 0644))

	_, err := GetInstalledPacks(dir)
	assert.NotNil(t, err)
}

func TestGetInstalledPacksFillsMissingId(t *testing.T) {
	dir := filepath.Join(t.TempDir(), constants.DatapacksDir)
	assert.Nil(t, os.MkdirAll(dir, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(dir, constants.InstalledIndex), []byte(`{"VanillaTweaks.Foo": {"version": "1.0.0"}}`), 0644))

	packs, err := GetInstalledPacks(dir)
	assert.Nil(t, err)
	assert.Equal(t, InstalledPack{Id: "VanillaTweaks.Foo", Version: "1.0.0"}, packs["VanillaTweaks.Foo"])
}
