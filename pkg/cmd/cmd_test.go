package cmd

import (
	"bytes"
	goerrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
	"mcpkg.io/mcpkg/pkg/client"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/settings"
	"mcpkg.io/mcpkg/pkg/test"
	"mcpkg.io/mcpkg/pkg/world"
)

func newTestApp(t *testing.T) (*cli.App, *bytes.Buffer) {
	s, err := settings.LoadSettings(t.TempDir())
	assert.Nil(t, err)
	// The pack database is stored below, the vendor is never contacted.
	s.Conf.BaseUrl = "http://127.0.0.1:1"

	mcpkgcli := client.NewMcpkgClientWithSettings(s)
	mcpkgcli.SetLogWriter(io.Discard)
	packs := pack.NewPackSet(
		&pack.Pack{Id: "VanillaTweaks.BackToBlocks", RemoteName: "back to blocks", DisplayName: "Back to Blocks", Type: pack.Datapack, Category: "Survival", Version: "1.0.3", Tags: []string{"Survival"}},
		&pack.Pack{Id: "VanillaTweaks.MultiplayerSleep", RemoteName: "multiplayer sleep", DisplayName: "Multiplayer Sleep", Type: pack.Datapack, Category: "Survival", Version: "2.1.0", Tags: []string{"Survival"}},
		&pack.Pack{Id: "VanillaTweaks.UnpackableIce", RemoteName: "unpackable ice", DisplayName: "Unpackable Ice", Type: pack.CraftingTweak, Category: "Quality of Life", Version: "1.0.0", Tags: []string{"Quality of Life"}},
	)
	assert.Nil(t, mcpkgcli.GetSyncDB().Store().Save(packs))

	var out bytes.Buffer
	app := NewMcpkgApp(mcpkgcli)
	app.Writer = &out
	app.ErrWriter = io.Discard
	return app, &out
}

func TestList(t *testing.T) {
	app, out := newTestApp(t)
	assert.Nil(t, app.Run([]string{"mcpkg", "list"}))
	assert.Equal(t, "Back to Blocks (VanillaTweaks.BackToBlocks) v.1.0.3\n"+
		"Multiplayer Sleep (VanillaTweaks.MultiplayerSleep) v.2.1.0\n"+
		"Unpackable Ice (VanillaTweaks.UnpackableIce) v.1.0.0\n", out.String())
}

func TestListInstalled(t *testing.T) {
	app, out := newTestApp(t)

	dest := filepath.Join(t.TempDir(), "datapacks")
	bundle := filepath.Join(t.TempDir(), "old.zip")
	assert.Nil(t, os.WriteFile(bundle, []byte("old pack"), 0644))
	_, err := world.InstallPack(bundle, dest, "VanillaTweaks.BackToBlocks", "1.0.0", world.WithDisplayName("Back to Blocks"))
	assert.Nil(t, err)

	var warnings bytes.Buffer
	app.ErrWriter = &warnings
	assert.Nil(t, app.Run([]string{"mcpkg", "list", "--path", dest}))
	assert.Equal(t, "Back to Blocks (VanillaTweaks.BackToBlocks) v.1.0.0\n", out.String())
	assert.Equal(t, "Pipe detected. Using compact layout\n"+
		"VanillaTweaks.BackToBlocks can be updated to 1.0.3\n", warnings.String())
}

func TestListCompactFlagSkipsPipeWarning(t *testing.T) {
	app, _ := newTestApp(t)
	var warnings bytes.Buffer
	app.ErrWriter = &warnings
	assert.Nil(t, app.Run([]string{"mcpkg", "list", "-c"}))
	assert.Equal(t, "", warnings.String())
}

func TestSearch(t *testing.T) {
	app, out := newTestApp(t)
	assert.Nil(t, app.Run([]string{"mcpkg", "search", "-c", "sleep", "^vanillatweaks.back"}))
	assert.Equal(t, "Back to Blocks (VanillaTweaks.BackToBlocks) v.1.0.3\n"+
		"Multiplayer Sleep (VanillaTweaks.MultiplayerSleep) v.2.1.0\n", out.String())

	app, out = newTestApp(t)
	assert.Nil(t, app.Run([]string{"mcpkg", "search", "--type", "crafting"}))
	assert.Equal(t, "Unpackable Ice (VanillaTweaks.UnpackableIce) v.1.0.0\n", out.String())

	app, _ = newTestApp(t)
	err := app.Run([]string{"mcpkg", "search", "--type", "shader"})
	assert.True(t, goerrors.Is(err, errors.InvalidSearchOptions))
}

func TestInstallWithoutPacks(t *testing.T) {
	app, _ := newTestApp(t)
	err := app.Run([]string{"mcpkg", "install"})
	assert.True(t, goerrors.Is(err, errors.InvalidInstallOptions))
}

func TestInstallUnknownPack(t *testing.T) {
	app, _ := newTestApp(t)
	err := app.Run([]string{"mcpkg", "install", "--path", t.TempDir(), "VanillaTweaks.Missing"})
	assert.True(t, goerrors.Is(err, errors.PackNotFound))
}

func TestUpdateInstallUpgrade(t *testing.T) {
	vendor, baseUrl := test.NewFakeVendor(t)
	s, err := settings.LoadSettings(t.TempDir())
	assert.Nil(t, err)
	s.Conf.BaseUrl = baseUrl
	mcpkgcli := client.NewMcpkgClientWithSettings(s)
	mcpkgcli.SetLogWriter(io.Discard)

	run := func(args ...string) error {
		app := NewMcpkgApp(mcpkgcli)
		app.Writer = io.Discard
		app.ErrWriter = io.Discard
		return app.Run(append([]string{"mcpkg"}, args...))
	}

	dest := test.NewWorld(t)
	assert.Nil(t, run("update"))
	assert.FileExists(t, s.PackDBPath())

	vendor.Versions["back to blocks"] = "1.0.0"
	assert.Nil(t, run("install", "--path", dest, "back to blocks"))
	installed, err := world.GetInstalledPacks(dest)
	assert.Nil(t, err)
	assert.Equal(t, "1.0.0", installed["VanillaTweaks.BackToBlocks"].Version)

	vendor.Versions["back to blocks"] = "1.0.3"
	assert.Nil(t, run("upgrade", "--path", dest))
	installed, err = world.GetInstalledPacks(dest)
	assert.Nil(t, err)
	assert.Equal(t, "1.0.3", installed["VanillaTweaks.BackToBlocks"].Version)
	assert.Equal(t, 2, len(vendor.Requests))
}
