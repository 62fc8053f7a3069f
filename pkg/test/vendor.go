// This file contains a fake vendor website for testing
package test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"mcpkg.io/mcpkg/pkg/constants"
)

// Catalogs are the category listings served by the fake vendor, keyed by the listing prefix.
var Catalogs = map[string]string{
	"dp": `{"categories": [
		{"category": "Survival", "packs": [
			{"name": "back to blocks", "display": "Back to Blocks", "version": "1.0.3", "description": "Craft items back to blocks."},
			{"name": "multiplayer sleep", "display": "Multiplayer Sleep", "version": "2.1.0", "description": "Only some players need to sleep."}
		]},
		{"category": "Mobs", "packs": [
			{"name": "anti creeper grief", "display": "Anti Creeper Grief", "version": "1.1.0", "description": "Creepers no longer destroy blocks."}
		]}
	]}`,
	"ct": `{"categories": [
		{"category": "Quality of Life", "packs": [
			{"name": "unpackable ice", "display": "Unpackable Ice", "version": "1.0.0", "description": "Craft packed ice back into ice."}
		]}
	]}`,
	"rp": `{"categories": []}`,
}

// FakeVendor serves the catalogs and bundles the requested packs like the vendor does.
type FakeVendor struct {
	mu sync.Mutex
	// The version of the pack archives, keyed by remote name.
	Versions map[string]string
	// The sorted remote names of every download request.
	Requests [][]string
	// The download request fails with this message if set.
	ErrorMessage string
	bundles      map[string][]byte
}

// NewFakeVendor starts a fake vendor, it is stopped when the test finishes.
// The returned url is the base url of the fake vendor.
func NewFakeVendor(t *testing.T) (*FakeVendor, string) {
	vendor := &FakeVendor{
		Versions: map[string]string{
			"back to blocks":     "1.0.3",
			"multiplayer sleep":  "2.1.0",
			"anti creeper grief": "1.1.0",
			"unpackable ice":     "1.0.0",
		},
		bundles: map[string][]byte{},
	}
	server := httptest.NewServer(vendor)
	t.Cleanup(server.Close)
	return vendor, server.URL
}

func (v *FakeVendor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case strings.HasPrefix(r.URL.Path, "/assets/resources/json/"+constants.DefaultGameVersion+"/"):
		prefix := strings.TrimSuffix(filepath.Base(r.URL.Path), "categories.json")
		catalog, ok := Catalogs[prefix]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, catalog)
	case strings.HasPrefix(r.URL.Path, "/assets/server/zip"):
		if v.ErrorMessage != "" {
			fmt.Fprintf(w, `{"status": "error", "message": "%s"}`, v.ErrorMessage)
			return
		}
		var request map[string][]string
		if err := json.Unmarshal([]byte(r.FormValue("packs")), &request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var names []string
		for _, remoteNames := range request {
			names = append(names, remoteNames...)
		}
		sort.Strings(names)
		v.Requests = append(v.Requests, names)

		name := fmt.Sprintf("VanillaTweaks_%d.zip", len(v.Requests))
		v.bundles[name] = v.bundle(names)
		fmt.Fprintf(w, `{"status": "success", "link": "/download/%s"}`, name)
	case strings.HasPrefix(r.URL.Path, "/download/"):
		content, ok := v.bundles[filepath.Base(r.URL.Path)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(content)
	default:
		http.NotFound(w, r)
	}
}

func (v *FakeVendor) bundle(names []string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, _ := zw.Create(fmt.Sprintf("%s v%s (MC %s).zip", name, v.Versions[name], constants.DefaultGameVersion))
		w.Write([]byte("pack " + name))
	}
	zw.Close()
	return buf.Bytes()
}

// NewWorld creates an empty world and returns its directory.
func NewWorld(t *testing.T) string {
	dir := filepath.Join(t.TempDir(), "world")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Error creating world: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, constants.LevelDatFile), []byte{}, 0644); err != nil {
		t.Fatalf("Error creating world: %v", err)
	}
	return dir
}
