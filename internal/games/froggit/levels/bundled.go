package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"
)

//go:embed data/*.yaml
var bundled embed.FS

const catalogFile = "objects.yaml"

var (
	catalogOnce sync.Once
	catalog     Catalog
	catalogErr  error
)

// BundledIDs returns the IDs of the levels shipped with the binary, sorted.
func BundledIDs() []string {
	entries, err := fs.ReadDir(bundled, "data")
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == catalogFile {
			continue
		}
		ids = append(ids, idFromPath(e.Name()))
	}
	sort.Strings(ids)
	return ids
}

// LoadBundled parses a shipped level by ID.
func LoadBundled(id string) (Descriptor, error) {
	data, err := bundled.ReadFile(path.Join("data", id+".yaml"))
	if err != nil {
		return Descriptor{}, fmt.Errorf("level not found: %s", id)
	}
	d, err := Parse(data, ".yaml")
	if err != nil {
		return Descriptor{}, fmt.Errorf("parsing bundled level %s: %w", id, err)
	}
	if d.ID == "" {
		d.ID = id
	}
	return d, nil
}

// DefaultCatalog returns the shipped object catalog.
func DefaultCatalog() (Catalog, error) {
	catalogOnce.Do(func() {
		var data []byte
		data, catalogErr = bundled.ReadFile(path.Join("data", catalogFile))
		if catalogErr != nil {
			return
		}
		catalog, catalogErr = ParseCatalog(data)
	})
	return catalog, catalogErr
}
