package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Returns levels sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Descriptor, error) {
	var levels []Descriptor

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. Catalog files in the directory
// are not descriptors and fail to load.
func (l *Loader) LoadFile(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	d, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Descriptor{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if len(d.Lanes) == 0 {
		return Descriptor{}, fmt.Errorf("parsing file %s: no lanes", path)
	}

	if d.ID == "" {
		d.ID = idFromPath(path)
	}
	d.FilePath = path
	return d, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Descriptor, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Descriptor{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Descriptor{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Open resolves a level reference: an existing file path is read from
// disk, anything else is looked up among the bundled levels.
func Open(ref string) (Descriptor, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return NewLoader(filepath.Dir(ref)).LoadFile(ref)
	}
	return LoadBundled(ref)
}
