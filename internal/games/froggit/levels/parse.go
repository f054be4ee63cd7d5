package levels

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatExtensions returns supported level file extensions.
// JSON files are decoded by the YAML parser, which accepts JSON input.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// Parse decodes a descriptor in the format named by ext.
func Parse(data []byte, ext string) (Descriptor, error) {
	if !isSupportedExtension(ext) {
		return Descriptor{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("%s unmarshal: %w", strings.TrimPrefix(ext, "."), err)
	}
	return d, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// idFromPath derives a level ID from its file name.
func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
