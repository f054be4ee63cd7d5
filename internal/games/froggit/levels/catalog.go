package levels

import (
	"fmt"
	"os"

	"github.com/vovakirdan/froggit/internal/core"
	"gopkg.in/yaml.v3"
)

// Sprite and image names the simulation looks up in the catalog.
const (
	SpriteFrog  = "frog"
	SpriteSkull = "skulls"
	ImageSafe   = "safe"
	ImageHead   = "head"
)

// Catalog is the hitbox and appearance table shared by all levels.
// Hitbox points and sizes are in cell units relative to the object center.
type Catalog struct {
	Images  map[string]ImageInfo  `yaml:"images"`
	Sprites map[string]SpriteInfo `yaml:"sprites"`
	Tiles   map[LaneType]TileInfo `yaml:"tiles"`
}

// ImageInfo describes a static object.
type ImageInfo struct {
	Hitbox [][2]float64 `yaml:"hitbox"`
	Size   [2]float64   `yaml:"size"`
	Glyph  string       `yaml:"glyph"`
	Color  string       `yaml:"color"`
}

// SpriteInfo describes an animated object. Glyphs holds one rune per pose;
// Leap, when set, holds the airborne pose per facing.
type SpriteInfo struct {
	Frames int          `yaml:"frames"`
	Hitbox [][2]float64 `yaml:"hitbox"`
	Size   [2]float64   `yaml:"size"`
	Glyphs string       `yaml:"glyphs"`
	Leap   string       `yaml:"leap"`
	Color  string       `yaml:"color"`
}

// TileInfo describes a lane background.
type TileInfo struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Rune returns the display rune of the image.
func (i ImageInfo) Rune() rune { return firstRune(i.Glyph, '#') }

// Tint returns the parsed image color.
func (i ImageInfo) Tint() core.Color { return tint(i.Color) }

// Rune returns the display rune of the tile.
func (t TileInfo) Rune() rune { return firstRune(t.Glyph, ' ') }

// Tint returns the parsed tile color.
func (t TileInfo) Tint() core.Color { return tint(t.Color) }

// Tint returns the parsed sprite color.
func (s SpriteInfo) Tint() core.Color { return tint(s.Color) }

// Glyph returns the rune for pose i, cycling when there are fewer glyphs
// than poses.
func (s SpriteInfo) Glyph(i int) rune {
	runes := []rune(s.Glyphs)
	if len(runes) == 0 {
		return '@'
	}
	if i < 0 {
		i = 0
	}
	return runes[i%len(runes)]
}

// LeapGlyph returns the airborne rune for facing i, or Glyph(i) when the
// sprite has no leap poses.
func (s SpriteInfo) LeapGlyph(i int) rune {
	runes := []rune(s.Leap)
	if len(runes) == 0 {
		return s.Glyph(i)
	}
	if i < 0 {
		i = 0
	}
	return runes[i%len(runes)]
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("levels: cannot parse catalog: %w", err)
	}
	if _, ok := c.Sprites[SpriteFrog]; !ok {
		return Catalog{}, fmt.Errorf("levels: catalog has no %q sprite", SpriteFrog)
	}
	if _, ok := c.Sprites[SpriteSkull]; !ok {
		return Catalog{}, fmt.Errorf("levels: catalog has no %q sprite", SpriteSkull)
	}
	return c, nil
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("levels: cannot read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func tint(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
