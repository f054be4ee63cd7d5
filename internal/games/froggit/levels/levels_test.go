package levels

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func mustCatalog(t *testing.T) Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	return c
}

func TestBundledLevelsValidate(t *testing.T) {
	c := mustCatalog(t)

	ids := BundledIDs()
	expected := []string{"default", "easy", "river"}
	if !reflect.DeepEqual(ids, expected) {
		t.Fatalf("BundledIDs() = %v, expected %v", ids, expected)
	}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			d, err := LoadBundled(id)
			if err != nil {
				t.Fatalf("LoadBundled(%q) error = %v", id, err)
			}
			if d.ID != id {
				t.Errorf("ID = %q, expected %q", d.ID, id)
			}
			if err := Validate(d, c); err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
		})
	}
}

func TestLoadBundledDefault(t *testing.T) {
	d, err := LoadBundled("default")
	if err != nil {
		t.Fatalf("LoadBundled() error = %v", err)
	}

	if d.Cols() != 12 || d.Rows() != 11 {
		t.Errorf("size = %dx%d, expected 12x11", d.Cols(), d.Rows())
	}
	if d.Start != [2]int{6, 0} {
		t.Errorf("Start = %v, expected [6 0]", d.Start)
	}
	if d.Lanes[1].Type != LaneRoad || d.Lanes[1].SpeedOf() != 90 {
		t.Errorf("lane 1 = %+v, expected road at speed 90", d.Lanes[1])
	}
	if d.Lanes[0].Speed != nil {
		t.Error("grass lane should have no speed")
	}
	if d.Exits() != 4 {
		t.Errorf("Exits() = %d, expected 4", d.Exits())
	}
}

func TestLoadBundledUnknown(t *testing.T) {
	if _, err := LoadBundled("nope"); err == nil {
		t.Error("LoadBundled() should fail for an unknown ID")
	}
}

func TestRiverOpensAreNotExits(t *testing.T) {
	d, err := LoadBundled("river")
	if err != nil {
		t.Fatalf("LoadBundled() error = %v", err)
	}
	if d.Exits() != 3 {
		t.Errorf("Exits() = %d, expected 3 (opens excluded)", d.Exits())
	}
}

const tinyYAML = `name: Tiny
size: [3, 3]
start: [1, 0]
offscreen: 1
lanes:
  - type: grass
  - type: road
    speed: 10
    objects: [{type: car1, position: 0.5}]
  - type: hedge
    objects: [{type: exit, position: 1}]
`

const tinyJSON = `{
  "id": "json-level",
  "size": [3, 3],
  "start": [1, 0],
  "offscreen": 1,
  "lanes": [
    {"type": "grass"},
    {"type": "water", "speed": -20, "objects": [{"type": "log1", "position": 1}]},
    {"type": "hedge", "objects": [{"type": "exit", "position": 1}]}
  ]
}`

func writeLevels(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"tiny.yaml":     tinyYAML,
		"nested/b.json": tinyJSON,
		"broken.yml":    "size: [oops",
		"notes.txt":     "not a level",
		"objects.yaml":  "images: {}\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	return dir
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(writeLevels(t))

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	expected := []string{"json-level", "tiny"}
	if !reflect.DeepEqual(ids, expected) {
		t.Errorf("ListIDs() = %v, expected %v", ids, expected)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(writeLevels(t))

	lvl, err := loader.LoadByID("tiny")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Tiny" {
		t.Errorf("Name = %q, expected %q", lvl.Name, "Tiny")
	}
	if lvl.Lanes[1].Objects[0].Position != 0.5 {
		t.Errorf("object position = %v, expected 0.5", lvl.Lanes[1].Objects[0].Position)
	}
	if filepath.Base(lvl.FilePath) != "tiny.yaml" {
		t.Errorf("FilePath = %q, expected tiny.yaml", lvl.FilePath)
	}

	jsonLvl, err := loader.LoadByID("json-level")
	if err != nil {
		t.Fatalf("LoadByID(json) failed: %v", err)
	}
	if jsonLvl.Lanes[1].SpeedOf() != -20 {
		t.Errorf("json lane speed = %v, expected -20", jsonLvl.Lanes[1].SpeedOf())
	}
	if err := Validate(jsonLvl, mustCatalog(t)); err != nil {
		t.Errorf("Validate(json) = %v", err)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("LoadByID should fail for a missing level")
	}
}

func TestOpen(t *testing.T) {
	dir := writeLevels(t)

	d, err := Open(filepath.Join(dir, "tiny.yaml"))
	if err != nil {
		t.Fatalf("Open(path) error = %v", err)
	}
	if d.ID != "tiny" {
		t.Errorf("Open(path).ID = %q, expected tiny", d.ID)
	}

	d, err = Open("easy")
	if err != nil {
		t.Fatalf("Open(id) error = %v", err)
	}
	if d.ID != "easy" {
		t.Errorf("Open(id).ID = %q, expected easy", d.ID)
	}
}

func TestValidate(t *testing.T) {
	c := mustCatalog(t)
	base, err := Parse([]byte(tinyYAML), ".yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	speed := 5.0

	tests := []struct {
		name   string
		mutate func(d *Descriptor)
		code   string
	}{
		{"valid", func(d *Descriptor) {}, ""},
		{"too small", func(d *Descriptor) { d.Size = [2]int{1, 3} }, "BAD_SIZE"},
		{"start outside", func(d *Descriptor) { d.Start = [2]int{3, 0} }, "BAD_START"},
		{"start in hedge", func(d *Descriptor) { d.Start = [2]int{1, 2} }, "BAD_START"},
		{"negative offscreen", func(d *Descriptor) { d.Offscreen = -1 }, "BAD_OFFSCREEN"},
		{"lane count", func(d *Descriptor) { d.Lanes = d.Lanes[:2] }, "LANE_COUNT"},
		{"unknown lane", func(d *Descriptor) { d.Lanes[0].Type = "lava" }, "LANE_TYPE"},
		{"road without speed", func(d *Descriptor) { d.Lanes[1].Speed = nil }, "LANE_SPEED"},
		{"grass with speed", func(d *Descriptor) { d.Lanes[0].Speed = &speed }, "LANE_SPEED"},
		{"unknown object", func(d *Descriptor) { d.Lanes[1].Objects[0].Type = "ufo" }, "OBJECT_TYPE"},
		{"only opens", func(d *Descriptor) { d.Lanes[2].Objects[0].Type = OpenObject }, "NO_EXITS"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := base
			d.Lanes = cloneLanes(base.Lanes)
			tc.mutate(&d)

			err := Validate(d, c)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Fatalf("Validate() = %v, expected ErrInvalidLevel", err)
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Code != tc.code {
				t.Errorf("Validate() code = %q, expected %q", ve.Code, tc.code)
			}
		})
	}
}

func cloneLanes(lanes []Lane) []Lane {
	out := make([]Lane, len(lanes))
	for i, l := range lanes {
		out[i] = l
		out[i].Objects = append([]Object(nil), l.Objects...)
	}
	return out
}

func TestParseUnsupportedExtension(t *testing.T) {
	if _, err := Parse([]byte(tinyYAML), ".toml"); err == nil {
		t.Error("Parse() should reject .toml")
	}
}

func TestCatalogLookups(t *testing.T) {
	c := mustCatalog(t)

	frog := c.Sprites[SpriteFrog]
	if frog.Glyph(0) != '^' || frog.Glyph(3) != '>' || frog.Glyph(4) != '^' {
		t.Errorf("frog glyphs = %q, expected cycling ^v<>", frog.Glyphs)
	}
	if frog.LeapGlyph(0) != 'A' || frog.LeapGlyph(3) != '}' {
		t.Errorf("frog leap glyphs = %q, expected AV{}", frog.Leap)
	}
	if (SpriteInfo{Glyphs: "ab"}).LeapGlyph(1) != 'b' {
		t.Error("LeapGlyph() should fall back to Glyph() without leap poses")
	}
	if c.Sprites[SpriteSkull].Frames != 8 {
		t.Errorf("skull frames = %d, expected 8", c.Sprites[SpriteSkull].Frames)
	}
	if c.Tiles[LaneWater].Rune() != '~' {
		t.Errorf("water tile rune = %q, expected '~'", c.Tiles[LaneWater].Rune())
	}
	if _, ok := c.Images[ImageSafe]; !ok {
		t.Error("catalog should define the safe marker image")
	}
}

func TestParseCatalogRequiresSprites(t *testing.T) {
	if _, err := ParseCatalog([]byte("images: {}\n")); err == nil {
		t.Error("ParseCatalog() should require the frog sprite")
	}
}
