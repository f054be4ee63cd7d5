// Package levels loads froggit level descriptors and the object catalog.
// The simulation in package froggit consumes the parsed values and never
// touches files itself.
package levels

// LaneType names the hazard kind of a lane row.
type LaneType string

const (
	LaneGrass LaneType = "grass"
	LaneRoad  LaneType = "road"
	LaneWater LaneType = "water"
	LaneHedge LaneType = "hedge"
)

// Moving reports whether lanes of this type carry a speed.
func (t LaneType) Moving() bool {
	return t == LaneRoad || t == LaneWater
}

// Known reports whether t is one of the four lane types.
func (t LaneType) Known() bool {
	switch t {
	case LaneGrass, LaneRoad, LaneWater, LaneHedge:
		return true
	}
	return false
}

// OpenObject is the hedge object type that can be entered but never captured.
const OpenObject = "open"

// Descriptor is a declarative level file. Lanes are ordered bottom to top.
type Descriptor struct {
	ID        string `yaml:"id,omitempty" json:"id,omitempty" jsonschema:"title=Level ID,description=Defaults to the file name without extension,pattern=^[a-z0-9_-]+$"`
	Name      string `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"title=Display name"`
	Size      [2]int `yaml:"size" json:"size" jsonschema:"title=Grid size,description=Columns and rows,required"`
	Start     [2]int `yaml:"start" json:"start" jsonschema:"title=Start cell,description=Column and row of the frog spawn,required"`
	Offscreen int    `yaml:"offscreen" json:"offscreen" jsonschema:"title=Offscreen buffer,description=Cells obstacles travel past either edge before wrapping,minimum=0"`
	Lanes     []Lane `yaml:"lanes" json:"lanes" jsonschema:"title=Lanes,description=One entry per row from the bottom up,required"`

	// FilePath is set by the loader for descriptors read from disk.
	FilePath string `yaml:"-" json:"-"`
}

// Lane is one row of the level.
type Lane struct {
	Type    LaneType `yaml:"type" json:"type" jsonschema:"title=Lane type,enum=grass,enum=road,enum=water,enum=hedge,required"`
	Speed   *float64 `yaml:"speed,omitempty" json:"speed,omitempty" jsonschema:"title=Speed,description=Pixels per second; sign is direction; road and water only"`
	Objects []Object `yaml:"objects,omitempty" json:"objects,omitempty" jsonschema:"title=Objects"`
}

// Object places a catalog image in a lane.
type Object struct {
	Type     string  `yaml:"type" json:"type" jsonschema:"title=Catalog image,required"`
	Position float64 `yaml:"position" json:"position" jsonschema:"title=Column,description=Grid column of the object center"`
}

// Cols returns the grid width in cells.
func (d Descriptor) Cols() int { return d.Size[0] }

// Rows returns the grid height in cells, excluding the lives row.
func (d Descriptor) Rows() int { return d.Size[1] }

// SpeedOf returns the lane speed, zero when unset.
func (l Lane) SpeedOf() float64 {
	if l.Speed == nil {
		return 0
	}
	return *l.Speed
}

// Exits counts the capturable objects over all hedge lanes.
func (d Descriptor) Exits() int {
	n := 0
	for _, lane := range d.Lanes {
		if lane.Type != LaneHedge {
			continue
		}
		for _, obj := range lane.Objects {
			if obj.Type != OpenObject {
				n++
			}
		}
	}
	return n
}
