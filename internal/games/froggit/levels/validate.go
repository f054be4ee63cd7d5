package levels

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is matched by every ValidationError.
var ErrInvalidLevel = errors.New("invalid level")

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidLevel.
func (e ValidationError) Unwrap() error {
	return ErrInvalidLevel
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that a descriptor is playable with the given catalog.
// The simulation assumes a descriptor that passed these checks.
func Validate(d Descriptor, c Catalog) error {
	if err := validateGrid(d); err != nil {
		return err
	}
	if err := validateLanes(d, c); err != nil {
		return err
	}
	if d.Exits() == 0 {
		return invalid("NO_EXITS", "level has no capturable exit")
	}
	return nil
}

// validateGrid checks size, start and buffer.
func validateGrid(d Descriptor) error {
	if d.Cols() < 2 || d.Rows() < 2 {
		return invalid("BAD_SIZE", "size %dx%d is smaller than 2x2", d.Cols(), d.Rows())
	}
	if d.Start[0] < 0 || d.Start[0] >= d.Cols() || d.Start[1] < 0 || d.Start[1] >= d.Rows() {
		return invalid("BAD_START", "start %v is outside the %dx%d grid", d.Start, d.Cols(), d.Rows())
	}
	if d.Offscreen < 0 {
		return invalid("BAD_OFFSCREEN", "offscreen %d is negative", d.Offscreen)
	}
	if len(d.Lanes) != d.Rows() {
		return invalid("LANE_COUNT", "%d lanes for %d rows", len(d.Lanes), d.Rows())
	}
	if d.Lanes[d.Start[1]].Type == LaneHedge {
		return invalid("BAD_START", "start row %d is a hedge", d.Start[1])
	}
	return nil
}

// validateLanes checks lane types, speeds and object references.
func validateLanes(d Descriptor, c Catalog) error {
	for row, lane := range d.Lanes {
		if !lane.Type.Known() {
			return invalid("LANE_TYPE", "lane %d has unknown type %q", row, lane.Type)
		}
		if lane.Type.Moving() && lane.Speed == nil {
			return invalid("LANE_SPEED", "%s lane %d needs a speed", lane.Type, row)
		}
		if !lane.Type.Moving() && lane.Speed != nil {
			return invalid("LANE_SPEED", "%s lane %d cannot move", lane.Type, row)
		}
		for i, obj := range lane.Objects {
			img, ok := c.Images[obj.Type]
			if !ok {
				return invalid("OBJECT_TYPE", "lane %d object %d has unknown type %q", row, i, obj.Type)
			}
			if len(img.Hitbox) == 0 {
				return invalid("OBJECT_HITBOX", "object type %q has no hitbox", obj.Type)
			}
		}
	}
	return nil
}
